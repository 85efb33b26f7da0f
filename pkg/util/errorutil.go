package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// ErrInvalidCredentials is the single login failure value. Unknown username
// and wrong password both surface as this exact error so the response carries
// no signal about which check failed.
var ErrInvalidCredentials = &DomainError{
	Code:       "INVALID_CREDENTIALS",
	Message:    "Invalid Credentials",
	HTTPStatus: http.StatusUnauthorized,
}

// ErrUnauthorized is the single authorization failure value shared by every
// rejection cause in the bearer-token gate.
var ErrUnauthorized = &DomainError{
	Code:       "UNAUTHORIZED",
	Message:    "Unauthorized",
	HTTPStatus: http.StatusUnauthorized,
}

// NewValidationError flags a malformed request body.
func NewValidationError(message string, details map[string]any) error {
	return &DomainError{
		Code:       "VALIDATION_FAILED",
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// NewNotFound reports a missing operation target.
func NewNotFound(resource string) error {
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewInternalError wraps an infrastructure failure.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "Internal Server Error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		var de *DomainError
		if errors.As(NewNotFound("resource"), &de) {
			return de
		}
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "Internal Server Error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
