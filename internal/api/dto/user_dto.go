package dto

import (
	"time"

	"github.com/spec-kit/credit-score-service/internal/domain"
)

// LoginRequest payload for POST /v1/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest payload for POST /v1/users.
type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required"`
	Age      int     `json:"age" validate:"required,gte=0"`
	Salary   float64 `json:"salary" validate:"required,gte=0"`
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password" validate:"required"`
}

// UpdateUserRequest payload for PATCH /v1/users/:id. Pointer fields
// distinguish "omitted" from "present": a nil password leaves the stored
// hash alone, a set one triggers a re-hash.
type UpdateUserRequest struct {
	Name     *string  `json:"name"`
	Age      *int     `json:"age" validate:"omitempty,gte=0"`
	Salary   *float64 `json:"salary" validate:"omitempty,gte=0"`
	Username *string  `json:"username"`
	Password *string  `json:"password"`
}

// ChangePasswordRequest payload for POST /v1/password/change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// AuthResponse carries the issued bearer token.
type AuthResponse struct {
	Token string `json:"token"`
}

// CreditScoreResponse carries the computed score.
type CreditScoreResponse struct {
	CreditScore int `json:"creditScore"`
}

// UserResponse is the outward representation of a user. It never includes
// the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Salary    float64   `json:"salary"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserResponse maps a domain user to its response shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Age:       user.Age,
		Salary:    user.Salary,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// NewUserResponses maps a slice of domain users.
func NewUserResponses(users []domain.User) []UserResponse {
	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, NewUserResponse(&users[i]))
	}
	return items
}
