package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/credit-score-service/internal/api/dto"
	"github.com/spec-kit/credit-score-service/internal/auth"
	"github.com/spec-kit/credit-score-service/internal/service"
	"github.com/spec-kit/credit-score-service/pkg/response"
	apperrors "github.com/spec-kit/credit-score-service/pkg/util"
	"github.com/spec-kit/credit-score-service/pkg/validation"
)

// AuthHandler exposes login and password-change endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /v1/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if details := validation.Struct(req); details != nil {
		return apperrors.NewValidationError("Invalid request body", details)
	}

	token, _, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.AuthResponse{Token: token})
}

// ChangePassword handles POST /v1/password/change for the authenticated user.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if details := validation.Struct(req); details != nil {
		return apperrors.NewValidationError("Invalid request body", details)
	}

	if err := h.auth.ChangePassword(c.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(response.OK("Password updated successfully", nil))
}
