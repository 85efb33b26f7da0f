package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/credit-score-service/internal/api/dto"
	"github.com/spec-kit/credit-score-service/internal/service"
	"github.com/spec-kit/credit-score-service/pkg/response"
	apperrors "github.com/spec-kit/credit-score-service/pkg/util"
	"github.com/spec-kit/credit-score-service/pkg/validation"
)

// UsersHandler exposes user CRUD and the credit-score lookup.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Create handles POST /v1/users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if details := validation.Struct(req); details != nil {
		return apperrors.NewValidationError("Invalid request body", details)
	}

	user, err := h.users.CreateUser(c.Context(), service.UserCreateInput{
		Name:     req.Name,
		Age:      req.Age,
		Salary:   req.Salary,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(
		response.OK("User created successfully", dto.NewUserResponse(user)))
}

// List handles GET /v1/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(response.OK("User list fetched successfully", dto.NewUserResponses(users)))
}

// Get handles GET /v1/users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(response.OK("User found successfully", dto.NewUserResponse(user)))
}

// Update handles PATCH /v1/users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if details := validation.Struct(req); details != nil {
		return apperrors.NewValidationError("Invalid request body", details)
	}

	user, err := h.users.UpdateUser(c.Context(), c.Params("id"), service.UserUpdateInput{
		Name:     req.Name,
		Age:      req.Age,
		Salary:   req.Salary,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(response.OK("User updated successfully", dto.NewUserResponse(user)))
}

// Delete handles DELETE /v1/users/:id, echoing the removed user.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	user, err := h.users.DeleteUser(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(response.OK("User deleted successfully", dto.NewUserResponse(user)))
}

// CreditScore handles GET /v1/users/:id/credit-score.
func (h *UsersHandler) CreditScore(c *fiber.Ctx) error {
	score, err := h.users.CreditScore(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.CreditScoreResponse{CreditScore: score})
}
