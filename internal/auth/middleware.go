package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/credit-score-service/pkg/util"
)

const userIDKey = "auth_user_id"

// AuthMiddleware validates bearer tokens on protected routes.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication. The scheme prefix is matched
// case-sensitively: only `Bearer <token>` is accepted. Missing header, wrong
// scheme, empty token, and failed verification all yield the same
// unauthorized error.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return apperrors.ErrUnauthorized
	}

	claims, err := m.tokens.ParseToken(token)
	if err != nil {
		return apperrors.ErrUnauthorized
	}

	c.Locals(userIDKey, claims.UserID)
	return c.Next()
}

// UserIDFromContext retrieves the authenticated user id set by Handle.
func UserIDFromContext(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals(userIDKey).(string)
	return id, ok && id != ""
}
