package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/credit-score-service/internal/api/http/handlers"
	"github.com/spec-kit/credit-score-service/internal/auth"
	"github.com/spec-kit/credit-score-service/pkg/response"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.AuthMiddleware
	LoginLimiter   fiber.Handler
}

// RegisterRoutes wires HTTP routes. Must run after RegisterMiddlewares; the
// trailing catch-all owns every unmatched path.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Counters)

	v1 := app.Group("/v1")
	v1.Post("/login", cfg.LoginLimiter, cfg.Auth.Login)
	v1.Post("/password/change", cfg.AuthMiddleware.Handle, cfg.Auth.ChangePassword)

	users := v1.Group("/users")
	users.Post("/", cfg.Users.Create)
	users.Get("/", cfg.AuthMiddleware.Handle, cfg.Users.List)
	users.Get("/:id/credit-score", cfg.AuthMiddleware.Handle, cfg.Users.CreditScore)
	users.Get("/:id", cfg.AuthMiddleware.Handle, cfg.Users.Get)
	users.Patch("/:id", cfg.AuthMiddleware.Handle, cfg.Users.Update)
	users.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Users.Delete)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(http.StatusNotFound).JSON(response.Fail("Route Not Found", nil))
	})
}
