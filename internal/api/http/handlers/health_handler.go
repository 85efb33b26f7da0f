package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/credit-score-service/internal/observability"
	"github.com/spec-kit/credit-score-service/internal/persistence"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	postgres    *persistence.Postgres
	redis       *persistence.Redis
	metrics     *observability.Metrics
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, postgres *persistence.Postgres, redis *persistence.Redis, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		postgres:    postgres,
		redis:       redis,
		metrics:     metrics,
	}
}

// Root handles GET /. The body is fixed; clients poll it as a liveness check.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy connection",
	})
}

// Ready reports readiness by checking dependencies.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	if err := h.postgres.Ping(ctx); err != nil {
		depStatus["postgres"] = err.Error()
		ready = false
	} else {
		depStatus["postgres"] = "ok"
	}

	// Redis is optional; report its state without failing readiness.
	if err := h.redis.Ping(ctx); err != nil {
		depStatus["redis"] = err.Error()
	} else {
		depStatus["redis"] = "ok"
	}

	body := fiber.Map{
		"service":      h.serviceName,
		"version":      h.version,
		"dependencies": depStatus,
	}
	if ready {
		body["status"] = "ready"
		return c.JSON(body)
	}
	body["status"] = "unavailable"
	return c.Status(fiber.StatusServiceUnavailable).JSON(body)
}

// Counters handles GET /health/metrics with the in-process counters.
func (h *HealthHandler) Counters(c *fiber.Ctx) error {
	return c.JSON(h.metrics.Snapshot())
}
