package http

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/credit-score-service/pkg/response"
)

// Atomic INCR with expiry set on first hit of the window.
var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// LoginRateLimit limits login attempts per client IP over a fixed window.
// When Redis is unavailable the limiter fails open so auth stays usable.
func LoginRateLimit(client *redis.Client, max int, window time.Duration, logger *zap.Logger) fiber.Handler {
	if client == nil || max <= 0 || window <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return func(c *fiber.Ctx) error {
		key := "rl:login:ip:" + c.IP()

		count, err := rateLimitScript.Run(c.UserContext(), client, []string{key}, window.Milliseconds()).Int64()
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}

		if count > int64(max) {
			return c.Status(http.StatusTooManyRequests).
				JSON(response.Fail("Too Many Requests", nil))
		}
		return c.Next()
	}
}
