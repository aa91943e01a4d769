package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panol-api/pkg/logger"
)

// RequestLogger registra cada request con status y latencia. Va después de requestid.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		rid, _ := c.Locals("requestid").(string)
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("request_id", rid).
			Str("user", GetUsername(c)).
			Err(err).
			Msg("http request")
		return err
	}
}
