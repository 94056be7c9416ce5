package access

import (
	"errors"
	"time"

	"static-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware that logs one entry per request once the rest of
// the chain has run. It must be registered after rayid.
func New(base *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		// Captured up front; handlers further down may rewrite the path.
		target := c.OriginalURL()

		err := c.Next()

		// The error handler runs after us, so report the status it will send.
		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", target),
			zap.Int("status", status),
			zap.String("ip", c.IP()),
			zap.Duration("latency", time.Since(start)),
		}

		l := logger.WithRayID(base, c)
		switch {
		case err != nil && fe == nil:
			l.Error("Request error", append(fields, zap.Error(err))...)
		case status >= fiber.StatusBadRequest:
			l.Warn("Request failed", fields...)
		default:
			l.Info("Request served", fields...)
		}
		return err
	}
}
