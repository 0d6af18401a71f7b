package requestlog

import (
	"time"

	"countries-api/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware logging each request once it has completed.
// It must run after the rayid middleware to pick up the ray id.
func New(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		l := logger.WithRayID(log, c)
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Duration("latency", time.Since(start)),
		}
		if err != nil {
			l.Info("Request completed with error", append(fields, zap.Error(err))...)
			return err
		}
		l.Info("Request completed", append(fields, zap.Int("status", c.Response().StatusCode()))...)
		return nil
	}
}
