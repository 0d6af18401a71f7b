package cachecontrol

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Config defines the cache header settings.
type Config struct {
	// MaxAgeSeconds is used for both max-age and s-maxage. Zero disables caching headers.
	MaxAgeSeconds int
	// Vary lists the request headers the response depends on.
	Vary []string
}

// New returns a middleware that marks successful GET responses as publicly
// cacheable. Error responses are left uncached.
func New(cfg Config) fiber.Handler {
	value := "public, max-age=" + strconv.Itoa(cfg.MaxAgeSeconds) +
		", s-maxage=" + strconv.Itoa(cfg.MaxAgeSeconds)

	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}
		if cfg.MaxAgeSeconds <= 0 || c.Method() != fiber.MethodGet {
			return nil
		}
		if status := c.Response().StatusCode(); status < 200 || status >= 300 {
			return nil
		}

		c.Set(fiber.HeaderCacheControl, value)
		for _, h := range cfg.Vary {
			c.Vary(h)
		}
		return nil
	}
}
