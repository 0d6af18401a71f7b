package server

import (
	"countries-api/core/i18n"

	"github.com/gofiber/fiber/v2"
)

// KeyWelcome is the message served at the root path.
const KeyWelcome = "welcome"

// WelcomeHandler answers with the localized welcome text.
// @Summary Welcome
// @Description Returns a short localized welcome text.
// @Tags meta
// @Produce plain
// @Param Accept-Language header string false "Preferred message language"
// @Success 200 {string} string "Welcome text"
// @Router / [get]
func WelcomeHandler(resolver *i18n.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString(resolver.Translate(c.Get(fiber.HeaderAcceptLanguage), KeyWelcome, nil))
	}
}
