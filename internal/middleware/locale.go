package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MinhoKang/sallyrang/internal/i18n"
)

// Localize puts the request's message set on the user context.
func Localize(tr *i18n.Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accept := c.Query("lang")
		if accept == "" {
			accept = c.Get(fiber.HeaderAcceptLanguage)
		}
		c.SetUserContext(i18n.NewContext(c.UserContext(), tr.For(accept)))
		return c.Next()
	}
}

// NoIndex keeps member pages out of search engines.
func NoIndex() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Robots-Tag", "noindex, nofollow")
		return c.Next()
	}
}
