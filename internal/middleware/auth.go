package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MinhoKang/sallyrang/pkg/utils"
)

const (
	AdminCookieName = "admin_session"
	AdminRole       = "admin"
)

// AdminToken returns the session token from the cookie, or from a Bearer
// header for API clients.
func AdminToken(c *fiber.Ctx) string {
	if token := c.Cookies(AdminCookieName); token != "" {
		return token
	}
	parts := strings.Split(c.Get(fiber.HeaderAuthorization), " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// IsAdmin validates the request's token without rejecting the request.
func IsAdmin(c *fiber.Ctx, secret string) bool {
	token := AdminToken(c)
	if token == "" {
		return false
	}
	claims, err := utils.ValidateToken(token, secret)
	return err == nil && claims.Role == AdminRole
}

func AdminRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := AdminToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing admin session",
			})
		}

		claims, err := utils.ValidateToken(token, secret)
		if err != nil || claims.Role != AdminRole {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}
