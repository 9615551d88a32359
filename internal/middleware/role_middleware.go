package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireAdmin gates admin-only routes. Must run after Auth.
func RequireAdmin(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if role != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admin access required"})
	}
	return c.Next()
}
