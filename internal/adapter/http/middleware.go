package http

import (
	"strings"

	"careertrack/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth verifies the bearer credential and stores the subject id
// in the request locals. Unauthenticated requests are rejected before
// any handler (and therefore any storage access) runs.
func RequireAuth(v auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "please sign in"})
		}
		sub, err := v.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "please sign in"})
		}
		c.Locals("userID", sub)
		return c.Next()
	}
}

func userID(c *fiber.Ctx) string {
	s, _ := c.Locals("userID").(string)
	return s
}
