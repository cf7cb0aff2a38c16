package middleware

import (
	"strings"

	"leave-management-backend/internal/token"

	"github.com/gofiber/fiber/v2"
)

// Auth validates the bearer token and stores the caller's user id in the
// request context for handlers to pick up. Role checks stay in the handlers;
// the role is read from the store, not from the token.
func Auth(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing authorization header"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokens.VerifyAccess(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
