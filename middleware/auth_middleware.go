package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/PEREIRAD01/backend-Pitstoppro/domain"
	"github.com/PEREIRAD01/backend-Pitstoppro/internal/util"
)

const userIDKey = "userID"

// JwtAuthMiddleware verifies the bearer token and stores the subject's user
// id in Locals. The owner id every protected handler uses comes from here,
// never from request input.
func JwtAuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return domain.NewUnauthorized("Missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return domain.NewUnauthorized("Authorization header format must be Bearer {token}")
		}

		userID, err := util.ExtractUserID(parts[1], secret)
		if err != nil {
			return domain.NewUnauthorized("Invalid or expired token")
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the authenticated user's id set by JwtAuthMiddleware.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(userIDKey).(uint)
	return id
}
