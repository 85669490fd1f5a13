package middleware

import (
	"strings"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/config"
	"bloodbridge/internal/pkg/jwt"
	"bloodbridge/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates the bearer token guard. A missing token is rejected
// with 401, a present but invalid or expired token with 403. The two cases
// carry distinct statuses and no response body beyond the status text.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				accessToken = parts[1]
			}
		}

		if accessToken == "" {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			return c.SendStatus(fiber.StatusForbidden)
		}

		// Attach identity to the request context
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		for _, allowedRole := range allowedRoles {
			if role == string(allowedRole) {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only the ADMIN role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(models.RoleAdmin)
}
