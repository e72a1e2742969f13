package middleware

import (
	"strings"

	"catalog-backend/internal/config"
	"catalog-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// TokenValidator checks a bearer token and returns the login it carries.
type TokenValidator interface {
	ValidateToken(tokenString string) (string, error)
}

// JWT guards the API routes. It is a no-op when authentication is disabled.
// CORS preflights and the health probe always pass through.
func JWT(cfg config.AuthConfig, validator TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.Enabled {
			return c.Next()
		}
		if c.Method() == fiber.MethodOptions {
			return c.Next()
		}
		if c.Path() == "/api/v1/healthcheck" {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing bearer token")
		}

		login, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
		}

		c.Locals("login", login)
		return c.Next()
	}
}
