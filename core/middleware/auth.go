package middleware

import (
	"crypto/subtle"
	"strings"

	"garment-stock/core/token"

	"github.com/gofiber/fiber/v2"
)

// APIKeyHeader carries the static API key.
const APIKeyHeader = "X-API-Key"

// RequireAuth accepts a request that presents the configured API key or a
// valid bearer token. When neither credential is configured every request
// passes.
func RequireAuth(apiKey string, tokens *token.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiKey == "" && !tokens.Enabled() {
			return c.Next()
		}

		if key := c.Get(APIKeyHeader); key != "" && apiKey != "" {
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
				c.Locals("principal", "api-key")
				return c.Next()
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid API key"})
		}

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing credentials"})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || !tokens.Enabled() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("principal", claims.Username)
		return c.Next()
	}
}
