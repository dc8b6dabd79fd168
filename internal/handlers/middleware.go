package handlers

import (
	"net/http"
	"strings"

	"curio/internal/auth"
	"curio/internal/config"

	"github.com/gofiber/fiber/v2"
)

const claimsLocal = "claims"

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(configuration *config.Configuration) fiber.Handler {
	secret := configuration.Auth.Secret
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "missing or invalid authorization header"})
		}
		claims, err := auth.ValidateToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "invalid token"})
		}
		c.Locals(claimsLocal, claims)
		return c.Next()
	}
}

// OptionalAuth attaches claims when a bearer token is present. A malformed
// token is still rejected; absence of one is fine.
func OptionalAuth(configuration *config.Configuration) fiber.Handler {
	secret := configuration.Auth.Secret
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "missing or invalid authorization header"})
		}
		claims, err := auth.ValidateToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "invalid token"})
		}
		c.Locals(claimsLocal, claims)
		return c.Next()
	}
}

// LenientAuth attaches claims when a valid bearer token is present and
// treats anything else as anonymous. Used on the HTML surface, which
// never answers with a JSON 401.
func LenientAuth(configuration *config.Configuration) fiber.Handler {
	secret := configuration.Auth.Secret
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(header, "Bearer ") {
			if claims, err := auth.ValidateToken(secret, strings.TrimPrefix(header, "Bearer ")); err == nil {
				c.Locals(claimsLocal, claims)
			}
		}
		return c.Next()
	}
}

// CallerClaims returns the authenticated caller, or nil on anonymous
// requests behind OptionalAuth.
func CallerClaims(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(claimsLocal).(*auth.Claims)
	return claims
}
