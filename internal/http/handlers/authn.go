package handlers

import (
	"strings"

	applog "mywallet/internal/log"
	"mywallet/internal/services"

	"github.com/gofiber/fiber/v2"
)

// BearerToken extracts the opaque token from the Authorization header.
// Anything that isn't a "Bearer <token>" pair comes back empty.
func BearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(h, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireUser resolves the bearer token and stores the user in Locals;
// requests without a valid session stop here with 401.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(BearerToken(c))
		if err != nil {
			applog.Security(c, "access.denied", nil)
			return fail(c, "auth.resolve", err)
		}
		c.Locals("user", u)
		return c.Next()
	}
}
