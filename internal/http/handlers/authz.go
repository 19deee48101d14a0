package handlers

import (
	applog "vitrine/internal/log"
	"vitrine/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireUser resolves the session token to a real user. The gate upstream
// only checked that a cookie exists; a token that no longer resolves (revoked,
// expired, garbage) is treated as anonymous and sent to login.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(token)
		if err != nil || u == nil {
			applog.Security(c, "session.invalid", nil)
			return c.Redirect("/login")
		}
		c.Locals("user", u)
		return c.Next()
	}
}
