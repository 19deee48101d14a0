package gate

import "github.com/gofiber/fiber/v2"

// Middleware adapts the pure decision to Fiber. Only cookie presence is
// consulted; no store lookup happens here.
func Middleware(g *Gate, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := g.Decide(c.Path(), c.Cookies(cookieName) != "")
		if d.Action == Redirect {
			return c.Redirect(d.Target)
		}
		return c.Next()
	}
}
