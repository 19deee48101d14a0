package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the name of the session token cookie. The access gate
// checks its presence; RequireUser resolves it.
const SessionCookie = "session"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if u := c.Locals("user"); u != nil {
		data["User"] = u
	}
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

// formatCentavos renders an integer amount of centavos as pt-BR currency.
func formatCentavos(v int64) string {
	reais := v / 100
	cents := v % 100
	// group thousands with dots
	s := fmt.Sprintf("%d", reais)
	var grouped string
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped += "."
		}
		grouped += string(d)
	}
	return fmt.Sprintf("R$ %s,%02d", grouped, cents)
}

// formValueCentavos is formatCentavos without the currency prefix, suitable
// for prefilling a price input.
func formValueCentavos(v int64) string {
	return strings.TrimPrefix(formatCentavos(v), "R$ ")
}
