package handlers

import (
	"errors"
	"time"

	"vitrine/internal/log"
	"vitrine/internal/services"
	"vitrine/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// Session cookie lifetime matches the server-side session horizon.
const sessionTTL = 7 * 24 * time.Hour

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false, // set true behind HTTPS
		Expires:  time.Now().Add(sessionTTL),
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email, ok := validate.Email(c.FormValue("email"))
	pass := c.FormValue("password")
	if !ok || pass == "" {
		log.Security(c, "auth.login.fail", map[string]any{"reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Err": "E-mail ou senha incorretos", "CSRFToken": c.Locals("CSRFToken"),
		})
	}

	_, token, err := h.Auth.Login(email, pass)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Err": "E-mail ou senha incorretos", "CSRFToken": c.Locals("CSRFToken"),
		})
	}

	setSessionCookie(c, token)
	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/dashboard")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "registro", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).Render("registro", fiber.Map{
			"Err": "E-mail inválido", "CSRFToken": c.Locals("CSRFToken"),
		})
	}
	pass := c.FormValue("password")
	if !validate.Password(pass) {
		return c.Status(fiber.StatusBadRequest).Render("registro", fiber.Map{
			"Err": "A senha deve ter no mínimo 6 caracteres", "CSRFToken": c.Locals("CSRFToken"),
		})
	}

	_, token, err := h.Auth.Register(email, pass)
	if errors.Is(err, services.ErrEmailTaken) {
		return c.Status(fiber.StatusBadRequest).Render("registro", fiber.Map{
			"Err": "Este e-mail já está cadastrado", "CSRFToken": c.Locals("CSRFToken"),
		})
	}
	if err != nil {
		log.Error(c, "auth.register.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("registro", fiber.Map{
			"Err": "Erro ao criar conta. Tente novamente.", "CSRFToken": c.Locals("CSRFToken"),
		})
	}

	setSessionCookie(c, token)
	log.Audit(c, "auth.register.success", map[string]any{"email": email})
	return c.Redirect("/onboarding")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(SessionCookie); token != "" {
		_ = h.Auth.Logout(token)
	}
	clearSessionCookie(c)
	log.Audit(c, "auth.logout", nil)
	return c.Redirect("/")
}
