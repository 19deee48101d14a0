package handlers

import (
	"errors"

	"vitrine/internal/domain"
	"vitrine/internal/log"
	"vitrine/internal/services"
	"vitrine/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ShopHandler struct {
	Shops *services.ShopService
}

func (h *ShopHandler) OnboardingForm(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	shop, err := h.Shops.ForOwner(u.ID)
	if err != nil {
		log.Error(c, "shop.load.error", err, nil)
		return fiber.ErrInternalServerError
	}
	data := fiber.Map{"Err": ""}
	if shop != nil {
		data["Shop"] = shop
	}
	return render(c, "onboarding", data)
}

func (h *ShopHandler) Save(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)

	rerender := func(status int, msg string) error {
		return c.Status(status).Render("onboarding", fiber.Map{
			"Err": msg, "CSRFToken": c.Locals("CSRFToken"),
		})
	}

	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return rerender(fiber.StatusBadRequest, "Informe o nome da loja")
	}
	slug := c.FormValue("slug")
	if slug == "" {
		slug = validate.Slugify(name)
	}
	slug, ok = validate.Slug(slug)
	if !ok {
		return rerender(fiber.StatusBadRequest, "Slug deve conter apenas letras minúsculas, números e hífens")
	}
	whatsapp, ok := validate.Whatsapp(c.FormValue("whatsapp"))
	if !ok {
		return rerender(fiber.StatusBadRequest, "WhatsApp deve conter apenas dígitos com DDI, ex: 5511999990000")
	}
	logoURL, ok := validate.URLField(c.FormValue("logo_url"))
	if !ok {
		return rerender(fiber.StatusBadRequest, "URL do logo inválida")
	}

	shop, err := h.Shops.Save(u.ID, services.ShopInput{
		Name: name, Slug: slug, Whatsapp: whatsapp, LogoURL: logoURL,
	})
	if errors.Is(err, services.ErrSlugTaken) {
		return rerender(fiber.StatusBadRequest, "Este slug já está em uso")
	}
	if err != nil {
		log.Error(c, "shop.save.error", err, nil)
		return rerender(fiber.StatusInternalServerError, "Erro ao salvar loja. Tente novamente.")
	}

	log.Audit(c, "shop.save", map[string]any{"shop_id": shop.ID, "slug": shop.Slug})
	return c.Redirect("/dashboard")
}
