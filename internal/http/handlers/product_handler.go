package handlers

import (
	"errors"

	"vitrine/internal/domain"
	"vitrine/internal/log"
	"vitrine/internal/services"
	"vitrine/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Products *services.ProductService
	Shops    *services.ShopService
}

// shopOf loads the signed-in user's shop. Users without one are sent back to
// onboarding; every product page requires a shop to exist first.
func shopOf(c *fiber.Ctx, shops *services.ShopService) (*domain.Shop, error) {
	u := c.Locals("user").(*domain.User)
	shop, err := shops.ForOwner(u.ID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, c.Redirect("/onboarding")
	}
	return shop, nil
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	shop, err := shopOf(c, h.Shops)
	if shop == nil {
		return err
	}
	products, err := h.Products.ListForShop(shop.ID)
	if err != nil {
		log.Error(c, "products.list.error", err, nil)
		return fiber.ErrInternalServerError
	}
	return render(c, "products", fiber.Map{"Shop": shop, "Products": products})
}

func (h *ProductHandler) NewForm(c *fiber.Ctx) error {
	shop, err := shopOf(c, h.Shops)
	if shop == nil {
		return err
	}
	return render(c, "product_form", fiber.Map{
		"Shop": shop, "Categories": domain.Categories, "Conditions": domain.Conditions, "Err": "",
	})
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	shop, err := shopOf(c, h.Shops)
	if shop == nil {
		return err
	}
	in, msg := parseProductForm(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).Render("product_form", fiber.Map{
			"Shop": shop, "Categories": domain.Categories, "Conditions": domain.Conditions,
			"Err": msg, "CSRFToken": c.Locals("CSRFToken"),
		})
	}
	p, err := h.Products.Create(shop.ID, in)
	if err != nil {
		log.Error(c, "products.create.error", err, nil)
		return fiber.ErrInternalServerError
	}
	log.Audit(c, "products.create", map[string]any{"product_id": p.ID})
	return c.Redirect("/produtos")
}

func (h *ProductHandler) EditForm(c *fiber.Ctx) error {
	shop, err := shopOf(c, h.Shops)
	if shop == nil {
		return err
	}
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFoundPage(c)
	}
	p, err := h.Products.Get(shop.ID, id)
	if errors.Is(err, services.ErrProductNotFound) {
		return notFoundPage(c)
	}
	if err != nil {
		log.Error(c, "products.get.error", err, nil)
		return fiber.ErrInternalServerError
	}
	data := fiber.Map{
		"Shop": shop, "Categories": domain.Categories, "Conditions": domain.Conditions,
		"P": p, "Err": "",
	}
	// prefill prices in the same format the form accepts
	if p.PriceCash.Valid {
		data["PriceCash"] = formValueCentavos(p.PriceCash.Int64)
	}
	if p.PriceCard.Valid {
		data["PriceCard"] = formValueCentavos(p.PriceCard.Int64)
	}
	return render(c, "product_form", data)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	shop, err := shopOf(c, h.Shops)
	if shop == nil {
		return err
	}
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFoundPage(c)
	}
	in, msg := parseProductForm(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).Render("product_form", fiber.Map{
			"Shop": shop, "Categories": domain.Categories, "Conditions": domain.Conditions,
			"Err": msg, "CSRFToken": c.Locals("CSRFToken"),
		})
	}
	err = h.Products.Update(shop.ID, id, in)
	if errors.Is(err, services.ErrProductNotFound) {
		return notFoundPage(c)
	}
	if err != nil {
		log.Error(c, "products.update.error", err, nil)
		return fiber.ErrInternalServerError
	}
	log.Audit(c, "products.update", map[string]any{"product_id": id})
	return c.Redirect("/produtos")
}

func (h *ProductHandler) Toggle(c *fiber.Ctx) error {
	shop, err := shopOf(c, h.Shops)
	if shop == nil {
		return err
	}
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFoundPage(c)
	}
	err = h.Products.Toggle(shop.ID, id)
	if errors.Is(err, services.ErrProductNotFound) {
		return notFoundPage(c)
	}
	if err != nil {
		log.Error(c, "products.toggle.error", err, nil)
		return fiber.ErrInternalServerError
	}
	log.Audit(c, "products.toggle", map[string]any{"product_id": id})
	return c.Redirect("/produtos")
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	shop, err := shopOf(c, h.Shops)
	if shop == nil {
		return err
	}
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFoundPage(c)
	}
	err = h.Products.Delete(shop.ID, id)
	if errors.Is(err, services.ErrProductNotFound) {
		return notFoundPage(c)
	}
	if err != nil {
		log.Error(c, "products.delete.error", err, nil)
		return fiber.ErrInternalServerError
	}
	log.Audit(c, "products.delete", map[string]any{"product_id": id})
	return c.Redirect("/produtos")
}

// Click is the public click counter endpoint the storefront fires before a
// shopper follows a payment or WhatsApp link. Failures are logged and
// swallowed; the navigation must never depend on it.
func (h *ProductHandler) Click(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if err := h.Products.RegisterClick(id); err != nil {
		log.Error(c, "products.click.error", err, map[string]any{"product_id": id})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func notFoundPage(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Produto não encontrado"})
}

// parseProductForm validates the manual product form. A non-empty message
// means the submission is rejected with that human-readable reason.
func parseProductForm(c *fiber.Ctx) (services.ProductInput, string) {
	var in services.ProductInput

	if !domain.ValidCategory(c.FormValue("category")) {
		return in, "Selecione uma categoria válida"
	}
	in.Category = c.FormValue("category")

	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return in, "Informe o nome do produto"
	}
	in.Name = name
	in.Model = c.FormValue("model")
	in.Storage = c.FormValue("storage")
	in.Color = c.FormValue("color")

	if cond := c.FormValue("condition"); cond != "" {
		if !domain.ValidCondition(cond) {
			return in, "Condição inválida"
		}
		in.Condition = cond
	}

	priceCash, ok := validate.Price(c.FormValue("price_cash"))
	if !ok {
		return in, "Preço à vista deve ser maior que zero"
	}
	in.PriceCash = priceCash
	priceCard, ok := validate.Price(c.FormValue("price_card"))
	if !ok {
		return in, "Preço no cartão deve ser maior que zero"
	}
	in.PriceCard = priceCard

	in.DeliveryTime = c.FormValue("delivery_time")

	notes, ok := validate.Notes(c.FormValue("notes"))
	if !ok {
		return in, "Observações muito longas (máximo 500 caracteres)"
	}
	in.Notes = notes

	paymentLink, ok := validate.URLField(c.FormValue("payment_link"))
	if !ok {
		return in, "Link de pagamento inválido"
	}
	in.PaymentLink = paymentLink

	imageURL, ok := validate.URLField(c.FormValue("image_url"))
	if !ok {
		return in, "URL de imagem inválida"
	}
	in.ImageURL = imageURL

	return in, ""
}
