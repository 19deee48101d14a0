package handlers

import (
	"errors"

	"vitrine/internal/domain"
	"vitrine/internal/log"
	"vitrine/internal/services"
	"vitrine/internal/storefront"
	"vitrine/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type StorefrontHandler struct {
	Store *services.StorefrontService
}

// productCard is a render-ready product: formatted prices and the link the
// buy button should follow (payment link when set, WhatsApp otherwise).
type productCard struct {
	domain.Product
	PriceCash    string
	PriceCard    string
	Link         string
	PaymentFirst bool
}

func (h *StorefrontHandler) Show(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		return shopNotFound(c)
	}

	q := storefront.Query{
		Text:      c.Query("busca"),
		Category:  c.Query("categoria"),
		Storage:   c.Query("capacidade"),
		Color:     c.Query("cor"),
		Condition: c.Query("condicao"),
	}
	switch d := c.Query("entrega"); d {
	case storefront.DeliveryReady, storefront.DeliveryOrder:
		q.Delivery = d
	}

	view, err := h.Store.View(slug, q)
	if errors.Is(err, services.ErrShopNotFound) {
		return shopNotFound(c)
	}
	if err != nil {
		log.Error(c, "storefront.view.error", err, nil)
		return fiber.ErrInternalServerError
	}

	cards := make([]productCard, 0, len(view.Products))
	for _, p := range view.Products {
		card := productCard{Product: p}
		if p.PriceCash.Valid {
			card.PriceCash = formatCentavos(p.PriceCash.Int64)
		}
		if p.PriceCard.Valid {
			card.PriceCard = formatCentavos(p.PriceCard.Int64)
		}
		if p.PaymentLink.Valid && p.PaymentLink.String != "" {
			card.Link = p.PaymentLink.String
			card.PaymentFirst = true
		} else {
			card.Link = storefront.ProductWhatsAppLink(view.Shop, p)
		}
		cards = append(cards, card)
	}

	return render(c, "storefront", fiber.Map{
		"Shop":         view.Shop,
		"ShopWhatsApp": storefront.ShopWhatsAppLink(view.Shop),
		"Cards":        cards,
		"Facets":       view.Facets,
		"Query":        view.Query,
		"Filtered":     !view.Query.IsZero(),
		"Total":        view.Total,
	})
}

func shopNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Loja não encontrada"})
}
