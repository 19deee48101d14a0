package handlers

import (
	"vitrine/internal/catalog"
	"vitrine/internal/log"
	"vitrine/internal/services"
	"vitrine/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog  *catalog.Catalog
	Products *services.ProductService
	Shops    *services.ShopService
}

// selectionFrom replays the submitted choices level by level. The first
// rejected level is returned; everything below it is already reset by the
// selection itself.
func selectionFrom(cat *catalog.Catalog, get func(string) string) (*catalog.Selection, error) {
	sel := catalog.NewSelection(cat)
	if err := sel.SetCategory(get("categoria")); err != nil {
		return sel, err
	}
	sel.SetYear(validate.Year(get("ano")))
	if err := sel.SetItem(get("modelo")); err != nil {
		return sel, err
	}
	if err := sel.SetStorage(get("capacidade")); err != nil {
		return sel, err
	}
	if err := sel.SetColor(get("cor")); err != nil {
		return sel, err
	}
	return sel, nil
}

func (h *CatalogHandler) selectorData(shop any, sel *catalog.Selection, errMsg string) fiber.Map {
	data := fiber.Map{
		"Shop":       shop,
		"Categories": h.Catalog.Categories(),
		"Sel":        sel,
		"Years":      sel.Years(),
		"Items":      sel.Items(),
		"Err":        errMsg,
	}
	if it, ok := sel.CurrentItem(); ok {
		data["Item"] = it
	}
	return data
}

// Selector renders the cascading category → year → model → storage/color
// picker. Invalid query params are not an error here: the affected level just
// comes back unselected.
func (h *CatalogHandler) Selector(c *fiber.Ctx) error {
	shop, err := shopOf(c, h.Shops)
	if shop == nil {
		return err
	}
	sel, _ := selectionFrom(h.Catalog, func(k string) string { return c.Query(k) })
	return render(c, "catalog", h.selectorData(shop, sel, ""))
}

// Add creates a product from the selection. Here an out-of-list value is a
// rejected submission, surfaced with its reason.
func (h *CatalogHandler) Add(c *fiber.Ctx) error {
	shop, err := shopOf(c, h.Shops)
	if shop == nil {
		return err
	}
	sel, selErr := selectionFrom(h.Catalog, func(k string) string { return c.FormValue(k) })
	if selErr != nil {
		data := h.selectorData(shop, sel, selErr.Error())
		data["CSRFToken"] = c.Locals("CSRFToken")
		return c.Status(fiber.StatusBadRequest).Render("catalog", data)
	}
	draft, err := sel.Draft()
	if err != nil {
		data := h.selectorData(shop, sel, err.Error())
		data["CSRFToken"] = c.Locals("CSRFToken")
		return c.Status(fiber.StatusBadRequest).Render("catalog", data)
	}

	p, err := h.Products.CreateFromDraft(shop.ID, draft)
	if err != nil {
		log.Error(c, "catalog.add.error", err, nil)
		return fiber.ErrInternalServerError
	}
	log.Audit(c, "catalog.add", map[string]any{"product_id": p.ID, "name": draft.Name})
	return c.Redirect("/produtos")
}

// JSON serves the raw catalog dataset, as consumed by the selector page.
func (h *CatalogHandler) JSON(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.Entries())
}
