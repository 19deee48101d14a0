package handlers

import (
	"vitrine/internal/log"
	"vitrine/internal/services"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Shops *services.ShopService
	Dash  *services.DashboardService
}

// Landing is the public root page.
func (h *DashboardHandler) Landing(c *fiber.Ctx) error {
	return render(c, "landing", nil)
}

func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	shop, err := shopOf(c, h.Shops)
	if shop == nil {
		return err
	}
	stats, err := h.Dash.Stats(shop.ID)
	if err != nil {
		log.Error(c, "dashboard.stats.error", err, nil)
		return fiber.ErrInternalServerError
	}
	return render(c, "dashboard", fiber.Map{"Shop": shop, "Stats": stats})
}
