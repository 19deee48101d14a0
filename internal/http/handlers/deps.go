package handlers

import (
	"vitrine/internal/catalog"
	"vitrine/internal/repos"
	"vitrine/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler       *AuthHandler
	ShopHandler       *ShopHandler
	ProductHandler    *ProductHandler
	CatalogHandler    *CatalogHandler
	StorefrontHandler *StorefrontHandler
	DashboardHandler  *DashboardHandler
}

func NewDeps(db *sqlx.DB, cat *catalog.Catalog, auth *services.AuthService) *Deps {
	shopRepo := repos.NewShopRepo(db)
	prodRepo := repos.NewProductRepo(db)

	shopSvc := services.NewShopService(shopRepo)
	prodSvc := services.NewProductService(prodRepo)
	storeSvc := services.NewStorefrontService(shopRepo, prodRepo)
	dashSvc := services.NewDashboardService(prodRepo)

	return &Deps{
		AuthHandler:       &AuthHandler{Auth: auth},
		ShopHandler:       &ShopHandler{Shops: shopSvc},
		ProductHandler:    &ProductHandler{Products: prodSvc, Shops: shopSvc},
		CatalogHandler:    &CatalogHandler{Catalog: cat, Products: prodSvc, Shops: shopSvc},
		StorefrontHandler: &StorefrontHandler{Store: storeSvc},
		DashboardHandler:  &DashboardHandler{Shops: shopSvc, Dash: dashSvc},
	}
}
