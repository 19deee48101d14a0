package services

import (
	"database/sql"
	"errors"

	"vitrine/internal/domain"
	"vitrine/internal/repos"
	"vitrine/internal/storefront"
)

var ErrShopNotFound = errors.New("loja não encontrada")

type StorefrontService struct {
	Shops    *repos.ShopRepo
	Products *repos.ProductRepo
}

func NewStorefrontService(shops *repos.ShopRepo, products *repos.ProductRepo) *StorefrontService {
	return &StorefrontService{Shops: shops, Products: products}
}

// StorefrontView is everything the public shop page needs. Facets are
// derived from the full active list (not the filtered one) on every call, so
// the option sets always reflect the current inventory.
type StorefrontView struct {
	Shop     domain.Shop
	Products []domain.Product
	Facets   storefront.Facets
	Query    storefront.Query
	Total    int // active products before filtering
}

func (s *StorefrontService) View(slug string, q storefront.Query) (*StorefrontView, error) {
	shop, err := s.Shops.BySlug(slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, err
	}
	active, err := s.Products.ListActiveByShop(shop.ID)
	if err != nil {
		return nil, err
	}
	return &StorefrontView{
		Shop:     *shop,
		Products: storefront.Filter(active, q),
		Facets:   storefront.Compute(active),
		Query:    q,
		Total:    len(active),
	}, nil
}
