package services

import (
	"database/sql"
	"errors"

	"vitrine/internal/domain"
	"vitrine/internal/repos"

	"github.com/google/uuid"
)

var ErrSlugTaken = errors.New("este slug já está em uso")

type ShopService struct {
	Shops *repos.ShopRepo
}

func NewShopService(shops *repos.ShopRepo) *ShopService { return &ShopService{Shops: shops} }

type ShopInput struct {
	Name     string
	Slug     string
	Whatsapp string
	LogoURL  string
}

// ForOwner returns the user's shop, or nil when none exists yet.
func (s *ShopService) ForOwner(ownerID string) (*domain.Shop, error) {
	shop, err := s.Shops.ByOwner(ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return shop, err
}

func (s *ShopService) BySlug(slug string) (*domain.Shop, error) {
	return s.Shops.BySlug(slug)
}

// Save creates the owner's shop on first call and updates it afterwards, so
// the onboarding form is idempotent. Slug uniqueness is global.
func (s *ShopService) Save(ownerID string, in ShopInput) (*domain.Shop, error) {
	existing, err := s.ForOwner(ownerID)
	if err != nil {
		return nil, err
	}

	excludeID := ""
	if existing != nil {
		excludeID = existing.ID
	}
	taken, err := s.Shops.SlugTaken(in.Slug, excludeID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	shop := existing
	if shop == nil {
		shop = &domain.Shop{ID: uuid.NewString(), OwnerID: ownerID}
	}
	shop.Name = in.Name
	shop.Slug = in.Slug
	shop.Whatsapp = nullable(in.Whatsapp)
	shop.LogoURL = nullable(in.LogoURL)

	if existing == nil {
		err = s.Shops.Create(shop)
	} else {
		err = s.Shops.Update(shop)
	}
	if err != nil {
		return nil, err
	}
	return shop, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
