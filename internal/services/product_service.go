package services

import (
	"database/sql"
	"errors"

	"vitrine/internal/catalog"
	"vitrine/internal/domain"
	"vitrine/internal/repos"

	"github.com/google/uuid"
)

// ErrProductNotFound covers both unknown ids and products owned by another
// shop; callers never learn which.
var ErrProductNotFound = errors.New("produto não encontrado")

type ProductService struct {
	Products *repos.ProductRepo
}

func NewProductService(products *repos.ProductRepo) *ProductService {
	return &ProductService{Products: products}
}

// ProductInput is the already-validated form payload. Empty strings and zero
// prices mean "not set" and are stored as NULL.
type ProductInput struct {
	Category     string
	Name         string
	Model        string
	Storage      string
	Color        string
	Condition    string
	PriceCash    int64
	PriceCard    int64
	DeliveryTime string
	Notes        string
	PaymentLink  string
	ImageURL     string
}

func (s *ProductService) ListForShop(shopID string) ([]domain.Product, error) {
	return s.Products.ListByShop(shopID)
}

// Get fetches a product, enforcing shop ownership.
func (s *ProductService) Get(shopID, id string) (domain.Product, error) {
	p, err := s.Products.Get(id)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && p.ShopID != shopID) {
		return domain.Product{}, ErrProductNotFound
	}
	return p, err
}

func (s *ProductService) Create(shopID string, in ProductInput) (*domain.Product, error) {
	p := fromInput(in)
	p.ID = uuid.NewString()
	p.ShopID = shopID
	p.Active = true
	if p.Model == "" {
		p.Model = p.Name
	}
	if err := s.Products.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateFromDraft turns a validated catalog selection into a product; price,
// condition and delivery are filled in later on the edit form.
func (s *ProductService) CreateFromDraft(shopID string, d catalog.ProductDraft) (*domain.Product, error) {
	return s.Create(shopID, ProductInput{
		Category: d.Category,
		Name:     d.Name,
		Model:    d.Model,
		Storage:  d.Storage,
		Color:    d.Color,
	})
}

func (s *ProductService) Update(shopID, id string, in ProductInput) error {
	existing, err := s.Get(shopID, id)
	if err != nil {
		return err
	}
	p := fromInput(in)
	p.ID = existing.ID
	p.ShopID = existing.ShopID
	if p.Model == "" {
		p.Model = p.Name
	}
	return s.Products.Update(p)
}

func (s *ProductService) Toggle(shopID, id string) error {
	if _, err := s.Get(shopID, id); err != nil {
		return err
	}
	return s.Products.ToggleActive(id)
}

func (s *ProductService) Delete(shopID, id string) error {
	if _, err := s.Get(shopID, id); err != nil {
		return err
	}
	return s.Products.Delete(id)
}

// RegisterClick bumps the click counter for a shopper navigation. It is
// fire-and-forget: the returned error is for logging only and must never
// block the navigation that triggered it.
func (s *ProductService) RegisterClick(id string) error {
	return s.Products.IncrementClicks(id)
}

func fromInput(in ProductInput) *domain.Product {
	return &domain.Product{
		Category:     in.Category,
		Name:         in.Name,
		Model:        in.Model,
		Storage:      nullable(in.Storage),
		Color:        nullable(in.Color),
		Condition:    nullable(in.Condition),
		PriceCash:    nullableInt(in.PriceCash),
		PriceCard:    nullableInt(in.PriceCard),
		DeliveryTime: nullable(in.DeliveryTime),
		Notes:        nullable(in.Notes),
		PaymentLink:  nullable(in.PaymentLink),
		ImageURL:     nullable(in.ImageURL),
	}
}

func nullableInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v > 0}
}
