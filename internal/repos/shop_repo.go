package repos

import (
	"vitrine/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ShopRepo struct{ db *sqlx.DB }

func NewShopRepo(db *sqlx.DB) *ShopRepo { return &ShopRepo{db: db} }

const shopCols = `id, owner_id, name, slug, whatsapp, logo_url, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ShopRepo) ByOwner(ownerID string) (*domain.Shop, error) {
	var s domain.Shop
	err := r.db.Get(&s, `SELECT `+shopCols+` FROM shops WHERE owner_id=?`, ownerID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShopRepo) BySlug(slug string) (*domain.Shop, error) {
	var s domain.Shop
	err := r.db.Get(&s, `SELECT `+shopCols+` FROM shops WHERE slug=?`, slug)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SlugTaken reports whether another shop already owns the slug.
func (r *ShopRepo) SlugTaken(slug, excludeID string) (bool, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM shops WHERE slug=? AND id<>?`, slug, excludeID)
	return n > 0, err
}

func (r *ShopRepo) Create(s *domain.Shop) error {
	_, err := r.db.Exec(`INSERT INTO shops(id,owner_id,name,slug,whatsapp,logo_url)
	                     VALUES(?,?,?,?,?,?)`,
		s.ID, s.OwnerID, s.Name, s.Slug, s.Whatsapp, s.LogoURL)
	return err
}

func (r *ShopRepo) Update(s *domain.Shop) error {
	_, err := r.db.Exec(`UPDATE shops SET name=?, slug=?, whatsapp=?, logo_url=?, updated_at=CURRENT_TIMESTAMP
	                     WHERE id=?`,
		s.Name, s.Slug, s.Whatsapp, s.LogoURL, s.ID)
	return err
}
