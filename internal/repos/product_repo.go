package repos

import (
	"vitrine/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, shop_id, category, name, model, storage, color, condition,
  price_cash, price_card, delivery_time, notes, payment_link, image_url,
  active, clicks, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ProductRepo) ListByShop(shopID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
  SELECT `+productCols+`
  FROM products
  WHERE shop_id = ?
  ORDER BY created_at DESC, id
`, shopID)
	return out, err
}

// ListActiveByShop is the storefront feed: active products, newest first.
func (r *ProductRepo) ListActiveByShop(shopID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
  SELECT `+productCols+`
  FROM products
  WHERE shop_id = ? AND active = 1
  ORDER BY created_at DESC, id
`, shopID)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

func (r *ProductRepo) Create(p *domain.Product) error {
	_, err := r.db.Exec(`
  INSERT INTO products(id, shop_id, category, name, model, storage, color, condition,
                       price_cash, price_card, delivery_time, notes, payment_link, image_url, active)
  VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		p.ID, p.ShopID, p.Category, p.Name, p.Model, p.Storage, p.Color, p.Condition,
		p.PriceCash, p.PriceCard, p.DeliveryTime, p.Notes, p.PaymentLink, p.ImageURL, p.Active)
	return err
}

func (r *ProductRepo) Update(p *domain.Product) error {
	_, err := r.db.Exec(`
  UPDATE products SET category=?, name=?, model=?, storage=?, color=?, condition=?,
                      price_cash=?, price_card=?, delivery_time=?, notes=?,
                      payment_link=?, image_url=?, updated_at=CURRENT_TIMESTAMP
  WHERE id=?`,
		p.Category, p.Name, p.Model, p.Storage, p.Color, p.Condition,
		p.PriceCash, p.PriceCard, p.DeliveryTime, p.Notes,
		p.PaymentLink, p.ImageURL, p.ID)
	return err
}

// ToggleActive flips the soft-lifecycle flag.
func (r *ProductRepo) ToggleActive(id string) error {
	_, err := r.db.Exec(`UPDATE products SET active = 1 - active, updated_at=CURRENT_TIMESTAMP WHERE id=?`, id)
	return err
}

func (r *ProductRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	return err
}

// IncrementClicks bumps the click counter. Best-effort: callers ignore the
// error beyond logging it.
func (r *ProductRepo) IncrementClicks(id string) error {
	_, err := r.db.Exec(`UPDATE products SET clicks = clicks + 1 WHERE id=?`, id)
	return err
}
