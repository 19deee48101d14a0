package domain

import "database/sql"

// Product categories admitted by the catalog and the product form.
var Categories = []string{"iPhone", "iPad", "Watch", "Mac"}

// Condition values for listed products.
var Conditions = []string{"Lacrado", "Seminovo", "Vitrine"}

func ValidCategory(s string) bool  { return contains(Categories, s) }
func ValidCondition(s string) bool { return contains(Conditions, s) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

type Shop struct {
	ID        string         `db:"id"`
	OwnerID   string         `db:"owner_id"`
	Name      string         `db:"name"`
	Slug      string         `db:"slug"`
	Whatsapp  sql.NullString `db:"whatsapp"`
	LogoURL   sql.NullString `db:"logo_url"`
	CreatedAt string         `db:"created_at"`
	UpdatedAt string         `db:"updated_at"`
}

type Product struct {
	ID           string         `db:"id"`
	ShopID       string         `db:"shop_id"`
	Category     string         `db:"category"`
	Name         string         `db:"name"`
	Model        string         `db:"model"`
	Storage      sql.NullString `db:"storage"`
	Color        sql.NullString `db:"color"`
	Condition    sql.NullString `db:"condition"`  // Lacrado | Seminovo | Vitrine
	PriceCash    sql.NullInt64  `db:"price_cash"` // centavos
	PriceCard    sql.NullInt64  `db:"price_card"` // centavos
	DeliveryTime sql.NullString `db:"delivery_time"`
	Notes        sql.NullString `db:"notes"`
	PaymentLink  sql.NullString `db:"payment_link"`
	ImageURL     sql.NullString `db:"image_url"`
	Active       bool           `db:"active"`
	Clicks       int            `db:"clicks"`
	CreatedAt    string         `db:"created_at"`
	UpdatedAt    string         `db:"updated_at"`
}
