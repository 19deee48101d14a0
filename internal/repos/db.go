package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed a demo reseller if the DB is empty (idempotent; safe to run every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

-- Sessions (id is the value of the 'session' cookie)
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

-- Shops (one per user)
CREATE TABLE IF NOT EXISTS shops(
  id TEXT PRIMARY KEY,
  owner_id TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  whatsapp TEXT,
  logo_url TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_shops_slug ON shops(slug);

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  shop_id TEXT NOT NULL REFERENCES shops(id) ON DELETE CASCADE,
  category TEXT NOT NULL CHECK (category IN ('iPhone','iPad','Watch','Mac')),
  name TEXT NOT NULL,
  model TEXT NOT NULL,
  storage TEXT,
  color TEXT,
  condition TEXT CHECK (condition IN ('Lacrado','Seminovo','Vitrine')),
  price_cash INTEGER CHECK (price_cash > 0),
  price_card INTEGER CHECK (price_card > 0),
  delivery_time TEXT,
  notes TEXT,
  payment_link TEXT,
  image_url TEXT,
  active INTEGER NOT NULL DEFAULT 1,
  clicks INTEGER NOT NULL DEFAULT 0 CHECK (clicks >= 0),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_shop       ON products(shop_id);
CREATE INDEX IF NOT EXISTS idx_products_active     ON products(shop_id, active);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);
`
	_, err := db.Exec(schema)
	return err
}

// seedIfEmpty inserts one demo reseller with a storefront so a fresh checkout
// has something to show. Safe to run on every startup.
func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo user/shop/products")

	hash, _ := bcrypt.GenerateFromPassword([]byte("trocar123"), 12)

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO users(id,email,password_hash) VALUES ('u-demo','demo@vitrine.test',?)`, string(hash))
	tx.MustExec(`INSERT INTO shops(id,owner_id,name,slug,whatsapp) VALUES
	  ('s-demo','u-demo','Loja Demo','loja-demo','5511999990000')`)
	tx.MustExec(`INSERT INTO products(id,shop_id,category,name,model,storage,color,condition,price_cash,delivery_time) VALUES
	  ('p-demo-1','s-demo','iPhone','iPhone 15 Pro','iPhone 15 Pro','256GB','Titânio Preto','Lacrado',749900,'Pronta entrega'),
	  ('p-demo-2','s-demo','iPhone','iPhone 13','iPhone 13','128GB','Meia-noite','Seminovo',289900,'Encomenda (7 dias)'),
	  ('p-demo-3','s-demo','Watch','Apple Watch Series 10','Apple Watch Series 10',NULL,'Prateado','Lacrado',449900,'Pronta entrega')`)

	return tx.Commit()
}
