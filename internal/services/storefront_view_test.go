package services_test

import (
	"testing"

	"vitrine/internal/repos"
	"vitrine/internal/services"
	"vitrine/internal/storefront"
)

func TestStorefrontView_SeededShop(t *testing.T) {
	db := memdb(t)
	sf := services.NewStorefrontService(repos.NewShopRepo(db), repos.NewProductRepo(db))

	view, err := sf.View("loja-demo", storefront.Query{})
	if err != nil {
		t.Fatal(err)
	}
	if view.Shop.Slug != "loja-demo" {
		t.Fatalf("wrong shop: %+v", view.Shop)
	}
	if view.Total != 3 || len(view.Products) != 3 {
		t.Fatalf("want all 3 seeded products, got total=%d filtered=%d", view.Total, len(view.Products))
	}

	// narrowing by condition keeps the facet universe intact
	view, err = sf.View("loja-demo", storefront.Query{Condition: "Seminovo"})
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Products) != 1 || view.Products[0].ID != "p-demo-2" {
		t.Fatalf("condition filter: %+v", view.Products)
	}
	if view.Total != 3 {
		t.Fatalf("total should count before filtering, got %d", view.Total)
	}
	if len(view.Facets.Conditions) != 2 {
		t.Fatalf("facets must come from the full active list: %v", view.Facets.Conditions)
	}
}

func TestStorefrontView_HidesPaused(t *testing.T) {
	db := memdb(t)
	productRepo := repos.NewProductRepo(db)
	sf := services.NewStorefrontService(repos.NewShopRepo(db), productRepo)

	if err := productRepo.ToggleActive("p-demo-1"); err != nil {
		t.Fatal(err)
	}

	view, err := sf.View("loja-demo", storefront.Query{})
	if err != nil {
		t.Fatal(err)
	}
	if view.Total != 2 {
		t.Fatalf("paused product still counted: total=%d", view.Total)
	}
	for _, p := range view.Products {
		if p.ID == "p-demo-1" {
			t.Fatal("paused product visible on storefront")
		}
	}
}

func TestStorefrontView_UnknownSlug(t *testing.T) {
	db := memdb(t)
	sf := services.NewStorefrontService(repos.NewShopRepo(db), repos.NewProductRepo(db))

	if _, err := sf.View("loja-inexistente", storefront.Query{}); err != services.ErrShopNotFound {
		t.Fatalf("want ErrShopNotFound, got %v", err)
	}
}

func TestDashboardStats_Seeded(t *testing.T) {
	db := memdb(t)
	productRepo := repos.NewProductRepo(db)
	dash := services.NewDashboardService(productRepo)

	if err := productRepo.ToggleActive("p-demo-3"); err != nil {
		t.Fatal(err)
	}
	if err := productRepo.IncrementClicks("p-demo-1"); err != nil {
		t.Fatal(err)
	}
	if err := productRepo.IncrementClicks("p-demo-2"); err != nil {
		t.Fatal(err)
	}

	st, err := dash.Stats("s-demo")
	if err != nil {
		t.Fatal(err)
	}
	if st.Total != 3 || st.Active != 2 {
		t.Fatalf("counts: %+v", st)
	}
	if st.TotalClicks != 2 {
		t.Fatalf("want 2 clicks, got %d", st.TotalClicks)
	}
	// seed has prices but no images
	if st.WithoutPrice != 0 || st.WithoutImage != 3 {
		t.Fatalf("quality counters: %+v", st)
	}
	// everything was just inserted
	if st.StaleProducts != 0 {
		t.Fatalf("fresh products flagged stale: %+v", st)
	}
}

func TestDashboardStats_Stale(t *testing.T) {
	db := memdb(t)
	dash := services.NewDashboardService(repos.NewProductRepo(db))

	_, err := db.Exec(`UPDATE products SET created_at = datetime('now','-30 days') WHERE id = 'p-demo-2'`)
	if err != nil {
		t.Fatal(err)
	}

	st, err := dash.Stats("s-demo")
	if err != nil {
		t.Fatal(err)
	}
	if st.StaleProducts != 1 {
		t.Fatalf("want 1 stale product, got %d", st.StaleProducts)
	}
}
