package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"vitrine/internal/http/handlers"
)

func postForm(t *testing.T, app *fiber.App, path, session string, form url.Values) *http.Response {
	t.Helper()

	respTok, err := app.Test(httptest.NewRequest("GET", "/u/loja-demo", nil))
	if err != nil {
		t.Fatal(err)
	}
	csrfTok := cookieValue(respTok, "csrf_")
	if csrfTok == "" {
		t.Fatal("csrf cookie missing")
	}
	form.Set("csrf", csrfTok)

	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	if session != "" {
		req.AddCookie(&http.Cookie{Name: handlers.SessionCookie, Value: session})
	}
	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

// Full owner journey: register, get sent to onboarding, create the shop, add
// a product through the catalog picker.
func TestOwnerFlow_RegisterToFirstProduct(t *testing.T) {
	app, db := newTestApp(t)

	// register
	resp := postForm(t, app, "/registro", "", url.Values{
		"email":    {"nova@example.com"},
		"password": {"segredo1"},
	})
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/onboarding" {
		t.Fatalf("register: want 302 to /onboarding, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	session := cookieValue(resp, handlers.SessionCookie)
	if session == "" {
		t.Fatal("register did not sign the user in")
	}

	// owner pages bounce to onboarding until the shop exists
	resp = get(t, app, "/produtos", session)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/onboarding" {
		t.Fatalf("produtos before shop: want 302 to /onboarding, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	// create the shop; slug derived from the name
	resp = postForm(t, app, "/onboarding", session, url.Values{
		"name":     {"iStore da Nova"},
		"whatsapp": {"5511911112222"},
	})
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/dashboard" {
		t.Fatalf("onboarding: want 302 to /dashboard, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	if r := get(t, app, "/u/istore-da-nova", ""); r.StatusCode != http.StatusOK {
		t.Fatalf("new storefront: want 200, got %d", r.StatusCode)
	}

	// add a product from the catalog picker
	resp = postForm(t, app, "/produtos/catalogo", session, url.Values{
		"categoria":  {"iPhone"},
		"ano":        {"2024"},
		"modelo":     {"iPhone 16 Pro"},
		"capacidade": {"256GB"},
		"cor":        {"Titânio Preto"},
	})
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/produtos" {
		t.Fatalf("catalog add: want 302 to /produtos, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	var n int
	if err := db.Get(&n, `
	  SELECT COUNT(*) FROM products p JOIN shops s ON s.id = p.shop_id
	  WHERE s.slug = 'istore-da-nova' AND p.name = 'iPhone 16 Pro' AND p.storage = '256GB'`); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("catalog product not persisted, count=%d", n)
	}
}

func TestOwnerFlow_CatalogRejectsForeignStorage(t *testing.T) {
	app, db := newTestApp(t)
	session := loginDemo(t, app)

	// iPhone 16 tops out at 512GB
	resp := postForm(t, app, "/produtos/catalogo", session, url.Values{
		"categoria":  {"iPhone"},
		"ano":        {"2024"},
		"modelo":     {"iPhone 16"},
		"capacidade": {"1TB"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products WHERE name = 'iPhone 16'`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal("rejected selection was persisted")
	}
}

func TestOwnerFlow_SlugConflict(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postForm(t, app, "/registro", "", url.Values{
		"email":    {"outra@example.com"},
		"password": {"segredo1"},
	})
	session := cookieValue(resp, handlers.SessionCookie)
	if session == "" {
		t.Fatal("register did not sign the user in")
	}

	// the seeded shop already owns this slug
	resp = postForm(t, app, "/onboarding", session, url.Values{
		"name": {"Minha Loja"},
		"slug": {"loja-demo"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 on slug conflict, got %d", resp.StatusCode)
	}
	if !strings.Contains(body(t, resp), "slug já está em uso") {
		t.Fatal("conflict page missing the error message")
	}
}
