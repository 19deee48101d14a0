package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"vitrine/internal/catalog"
	"vitrine/internal/config"
	"vitrine/internal/gate"
	"vitrine/internal/http/handlers"
	applog "vitrine/internal/log"
	"vitrine/internal/repos"
	"vitrine/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Algo deu errado. Tente novamente.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Algo deu errado. Tente novamente.")
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach user to context if logged in (for templates/headers)
	app.Use(func(c *fiber.Ctx) error {
		if token := c.Cookies(handlers.SessionCookie); token != "" {
			if u, err := authSvc.CurrentUser(token); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/static/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		Next: func(c *fiber.Ctx) bool {
			// The click API is called by anonymous shoppers, no form involved.
			return strings.HasPrefix(c.Path(), "/api/")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Falha na verificação de segurança. Atualize a página e tente novamente."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// Access gate: every route below is classified public/protected by path;
	// /static and /api are passed through untouched.
	app.Use(gate.Middleware(gate.Default(), handlers.SessionCookie))

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cat, authSvc)

	// Public pages
	app.Get("/", deps.DashboardHandler.Landing)
	app.Get("/u/:slug", deps.StorefrontHandler.Show)

	// Auth (login throttled)
	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Muitas tentativas. Tente novamente mais tarde."})
		},
	}), deps.AuthHandler.Login)
	app.Get("/registro", deps.AuthHandler.RegisterForm)
	app.Post("/registro", deps.AuthHandler.Register)
	app.Post("/logout", deps.AuthHandler.Logout)

	// Owner pages (gate already redirected anonymous requests; RequireUser
	// additionally rejects tokens that no longer resolve)
	requireUser := handlers.RequireUser(authSvc)
	app.Get("/dashboard", requireUser, deps.DashboardHandler.Home)
	app.Get("/onboarding", requireUser, deps.ShopHandler.OnboardingForm)
	app.Post("/onboarding", requireUser, deps.ShopHandler.Save)
	app.Get("/produtos", requireUser, deps.ProductHandler.List)
	app.Get("/produtos/novo", requireUser, deps.ProductHandler.NewForm)
	app.Post("/produtos", requireUser, deps.ProductHandler.Create)
	app.Get("/produtos/catalogo", requireUser, deps.CatalogHandler.Selector)
	app.Post("/produtos/catalogo", requireUser, deps.CatalogHandler.Add)
	app.Get("/produtos/:id/editar", requireUser, deps.ProductHandler.EditForm)
	app.Post("/produtos/:id", requireUser, deps.ProductHandler.Update)
	app.Post("/produtos/:id/toggle", requireUser, deps.ProductHandler.Toggle)
	app.Post("/produtos/:id/excluir", requireUser, deps.ProductHandler.Delete)

	// API (outside the gate; handlers own their auth)
	api := app.Group("/api/v1")
	api.Get("/catalog", deps.CatalogHandler.JSON)
	api.Post("/products/:id/click", limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|click"
		},
	}), deps.ProductHandler.Click)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Página não encontrada"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
