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

	"vitrine/internal/api"
	"vitrine/internal/config"
	"vitrine/internal/domain"
	"vitrine/internal/http/handlers"
	applog "vitrine/internal/log"
	"vitrine/internal/money"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	// Optional file logging
	logOut := io.Writer(os.Stdout)
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.Log.File, err)
		} else {
			logOut = io.MultiWriter(os.Stdout, f)
		}
	}
	applog.Init(logOut, cfg.Log.Pretty)

	client := api.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	deps := handlers.NewDeps(client, cfg)

	// Templates & app
	engine := html.New(cfg.Templates, ".html")
	engine.AddFunc("money", money.Format)
	engine.AddFunc("brl", money.BRL)
	engine.AddFunc("statusLabel", domain.StatusLabel)
	engine.AddFunc("itemTotal", func(price float64, qty int) float64 {
		return price * float64(qty)
	})

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
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
	app.Use(handlers.AttachUser(deps.Session))
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(string(c.Request().URI().Path()), "/static/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   cfg.Cookie.Secure,
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

	app.Static("/static", "./web/static")

	// ---------- Storefront ----------
	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/search", limiter.New(limiter.Config{Max: 20, Expiration: time.Minute}), deps.CatalogHandler.Search)
	app.Get("/category/:id", deps.CatalogHandler.Category)
	app.Get("/product/:id", deps.ProductHandler.Detail)

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
	app.Get("/register", deps.AuthHandler.RegisterForm)
	app.Post("/register", deps.AuthHandler.Register)
	app.Post("/logout", deps.AuthHandler.Logout)

	// Cart & checkout, login required
	cart := app.Group("/cart", handlers.RequireUser())
	cart.Get("/", deps.CartHandler.View)
	cart.Post("/add", deps.CartHandler.Add)
	cart.Post("/items/:id", deps.CartHandler.UpdateQuantity)
	cart.Post("/items/:id/delete", deps.CartHandler.Remove)
	cart.Post("/coupon", deps.CartHandler.ApplyCoupon)
	cart.Post("/coupon/delete", deps.CartHandler.RemoveCoupon)

	app.Post("/checkout", handlers.RequireUser(), deps.CheckoutHandler.Checkout)
	app.Get("/payment/success", deps.CheckoutHandler.PaymentSuccess)

	// Account
	account := app.Group("/account", handlers.RequireUser())
	account.Get("/", deps.AccountHandler.Profile)
	account.Post("/", deps.AccountHandler.UpdateProfile)
	account.Get("/password", deps.AccountHandler.PasswordForm)
	account.Post("/password", deps.AccountHandler.UpdatePassword)
	account.Get("/orders", deps.AccountHandler.OrderHistory)

	// ---------- Back office ----------
	admin := app.Group("/admin", handlers.RequireAdmin())
	admin.Get("/dashboard", deps.AdminHandler.Dashboard)
	admin.Get("/orders", deps.AdminHandler.Orders)
	admin.Get("/orders/:id", deps.AdminHandler.OrderDetail)
	admin.Post("/orders/:id/status", deps.AdminHandler.UpdateOrderStatus)
	admin.Get("/users", deps.AdminHandler.Users)
	admin.Post("/users/:id/active", deps.AdminHandler.ToggleUserActive)
	admin.Post("/users/:id/delete", deps.AdminHandler.DeleteUser)

	admin.Get("/products", deps.AdminCatalog.Products)
	admin.Post("/products", deps.AdminCatalog.SaveProduct)
	admin.Post("/products/:id", deps.AdminCatalog.SaveProduct)
	admin.Post("/products/:id/delete", deps.AdminCatalog.DeleteProduct)
	admin.Get("/categories", deps.AdminCatalog.Categories)
	admin.Post("/categories", deps.AdminCatalog.SaveCategory)
	admin.Post("/categories/:id", deps.AdminCatalog.SaveCategory)
	admin.Post("/categories/:id/delete", deps.AdminCatalog.DeleteCategory)
	admin.Get("/banners", deps.AdminCatalog.Banners)
	admin.Post("/banners", deps.AdminCatalog.SaveBanner)
	admin.Post("/banners/:id", deps.AdminCatalog.SaveBanner)
	admin.Post("/banners/:id/delete", deps.AdminCatalog.DeleteBanner)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Página não encontrada"})
	})

	log.Fatal(app.Listen(cfg.Listen))
}
