package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"vitrine/internal/api"
	"vitrine/internal/config"
	"vitrine/internal/domain"
	"vitrine/internal/http/handlers"
	"vitrine/internal/money"
)

// Tokens the fake backend recognizes.
const (
	tokenCustomer = "tok-customer"
	tokenAdmin    = "tok-admin"
)

func testEngine() *html.Engine {
	engine := html.New("../../web/templates", ".html")
	engine.AddFunc("money", money.Format)
	engine.AddFunc("brl", money.BRL)
	engine.AddFunc("statusLabel", domain.StatusLabel)
	engine.AddFunc("itemTotal", func(price float64, qty int) float64 {
		return price * float64(qty)
	})
	return engine
}

// newApp wires the real handlers against the given backend URL, with the same
// middleware order as main.
func newApp(t *testing.T, backendURL string) *fiber.App {
	t.Helper()

	var cfg config.Config
	client := api.New(backendURL, 2*time.Second)
	deps := handlers.NewDeps(client, cfg)

	app := fiber.New(fiber.Config{
		Views: testEngine(),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Algo deu errado. Tente novamente.",
			})
		},
	})
	app.Use(requestid.New())
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})
	app.Use(handlers.AttachUser(deps.Session))

	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/search", deps.CatalogHandler.Search)
	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", deps.AuthHandler.Login)
	app.Post("/logout", deps.AuthHandler.Logout)

	cart := app.Group("/cart", handlers.RequireUser())
	cart.Get("/", deps.CartHandler.View)
	cart.Post("/add", deps.CartHandler.Add)
	cart.Post("/items/:id", deps.CartHandler.UpdateQuantity)
	cart.Post("/items/:id/delete", deps.CartHandler.Remove)
	cart.Post("/coupon", deps.CartHandler.ApplyCoupon)

	app.Post("/checkout", handlers.RequireUser(), deps.CheckoutHandler.Checkout)

	admin := app.Group("/admin", handlers.RequireAdmin())
	admin.Get("/dashboard", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	admin.Get("/products", deps.AdminCatalog.Products)
	admin.Post("/products", deps.AdminCatalog.SaveProduct)
	admin.Post("/products/:id", deps.AdminCatalog.SaveProduct)
	admin.Post("/products/:id/delete", deps.AdminCatalog.DeleteProduct)
	admin.Post("/orders/:id/status", deps.AdminHandler.UpdateOrderStatus)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Página não encontrada"})
	})
	return app
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// fetchCSRF performs a GET so the middleware issues the double-submit token.
func fetchCSRF(t *testing.T, app *fiber.App, path string) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatal(err)
	}
	tok := extractCookie(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return tok
}

// profileJSON is what GET /auth/users/me/ returns for each known token.
func profileJSON(token string) (string, bool) {
	switch token {
	case "Bearer " + tokenCustomer:
		return `{"id":1,"email":"ana@example.com","full_name":"Ana Lima","is_active":true,"is_superuser":false}`, true
	case "Bearer " + tokenAdmin:
		return `{"id":2,"email":"root@example.com","full_name":"Root","is_active":true,"is_superuser":true}`, true
	}
	return "", false
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
