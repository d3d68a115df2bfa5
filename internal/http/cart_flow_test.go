package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// cartBackend serves a coupon-discounted cart and records every cart call
// with its exact path, so tests can assert both the write-then-refetch
// contract and which resource a mutation addressed. The cart line id (11)
// deliberately differs from the product id (7): the backend keys
// /cart/items/{id} by product id.
type cartBackend struct {
	mu    sync.Mutex
	calls []string
}

func (b *cartBackend) record(call string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, call)
}

func (b *cartBackend) recorded() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func newCartBackend(t *testing.T) (*httptest.Server, *cartBackend) {
	t.Helper()
	b := &cartBackend{}
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/users/me/", func(w http.ResponseWriter, r *http.Request) {
		if body, ok := profileJSON(r.Header.Get("Authorization")); ok {
			writeJSON(w, http.StatusOK, body)
			return
		}
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Não autenticado"}`)
	})
	mux.HandleFunc("/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		b.record(r.Method + " " + r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/cart/", func(w http.ResponseWriter, r *http.Request) {
		b.record(r.Method + " " + r.URL.Path)
		writeJSON(w, http.StatusOK, `{
			"id": 1,
			"items": [{"id": 11, "quantity": 2, "product": {"id": 7, "name": "Caneca Retrô", "price": 10.0, "category": {"id": 1, "title": "Cozinha"}}}],
			"total_price": 20.0,
			"discount_amount": 5.0,
			"final_price": 15.0,
			"coupon_code": "PROMO5"
		}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, b
}

func getCartPage(t *testing.T, app *fiber.App) string {
	t.Helper()
	req := httptest.NewRequest("GET", "/cart/", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tokenCustomer})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	return readBody(t, resp)
}

func postCartForm(t *testing.T, app *fiber.App, path, form string) *http.Response {
	t.Helper()
	csrfTok := fetchCSRF(t, app, "/login")
	body := "csrf=" + csrfTok
	if form != "" {
		body += "&" + form
	}
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tokenCustomer})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

// Totals come from the backend verbatim and render with the comma decimal:
// subtotal 20,00, discount 5,00, final 15,00.
func TestCartRendersBackendTotalsInPtBR(t *testing.T) {
	srv, _ := newCartBackend(t)
	app := newApp(t, srv.URL)

	body := getCartPage(t, app)
	for _, want := range []string{"R$ 20,00", "R$ 5,00", "R$ 15,00", "PROMO5"} {
		if !strings.Contains(body, want) {
			t.Fatalf("cart page missing %q, body:\n%s", want, body)
		}
	}
}

// The item forms must address cart lines by product id, never by the cart
// line's own id: the backend keys /cart/items/{id} by product.
func TestCartItemFormsPostProductID(t *testing.T) {
	srv, _ := newCartBackend(t)
	app := newApp(t, srv.URL)

	body := getCartPage(t, app)
	if !strings.Contains(body, `action="/cart/items/7"`) {
		t.Fatalf("quantity form must target product id 7, body:\n%s", body)
	}
	if !strings.Contains(body, `action="/cart/items/7/delete"`) {
		t.Fatalf("remove form must target product id 7, body:\n%s", body)
	}
	if strings.Contains(body, "/cart/items/11") {
		t.Fatal("cart forms must not leak the cart line id into item URLs")
	}
}

// Adding an item must POST the mutation and then re-fetch the whole cart;
// the response is a redirect back to the cart page.
func TestCartAddWritesThenRefetches(t *testing.T) {
	srv, backend := newCartBackend(t)
	app := newApp(t, srv.URL)

	resp := postCartForm(t, app, "/cart/add", "product_id=7&quantity=2")
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/cart" {
		t.Fatalf("expected redirect to /cart, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	calls := backend.recorded()
	if len(calls) != 2 || calls[0] != "POST /cart/items/" || calls[1] != "GET /cart/" {
		t.Fatalf("expected write-then-refetch, got %v", calls)
	}
}

// Submitting the remove form as rendered must DELETE the product-keyed
// resource, then re-fetch the cart.
func TestCartRemoveDeletesByProductID(t *testing.T) {
	srv, backend := newCartBackend(t)
	app := newApp(t, srv.URL)

	resp := postCartForm(t, app, "/cart/items/7/delete", "")
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/cart" {
		t.Fatalf("expected redirect to /cart, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	calls := backend.recorded()
	if len(calls) != 2 || calls[0] != "DELETE /cart/items/7" || calls[1] != "GET /cart/" {
		t.Fatalf("expected product-keyed delete then refetch, got %v", calls)
	}
}

func TestCartQuantityUpdatePutsByProductID(t *testing.T) {
	srv, backend := newCartBackend(t)
	app := newApp(t, srv.URL)

	resp := postCartForm(t, app, "/cart/items/7", "quantity=3")
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/cart" {
		t.Fatalf("expected redirect to /cart, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	calls := backend.recorded()
	if len(calls) != 2 || calls[0] != "PUT /cart/items/7" || calls[1] != "GET /cart/" {
		t.Fatalf("expected product-keyed update then refetch, got %v", calls)
	}
}

// The cart is for logged-in users only; anonymous requests bounce to login.
func TestCartRequiresLogin(t *testing.T) {
	srv, _ := newCartBackend(t)
	app := newApp(t, srv.URL)

	resp, err := app.Test(httptest.NewRequest("GET", "/cart/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}
