package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// adminBackend records every catalog and order call so tests can assert that
// list pages re-render from a fresh full fetch after each mutation.
type adminBackend struct {
	mu    sync.Mutex
	calls []string
}

func (b *adminBackend) record(call string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, call)
}

func (b *adminBackend) recorded() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func newAdminBackend(t *testing.T) (*httptest.Server, *adminBackend) {
	t.Helper()
	b := &adminBackend{}
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/users/me/", func(w http.ResponseWriter, r *http.Request) {
		if body, ok := profileJSON(r.Header.Get("Authorization")); ok {
			writeJSON(w, http.StatusOK, body)
			return
		}
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Não autenticado"}`)
	})
	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		b.record(r.Method + " " + r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, `[{"id":7,"name":"Caneca Retrô","price":39.9,"category":{"id":1,"title":"Cozinha"}}]`)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			writeJSON(w, http.StatusOK, `{"id":7,"name":"Caneca Retrô","price":39.9,"category":{"id":1,"title":"Cozinha"}}`)
		}
	})
	mux.HandleFunc("/categories/", func(w http.ResponseWriter, r *http.Request) {
		b.record(r.Method + " " + r.URL.Path)
		writeJSON(w, http.StatusOK, `[{"id":1,"title":"Cozinha"}]`)
	})
	mux.HandleFunc("/orders/", func(w http.ResponseWriter, r *http.Request) {
		b.record(r.Method + " " + r.URL.Path)
		switch r.URL.Path {
		case "/orders/admin/all":
			writeJSON(w, http.StatusOK, `[{"id":5,"created_at":"2026-08-01T10:00:00","total_price":39.9,"discount_amount":0,"status":"paid","items":[]}]`)
		default: // /orders/{id}/status
			writeJSON(w, http.StatusOK, `{"id":5,"status":"shipped","total_price":39.9,"items":[]}`)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, b
}

func postAdminForm(t *testing.T, app *fiber.App, path, form string) *http.Response {
	t.Helper()
	csrfTok := fetchCSRF(t, app, "/login")
	body := "csrf=" + csrfTok
	if form != "" {
		body += "&" + form
	}
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tokenAdmin})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func getAdminList(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tokenAdmin})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

// contains reports whether call appears in calls.
func contains(calls []string, call string) bool {
	for _, c := range calls {
		if c == call {
			return true
		}
	}
	return false
}

// Deleting a product redirects to the list page, which re-renders from a
// fresh full fetch of products and categories; nothing is patched in place.
func TestAdminProductDeleteThenFullRefetch(t *testing.T) {
	srv, backend := newAdminBackend(t)
	app := newApp(t, srv.URL)

	resp := postAdminForm(t, app, "/admin/products/7/delete", "")
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/admin/products" {
		t.Fatalf("expected redirect to /admin/products, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	calls := backend.recorded()
	if len(calls) != 1 || calls[0] != "DELETE /products/7" {
		t.Fatalf("mutation alone must not fetch lists, got %v", calls)
	}

	// Following the redirect re-fetches the whole collection.
	if resp := getAdminList(t, app, "/admin/products"); resp.StatusCode != http.StatusOK {
		t.Fatalf("list page expected 200, got %d", resp.StatusCode)
	}
	after := backend.recorded()[len(calls):]
	if !contains(after, "GET /products/") || !contains(after, "GET /categories/") {
		t.Fatalf("list page must do a fresh full fetch, got %v", after)
	}
}

// Editing posts the update and lands back on the freshly fetched list.
func TestAdminProductUpdateThenFullRefetch(t *testing.T) {
	srv, backend := newAdminBackend(t)
	app := newApp(t, srv.URL)

	resp := postAdminForm(t, app, "/admin/products/7", "name=Caneca+Nova&price=49.9&category_id=1")
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/admin/products" {
		t.Fatalf("expected redirect to /admin/products, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	calls := backend.recorded()
	if len(calls) != 1 || calls[0] != "PUT /products/7" {
		t.Fatalf("expected a single product update, got %v", calls)
	}

	if resp := getAdminList(t, app, "/admin/products"); resp.StatusCode != http.StatusOK {
		t.Fatalf("list page expected 200, got %d", resp.StatusCode)
	}
	after := backend.recorded()[len(calls):]
	if !contains(after, "GET /products/") || !contains(after, "GET /categories/") {
		t.Fatalf("list page must do a fresh full fetch, got %v", after)
	}
}

// A status transition updates the order and redirects to the detail page,
// which re-fetches the full admin listing.
func TestAdminOrderStatusUpdateThenRefetch(t *testing.T) {
	srv, backend := newAdminBackend(t)
	app := newApp(t, srv.URL)

	resp := postAdminForm(t, app, "/admin/orders/5/status", "status=shipped")
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/admin/orders/5" {
		t.Fatalf("expected redirect to the order detail, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	calls := backend.recorded()
	if len(calls) != 1 || calls[0] != "PUT /orders/5/status" {
		t.Fatalf("expected a single status update, got %v", calls)
	}
}
