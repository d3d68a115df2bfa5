package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newCheckoutBackend(t *testing.T, sessionBody string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/users/me/", func(w http.ResponseWriter, r *http.Request) {
		if body, ok := profileJSON(r.Header.Get("Authorization")); ok {
			writeJSON(w, http.StatusOK, body)
			return
		}
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Não autenticado"}`)
	})
	mux.HandleFunc("/orders/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, `{"detail":"método não permitido"}`)
			return
		}
		writeJSON(w, http.StatusCreated, `{"id":5,"total_price":39.9,"status":"pending_payment","items":[]}`)
	})
	mux.HandleFunc("/payments/create-checkout-session/5", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sessionBody)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// Checkout creates the order, asks for a payment session and hands the
// browser to the external payment page with a 303.
func TestCheckoutRedirectsToPaymentSession(t *testing.T) {
	srv := newCheckoutBackend(t, `{"checkout_url":"https://pagamentos.example.com/s/abc123"}`)
	app := newApp(t, srv.URL)
	csrfTok := fetchCSRF(t, app, "/login")

	req := httptest.NewRequest("POST", "/checkout", strings.NewReader("csrf="+csrfTok))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tokenCustomer})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 hand-off, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "https://pagamentos.example.com/s/abc123" {
		t.Fatalf("expected the payment session URL, got %q", loc)
	}
}

// A session response without a URL is a failure: the cart re-renders with an
// inline error instead of redirecting nowhere.
func TestCheckoutWithoutSessionURLFails(t *testing.T) {
	srv := newCheckoutBackend(t, `{}`)
	app := newApp(t, srv.URL)
	csrfTok := fetchCSRF(t, app, "/login")

	req := httptest.NewRequest("POST", "/checkout", strings.NewReader("csrf="+csrfTok))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tokenCustomer})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if !strings.Contains(readBody(t, resp), "Não foi possível falar com o servidor") {
		t.Fatal("cart page should carry the inline failure message")
	}
}
