package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/easyrokra/gateway/internal/audit"
	"github.com/easyrokra/gateway/internal/config"
	"github.com/easyrokra/gateway/internal/router"
	"github.com/easyrokra/gateway/internal/ws"
)

func newTestRouter() http.Handler {
	cfg := &config.Config{
		Port:          "0",
		SpreadsheetID: "sheet-1",
		OrdersGID:     "1",
		ProductsGID:   "2",
	}
	hub := ws.NewHub()
	go hub.Run()
	return router.New(cfg, audit.NopRecorder{}, hub)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
}

// Checkout pages are served from arbitrary origins, so preflight requests
// must succeed without credentials.
func TestCORSPreflight(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/fetch-order", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent && rec.Code != http.StatusOK {
		t.Fatalf("preflight status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
