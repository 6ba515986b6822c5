package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/solkit-go/internal/routetest"
)

func newTestMux() http.Handler {
	return NewServeMux(NewService(nil), DefaultConfig())
}

func TestServeMux_Endpoints(t *testing.T) {
	routetest.Run(t, newTestMux())
}

func TestServeMux_WrappedEndpoints(t *testing.T) {
	routetest.Run(t, Wrap(newTestMux()))
}

func TestServeMux_BodyLimit(t *testing.T) {
	config := DefaultConfig()
	config.MaxBodyBytes = 32
	mux := NewServeMux(NewService(nil), config)

	body := `{"message":"` + strings.Repeat("a", 64) + `","secret":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/message/sign", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid request body") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestRoutes_CoverEveryEndpoint(t *testing.T) {
	want := map[string]string{
		"/":                 "GET",
		"/keypair":          "POST",
		"/keypair/mnemonic": "POST",
		"/keypair/recover":  "POST",
		"/token/create":     "POST",
		"/token/mint":       "POST",
		"/message/sign":     "POST",
		"/message/verify":   "POST",
		"/send/sol":         "POST",
		"/send/token":       "POST",
	}

	routes := Routes(NewService(nil), 1024)
	if len(routes) != len(want) {
		t.Fatalf("got %d routes, want %d", len(routes), len(want))
	}
	for _, route := range routes {
		if want[route.Path] != route.Method {
			t.Errorf("route %s %s not expected", route.Method, route.Path)
		}
		if route.Handler == nil {
			t.Errorf("route %s has no handler", route.Path)
		}
	}
}
