// Package chi mounts the solkit API on a chi router.
// It is a thin adapter: handlers, envelopes and logging come from the http package.
package chi

import (
	gochi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpsolkit "github.com/mark3labs/solkit-go/http"
	"github.com/mark3labs/solkit-go/http/internal/helpers"
)

// NewRouter creates a chi router serving every solkit route.
//
// Example usage:
//
//	svc := httpsolkit.NewService(nil)
//	r := chi.NewRouter(svc, httpsolkit.DefaultConfig())
//	http.ListenAndServe(":8080", r)
func NewRouter(svc *httpsolkit.Service, config *httpsolkit.Config) *gochi.Mux {
	r := gochi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httpsolkit.RequestLogger)
	r.Use(middleware.Recoverer)

	r.NotFound(helpers.NotFound)
	r.MethodNotAllowed(helpers.MethodNotAllowed)

	for _, route := range httpsolkit.Routes(svc, config.MaxBodyBytes) {
		r.Method(route.Method, route.Path, route.Handler)
	}
	return r
}
