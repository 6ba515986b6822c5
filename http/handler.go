package http

import (
	"log/slog"
	"net/http"

	"github.com/mark3labs/solkit-go"
	"github.com/mark3labs/solkit-go/http/internal/helpers"
)

// Route is one endpoint of the solkit API, expressed as a stdlib handler
// so that every router adapter can mount it unchanged.
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Routes returns the solkit endpoints backed by svc.
// Request bodies larger than maxBodyBytes are rejected.
func Routes(svc *Service, maxBodyBytes int64) []Route {
	return []Route{
		{http.MethodGet, "/", noBody(svc.Greet)},
		{http.MethodPost, "/keypair", noBody(svc.GenerateKeypair)},
		{http.MethodPost, "/keypair/mnemonic", withBody(maxBodyBytes, svc.GenerateMnemonic)},
		{http.MethodPost, "/keypair/recover", withBody(maxBodyBytes, svc.RecoverKeypair)},
		{http.MethodPost, "/token/create", withBody(maxBodyBytes, svc.CreateToken)},
		{http.MethodPost, "/token/mint", withBody(maxBodyBytes, svc.MintToken)},
		{http.MethodPost, "/message/sign", withBody(maxBodyBytes, svc.SignMessage)},
		{http.MethodPost, "/message/verify", withBody(maxBodyBytes, svc.VerifyMessage)},
		{http.MethodPost, "/send/sol", withBody(maxBodyBytes, svc.SendSol)},
		{http.MethodPost, "/send/token", withBody(maxBodyBytes, svc.SendToken)},
	}
}

// NewServeMux mounts the solkit routes on a stdlib ServeMux.
// Unknown paths answer 404 and known paths with the wrong method answer 405,
// both with the error envelope.
func NewServeMux(svc *Service, config *Config) *http.ServeMux {
	routes := Routes(svc, config.MaxBodyBytes)

	mux := http.NewServeMux()
	known := make(map[string]bool, len(routes))
	for _, route := range routes {
		pattern := route.Path
		if pattern == "/" {
			pattern = "/{$}"
		}
		mux.HandleFunc(route.Method+" "+pattern, route.Handler)
		known[route.Path] = true
	}

	// Everything no route claims lands here.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if known[r.URL.Path] {
			helpers.MethodNotAllowed(w, r)
			return
		}
		helpers.NotFound(w, r)
	})
	return mux
}

func noBody(fn func() solkit.Result) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, fn())
	}
}

func withBody[T any](maxBodyBytes int64, fn func(T) solkit.Result) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req T
		if err := helpers.DecodeJSON(w, r, maxBodyBytes, &req); err != nil {
			respond(w, r, solkit.Fail(err))
			return
		}
		respond(w, r, fn(req))
	}
}

func respond(w http.ResponseWriter, r *http.Request, result solkit.Result) {
	if failure, ok := result.(solkit.Failure); ok {
		slog.Default().Warn("request rejected",
			"method", r.Method,
			"path", r.URL.Path,
			"status", failure.StatusCode(),
			"error", failure.Message,
		)
	}
	helpers.WriteResult(w, result)
}
