// Package http serves the solkit API over HTTP: the router-independent
// Service, its stdlib handlers, configuration and request logging.
package http

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request with its method, path, status,
// duration and request id. Bodies are never logged since they carry secrets.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{w: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		slog.Default().Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes", rec.bytes,
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
			"remote", r.RemoteAddr,
		)
	})
}

// Wrap applies the standard middleware stack to a handler that does not
// bring its own: request ids, client IP resolution, logging and panic recovery.
func Wrap(h http.Handler) http.Handler {
	return middleware.RequestID(middleware.RealIP(RequestLogger(middleware.Recoverer(h))))
}

// NewServer builds an http.Server for handler from config.
func NewServer(config *Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              config.Addr,
		Handler:           handler,
		ReadTimeout:       config.ReadTimeout,
		ReadHeaderTimeout: config.ReadTimeout,
	}
}

// statusRecorder captures the status code and size of a response.
type statusRecorder struct {
	w           http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (s *statusRecorder) Header() http.Header {
	return s.w.Header()
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if !s.wroteHeader {
		s.WriteHeader(http.StatusOK)
	}
	n, err := s.w.Write(b)
	s.bytes += n
	return n, err
}

func (s *statusRecorder) WriteHeader(statusCode int) {
	if s.wroteHeader {
		return
	}
	s.wroteHeader = true
	s.status = statusCode
	s.w.WriteHeader(statusCode)
}

// Flush implements http.Flusher to support streaming responses.
func (s *statusRecorder) Flush() {
	if flusher, ok := s.w.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack implements http.Hijacker to support connection hijacking.
func (s *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := s.w.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, errors.New("hijacking not supported")
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.w
}
