// Package helpers provides the request decoding and response writing shared by
// the stdlib, chi and gin routers, so that every router emits the same envelopes.
package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/mark3labs/solkit-go"
)

// DecodeJSON reads a JSON request body of at most limit bytes into v.
// An empty body leaves v untouched so that required-field checks report
// what is missing. Unknown fields are ignored; trailing data is not.
//
// Returns a solkit.ErrInvalidRequest error for malformed or oversized bodies.
func DecodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	body := http.MaxBytesReader(w, r.Body, limit)
	defer body.Close()

	dec := json.NewDecoder(body)
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		// Only whitespace may follow the JSON value.
		if err = dec.Decode(&struct{}{}); errors.Is(err, io.EOF) {
			return nil
		}
		if err == nil {
			err = errors.New("unexpected data after JSON value")
		}
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return solkit.Errorf(solkit.ErrCodeInvalidRequest, "invalid request body: exceeds %d bytes", tooLarge.Limit)
	}
	return solkit.NewError(solkit.ErrCodeInvalidRequest, "invalid request body", errors.Join(solkit.ErrInvalidRequest, err))
}

// WriteResult writes result as a JSON envelope with the result's status code.
func WriteResult(w http.ResponseWriter, result solkit.Result) {
	body, err := json.Marshal(result)
	if err != nil {
		// Payloads are plain structs, so this only happens on a programming error.
		slog.Default().Error("failed to encode response", "error", err)
		result = solkit.FailWithStatus(http.StatusInternalServerError, "internal error")
		body, _ = json.Marshal(result)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(result.StatusCode())
	// Ignore write errors - the status line is already sent
	_, _ = w.Write(body)
}

// NotFound writes the 404 envelope for an unknown route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteResult(w, solkit.FailWithStatus(http.StatusNotFound, fmt.Sprintf("route not found: %s %s", r.Method, r.URL.Path)))
}

// MethodNotAllowed writes the 405 envelope for a known path requested with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteResult(w, solkit.FailWithStatus(http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed on %s", r.Method, r.URL.Path)))
}
