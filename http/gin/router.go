// Package gin mounts the solkit API on a gin engine.
// It is a thin adapter: the stdlib handlers are wrapped with gin.WrapF and
// responses use the same envelopes as every other router.
package gin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/mark3labs/solkit-go"
	httpsolkit "github.com/mark3labs/solkit-go/http"
	"github.com/mark3labs/solkit-go/http/internal/helpers"
)

// NewEngine creates a gin engine serving every solkit route.
//
// Example usage:
//
//	svc := httpsolkit.NewService(nil)
//	engine := gin.NewEngine(svc, httpsolkit.DefaultConfig())
//	engine.Run(":8080")
func NewEngine(svc *httpsolkit.Service, config *httpsolkit.Config) *gin.Engine {
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(requestID(), requestLogger(), gin.CustomRecovery(recovery))

	engine.NoRoute(func(c *gin.Context) {
		helpers.NotFound(c.Writer, c.Request)
	})
	engine.NoMethod(func(c *gin.Context) {
		helpers.MethodNotAllowed(c.Writer, c.Request)
	})

	for _, route := range httpsolkit.Routes(svc, config.MaxBodyBytes) {
		engine.Handle(route.Method, route.Path, gin.WrapF(route.Handler))
	}
	return engine
}

// requestID keeps an inbound X-Request-Id or assigns a fresh one, echoes it on
// the response and stores it where middleware.GetReqID finds it.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(middleware.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(middleware.RequestIDHeader, id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), middleware.RequestIDKey, id))
		c.Next()
	}
}

// requestLogger logs one line per request, like httpsolkit.RequestLogger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Default().Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(c.Request.Context()),
			"remote", c.ClientIP(),
		)
	}
}

func recovery(c *gin.Context, recovered any) {
	slog.Default().Error("panic serving request", "path", c.Request.URL.Path, "panic", fmt.Sprint(recovered))
	helpers.WriteResult(c.Writer, solkit.FailWithStatus(http.StatusInternalServerError, "internal error"))
	c.Abort()
}
