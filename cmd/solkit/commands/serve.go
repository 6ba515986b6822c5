package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpsolkit "github.com/mark3labs/solkit-go/http"
	solkitchi "github.com/mark3labs/solkit-go/http/chi"
	solkitgin "github.com/mark3labs/solkit-go/http/gin"
	mcpserver "github.com/mark3labs/solkit-go/mcp/server"
)

const shutdownTimeout = 5 * time.Second

func serveCmd() *cobra.Command {
	var (
		addr         string
		router       string
		maxBodyBytes int64
		readTimeout  time.Duration
		enableMCP    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := httpsolkit.DefaultConfig()
			if err := config.ApplyEnv(os.LookupEnv); err != nil {
				return err
			}

			// Explicit flags win over the environment.
			flags := cmd.Flags()
			if flags.Changed("addr") {
				config.Addr = addr
			}
			if flags.Changed("router") {
				config.Router = router
			}
			if flags.Changed("max-body-bytes") {
				config.MaxBodyBytes = maxBodyBytes
			}
			if flags.Changed("read-timeout") {
				config.ReadTimeout = readTimeout
			}
			config.EnableMCP = enableMCP
			if err := config.Validate(); err != nil {
				return err
			}

			handler, err := buildHandler(config, httpsolkit.NewService(nil))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, httpsolkit.NewServer(config, handler), config)
		},
	}

	defaults := httpsolkit.DefaultConfig()
	cmd.Flags().StringVar(&addr, "addr", defaults.Addr, "listen address (env SOLKIT_ADDR, PORT overrides the port)")
	cmd.Flags().StringVar(&router, "router", defaults.Router, "router implementation: chi, gin or std (env SOLKIT_ROUTER)")
	cmd.Flags().Int64Var(&maxBodyBytes, "max-body-bytes", defaults.MaxBodyBytes, "maximum request body size (env SOLKIT_MAX_BODY_BYTES)")
	cmd.Flags().DurationVar(&readTimeout, "read-timeout", defaults.ReadTimeout, "request read timeout (env SOLKIT_READ_TIMEOUT)")
	cmd.Flags().BoolVar(&enableMCP, "mcp", false, "also serve the MCP tools at /mcp")
	return cmd
}

// buildHandler assembles the router named by config, with the MCP transport
// mounted at /mcp when enabled.
func buildHandler(config *httpsolkit.Config, svc *httpsolkit.Service) (http.Handler, error) {
	var api http.Handler
	switch config.Router {
	case httpsolkit.RouterChi:
		api = solkitchi.NewRouter(svc, config)
	case httpsolkit.RouterGin:
		api = solkitgin.NewEngine(svc, config)
	case httpsolkit.RouterStd:
		api = httpsolkit.Wrap(httpsolkit.NewServeMux(svc, config))
	default:
		return nil, fmt.Errorf("unsupported router %q", config.Router)
	}

	if !config.EnableMCP {
		return api, nil
	}

	mux := http.NewServeMux()
	mux.Handle("/mcp", mcpserver.NewServer("solkit", version, svc).Handler())
	mux.Handle("/", api)
	return mux, nil
}

func run(ctx context.Context, srv *http.Server, config *httpsolkit.Config) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting solkit server", "addr", config.Addr, "router", config.Router, "mcp", config.EnableMCP)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down solkit server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
