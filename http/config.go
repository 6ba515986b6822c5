package http

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Router names accepted by Config.Router.
const (
	RouterChi = "chi"
	RouterGin = "gin"
	RouterStd = "std"
)

// Config holds the configuration for the solkit HTTP server.
type Config struct {
	// Addr is the host:port the server listens on.
	Addr string

	// Router selects the routing implementation: chi, gin or std.
	Router string

	// MaxBodyBytes caps the size of a request body. Larger bodies are rejected with 400.
	MaxBodyBytes int64

	// ReadTimeout bounds reading an entire request, including the body.
	ReadTimeout time.Duration

	// EnableMCP mounts the MCP tool server at /mcp.
	EnableMCP bool
}

// DefaultConfig returns a Config with default settings.
func DefaultConfig() *Config {
	return &Config{
		Addr:         "127.0.0.1:8080",
		Router:       RouterChi,
		MaxBodyBytes: 64 << 10,
		ReadTimeout:  10 * time.Second,
	}
}

// ApplyEnv overrides fields from environment variables read through lookup
// (normally os.LookupEnv). PORT, when set, replaces only the port of Addr.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("SOLKIT_ADDR"); ok && v != "" {
		c.Addr = v
	}
	if v, ok := lookup("SOLKIT_ROUTER"); ok && v != "" {
		c.Router = v
	}
	if v, ok := lookup("SOLKIT_MAX_BODY_BYTES"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid SOLKIT_MAX_BODY_BYTES %q: %w", v, err)
		}
		c.MaxBodyBytes = n
	}
	if v, ok := lookup("SOLKIT_READ_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SOLKIT_READ_TIMEOUT %q: %w", v, err)
		}
		c.ReadTimeout = d
	}
	if port, ok := lookup("PORT"); ok && port != "" {
		host, _, err := net.SplitHostPort(c.Addr)
		if err != nil {
			return fmt.Errorf("invalid address %q: %w", c.Addr, err)
		}
		c.Addr = net.JoinHostPort(host, port)
	}
	return c.Validate()
}

// Validate reports whether the configuration can be served.
func (c *Config) Validate() error {
	switch c.Router {
	case RouterChi, RouterGin, RouterStd:
	default:
		return fmt.Errorf("unsupported router %q (expected chi, gin or std)", c.Router)
	}

	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("invalid address %q: %w", c.Addr, err)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive, got %d", c.MaxBodyBytes)
	}
	if c.ReadTimeout < 0 {
		return fmt.Errorf("read timeout cannot be negative: %s", c.ReadTimeout)
	}
	return nil
}
