// Package server exposes the solkit operations as MCP tools.
//
// Every tool is backed by the same Service as the HTTP API, so tool results
// carry the JSON data of the matching endpoint and tool errors carry the same
// messages as the error envelope.
package server

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	httpsolkit "github.com/mark3labs/solkit-go/http"
)

// Server wraps an MCP server with the solkit tools registered.
type Server struct {
	mcpServer *mcpserver.MCPServer
	svc       *httpsolkit.Service
}

// NewServer creates an MCP server named name serving svc's operations as tools.
// A nil svc uses httpsolkit.NewService(nil).
func NewServer(name, version string, svc *httpsolkit.Service) *Server {
	if svc == nil {
		svc = httpsolkit.NewService(nil)
	}

	s := &Server{
		mcpServer: mcpserver.NewMCPServer(name, version, mcpserver.WithToolCapabilities(false)),
		svc:       svc,
	}
	s.registerTools()
	return s
}

// Handler returns the streamable HTTP transport, for mounting at /mcp.
func (s *Server) Handler() http.Handler {
	return mcpserver.NewStreamableHTTPServer(s.mcpServer)
}

// ServeStdio serves the tools over stdin and stdout until stdin closes.
func (s *Server) ServeStdio() error {
	return mcpserver.ServeStdio(s.mcpServer)
}

// MCPServer returns the underlying MCP server (for advanced usage)
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcpServer
}
