package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/solkit-go/mcp/server"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the solkit tools over MCP stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info("serving MCP over stdio", "version", version)
			return mcpserver.NewServer("solkit", version, nil).ServeStdio()
		},
	}
}
