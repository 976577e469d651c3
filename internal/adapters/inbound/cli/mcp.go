package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/opsource/opsctl/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the opsctl MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var basePath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start opsctl MCP server (stdio)",
		Long:  "Start the opsctl MCP server using stdio transport. This lets AI coding assistants run protocol validation, security scans, and sync checks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if basePath == "" {
				basePath = "."
			}
			s := mcpadapter.NewOpsctlMCPServer(basePath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&basePath, "path", "", "Base directory (defaults to current working directory)")

	return cmd
}
