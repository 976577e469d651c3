package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewOpsctlMCPServer creates an MCP server with the opsctl tools registered.
// basePath is the directory containing the repositories to operate on.
func NewOpsctlMCPServer(basePath string) *server.MCPServer {
	s := server.NewMCPServer(
		"opsctl",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, basePath)

	return s
}
