package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/opsource/opsctl/internal/adapters/outbound/config"
	"github.com/opsource/opsctl/internal/adapters/outbound/gitrepo"
	"github.com/opsource/opsctl/internal/adapters/outbound/history"
	"github.com/opsource/opsctl/internal/adapters/outbound/runner"
	"github.com/opsource/opsctl/internal/adapters/outbound/scanner"
	"github.com/opsource/opsctl/internal/application"
)

// registerTools registers all opsctl MCP tools on the given server.
func registerTools(s *server.MCPServer, basePath string) {
	s.AddTool(
		mcplib.NewTool("opsctl_validate",
			mcplib.WithDescription("Validate text against the registered BIP standards and return the compliance report as JSON"),
			mcplib.WithString("input",
				mcplib.Required(),
				mcplib.Description("Protocol or transaction description to validate"),
			),
		),
		handleValidate(),
	)

	s.AddTool(
		mcplib.NewTool("opsctl_scan",
			mcplib.WithDescription("Scan a project for Bitcoin-specific security patterns and return the findings as JSON"),
			mcplib.WithString("path", mcplib.Description("Project path to scan (defaults to the server base path)")),
		),
		handleScan(basePath),
	)

	s.AddTool(
		mcplib.NewTool("opsctl_sync_check",
			mcplib.WithDescription("Check labelling files across sibling repositories without making changes"),
			mcplib.WithString("path", mcplib.Description("Base directory containing the repositories (defaults to the server base path)")),
		),
		handleSyncCheck(basePath),
	)
}

func handleValidate() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		input, err := request.RequireString("input")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewValidateService()
		return jsonResult(svc.Validate(input))
	}
}

func handleScan(basePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path := basePath
		if p, ok := request.GetArguments()["path"].(string); ok && p != "" {
			path = p
		}

		svc := application.NewScanService(scanner.New(), runner.New())
		report, err := svc.Scan(ctx, path)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleSyncCheck(basePath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path := basePath
		if p, ok := request.GetArguments()["path"].(string); ok && p != "" {
			path = p
		}

		cfg, err := configAdapter.New().Load(path)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		svc := application.NewSyncService(gitrepo.New(), history.New())
		summary, err := svc.Sync(application.SyncOptions{
			BasePath:  path,
			Source:    cfg.Source,
			Targets:   cfg.TargetRepos(),
			Files:     cfg.SyncFiles,
			CheckOnly: true,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("sync check failed: %v", err)), nil
		}
		return jsonResult(summary)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
