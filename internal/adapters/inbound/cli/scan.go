package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsource/opsctl/internal/adapters/outbound/runner"
	"github.com/opsource/opsctl/internal/adapters/outbound/scanner"
	"github.com/opsource/opsctl/internal/adapters/outbound/tui"
	"github.com/opsource/opsctl/internal/application"
)

func newScanCmd() *cobra.Command {
	var (
		path       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a project for Bitcoin-specific security patterns",
		Long:  "Walk the project's source files looking for key handling, wallet code, and other Bitcoin-sensitive patterns, and audit Rust dependencies when cargo-audit is installed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewScanService(scanner.New(), runner.New())

			report, err := svc.Scan(cmd.Context(), path)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderScanReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project path to scan")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
