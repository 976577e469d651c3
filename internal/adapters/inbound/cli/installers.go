package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsource/opsctl/internal/adapters/outbound/runner"
	"github.com/opsource/opsctl/internal/adapters/outbound/tui"
	"github.com/opsource/opsctl/internal/application"
)

func newInstallersCmd() *cobra.Command {
	var (
		path       string
		jsonOutput bool
		ciMode     bool
	)

	cmd := &cobra.Command{
		Use:   "installers",
		Short: "Dry-run the project installers and check dependencies",
		Long:  "Check host compatibility, verify declared Python and Cargo dependencies, and run the project's installers in dry-run mode.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewInstallerService(runner.New())

			report, err := svc.Check(cmd.Context(), path)
			if err != nil {
				return fmt.Errorf("installer check failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderInstallerReport(report))
			}

			if ciMode && report.Failed() {
				return fmt.Errorf("installer dry run reported failures")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project path to check")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 when any check fails")

	return cmd
}
