package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configAdapter "github.com/opsource/opsctl/internal/adapters/outbound/config"
	"github.com/opsource/opsctl/internal/adapters/outbound/gitrepo"
	"github.com/opsource/opsctl/internal/application"
)

func newTrackCmd() *cobra.Command {
	var (
		path string
		days int
	)

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Generate development tracking reports from git history",
		Long:  "Collect commit statistics for the base repository and configured siblings over the tracking window and write JSON and markdown reports.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configAdapter.New().Load(path)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			svc := application.NewTrackService(gitrepo.New())
			report, err := svc.Track(path, cfg, days)
			if err != nil {
				return fmt.Errorf("tracking failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Reports generated: %s, %s\n", report.StatsPath, report.SummaryPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Base directory containing the repositories")
	cmd.Flags().IntVar(&days, "days", 7, "Tracking window in days")

	return cmd
}
