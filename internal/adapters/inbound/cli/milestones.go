package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configAdapter "github.com/opsource/opsctl/internal/adapters/outbound/config"
	"github.com/opsource/opsctl/internal/application"
)

func newMilestonesCmd() *cobra.Command {
	var (
		path string
		doc  string
	)

	cmd := &cobra.Command{
		Use:   "milestones",
		Short: "Update the implementation milestone document",
		Long:  "Rewrite progress percentages and coverage tables in the milestone document from stored test results, keeping a backup of the previous version.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configAdapter.New().Load(path)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			svc := application.NewMilestoneService()
			update, err := svc.Update(path, cfg, doc)
			if err != nil {
				return fmt.Errorf("milestone update failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (backup: %s)\n", update.DocPath, update.BackupPath)
			fmt.Fprintf(cmd.OutOrStdout(), "Test summary saved to %s\n", update.SummaryPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Base directory of the project")
	cmd.Flags().StringVar(&doc, "doc", "", "Milestone document path relative to the base directory (default from config)")

	return cmd
}
