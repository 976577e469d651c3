package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	configAdapter "github.com/opsource/opsctl/internal/adapters/outbound/config"
	"github.com/opsource/opsctl/internal/adapters/outbound/gitrepo"
	"github.com/opsource/opsctl/internal/adapters/outbound/history"
	"github.com/opsource/opsctl/internal/adapters/outbound/tui"
	"github.com/opsource/opsctl/internal/application"
)

func newSyncCmd() *cobra.Command {
	var (
		path       string
		source     string
		targets    string
		checkOnly  bool
		dryRun     bool
		noCommit   bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize labelling files across sibling repositories",
		Long:  "Copy AI_LABELLING.md and related files from the source-of-truth repository to every sibling checkout, keeping retention copies and committing updated targets.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configAdapter.New().Load(path)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if source == "" {
				source = cfg.Source
			}
			repoList := cfg.TargetRepos()
			if targets != "" {
				repoList = splitList(targets)
			}

			svc := application.NewSyncService(gitrepo.New(), history.New())
			summary, err := svc.Sync(application.SyncOptions{
				BasePath:  path,
				Source:    source,
				Targets:   repoList,
				Files:     cfg.SyncFiles,
				CheckOnly: checkOnly,
				DryRun:    dryRun,
				NoCommit:  noCommit,
			})
			if err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(summary); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSyncSummary(summary))
			}

			if checkOnly && summary.HasDifferences {
				return fmt.Errorf("%d repositories differ from %s", len(summary.ReposWithDiffs), source)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Base directory containing the repositories")
	cmd.Flags().StringVar(&source, "source", "", "Source repository for label standards (default from config)")
	cmd.Flags().StringVar(&targets, "target", "", "Comma-separated target repositories (default from config)")
	cmd.Flags().BoolVar(&checkOnly, "check-only", false, "Only check for differences without making changes")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")
	cmd.Flags().BoolVar(&noCommit, "no-commit", false, "Do not commit changes after synchronization")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func splitList(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
