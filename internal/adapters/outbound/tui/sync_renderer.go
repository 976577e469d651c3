package tui

import (
	"fmt"
	"strings"

	"github.com/opsource/opsctl/internal/domain"
)

// RenderSyncSummary renders a labelling sync run as a styled TUI string.
func RenderSyncSummary(s *domain.SyncSummary) string {
	var b strings.Builder

	mode := "Synchronize"
	if s.CheckOnly {
		mode = "Check only"
	}
	if s.DryRun {
		mode += " (dry run)"
	}
	b.WriteString(renderHeader("opsctl", fmt.Sprintf("Labelling Sync — %s", mode)))

	fmt.Fprintf(&b, "  %s %s\n",
		titleStyle.Render("Source"),
		dimStyle.Render(s.Source),
	)

	sectionHeader(&b, "Files", len(s.Results))
	for _, r := range s.Results {
		var icon string
		switch r.Action {
		case domain.SyncUpToDate:
			icon = passStyle.Render("●")
		case domain.SyncCopied:
			icon = passStyle.Render("●")
		case domain.SyncMissing:
			icon = failStyle.Render("●")
		default:
			icon = warnStyle.Render("●")
		}
		fmt.Fprintf(&b, "    %s %s  %s  %s\n",
			icon, fileStyle.Render(r.Repo), r.File, dimStyle.Render(string(r.Action)))
	}

	b.WriteString("\n  " + separatorLine + "\n\n")
	fmt.Fprintf(&b, "  Repositories with differences: %d", len(s.ReposWithDiffs))
	if len(s.ReposWithDiffs) > 0 {
		b.WriteString("  " + dimStyle.Render(strings.Join(s.ReposWithDiffs, ", ")))
	}
	b.WriteString("\n")

	if !s.CheckOnly {
		fmt.Fprintf(&b, "  Repositories synchronized: %d", len(s.ReposSynced))
		if len(s.ReposSynced) > 0 {
			b.WriteString("  " + dimStyle.Render(strings.Join(s.ReposSynced, ", ")))
		}
		b.WriteString("\n")
	}
	if len(s.ReposCommitted) > 0 {
		fmt.Fprintf(&b, "  Repositories committed: %d  %s\n",
			len(s.ReposCommitted), dimStyle.Render(strings.Join(s.ReposCommitted, ", ")))
	}

	b.WriteString("\n")
	return b.String()
}
