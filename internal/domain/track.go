package domain

import (
	"fmt"
	"sort"
	"strings"
)

// CommitInfo is one commit inside the tracking window.
type CommitInfo struct {
	Hash    string `json:"hash"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

// RepoStats summarizes recent activity in one repository.
type RepoStats struct {
	CommitCount  int          `json:"commit_count"`
	AuthorCount  int          `json:"author_count"`
	FilesChanged int          `json:"files_changed"`
	Additions    int          `json:"additions"`
	Deletions    int          `json:"deletions"`
	Commits      []CommitInfo `json:"commits"`
}

// RenderTrackingSummary builds the markdown development report for a set of
// repositories. Repositories are listed in name order with "main" first.
func RenderTrackingSummary(stats map[string]RepoStats, generatedAt string) string {
	var b strings.Builder
	b.WriteString("# Development Tracking Report\n")
	b.WriteString("Generated: " + generatedAt + "\n\n")
	b.WriteString("## Weekly Statistics\n")

	for _, name := range sortedRepoNames(stats) {
		rs := stats[name]
		fmt.Fprintf(&b, "### %s\n", name)
		fmt.Fprintf(&b, "- Total Commits: %d\n", rs.CommitCount)
		fmt.Fprintf(&b, "- Active Authors: %d\n", rs.AuthorCount)
		fmt.Fprintf(&b, "- Files Changed: %d\n", rs.FilesChanged)
		fmt.Fprintf(&b, "- Lines Added: %d\n", rs.Additions)
		fmt.Fprintf(&b, "- Lines Deleted: %d\n\n", rs.Deletions)

		if len(rs.Commits) == 0 {
			continue
		}

		b.WriteString("#### Recent Commits\n")
		shown := rs.Commits
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, c := range shown {
			hash := c.Hash
			if len(hash) > 8 {
				hash = hash[:8]
			}
			subject := strings.SplitN(strings.TrimSpace(c.Message), "\n", 2)[0]
			fmt.Fprintf(&b, "- %s - %s\n", hash, subject)
			fmt.Fprintf(&b, "  Author: %s, Date: %s\n\n", c.Author, c.Date)
		}
	}

	return b.String()
}

func sortedRepoNames(stats map[string]RepoStats) []string {
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == "main" {
			return true
		}
		if names[j] == "main" {
			return false
		}
		return names[i] < names[j]
	})
	return names
}
