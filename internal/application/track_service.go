package application

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/opsource/opsctl/internal/domain"
)

// TrackService gathers recent git activity for the base repository and its
// configured siblings and writes the development tracking reports.
type TrackService struct {
	git domain.GitClient
	now func() time.Time
}

// NewTrackService creates a TrackService with its required git client.
func NewTrackService(git domain.GitClient) *TrackService {
	return &TrackService{git: git, now: time.Now}
}

// TrackReport names the files the tracking run produced.
type TrackReport struct {
	Stats       map[string]domain.RepoStats `json:"stats"`
	StatsPath   string                      `json:"stats_path"`
	SummaryPath string                      `json:"summary_path"`
}

// Track collects commit statistics for the last `days` days and writes
// development_stats.json and development_summary.md under the reports dir.
func (s *TrackService) Track(basePath string, cfg domain.ProjectConfig, days int) (*TrackReport, error) {
	now := s.now()
	since := now.AddDate(0, 0, -days)

	stats := map[string]domain.RepoStats{}

	if s.git.IsRepo(basePath) {
		rs, err := s.git.RecentStats(basePath, since)
		if err != nil {
			return nil, fmt.Errorf("tracking base repository: %w", err)
		}
		stats["main"] = *rs
	}

	for _, repo := range cfg.Repos {
		repoPath := filepath.Join(basePath, repo)
		if !s.git.IsRepo(repoPath) {
			continue
		}
		rs, err := s.git.RecentStats(repoPath, since)
		if err != nil {
			continue // a broken sibling checkout should not sink the report
		}
		stats[repo] = *rs
	}

	reportsDir := filepath.Join(basePath, cfg.ReportsDir)
	if err := os.MkdirAll(reportsDir, 0755); err != nil {
		return nil, err
	}

	statsPath := filepath.Join(reportsDir, "development_stats.json")
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(statsPath, data, 0644); err != nil {
		return nil, fmt.Errorf("writing stats: %w", err)
	}

	summaryPath := filepath.Join(reportsDir, "development_summary.md")
	summary := domain.RenderTrackingSummary(stats, now.Format("2006-01-02 15:04:05"))
	if err := os.WriteFile(summaryPath, []byte(summary), 0644); err != nil {
		return nil, fmt.Errorf("writing summary: %w", err)
	}

	return &TrackReport{Stats: stats, StatsPath: statsPath, SummaryPath: summaryPath}, nil
}
