package application

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/opsource/opsctl/internal/domain"
)

// MilestoneService updates the implementation milestone document from stored
// test results and writes a summary table alongside it.
type MilestoneService struct {
	now func() time.Time
}

// NewMilestoneService creates a MilestoneService using the wall clock.
func NewMilestoneService() *MilestoneService {
	return &MilestoneService{now: time.Now}
}

// MilestoneUpdate reports what the update touched.
type MilestoneUpdate struct {
	DocPath     string                          `json:"doc_path"`
	BackupPath  string                          `json:"backup_path"`
	SummaryPath string                          `json:"summary_path"`
	Results     map[string]domain.SectionResult `json:"results"`
}

// Update rewrites the milestone document under basePath. docPath overrides
// the configured document location when non-empty.
func (s *MilestoneService) Update(basePath string, cfg domain.ProjectConfig, docPath string) (*MilestoneUpdate, error) {
	if docPath == "" {
		docPath = cfg.MilestoneDoc
	}
	fullDoc := filepath.Join(basePath, docPath)

	content, err := os.ReadFile(fullDoc)
	if err != nil {
		return nil, fmt.Errorf("loading milestone document: %w", err)
	}

	results := s.loadResults(basePath, cfg)
	now := s.now()
	today := now.Format("2006-01-02")

	reportsDir := filepath.Join(basePath, cfg.ReportsDir)
	if err := os.MkdirAll(reportsDir, 0755); err != nil {
		return nil, err
	}

	summaryPath := filepath.Join(reportsDir, "test_summary.md")
	summary := domain.RenderTestSummary(results, now.Format("2006-01-02 15:04:05"))
	if err := os.WriteFile(summaryPath, []byte(summary), 0644); err != nil {
		return nil, fmt.Errorf("writing test summary: %w", err)
	}

	backupPath := fullDoc + ".bak"
	if err := os.WriteFile(backupPath, content, 0644); err != nil {
		return nil, fmt.Errorf("writing backup: %w", err)
	}

	updated := domain.UpdateMilestoneDoc(string(content), results, today)
	if err := os.WriteFile(fullDoc, []byte(updated), 0644); err != nil {
		return nil, fmt.Errorf("saving milestone document: %w", err)
	}

	return &MilestoneUpdate{
		DocPath:     fullDoc,
		BackupPath:  backupPath,
		SummaryPath: summaryPath,
		Results:     results,
	}, nil
}

// loadResults merges stored test results over the placeholder defaults.
// Unreadable or malformed stored results fall back to the placeholders.
func (s *MilestoneService) loadResults(basePath string, cfg domain.ProjectConfig) map[string]domain.SectionResult {
	results := domain.DefaultSectionResults()

	stored := filepath.Join(basePath, cfg.ReportsDir, "test_results.json")
	data, err := os.ReadFile(stored)
	if err != nil {
		return results
	}

	var actual map[string]domain.SectionResult
	if err := json.Unmarshal(data, &actual); err != nil {
		return results
	}
	return domain.MergeSectionResults(results, actual)
}
