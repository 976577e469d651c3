package application_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opsource/opsctl/internal/application"
	"github.com/opsource/opsctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const milestoneFixture = `# Implementation Milestones

Last updated: 2025-01-01

### Milestone 2: Distribution Allocation (In Progress - 50%)

| 2: Distribution | Q2 2025 | In Progress (50%) 🔄 | 60% 🔄 |
| 3: DEX Integration | Q2 2025 | Pending ⏳ | 0% ⏳ |

## Recent Updates

- 2025-01-01: Initial tracking
`

func setupMilestoneTree(t *testing.T) (string, domain.ProjectConfig) {
	t.Helper()
	base := t.TempDir()
	cfg := domain.DefaultConfig()

	docPath := filepath.Join(base, cfg.MilestoneDoc)
	require.NoError(t, os.MkdirAll(filepath.Dir(docPath), 0755))
	require.NoError(t, os.WriteFile(docPath, []byte(milestoneFixture), 0644))

	return base, cfg
}

func TestMilestoneService_Update(t *testing.T) {
	base, cfg := setupMilestoneTree(t)
	svc := application.NewMilestoneService()

	update, err := svc.Update(base, cfg, "")
	require.NoError(t, err)

	// The document picks up the placeholder results.
	doc, err := os.ReadFile(update.DocPath)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "### Milestone 2: Distribution Allocation (In Progress - 70%)")
	assert.Contains(t, string(doc), "Automatically updated milestone tracking based on test results")
	assert.NotContains(t, string(doc), "Last updated: 2025-01-01")

	// The backup keeps the original content untouched.
	backup, err := os.ReadFile(update.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, milestoneFixture, string(backup))

	// The summary table is written next to the reports.
	summary, err := os.ReadFile(update.SummaryPath)
	require.NoError(t, err)
	assert.Contains(t, string(summary), "# Test Results Summary")
	assert.Contains(t, string(summary), "| Core Issuance | Complete | 100% |")

	assert.Equal(t, domain.DefaultSectionResults(), update.Results)
}

func TestMilestoneService_MergesStoredResults(t *testing.T) {
	base, cfg := setupMilestoneTree(t)

	reportsDir := filepath.Join(base, cfg.ReportsDir)
	require.NoError(t, os.MkdirAll(reportsDir, 0755))
	stored := `{"distribution": {"completed": false, "progress": 90, "test_coverage": 95, "components_tested": ["allocation_percentages"]}}`
	require.NoError(t, os.WriteFile(filepath.Join(reportsDir, "test_results.json"), []byte(stored), 0644))

	svc := application.NewMilestoneService()
	update, err := svc.Update(base, cfg, "")
	require.NoError(t, err)

	assert.Equal(t, 90, update.Results["distribution"].Progress)

	doc, err := os.ReadFile(update.DocPath)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "(In Progress - 90%)")
	assert.Contains(t, string(doc), "| 2: Distribution | Q2 2025 | In Progress (90%) 🔄 | 95% 🔄 |")
}

func TestMilestoneService_MalformedStoredResultsFallBack(t *testing.T) {
	base, cfg := setupMilestoneTree(t)

	reportsDir := filepath.Join(base, cfg.ReportsDir)
	require.NoError(t, os.MkdirAll(reportsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(reportsDir, "test_results.json"), []byte("{not json"), 0644))

	svc := application.NewMilestoneService()
	update, err := svc.Update(base, cfg, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSectionResults(), update.Results)
}

func TestMilestoneService_DocOverride(t *testing.T) {
	base, cfg := setupMilestoneTree(t)
	require.NoError(t, os.WriteFile(filepath.Join(base, "MILESTONES.md"), []byte(milestoneFixture), 0644))

	svc := application.NewMilestoneService()
	update, err := svc.Update(base, cfg, "MILESTONES.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "MILESTONES.md"), update.DocPath)
}

func TestMilestoneService_MissingDoc(t *testing.T) {
	svc := application.NewMilestoneService()

	_, err := svc.Update(t.TempDir(), domain.DefaultConfig(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading milestone document")
}
