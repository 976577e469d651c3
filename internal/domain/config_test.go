package domain_test

import (
	"testing"

	"github.com/opsource/opsctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, "anya-core", cfg.Source)
	assert.Contains(t, cfg.Repos, "dash33")
	assert.Equal(t, []string{"AI_LABELLING.md", "COMMIT_RULES.md"}, cfg.SyncFiles)
	assert.Equal(t, "docs/IMPLEMENTATION_MILESTONES.md", cfg.MilestoneDoc)
	assert.Equal(t, "reports", cfg.ReportsDir)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.ProjectConfig)
		wantErr string
	}{
		{
			name:    "empty source",
			mutate:  func(c *domain.ProjectConfig) { c.Source = "" },
			wantErr: "source repository",
		},
		{
			name:    "no repos",
			mutate:  func(c *domain.ProjectConfig) { c.Repos = nil },
			wantErr: "repos must list",
		},
		{
			name:    "no sync files",
			mutate:  func(c *domain.ProjectConfig) { c.SyncFiles = nil },
			wantErr: "sync_files must list",
		},
		{
			name:    "empty sync file name",
			mutate:  func(c *domain.ProjectConfig) { c.SyncFiles = []string{"AI_LABELLING.md", ""} },
			wantErr: "empty names",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTargetRepos_SourceAlreadyListed(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, cfg.Repos, cfg.TargetRepos())
}

func TestTargetRepos_AppendsMissingSource(t *testing.T) {
	cfg := domain.ProjectConfig{
		Source:    "anya-core",
		Repos:     []string{"anya-web5", "dash33"},
		SyncFiles: []string{"AI_LABELLING.md"},
	}

	targets := cfg.TargetRepos()
	assert.Equal(t, []string{"anya-web5", "dash33", "anya-core"}, targets)
	// The original slice stays untouched.
	assert.Equal(t, []string{"anya-web5", "dash33"}, cfg.Repos)
}
