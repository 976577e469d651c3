package domain

import "fmt"

// ProjectConfig holds toolkit configuration loaded from .opsctl.yaml.
type ProjectConfig struct {
	Source       string   `yaml:"source"        json:"source"`
	Repos        []string `yaml:"repos"         json:"repos"`
	SyncFiles    []string `yaml:"sync_files"    json:"sync_files"`
	MilestoneDoc string   `yaml:"milestone_doc" json:"milestone_doc"`
	ReportsDir   string   `yaml:"reports_dir"   json:"reports_dir"`
	ExcludePaths []string `yaml:"exclude_paths" json:"exclude_paths,omitempty"`
}

// DefaultConfig returns the configuration used when no .opsctl.yaml exists.
// The repo set mirrors the ecosystem layout: sibling checkouts next to the
// base directory, with anya-core as the labelling source of truth.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Source: "anya-core",
		Repos: []string{
			"anya-core",
			"anya-web5",
			"anya-mobile",
			"anya-bitcoin",
			"dash33",
		},
		SyncFiles: []string{
			"AI_LABELLING.md",
			"COMMIT_RULES.md",
		},
		MilestoneDoc: "docs/IMPLEMENTATION_MILESTONES.md",
		ReportsDir:   "reports",
	}
}

// Validate checks the config for values the commands cannot work with.
func (c ProjectConfig) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source repository must not be empty")
	}
	if len(c.Repos) == 0 {
		return fmt.Errorf("repos must list at least one repository")
	}
	if len(c.SyncFiles) == 0 {
		return fmt.Errorf("sync_files must list at least one file")
	}
	for _, f := range c.SyncFiles {
		if f == "" {
			return fmt.Errorf("sync_files must not contain empty names")
		}
	}
	return nil
}

// TargetRepos returns the configured repos with the source guaranteed to be
// present, matching the original script's behavior of appending it.
func (c ProjectConfig) TargetRepos() []string {
	for _, r := range c.Repos {
		if r == c.Source {
			return c.Repos
		}
	}
	return append(append([]string{}, c.Repos...), c.Source)
}
