package domain

import (
	"context"
	"time"
)

// SourceScan holds file metadata collected by walking a project directory.
type SourceScan struct {
	RootPath        string   `json:"root_path"`
	SourceFiles     []string `json:"source_files"`
	RustFiles       []string `json:"rust_files"`
	HasCargoToml    bool     `json:"has_cargo_toml"`
	HasRequirements bool     `json:"has_requirements"`
}

// SourceScanner walks a project directory and returns source file metadata.
type SourceScanner interface {
	Scan(projectPath string) (*SourceScan, error)
}

// GitClient covers the git operations the commands need.
type GitClient interface {
	IsRepo(path string) bool
	CommitHash(path string) (string, error)
	CommitFiles(path string, files []string, message string) error
	RecentStats(path string, since time.Time) (*RepoStats, error)
}

// CommandResult is the captured outcome of one subprocess invocation.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner executes external tools. Available reports whether a binary
// can be found at all, so callers can degrade gracefully instead of failing.
type CommandRunner interface {
	Available(name string) bool
	Run(ctx context.Context, dir, name string, args ...string) (CommandResult, error)
}

// RetentionStore keeps timestamped copies of files about to be overwritten.
type RetentionStore interface {
	SaveCopy(filePath string) (string, error)
}

// ConfigLoader reads the toolkit configuration for a base directory.
type ConfigLoader interface {
	Load(basePath string) (ProjectConfig, error)
}
