package application_test

import (
	"context"
	"strings"
	"time"

	"github.com/opsource/opsctl/internal/domain"
)

// stubRunner is a CommandRunner with canned results keyed by the full
// command line ("name arg1 arg2 ...").
type stubRunner struct {
	available map[string]bool
	results   map[string]domain.CommandResult
	calls     []string
}

func (r *stubRunner) Available(name string) bool {
	return r.available[name]
}

func (r *stubRunner) Run(_ context.Context, _ string, name string, args ...string) (domain.CommandResult, error) {
	cmd := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, cmd)
	return r.results[cmd], nil
}

// stubGit is a GitClient that treats a fixed set of paths as repositories and
// records commits.
type stubGit struct {
	repos   map[string]bool
	stats   map[string]domain.RepoStats
	commits []commitCall
}

type commitCall struct {
	path    string
	files   []string
	message string
}

func (g *stubGit) IsRepo(path string) bool { return g.repos[path] }

func (g *stubGit) CommitHash(string) (string, error) { return "deadbeef", nil }

func (g *stubGit) CommitFiles(path string, files []string, message string) error {
	g.commits = append(g.commits, commitCall{path: path, files: files, message: message})
	return nil
}

func (g *stubGit) RecentStats(path string, _ time.Time) (*domain.RepoStats, error) {
	rs := g.stats[path]
	return &rs, nil
}

// stubHistory is a RetentionStore that records which files were saved.
type stubHistory struct {
	saved []string
}

func (h *stubHistory) SaveCopy(filePath string) (string, error) {
	h.saved = append(h.saved, filePath)
	return filePath + ".bak", nil
}

// stubScanner returns a fixed scan result.
type stubScanner struct {
	scan *domain.SourceScan
	err  error
}

func (s *stubScanner) Scan(string) (*domain.SourceScan, error) {
	return s.scan, s.err
}
