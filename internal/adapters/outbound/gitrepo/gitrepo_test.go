package gitrepo_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/opsource/opsctl/internal/adapters/outbound/gitrepo"
	"github.com/opsource/opsctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")
	return dir
}

func commitFile(t *testing.T, dir, name, content, message string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	runGit(t, dir, "add", name)
	runGit(t, dir, "commit", "-m", message)
}

func TestIsRepo(t *testing.T) {
	dir := initRepo(t)
	g := gitrepo.New()

	assert.True(t, g.IsRepo(dir))
	assert.False(t, g.IsRepo(t.TempDir()))
}

func TestCommitHash(t *testing.T) {
	dir := initRepo(t)
	commitFile(t, dir, "file.txt", "hello", "init")

	g := gitrepo.New()
	hash, err := g.CommitHash(dir)
	require.NoError(t, err)
	assert.Len(t, hash, 40, "should be a full SHA-1 hash")
}

func TestCommitHash_NotGitRepo(t *testing.T) {
	g := gitrepo.New()
	_, err := g.CommitHash(t.TempDir())
	assert.Error(t, err)
}

func TestCommitFiles(t *testing.T) {
	dir := initRepo(t)
	commitFile(t, dir, "file.txt", "v1", "init")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "AI_LABELLING.md"), []byte("labels"), 0644))

	g := gitrepo.New()
	require.NoError(t, g.CommitFiles(dir, []string{"AI_LABELLING.md"}, domain.LabelCommitMessage))

	hash, err := g.CommitHash(dir)
	require.NoError(t, err)
	assert.Len(t, hash, 40)

	stats, err := g.RecentStats(dir, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, stats.Commits)
	assert.Contains(t, stats.Commits[0].Message, "docs(labelling): synchronize AI labelling system")
}

func TestCommitFiles_NotGitRepo(t *testing.T) {
	g := gitrepo.New()
	err := g.CommitFiles(t.TempDir(), []string{"x"}, "msg")
	assert.Error(t, err)
}

func TestRecentStats(t *testing.T) {
	dir := initRepo(t)
	commitFile(t, dir, "a.txt", "one\ntwo\n", "first commit")
	commitFile(t, dir, "b.txt", "three\n", "second commit")

	g := gitrepo.New()
	stats, err := g.RecentStats(dir, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.CommitCount)
	assert.Equal(t, 1, stats.AuthorCount)
	assert.Equal(t, 2, stats.FilesChanged)
	assert.Equal(t, 3, stats.Additions)
	require.Len(t, stats.Commits, 2)
	// Newest first.
	assert.Contains(t, stats.Commits[0].Message, "second commit")
}

func TestRecentStats_WindowExcludesNothingRecent(t *testing.T) {
	dir := initRepo(t)
	commitFile(t, dir, "a.txt", "one\n", "first commit")

	g := gitrepo.New()
	stats, err := g.RecentStats(dir, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, stats.CommitCount)
	assert.Empty(t, stats.Commits)
}

func TestRecentStats_NotGitRepo(t *testing.T) {
	g := gitrepo.New()
	_, err := g.RecentStats(t.TempDir(), time.Now())
	assert.Error(t, err)
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
}
