package gitrepo

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/opsource/opsctl/internal/domain"
)

// errWindowEnd stops the log walk at the first commit older than the window.
var errWindowEnd = errors.New("tracking window end")

// GitRepoAdapter implements domain.GitClient using go-git.
type GitRepoAdapter struct{}

func New() *GitRepoAdapter {
	return &GitRepoAdapter{}
}

func (g *GitRepoAdapter) IsRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

func (g *GitRepoAdapter) CommitHash(path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// CommitFiles stages the given paths and creates a commit with the message.
func (g *GitRepoAdapter) CommitFiles(path string, files []string, message string) error {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return fmt.Errorf("opening git repo: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	for _, f := range files {
		if _, err := wt.Add(f); err != nil {
			return fmt.Errorf("staging %s: %w", f, err)
		}
	}

	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "opsctl",
			Email: "opsctl@local",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// RecentStats walks the commit log from HEAD and aggregates activity newer
// than since. The walk stops at the first commit older than the window, same
// as the original tracker.
func (g *GitRepoAdapter) RecentStats(path string, since time.Time) (*domain.RepoStats, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD: %w", err)
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}
	defer iter.Close()

	stats := &domain.RepoStats{}
	authors := map[string]bool{}
	filesChanged := map[string]bool{}

	err = iter.ForEach(func(c *object.Commit) error {
		if c.Committer.When.Before(since) {
			return errWindowEnd
		}

		stats.Commits = append(stats.Commits, domain.CommitInfo{
			Hash:    c.Hash.String(),
			Author:  c.Author.Name,
			Date:    c.Committer.When.Format(time.RFC3339),
			Message: c.Message,
		})
		authors[c.Author.Name] = true

		fileStats, err := c.Stats()
		if err != nil {
			return nil // unreadable diff, skip counting for this commit
		}
		for _, fs := range fileStats {
			filesChanged[fs.Name] = true
			stats.Additions += fs.Addition
			stats.Deletions += fs.Deletion
		}
		return nil
	})
	if err != nil && !errors.Is(err, errWindowEnd) {
		return nil, fmt.Errorf("walking commits: %w", err)
	}

	stats.CommitCount = len(stats.Commits)
	stats.AuthorCount = len(authors)
	stats.FilesChanged = len(filesChanged)
	return stats, nil
}
