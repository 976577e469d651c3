package application

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/opsource/opsctl/internal/domain"
)

// SyncService copies labelling files from the source repository to every
// target repository under a common base directory, keeping retention copies
// and committing updated targets.
type SyncService struct {
	git     domain.GitClient
	history domain.RetentionStore
}

// NewSyncService creates a SyncService with its required dependencies.
func NewSyncService(git domain.GitClient, history domain.RetentionStore) *SyncService {
	return &SyncService{git: git, history: history}
}

// SyncOptions control one sync run. BasePath is the directory containing the
// repositories as children.
type SyncOptions struct {
	BasePath  string
	Source    string
	Targets   []string
	Files     []string
	CheckOnly bool
	DryRun    bool
	NoCommit  bool
}

// Sync compares and copies each configured file into each target repository.
// In check-only mode nothing is written; the summary's HasDifferences lets
// the caller exit non-zero.
func (s *SyncService) Sync(opts SyncOptions) (*domain.SyncSummary, error) {
	summary := &domain.SyncSummary{
		Source:    opts.Source,
		CheckOnly: opts.CheckOnly,
		DryRun:    opts.DryRun,
	}

	changedByRepo := map[string][]string{}

	for _, repo := range opts.Targets {
		if repo == opts.Source {
			continue
		}

		repoHasChanges := false
		for _, file := range opts.Files {
			result, err := s.syncFile(opts, repo, file)
			if err != nil {
				return nil, err
			}
			summary.Results = append(summary.Results, result)

			switch result.Action {
			case domain.SyncDiffers, domain.SyncWouldCopy, domain.SyncCopied:
				repoHasChanges = true
				if result.Action == domain.SyncCopied {
					changedByRepo[repo] = append(changedByRepo[repo], file)
				}
			}
		}

		if repoHasChanges {
			summary.ReposWithDiffs = append(summary.ReposWithDiffs, repo)
			if !opts.CheckOnly && !opts.DryRun {
				summary.ReposSynced = append(summary.ReposSynced, repo)
			}
		}
	}

	if !opts.CheckOnly && !opts.DryRun && !opts.NoCommit {
		for _, repo := range summary.ReposSynced {
			files := changedByRepo[repo]
			repoPath := filepath.Join(opts.BasePath, repo)
			if len(files) == 0 || !s.git.IsRepo(repoPath) {
				continue
			}
			if err := s.git.CommitFiles(repoPath, files, domain.LabelCommitMessage); err != nil {
				return nil, fmt.Errorf("committing in %s: %w", repo, err)
			}
			summary.ReposCommitted = append(summary.ReposCommitted, repo)
		}
	}

	summary.HasDifferences = len(summary.ReposWithDiffs) > 0
	return summary, nil
}

func (s *SyncService) syncFile(opts SyncOptions, repo, file string) (domain.FileSyncResult, error) {
	result := domain.FileSyncResult{Repo: repo, File: file}

	sourcePath := filepath.Join(opts.BasePath, opts.Source, file)
	targetPath := filepath.Join(opts.BasePath, repo, file)

	sourceHash, err := fileHash(sourcePath)
	if err != nil {
		result.Action = domain.SyncMissing
		return result, nil
	}

	targetHash, targetErr := fileHash(targetPath)
	if targetErr == nil && sourceHash == targetHash {
		result.Action = domain.SyncUpToDate
		return result, nil
	}

	if opts.CheckOnly {
		result.Action = domain.SyncDiffers
		return result, nil
	}
	if opts.DryRun {
		result.Action = domain.SyncWouldCopy
		return result, nil
	}

	if targetErr == nil {
		if _, err := s.history.SaveCopy(targetPath); err != nil {
			return result, fmt.Errorf("saving history for %s: %w", targetPath, err)
		}
	}

	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return result, fmt.Errorf("reading %s: %w", sourcePath, err)
	}
	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return result, err
	}
	if err := os.WriteFile(targetPath, data, 0644); err != nil {
		return result, fmt.Errorf("writing %s: %w", targetPath, err)
	}

	result.Action = domain.SyncCopied
	return result, nil
}

func fileHash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h), nil
}
