package history

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	historyDirName = ".label_history"
	keepCopies     = 10
)

// FileHistory implements domain.RetentionStore by keeping timestamped copies
// of overwritten files next to the target, pruned to the newest ten.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

// SaveCopy stores a timestamped copy of filePath under .label_history in the
// file's directory and returns the copy's path.
func (h *FileHistory) SaveCopy(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filePath, err)
	}

	dir := filepath.Join(filepath.Dir(filePath), historyDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	name := filepath.Base(filePath)
	stamp := time.Now().Format("20060102_150405")
	copyPath := filepath.Join(dir, fmt.Sprintf("%s_%s", name, stamp))

	if err := os.WriteFile(copyPath, data, 0644); err != nil {
		return "", err
	}

	if err := prune(dir, name); err != nil {
		return "", err
	}
	return copyPath, nil
}

// prune removes the oldest history copies of name, keeping the newest ten.
// Timestamped names sort chronologically.
func prune(dir, name string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var copies []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), name+"_") {
			copies = append(copies, e.Name())
		}
	}
	sort.Strings(copies)

	for len(copies) > keepCopies {
		if err := os.Remove(filepath.Join(dir, copies[0])); err != nil {
			return err
		}
		copies = copies[1:]
	}
	return nil
}
