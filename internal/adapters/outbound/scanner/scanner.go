package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/opsource/opsctl/internal/domain"
)

var skipDirs = map[string]bool{
	"venv":         true,
	".venv":        true,
	"env":          true,
	"node_modules": true,
	".git":         true,
	"vendor":       true,
	"target":       true,
	"dist":         true,
	"test":         true,
	"tests":        true,
	"testdata":     true,
}

// sourceExtensions are the file types the security scan inspects.
var sourceExtensions = map[string]bool{
	".go": true,
	".rs": true,
	".py": true,
	".js": true,
	".ts": true,
}

// FileScanner implements domain.SourceScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

func (s *FileScanner) Scan(projectPath string) (*domain.SourceScan, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	result := &domain.SourceScan{RootPath: absPath}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != absPath && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, _ := filepath.Rel(absPath, path)

		// Root-level marker files.
		if filepath.Dir(relPath) == "." {
			switch d.Name() {
			case "Cargo.toml":
				result.HasCargoToml = true
			case "requirements.txt":
				result.HasRequirements = true
			}
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if sourceExtensions[ext] {
			result.SourceFiles = append(result.SourceFiles, relPath)
			if ext == ".rs" {
				result.RustFiles = append(result.RustFiles, relPath)
			}
		}

		return nil
	})

	return result, err
}
