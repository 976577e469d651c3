package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/opsource/opsctl/internal/domain"
)

// InstallerService performs installer dry-run checks: host compatibility,
// declared dependency availability, and the installers themselves invoked
// with their dry-run flags.
type InstallerService struct {
	runner domain.CommandRunner
}

// NewInstallerService creates an InstallerService with its required runner.
func NewInstallerService(runner domain.CommandRunner) *InstallerService {
	return &InstallerService{runner: runner}
}

// Check runs every dry-run check against the project at path.
func (s *InstallerService) Check(ctx context.Context, path string) (*domain.InstallerReport, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	report := &domain.InstallerReport{Path: absPath}
	report.Compatibility = s.checkCompatibility()

	if reqs := filepath.Join(absPath, "requirements.txt"); fileExists(reqs) {
		report.PythonDeps = s.checkPythonDeps(ctx, absPath, reqs)
	}
	if manifest := filepath.Join(absPath, "Cargo.toml"); fileExists(manifest) {
		deps, err := s.checkCargoDeps(ctx, absPath, manifest)
		if err != nil {
			return nil, err
		}
		report.CargoDeps = deps
	}

	report.Runs = s.dryRunInstallers(ctx, absPath)
	return report, nil
}

func (s *InstallerService) checkCompatibility() []domain.CompatibilityCheck {
	var checks []domain.CompatibilityCheck

	switch runtime.GOOS {
	case "linux":
		checks = append(checks, domain.CompatibilityCheck{Component: "Linux OS", OK: true})
	case "darwin":
		checks = append(checks, domain.CompatibilityCheck{Component: "macOS", OK: true})
	case "windows":
		checks = append(checks, domain.CompatibilityCheck{Component: "Windows OS", OK: true})
	default:
		checks = append(checks, domain.CompatibilityCheck{Component: "Unsupported OS"})
	}

	checks = append(checks,
		domain.CompatibilityCheck{Component: "Rust", OK: s.runner.Available("rustc")},
		domain.CompatibilityCheck{Component: "Cargo", OK: s.runner.Available("cargo")},
	)
	return checks
}

// checkPythonDeps parses requirements.txt and asks pip whether each package
// is installed. Without a python interpreter every dependency is reported as
// unavailable rather than failing the whole check.
func (s *InstallerService) checkPythonDeps(ctx context.Context, dir, reqsPath string) []domain.DepCheck {
	data, err := os.ReadFile(reqsPath)
	if err != nil {
		return nil
	}

	hasPython := s.runner.Available("python3")

	var deps []domain.DepCheck
	for _, line := range strings.Split(string(data), "\n") {
		name := requirementName(line)
		if name == "" {
			continue
		}

		check := domain.DepCheck{Name: name}
		if hasPython {
			res, err := s.runner.Run(ctx, dir, "python3", "-m", "pip", "show", name)
			check.Available = err == nil && res.ExitCode == 0
		} else {
			check.Detail = "python3 not found"
		}
		deps = append(deps, check)
	}
	return deps
}

// requirementName strips comments, version pins, and whitespace from a
// requirements.txt line.
func requirementName(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ""
	}
	for _, sep := range []string{"==", ">=", "<=", "~=", ">", "<"} {
		if idx := strings.Index(line, sep); idx >= 0 {
			line = line[:idx]
		}
	}
	return strings.ToLower(strings.TrimSpace(line))
}

// checkCargoDeps lists [dependencies] from Cargo.toml and verifies they
// resolve with a cargo fetch.
func (s *InstallerService) checkCargoDeps(ctx context.Context, dir, manifestPath string) ([]domain.DepCheck, error) {
	var manifest struct {
		Dependencies map[string]toml.Primitive `toml:"dependencies"`
	}
	if _, err := toml.DecodeFile(manifestPath, &manifest); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", manifestPath, err)
	}

	if !s.runner.Available("cargo") {
		return []domain.DepCheck{{Name: "cargo", Detail: "not installed or not in PATH"}}, nil
	}

	fetch, err := s.runner.Run(ctx, dir, "cargo", "fetch", "--manifest-path", manifestPath)
	if err != nil {
		return nil, fmt.Errorf("running cargo fetch: %w", err)
	}
	resolved := fetch.ExitCode == 0

	deps := make([]domain.DepCheck, 0, len(manifest.Dependencies))
	for name := range manifest.Dependencies {
		deps = append(deps, domain.DepCheck{Name: name, Available: resolved})
	}
	sortDeps(deps)

	if !resolved {
		for _, line := range strings.Split(fetch.Stderr, "\n") {
			if strings.Contains(line, "error:") {
				deps = append(deps, domain.DepCheck{Name: "cargo fetch", Detail: strings.TrimSpace(line)})
				break
			}
		}
	}
	return deps, nil
}

func sortDeps(deps []domain.DepCheck) {
	for i := 1; i < len(deps); i++ {
		for j := i; j > 0 && deps[j].Name < deps[j-1].Name; j-- {
			deps[j], deps[j-1] = deps[j-1], deps[j]
		}
	}
}

// dryRunInstallers invokes whichever installers the project ships, always in
// dry-run mode.
func (s *InstallerService) dryRunInstallers(ctx context.Context, dir string) []domain.InstallerRun {
	var runs []domain.InstallerRun

	if script := filepath.Join(dir, "scripts", "install.py"); fileExists(script) {
		run := domain.InstallerRun{Name: "scripts/install.py --dry-run"}
		if s.runner.Available("python3") {
			res, err := s.runner.Run(ctx, dir, "python3", script, "--dry-run")
			run.Success = err == nil && res.ExitCode == 0
			run.Output = res.Stdout + res.Stderr
		} else {
			run.Output = "python3 not found"
		}
		runs = append(runs, run)
	}

	if bin := filepath.Join(dir, "target", "debug", "installer"); fileExists(bin) {
		run := domain.InstallerRun{Name: "installer install --dry-run --yes"}
		res, err := s.runner.Run(ctx, dir, bin, "install", "--dry-run", "--yes")
		run.Success = err == nil && res.ExitCode == 0
		run.Output = res.Stdout + res.Stderr
		runs = append(runs, run)
	}

	return runs
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
