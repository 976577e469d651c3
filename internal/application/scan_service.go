package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/opsource/opsctl/internal/domain"
)

// ScanService runs the Bitcoin security pattern scan over a project tree and
// the optional cargo-audit pass over its Rust dependencies.
type ScanService struct {
	scanner domain.SourceScanner
	runner  domain.CommandRunner
}

// NewScanService creates a ScanService with its required dependencies.
func NewScanService(scanner domain.SourceScanner, runner domain.CommandRunner) *ScanService {
	return &ScanService{scanner: scanner, runner: runner}
}

var vulnDepRe = regexp.MustCompile(`([a-zA-Z0-9_-]+) (\d+\.\d+\.\d+)`)

// Scan walks the project, matches the fixed security pattern table against
// every source file, and audits Rust dependencies when cargo-audit is
// installed.
func (s *ScanService) Scan(ctx context.Context, projectPath string) (*domain.ScanReport, error) {
	scan, err := s.scanner.Scan(projectPath)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", projectPath, err)
	}

	report := &domain.ScanReport{
		RootPath:     scan.RootPath,
		FilesScanned: len(scan.SourceFiles),
		RustFiles:    len(scan.RustFiles),
		HasCargoToml: scan.HasCargoToml,
	}

	for _, f := range scan.SourceFiles {
		data, err := os.ReadFile(filepath.Join(scan.RootPath, f))
		if err != nil {
			continue // unreadable files are skipped, not fatal
		}
		report.Findings = append(report.Findings, domain.ScanContent(f, string(data))...)
	}

	s.runAudit(ctx, scan.RootPath, report)
	return report, nil
}

// runAudit runs cargo audit when available and collects vulnerable
// package/version pairs from its output.
func (s *ScanService) runAudit(ctx context.Context, dir string, report *domain.ScanReport) {
	if !s.runner.Available("cargo") {
		return
	}

	probe, err := s.runner.Run(ctx, dir, "cargo", "audit", "--version")
	if err != nil || probe.ExitCode != 0 {
		return
	}
	report.AuditAvailable = true

	audit, err := s.runner.Run(ctx, dir, "cargo", "audit")
	if err != nil {
		return
	}
	if strings.Contains(audit.Stdout, "No vulnerable packages found") {
		return
	}

	for _, m := range vulnDepRe.FindAllStringSubmatch(audit.Stdout, -1) {
		report.VulnerableDeps = append(report.VulnerableDeps, domain.VulnerableDep{
			Package: m[1],
			Version: m[2],
			Status:  "VULNERABLE",
		})
	}
}
