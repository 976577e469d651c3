package tui

import (
	"fmt"
	"strings"

	"github.com/opsource/opsctl/internal/domain"
)

// RenderScanReport renders a security ScanReport as a styled TUI string.
func RenderScanReport(report *domain.ScanReport) string {
	var b strings.Builder

	b.WriteString(renderHeader("opsctl", "Bitcoin Security Scan"))

	fmt.Fprintf(&b, "  %s %s\n",
		titleStyle.Render("Scanned"),
		dimStyle.Render(fmt.Sprintf("%d source files under %s", report.FilesScanned, report.RootPath)),
	)

	if len(report.Findings) == 0 {
		b.WriteString("  " + passStyle.Render("No Bitcoin-sensitive patterns found.") + "\n")
	} else {
		sectionHeader(&b, "Security Patterns", len(report.Findings))
		for _, f := range report.Findings {
			fmt.Fprintf(&b, "    %s %s %s\n",
				warnStyle.Render("●"),
				fileStyle.Render(fmt.Sprintf("%s:%d", f.File, f.Line)),
				f.Description,
			)
			if f.Identifier != "" {
				fmt.Fprintf(&b, "      %s\n", faintStyle.Render(f.Identifier))
			}
		}
	}

	b.WriteString("\n  " + separatorLine + "\n")

	sectionHeader(&b, "Rust Audit", len(report.VulnerableDeps))
	switch {
	case !report.AuditAvailable:
		b.WriteString("    " + infoTagStyle.Render("cargo-audit not installed. Run 'cargo install cargo-audit' to enable Rust checks.") + "\n")
	case len(report.VulnerableDeps) == 0:
		b.WriteString("    " + passStyle.Render("No vulnerable Rust dependencies found.") + "\n")
	default:
		for _, d := range report.VulnerableDeps {
			fmt.Fprintf(&b, "    %s %s %s %s\n",
				failStyle.Render("●"), d.Package, dimStyle.Render(d.Version), d.Status)
		}
	}

	sectionHeader(&b, "Migration Readiness", report.RustFiles)
	fmt.Fprintf(&b, "    Rust files: %d\n", report.RustFiles)
	if report.HasCargoToml {
		b.WriteString(statusLine("Cargo.toml present", true))
	} else {
		b.WriteString(statusLine("Cargo.toml present", false))
	}

	b.WriteString("\n")
	return b.String()
}
