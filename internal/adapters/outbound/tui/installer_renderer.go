package tui

import (
	"fmt"
	"strings"

	"github.com/opsource/opsctl/internal/domain"
)

// RenderInstallerReport renders installer dry-run results as a styled TUI
// string.
func RenderInstallerReport(r *domain.InstallerReport) string {
	var b strings.Builder

	b.WriteString(renderHeader("opsctl", "Installer Dry Run"))

	sectionHeader(&b, "System Compatibility", len(r.Compatibility))
	for _, c := range r.Compatibility {
		b.WriteString(statusLine(c.Component, c.OK))
	}

	if len(r.PythonDeps) > 0 {
		sectionHeader(&b, "Python Dependencies", len(r.PythonDeps))
		for _, d := range r.PythonDeps {
			b.WriteString(statusLine(depLabel(d), d.Available))
		}
	}

	if len(r.CargoDeps) > 0 {
		sectionHeader(&b, "Cargo Dependencies", len(r.CargoDeps))
		for _, d := range r.CargoDeps {
			b.WriteString(statusLine(depLabel(d), d.Available))
		}
	}

	if len(r.Runs) > 0 {
		sectionHeader(&b, "Installer Dry Runs", len(r.Runs))
		for _, run := range r.Runs {
			b.WriteString(statusLine(run.Name, run.Success))
			if !run.Success && run.Output != "" {
				for _, line := range strings.Split(strings.TrimSpace(run.Output), "\n") {
					fmt.Fprintf(&b, "      %s\n", faintStyle.Render(line))
				}
			}
		}
	}

	b.WriteString("\n")
	return b.String()
}

func depLabel(d domain.DepCheck) string {
	if d.Detail != "" {
		return d.Name + "  " + d.Detail
	}
	return d.Name
}
