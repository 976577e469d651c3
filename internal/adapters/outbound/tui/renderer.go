package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ── Warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(fg)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle           = lipgloss.NewStyle().Foreground(dim)
	faintStyle         = lipgloss.NewStyle().Foreground(faint)
	passStyle          = lipgloss.NewStyle().Foreground(success)
	failStyle          = lipgloss.NewStyle().Foreground(danger)
	warnStyle          = lipgloss.NewStyle().Foreground(warning)
	fileStyle          = lipgloss.NewStyle().Foreground(dim)
	infoTagStyle       = lipgloss.NewStyle().Foreground(info)
	separatorLine      = faintStyle.Render(strings.Repeat("─", 64))
)

// renderHeader renders the boxed two-line report header shared by all
// command renderers.
func renderHeader(title, subtitle string) string {
	return boxStyle.Render(headerStyle.Render(title)+"\n"+dimStyle.Render(subtitle)) + "\n"
}

// statusLine renders a [PASS]/[FAIL] line for a named check.
func statusLine(name string, ok bool) string {
	tag := passStyle.Render("[PASS]")
	if !ok {
		tag = failStyle.Render("[FAIL]")
	}
	return fmt.Sprintf("  %s %s\n", tag, name)
}

func sectionHeader(b *strings.Builder, title string, count int) {
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n",
		sectionHeaderStyle.Render(title),
		dimStyle.Render(fmt.Sprintf("(%d)", count)),
	))
}
