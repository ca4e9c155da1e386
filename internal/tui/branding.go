package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"postcard/internal/theme"
)

const AppName = "postcard"

// ASCII art logo lines for postcard - canonical definition
var LogoLines = []string{
	"▄▄▄▄▄   ▄▄▄▄  ▄▄▄▄ ▄▄▄▄▄▄",
	"██  ██ ██  ██ ██     ██",
	"██▀▀▀  ██  ██ ▀▀▀██  ██",
	"██     ▀████▀ ████▀  ██ card",
}

const CompactLogo = "postcard ›"

// Banner gradient colors
var BannerColors = []lipgloss.Color{
	lipgloss.Color("#FF6B6B"),
	lipgloss.Color("#FFA86B"),
	lipgloss.Color("#95E1D3"),
	lipgloss.Color("#4ECDC4"),
}

// Banner renders the startup banner printed before the program takes
// over the terminal.
func Banner(version string) string {
	lines := make([]string, 0, len(LogoLines)+2)
	for i, line := range LogoLines {
		style := lipgloss.NewStyle().
			Foreground(BannerColors[i%len(BannerColors)]).
			Bold(true)
		lines = append(lines, style.Render(line))
	}
	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94A3B8")).
		Render(fmt.Sprintf("one post at a time · %s", version)))

	banner := lipgloss.JoinVertical(lipgloss.Center, lines...)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#4ECDC4")).
		Padding(0, 3).
		MarginTop(1).
		MarginBottom(1).
		Render(banner)
}

// styles bundles the lipgloss styles derived from the active theme.
type styles struct {
	header   lipgloss.Style
	position lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	accent   lipgloss.Style
	errText  lipgloss.Style
	help     lipgloss.Style
}

func newStyles(th theme.Theme) styles {
	return styles{
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color(th.Primary)).Bold(true),
		position: lipgloss.NewStyle().Foreground(lipgloss.Color(th.Secondary)),
		text:     lipgloss.NewStyle().Foreground(lipgloss.Color(th.Text)),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(th.Muted)),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(th.Accent)),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color(th.Error)).Bold(true),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color(th.Muted)),
	}
}
