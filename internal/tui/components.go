package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderCentered centers the provided content within the given
// width/height box.
func renderCentered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderInputFrame draws a rounded bordered container around a rendered
// input view. Pass the already-rendered input view string.
func (a *App) renderInputFrame(inputView string, focused bool, contentWidth int) string {
	borderColor := lipgloss.Color(a.theme.Muted)
	if focused {
		borderColor = lipgloss.Color(a.theme.Accent)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(contentWidth + 4).
		Render(inputView)
}
