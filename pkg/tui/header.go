package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the title on a single padded row
func renderHeader(width int, title string) string {
	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	if width > 0 {
		headerPadding = headerPadding.Width(width)
	}

	return headerPadding.Render(TitleStyle.Render(title))
}
