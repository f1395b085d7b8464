package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "242" // Even dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorWhite    = "255"
	ColorTitle    = "205" // Pink for the header
	ColorStatusBg = "62"
	ColorStatusFg = "230"
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorTitle)).
			Bold(true)

	// Item styles
	ItemNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true)

	SelectedNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorActive)).
				Background(lipgloss.Color(ColorSelected)).
				Bold(true)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorNormal))

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	// Padding styles
	ContentPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	// Message styles
	EmptyActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWarning)).
				Bold(true)

	EmptyInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorVeryDim))

	CountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim))

	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorStatusBg)).
			Foreground(lipgloss.Color(ColorStatusFg)).
			Padding(0, 1)
)
