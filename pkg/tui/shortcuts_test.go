package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortcutKey_Matches(t *testing.T) {
	tests := []struct {
		name     string
		shortcut ShortcutKey
		key      string
		want     bool
	}{
		{"arrow up", Shortcuts.Up, "up", true},
		{"emacs up", Shortcuts.Up, "ctrl+p", true},
		{"emacs down", Shortcuts.Down, "ctrl+n", true},
		{"copy", Shortcuts.Copy, "ctrl+y", true},
		{"plain letter is not a shortcut", Shortcuts.Copy, "y", false},
		{"escape clears", Shortcuts.Clear, "esc", true},
		{"quit", Shortcuts.Quit, "ctrl+c", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shortcut.Matches(tt.key))
		})
	}
}

func TestFormatShortcutForHelp(t *testing.T) {
	assert.Equal(t, "^y", FormatShortcutForHelp("ctrl+y"))
	assert.Equal(t, "↑", FormatShortcutForHelp("up"))
	assert.Equal(t, "pgdn", FormatShortcutForHelp("pgdown"))
	assert.Equal(t, "esc", FormatShortcutForHelp("esc"))
}

func TestShortcutHelp(t *testing.T) {
	help := shortcutHelp()
	assert.Equal(t, "type to filter • ↑/↓ select • pgup/pgdn scroll • ^y copy • esc clear • ^c quit", help)
}
