package tui

import (
	"runtime"
	"slices"
	"strings"
)

// ShortcutKey is one list action and the keys that trigger it. Keys[0] is
// the one shown in the help line.
type ShortcutKey struct {
	Keys []string
	Help string
}

// Matches reports whether a key string from tea.KeyMsg triggers the shortcut
func (s ShortcutKey) Matches(key string) bool {
	return slices.Contains(s.Keys, key)
}

// Shortcuts holds every key the list handles itself. Anything else is typed
// into the search bar.
var Shortcuts = struct {
	Up       ShortcutKey
	Down     ShortcutKey
	PageUp   ShortcutKey
	PageDown ShortcutKey
	Copy     ShortcutKey
	Clear    ShortcutKey
	Quit     ShortcutKey
}{
	Up:       ShortcutKey{Keys: []string{"up", "ctrl+p"}, Help: "select"},
	Down:     ShortcutKey{Keys: []string{"down", "ctrl+n"}},
	PageUp:   ShortcutKey{Keys: []string{"pgup"}, Help: "scroll"},
	PageDown: ShortcutKey{Keys: []string{"pgdown"}},
	Copy:     ShortcutKey{Keys: []string{"ctrl+y"}, Help: "copy"},
	Clear:    ShortcutKey{Keys: []string{"esc"}, Help: "clear"},
	Quit:     ShortcutKey{Keys: []string{"ctrl+c"}, Help: "quit"},
}

// FormatShortcutForHelp converts a key to its display form, e.g. ctrl+y to ^y
func FormatShortcutForHelp(key string) string {
	key = strings.ReplaceAll(key, "ctrl+", "^")
	if runtime.GOOS == "darwin" {
		key = strings.ReplaceAll(key, "alt+", "⌥")
	} else {
		key = strings.ReplaceAll(key, "alt+", "M-")
	}

	switch key {
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "pgdown":
		return "pgdn"
	}
	return key
}

// shortcutHelp builds the help line shown under the list
func shortcutHelp() string {
	pair := func(a, b ShortcutKey) string {
		return FormatShortcutForHelp(a.Keys[0]) + "/" + FormatShortcutForHelp(b.Keys[0]) + " " + a.Help
	}
	single := func(s ShortcutKey) string {
		return FormatShortcutForHelp(s.Keys[0]) + " " + s.Help
	}

	return strings.Join([]string{
		"type to filter",
		pair(Shortcuts.Up, Shortcuts.Down),
		pair(Shortcuts.PageUp, Shortcuts.PageDown),
		single(Shortcuts.Copy),
		single(Shortcuts.Clear),
		single(Shortcuts.Quit),
	}, " • ")
}
