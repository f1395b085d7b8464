package tui

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/filterlist/pkg/filter"
	"github.com/pluqqy/filterlist/pkg/models"
)

// DisplayState is what the list currently shows.
type DisplayState int

const (
	// StateAll: the term is empty and the whole collection is shown.
	StateAll DisplayState = iota
	// StateMatches: the term is set and at least one item matches.
	StateMatches
	// StateNoMatches: the term is set and nothing matches; only a notice
	// is shown.
	StateNoMatches
)

func (s DisplayState) String() string {
	switch s {
	case StateAll:
		return "all"
	case StateMatches:
		return "matches"
	case StateNoMatches:
		return "no-matches"
	default:
		return fmt.Sprintf("DisplayState(%d)", int(s))
	}
}

// classify derives the display state from the term and its result.
func classify(term string, filtered []models.Item) DisplayState {
	if term == "" {
		return StateAll
	}
	if len(filtered) == 0 {
		return StateNoMatches
	}
	return StateMatches
}

// Layout rows outside the list viewport: title, search bar (3), count, help
const chromeHeight = 6

// FilterListModel is a list of items under a search box. It owns the search
// term; the items belong to the caller and are replaced wholesale.
type FilterListModel struct {
	settings models.UISettings

	items    []models.Item
	filtered []models.Item
	term     string

	searchBar *SearchBar
	viewport  viewport.Model
	cursor    int

	// first rendered line of each filtered item, filled by refreshViewport
	itemLines []int

	width  int
	height int

	copyToClipboard func(string) error
	logger          *slog.Logger
}

// NewFilterListModel creates a list showing items, with an empty term.
func NewFilterListModel(items []models.Item, settings *models.Settings) *FilterListModel {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	ui := settings.UI.WithDefaults()

	m := &FilterListModel{
		settings:        ui,
		searchBar:       NewSearchBar(ui.Placeholder, ui.CharLimit),
		viewport:        viewport.New(80, 20),
		copyToClipboard: clipboard.WriteAll,
		logger:          slog.New(slog.DiscardHandler),
	}
	m.searchBar.SetActive(true)
	m.SetSize(80, 24)
	m.SetItems(items)
	return m
}

// SetLogger replaces the discard logger.
func (m *FilterListModel) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// SetClipboard replaces the function used to copy descriptions.
func (m *FilterListModel) SetClipboard(fn func(string) error) {
	m.copyToClipboard = fn
}

// SetItems replaces the item collection and recomputes the result.
func (m *FilterListModel) SetItems(items []models.Item) {
	m.items = models.CloneItems(items)
	m.recompute()
}

// SetSearchTerm replaces the search term and recomputes the result. The term
// goes through the search bar first, so tabs and newlines become spaces and
// anything past the character limit is dropped; SearchTerm reports what was
// kept.
func (m *FilterListModel) SetSearchTerm(term string) {
	m.searchBar.SetValue(term)
	m.term = m.searchBar.Value()
	m.recompute()
}

// Items returns the current collection.
func (m *FilterListModel) Items() []models.Item {
	return models.CloneItems(m.items)
}

// Filtered returns the items currently shown.
func (m *FilterListModel) Filtered() []models.Item {
	return models.CloneItems(m.filtered)
}

// SearchTerm returns the current term.
func (m *FilterListModel) SearchTerm() string {
	return m.term
}

// State returns the current display state.
func (m *FilterListModel) State() DisplayState {
	return classify(m.term, m.filtered)
}

// Selected returns the item under the cursor, if any.
func (m *FilterListModel) Selected() (models.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return models.Item{}, false
	}
	return m.filtered[m.cursor], true
}

// recompute derives the filtered result from the collection and the term.
// Every path that changes either one ends here.
func (m *FilterListModel) recompute() {
	m.filtered = filter.Filter(m.items, m.term)
	m.clampCursor()
	m.logger.Debug("filter applied",
		"term", m.term,
		"items", len(m.items),
		"matches", len(m.filtered),
		"state", m.State().String())
	m.refreshViewport()
}

func (m *FilterListModel) clampCursor() {
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *FilterListModel) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
	m.refreshViewport()
}

func (m *FilterListModel) Init() tea.Cmd {
	return nil
}

func (m *FilterListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ItemsLoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("keeping previous items", "error", msg.Err)
			return m, statusCmd(fmt.Sprintf("Reload failed: %v", msg.Err))
		}
		m.SetItems(msg.Items)
		return m, statusCmd(fmt.Sprintf("Reloaded %d items", len(msg.Items)))

	case tea.KeyMsg:
		key := msg.String()
		switch {
		case Shortcuts.Clear.Matches(key):
			if m.term != "" {
				m.searchBar.Reset()
				m.term = ""
				m.recompute()
			}
			return m, nil
		case Shortcuts.Up.Matches(key):
			m.moveCursor(-1)
			return m, nil
		case Shortcuts.Down.Matches(key):
			m.moveCursor(1)
			return m, nil
		case Shortcuts.PageUp.Matches(key), Shortcuts.PageDown.Matches(key):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case Shortcuts.Copy.Matches(key):
			return m, m.copySelected()
		}

		var cmd tea.Cmd
		m.searchBar, cmd = m.searchBar.Update(msg)

		// Check if search term changed
		if m.term != m.searchBar.Value() {
			m.term = m.searchBar.Value()
			m.recompute()
		}
		return m, cmd
	}

	// Cursor blink and other input messages
	var cmd tea.Cmd
	m.searchBar, cmd = m.searchBar.Update(msg)
	return m, cmd
}

func (m *FilterListModel) copySelected() tea.Cmd {
	item, ok := m.Selected()
	if !ok {
		return statusCmd("Nothing selected")
	}
	if err := m.copyToClipboard(item.Description); err != nil {
		m.logger.Error("clipboard write failed", "id", item.ID, "error", err)
		return statusCmd(fmt.Sprintf("Failed to copy: %v", err))
	}
	return statusCmd(fmt.Sprintf("Copied description of %q", item.Name))
}

// SetSize resizes the search bar and the list viewport
func (m *FilterListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.searchBar.SetWidth(width)
	m.viewport.Width = max(width-2, 1)
	m.viewport.Height = max(height-chromeHeight, 1)
	m.refreshViewport()
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(text)
	}
}
