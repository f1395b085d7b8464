package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const (
	noMatchesNotice = "No matching items found."
	noItemsNotice   = "No items loaded."
)

// refreshViewport re-renders the filtered items into the viewport and keeps
// the selected item in view.
func (m *FilterListModel) refreshViewport() {
	content, lines := m.renderItems()
	m.itemLines = lines
	m.viewport.SetContent(content)
	m.scrollToCursor()
}

func (m *FilterListModel) renderItems() (string, []int) {
	var b strings.Builder
	lines := make([]int, 0, len(m.filtered))
	line := 0

	descWidth := max(m.viewport.Width-4, 10)

	for i, item := range m.filtered {
		lines = append(lines, line)

		if i > 0 {
			b.WriteString("\n")
		}

		if i == m.cursor {
			b.WriteString(CursorStyle.Render("▸ "))
			b.WriteString(SelectedNameStyle.Render(item.Name))
		} else {
			b.WriteString("  ")
			b.WriteString(ItemNameStyle.Render(item.Name))
		}
		b.WriteString("\n")
		line++

		desc := item.Description
		if m.settings.WrapDescriptions {
			desc = wordwrap.String(desc, descWidth)
		}
		for _, l := range strings.Split(desc, "\n") {
			b.WriteString("    ")
			b.WriteString(DescriptionStyle.Render(l))
			b.WriteString("\n")
			line++
		}

		// blank separator line between items
		line++
	}

	return strings.TrimSuffix(b.String(), "\n"), lines
}

func (m *FilterListModel) scrollToCursor() {
	if m.cursor >= len(m.itemLines) {
		m.viewport.GotoTop()
		return
	}

	start := m.itemLines[m.cursor]
	end := m.viewport.TotalLineCount() - 1
	if m.cursor+1 < len(m.itemLines) {
		end = m.itemLines[m.cursor+1] - 2
	}

	switch {
	case start < m.viewport.YOffset:
		m.viewport.SetYOffset(start)
	case end >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(min(end-m.viewport.Height+1, start))
	}
}

func (m *FilterListModel) countLine() string {
	switch m.State() {
	case StateAll:
		return fmt.Sprintf("%d items", len(m.items))
	default:
		return fmt.Sprintf("%d of %d items match %q", len(m.filtered), len(m.items), m.term)
	}
}

// listView renders the part below the search bar for the current state
func (m *FilterListModel) listView() string {
	switch m.State() {
	case StateNoMatches:
		return ContentPaddingStyle.Render(EmptyActiveStyle.Render(noMatchesNotice))
	case StateAll:
		if len(m.items) == 0 {
			return ContentPaddingStyle.Render(EmptyInactiveStyle.Render(noItemsNotice))
		}
	}
	return ContentPaddingStyle.Render(m.viewport.View())
}

func (m *FilterListModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.width, m.settings.Title))
	b.WriteString("\n")
	b.WriteString(m.searchBar.View())
	b.WriteString("\n")
	b.WriteString(ContentPaddingStyle.Render(CountStyle.Render(m.countLine())))
	b.WriteString("\n")
	b.WriteString(m.listView())
	b.WriteString("\n")
	b.WriteString(ContentPaddingStyle.Render(HelpStyle.Render(shortcutHelp())))

	return b.String()
}
