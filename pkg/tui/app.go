package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/filterlist/pkg/models"
	"github.com/pluqqy/filterlist/pkg/watch"
)

// App is the root model: the filter list plus a status bar and the optional
// item file subscription.
type App struct {
	list      *FilterListModel
	events    <-chan watch.Event
	logger    *slog.Logger
	width     int
	height    int
	statusMsg string
}

func NewApp(items []models.Item, settings *models.Settings) *App {
	return &App{
		list:   NewFilterListModel(items, settings),
		logger: slog.New(slog.DiscardHandler),
	}
}

// SetLogger sets the logger for the app and its list.
func (a *App) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	a.logger = logger
	a.list.SetLogger(logger)
}

// WatchItems subscribes the app to reloads of the item collection. Must be
// called before the program starts.
func (a *App) WatchItems(events <-chan watch.Event) {
	a.events = events
}

// List returns the filter list model.
func (a *App) List() *FilterListModel {
	return a.list
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.list.Init(), waitForItems(a.events))
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, a.listHeight())
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if Shortcuts.Quit.Matches(msg.String()) {
			return a, tea.Quit
		}
		a.setStatus("")

	case StatusMsg:
		a.setStatus(string(msg))
		return a, nil

	case ItemsLoadedMsg:
		a.logger.Info("item collection replaced", "count", len(msg.Items), "error", msg.Err)
		_, cmd := a.list.Update(msg)
		return a, tea.Batch(cmd, waitForItems(a.events))
	}

	m, cmd := a.list.Update(msg)
	if fl, ok := m.(*FilterListModel); ok {
		a.list = fl
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.list.View()
	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, StatusStyle.Render(a.statusMsg))
	}
	return content
}

// setStatus shows text in the status bar and gives the list the row back
// when the bar is cleared.
func (a *App) setStatus(text string) {
	if a.statusMsg == text {
		return
	}
	a.statusMsg = text
	if a.height > 0 {
		a.list.SetSize(a.width, a.listHeight())
	}
}

func (a *App) listHeight() int {
	if a.statusMsg != "" {
		return a.height - 1
	}
	return a.height
}

// waitForItems turns the next watcher event into an ItemsLoadedMsg.
func waitForItems(events <-chan watch.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return ItemsLoadedMsg{Items: ev.Items, Err: ev.Err}
	}
}

// Messages for communication between models
type StatusMsg string

// ItemsLoadedMsg replaces the item collection. A non-nil Err keeps the
// current collection.
type ItemsLoadedMsg struct {
	Items []models.Item
	Err   error
}
