// Package tui renders the Today So Far dashboard. The model holds only the
// latest snapshot; every refresh replaces it wholesale, so the view can
// never mix data from two refreshes.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lininnin/mindtrack/internal/aggregator"
	"github.com/lininnin/mindtrack/internal/models"
)

type keyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Refresh, k.Quit}}
}

var keys = keyMap{
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// RefreshedMsg carries the result of a snapshot refresh.
type RefreshedMsg struct {
	Snapshot models.TodaySoFar
	Err      error
}

// ReminderMsg is sent by the reminder scheduler while the dashboard is
// open.
type ReminderMsg struct {
	At time.Time
}

type Model struct {
	agg      *aggregator.Aggregator
	interval time.Duration

	snapshot    models.TodaySoFar
	err         error
	refreshedAt time.Time
	reminderAt  time.Time

	keys keyMap
	help help.Model
}

func NewModel(agg *aggregator.Aggregator, interval time.Duration) Model {
	return Model{
		agg:      agg,
		interval: interval,
		keys:     keys,
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		snapshot, err := m.agg.Refresh()
		return RefreshedMsg{Snapshot: snapshot, Err: err}
	}
}
