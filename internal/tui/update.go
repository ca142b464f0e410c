package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			// A manual refresh also dismisses the wellness reminder.
			m.reminderAt = time.Time{}
			return m, m.refreshCmd()
		}

	case RefreshedMsg:
		// An errored refresh keeps the previous snapshot on screen.
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.snapshot = msg.Snapshot
		m.refreshedAt = time.Now()
		return m, nil

	case ReminderMsg:
		m.reminderAt = msg.At
		return m, m.refreshCmd()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}
