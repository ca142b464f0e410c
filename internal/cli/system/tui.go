package system

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lininnin/mindtrack/internal/cli"
	"github.com/lininnin/mindtrack/internal/reminder"
	"github.com/lininnin/mindtrack/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	interval := time.Duration(ctx.Cfg.ReminderIntervalMin) * time.Minute
	p := tea.NewProgram(tui.NewModel(ctx.Aggregator, interval), tea.WithAltScreen())

	bg, cancel := context.WithCancel(context.Background())
	defer cancel()
	sched := reminder.New(interval, func(now time.Time) {
		p.Send(tui.ReminderMsg{At: now})
	})
	go sched.Run(bg)

	_, err := p.Run()
	return err
}
