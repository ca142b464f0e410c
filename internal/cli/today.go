package cli

import (
	"fmt"

	"github.com/lininnin/mindtrack/internal/logger"
	"github.com/lininnin/mindtrack/internal/utils"
)

// TodayCmd refreshes the Today So Far snapshot, prints it and persists
// today's daily log document.
type TodayCmd struct {
	NoLog bool `help:"Skip writing today's daily log entry."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	snapshot, err := ctx.Aggregator.Refresh()
	if err != nil {
		return err
	}
	fmt.Print(FormatSnapshot(snapshot))

	if c.NoLog {
		return nil
	}

	date := utils.Today()
	scheduled, err := ctx.Store.TasksScheduledToday()
	if err != nil {
		return fmt.Errorf("failed to build daily log: %w", err)
	}
	entry, err := ctx.Aggregator.DailyLogFor(date, scheduled)
	if err != nil {
		return err
	}
	if err := ctx.Logs.Save(entry); err != nil {
		return err
	}
	logger.Debug("daily log saved", "date", date)
	return nil
}
