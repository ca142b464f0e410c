package events

import (
	"fmt"
	"time"

	"github.com/lininnin/mindtrack/internal/cli"
	"github.com/lininnin/mindtrack/internal/utils"
)

type EventCompleteCmd struct {
	Name string `arg:"" help:"Event name."`
	Date string `short:"d" help:"Event date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *EventCompleteCmd) Run(ctx *cli.Context) error {
	date, err := utils.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	events, err := ctx.Store.EventsOn(date)
	if err != nil {
		return fmt.Errorf("failed to complete event %q: %w", c.Name, err)
	}

	for _, e := range events {
		if e.Name != c.Name {
			continue
		}
		if e.Completed {
			fmt.Printf("Event already completed: %s\n", e.Name)
			return nil
		}
		now := time.Now()
		e.Completed = true
		e.CompletedAt = &now
		if err := ctx.Store.UpdateEvent(e); err != nil {
			return fmt.Errorf("failed to complete event %q: %w", c.Name, err)
		}
		fmt.Printf("Completed event: %s\n", e.Name)
		return nil
	}
	return fmt.Errorf("no event named %q on %s", c.Name, date)
}
