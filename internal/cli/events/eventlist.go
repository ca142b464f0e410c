package events

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lininnin/mindtrack/internal/cli"
	"github.com/lininnin/mindtrack/internal/models"
	"github.com/lininnin/mindtrack/internal/utils"
)

type EventListCmd struct {
	Date string `short:"d" help:"Only events on this date (YYYY-MM-DD or 'today')."`
	All  bool   `short:"a" help:"List every event."`
}

func (c *EventListCmd) Run(ctx *cli.Context) error {
	var events []models.Event
	var err error
	if c.All {
		events, err = ctx.Store.GetAllEvents()
	} else {
		date, derr := utils.ResolveDate(c.Date)
		if derr != nil {
			return derr
		}
		events, err = ctx.Store.EventsOn(date)
	}
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("No events found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tDATE\tTIME\tSTATUS")
	for _, e := range events {
		span := e.StartTime
		if e.EndTime != "" {
			span += "-" + e.EndTime
		}
		status := "planned"
		if e.Completed {
			status = "done"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.Name, ctx.Categories.NameByID(e.CategoryID), e.Date, span, status)
	}
	return w.Flush()
}
