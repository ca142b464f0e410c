package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lininnin/mindtrack/internal/cli"
	"github.com/lininnin/mindtrack/internal/models"
	"github.com/lininnin/mindtrack/internal/utils"
	"github.com/lininnin/mindtrack/internal/validation"
)

type EventAddCmd struct {
	Name     string `arg:"" help:"Event name."`
	Category string `short:"c" help:"Category name."`
	Date     string `short:"d" help:"Event date (YYYY-MM-DD or 'today')." default:"today"`
	Start    string `short:"s" help:"Start time (HH:MM)."`
	End      string `short:"e" help:"End time (HH:MM)."`
}

func (c *EventAddCmd) Validate() error {
	if err := validation.RequireName("event name", c.Name); err != nil {
		return err
	}
	if c.Start != "" && !utils.ValidTime(c.Start) {
		return fmt.Errorf("invalid start time %q (expected HH:MM)", c.Start)
	}
	if c.End != "" && !utils.ValidTime(c.End) {
		return fmt.Errorf("invalid end time %q (expected HH:MM)", c.End)
	}
	if c.Start != "" && c.End != "" && c.End <= c.Start {
		return fmt.Errorf("end time %s must be after start time %s", c.End, c.Start)
	}
	return nil
}

func (c *EventAddCmd) Run(ctx *cli.Context) error {
	date, err := utils.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	categoryID, err := ctx.ResolveCategoryID(c.Category)
	if err != nil {
		return err
	}

	event := models.Event{
		ID:         uuid.New().String(),
		Name:       c.Name,
		CategoryID: categoryID,
		Date:       date,
		StartTime:  c.Start,
		EndTime:    c.End,
		CreatedAt:  time.Now(),
	}
	if err := ctx.Store.AddEvent(event); err != nil {
		return fmt.Errorf("failed to add event: %w", err)
	}

	fmt.Printf("Added event: %s on %s\n", event.Name, event.Date)
	return nil
}
