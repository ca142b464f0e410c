package tasks

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lininnin/mindtrack/internal/cli"
	"github.com/lininnin/mindtrack/internal/models"
	"github.com/lininnin/mindtrack/internal/utils"
	"github.com/lininnin/mindtrack/internal/validation"
)

type TaskAddCmd struct {
	Name        string `arg:"" help:"Task name."`
	Description string `short:"D" help:"Optional description."`
	Category    string `short:"c" help:"Category name."`
	Due         string `short:"d" help:"Due date (YYYY-MM-DD)."`
	Today       bool   `short:"t" help:"Schedule the task for today."`
}

func (c *TaskAddCmd) Validate() error {
	if err := validation.RequireName("task name", c.Name); err != nil {
		return err
	}
	if c.Due != "" && !utils.ValidDate(c.Due) {
		return fmt.Errorf("invalid due date %q (expected YYYY-MM-DD)", c.Due)
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	categoryID, err := ctx.ResolveCategoryID(c.Category)
	if err != nil {
		return err
	}

	task := models.Task{
		ID:                uuid.New().String(),
		Name:              c.Name,
		Description:       c.Description,
		CategoryID:        categoryID,
		DueDate:           c.Due,
		ScheduledForToday: c.Today,
		CreatedAt:         time.Now(),
	}
	if err := ctx.Store.AddTask(task); err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	fmt.Printf("Added task: %s\n", task.Name)
	return nil
}
