package tasks

import (
	"fmt"

	"github.com/lininnin/mindtrack/internal/cli"
)

type TaskScheduleCmd struct {
	Name   string `arg:"" help:"Task name."`
	Remove bool   `short:"r" help:"Remove the task from today's list instead."`
}

func (c *TaskScheduleCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTaskByName(c.Name)
	if err != nil {
		return fmt.Errorf("failed to schedule task %q: %w", c.Name, err)
	}

	scheduled := !c.Remove
	if task.ScheduledForToday == scheduled {
		fmt.Printf("Task unchanged: %s\n", task.Name)
		return nil
	}
	task.ScheduledForToday = scheduled
	if err := ctx.Store.UpdateTask(task); err != nil {
		return fmt.Errorf("failed to schedule task %q: %w", c.Name, err)
	}

	if scheduled {
		fmt.Printf("Scheduled for today: %s\n", task.Name)
	} else {
		fmt.Printf("Removed from today: %s\n", task.Name)
	}
	return nil
}
