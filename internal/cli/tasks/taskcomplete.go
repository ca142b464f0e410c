package tasks

import (
	"fmt"
	"time"

	"github.com/lininnin/mindtrack/internal/cli"
)

type TaskCompleteCmd struct {
	Name string `arg:"" help:"Task name."`
}

func (c *TaskCompleteCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTaskByName(c.Name)
	if err != nil {
		return fmt.Errorf("failed to complete task %q: %w", c.Name, err)
	}
	if task.Completed {
		fmt.Printf("Task already completed: %s\n", task.Name)
		return nil
	}

	now := time.Now()
	task.Completed = true
	task.CompletedAt = &now
	if err := ctx.Store.UpdateTask(task); err != nil {
		return fmt.Errorf("failed to complete task %q: %w", c.Name, err)
	}
	fmt.Printf("Completed task: %s\n", task.Name)

	advanced, err := ctx.RecordGoalProgress(task.ID)
	if err != nil {
		return err
	}
	for _, name := range advanced {
		if g, ok := ctx.Goals.Get(name); ok {
			fmt.Printf("Goal progress: %s %s\n", g.Name, g.ProgressString())
		}
	}
	return nil
}
