package tasks

import (
	"fmt"

	"github.com/lininnin/mindtrack/internal/cli"
)

type TaskDeleteCmd struct {
	Name string `arg:"" help:"Task name."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTaskByName(c.Name)
	if err != nil {
		// Deleting a task that does not exist is a no-op.
		fmt.Printf("No task named %q.\n", c.Name)
		return nil
	}
	if err := ctx.Store.DeleteTask(task.ID); err != nil {
		return fmt.Errorf("failed to delete task %q: %w", c.Name, err)
	}
	fmt.Printf("Deleted task: %s\n", task.Name)
	return nil
}
