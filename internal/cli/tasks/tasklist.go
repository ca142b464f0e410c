package tasks

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lininnin/mindtrack/internal/cli"
	"github.com/lininnin/mindtrack/internal/models"
	"github.com/lininnin/mindtrack/internal/utils"
)

type TaskListCmd struct {
	Today   bool `short:"t" help:"Only tasks scheduled for today."`
	Overdue bool `help:"Only tasks past their due date."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	var tasks []models.Task
	var err error
	if c.Today {
		tasks, err = ctx.Store.TasksScheduledToday()
	} else {
		tasks, err = ctx.Store.GetAllTasks()
	}
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	today := utils.Today()
	if c.Overdue {
		var overdue []models.Task
		for _, t := range tasks {
			if t.Overdue(today) {
				overdue = append(overdue, t)
			}
		}
		tasks = overdue
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tDUE\tTODAY\tSTATUS")
	for _, t := range tasks {
		status := "open"
		if t.Completed {
			status = "done"
		} else if t.Overdue(today) {
			status = "overdue"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.Name, ctx.Categories.NameByID(t.CategoryID), t.DueDate,
			yesNo(t.ScheduledForToday), status)
	}
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
