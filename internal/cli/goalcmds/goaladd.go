package goalcmds

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lininnin/mindtrack/internal/cli"
	"github.com/lininnin/mindtrack/internal/models"
	"github.com/lininnin/mindtrack/internal/utils"
)

type GoalAddCmd struct {
	Name      string `arg:"" help:"Goal name."`
	Frequency int    `short:"f" help:"Target number of completions." required:""`
	Period    string `short:"p" help:"Time period (week|month). Omit for a custom date range."`
	Begin     string `short:"b" help:"Begin date (YYYY-MM-DD or 'today')." default:"today"`
	Due       string `short:"d" help:"Due date (YYYY-MM-DD)." required:""`
	Target    string `short:"T" help:"Name of the task this goal tracks."`
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	begin, err := utils.ResolveDate(c.Begin)
	if err != nil {
		return err
	}

	var period models.TimePeriod
	switch c.Period {
	case "week":
		period = models.PeriodWeek
	case "month":
		period = models.PeriodMonth
	case "":
	default:
		return fmt.Errorf("invalid period %q (expected week or month)", c.Period)
	}

	goal := models.Goal{
		ID:         uuid.New().String(),
		Name:       c.Name,
		Frequency:  c.Frequency,
		BeginDate:  begin,
		DueDate:    c.Due,
		TimePeriod: period,
	}

	if c.Target != "" {
		task, err := ctx.Store.GetTaskByName(c.Target)
		if err != nil {
			return fmt.Errorf("failed to resolve target task %q: %w", c.Target, err)
		}
		goal.TargetTaskID = task.ID
	}

	if err := ctx.Goals.Save(goal); err != nil {
		return err
	}
	fmt.Printf("Added goal: %s (%d by %s)\n", goal.Name, goal.Frequency, goal.DueDate)
	return nil
}
