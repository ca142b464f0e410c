package goalcmds

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lininnin/mindtrack/internal/aggregator"
	"github.com/lininnin/mindtrack/internal/cli"
	"github.com/lininnin/mindtrack/internal/models"
	"github.com/lininnin/mindtrack/internal/utils"
)

type GoalListCmd struct {
	Available bool `short:"a" help:"Only goals whose date range covers today and which are not completed."`
	MinFreq   int  `help:"Only goals with frequency at or above this value." default:"-1"`
	MaxFreq   int  `help:"Only goals with frequency at or below this value." default:"-1"`
}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	var goals []models.Goal
	switch {
	case c.Available:
		goals = ctx.Goals.FindAvailable(utils.Today())
	case c.MinFreq >= 0 || c.MaxFreq >= 0:
		low, high := c.MinFreq, c.MaxFreq
		if low < 0 {
			low = 0
		}
		if high < 0 {
			high = int(^uint(0) >> 1)
		}
		goals = ctx.Goals.FindByTargetRange(low, high)
	default:
		goals = ctx.Goals.All()
	}

	if len(goals) == 0 {
		fmt.Println("No goals found.")
		return nil
	}
	return printGoals(goals)
}

func printGoals(goals []models.Goal) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPERIOD\tPROGRESS\tBEGIN\tDUE\tSTATUS")
	for _, g := range goals {
		status := "active"
		if g.Completed {
			status = "completed"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			g.Name, aggregator.PeriodLabel(g), g.ProgressString(),
			g.BeginDate, g.DueDate, status)
	}
	return w.Flush()
}
