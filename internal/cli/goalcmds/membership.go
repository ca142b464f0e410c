package goalcmds

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lininnin/mindtrack/internal/aggregator"
	"github.com/lininnin/mindtrack/internal/cli"
	"github.com/lininnin/mindtrack/internal/models"
)

type CurrentAddCmd struct {
	Name string `arg:"" help:"Goal name."`
}

func (c *CurrentAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Goals.AddToCurrent(c.Name); err != nil {
		return err
	}
	fmt.Printf("Added to current goals: %s\n", c.Name)
	return nil
}

type CurrentRemoveCmd struct {
	Name string `arg:"" help:"Goal name."`
}

func (c *CurrentRemoveCmd) Run(ctx *cli.Context) error {
	if err := ctx.Goals.RemoveFromCurrent(c.Name); err != nil {
		return err
	}
	fmt.Printf("Removed from current goals: %s\n", c.Name)
	return nil
}

type CurrentListCmd struct{}

func (c *CurrentListCmd) Run(ctx *cli.Context) error {
	return printGoalPointers(ctx.Goals.CurrentGoals())
}

type TodayAddCmd struct {
	Name string `arg:"" help:"Goal name."`
}

func (c *TodayAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Goals.AddToToday(c.Name); err != nil {
		return err
	}
	fmt.Printf("Added to today's goals: %s\n", c.Name)
	return nil
}

type TodayRemoveCmd struct {
	Name string `arg:"" help:"Goal name."`
}

func (c *TodayRemoveCmd) Run(ctx *cli.Context) error {
	if err := ctx.Goals.RemoveFromToday(c.Name); err != nil {
		return err
	}
	fmt.Printf("Removed from today's goals: %s\n", c.Name)
	return nil
}

type TodayListCmd struct{}

func (c *TodayListCmd) Run(ctx *cli.Context) error {
	return printGoalPointers(ctx.Goals.TodayGoals())
}

func printGoalPointers(goals []*models.Goal) error {
	if len(goals) == 0 {
		fmt.Println("No goals selected.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPERIOD\tPROGRESS")
	for _, g := range goals {
		fmt.Fprintf(w, "%s\t%s\t%s\n", g.Name, aggregator.PeriodLabel(*g), g.ProgressString())
	}
	return w.Flush()
}
