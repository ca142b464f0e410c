package goalcmds

import (
	"fmt"

	"github.com/lininnin/mindtrack/internal/cli"
)

type GoalProgressCmd struct {
	Name string `arg:"" help:"Goal name."`
	Set  int    `short:"s" help:"Set progress to an absolute value." default:"-1"`
}

func (c *GoalProgressCmd) Run(ctx *cli.Context) error {
	if c.Set >= 0 {
		if err := ctx.Goals.UpdateTodayGoalProgress(c.Name, c.Set); err != nil {
			return err
		}
	} else {
		if err := ctx.Goals.RecordCompletion(c.Name); err != nil {
			return err
		}
	}

	g, _ := ctx.Goals.Get(c.Name)
	fmt.Printf("Goal progress: %s %s\n", g.Name, g.ProgressString())
	if g.Completed {
		fmt.Println("Goal completed!")
	}
	return nil
}

type GoalMinusCmd struct {
	Name string `arg:"" help:"Goal name."`
}

func (c *GoalMinusCmd) Run(ctx *cli.Context) error {
	if err := ctx.Goals.MinusProgress(c.Name); err != nil {
		return err
	}
	g, _ := ctx.Goals.Get(c.Name)
	fmt.Printf("Goal progress: %s %s\n", g.Name, g.ProgressString())
	return nil
}
