package goalcmds

import (
	"fmt"

	"github.com/lininnin/mindtrack/internal/cli"
)

type GoalDeleteCmd struct {
	Name string `arg:"" help:"Goal name."`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	// Deleting an absent goal is a no-op; the membership lists are
	// rewritten either way.
	if err := ctx.Goals.DeleteByName(c.Name); err != nil {
		return err
	}
	fmt.Printf("Deleted goal: %s\n", c.Name)
	return nil
}
