// Package categories holds the CLI surface of the category directory.
// Every mutation routes its Change through the cascade coordinator so the
// stores stay in step with the directory.
package categories

import (
	"fmt"

	"github.com/lininnin/mindtrack/internal/cli"
)

type CategoryAddCmd struct {
	Name string `arg:"" help:"Category name."`
}

func (c *CategoryAddCmd) Run(ctx *cli.Context) error {
	change, added, err := ctx.Categories.Add(c.Name)
	if err != nil {
		return err
	}
	if !added {
		fmt.Printf("Category already exists: %s\n", c.Name)
		return nil
	}
	if err := ctx.Cascade.Apply(change); err != nil {
		return err
	}
	fmt.Printf("Added category: %s\n", change.Added.Name)
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *cli.Context) error {
	for _, name := range ctx.Categories.Names() {
		fmt.Println(name)
	}
	return nil
}

type CategoryRenameCmd struct {
	Old string `arg:"" help:"Current category name."`
	New string `arg:"" help:"New category name."`
}

func (c *CategoryRenameCmd) Run(ctx *cli.Context) error {
	change, ok := ctx.Categories.Rename(c.Old, c.New)
	if !ok {
		fmt.Printf("Nothing renamed: %q missing, or %q is blank or taken.\n", c.Old, c.New)
		return nil
	}
	if err := ctx.Cascade.Apply(change); err != nil {
		return err
	}
	fmt.Printf("Renamed category: %s -> %s\n", change.Removed.Name, change.Added.Name)
	return nil
}

type CategoryRemoveCmd struct {
	Name string `arg:"" help:"Category name."`
}

func (c *CategoryRemoveCmd) Run(ctx *cli.Context) error {
	change, ok := ctx.Categories.Remove(c.Name)
	if !ok {
		fmt.Printf("No category named %q.\n", c.Name)
		return nil
	}
	if err := ctx.Cascade.Apply(change); err != nil {
		return err
	}
	fmt.Printf("Removed category: %s (references cleared)\n", change.Removed.Name)
	return nil
}
