package wellness

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lininnin/mindtrack/internal/cli"
	"github.com/lininnin/mindtrack/internal/constants"
	"github.com/lininnin/mindtrack/internal/models"
	"github.com/lininnin/mindtrack/internal/utils"
)

type ListCmd struct {
	Date string `short:"d" help:"Only entries on this date (YYYY-MM-DD or 'today')."`
	All  bool   `short:"a" help:"List every entry."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	var entries []models.WellnessEntry
	var err error
	if c.All {
		entries, err = ctx.Store.GetAllWellnessEntries()
	} else {
		date, derr := utils.ResolveDate(c.Date)
		if derr != nil {
			return derr
		}
		entries, err = ctx.Store.WellnessEntriesOn(date)
	}
	if err != nil {
		return fmt.Errorf("failed to list wellness entries: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No wellness entries found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tMOOD\tSTRESS\tENERGY\tFATIGUE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n",
			e.Time.Format(constants.DateFormat+" "+constants.TimeFormat),
			e.Mood, e.Stress, e.Energy, e.Fatigue)
	}
	return w.Flush()
}
