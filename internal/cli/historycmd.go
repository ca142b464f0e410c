package cli

import (
	"fmt"
	"os"

	"github.com/lininnin/mindtrack/internal/history"
	"github.com/lininnin/mindtrack/internal/utils"
)

// HistoryExportCmd writes the plain-text report for a date to stdout or a
// file.
type HistoryExportCmd struct {
	Date string `short:"d" help:"Report date (YYYY-MM-DD or 'today')." default:"today"`
	Out  string `short:"o" help:"Output file path. Writes to stdout when omitted."`
}

func (c *HistoryExportCmd) Run(ctx *Context) error {
	date, err := utils.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	if c.Out == "" {
		return ctx.Report.WriteReport(os.Stdout, date)
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := ctx.Report.WriteReport(f, date); err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", c.Out)
	return nil
}

// HistoryShowCmd prints the daily log documents in a date range.
type HistoryShowCmd struct {
	From string `short:"f" help:"Range start (YYYY-MM-DD). Defaults to 7 days ago."`
	To   string `short:"t" help:"Range end (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *HistoryShowCmd) Run(ctx *Context) error {
	to, err := utils.ResolveDate(c.To)
	if err != nil {
		return err
	}

	from := c.From
	if from == "" {
		from, err = utils.AddDays(to, -7)
		if err != nil {
			return err
		}
	} else if !utils.ValidDate(from) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", from)
	}

	logs, err := ctx.Logs.LoadBetween(from, to)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Printf("No daily logs between %s and %s.\n", from, to)
		return nil
	}
	history.WriteLogs(os.Stdout, logs)
	return nil
}
