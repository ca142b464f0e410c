package cli

import (
	"fmt"
	"strings"

	"github.com/lininnin/mindtrack/internal/aggregator"
	"github.com/lininnin/mindtrack/internal/cascade"
	"github.com/lininnin/mindtrack/internal/category"
	"github.com/lininnin/mindtrack/internal/config"
	"github.com/lininnin/mindtrack/internal/dailylog"
	"github.com/lininnin/mindtrack/internal/goals"
	"github.com/lininnin/mindtrack/internal/history"
	"github.com/lininnin/mindtrack/internal/models"
	"github.com/lininnin/mindtrack/internal/storage"
)

// Context carries the wired application services into every command.
type Context struct {
	Cfg   config.Config
	Store storage.Provider

	Categories *category.Directory
	Goals      *goals.Repository
	Logs       *dailylog.Repository
	Aggregator *aggregator.Aggregator
	Cascade    *cascade.Coordinator
	Report     *history.Builder
}

// Bootstrap wires the repositories and services on top of a loaded store.
// Called from main for every command except init, which has no loaded
// store to build on.
func (c *Context) Bootstrap() error {
	goalRepo, err := goals.NewRepository(c.Cfg.GoalsPath(), c.Cfg.CurrentGoalsPath(), c.Cfg.TodayGoalsPath())
	if err != nil {
		return err
	}
	c.Goals = goalRepo
	c.Logs = dailylog.NewRepository(c.Cfg.DailyLogPath())

	c.Categories = category.New()
	if err := c.syncCategories(); err != nil {
		return err
	}

	c.Aggregator = aggregator.New(c.Store, c.Store, c.Store, c.Goals, c.Categories)
	c.Cascade = cascade.NewCoordinator(c.Store)
	c.Report = &history.Builder{
		Tasks:      c.Store,
		Events:     c.Store,
		Wellness:   c.Store,
		Goals:      c.Goals,
		Categories: c.Categories,
	}
	return nil
}

// syncCategories loads the category rows into the directory and writes
// back any default category the store does not have yet.
func (c *Context) syncCategories() error {
	cats, err := c.Store.GetAllCategories()
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	c.Categories.Reload(cats)

	stored := make(map[string]bool, len(cats))
	for _, cat := range cats {
		stored[cat.ID] = true
	}
	for _, cat := range c.Categories.All() {
		if !stored[cat.ID] {
			if err := c.Store.SaveCategory(cat); err != nil {
				return fmt.Errorf("failed to save default category %s: %w", cat.Name, err)
			}
		}
	}
	return nil
}

// ResolveCategoryID maps a category name flag to its id. An empty name
// means uncategorized.
func (c *Context) ResolveCategoryID(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", nil
	}
	cat, ok := c.Categories.GetByName(name)
	if !ok {
		return "", fmt.Errorf("unknown category %q (see 'mindtrack category list')", name)
	}
	return cat.ID, nil
}

// RecordGoalProgress bumps every goal targeting the given task. Returns
// the names of the goals that advanced.
func (c *Context) RecordGoalProgress(taskID string) ([]string, error) {
	var advanced []string
	for _, g := range c.Goals.All() {
		if g.TargetTaskID != taskID || g.Completed {
			continue
		}
		if err := c.Goals.RecordCompletion(g.Name); err != nil {
			return advanced, err
		}
		advanced = append(advanced, g.Name)
	}
	return advanced, nil
}

// FormatSnapshot renders a Today So Far snapshot as plain text for the
// non-TUI commands.
func FormatSnapshot(s models.TodaySoFar) string {
	var b strings.Builder

	b.WriteString("Today So Far\n")
	b.WriteString("============\n\n")

	b.WriteString("Goals:\n")
	if len(s.Goals) == 0 {
		b.WriteString("  (none selected for today)\n")
	}
	for _, g := range s.Goals {
		fmt.Fprintf(&b, "  %s [%s] %s\n", g.Name, g.Period, g.Progress)
	}

	b.WriteString("\nCompleted:\n")
	if len(s.CompletedItems) == 0 {
		b.WriteString("  (nothing completed yet)\n")
	}
	for _, item := range s.CompletedItems {
		fmt.Fprintf(&b, "  [%s] %s (%s)\n", item.Type, item.Name, item.Category)
	}
	fmt.Fprintf(&b, "\nTask completion rate: %d%%\n", s.CompletionRate)

	b.WriteString("\nWellness:\n")
	if len(s.WellnessEntries) == 0 {
		b.WriteString("  (no entries logged today)\n")
	}
	for _, w := range s.WellnessEntries {
		fmt.Fprintf(&b, "  %s mood=%s stress=%d energy=%d fatigue=%d\n",
			w.Time, w.Mood, w.Stress, w.Energy, w.Fatigue)
	}

	return b.String()
}
