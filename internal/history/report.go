// Package history renders plain-text reports over the stores and the daily
// log file. The report is append-friendly text rather than structured
// output; it is what "history export" writes and what the daily log is
// summarized from.
package history

import (
	"fmt"
	"io"
	"strings"

	"github.com/lininnin/mindtrack/internal/aggregator"
	"github.com/lininnin/mindtrack/internal/constants"
	"github.com/lininnin/mindtrack/internal/models"
)

// Sources collects everything a report draws on. TaskLister extends the
// aggregator's task surface with the scheduled list that the report (and
// the daily log rollup) needs.
type TaskLister interface {
	aggregator.TaskSource
	TasksScheduledToday() ([]models.Task, error)
}

type Builder struct {
	Tasks      TaskLister
	Events     aggregator.EventSource
	Wellness   aggregator.WellnessSource
	Goals      aggregator.GoalSource
	Categories aggregator.CategoryResolver
}

// WriteReport renders the report for the given date. Sections with no
// content are omitted entirely, headers included.
func (b *Builder) WriteReport(w io.Writer, date string) error {
	fmt.Fprintf(w, "%s\n%s\n\n", constants.ReportHeader, date)

	if err := b.writeTasks(w, date); err != nil {
		return fmt.Errorf("failed to build history report: %w", err)
	}
	if err := b.writeEvents(w, date); err != nil {
		return fmt.Errorf("failed to build history report: %w", err)
	}
	b.writeGoals(w)
	if err := b.writeWellness(w, date); err != nil {
		return fmt.Errorf("failed to build history report: %w", err)
	}
	return nil
}

func (b *Builder) writeTasks(w io.Writer, date string) error {
	scheduled, err := b.Tasks.TasksScheduledToday()
	if err != nil {
		return err
	}
	completed, err := b.Tasks.TasksCompletedOn(date)
	if err != nil {
		return err
	}
	if len(scheduled) == 0 && len(completed) == 0 {
		return nil
	}

	fmt.Fprintln(w, constants.ReportTasksHeader)
	done := make(map[string]bool, len(completed))
	for _, t := range completed {
		done[t.ID] = true
	}
	for _, t := range scheduled {
		fmt.Fprintf(w, "%s %s (%s)\n", checkbox(done[t.ID] || t.Completed), t.Name, b.Categories.NameByID(t.CategoryID))
	}
	for _, t := range completed {
		if !containsTask(scheduled, t.ID) {
			fmt.Fprintf(w, "%s %s (%s)\n", checkbox(true), t.Name, b.Categories.NameByID(t.CategoryID))
		}
	}

	rate, err := b.Tasks.CompletionRateToday()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Completion rate: %d%%\n\n", rate)
	return nil
}

func (b *Builder) writeEvents(w io.Writer, date string) error {
	events, err := b.Events.EventsCompletedOn(date)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	fmt.Fprintln(w, constants.ReportEventsHeader)
	for _, e := range events {
		fmt.Fprintf(w, "%s (%s)", e.Name, b.Categories.NameByID(e.CategoryID))
		if e.StartTime != "" {
			fmt.Fprintf(w, " %s", e.StartTime)
			if e.EndTime != "" {
				fmt.Fprintf(w, "-%s", e.EndTime)
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
	return nil
}

func (b *Builder) writeGoals(w io.Writer) {
	goals := b.Goals.TodayGoals()
	if len(goals) == 0 {
		return
	}

	fmt.Fprintln(w, constants.ReportGoalsHeader)
	for _, g := range goals {
		fmt.Fprintf(w, "%s [%s] %s\n", g.Name, aggregator.PeriodLabel(*g), g.ProgressString())
	}
	fmt.Fprintln(w)
}

func (b *Builder) writeWellness(w io.Writer, date string) error {
	entries, err := b.Wellness.WellnessEntriesOn(date)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	fmt.Fprintln(w, constants.ReportWellnessHeader)
	for _, e := range entries {
		fmt.Fprintf(w, "%s mood=%s stress=%d energy=%d fatigue=%d\n",
			e.Time.Format(constants.TimeFormat), e.Mood, e.Stress, e.Energy, e.Fatigue)
	}
	fmt.Fprintln(w)
	return nil
}

// WriteLogs prints daily-log documents, one block per date.
func WriteLogs(w io.Writer, logs []models.DailyLog) {
	for i, l := range logs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n%s\n", l.Date, strings.Repeat("-", len(l.Date)))
		fmt.Fprintf(w, "Tasks scheduled:  %d\n", l.TasksScheduledCount)
		fmt.Fprintf(w, "Tasks completed:  %d\n", l.TasksCompletedCount)
		fmt.Fprintf(w, "Events:           %d\n", l.EventsCount)
		fmt.Fprintf(w, "Wellness entries: %d\n", l.WellnessEntriesCount)
	}
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func containsTask(tasks []models.Task, id string) bool {
	for _, t := range tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}
