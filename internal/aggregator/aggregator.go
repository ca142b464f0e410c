// Package aggregator builds the Today So Far snapshot: a read-only
// projection over the task, event, wellness and goal stores plus the
// category directory. Refresh is all-or-nothing; a failure in any source
// surfaces as a single error and no partial snapshot is ever returned, so
// the presentation layer can never show a half-consistent rollup.
package aggregator

import (
	"fmt"
	"time"

	"github.com/lininnin/mindtrack/internal/constants"
	"github.com/lininnin/mindtrack/internal/models"
)

// TaskSource is the read-only task store surface the aggregator consumes.
type TaskSource interface {
	TasksCompletedOn(date string) ([]models.Task, error)
	CompletionRateToday() (int, error)
	GetTask(id string) (models.Task, error)
}

// EventSource is the read-only event store surface.
type EventSource interface {
	EventsCompletedOn(date string) ([]models.Event, error)
}

// WellnessSource is the read-only wellness store surface.
type WellnessSource interface {
	WellnessEntriesOn(date string) ([]models.WellnessEntry, error)
}

// GoalSource yields the goals selected for today, resolved through the
// goal repository's master list.
type GoalSource interface {
	TodayGoals() []*models.Goal
}

// CategoryResolver maps category ids to display names, returning the
// uncategorized label for empty or unresolvable ids.
type CategoryResolver interface {
	NameByID(id string) string
}

// Aggregator holds the five read-side sources. It retains no state
// between calls; every Refresh re-derives the snapshot from scratch.
type Aggregator struct {
	Tasks      TaskSource
	Events     EventSource
	Wellness   WellnessSource
	Goals      GoalSource
	Categories CategoryResolver

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func New(tasks TaskSource, events EventSource, wellness WellnessSource, goals GoalSource, categories CategoryResolver) *Aggregator {
	return &Aggregator{
		Tasks:      tasks,
		Events:     events,
		Wellness:   wellness,
		Goals:      goals,
		Categories: categories,
	}
}

func (a *Aggregator) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// Refresh assembles a fresh Today So Far snapshot. Any store failure
// abandons the whole refresh.
func (a *Aggregator) Refresh() (models.TodaySoFar, error) {
	today := a.now().Format(constants.DateFormat)

	goalRows := a.goalSummaries()

	completed, err := a.completedItems(today)
	if err != nil {
		return models.TodaySoFar{}, fmt.Errorf("failed to refresh today so far: %w", err)
	}

	rate, err := a.Tasks.CompletionRateToday()
	if err != nil {
		return models.TodaySoFar{}, fmt.Errorf("failed to refresh today so far: %w", err)
	}

	wellness, err := a.wellnessSummaries(today)
	if err != nil {
		return models.TodaySoFar{}, fmt.Errorf("failed to refresh today so far: %w", err)
	}

	return models.TodaySoFar{
		Goals:           goalRows,
		CompletedItems:  completed,
		CompletionRate:  rate,
		WellnessEntries: wellness,
	}, nil
}

func (a *Aggregator) goalSummaries() []models.GoalSummary {
	goals := a.Goals.TodayGoals()
	rows := make([]models.GoalSummary, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, models.GoalSummary{
			Name:     a.goalDisplayName(g),
			Period:   PeriodLabel(*g),
			Progress: g.ProgressString(),
		})
	}
	return rows
}

// goalDisplayName prefers the target task's name; a goal whose target no
// longer resolves falls back to its own name.
func (a *Aggregator) goalDisplayName(g *models.Goal) string {
	if g.TargetTaskID != "" {
		if task, err := a.Tasks.GetTask(g.TargetTaskID); err == nil && task.Name != "" {
			return task.Name
		}
	}
	return g.Name
}

// PeriodLabel renders a goal's cadence: "Weekly", "Monthly", or the date
// range for goals without a named period.
func PeriodLabel(g models.Goal) string {
	switch g.TimePeriod {
	case models.PeriodWeek:
		return "Weekly"
	case models.PeriodMonth:
		return "Monthly"
	}
	begin, errB := time.Parse(constants.DateFormat, g.BeginDate)
	due, errD := time.Parse(constants.DateFormat, g.DueDate)
	if errB != nil || errD != nil {
		return ""
	}
	return begin.Format(constants.PeriodRangeFormat) + " - " + due.Format(constants.PeriodRangeFormat)
}

func (a *Aggregator) completedItems(today string) ([]models.CompletedItem, error) {
	tasks, err := a.Tasks.TasksCompletedOn(today)
	if err != nil {
		return nil, err
	}
	events, err := a.Events.EventsCompletedOn(today)
	if err != nil {
		return nil, err
	}

	items := make([]models.CompletedItem, 0, len(tasks)+len(events))
	for _, t := range tasks {
		items = append(items, models.CompletedItem{
			Type:     models.CompletedItemTask,
			Name:     t.Name,
			Category: a.Categories.NameByID(t.CategoryID),
		})
	}
	for _, e := range events {
		items = append(items, models.CompletedItem{
			Type:     models.CompletedItemEvent,
			Name:     e.Name,
			Category: a.Categories.NameByID(e.CategoryID),
		})
	}
	return items, nil
}

func (a *Aggregator) wellnessSummaries(today string) ([]models.WellnessSummary, error) {
	entries, err := a.Wellness.WellnessEntriesOn(today)
	if err != nil {
		return nil, err
	}

	rows := make([]models.WellnessSummary, 0, len(entries))
	for _, e := range entries {
		// Entries without an explicit timestamp display as "now". This
		// mirrors the reference behavior; see DESIGN.md.
		t := e.Time
		if t.IsZero() {
			t = a.now()
		}
		rows = append(rows, models.WellnessSummary{
			Mood:    string(e.Mood),
			Stress:  e.Stress,
			Energy:  e.Energy,
			Fatigue: e.Fatigue,
			Time:    t.Format(constants.TimeFormat),
		})
	}
	return rows, nil
}

// DailyLogFor derives the persisted rollup counts for the given date from
// the same sources the snapshot uses.
func (a *Aggregator) DailyLogFor(date string, scheduled []models.Task) (models.DailyLog, error) {
	completedTasks, err := a.Tasks.TasksCompletedOn(date)
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("failed to build daily log: %w", err)
	}
	events, err := a.Events.EventsCompletedOn(date)
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("failed to build daily log: %w", err)
	}
	wellness, err := a.Wellness.WellnessEntriesOn(date)
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("failed to build daily log: %w", err)
	}

	return models.DailyLog{
		Date:                 date,
		TasksScheduledCount:  len(scheduled),
		TasksCompletedCount:  len(completedTasks),
		EventsCount:          len(events),
		WellnessEntriesCount: len(wellness),
	}, nil
}
