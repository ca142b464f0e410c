package aggregator

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/lininnin/mindtrack/internal/models"
)

type fakeTasks struct {
	completed []models.Task
	rate      int
	byID      map[string]models.Task
	err       error
}

func (f *fakeTasks) TasksCompletedOn(date string) ([]models.Task, error) {
	return f.completed, f.err
}

func (f *fakeTasks) CompletionRateToday() (int, error) {
	return f.rate, f.err
}

func (f *fakeTasks) GetTask(id string) (models.Task, error) {
	t, ok := f.byID[id]
	if !ok {
		return models.Task{}, errors.New("task not found")
	}
	return t, nil
}

type fakeEvents struct {
	completed []models.Event
	err       error
}

func (f *fakeEvents) EventsCompletedOn(date string) ([]models.Event, error) {
	return f.completed, f.err
}

type fakeWellness struct {
	entries []models.WellnessEntry
	err     error
}

func (f *fakeWellness) WellnessEntriesOn(date string) ([]models.WellnessEntry, error) {
	return f.entries, f.err
}

type fakeGoals struct {
	goals []*models.Goal
}

func (f *fakeGoals) TodayGoals() []*models.Goal { return f.goals }

type fakeCategories map[string]string

func (f fakeCategories) NameByID(id string) string {
	if name, ok := f[id]; ok {
		return name
	}
	return "-"
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
}

func newTestAggregator(tasks *fakeTasks, events *fakeEvents, well *fakeWellness, goals *fakeGoals) *Aggregator {
	a := New(tasks, events, well, goals, fakeCategories{"cat-1": "Work"})
	a.Now = fixedNow
	return a
}

func TestRefresh_Snapshot(t *testing.T) {
	goal := &models.Goal{Name: "Exercise", Frequency: 3, CurrentProgress: 1, TimePeriod: models.PeriodWeek}
	tasks := &fakeTasks{
		completed: []models.Task{{ID: "t1", Name: "Write report", CategoryID: "cat-1"}},
		rate:      50,
	}
	events := &fakeEvents{completed: []models.Event{{ID: "e1", Name: "Standup"}}}
	well := &fakeWellness{entries: []models.WellnessEntry{{
		Mood: models.MoodCalm, Stress: 3, Energy: 7, Fatigue: 2,
		Time: time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
	}}}

	a := newTestAggregator(tasks, events, well, &fakeGoals{goals: []*models.Goal{goal}})

	s, err := a.Refresh()
	if err != nil {
		t.Fatalf("Refresh() returned error: %v", err)
	}

	if len(s.Goals) != 1 {
		t.Fatalf("snapshot has %d goals, want 1", len(s.Goals))
	}
	g := s.Goals[0]
	if g.Name != "Exercise" || g.Period != "Weekly" || g.Progress != "1/3" {
		t.Errorf("goal row = %+v, want Exercise/Weekly/1-of-3", g)
	}

	if len(s.CompletedItems) != 2 {
		t.Fatalf("snapshot has %d completed items, want 2", len(s.CompletedItems))
	}
	if s.CompletedItems[0].Type != models.CompletedItemTask || s.CompletedItems[0].Category != "Work" {
		t.Errorf("task item = %+v", s.CompletedItems[0])
	}
	if s.CompletedItems[1].Type != models.CompletedItemEvent || s.CompletedItems[1].Category != "-" {
		t.Errorf("event item = %+v, want uncategorized label", s.CompletedItems[1])
	}

	if s.CompletionRate != 50 {
		t.Errorf("completion rate = %d, want 50", s.CompletionRate)
	}

	if len(s.WellnessEntries) != 1 {
		t.Fatalf("snapshot has %d wellness entries, want 1", len(s.WellnessEntries))
	}
	if s.WellnessEntries[0].Time != "09:00" {
		t.Errorf("wellness time = %q, want 09:00", s.WellnessEntries[0].Time)
	}
}

func TestRefresh_Deterministic(t *testing.T) {
	goal := &models.Goal{Name: "Exercise", Frequency: 3, CurrentProgress: 1, TimePeriod: models.PeriodWeek}
	tasks := &fakeTasks{
		completed: []models.Task{{ID: "t1", Name: "Write report", CategoryID: "cat-1"}},
		rate:      50,
	}
	well := &fakeWellness{entries: []models.WellnessEntry{{
		Mood: models.MoodCalm, Stress: 3, Energy: 7, Fatigue: 2,
		Time: time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
	}}}
	a := newTestAggregator(tasks, &fakeEvents{}, well, &fakeGoals{goals: []*models.Goal{goal}})

	first, err := a.Refresh()
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Refresh()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two refreshes without mutation differ:\n%+v\n%+v", first, second)
	}
}

func TestRefresh_AllOrNothing(t *testing.T) {
	boom := errors.New("store down")

	cases := []struct {
		name string
		agg  *Aggregator
	}{
		{"task source fails", newTestAggregator(&fakeTasks{err: boom}, &fakeEvents{}, &fakeWellness{}, &fakeGoals{})},
		{"event source fails", newTestAggregator(&fakeTasks{}, &fakeEvents{err: boom}, &fakeWellness{}, &fakeGoals{})},
		{"wellness source fails", newTestAggregator(&fakeTasks{}, &fakeEvents{}, &fakeWellness{err: boom}, &fakeGoals{})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.agg.Refresh()
			if err == nil {
				t.Fatal("Refresh() succeeded, want error")
			}
			if len(s.Goals) != 0 || len(s.CompletedItems) != 0 || len(s.WellnessEntries) != 0 {
				t.Errorf("partial snapshot returned alongside error: %+v", s)
			}
		})
	}
}

func TestRefresh_GoalDisplayName(t *testing.T) {
	t.Run("resolves target task name", func(t *testing.T) {
		goal := &models.Goal{Name: "Goal label", TargetTaskID: "t9", Frequency: 1}
		tasks := &fakeTasks{byID: map[string]models.Task{"t9": {ID: "t9", Name: "Morning run"}}}
		a := newTestAggregator(tasks, &fakeEvents{}, &fakeWellness{}, &fakeGoals{goals: []*models.Goal{goal}})

		s, err := a.Refresh()
		if err != nil {
			t.Fatal(err)
		}
		if s.Goals[0].Name != "Morning run" {
			t.Errorf("goal name = %q, want target task name", s.Goals[0].Name)
		}
	})

	t.Run("falls back to goal name", func(t *testing.T) {
		goal := &models.Goal{Name: "Goal label", TargetTaskID: "gone", Frequency: 1}
		a := newTestAggregator(&fakeTasks{}, &fakeEvents{}, &fakeWellness{}, &fakeGoals{goals: []*models.Goal{goal}})

		s, err := a.Refresh()
		if err != nil {
			t.Fatal(err)
		}
		if s.Goals[0].Name != "Goal label" {
			t.Errorf("goal name = %q, want fallback to goal's own name", s.Goals[0].Name)
		}
	})
}

func TestRefresh_WellnessTimeDefaultsToNow(t *testing.T) {
	well := &fakeWellness{entries: []models.WellnessEntry{{Mood: models.MoodNeutral, Stress: 5, Energy: 5, Fatigue: 5}}}
	a := newTestAggregator(&fakeTasks{}, &fakeEvents{}, well, &fakeGoals{})

	s, err := a.Refresh()
	if err != nil {
		t.Fatal(err)
	}
	if s.WellnessEntries[0].Time != "14:30" {
		t.Errorf("zero-time entry rendered %q, want the current time 14:30", s.WellnessEntries[0].Time)
	}
}

func TestPeriodLabel(t *testing.T) {
	cases := []struct {
		name string
		goal models.Goal
		want string
	}{
		{"weekly", models.Goal{TimePeriod: models.PeriodWeek}, "Weekly"},
		{"monthly", models.Goal{TimePeriod: models.PeriodMonth}, "Monthly"},
		{"range fallback", models.Goal{BeginDate: "2026-08-01", DueDate: "2026-08-31"}, "Aug 01 - Aug 31"},
		{"unparseable dates", models.Goal{BeginDate: "bad", DueDate: "worse"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PeriodLabel(tc.goal); got != tc.want {
				t.Errorf("PeriodLabel() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDailyLogFor(t *testing.T) {
	tasks := &fakeTasks{completed: []models.Task{{ID: "t1"}, {ID: "t2"}}}
	events := &fakeEvents{completed: []models.Event{{ID: "e1"}}}
	well := &fakeWellness{entries: []models.WellnessEntry{{ID: "w1"}}}
	a := newTestAggregator(tasks, events, well, &fakeGoals{})

	scheduled := []models.Task{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}}
	log, err := a.DailyLogFor("2026-08-29", scheduled)
	if err != nil {
		t.Fatalf("DailyLogFor() returned error: %v", err)
	}

	if log.Date != "2026-08-29" {
		t.Errorf("date = %q", log.Date)
	}
	if log.TasksScheduledCount != 3 || log.TasksCompletedCount != 2 ||
		log.EventsCount != 1 || log.WellnessEntriesCount != 1 {
		t.Errorf("counts = %+v, want 3/2/1/1", log)
	}
}
