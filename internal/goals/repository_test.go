package goals

import (
	"path/filepath"
	"testing"

	"github.com/lininnin/mindtrack/internal/models"
)

func newTestRepo(t *testing.T) (*Repository, string) {
	t.Helper()
	dir := t.TempDir()
	r, err := NewRepository(
		filepath.Join(dir, "goals.json"),
		filepath.Join(dir, "current_goals.json"),
		filepath.Join(dir, "today_goals.json"),
	)
	if err != nil {
		t.Fatalf("NewRepository() returned error: %v", err)
	}
	return r, dir
}

func reopen(t *testing.T, dir string) *Repository {
	t.Helper()
	r, err := NewRepository(
		filepath.Join(dir, "goals.json"),
		filepath.Join(dir, "current_goals.json"),
		filepath.Join(dir, "today_goals.json"),
	)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	return r
}

func testGoal(name string) models.Goal {
	return models.Goal{
		ID:        "id-" + name,
		Name:      name,
		Frequency: 3,
		BeginDate: "2026-08-01",
		DueDate:   "2026-08-31",
	}
}

func TestSaveAndReload(t *testing.T) {
	r, dir := newTestRepo(t)

	if err := r.Save(testGoal("Run")); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	r2 := reopen(t, dir)
	g, ok := r2.Get("Run")
	if !ok {
		t.Fatal("goal missing after reload")
	}
	if g.Frequency != 3 {
		t.Errorf("frequency = %d, want 3", g.Frequency)
	}
}

func TestSave_RejectsInvalid(t *testing.T) {
	r, _ := newTestRepo(t)

	bad := testGoal("Bad")
	bad.BeginDate = "2026-09-01" // after due date
	if err := r.Save(bad); err == nil {
		t.Error("Save() accepted begin date after due date")
	}
	if err := r.Save(models.Goal{Name: " "}); err == nil {
		t.Error("Save() accepted a blank name")
	}
}

func TestMembership(t *testing.T) {
	t.Run("add requires existing goal", func(t *testing.T) {
		r, _ := newTestRepo(t)

		if err := r.AddToToday("Missing"); err == nil {
			t.Error("AddToToday() accepted an unknown goal")
		}
	})

	t.Run("add twice is a no-op", func(t *testing.T) {
		r, _ := newTestRepo(t)
		if err := r.Save(testGoal("Run")); err != nil {
			t.Fatal(err)
		}

		if err := r.AddToToday("Run"); err != nil {
			t.Fatal(err)
		}
		if err := r.AddToToday("Run"); err != nil {
			t.Fatal(err)
		}
		if got := len(r.TodayGoals()); got != 1 {
			t.Errorf("today list has %d entries, want 1", got)
		}
	})

	t.Run("remove non-member is a no-op", func(t *testing.T) {
		r, _ := newTestRepo(t)

		if err := r.RemoveFromToday("Missing"); err != nil {
			t.Errorf("RemoveFromToday() returned error: %v", err)
		}
		if err := r.RemoveFromCurrent("Missing"); err != nil {
			t.Errorf("RemoveFromCurrent() returned error: %v", err)
		}
	})

	t.Run("membership survives reload", func(t *testing.T) {
		r, dir := newTestRepo(t)
		if err := r.Save(testGoal("Run")); err != nil {
			t.Fatal(err)
		}
		if err := r.AddToCurrent("Run"); err != nil {
			t.Fatal(err)
		}
		if err := r.AddToToday("Run"); err != nil {
			t.Fatal(err)
		}

		r2 := reopen(t, dir)
		if got := len(r2.CurrentGoals()); got != 1 {
			t.Errorf("current list has %d entries after reload, want 1", got)
		}
		if got := len(r2.TodayGoals()); got != 1 {
			t.Errorf("today list has %d entries after reload, want 1", got)
		}
	})
}

func TestTodayViewSharesMasterObject(t *testing.T) {
	r, dir := newTestRepo(t)
	if err := r.Save(testGoal("Run")); err != nil {
		t.Fatal(err)
	}
	if err := r.AddToToday("Run"); err != nil {
		t.Fatal(err)
	}

	// Mutating through the today view must be visible through the master
	// list, and persist.
	today := r.TodayGoals()
	today[0].RecordCompletion()
	if err := r.Persist(); err != nil {
		t.Fatal(err)
	}

	g, _ := r.Get("Run")
	if g.CurrentProgress != 1 {
		t.Errorf("master progress = %d, want 1", g.CurrentProgress)
	}

	r2 := reopen(t, dir)
	g2, _ := r2.Get("Run")
	if g2.CurrentProgress != 1 {
		t.Errorf("persisted progress = %d, want 1", g2.CurrentProgress)
	}
}

func TestUpdateTodayGoalProgress(t *testing.T) {
	r, _ := newTestRepo(t)
	if err := r.Save(testGoal("Run")); err != nil {
		t.Fatal(err)
	}

	if err := r.UpdateTodayGoalProgress("Run", 3); err != nil {
		t.Fatal(err)
	}
	g, _ := r.Get("Run")
	if !g.Completed {
		t.Error("goal not completed at frequency")
	}

	if err := r.UpdateTodayGoalProgress("Run", 1); err != nil {
		t.Fatal(err)
	}
	g, _ = r.Get("Run")
	if g.Completed {
		t.Error("goal still completed below frequency")
	}
	if g.CompletedAt != nil {
		t.Error("CompletedAt not cleared when un-completed")
	}

	if err := r.UpdateTodayGoalProgress("Missing", 1); err == nil {
		t.Error("UpdateTodayGoalProgress() accepted an unknown goal")
	}
}

func TestDeleteByName(t *testing.T) {
	r, dir := newTestRepo(t)
	if err := r.Save(testGoal("Run")); err != nil {
		t.Fatal(err)
	}
	if err := r.AddToCurrent("Run"); err != nil {
		t.Fatal(err)
	}
	if err := r.AddToToday("Run"); err != nil {
		t.Fatal(err)
	}

	if err := r.DeleteByName("Run"); err != nil {
		t.Fatalf("DeleteByName() returned error: %v", err)
	}
	if _, ok := r.Get("Run"); ok {
		t.Error("goal still in master after delete")
	}
	if len(r.CurrentGoals()) != 0 || len(r.TodayGoals()) != 0 {
		t.Error("goal still in a membership list after delete")
	}

	// Idempotent.
	if err := r.DeleteByName("Run"); err != nil {
		t.Errorf("second DeleteByName() returned error: %v", err)
	}

	r2 := reopen(t, dir)
	if _, ok := r2.Get("Run"); ok {
		t.Error("delete not persisted")
	}
}

func TestFindAvailable(t *testing.T) {
	r, _ := newTestRepo(t)

	active := testGoal("Active")
	expired := testGoal("Expired")
	expired.DueDate = "2026-08-10"
	done := testGoal("Done")
	done.Completed = true

	for _, g := range []models.Goal{active, expired, done} {
		if err := r.Save(g); err != nil {
			t.Fatal(err)
		}
	}

	got := r.FindAvailable("2026-08-15")
	if len(got) != 1 || got[0].Name != "Active" {
		t.Errorf("FindAvailable() = %v, want only Active", got)
	}

	// Boundary days are inclusive.
	if got := r.FindAvailable("2026-08-31"); len(got) != 1 {
		t.Errorf("due date itself must be available, got %v", got)
	}
	if got := r.FindAvailable("2026-09-01"); len(got) != 0 {
		t.Errorf("day after due date must not be available, got %v", got)
	}
}

func TestFindByTargetRange(t *testing.T) {
	r, _ := newTestRepo(t)

	for name, freq := range map[string]int{"A": 1, "B": 3, "C": 7} {
		g := testGoal(name)
		g.Frequency = freq
		if err := r.Save(g); err != nil {
			t.Fatal(err)
		}
	}

	got := r.FindByTargetRange(2, 7)
	if len(got) != 2 {
		t.Fatalf("FindByTargetRange(2, 7) returned %d goals, want 2", len(got))
	}
}

func TestGoalLifecycle(t *testing.T) {
	r, dir := newTestRepo(t)

	g := testGoal("Read")
	g.Frequency = 5
	if err := r.Save(g); err != nil {
		t.Fatal(err)
	}
	if err := r.AddToToday("Read"); err != nil {
		t.Fatal(err)
	}
	if err := r.UpdateTodayGoalProgress("Read", 5); err != nil {
		t.Fatal(err)
	}

	got, _ := r.Get("Read")
	if !got.Completed || got.CompletedAt == nil {
		t.Errorf("goal at frequency not completed: %+v", got)
	}

	r2 := reopen(t, dir)
	got2, ok := r2.Get("Read")
	if !ok {
		t.Fatal("goal missing after reload")
	}
	if got2.CurrentProgress != 5 || !got2.Completed {
		t.Errorf("reloaded goal = %+v, want progress 5 and completed", got2)
	}
	if len(r2.TodayGoals()) != 1 {
		t.Error("today membership lost across reload")
	}
}

func TestTodayGoal_FirstEntry(t *testing.T) {
	r, _ := newTestRepo(t)
	if _, ok := r.TodayGoal(); ok {
		t.Error("TodayGoal() on empty list must report false")
	}

	for _, name := range []string{"First", "Second"} {
		if err := r.Save(testGoal(name)); err != nil {
			t.Fatal(err)
		}
		if err := r.AddToToday(name); err != nil {
			t.Fatal(err)
		}
	}

	g, ok := r.TodayGoal()
	if !ok || g.Name != "First" {
		t.Errorf("TodayGoal() = %v, want First", g)
	}
}
