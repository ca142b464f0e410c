package models

import (
	"testing"
	"time"
)

func TestRecordCompletion(t *testing.T) {
	g := Goal{Name: "Run", Frequency: 2}

	g.RecordCompletion()
	if g.Completed || g.CurrentProgress != 1 {
		t.Errorf("after one completion: progress=%d completed=%v", g.CurrentProgress, g.Completed)
	}

	g.RecordCompletion()
	if !g.Completed || g.CompletedAt == nil {
		t.Error("goal not marked completed at frequency")
	}

	// Further calls are no-ops; CompletedAt is never overwritten.
	stamp := *g.CompletedAt
	g.RecordCompletion()
	if g.CurrentProgress != 2 {
		t.Errorf("progress advanced past frequency: %d", g.CurrentProgress)
	}
	if !g.CompletedAt.Equal(stamp) {
		t.Error("CompletedAt was overwritten")
	}
}

func TestMinusProgress(t *testing.T) {
	t.Run("clamps at zero", func(t *testing.T) {
		g := Goal{Name: "Run", Frequency: 2}
		g.MinusProgress()
		if g.CurrentProgress != 0 {
			t.Errorf("progress = %d, want 0", g.CurrentProgress)
		}
	})

	t.Run("un-completes below frequency", func(t *testing.T) {
		now := time.Now()
		g := Goal{Name: "Run", Frequency: 2, CurrentProgress: 2, Completed: true, CompletedAt: &now}

		g.MinusProgress()
		if g.Completed {
			t.Error("goal still completed below frequency")
		}
		if g.CompletedAt != nil {
			t.Error("CompletedAt not cleared")
		}
	})
}

func TestForceComplete(t *testing.T) {
	g := Goal{Name: "Run", Frequency: 5}

	g.ForceComplete(true)
	if !g.Completed || g.CompletedAt == nil {
		t.Error("force on did not complete the goal")
	}

	g.ForceComplete(false)
	if g.Completed || g.CompletedAt != nil {
		t.Error("force off did not clear the completed state")
	}
}

func TestAvailable(t *testing.T) {
	g := Goal{Name: "Run", Frequency: 1, BeginDate: "2026-08-10", DueDate: "2026-08-20"}

	cases := []struct {
		today string
		want  bool
	}{
		{"2026-08-09", false},
		{"2026-08-10", true},
		{"2026-08-15", true},
		{"2026-08-20", true},
		{"2026-08-21", false},
	}
	for _, tc := range cases {
		if got := g.Available(tc.today); got != tc.want {
			t.Errorf("Available(%s) = %v, want %v", tc.today, got, tc.want)
		}
	}

	g.Completed = true
	if g.Available("2026-08-15") {
		t.Error("completed goal must not be available")
	}
}

func TestProgressString(t *testing.T) {
	g := Goal{CurrentProgress: 2, Frequency: 5}
	if got := g.ProgressString(); got != "2/5" {
		t.Errorf("ProgressString() = %q, want 2/5", got)
	}
}

func TestTaskOverdue(t *testing.T) {
	task := Task{Name: "Write report", DueDate: "2026-08-28"}
	if !task.Overdue("2026-08-29") {
		t.Error("task past its due date must be overdue")
	}
	if task.Overdue("2026-08-28") {
		t.Error("task due today is not overdue")
	}

	task.Completed = true
	if task.Overdue("2026-08-29") {
		t.Error("completed task must not be overdue")
	}

	if (Task{Name: "No due"}).Overdue("2026-08-29") {
		t.Error("task without a due date must not be overdue")
	}
}
