package models

import (
	"fmt"
	"time"
)

// TimePeriod is the cadence a goal's frequency applies to.
type TimePeriod string

const (
	PeriodWeek  TimePeriod = "WEEK"
	PeriodMonth TimePeriod = "MONTH"
)

// Goal tracks repeated completions of a target task toward a frequency
// within a date range.
//
// Invariants:
//   - CurrentProgress is never negative; MinusProgress clamps at zero.
//   - Completed is true iff CurrentProgress >= Frequency or it was forced
//     via ForceComplete. CompletedAt is set exactly once on the false→true
//     transition and cleared when completion is forced back off.
type Goal struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	TargetTaskID    string     `json:"target_task_id,omitempty"`
	Frequency       int        `json:"frequency"`
	CurrentProgress int        `json:"current_progress"`
	BeginDate       string     `json:"begin_date"` // YYYY-MM-DD format
	DueDate         string     `json:"due_date"`   // YYYY-MM-DD format
	TimePeriod      TimePeriod `json:"time_period"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// RecordCompletion increments progress by one. Once the goal is completed
// further calls are no-ops, so CompletedAt is never overwritten.
func (g *Goal) RecordCompletion() {
	if g.Completed {
		return
	}
	g.CurrentProgress++
	if g.CurrentProgress >= g.Frequency {
		g.markCompleted()
	}
}

// MinusProgress decrements progress by one, clamping at zero. Decrementing
// below the frequency un-completes the goal.
func (g *Goal) MinusProgress() {
	if g.CurrentProgress > 0 {
		g.CurrentProgress--
	}
	if g.Completed && g.CurrentProgress < g.Frequency {
		g.Completed = false
		g.CompletedAt = nil
	}
}

// SetProgress sets progress to an absolute value (clamped at zero) and
// recomputes the completed flag.
func (g *Goal) SetProgress(progress int) {
	if progress < 0 {
		progress = 0
	}
	g.CurrentProgress = progress
	if g.CurrentProgress >= g.Frequency {
		if !g.Completed {
			g.markCompleted()
		}
	} else if g.Completed {
		g.Completed = false
		g.CompletedAt = nil
	}
}

// ForceComplete overrides the computed completed state. Forcing off clears
// CompletedAt; forcing on stamps it if not already set.
func (g *Goal) ForceComplete(completed bool) {
	if completed && !g.Completed {
		g.markCompleted()
		return
	}
	if !completed {
		g.Completed = false
		g.CompletedAt = nil
	}
}

func (g *Goal) markCompleted() {
	g.Completed = true
	if g.CompletedAt == nil {
		now := time.Now()
		g.CompletedAt = &now
	}
}

// Available reports whether the goal can still accrue progress on the given
// day: today falls within [BeginDate, DueDate] inclusive and the goal is
// not completed. today is a YYYY-MM-DD date string.
func (g Goal) Available(today string) bool {
	if g.Completed {
		return false
	}
	return g.BeginDate <= today && today <= g.DueDate
}

// ProgressString renders progress as "current/frequency".
func (g Goal) ProgressString() string {
	return fmt.Sprintf("%d/%d", g.CurrentProgress, g.Frequency)
}
