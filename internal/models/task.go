package models

import "time"

// Task is a one-off item of work, optionally categorized and optionally
// scheduled onto today's list.
type Task struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description,omitempty"`
	CategoryID        string     `json:"category_id,omitempty"`
	Completed         bool       `json:"completed"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	DueDate           string     `json:"due_date,omitempty"` // YYYY-MM-DD format
	ScheduledForToday bool       `json:"scheduled_for_today"`
	CreatedAt         time.Time  `json:"created_at"`
}

// Overdue reports whether the task has a due date in the past and is not
// yet completed. today is a YYYY-MM-DD date string.
func (t Task) Overdue(today string) bool {
	return !t.Completed && t.DueDate != "" && t.DueDate < today
}
