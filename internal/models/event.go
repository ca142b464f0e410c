package models

import "time"

// Event is a scheduled occurrence on a specific date. Unlike tasks, events
// carry no due date; completion records that the event actually happened.
type Event struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	CategoryID  string     `json:"category_id,omitempty"`
	Date        string     `json:"date"`                 // YYYY-MM-DD format
	StartTime   string     `json:"start_time,omitempty"` // HH:MM format
	EndTime     string     `json:"end_time,omitempty"`   // HH:MM format
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
