package models

// DailyLog is the persisted rollup for one calendar date. Past dates are
// immutable once written; today's entry is recomputed on every relevant
// mutation and re-saved.
type DailyLog struct {
	Date                 string `json:"date"` // YYYY-MM-DD format, duplicates the map key
	TasksScheduledCount  int    `json:"tasks_scheduled_count"`
	TasksCompletedCount  int    `json:"tasks_completed_count"`
	EventsCount          int    `json:"events_count"`
	WellnessEntriesCount int    `json:"wellness_entries_count"`
}
