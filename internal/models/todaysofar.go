package models

// CompletedItemType distinguishes the origin of a completed item in the
// Today So Far rollup.
type CompletedItemType string

const (
	CompletedItemTask  CompletedItemType = "Task"
	CompletedItemEvent CompletedItemType = "Event"
)

// GoalSummary is one row of the goal section of the rollup.
type GoalSummary struct {
	Name     string // display name, resolved from the target task when possible
	Period   string // "Weekly", "Monthly", or a formatted date range
	Progress string // "current/frequency"
}

// CompletedItem is a task or event completed today, with its category name
// resolved for display ("-" when uncategorized).
type CompletedItem struct {
	Type     CompletedItemType
	Name     string
	Category string
}

// WellnessSummary is one wellness entry rendered for display.
type WellnessSummary struct {
	Mood    string
	Stress  int
	Energy  int
	Fatigue int
	Time    string // HH:MM format
}

// TodaySoFar is the immutable snapshot produced by the aggregator. It is
// rebuilt from scratch on every refresh and never mutated after assembly.
type TodaySoFar struct {
	Goals           []GoalSummary
	CompletedItems  []CompletedItem
	CompletionRate  int // 0-100
	WellnessEntries []WellnessSummary
}
