package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "mindtrack"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/mindtrack/mindtrack.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// PeriodRangeFormat formats a goal's begin/due dates when the goal has no
	// named period ("MMM dd")
	PeriodRangeFormat = "Jan 02"

	// UncategorizedLabel is displayed for items whose category reference is
	// empty or no longer resolves
	UncategorizedLabel = "-"

	// Session States
	StateToday SessionState = iota
	StateGoals
	StateWellness
)

// Report section headers for the history export
const (
	ReportHeader         = "=== MindTrack History Report ==="
	ReportTasksHeader    = "=== Today's Tasks ==="
	ReportEventsHeader   = "=== Today's Events ==="
	ReportGoalsHeader    = "=== Goal Progress ==="
	ReportWellnessHeader = "=== Wellness Log ==="
)

// File names for the file-backed repositories, resolved under the data
// directory
const (
	GoalsFileName        = "goals.json"
	CurrentGoalsFileName = "current_goals.json"
	TodayGoalsFileName   = "today_goals.json"
	DailyLogFileName     = "daily_logs.json"
)

// DefaultCategories are re-ensured whenever the category set is reloaded
// from storage, so an accidental total wipe never leaves the app without
// categories.
var DefaultCategories = []string{"Work", "School", "Personal", "Health"}
