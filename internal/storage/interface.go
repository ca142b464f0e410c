package storage

import "github.com/lininnin/mindtrack/internal/models"

// Provider is the contract for the task/event/wellness/category stores.
// All date arguments are YYYY-MM-DD strings. Read methods return snapshots;
// mutating a returned value has no effect until it is written back.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Tasks
	AddTask(models.Task) error
	UpdateTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetTaskByName(name string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	TasksScheduledToday() ([]models.Task, error)
	TasksCompletedOn(date string) ([]models.Task, error)
	CompletionRateToday() (int, error)
	DeleteTask(id string) error

	// Events
	AddEvent(models.Event) error
	UpdateEvent(models.Event) error
	GetAllEvents() ([]models.Event, error)
	EventsOn(date string) ([]models.Event, error)
	EventsCompletedOn(date string) ([]models.Event, error)

	// Wellness
	AddWellnessEntry(models.WellnessEntry) error
	WellnessEntriesOn(date string) ([]models.WellnessEntry, error)
	GetAllWellnessEntries() ([]models.WellnessEntry, error)

	// Categories
	SaveCategory(models.Category) error
	GetAllCategories() ([]models.Category, error)
	DeleteCategory(id string) error
	// ClearCategoryRefs blanks the category reference on every task and
	// event pointing at the given category id, returning the number of
	// records rewritten.
	ClearCategoryRefs(categoryID string) (int, error)

	// Utils
	GetConfigPath() string
}
