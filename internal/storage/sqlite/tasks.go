package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lininnin/mindtrack/internal/models"
)

const taskColumns = `id, name, description, category_id, completed, completed_at, due_date, scheduled_for_today, created_at`

func (s *Store) AddTask(task models.Task) error {
	return s.UpdateTask(task)
}

func (s *Store) UpdateTask(task models.Task) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Name, task.Description, task.CategoryID,
		task.Completed, timeToNull(task.CompletedAt), task.DueDate,
		task.ScheduledForToday, task.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

func (s *Store) GetTaskByName(name string) (models.Task, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE name = ? ORDER BY created_at LIMIT 1`, name)
	return scanTask(row)
}

func (s *Store) GetAllTasks() ([]models.Task, error) {
	return s.queryTasks(`SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at`)
}

func (s *Store) TasksScheduledToday() ([]models.Task, error) {
	return s.queryTasks(`SELECT ` + taskColumns + ` FROM tasks WHERE scheduled_for_today = 1 ORDER BY created_at`)
}

// TasksCompletedOn returns tasks whose completion timestamp falls on the
// given date, regardless of the scheduled-for-today flag.
func (s *Store) TasksCompletedOn(date string) ([]models.Task, error) {
	return s.queryTasks(`SELECT `+taskColumns+` FROM tasks
		WHERE completed = 1 AND substr(completed_at, 1, 10) = ? ORDER BY completed_at`, date)
}

// CompletionRateToday returns the percentage (0-100) of today's scheduled
// tasks that are completed. No scheduled tasks means a rate of zero.
func (s *Store) CompletionRateToday() (int, error) {
	var scheduled, completed int
	err := s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(completed), 0)
		FROM tasks WHERE scheduled_for_today = 1`).Scan(&scheduled, &completed)
	if err != nil {
		return 0, fmt.Errorf("failed to compute completion rate: %w", err)
	}
	if scheduled == 0 {
		return 0, nil
	}
	return completed * 100 / scheduled, nil
}

func (s *Store) DeleteTask(id string) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task not found: %s", id)
	}
	return nil
}

func (s *Store) queryTasks(query string, args ...interface{}) ([]models.Task, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	var completedAt sql.NullString
	var createdAt string

	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.CategoryID,
		&t.Completed, &completedAt, &t.DueDate, &t.ScheduledForToday, &createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, fmt.Errorf("task not found")
		}
		return models.Task{}, err
	}

	t.CompletedAt = nullToTime(completedAt)
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		t.CreatedAt = ts
	}
	return t, nil
}

func timeToNull(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
}

func nullToTime(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, ns.String)
	if err != nil {
		return nil
	}
	return &t
}
