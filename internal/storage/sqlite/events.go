package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lininnin/mindtrack/internal/models"
)

const eventColumns = `id, name, category_id, date, start_time, end_time, completed, completed_at, created_at`

func (s *Store) AddEvent(event models.Event) error {
	return s.UpdateEvent(event)
}

func (s *Store) UpdateEvent(event models.Event) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.Name, event.CategoryID, event.Date,
		event.StartTime, event.EndTime, event.Completed,
		timeToNull(event.CompletedAt), event.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *Store) GetAllEvents() ([]models.Event, error) {
	return s.queryEvents(`SELECT ` + eventColumns + ` FROM events ORDER BY date, start_time`)
}

func (s *Store) EventsOn(date string) ([]models.Event, error) {
	return s.queryEvents(`SELECT `+eventColumns+` FROM events WHERE date = ? ORDER BY start_time`, date)
}

func (s *Store) EventsCompletedOn(date string) ([]models.Event, error) {
	return s.queryEvents(`SELECT `+eventColumns+` FROM events
		WHERE completed = 1 AND substr(completed_at, 1, 10) = ? ORDER BY completed_at`, date)
}

func (s *Store) queryEvents(query string, args ...interface{}) ([]models.Event, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		var completedAt sql.NullString
		var createdAt string

		err := rows.Scan(
			&e.ID, &e.Name, &e.CategoryID, &e.Date,
			&e.StartTime, &e.EndTime, &e.Completed, &completedAt, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		e.CompletedAt = nullToTime(completedAt)
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			e.CreatedAt = ts
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
