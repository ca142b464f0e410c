package sqlite

import (
	"fmt"
	"time"

	"github.com/lininnin/mindtrack/internal/models"
)

func (s *Store) AddWellnessEntry(entry models.WellnessEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO wellness_entries (id, mood, stress, energy, fatigue, time)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, string(entry.Mood), entry.Stress, entry.Energy, entry.Fatigue,
		entry.Time.Format(time.RFC3339),
	)
	return err
}

func (s *Store) WellnessEntriesOn(date string) ([]models.WellnessEntry, error) {
	return s.queryWellness(`
		SELECT id, mood, stress, energy, fatigue, time FROM wellness_entries
		WHERE substr(time, 1, 10) = ? ORDER BY time`, date)
}

func (s *Store) GetAllWellnessEntries() ([]models.WellnessEntry, error) {
	return s.queryWellness(`
		SELECT id, mood, stress, energy, fatigue, time FROM wellness_entries ORDER BY time`)
}

func (s *Store) queryWellness(query string, args ...interface{}) ([]models.WellnessEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.WellnessEntry
	for rows.Next() {
		var e models.WellnessEntry
		var mood, ts string
		if err := rows.Scan(&e.ID, &mood, &e.Stress, &e.Energy, &e.Fatigue, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan wellness entry: %w", err)
		}
		e.Mood = models.MoodLabel(mood)
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			e.Time = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
