// Package dailylog persists one rollup document per calendar date in a
// single JSON file mapping date strings to documents. Every operation is a
// full read of the file, so the repository carries no state between calls
// and a save merges exactly one key into whatever is already on disk.
package dailylog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/lininnin/mindtrack/internal/models"
	"github.com/lininnin/mindtrack/internal/utils"
)

// Repository reads and writes the daily log file. Not safe for concurrent
// use; the later of two interleaved saves wins the whole-file write.
type Repository struct {
	path string
}

// NewRepository returns a repository over the given file. The file does
// not need to exist.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// loadAll reads the full mapping from disk. A missing or empty file yields
// an empty mapping, never an error.
func (r *Repository) loadAll() (map[string]models.DailyLog, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]models.DailyLog{}, nil
		}
		return nil, fmt.Errorf("failed to read daily log file: %w", err)
	}
	if len(data) == 0 {
		return map[string]models.DailyLog{}, nil
	}

	logs := map[string]models.DailyLog{}
	if err := json.Unmarshal(data, &logs); err != nil {
		return nil, fmt.Errorf("failed to parse daily log file: %w", err)
	}
	return logs, nil
}

// Save merges the entry for log.Date into the stored mapping and writes
// the whole mapping back. Entries for other dates are preserved as loaded.
func (r *Repository) Save(log models.DailyLog) error {
	if !utils.ValidDate(log.Date) {
		return fmt.Errorf("invalid daily log date %q (expected YYYY-MM-DD)", log.Date)
	}

	logs, err := r.loadAll()
	if err != nil {
		return err
	}
	logs[log.Date] = log

	if err := os.MkdirAll(filepath.Dir(r.path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	data, err := json.MarshalIndent(logs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize daily logs: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write daily log file: %w", err)
	}
	return nil
}

// FindByDate returns the entry stored under the exact date key, or nil
// when the file is absent, empty, or holds no such key. Not-found is a
// valid empty result, never an error.
func (r *Repository) FindByDate(date string) (*models.DailyLog, error) {
	logs, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	log, ok := logs[date]
	if !ok {
		return nil, nil
	}
	return &log, nil
}

// LoadBetween returns every entry whose date key lies in [start, end]
// inclusive, sorted by date ascending. Keys that do not parse as dates are
// skipped. A missing or empty file yields an empty list.
func (r *Repository) LoadBetween(start, end string) ([]models.DailyLog, error) {
	logs, err := r.loadAll()
	if err != nil {
		return nil, err
	}

	var out []models.DailyLog
	for date, log := range logs {
		if !utils.ValidDate(date) {
			continue
		}
		if start <= date && date <= end {
			out = append(out, log)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}
