// Package sqlite implements the storage provider over an embedded SQLite
// database.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// NewMemory creates an in-memory store for testing, already initialized.
func NewMemory() (*Store, error) {
	s := NewStore(":memory:")
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Init() error {
	if s.path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return fmt.Errorf("failed to exec pragma %q: %w", p, err)
		}
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'mindtrack init' first")
	}
	return s.Init()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS categories (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL COLLATE NOCASE UNIQUE
	);

	CREATE TABLE IF NOT EXISTS tasks (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL,
		description         TEXT NOT NULL DEFAULT '',
		category_id         TEXT NOT NULL DEFAULT '',
		completed           INTEGER NOT NULL DEFAULT 0,
		completed_at        TEXT,
		due_date            TEXT NOT NULL DEFAULT '',
		scheduled_for_today INTEGER NOT NULL DEFAULT 0,
		created_at          TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_completed_at ON tasks(completed_at);
	CREATE INDEX IF NOT EXISTS idx_tasks_category     ON tasks(category_id);

	CREATE TABLE IF NOT EXISTS events (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		category_id  TEXT NOT NULL DEFAULT '',
		date         TEXT NOT NULL,
		start_time   TEXT NOT NULL DEFAULT '',
		end_time     TEXT NOT NULL DEFAULT '',
		completed    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		created_at   TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_date     ON events(date);
	CREATE INDEX IF NOT EXISTS idx_events_category ON events(category_id);

	CREATE TABLE IF NOT EXISTS wellness_entries (
		id      TEXT PRIMARY KEY,
		mood    TEXT NOT NULL,
		stress  INTEGER NOT NULL,
		energy  INTEGER NOT NULL,
		fatigue INTEGER NOT NULL,
		time    TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_wellness_time ON wellness_entries(time);
	`
	_, err := s.db.Exec(ddl)
	return err
}

func (s *Store) GetConfigPath() string {
	return s.path
}
