// Package postgres implements the storage provider over a PostgreSQL
// database. Connection strings must not embed a password; credentials come
// from the OS keyring, environment, or .pgpass.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/lib/pq"
)

type Store struct {
	connStr string
	db      *sql.DB
}

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

func New(connStr string) *Store {
	return &Store{connStr: connStr}
}

// ValidateConnString checks that a connection string is a well-formed
// PostgreSQL URI or DSN and carries no embedded password.
func ValidateConnString(connStr string) (bool, error) {
	if strings.TrimSpace(connStr) == "" {
		return false, fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}

	if _, err := pq.NewConnector(connStr); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
	}

	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		parsedURL, err := url.Parse(connStr)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
		}
		if _, isSet := parsedURL.User.Password(); isSet {
			return false, ErrEmbeddedCredentials
		}
	} else {
		for _, pair := range strings.Fields(connStr) {
			parts := strings.SplitN(pair, "=", 2)
			if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[0]), "password") {
				return false, ErrEmbeddedCredentials
			}
		}
	}

	return true, nil
}

func (s *Store) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	return s.Init()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) createSchema() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS categories (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories (lower(name));

	CREATE TABLE IF NOT EXISTS tasks (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL,
		description         TEXT NOT NULL DEFAULT '',
		category_id         TEXT NOT NULL DEFAULT '',
		completed           BOOLEAN NOT NULL DEFAULT FALSE,
		completed_at        TEXT,
		due_date            TEXT NOT NULL DEFAULT '',
		scheduled_for_today BOOLEAN NOT NULL DEFAULT FALSE,
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
		completed    BOOLEAN NOT NULL DEFAULT FALSE,
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
	return s.connStr
}
