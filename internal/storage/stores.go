package storage

import (
	"net/url"
	"strings"

	"github.com/lininnin/mindtrack/internal/storage/postgres"
	"github.com/lininnin/mindtrack/internal/storage/sqlite"
)

// NewSQLiteStore returns a Provider backed by an embedded SQLite database
// at the given path.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore returns a Provider backed by PostgreSQL.
func NewPostgresStore(connStr string) Provider {
	return postgres.New(connStr)
}

// IsPostgresTarget reports whether the storage target string selects the
// PostgreSQL backend.
func IsPostgresTarget(target string) bool {
	return strings.HasPrefix(target, "postgres://") || strings.HasPrefix(target, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password, which is never allowed on the command line.
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgresTarget(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		_, isSet := u.User.Password()
		return isSet
	}

	for _, pair := range strings.Fields(connStr) {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[0]), "password") {
			return true
		}
	}
	return false
}
