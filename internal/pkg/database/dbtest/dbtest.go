// Package dbtest opens throwaway in-memory stores for repository tests.
package dbtest

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/database"
)

// Open returns an Accessor over a fresh in-memory SQLite database with the bootstrap schema.
func Open(t *testing.T) *database.Accessor {
	t.Helper()

	db, err := database.NewSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return database.NewAccessor(db, database.WithRetryAttempts(1))
}

// Exec runs a fixture statement and fails the test on error.
func Exec(t *testing.T, acc *database.Accessor, query string, args ...interface{}) {
	t.Helper()

	if _, err := acc.DB().Exec(acc.DB().Rebind(query), args...); err != nil {
		t.Fatalf("fixture %q: %v", query, err)
	}
}
