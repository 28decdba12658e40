package testutil

import (
	"database/sql"
	"testing"

	"github.com/leten02/TimeGrid/internal/db"
)

// NewTestDB opens a migrated in-memory SQLite database that lives for the
// duration of t.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW returns the SQLite UnitOfWork production code would use for database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
