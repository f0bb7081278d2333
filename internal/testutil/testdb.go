package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/planboard/internal/db"
)

// NewTestDB creates an in-memory SQLite database with the schema applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return OpenFileDB(t, db.MemoryPath)
}

// OpenFileDB opens (or creates) the database at path for the duration of
// the test.
func OpenFileDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
