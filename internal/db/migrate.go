package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement in order. Statements are written
// to be re-runnable, so Migrate is safe on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS kv_entries (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`ALTER TABLE kv_entries ADD COLUMN updated_at TEXT NOT NULL DEFAULT ''`,
}
