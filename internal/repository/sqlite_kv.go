package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/db"
)

// SQLiteKVStore implements KVStore on the kv_entries table.
type SQLiteKVStore struct {
	db db.DBTX
}

func NewSQLiteKVStore(conn db.DBTX) *SQLiteKVStore {
	return &SQLiteKVStore{db: conn}
}

func (s *SQLiteKVStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("key %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteKVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteKVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteKVStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM kv_entries ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
