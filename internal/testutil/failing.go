package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/alexanderramin/planboard/internal/db"
)

// KV mirrors repository.KVStore so this package stays importable from the
// repository tests.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// FailingStore wraps a store and fails writes while Fail is set. Reads
// always pass through.
type FailingStore struct {
	KV
	Err error

	mu     sync.Mutex
	fail   bool
	writes int
}

func NewFailingStore(inner KV, err error) *FailingStore {
	return &FailingStore{KV: inner, Err: err}
}

// FailWrites toggles write failures.
func (s *FailingStore) FailWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = fail
}

// Writes counts the Set calls that reached the inner store.
func (s *FailingStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *FailingStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	fail := s.fail
	if !fail {
		s.writes++
	}
	s.mu.Unlock()
	if fail {
		return s.Err
	}
	return s.KV.Set(ctx, key, value)
}

// FailOnNthExecUoW injects Err on the FailOn-th ExecContext call inside a
// transaction, counting from 1. Reads are not counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	wrapped := &failOnNthExec{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.count.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
