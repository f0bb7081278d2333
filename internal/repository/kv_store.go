package repository

import "context"

// KVStore is an opaque string store addressed by key. Implementations are
// safe for use from a single goroutine at a time unless noted otherwise.
type KVStore interface {
	// Get returns ErrNotFound for a key that was never set.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
