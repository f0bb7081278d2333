package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryKVStore is a process-local KVStore. It is safe for concurrent use.
type MemoryKVStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{entries: make(map[string]string)}
}

func (s *MemoryKVStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	if !ok {
		return "", fmt.Errorf("key %q: %w", key, ErrNotFound)
	}
	return v, nil
}

func (s *MemoryKVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

func (s *MemoryKVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *MemoryKVStore) Keys(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
