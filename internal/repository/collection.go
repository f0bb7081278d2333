package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/planboard/internal/domain"
)

// LoadCollection decodes the JSON array stored under key. A missing key or
// a stored null yields an empty collection. Undecodable data also yields an
// empty collection, together with an error wrapping domain.ErrParseFailure
// so callers can report it and carry on.
func LoadCollection[T any](ctx context.Context, store KVStore, key string) ([]T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []T{}, nil
		}
		return nil, err
	}
	return DecodeCollection[T](key, []byte(raw))
}

// DecodeCollection is the decoding half of LoadCollection.
func DecodeCollection[T any](key string, raw []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return []T{}, fmt.Errorf("%s: %w: %v", key, domain.ErrParseFailure, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SaveCollection stores items as a JSON array under key. A nil slice is
// stored as an empty array.
func SaveCollection[T any](ctx context.Context, store KVStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return store.Set(ctx, key, string(data))
}
