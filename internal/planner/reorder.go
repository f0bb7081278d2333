package planner

import (
	"fmt"

	"github.com/alexanderramin/planboard/internal/domain"
)

// Reorder removes the element at from and reinserts it at to, where to
// addresses the slice after the removal. The input is left untouched.
func Reorder[T any](items []T, from, to int) ([]T, error) {
	n := len(items)
	if from < 0 || from >= n {
		return nil, fmt.Errorf("%w: from=%d len=%d", domain.ErrIndexOutOfRange, from, n)
	}
	if to < 0 || to > n-1 {
		return nil, fmt.Errorf("%w: to=%d len=%d", domain.ErrIndexOutOfRange, to, n)
	}
	moved := items[from]
	out := make([]T, 0, n)
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return out, nil
}

// RemoveAt returns a copy of items without the element at index.
func RemoveAt[T any](items []T, index int) ([]T, error) {
	if index < 0 || index >= len(items) {
		return nil, fmt.Errorf("%w: index=%d len=%d", domain.ErrIndexOutOfRange, index, len(items))
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), nil
}
