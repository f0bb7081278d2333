package domain

import (
	"fmt"
	"strings"
)

// FilterMode selects which tasks the task list shows.
type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterToday     FilterMode = "today"
	FilterOverdue   FilterMode = "overdue"
	FilterCompleted FilterMode = "completed"
	FilterHigh      FilterMode = "high"
)

var FilterModes = []FilterMode{FilterAll, FilterToday, FilterOverdue, FilterCompleted, FilterHigh}

func (m FilterMode) IsValid() bool {
	for _, v := range FilterModes {
		if v == m {
			return true
		}
	}
	return false
}

func ParseFilterMode(s string) (FilterMode, error) {
	m := FilterMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
	}
	return m, nil
}
