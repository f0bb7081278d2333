package domain

import (
	"fmt"
	"strings"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the accepted priorities in the order a picker shows them.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q (want low, medium or high)", ErrInvalidPriority, s)
	}
	return p, nil
}

// Task is a to-do item. Its position in the task collection is the
// user-visible ordering.
type Task struct {
	ID        ID       `json:"id"`
	Title     string   `json:"title"`
	Priority  Priority `json:"priority"`
	DueDate   string   `json:"dueDate"`
	Tags      []string `json:"tags"`
	Completed bool     `json:"completed"`
}

// ParseTags splits a comma-separated tag string, trimming each piece.
// Empty pieces are kept, so an empty input yields a single empty tag.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Clone returns a copy of t that shares no backing arrays with it.
func (t Task) Clone() Task {
	if t.Tags != nil {
		t.Tags = append([]string(nil), t.Tags...)
	}
	return t
}

// IsOverdue reports whether the due date sorts before today. Dates are
// compared as strings, so a task without a due date counts as overdue.
func (t Task) IsOverdue(today string) bool {
	return t.DueDate < today
}

func (t Task) IsDueOn(date string) bool {
	return t.DueDate == date
}
