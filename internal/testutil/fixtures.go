package testutil

import (
	"sync/atomic"
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
)

// FixedNow is the clock used by fixtures and service tests: a Sunday.
var FixedNow = time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)

// FixedToday is FixedNow as a calendar date.
const FixedToday = "2024-03-10"

var testIDCounter atomic.Int64

func nextTestID() domain.ID {
	return domain.ID(1_700_000_000_000 + testIDCounter.Add(1))
}

// Task options
type TaskOption func(*domain.Task)

func WithID(id domain.ID) TaskOption {
	return func(t *domain.Task) { t.ID = id }
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) { t.Priority = p }
}

func WithDueDate(d string) TaskOption {
	return func(t *domain.Task) { t.DueDate = d }
}

func WithTags(tags ...string) TaskOption {
	return func(t *domain.Task) { t.Tags = tags }
}

func Completed() TaskOption {
	return func(t *domain.Task) { t.Completed = true }
}

// NewTestTask builds a medium-priority open task due on FixedToday.
func NewTestTask(title string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:       nextTestID(),
		Title:    title,
		Priority: domain.PriorityMedium,
		DueDate:  FixedToday,
		Tags:     []string{""},
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Monthly event options
type EventOption func(*domain.MonthlyEvent)

func WithEventID(id domain.ID) EventOption {
	return func(e *domain.MonthlyEvent) { e.ID = id }
}

func WithNotes(notes string) EventOption {
	return func(e *domain.MonthlyEvent) { e.Notes = notes }
}

func WithEndDate(d string) EventOption {
	return func(e *domain.MonthlyEvent) { e.EndDate = d }
}

// NewTestEvent builds a single-day monthly event starting on start.
func NewTestEvent(title, start string, opts ...EventOption) domain.MonthlyEvent {
	e := domain.MonthlyEvent{
		ID:        nextTestID(),
		Title:     title,
		StartDate: start,
		EndDate:   start,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
