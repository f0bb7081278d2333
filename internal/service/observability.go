package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// UseCaseEvent captures lightweight execution telemetry for a board operation.
type UseCaseEvent struct {
	OperationID string
	Name        string
	Duration    time.Duration
	Success     bool
	Err         error
	Fields      map[string]any
	StartedAt   time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes board use-case events to w as logfmt lines.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 10+len(event.Fields)*2)
	attrs = append(attrs,
		"op_id", event.OperationID,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "board_use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "board_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// RecordingObserver keeps every event it sees. It is meant for tests and
// for callers that summarize a batch of operations.
type RecordingObserver struct {
	Events []UseCaseEvent
}

func (r *RecordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.Events = append(r.Events, event)
}

// Named returns the recorded events with the given use-case name.
func (r *RecordingObserver) Named(name string) []UseCaseEvent {
	var out []UseCaseEvent
	for _, e := range r.Events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

func (s *boardService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		OperationID: uuid.NewString(),
		Name:        name,
		StartedAt:   startedAt,
		Duration:    time.Since(startedAt),
		Success:     err == nil,
		Err:         err,
		Fields:      fields,
	})
}
