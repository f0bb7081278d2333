package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/repository"
	"github.com/google/uuid"
)

// SnapshotVersion is the only snapshot layout ReadSnapshot accepts.
const SnapshotVersion = 1

// Snapshot is a portable copy of all three collections.
type Snapshot struct {
	Version       int                   `json:"version"`
	ID            string                `json:"id"`
	ExportedAt    time.Time             `json:"exportedAt"`
	Tasks         []domain.Task         `json:"tasks"`
	WeeklyEvents  []domain.WeeklyEvent  `json:"weeklyEvents"`
	MonthlyEvents []domain.MonthlyEvent `json:"monthlyEvents"`
}

func (s *boardService) Export() Snapshot {
	return Snapshot{
		Version:       SnapshotVersion,
		ID:            uuid.New().String(),
		ExportedAt:    s.now().UTC(),
		Tasks:         s.Tasks(),
		WeeklyEvents:  s.WeeklyEvents(),
		MonthlyEvents: s.MonthlyEvents(),
	}
}

// Import replaces all three collections with the snapshot's. With a
// UnitOfWork the writes commit together; in-memory state changes only
// after every write succeeded.
func (s *boardService) Import(ctx context.Context, snap Snapshot) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"snapshot_id": snap.ID}
	defer func() { s.observe(ctx, "import-snapshot", startedAt, err, fields) }()

	tasks := nonNil(snap.Tasks)
	weekly := nonNil(snap.WeeklyEvents)
	monthly := nonNil(snap.MonthlyEvents)

	write := func(ctx context.Context, store repository.KVStore) error {
		if err := repository.SaveCollection(ctx, store, repository.KeyTasks, tasks); err != nil {
			return wrapPersist(repository.KeyTasks, err)
		}
		if err := repository.SaveCollection(ctx, store, repository.KeyWeeklyEvents, weekly); err != nil {
			return wrapPersist(repository.KeyWeeklyEvents, err)
		}
		if err := repository.SaveCollection(ctx, store, repository.KeyMonthlyEvents, monthly); err != nil {
			return wrapPersist(repository.KeyMonthlyEvents, err)
		}
		return nil
	}

	if s.uow != nil {
		fields["transactional"] = true
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return write(ctx, repository.NewSQLiteKVStore(tx))
		})
	} else {
		err = write(ctx, s.store)
	}
	if err != nil {
		return err
	}

	s.replaceCollections(tasks, weekly, monthly)
	fields["tasks"] = len(tasks)
	fields["weekly_events"] = len(weekly)
	fields["monthly_events"] = len(monthly)
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// WriteSnapshot encodes snap as indented JSON.
func WriteSnapshot(w io.Writer, snap Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("decoding snapshot: %w: %v", domain.ErrParseFailure, err)
	}
	if snap.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("unsupported snapshot version %d (want %d)", snap.Version, SnapshotVersion)
	}
	return snap, nil
}
