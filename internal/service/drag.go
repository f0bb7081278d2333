package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/planner"
)

type DragKind string

const (
	DragNone  DragKind = ""
	DragTask  DragKind = "task"
	DragEvent DragKind = "event"
)

// DragPayload is what a pick-up recorded. A task payload remembers both
// the position and the id of the task so a drop can find it again after
// the collection changed underneath.
type DragPayload struct {
	Kind      DragKind
	TaskIndex int
	TaskID    domain.ID
	EventID   string
}

func (s *boardService) Drag() DragPayload { return s.drag }

// PickUpTask starts dragging the task at index, replacing any earlier payload.
func (s *boardService) PickUpTask(index int) error {
	if err := s.checkTaskIndex(index); err != nil {
		return err
	}
	s.drag = DragPayload{Kind: DragTask, TaskIndex: index, TaskID: s.tasks[index].ID}
	return nil
}

// PickUpEvent starts dragging a monthly event. The id is kept as given and
// resolved at drop time.
func (s *boardService) PickUpEvent(eventID string) error {
	if _, err := domain.ParseID(eventID); err != nil {
		return err
	}
	s.drag = DragPayload{Kind: DragEvent, EventID: eventID}
	return nil
}

// DropOnTask moves the dragged task to toIndex in the task list.
func (s *boardService) DropOnTask(ctx context.Context, toIndex int) (planner.TaskView, error) {
	defer s.clearDrag()
	from, err := s.draggedTaskIndex()
	if err != nil {
		return s.TaskView(), err
	}
	return s.ReorderTask(ctx, from, toIndex)
}

// DropOnSlot schedules a snapshot of the dragged task into a weekly cell.
func (s *boardService) DropOnSlot(ctx context.Context, day, slot string) (planner.WeekGrid, error) {
	defer s.clearDrag()
	i, err := s.draggedTaskIndex()
	if err != nil {
		return s.WeekView(), err
	}
	return s.ScheduleWeeklyEvent(ctx, s.tasks[i], day, slot)
}

// DropOnDay moves the dragged monthly event to day of the displayed month.
func (s *boardService) DropOnDay(ctx context.Context, day int) (planner.MonthView, error) {
	defer s.clearDrag()
	if s.drag.Kind != DragEvent {
		return s.MonthView(), ErrNoDragPayload
	}
	return s.RelocateMonthlyEvent(ctx, s.drag.EventID, s.nav.Year(), s.nav.Month(), day)
}

func (s *boardService) clearDrag() {
	s.drag = DragPayload{}
}

// draggedTaskIndex re-resolves a task payload. The recorded index wins when
// it still holds the same task; otherwise the task is found by id.
func (s *boardService) draggedTaskIndex() (int, error) {
	if s.drag.Kind != DragTask {
		return -1, ErrNoDragPayload
	}
	i := s.drag.TaskIndex
	if i >= 0 && i < len(s.tasks) && s.tasks[i].ID == s.drag.TaskID {
		return i, nil
	}
	for j, t := range s.tasks {
		if t.ID == s.drag.TaskID {
			return j, nil
		}
	}
	return -1, fmt.Errorf("dragged task %s: %w", s.drag.TaskID, domain.ErrLookupMiss)
}
