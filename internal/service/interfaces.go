package service

import (
	"context"
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/planner"
)

// BoardService owns the task, weekly event, and monthly event collections
// together with the transient selection state a board session carries.
// Every mutation persists the affected collection before returning the
// refreshed view.
type BoardService interface {
	// Load replaces in-memory state with what the store holds.
	Load(ctx context.Context) error

	Tasks() []domain.Task
	WeeklyEvents() []domain.WeeklyEvent
	MonthlyEvents() []domain.MonthlyEvent
	Today() string

	TaskView() planner.TaskView
	WeekView() planner.WeekGrid
	MonthView() planner.MonthView
	Progress() planner.Progress

	Filter() domain.FilterMode
	SetFilter(mode domain.FilterMode) (planner.TaskView, error)
	Query() string
	Search(query string) SearchResult

	Navigator() planner.Navigator
	SetMonth(nav planner.Navigator) planner.MonthView
	NextMonth() planner.MonthView
	PrevMonth() planner.MonthView

	CreateTask(ctx context.Context, in TaskInput) (planner.TaskView, error)
	DeleteTask(ctx context.Context, index int) (planner.TaskView, error)
	ToggleTaskCompletion(ctx context.Context, index int, checked bool) (planner.TaskView, error)
	RenameTaskInline(ctx context.Context, index int, title string) (planner.TaskView, error)
	ReorderTask(ctx context.Context, from, to int) (planner.TaskView, error)

	ScheduleWeeklyEvent(ctx context.Context, task domain.Task, day, slot string) (planner.WeekGrid, error)

	CreateOrUpdateMonthlyEvent(ctx context.Context, editingID *domain.ID, in EventInput) (planner.MonthView, error)
	RelocateMonthlyEvent(ctx context.Context, eventID string, year int, month time.Month, day int) (planner.MonthView, error)
	FindEventByTitle(title string) (domain.MonthlyEvent, error)
	FindEventByID(id string) (domain.MonthlyEvent, error)

	OpenDayCell(day int) (EventDraft, error)
	OpenEventByTitle(title string) (EventDraft, error)
	OpenEventByID(id string) (EventDraft, error)
	Modal() (EventDraft, bool)
	CloseModal()
	SaveModal(ctx context.Context, in EventInput) (planner.MonthView, error)

	Drag() DragPayload
	PickUpTask(index int) error
	PickUpEvent(eventID string) error
	DropOnTask(ctx context.Context, toIndex int) (planner.TaskView, error)
	DropOnSlot(ctx context.Context, day, slot string) (planner.WeekGrid, error)
	DropOnDay(ctx context.Context, day int) (planner.MonthView, error)

	Export() Snapshot
	Import(ctx context.Context, snap Snapshot) error
}

// TaskInput carries the fields of the add-task form as entered.
type TaskInput struct {
	Title    string
	Priority domain.Priority
	DueDate  string
	// Tags is the raw comma-separated tag text.
	Tags string
}

// EventInput carries the event form. Nil fields keep the value of the
// event being edited, or are empty when creating.
type EventInput struct {
	Title     *string
	StartDate *string
	EndDate   *string
	Notes     *string
}

// FullEventInput sets every field of an EventInput.
func FullEventInput(title, start, end, notes string) EventInput {
	return EventInput{Title: &title, StartDate: &start, EndDate: &end, Notes: &notes}
}

// EventDraft is the content of an open event form. EditingID is zero when
// the form creates a new event.
type EventDraft struct {
	EditingID domain.ID
	Title     string
	StartDate string
	EndDate   string
	Notes     string
}

func (d EventDraft) IsEdit() bool { return d.EditingID != 0 }

// SearchResult is the outcome of a global search over tasks and the
// displayed month.
type SearchResult struct {
	Tasks planner.TaskView
	Month planner.MonthView
}
