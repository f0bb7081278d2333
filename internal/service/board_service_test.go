package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/planner"
	"github.com/alexanderramin/planboard/internal/repository"
	"github.com/alexanderramin/planboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	return func() time.Time { return testutil.FixedNow }
}

func newTestBoard(t *testing.T, opts ...BoardOption) (BoardService, *repository.MemoryKVStore) {
	t.Helper()
	store := repository.NewMemoryKVStore()
	board := NewBoardService(store, append([]BoardOption{WithClock(fixedClock())}, opts...)...)
	require.NoError(t, board.Load(context.Background()))
	return board, store
}

func addTasks(t *testing.T, board BoardService, titles ...string) {
	t.Helper()
	for _, title := range titles {
		_, err := board.CreateTask(context.Background(), TaskInput{Title: title, DueDate: testutil.FixedToday, Tags: "a, b"})
		require.NoError(t, err)
	}
}

func taskTitles(board BoardService) []string {
	var out []string
	for _, t := range board.Tasks() {
		out = append(out, t.Title)
	}
	return out
}

func TestCreateTask_AppendsWithFreshIDs(t *testing.T) {
	board, store := newTestBoard(t)
	ctx := context.Background()

	view, err := board.CreateTask(ctx, TaskInput{Title: "Essay", Priority: domain.PriorityHigh, DueDate: "2024-03-12", Tags: " Writing , English"})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)

	task := view.Items[0].Task
	assert.Equal(t, domain.ID(testutil.FixedNow.UnixMilli()), task.ID)
	assert.Equal(t, []string{"Writing", "English"}, task.Tags)
	assert.False(t, task.Completed)

	addTasks(t, board, "second", "third")
	tasks := board.Tasks()
	require.Len(t, tasks, 3)
	assert.Less(t, tasks[0].ID, tasks[1].ID, "same clock millisecond still yields distinct ids")
	assert.Less(t, tasks[1].ID, tasks[2].ID)

	stored, err := repository.LoadCollection[domain.Task](ctx, store, repository.KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, tasks, stored, "every mutation is written through")
}

func TestCreateTask_DefaultsAndPermissiveFields(t *testing.T) {
	board, _ := newTestBoard(t)
	view, err := board.CreateTask(context.Background(), TaskInput{})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	task := view.Items[0].Task
	assert.Equal(t, "", task.Title)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Equal(t, []string{""}, task.Tags)
}

func TestDeleteTask(t *testing.T) {
	board, _ := newTestBoard(t)
	addTasks(t, board, "a", "b", "c")

	_, err := board.DeleteTask(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, taskTitles(board))

	_, err = board.DeleteTask(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	assert.Equal(t, []string{"a", "c"}, taskTitles(board), "out-of-range delete is a no-op")
}

func TestToggleAndRename(t *testing.T) {
	board, _ := newTestBoard(t)
	ctx := context.Background()
	addTasks(t, board, "draft")

	_, err := board.ToggleTaskCompletion(ctx, 0, true)
	require.NoError(t, err)
	assert.True(t, board.Tasks()[0].Completed)
	assert.Equal(t, planner.Progress{Due: 1, Completed: 1, Percent: 100}, board.Progress())

	_, err = board.ToggleTaskCompletion(ctx, 0, false)
	require.NoError(t, err)
	assert.False(t, board.Tasks()[0].Completed)

	_, err = board.RenameTaskInline(ctx, 0, "final")
	require.NoError(t, err)
	assert.Equal(t, []string{"final"}, taskTitles(board))

	_, err = board.ToggleTaskCompletion(ctx, 5, true)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	_, err = board.RenameTaskInline(ctx, -1, "x")
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestReorderTask(t *testing.T) {
	board, _ := newTestBoard(t)
	addTasks(t, board, "a", "b", "c", "d")

	_, err := board.ReorderTask(context.Background(), 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d", "a"}, taskTitles(board))

	_, err = board.ReorderTask(context.Background(), 4, 0)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	assert.Equal(t, []string{"b", "c", "d", "a"}, taskTitles(board))
}

func TestFilteredView_IndexesAddressFullCollection(t *testing.T) {
	board, _ := newTestBoard(t)
	ctx := context.Background()
	addTasks(t, board, "open-1", "done-1", "open-2", "done-2")
	_, err := board.ToggleTaskCompletion(ctx, 1, true)
	require.NoError(t, err)
	_, err = board.ToggleTaskCompletion(ctx, 3, true)
	require.NoError(t, err)

	view, err := board.SetFilter(domain.FilterCompleted)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)

	// Deleting the second visible row must remove "done-2", not tasks[1].
	_, err = board.DeleteTask(ctx, view.Items[1].Index)
	require.NoError(t, err)
	assert.Equal(t, []string{"open-1", "done-1", "open-2"}, taskTitles(board))
}

func TestSetFilter_RejectsUnknownMode(t *testing.T) {
	board, _ := newTestBoard(t)
	_, err := board.SetFilter("someday")
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
	assert.Equal(t, domain.FilterAll, board.Filter())
}

func TestSearch_AppliesToTasksAndMonth(t *testing.T) {
	board, _ := newTestBoard(t)
	ctx := context.Background()
	addTasks(t, board, "Chem lab", "History essay")
	_, err := board.CreateOrUpdateMonthlyEvent(ctx, nil, FullEventInput("Midterm", "2024-03-20", "2024-03-20", "chem room"))
	require.NoError(t, err)
	_, err = board.CreateOrUpdateMonthlyEvent(ctx, nil, FullEventInput("Party", "2024-03-21", "2024-03-21", ""))
	require.NoError(t, err)

	res := board.Search("CHEM")
	require.Len(t, res.Tasks.Items, 1)
	assert.Equal(t, "Chem lab", res.Tasks.Items[0].Task.Title)
	assert.Equal(t, 1, res.Month.EventCount())

	res = board.Search("")
	assert.Len(t, res.Tasks.Items, 2)
	assert.Equal(t, 2, res.Month.EventCount())
}

func TestLoad_RoundTripsThroughStore(t *testing.T) {
	board, store := newTestBoard(t)
	ctx := context.Background()
	addTasks(t, board, "a", "b")
	_, err := board.ScheduleWeeklyEvent(ctx, board.Tasks()[0], "Tue", "9:30")
	require.NoError(t, err)
	_, err = board.CreateOrUpdateMonthlyEvent(ctx, nil, FullEventInput("Exam", "2024-03-15", "2024-03-15", "hall B"))
	require.NoError(t, err)

	reloaded := NewBoardService(store, WithClock(fixedClock()))
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, board.Tasks(), reloaded.Tasks())
	assert.Equal(t, board.WeeklyEvents(), reloaded.WeeklyEvents())
	assert.Equal(t, board.MonthlyEvents(), reloaded.MonthlyEvents())

	_, err = reloaded.CreateTask(ctx, TaskInput{Title: "c"})
	require.NoError(t, err)
	tasks := reloaded.Tasks()
	assert.Greater(t, tasks[2].ID, tasks[1].ID, "ids stay unique after reload")
}

func TestLoad_ParseFailureDegradesAndReports(t *testing.T) {
	store := repository.NewMemoryKVStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, repository.KeyTasks, "{broken"))
	require.NoError(t, repository.SaveCollection(ctx, store, repository.KeyMonthlyEvents,
		[]domain.MonthlyEvent{testutil.NewTestEvent("Exam", "2024-03-15")}))

	obs := &RecordingObserver{}
	board := NewBoardService(store, WithClock(fixedClock()), WithObserver(obs))
	require.NoError(t, board.Load(ctx))

	assert.Empty(t, board.Tasks())
	assert.Len(t, board.MonthlyEvents(), 1, "other collections still load")

	loads := obs.Named("load")
	require.Len(t, loads, 1)
	assert.True(t, loads[0].Success)
	assert.Contains(t, loads[0].Fields, "degraded_tasks")
	assert.NotEmpty(t, loads[0].OperationID)
}

func TestLoad_StoreReadFailureIsReturned(t *testing.T) {
	boom := errors.New("store offline")
	board := NewBoardService(errStore{err: boom}, WithClock(fixedClock()))
	err := board.Load(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestPersistFailure_KeepsInMemoryChange(t *testing.T) {
	boom := errors.New("disk full")
	store := testutil.NewFailingStore(repository.NewMemoryKVStore(), boom)
	board := NewBoardService(store, WithClock(fixedClock()))
	require.NoError(t, board.Load(context.Background()))

	store.FailWrites(true)
	view, err := board.CreateTask(context.Background(), TaskInput{Title: "unsaved"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersist)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, []string{"unsaved"}, taskTitles(board))
	assert.Equal(t, 0, store.Writes())
}

func TestScheduleWeeklyEvent_IsSnapshot(t *testing.T) {
	board, _ := newTestBoard(t)
	ctx := context.Background()
	addTasks(t, board, "Gym")

	grid, err := board.ScheduleWeeklyEvent(ctx, board.Tasks()[0], "Mon", "8:00")
	require.NoError(t, err)
	assert.Equal(t, 1, grid.Placed())

	_, err = board.RenameTaskInline(ctx, 0, "Swim")
	require.NoError(t, err)
	cell, ok := board.WeekView().Cell("Mon", "8:00")
	require.True(t, ok)
	assert.Equal(t, "Gym", cell.Events[0].Title, "later task edits do not reach the weekly copy")

	_, err = board.ScheduleWeeklyEvent(ctx, board.Tasks()[0], "Mon", "8:00")
	require.NoError(t, err)
	cell, _ = board.WeekView().Cell("Mon", "8:00")
	assert.Len(t, cell.Events, 2, "a cell may hold several events")
}

func TestScheduleWeeklyEvent_RejectsUnknownCell(t *testing.T) {
	board, _ := newTestBoard(t)
	_, err := board.ScheduleWeeklyEvent(context.Background(), testutil.NewTestTask("x"), "Mon", "7:00")
	assert.ErrorIs(t, err, domain.ErrInvalidSlot)
	assert.Empty(t, board.WeeklyEvents())
}

func TestCreateOrUpdateMonthlyEvent(t *testing.T) {
	board, _ := newTestBoard(t)
	ctx := context.Background()

	_, err := board.CreateOrUpdateMonthlyEvent(ctx, nil, FullEventInput("Exam", "2024-03-15", "2024-03-16", "hall"))
	require.NoError(t, err)
	created := board.MonthlyEvents()[0]

	title := "Final exam"
	_, err = board.CreateOrUpdateMonthlyEvent(ctx, &created.ID, EventInput{Title: &title})
	require.NoError(t, err)

	events := board.MonthlyEvents()
	require.Len(t, events, 1, "edit replaces rather than appends")
	assert.Equal(t, created.ID, events[0].ID)
	assert.Equal(t, "Final exam", events[0].Title)
	assert.Equal(t, "2024-03-16", events[0].EndDate, "unsupplied fields keep their value")
	assert.Equal(t, "hall", events[0].Notes)

	missing := domain.ID(42)
	_, err = board.CreateOrUpdateMonthlyEvent(ctx, &missing, EventInput{Title: &title})
	assert.ErrorIs(t, err, domain.ErrLookupMiss)
	assert.Len(t, board.MonthlyEvents(), 1)

	zero := domain.ID(0)
	_, err = board.CreateOrUpdateMonthlyEvent(ctx, &zero, FullEventInput("New", "2024-03-01", "", ""))
	require.NoError(t, err)
	assert.Len(t, board.MonthlyEvents(), 2, "a zero editing id creates")
}

func TestRelocateMonthlyEvent_LooseIDs(t *testing.T) {
	board, _ := newTestBoard(t)
	ctx := context.Background()
	_, err := board.CreateOrUpdateMonthlyEvent(ctx, nil, FullEventInput("Exam", "2024-03-15", "2024-03-16", ""))
	require.NoError(t, err)
	id := board.MonthlyEvents()[0].ID

	view, err := board.RelocateMonthlyEvent(ctx, " "+id.String()+" ", 2024, time.March, 2)
	require.NoError(t, err)
	ev := board.MonthlyEvents()[0]
	assert.Equal(t, "2024-03-02", ev.StartDate)
	assert.Equal(t, "2024-03-02", ev.EndDate)
	assert.Len(t, view.Days[1].Events, 1)

	_, err = board.RelocateMonthlyEvent(ctx, "12345", 2024, time.March, 2)
	assert.ErrorIs(t, err, domain.ErrLookupMiss)
	_, err = board.RelocateMonthlyEvent(ctx, "not-an-id", 2024, time.March, 2)
	assert.ErrorIs(t, err, domain.ErrLookupMiss)
	_, err = board.RelocateMonthlyEvent(ctx, id.String(), 2024, time.February, 30)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestNavigator_StartsOnClockMonth(t *testing.T) {
	board, _ := newTestBoard(t)
	assert.Equal(t, "March 2024", board.MonthView().Label)
	assert.Equal(t, "April 2024", board.NextMonth().Label)
	assert.Equal(t, "March 2024", board.PrevMonth().Label)
	assert.Equal(t, "December 2023", board.SetMonth(planner.NavigatorFor(2023, time.December)).Label)
}

type errStore struct {
	repository.KVStore
	err error
}

func (s errStore) Get(context.Context, string) (string, error) { return "", s.err }
