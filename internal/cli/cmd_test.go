package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/repository"
	"github.com/alexanderramin/planboard/internal/service"
	"github.com/alexanderramin/planboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	store := repository.NewSQLiteKVStore(database)

	board := service.NewBoardService(store,
		service.WithClock(func() time.Time { return testutil.FixedNow }),
		service.WithUnitOfWork(testutil.NewTestUoW(database)),
	)
	return &App{
		Board:         board,
		Store:         store,
		IsInteractive: func() bool { return false },
	}
}

// seedBoard stores tasks and events directly, bypassing the commands.
func seedBoard(t *testing.T, app *App, tasks []domain.Task, events []domain.MonthlyEvent) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repository.SaveCollection(ctx, app.Store, repository.KeyTasks, tasks))
	require.NoError(t, repository.SaveCollection(ctx, app.Store, repository.KeyMonthlyEvents, events))
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- task ---

func TestTaskAdd_PersistsTask(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "task", "add", "Read", "chapter", "3", "--priority", "high", "--due", "2024-03-12", "--tags", "cs, reading")
	require.NoError(t, err)
	assert.Contains(t, out, "Added task")
	assert.Contains(t, out, "Read chapter 3")

	stored, err := repository.LoadCollection[domain.Task](context.Background(), app.Store, repository.KeyTasks)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, domain.PriorityHigh, stored[0].Priority)
	assert.Equal(t, "2024-03-12", stored[0].DueDate)
	assert.Equal(t, []string{"cs", "reading"}, stored[0].Tags)
}

func TestTaskAdd_Template(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "-t", "exam", "Algebra")
	require.NoError(t, err)

	tasks := app.Board.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Exam: Algebra", tasks[0].Title)
	assert.Equal(t, []string{"Exam"}, tasks[0].Tags)
}

func TestTaskAdd_UnknownTemplate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "-t", "quiz", "X")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template")
}

func TestTaskAdd_InvalidPriorityFlag(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "X", "--priority", "urgent")
	require.Error(t, err)
	assert.Empty(t, app.Board.Tasks())
}

func TestTaskAdd_InteractiveNeedsTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "-i")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestTaskList_FilterShowsCollectionIndex(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app, []domain.Task{
		testutil.NewTestTask("Low thing", testutil.WithPriority(domain.PriorityLow)),
		testutil.NewTestTask("Urgent thing", testutil.WithPriority(domain.PriorityHigh)),
	}, nil)

	out, err := executeCmd(t, app, "task", "list", "-f", "high")
	require.NoError(t, err)
	assert.Contains(t, out, "Urgent thing")
	assert.NotContains(t, out, "Low thing")
	assert.Regexp(t, `(?m)^\s*1\s`, out)
}

func TestTaskList_InvalidFilter(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "list", "-f", "someday")
	require.Error(t, err)
}

func TestTaskList_Search(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app, []domain.Task{
		testutil.NewTestTask("Essay", testutil.WithTags("english")),
		testutil.NewTestTask("Problem set", testutil.WithTags("math")),
	}, nil)

	out, err := executeCmd(t, app, "task", "ls", "-s", "MATH")
	require.NoError(t, err)
	assert.Contains(t, out, "Problem set")
	assert.NotContains(t, out, "Essay")
}

func TestTaskList_Empty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks match.")
	assert.Contains(t, out, "Nothing due today.")
}

func TestTaskDone_AndUndo(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app, []domain.Task{testutil.NewTestTask("Review notes")}, nil)

	out, err := executeCmd(t, app, "task", "done", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "marked done")
	assert.Contains(t, out, "1 of 1 done")
	assert.True(t, app.Board.Tasks()[0].Completed)

	out, err = executeCmd(t, app, "task", "done", "0", "--undo")
	require.NoError(t, err)
	assert.Contains(t, out, "marked open")
	assert.False(t, app.Board.Tasks()[0].Completed)
}

func TestTaskDone_BadIndex(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "done", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid task index")

	_, err = executeCmd(t, app, "task", "done", "4")
	require.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestTaskRenameAndRemove(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app, []domain.Task{testutil.NewTestTask("Old"), testutil.NewTestTask("Keep")}, nil)

	_, err := executeCmd(t, app, "task", "rename", "0", "New", "title")
	require.NoError(t, err)
	assert.Equal(t, "New title", app.Board.Tasks()[0].Title)

	out, err := executeCmd(t, app, "task", "rm", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "New title")
	require.Len(t, app.Board.Tasks(), 1)
	assert.Equal(t, "Keep", app.Board.Tasks()[0].Title)
}

func TestTaskMove_Reorders(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app, []domain.Task{
		testutil.NewTestTask("A"), testutil.NewTestTask("B"), testutil.NewTestTask("C"),
	}, nil)

	_, err := executeCmd(t, app, "task", "move", "0", "2")
	require.NoError(t, err)

	titles := make([]string, 0, 3)
	for _, task := range app.Board.Tasks() {
		titles = append(titles, task.Title)
	}
	assert.Equal(t, []string{"B", "C", "A"}, titles)
}

func TestTaskSchedule_PlacesInWeek(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app, []domain.Task{testutil.NewTestTask("Lab report")}, nil)

	out, err := executeCmd(t, app, "task", "schedule", "0", "Tue", "9:30")
	require.NoError(t, err)
	assert.Contains(t, out, "Lab report")

	weekly := app.Board.WeeklyEvents()
	require.Len(t, weekly, 1)
	assert.Equal(t, "Tue", weekly[0].Day)
	assert.Equal(t, "9:30", weekly[0].Time)

	out, err = executeCmd(t, app, "week")
	require.NoError(t, err)
	assert.Contains(t, out, "9:30")
	assert.Contains(t, out, "Lab report")
}

func TestTaskSchedule_InvalidSlot(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app, []domain.Task{testutil.NewTestTask("Lab report")}, nil)

	_, err := executeCmd(t, app, "task", "schedule", "0", "Tue", "7:00")
	require.ErrorIs(t, err, domain.ErrInvalidSlot)
	assert.Empty(t, app.Board.WeeklyEvents())
}

func TestTaskTemplates_Lists(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "task", "templates")
	require.NoError(t, err)
	for _, name := range []string{"assignment", "exam", "lab"} {
		assert.Contains(t, out, name)
	}
}

// --- week / progress ---

func TestWeekCmd_Empty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "week")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing scheduled this week.")

	out, err = executeCmd(t, app, "week", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "8:00")
	assert.Contains(t, out, "21:30")
}

func TestProgressCmd(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app, []domain.Task{
		testutil.NewTestTask("A", testutil.Completed()),
		testutil.NewTestTask("B"),
		testutil.NewTestTask("C", testutil.WithDueDate("2024-03-11")),
	}, nil)

	out, err := executeCmd(t, app, "progress")
	require.NoError(t, err)
	assert.Contains(t, out, "1 of 2 done")
	assert.Contains(t, out, "50%")
}

// --- month / event ---

func TestMonthCmd_ShowsEventsOfDisplayedMonth(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app, nil, []domain.MonthlyEvent{
		testutil.NewTestEvent("Midterm", "2024-03-15"),
		testutil.NewTestEvent("Spring break", "2024-04-01"),
	})

	out, err := executeCmd(t, app, "month")
	require.NoError(t, err)
	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "Midterm")
	assert.NotContains(t, out, "Spring break")

	out, err = executeCmd(t, app, "month", "--month", "2024-04")
	require.NoError(t, err)
	assert.Contains(t, out, "April 2024")
	assert.Contains(t, out, "Spring break")
}

func TestMonthCmd_ShiftFromMonth(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "month", "--month", "2024-01", "--shift", "-2")
	require.NoError(t, err)
	assert.Contains(t, out, "November 2023")
}

func TestMonthCmd_BadMonthFlag(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "month", "--month", "2024-13")
	require.Error(t, err)
}

func TestEventAdd_ByFlags(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "event", "add", "--title", "Quiz", "--start", "2024-03-20", "--notes", "ch 4")
	require.NoError(t, err)
	assert.Contains(t, out, "Added event")

	events := app.Board.MonthlyEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "Quiz", events[0].Title)
	assert.Equal(t, "2024-03-20", events[0].StartDate)
	assert.Equal(t, "", events[0].EndDate)
	assert.Equal(t, "ch 4", events[0].Notes)
}

func TestEventAdd_DayPrefillsStart(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "event", "add", "--month", "2024-02", "--day", "29", "--title", "Leap")
	require.NoError(t, err)

	events := app.Board.MonthlyEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "2024-02-29", events[0].StartDate)
	assert.Equal(t, "", events[0].EndDate)
	_, open := app.Board.Modal()
	assert.False(t, open)
}

func TestEventAdd_DayOutsideMonth(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "event", "add", "--month", "2023-02", "--day", "29", "--title", "Nope")
	require.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	assert.Empty(t, app.Board.MonthlyEvents())
}

func TestEventEdit_ByTitleKeepsUnsetFields(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app, nil, []domain.MonthlyEvent{
		testutil.NewTestEvent("Seminar", "2024-03-05", testutil.WithNotes("room 2")),
	})

	out, err := executeCmd(t, app, "event", "edit", "Seminar", "--end", "2024-03-06")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated event")

	ev := app.Board.MonthlyEvents()[0]
	assert.Equal(t, "2024-03-05", ev.StartDate)
	assert.Equal(t, "2024-03-06", ev.EndDate)
	assert.Equal(t, "room 2", ev.Notes)
}

func TestEventEdit_ByID(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app, nil, []domain.MonthlyEvent{
		testutil.NewTestEvent("Dup", "2024-03-05", testutil.WithEventID(11)),
		testutil.NewTestEvent("Dup", "2024-03-07", testutil.WithEventID(22)),
	})

	_, err := executeCmd(t, app, "event", "edit", "--id", "22", "--title", "Second")
	require.NoError(t, err)

	events := app.Board.MonthlyEvents()
	assert.Equal(t, "Dup", events[0].Title)
	assert.Equal(t, "Second", events[1].Title)
}

func TestEventEdit_UnknownTitle(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "event", "edit", "Ghost", "--title", "X")
	require.ErrorIs(t, err, domain.ErrLookupMiss)
}

func TestEventShow(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app, nil, []domain.MonthlyEvent{
		testutil.NewTestEvent("Defense", "2024-03-28", testutil.WithNotes("bring slides"), testutil.WithEventID(42)),
	})

	out, err := executeCmd(t, app, "event", "show", "Defense")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-03-28")
	assert.Contains(t, out, "bring slides")

	out, err = executeCmd(t, app, "event", "show", "--id", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "Defense")
}

func TestEventMove_RelocatesToSingleDay(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app, nil, []domain.MonthlyEvent{
		testutil.NewTestEvent("Trip", "2024-03-05", testutil.WithEndDate("2024-03-08"), testutil.WithEventID(7)),
	})

	_, err := executeCmd(t, app, "event", "move", "7", "18")
	require.NoError(t, err)

	ev := app.Board.MonthlyEvents()[0]
	assert.Equal(t, "2024-03-18", ev.StartDate)
	assert.Equal(t, "2024-03-18", ev.EndDate)
	assert.Equal(t, service.DragNone, app.Board.Drag().Kind)
}

func TestEventMove_UnknownID(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "event", "move", "999", "3")
	require.ErrorIs(t, err, domain.ErrLookupMiss)
}

// --- search ---

func TestSearchCmd_CoversTasksAndEvents(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app,
		[]domain.Task{
			testutil.NewTestTask("Physics homework"),
			testutil.NewTestTask("Groceries"),
		},
		[]domain.MonthlyEvent{
			testutil.NewTestEvent("Lab", "2024-03-12", testutil.WithNotes("physics wing")),
			testutil.NewTestEvent("Dentist", "2024-03-13"),
		})

	out, err := executeCmd(t, app, "search", "physics")
	require.NoError(t, err)
	assert.Contains(t, out, "Physics homework")
	assert.Contains(t, out, "Lab")
	assert.NotContains(t, out, "Groceries")
	assert.NotContains(t, out, "Dentist")
}

// --- theme ---

func TestThemeCmd_ToggleRoundTrip(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	out, err := executeCmd(t, app, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme: light")

	_, err = executeCmd(t, app, "theme", "toggle")
	require.NoError(t, err)
	v, err := app.Store.Get(ctx, repository.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	_, err = executeCmd(t, app, "theme", "toggle")
	require.NoError(t, err)
	_, err = app.Store.Get(ctx, repository.KeyTheme)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestThemeCmd_Unknown(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "theme", "sepia")
	require.Error(t, err)
}

// --- export / import ---

func TestExportImport_FileRoundTrip(t *testing.T) {
	src := testApp(t)
	seedBoard(t, src,
		[]domain.Task{testutil.NewTestTask("Carry over", testutil.WithTags("a", "b"))},
		[]domain.MonthlyEvent{testutil.NewTestEvent("Concert", "2024-03-22")})

	path := filepath.Join(t.TempDir(), "board.json")
	_, err := executeCmd(t, src, "export", path)
	require.NoError(t, err)

	dst := testApp(t)
	out, err := executeCmd(t, dst, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 tasks, 0 weekly and 1 monthly events.")

	assert.Equal(t, src.Board.Tasks(), dst.Board.Tasks())
	assert.Equal(t, src.Board.MonthlyEvents(), dst.Board.MonthlyEvents())
}

func TestExport_Stdout(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app, []domain.Task{testutil.NewTestTask("Visible")}, nil)

	out, err := executeCmd(t, app, "export")
	require.NoError(t, err)
	assert.Contains(t, out, `"version": 1`)
	assert.Contains(t, out, `"title": "Visible"`)
}

func TestImport_RejectsBadFile(t *testing.T) {
	app := testApp(t)
	seedBoard(t, app, []domain.Task{testutil.NewTestTask("Survivor")}, nil)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := executeCmd(t, app, "import", path)
	require.ErrorIs(t, err, domain.ErrParseFailure)
	require.Len(t, app.Board.Tasks(), 1)
	assert.Equal(t, "Survivor", app.Board.Tasks()[0].Title)
}

func TestImport_FromStdin(t *testing.T) {
	app := testApp(t)

	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(`{"version":1,"tasks":[{"id":5,"title":"Piped","priority":"low","dueDate":"","tags":[""],"completed":false}]}`))
	root.SetArgs([]string{"import", "-"})
	require.NoError(t, root.Execute())

	require.Len(t, app.Board.Tasks(), 1)
	assert.Equal(t, "Piped", app.Board.Tasks()[0].Title)
	assert.Empty(t, app.Board.MonthlyEvents())
}

// --- browse ---

func TestBrowseCmd_NeedsTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "browse")
	require.Error(t, err)
}

func TestRootCmd_DegradedCollectionStillLoads(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Store.Set(context.Background(), repository.KeyTasks, "{broken"))

	out, err := executeCmd(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks match.")
}
