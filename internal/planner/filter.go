package planner

import "github.com/alexanderramin/planboard/internal/domain"

// VisibleTask pairs a task with its position in the full task collection.
// Mutations addressed from a filtered view must use Index, never the
// position within the view.
type VisibleTask struct {
	Index int
	Task  domain.Task
}

// TaskView is the projection the task list renders.
type TaskView struct {
	Filter   domain.FilterMode
	Query    string
	Today    string
	Items    []VisibleTask
	Progress Progress
}

// FilterTasks returns the tasks that pass both the filter mode and the
// search query, in collection order. An unrecognized mode matches nothing.
func FilterTasks(tasks []domain.Task, mode domain.FilterMode, query, today string) []VisibleTask {
	var out []VisibleTask
	for i, t := range tasks {
		if !matchesFilter(t, mode, today) || !MatchesTaskQuery(t, query) {
			continue
		}
		out = append(out, VisibleTask{Index: i, Task: t})
	}
	return out
}

func matchesFilter(t domain.Task, mode domain.FilterMode, today string) bool {
	switch mode {
	case domain.FilterAll:
		return true
	case domain.FilterToday:
		return t.IsDueOn(today)
	case domain.FilterOverdue:
		return t.IsOverdue(today)
	case domain.FilterCompleted:
		return t.Completed
	case domain.FilterHigh:
		return t.Priority == domain.PriorityHigh
	}
	return false
}

// BuildTaskView filters the tasks and attaches today's progress.
func BuildTaskView(tasks []domain.Task, mode domain.FilterMode, query, today string) TaskView {
	return TaskView{
		Filter:   mode,
		Query:    query,
		Today:    today,
		Items:    FilterTasks(tasks, mode, query, today),
		Progress: TodayProgress(tasks, today),
	}
}
