package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/planner"
)

const maxTitleWidth = 48

// FormatTaskList renders the filtered task list. The # column is the
// task's position in the full collection, which is what task commands take.
func FormatTaskList(view planner.TaskView) string {
	var b strings.Builder
	title := "Tasks"
	if view.Filter != "" && view.Filter != domain.FilterAll {
		title += " · " + string(view.Filter)
	}
	b.WriteString(Header(title))
	b.WriteString("\n")
	if view.Query != "" {
		b.WriteString(Dim(fmt.Sprintf("search: %q", view.Query)))
		b.WriteString("\n")
	}

	if len(view.Items) == 0 {
		b.WriteString(Dim("No tasks match."))
		b.WriteString("\n")
	} else {
		rows := make([][]string, 0, len(view.Items))
		for _, it := range view.Items {
			rows = append(rows, taskRow(it, view.Today))
		}
		b.WriteString(RenderTable([]string{"#", "", "TITLE", "PRIORITY", "DUE", "TAGS"}, rows))
	}

	b.WriteString("\n")
	b.WriteString(FormatProgress(view.Progress))
	b.WriteString("\n")
	return b.String()
}

func taskRow(it planner.VisibleTask, today string) []string {
	check := "[ ]"
	title := StyleFg.Render(Truncate(it.Task.Title, maxTitleWidth))
	if it.Task.Completed {
		check = StyleGreen.Render("[x]")
		title = StyleDim.Strikethrough(true).Render(Truncate(it.Task.Title, maxTitleWidth))
	}
	return []string{
		Dim(strconv.Itoa(it.Index)),
		check,
		title,
		PriorityIndicator(it.Task.Priority),
		RelativeDueStyled(it.Task, today),
		StyleBlue.Render(JoinTags(it.Task.Tags)),
	}
}

// FormatTaskCreated confirms a new task.
func FormatTaskCreated(t domain.Task, index int) string {
	return fmt.Sprintf("%s Added task %s %s\n", StyleGreen.Render("✔"), Bold(t.Title), Dim(fmt.Sprintf("(#%d, id %s)", index, t.ID)))
}
