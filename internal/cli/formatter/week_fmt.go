package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planboard/internal/planner"
)

const weekCellWidth = 14

// FormatWeek renders the weekly grid. Rows without events are omitted
// unless showEmpty is set.
func FormatWeek(grid planner.WeekGrid, showEmpty bool) string {
	var b strings.Builder
	b.WriteString(Header("Week"))
	b.WriteString("\n")

	headers := append([]string{"TIME"}, grid.Days...)
	var rows [][]string
	for s, tm := range grid.Times {
		row := []string{Dim(tm)}
		busy := false
		for d := range grid.Days {
			cell := grid.Cells[d][s]
			if len(cell.Events) > 0 {
				busy = true
			}
			row = append(row, weekCell(cell))
		}
		if busy || showEmpty {
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		b.WriteString(Dim("Nothing scheduled this week."))
		b.WriteString("\n")
	} else {
		b.WriteString(RenderTable(headers, rows))
	}
	if grid.Unplaced > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("%d event(s) outside the grid were skipped.", grid.Unplaced)))
		b.WriteString("\n")
	}
	return b.String()
}

func weekCell(slot planner.Slot) string {
	if len(slot.Events) == 0 {
		return Dim("·")
	}
	first := slot.Events[0]
	text := PriorityStyle(first.Priority).Render(Truncate(first.Title, weekCellWidth))
	if extra := len(slot.Events) - 1; extra > 0 {
		text += Dim(fmt.Sprintf(" +%d", extra))
	}
	return text
}
