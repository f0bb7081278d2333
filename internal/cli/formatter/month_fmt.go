package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/planner"
)

var calendarHeaders = []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// FormatMonth renders the calendar grid followed by the events of the
// month, day by day. today highlights the current date when it is shown.
func FormatMonth(view planner.MonthView, today string) string {
	var b strings.Builder
	b.WriteString(Header(view.Label))
	b.WriteString("\n")
	if view.Query != "" {
		b.WriteString(Dim(fmt.Sprintf("search: %q", view.Query)))
		b.WriteString("\n")
	}
	b.WriteString(FormatMonthGrid(view, today))
	b.WriteString("\n")
	b.WriteString(FormatMonthAgenda(view))
	return b.String()
}

// FormatMonthGrid renders the Sunday-first calendar. Days holding events
// carry a count marker.
func FormatMonthGrid(view planner.MonthView, today string) string {
	var rows [][]string
	for _, week := range view.Weeks() {
		row := make([]string, 0, 7)
		for _, cell := range week {
			row = append(row, calendarCell(cell, today))
		}
		rows = append(rows, row)
	}
	return RenderTable(calendarHeaders, rows)
}

func calendarCell(cell planner.DayCell, today string) string {
	if cell.Day == 0 {
		return ""
	}
	text := strconv.Itoa(cell.Day)
	switch {
	case cell.Date == today:
		text = StyleHeader.Render(text)
	case len(cell.Events) > 0:
		text = StyleBold.Render(text)
	default:
		text = Dim(text)
	}
	if n := len(cell.Events); n > 0 {
		text += StylePurple.Render(fmt.Sprintf("•%d", n))
	}
	return text
}

// FormatMonthAgenda lists the month's events in day order.
func FormatMonthAgenda(view planner.MonthView) string {
	var rows [][]string
	for _, cell := range view.Days {
		for _, ev := range cell.Events {
			rows = append(rows, []string{
				Dim(cell.Date),
				StyleFg.Render(Truncate(ev.Title, maxTitleWidth)),
				Dim(ev.ID.String()),
				Truncate(ev.Notes, maxTitleWidth),
			})
		}
	}
	if len(rows) == 0 {
		return Dim("No events this month.") + "\n"
	}
	return RenderTable([]string{"DATE", "EVENT", "ID", "NOTES"}, rows)
}

// FormatEventDetail renders the hover card for a monthly event.
func FormatEventDetail(ev domain.MonthlyEvent) string {
	notes := ev.Notes
	if notes == "" {
		notes = Dim("none")
	}
	body := strings.Join([]string{
		fmt.Sprintf("%s %s", Dim("Start:"), ev.StartDate),
		fmt.Sprintf("%s %s", Dim("End:  "), ev.EndDate),
		fmt.Sprintf("%s %s", Dim("Notes:"), notes),
		fmt.Sprintf("%s %s", Dim("ID:   "), ev.ID),
	}, "\n")
	return RenderBox(ev.Title, body)
}
