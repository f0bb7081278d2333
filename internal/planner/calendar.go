package planner

import (
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
)

// Navigator tracks the month the calendar displays.
type Navigator struct {
	year  int
	month time.Month
}

// NewNavigator starts on the month containing ref.
func NewNavigator(ref time.Time) Navigator {
	return NavigatorFor(ref.Year(), ref.Month())
}

// NavigatorFor starts on the given month, normalizing out-of-range months.
func NavigatorFor(year int, month time.Month) Navigator {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Navigator{year: first.Year(), month: first.Month()}
}

// ParseMonth reads a YYYY-MM month reference.
func ParseMonth(s string) (Navigator, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Navigator{}, fmt.Errorf("parsing month %q: want YYYY-MM", s)
	}
	return NewNavigator(t), nil
}

func (n Navigator) Year() int         { return n.year }
func (n Navigator) Month() time.Month { return n.month }

// Shift moves by delta months, crossing year boundaries as needed.
func (n Navigator) Shift(delta int) Navigator {
	return NavigatorFor(n.year, n.month+time.Month(delta))
}

func (n Navigator) Next() Navigator { return n.Shift(1) }
func (n Navigator) Prev() Navigator { return n.Shift(-1) }

// LeadingBlanks is the weekday of the first of the month with Sunday as 0,
// the number of empty cells before day 1 in a Sunday-first grid.
func (n Navigator) LeadingBlanks() int {
	return int(time.Date(n.year, n.month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// DaysInMonth is the day-of-month of the last day.
func (n Navigator) DaysInMonth() int {
	return time.Date(n.year, n.month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateOf renders day of the displayed month as YYYY-MM-DD.
func (n Navigator) DateOf(day int) string {
	return domain.FormatDate(n.year, n.month, day)
}

// Label is the header text, e.g. "February 2024".
func (n Navigator) Label() string {
	return fmt.Sprintf("%s %d", n.month, n.year)
}

// Key renders the month as YYYY-MM.
func (n Navigator) Key() string {
	return fmt.Sprintf("%04d-%02d", n.year, int(n.month))
}

// DayCell is one day of the month grid.
type DayCell struct {
	Day    int
	Date   string
	Events []domain.MonthlyEvent
}

// MonthView is the projection the month calendar renders.
type MonthView struct {
	Year          int
	Month         time.Month
	Label         string
	Query         string
	LeadingBlanks int
	Days          []DayCell
}

// ProjectMonth lays out the displayed month. A day lists every event whose
// start date falls on it and that matches the query, in collection order.
func ProjectMonth(nav Navigator, events []domain.MonthlyEvent, query string) MonthView {
	v := MonthView{
		Year:          nav.Year(),
		Month:         nav.Month(),
		Label:         nav.Label(),
		Query:         query,
		LeadingBlanks: nav.LeadingBlanks(),
		Days:          make([]DayCell, nav.DaysInMonth()),
	}
	for i := range v.Days {
		day := i + 1
		cell := DayCell{Day: day, Date: nav.DateOf(day)}
		for _, ev := range events {
			if ev.OccursOn(v.Year, v.Month, day) && MatchesEventQuery(ev, query) {
				cell.Events = append(cell.Events, ev)
			}
		}
		v.Days[i] = cell
	}
	return v
}

// EventCount counts the events shown in the view.
func (v MonthView) EventCount() int {
	n := 0
	for _, d := range v.Days {
		n += len(d.Events)
	}
	return n
}

// Weeks splits the grid into Sunday-first rows of seven. Blank cells have
// Day 0.
func (v MonthView) Weeks() [][]DayCell {
	cells := make([]DayCell, v.LeadingBlanks, v.LeadingBlanks+len(v.Days))
	cells = append(cells, v.Days...)
	for len(cells)%7 != 0 {
		cells = append(cells, DayCell{})
	}
	weeks := make([][]DayCell, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}
