package domain

import "time"

// MonthlyEvent is a calendar entry shown on the day of its start date.
// EndDate is stored but plays no part in layout.
type MonthlyEvent struct {
	ID        ID     `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Notes     string `json:"notes"`
}

// OccursOn reports whether the event's start date falls on the given day.
// Events with an unparseable start date occur on no day.
func (e MonthlyEvent) OccursOn(year int, month time.Month, day int) bool {
	y, m, d, ok := ParseDate(e.StartDate)
	return ok && y == year && m == month && d == day
}

// MoveTo sets both start and end date to date.
func (e *MonthlyEvent) MoveTo(date string) {
	e.StartDate = date
	e.EndDate = date
}
