package domain

import "time"

// DateLayout is the calendar date format used for due dates and event
// start dates. Dates compare correctly as plain strings in this layout.
const DateLayout = "2006-01-02"

// FormatDate renders a calendar date, normalizing out-of-range days and
// months the way time.Date does.
func FormatDate(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// ParseDate splits a YYYY-MM-DD string into its parts. ok is false for
// anything that is not a valid calendar date.
func ParseDate(s string) (year int, month time.Month, day int, ok bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return 0, 0, 0, false
	}
	return t.Year(), t.Month(), t.Day(), true
}

// Today renders the calendar date of now in its own location.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}
