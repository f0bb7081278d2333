package planner

import (
	"strings"

	"github.com/alexanderramin/planboard/internal/domain"
)

// MatchesTaskQuery reports whether the query occurs, case-insensitively,
// in the task's title or in any of its tags. An empty query matches all.
func MatchesTaskQuery(t domain.Task, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// MatchesEventQuery reports whether the query occurs, case-insensitively,
// in the event's title or notes. An empty query matches all.
func MatchesEventQuery(e domain.MonthlyEvent, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Notes), q)
}
