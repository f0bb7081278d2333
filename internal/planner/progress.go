package planner

import (
	"math"

	"github.com/alexanderramin/planboard/internal/domain"
)

// Progress summarizes completion of the tasks due on one day.
type Progress struct {
	Due       int
	Completed int
	Percent   int
}

// TodayProgress counts the tasks due today and how many of them are done.
// Percent is rounded to the nearest whole number and is 0 when nothing is due.
func TodayProgress(tasks []domain.Task, today string) Progress {
	var p Progress
	for _, t := range tasks {
		if !t.IsDueOn(today) {
			continue
		}
		p.Due++
		if t.Completed {
			p.Completed++
		}
	}
	if p.Due > 0 {
		p.Percent = int(math.Round(float64(p.Completed) / float64(p.Due) * 100))
	}
	return p
}
