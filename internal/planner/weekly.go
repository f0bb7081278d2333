package planner

import "github.com/alexanderramin/planboard/internal/domain"

// Slot is one half-hour cell of the weekly grid.
type Slot struct {
	Day    string
	Time   string
	Events []domain.WeeklyEvent
}

// WeekGrid holds the weekly events laid out by day column and time row.
// Cells[d][s] addresses domain.WeekDays[d] at domain.TimeSlots()[s].
type WeekGrid struct {
	Days  []string
	Times []string
	Cells [][]Slot
	// Unplaced counts events whose day or time names no cell.
	Unplaced int
}

// ProjectWeek places each event into the cell matching its day and time,
// keeping collection order within a cell.
func ProjectWeek(events []domain.WeeklyEvent) WeekGrid {
	times := domain.TimeSlots()
	g := WeekGrid{
		Days:  append([]string(nil), domain.WeekDays...),
		Times: times,
		Cells: make([][]Slot, len(domain.WeekDays)),
	}
	for d, day := range g.Days {
		g.Cells[d] = make([]Slot, len(times))
		for s, tm := range times {
			g.Cells[d][s] = Slot{Day: day, Time: tm}
		}
	}
	for _, ev := range events {
		d, s := domain.DayIndex(ev.Day), domain.SlotIndex(ev.Time)
		if d < 0 || s < 0 {
			g.Unplaced++
			continue
		}
		g.Cells[d][s].Events = append(g.Cells[d][s].Events, ev)
	}
	return g
}

// Cell returns the slot for a day and time label.
func (g WeekGrid) Cell(day, tm string) (Slot, bool) {
	d, s := domain.DayIndex(day), domain.SlotIndex(tm)
	if d < 0 || s < 0 || d >= len(g.Cells) {
		return Slot{}, false
	}
	return g.Cells[d][s], true
}

// Placed counts the events shown in the grid.
func (g WeekGrid) Placed() int {
	n := 0
	for _, col := range g.Cells {
		for _, slot := range col {
			n += len(slot.Events)
		}
	}
	return n
}
