package domain

import (
	"fmt"
	"strconv"
)

// WeekDays are the columns of the weekly grid, Monday first.
var WeekDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

const (
	firstSlotHour = 8
	lastSlotHour  = 21
)

// SlotCount is the number of half-hour rows in the weekly grid.
const SlotCount = (lastSlotHour - firstSlotHour + 1) * 2

var timeSlots = buildTimeSlots()

func buildTimeSlots() []string {
	slots := make([]string, 0, SlotCount)
	for h := firstSlotHour; h <= lastSlotHour; h++ {
		hour := strconv.Itoa(h)
		slots = append(slots, hour+":00", hour+":30")
	}
	return slots
}

// TimeSlots returns the half-hour labels from 8:00 to 21:30. Hours carry
// no leading zero.
func TimeSlots() []string {
	return append([]string(nil), timeSlots...)
}

// DayIndex returns the column of a day label, or -1.
func DayIndex(day string) int {
	for i, d := range WeekDays {
		if d == day {
			return i
		}
	}
	return -1
}

// SlotIndex returns the row of a time label, or -1.
func SlotIndex(slot string) int {
	for i, s := range timeSlots {
		if s == slot {
			return i
		}
	}
	return -1
}

// ValidateSlot checks that day and slot name a cell of the weekly grid.
func ValidateSlot(day, slot string) error {
	if DayIndex(day) < 0 {
		return fmt.Errorf("%w: unknown day %q", ErrInvalidSlot, day)
	}
	if SlotIndex(slot) < 0 {
		return fmt.Errorf("%w: unknown time %q", ErrInvalidSlot, slot)
	}
	return nil
}

// WeeklyEvent is a snapshot of a task placed into the weekly grid. It keeps
// the task's fields as they were when scheduled; later edits to the task
// do not reach it.
type WeeklyEvent struct {
	Task
	Day  string `json:"day"`
	Time string `json:"time"`
}

// NewWeeklyEvent copies t into a weekly event at the given cell.
func NewWeeklyEvent(t Task, day, slot string) WeeklyEvent {
	return WeeklyEvent{Task: t.Clone(), Day: day, Time: slot}
}
