package repository

// Keys under which the board persists its state. Each collection key holds
// a JSON array; KeyTheme holds a bare string.
const (
	KeyTasks         = "tasks"
	KeyWeeklyEvents  = "weeklyEvents"
	KeyMonthlyEvents = "monthlyEvents"
	KeyTheme         = "theme"
)

// CollectionKeys lists the keys owned by the board state engine.
var CollectionKeys = []string{KeyTasks, KeyWeeklyEvents, KeyMonthlyEvents}
