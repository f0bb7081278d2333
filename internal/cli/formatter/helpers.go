package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDue describes a YYYY-MM-DD due date relative to today. Dates
// that do not parse are shown as entered.
func RelativeDue(due, today string) string {
	if due == "" {
		return "-"
	}
	dy, dm, dd, ok := domain.ParseDate(due)
	ty, tm, td, okToday := domain.ParseDate(today)
	if !ok || !okToday {
		return due
	}
	dueAt := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	todayAt := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	days := int(dueAt.Sub(todayAt).Hours() / 24)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0:
		return fmt.Sprintf("In %dw", days/7)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	default:
		return fmt.Sprintf("%dw ago", -days/7)
	}
}

// RelativeDueStyled colors RelativeDue by urgency. Open tasks due before
// today are red.
func RelativeDueStyled(task domain.Task, today string) string {
	text := RelativeDue(task.DueDate, today)
	switch {
	case task.Completed:
		return StyleDim.Render(text)
	case task.IsOverdue(today):
		return StyleRed.Render(text)
	case task.IsDueOn(today):
		return StyleYellow.Render(text)
	}
	return StyleFg.Render(text)
}

// JoinTags renders tags as "#a #b", skipping empty ones.
func JoinTags(tags []string) string {
	var parts []string
	for _, t := range tags {
		if t != "" {
			parts = append(parts, "#"+t)
		}
	}
	return strings.Join(parts, " ")
}
