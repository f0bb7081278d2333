package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// boardHuhTheme styles forms with the active palette.
func boardHuhTheme() *huh.Theme {
	p := formatter.Active()
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(p.Header).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(p.Header)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(p.Green)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(p.Fg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(p.Header)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(p.Header)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(p.Fg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(p.Dim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(p.Dim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(p.Dim)

	return t
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2024-03-15").
		Value(value).
		Validate(validateOptionalDate)
}

// taskForm edits a task draft in place.
func taskForm(in *service.TaskInput) *huh.Form {
	options := make([]huh.Option[domain.Priority], 0, len(domain.Priorities))
	for _, p := range domain.Priorities {
		options = append(options, huh.NewOption(string(p), p))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&in.Title),
			huh.NewSelect[domain.Priority]().Title("Priority").Options(options...).Value(&in.Priority),
			dateInput("Due Date (YYYY-MM-DD, blank for none)", &in.DueDate),
			huh.NewInput().Title("Tags").Description("comma-separated").Value(&in.Tags),
		),
	).WithTheme(boardHuhTheme()).WithShowHelp(false)
}

// eventForm edits an event draft in place.
func eventForm(d *service.EventDraft) *huh.Form {
	title := "New Event"
	if d.IsEdit() {
		title = "Edit Event"
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(title).Placeholder("Title").Value(&d.Title),
			dateInput("Start Date", &d.StartDate),
			dateInput("End Date", &d.EndDate),
			huh.NewText().Title("Notes").Value(&d.Notes),
		),
	).WithTheme(boardHuhTheme()).WithShowHelp(false)
}
