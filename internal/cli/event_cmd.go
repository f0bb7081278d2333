package cli

import (
	"fmt"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/planner"
	"github.com/alexanderramin/planboard/internal/service"
	"github.com/spf13/cobra"
)

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "event",
		Aliases: []string{"events", "e"},
		Short:   "Manage monthly calendar events",
	}

	cmd.AddCommand(
		newEventAddCmd(app),
		newEventEditCmd(app),
		newEventShowCmd(app),
		newEventMoveCmd(app),
	)

	return cmd
}

// eventFlags are the event form fields as command flags. Only flags the
// user set end up in the EventInput.
type eventFlags struct {
	title, start, end, notes string
}

func (f *eventFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Event title")
	cmd.Flags().StringVar(&f.start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Notes")
}

func (f *eventFlags) input(cmd *cobra.Command) service.EventInput {
	var in service.EventInput
	if cmd.Flags().Changed("title") {
		in.Title = &f.title
	}
	if cmd.Flags().Changed("start") {
		in.StartDate = &f.start
	}
	if cmd.Flags().Changed("end") {
		in.EndDate = &f.end
	}
	if cmd.Flags().Changed("notes") {
		in.Notes = &f.notes
	}
	return in
}

// runEventForm lets the user edit the open draft, then saves every field.
func runEventForm(app *App, draft service.EventDraft, in service.EventInput) (service.EventInput, error) {
	if err := requireInteractive(app); err != nil {
		return in, err
	}
	for _, pair := range []struct {
		src *string
		dst *string
	}{
		{in.Title, &draft.Title},
		{in.StartDate, &draft.StartDate},
		{in.EndDate, &draft.EndDate},
		{in.Notes, &draft.Notes},
	} {
		if pair.src != nil {
			*pair.dst = *pair.src
		}
	}
	if err := eventForm(&draft).Run(); err != nil {
		return in, err
	}
	return service.FullEventInput(draft.Title, draft.StartDate, draft.EndDate, draft.Notes), nil
}

func newEventAddCmd(app *App) *cobra.Command {
	var fields eventFlags
	var day int
	var interactive bool
	month := &monthValue{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an event, optionally on a day of the displayed month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selectMonth(app.Board, month, 0)

			var draft service.EventDraft
			var err error
			if day > 0 {
				if draft, err = app.Board.OpenDayCell(day); err != nil {
					return err
				}
			}

			in := fields.input(cmd)
			if interactive {
				if in, err = runEventForm(app, draft, in); err != nil {
					app.Board.CloseModal()
					return err
				}
			}

			var view planner.MonthView
			if day > 0 {
				view, err = app.Board.SaveModal(cmd.Context(), in)
			} else {
				view, err = app.Board.CreateOrUpdateMonthlyEvent(cmd.Context(), nil, in)
			}
			if err != nil {
				return err
			}

			events := app.Board.MonthlyEvents()
			created := events[len(events)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added event %s on %s %s\n",
				formatter.StyleGreen.Render("✔"), formatter.Bold(created.Title), created.StartDate,
				formatter.Dim(fmt.Sprintf("(id %s, %d in %s)", created.ID, view.EventCount(), view.Label)))
			return nil
		},
	}

	fields.register(cmd)
	cmd.Flags().IntVar(&day, "day", 0, "Day of the displayed month to pre-fill as the start date")
	cmd.Flags().Var(month, "month", "Month the --day refers to (YYYY-MM, default current)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the event in a form")

	return cmd
}

func newEventEditCmd(app *App) *cobra.Command {
	var fields eventFlags
	var byID, interactive bool

	cmd := &cobra.Command{
		Use:   "edit <title|id>",
		Short: "Edit an event, found by title (first match) or by id with --id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := openEvent(app.Board, args[0], byID)
			if err != nil {
				return err
			}
			in := fields.input(cmd)
			if interactive {
				if in, err = runEventForm(app, draft, in); err != nil {
					app.Board.CloseModal()
					return err
				}
			}
			if _, err := app.Board.SaveModal(cmd.Context(), in); err != nil {
				return err
			}
			ev, err := app.Board.FindEventByID(draft.EditingID.String())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated event %s.\n", formatter.Bold(ev.Title))
			return nil
		},
	}

	fields.register(cmd)
	cmd.Flags().BoolVar(&byID, "id", false, "Treat the argument as an event id")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Edit the event in a form")

	return cmd
}

func openEvent(board service.BoardService, ref string, byID bool) (service.EventDraft, error) {
	if byID {
		return board.OpenEventByID(ref)
	}
	return board.OpenEventByTitle(ref)
}

func newEventShowCmd(app *App) *cobra.Command {
	var byID bool

	cmd := &cobra.Command{
		Use:   "show <title|id>",
		Short: "Show an event's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			find := app.Board.FindEventByTitle
			if byID {
				find = app.Board.FindEventByID
			}
			ev, err := find(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEventDetail(ev))
			return nil
		},
	}

	cmd.Flags().BoolVar(&byID, "id", false, "Treat the argument as an event id")

	return cmd
}

func newEventMoveCmd(app *App) *cobra.Command {
	month := &monthValue{}

	cmd := &cobra.Command{
		Use:   "move <id> <day>",
		Short: "Move an event to a day of the displayed month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[1])
			if err != nil {
				return err
			}
			selectMonth(app.Board, month, 0)
			if err := app.Board.PickUpEvent(args[0]); err != nil {
				return err
			}
			view, err := app.Board.DropOnDay(cmd.Context(), day)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonth(view, app.Board.Today()))
			return nil
		},
	}

	cmd.Flags().Var(month, "month", "Target month (YYYY-MM, default current)")

	return cmd
}
