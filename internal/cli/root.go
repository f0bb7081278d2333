package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/repository"
	"github.com/alexanderramin/planboard/internal/service"
	"github.com/spf13/cobra"
)

// App holds what CLI commands need: the board and the raw store, which
// also keeps UI preferences such as the theme.
type App struct {
	Board service.BoardService
	Store repository.KVStore
	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "planboard" command and registers all
// subcommands against the provided App. Board state is loaded before any
// subcommand runs.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "planboard",
		Short:         "Task list, weekly planner and monthly calendar",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Board.Load(cmd.Context()); err != nil {
				return err
			}
			theme, err := loadTheme(cmd.Context(), app.Store)
			if err != nil {
				return err
			}
			formatter.ApplyPalette(paletteFor(theme))
			return nil
		},
	}

	root.AddCommand(
		newTaskCmd(app),
		newWeekCmd(app),
		newMonthCmd(app),
		newEventCmd(app),
		newSearchCmd(app),
		newProgressCmd(app),
		newThemeCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newBrowseCmd(app),
	)

	return root
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task index %q: want a number from the # column", s)
	}
	return n, nil
}

func parseDay(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: want a day of the month", s)
	}
	return n, nil
}

func requireInteractive(app *App) error {
	if !app.interactive() {
		return fmt.Errorf("interactive mode needs a terminal")
	}
	return nil
}
