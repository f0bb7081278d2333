package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSearchCmd(app *App) *cobra.Command {
	month := &monthValue{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search task titles and tags together with the displayed month's events",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selectMonth(app.Board, month, 0)
			res := app.Board.Search(strings.Join(args, " "))

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatTaskList(res.Tasks))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatMonthAgenda(res.Month))
			return nil
		},
	}

	cmd.Flags().Var(month, "month", "Month whose events are searched (YYYY-MM, default current)")

	return cmd
}

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show how many of today's tasks are done",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProgress(app.Board.Progress()))
			return nil
		},
	}
}
