package cli

import (
	"fmt"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the weekly planner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeek(app.Board.WeekView(), all))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show empty time slots too")

	return cmd
}
