package cli

import (
	"fmt"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/service"
	"github.com/spf13/cobra"
)

func newMonthCmd(app *App) *cobra.Command {
	var search string
	var shift int
	month := &monthValue{}

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show the monthly calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selectMonth(app.Board, month, shift)
			res := app.Board.Search(search)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonth(res.Month, app.Board.Today()))
			return nil
		},
	}

	cmd.Flags().Var(month, "month", "Month to show (YYYY-MM, default current)")
	cmd.Flags().IntVar(&shift, "shift", 0, "Move this many months forward (negative for back)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Only events whose title or notes contain this text")

	return cmd
}

// selectMonth points the board's calendar at the --month flag, then steps
// shift months from there.
func selectMonth(board service.BoardService, month *monthValue, shift int) {
	if month.set {
		board.SetMonth(month.nav)
	}
	for ; shift > 0; shift-- {
		board.NextMonth()
	}
	for ; shift < 0; shift++ {
		board.PrevMonth()
	}
}
