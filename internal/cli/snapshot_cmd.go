package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/service"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write all tasks and events as JSON (stdout when no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Board.Export()
			if len(args) == 0 {
				return service.WriteSnapshot(cmd.OutOrStdout(), snap)
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			if err := service.WriteSnapshot(f, snap); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing export file: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d tasks, %d weekly and %d monthly events to %s\n",
				len(snap.Tasks), len(snap.WeeklyEvents), len(snap.MonthlyEvents), args[0])
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all tasks and events with a JSON export ('-' reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening import file: %w", err)
				}
				defer f.Close()
				r = f
			}

			snap, err := service.ReadSnapshot(r)
			if err != nil {
				return err
			}
			if err := app.Board.Import(cmd.Context(), snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %d tasks, %d weekly and %d monthly events.\n",
				formatter.StyleGreen.Render("✔"), len(snap.Tasks), len(snap.WeeklyEvents), len(snap.MonthlyEvents))
			return nil
		},
	}
}
