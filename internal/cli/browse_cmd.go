package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse tasks, the week and the calendar in a full-screen view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireInteractive(app); err != nil {
				return err
			}
			p := tea.NewProgram(newBrowseModel(cmd.Context(), app.Board),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}
}
