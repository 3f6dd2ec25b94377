package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Browse the kanban board and move tasks between columns",
		Long: "Interactive kanban board.\n\n" +
			"  h/l  switch column    j/k  select task\n" +
			"  < >  move task        q    quit",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive {
				return fmt.Errorf("board needs an interactive terminal; use 'quadro kanban' instead")
			}
			ctx := cmd.Context()
			projectID, err := resolveProjectForFlag(ctx, app, project)
			if err != nil {
				return err
			}
			p := tea.NewProgram(
				newBoardModel(ctx, app, projectID),
				tea.WithAltScreen(),
				tea.WithContext(ctx),
			)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Only tasks of this project (ID, name or prefix)")

	return cmd
}
