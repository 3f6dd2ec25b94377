package cli

import (
	"fmt"

	"github.com/alexanderramin/quadro/internal/cli/formatter"
	"github.com/alexanderramin/quadro/internal/contract"
	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"today"},
		Short:   "Show overdue, today and tomorrow",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}
}

func runDashboard(cmd *cobra.Command, app *App) error {
	now := app.now()
	resp, err := app.Board.Dashboard(cmd.Context(), contract.DashboardRequest{Now: &now})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(resp))
	return nil
}

func newKanbanCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "kanban",
		Short: "Print the kanban board, one column per status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKanban(cmd, app, project)
		},
	}
	cmd.Flags().StringVarP(&project, "project", "p", "", "Only tasks of this project (ID, name or prefix)")
	return cmd
}

func runKanban(cmd *cobra.Command, app *App, project string) error {
	ctx := cmd.Context()
	projectID, err := resolveProjectForFlag(ctx, app, project)
	if err != nil {
		return err
	}
	resp, err := app.Board.Kanban(ctx, contract.KanbanRequest{ProjectID: projectID})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatKanban(resp))
	return nil
}

func newBacklogCmd(app *App) *cobra.Command {
	var project string
	var priority domain.Priority

	cmd := &cobra.Command{
		Use:   "backlog",
		Short: "List backlog tasks by priority and deadline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBacklog(cmd, app, project, priority)
		},
	}
	cmd.Flags().StringVarP(&project, "project", "p", "", "Only tasks of this project (ID, name or prefix)")
	cmd.Flags().Var(priorityFlag(&priority), "priority", "Only this priority ("+choices(domain.AllPriorities())+")")
	return cmd
}

func runBacklog(cmd *cobra.Command, app *App, project string, priority domain.Priority) error {
	ctx := cmd.Context()
	projectID, err := resolveProjectForFlag(ctx, app, project)
	if err != nil {
		return err
	}
	resp, err := app.Board.Backlog(ctx, contract.BacklogRequest{ProjectID: projectID, Priority: priority})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskList("Backlog", resp.Tasks, app.now()))
	return nil
}
