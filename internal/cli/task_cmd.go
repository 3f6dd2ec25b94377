package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/quadro/internal/cli/formatter"
	"github.com/alexanderramin/quadro/internal/contract"
	"github.com/alexanderramin/quadro/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks", "t"},
		Short:   "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskUpdateCmd(app),
		newTaskStatusCmd(app),
		newTaskPeriodCmd(app),
		newTaskPriorityCmd(app),
		newTaskArchiveCmd(app, true),
		newTaskArchiveCmd(app, false),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var project string
	draft := taskDraft{
		Period:   domain.PeriodMorning,
		Priority: domain.PriorityStandard,
		Status:   domain.StatusBacklog,
	}

	cmd := &cobra.Command{
		Use:   "add [TITLE]",
		Short: "Create a new task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 1 {
				draft.Title = args[0]
			}
			if draft.Deadline == "" {
				draft.Deadline = domain.FormatDate(app.now())
			}
			if project != "" {
				projectID, err := resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
				draft.ProjectID = projectID
			}

			if draft.Title == "" || draft.ProjectID == "" {
				if !app.IsInteractive {
					return fmt.Errorf("title and --project are required")
				}
				projects, err := app.Projects.List(ctx)
				if err != nil {
					return err
				}
				if len(projects) == 0 {
					return fmt.Errorf("no projects yet: create one with 'quadro project add'")
				}
				if err := runForm(taskForm(projects, &draft, app.location())); err != nil {
					return err
				}
			}

			t, err := draft.build(app.location())
			if err != nil {
				return err
			}
			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskChanged("Created task", t))
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Project (ID, name or prefix)")
	cmd.Flags().StringVarP(&draft.Deadline, "deadline", "d", "", "Deadline (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&draft.Description, "description", "", "Longer description")
	cmd.Flags().Var(periodFlag(&draft.Period), "period", "Period of the day ("+choices(domain.AllPeriods())+")")
	cmd.Flags().Var(priorityFlag(&draft.Priority), "priority", "Priority ("+choices(domain.AllPriorities())+")")
	cmd.Flags().Var(statusFlag(&draft.Status), "status", "Initial status ("+choices(domain.AllStatuses())+")")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var project string
	var req contract.ListRequest

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks by priority and deadline",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectForFlag(ctx, app, project)
			if err != nil {
				return err
			}
			req.ProjectID = projectID
			resp, err := app.Board.List(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskList("Tasks", resp.Tasks, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Only tasks of this project")
	cmd.Flags().Var(statusFlag(&req.Status), "status", "Only this status ("+choices(domain.AllStatuses())+")")
	cmd.Flags().Var(priorityFlag(&req.Priority), "priority", "Only this priority ("+choices(domain.AllPriorities())+")")
	cmd.Flags().BoolVarP(&req.IncludeArchived, "archived", "a", false, "Include archived tasks")

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show every field of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := loadTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			view := contract.TaskView{Task: *t}
			if p, err := app.Projects.GetByID(ctx, t.ProjectID); err == nil {
				view.ProjectName = p.Name
				view.ProjectColor = p.Color
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskDetail(view, app.now()))
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var title, project, deadline, description string
	var period domain.Period
	var priority domain.Priority
	var status domain.Status

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := loadTask(ctx, app, args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				t.Title = title
			}
			if flags.Changed("project") {
				projectID, err := resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
				t.ProjectID = projectID
			}
			if flags.Changed("deadline") {
				d, err := domain.ParseDate(deadline, app.location())
				if err != nil {
					return err
				}
				t.Deadline = d
			}
			if flags.Changed("description") {
				t.Description = description
			}
			if flags.Changed("period") {
				t.Period = period
			}
			if flags.Changed("priority") {
				t.Priority = priority
			}
			if flags.Changed("status") {
				t.Status = status
			}

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskChanged("Updated task", t))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVarP(&project, "project", "p", "", "Move to this project")
	cmd.Flags().StringVarP(&deadline, "deadline", "d", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "Longer description")
	cmd.Flags().Var(periodFlag(&period), "period", "Period of the day ("+choices(domain.AllPeriods())+")")
	cmd.Flags().Var(priorityFlag(&priority), "priority", "Priority ("+choices(domain.AllPriorities())+")")
	cmd.Flags().Var(statusFlag(&status), "status", "Status ("+choices(domain.AllStatuses())+")")

	return cmd
}

func newTaskStatusCmd(app *App) *cobra.Command {
	var next, prev bool

	cmd := &cobra.Command{
		Use:   "status ID [STATUS]",
		Short: "Move a task to another column",
		Long:  "Set the status explicitly, or step through " + choices(domain.AllStatuses()) + " with --next and --prev.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := loadTask(ctx, app, args[0])
			if err != nil {
				return err
			}

			var target domain.Status
			switch {
			case len(args) == 2 && (next || prev):
				return fmt.Errorf("give either a status or --next/--prev, not both")
			case len(args) == 2:
				if target, err = domain.ParseStatus(args[1]); err != nil {
					return err
				}
			case next && !prev:
				target = t.Status.Next()
			case prev && !next:
				target = t.Status.Prev()
			default:
				return fmt.Errorf("a status, --next or --prev is required")
			}

			updated, err := app.Tasks.SetStatus(ctx, t.ID, target)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskChanged("Moved to "+updated.Status.Label()+":", updated))
			return nil
		},
	}

	cmd.Flags().BoolVar(&next, "next", false, "Advance one column")
	cmd.Flags().BoolVar(&prev, "prev", false, "Go back one column")

	return cmd
}

func newTaskPeriodCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "period ID PERIOD",
		Short: "Set the period of the day (" + choices(domain.AllPeriods()) + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			period, err := domain.ParsePeriod(args[1])
			if err != nil {
				return err
			}
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.SetPeriod(ctx, id, period)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskChanged("Period set to "+t.Period.Label()+":", t))
			return nil
		},
	}
}

func newTaskPriorityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "priority ID PRIORITY",
		Short: "Set the priority (" + choices(domain.AllPriorities()) + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			priority, err := domain.ParsePriority(args[1])
			if err != nil {
				return err
			}
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.SetPriority(ctx, id, priority)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskChanged("Priority set to "+t.Priority.Label()+":", t))
			return nil
		},
	}
}

func newTaskArchiveCmd(app *App, archive bool) *cobra.Command {
	use, short, verb := "archive ID", "Hide a task from every view", "Archived task"
	if !archive {
		use, short, verb = "unarchive ID", "Bring an archived task back", "Unarchived task"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := loadTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			if archive {
				err = app.Tasks.Archive(ctx, t.ID)
			} else {
				err = app.Tasks.Unarchive(ctx, t.ID)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskChanged(verb, t))
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := loadTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := confirm(app, fmt.Sprintf("Delete task %q", t.Title), yes); err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, t.ID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskChanged("Deleted task", t))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func loadTask(ctx context.Context, app *App, input string) (*domain.Task, error) {
	id, err := resolveTaskID(ctx, app, input)
	if err != nil {
		return nil, err
	}
	return app.Tasks.GetByID(ctx, id)
}
