package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/quadro/internal/cli/formatter"
	"github.com/alexanderramin/quadro/internal/config"
	"github.com/alexanderramin/quadro/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all services and settings used by CLI commands.
type App struct {
	Projects service.ProjectService
	Tasks    service.TaskService
	Profile  service.ProfileService
	Board    service.BoardService
	Transfer service.TransferService

	Config     config.Config
	ConfigPath string
	Location   *time.Location

	// IsInteractive enables huh forms and confirmation prompts.
	IsInteractive bool

	// Now overrides the wall clock in tests.
	Now func() time.Time
}

func (a *App) location() *time.Location {
	if a.Location != nil {
		return a.Location
	}
	return time.Local
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now().In(a.location())
	}
	return time.Now().In(a.location())
}

// NewRootCmd creates the top-level "quadro" command and registers all
// subcommands against the provided App. Run without a subcommand it shows
// the configured default view.
func NewRootCmd(app *App) *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:           "quadro",
		Short:         "Personal kanban, backlog and daily dashboard",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				formatter.SetColorEnabled(false)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDefaultView(cmd, app)
		},
	}

	root.PersistentFlags().StringVar(&app.ConfigPath, "config", app.ConfigPath, "Path to config.toml")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newDashboardCmd(app),
		newKanbanCmd(app),
		newBacklogCmd(app),
		newBoardCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newProfileCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newConfigCmd(app),
	)

	return root
}

func runDefaultView(cmd *cobra.Command, app *App) error {
	switch app.Config.DefaultView {
	case config.ViewKanban:
		return runKanban(cmd, app, "")
	case config.ViewBacklog:
		return runBacklog(cmd, app, "", "")
	case config.ViewDashboard, "":
		return runDashboard(cmd, app)
	default:
		return fmt.Errorf("unknown default view %q", app.Config.DefaultView)
	}
}
