package cli

import (
	"fmt"

	"github.com/alexanderramin/quadro/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write every project, task and the profile to a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Transfer.Export(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %d projects and %d tasks to %s\n",
				formatter.StyleGreen.Render("✔"), res.Projects, res.Tasks, res.Path)
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Merge a JSON snapshot into the store (comments and trailing commas allowed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Transfer.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %d projects and %d tasks from %s\n",
				formatter.StyleGreen.Render("✔"), res.Projects, res.Tasks, res.Path)
			return nil
		},
	}
}
