package cli

import (
	"fmt"

	"github.com/alexanderramin/quadro/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile",
	}
	cmd.AddCommand(newProfileShowCmd(app), newProfileSetCmd(app))
	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var first, last, avatar string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields; omitted flags keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("first-name") {
				p.FirstName = first
			}
			if flags.Changed("last-name") {
				p.LastName = last
			}
			if flags.Changed("avatar") {
				p.AvatarURL = avatar
			}
			if err := app.Profile.Update(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first-name", "", "First name")
	cmd.Flags().StringVar(&last, "last-name", "", "Last name")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar image URL (http or https)")

	return cmd
}
