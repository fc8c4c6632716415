package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the acting user",
	}
	cmd.AddCommand(
		newUserListCmd(app),
		newUserCurrentCmd(app),
		newUserSwitchCmd(app),
	)
	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Provider.Users.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "ID", "Name", "Role", "Department")
			for _, u := range users {
				tw.AppendRow([]any{u.ID, u.Name, u.Role, u.Department})
			}
			tw.Render()
			return nil
		},
	}
}

func newUserCurrentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Provider.Users.Current(cmd.Context())
			if err != nil {
				return err
			}
			if user == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No current user")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%s, %s)\n", user.ID, user.Name, user.Role, user.Department)
			return nil
		},
	}
}

func newUserSwitchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <id>",
		Short: "Switch the acting user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Provider.Users.Switch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if user == nil {
				return fmt.Errorf("user %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Now acting as %s (%s)\n", user.Name, user.ID)
			return nil
		},
	}
}
