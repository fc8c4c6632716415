package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/enjaz/internal/domain"
)

func newNotifyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Manage notifications",
	}
	cmd.AddCommand(
		newNotifyListCmd(app),
		newNotifyReadAllCmd(app),
		newNotifyPrefsCmd(app),
	)
	return cmd
}

// currentUserID resolves the acting user, preferring an explicit flag value.
func currentUserID(app *App, cmd *cobra.Command, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	user, err := app.Provider.Users.Current(cmd.Context())
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("no current user; pass --user")
	}
	return user.ID, nil
}

func newNotifyListCmd(app *App) *cobra.Command {
	var userID string
	var unreadOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := currentUserID(app, cmd, userID)
			if err != nil {
				return err
			}
			notifs, err := app.Provider.Notifications.ListByUser(cmd.Context(), uid)
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "When", "Title", "Message", "Read")
			for _, n := range notifs {
				if unreadOnly && n.IsRead {
					continue
				}
				read := ""
				if n.IsRead {
					read = "yes"
				}
				tw.AppendRow([]any{n.CreatedAt.Format("2006-01-02 15:04"), truncate(n.Title, 30), truncate(n.Message, 50), read})
			}
			tw.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id (defaults to the current user)")
	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "only unread notifications")
	return cmd
}

func newNotifyReadAllCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "read-all",
		Short: "Mark all of a user's notifications read",
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := currentUserID(app, cmd, userID)
			if err != nil {
				return err
			}
			if err := app.Provider.Notifications.MarkAllRead(cmd.Context(), uid); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked all notifications read for %s\n", uid)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id (defaults to the current user)")
	return cmd
}

func newNotifyPrefsCmd(app *App) *cobra.Command {
	var userID string
	var dnd, noDnd bool

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change notification preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			uid, err := currentUserID(app, cmd, userID)
			if err != nil {
				return err
			}
			prefs, err := app.Provider.Notifications.Preferences(ctx, uid)
			if err != nil {
				return err
			}

			if dnd || noDnd {
				prefs.DndEnabled = dnd
				if err := app.Provider.Notifications.SavePreferences(ctx, *prefs); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Preferences for %s (do not disturb: %v)\n\n", prefs.UserID, prefs.DndEnabled)
			tw := newTable(out, "Channel", "Email", "In-app", "Push")
			appendChannel := func(name string, c domain.ChannelPreference) {
				tw.AppendRow([]any{name, c.Email, c.InApp, c.Push})
			}
			appendChannel("critical", prefs.Channels.Critical)
			appendChannel("mentions", prefs.Channels.Mentions)
			appendChannel("updates", prefs.Channels.Updates)
			tw.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id (defaults to the current user)")
	cmd.Flags().BoolVar(&dnd, "dnd", false, "enable do not disturb")
	cmd.Flags().BoolVar(&noDnd, "no-dnd", false, "disable do not disturb")
	cmd.MarkFlagsMutuallyExclusive("dnd", "no-dnd")
	return cmd
}
