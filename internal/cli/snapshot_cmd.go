package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSnapshotCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Load and print the aggregate state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.Aggregator.Load(ctx, force); err != nil {
				return fmt.Errorf("loading snapshot: %w", err)
			}
			snap := app.Aggregator.Snapshot()
			app.Log.Debug("snapshot loaded",
				zap.Int("workItems", len(snap.WorkItems)),
				zap.Int("projects", len(snap.Projects)))

			out := cmd.OutOrStdout()
			who := "(none)"
			if snap.CurrentUser != nil {
				who = fmt.Sprintf("%s (%s)", snap.CurrentUser.Name, snap.CurrentUser.ID)
			}
			fmt.Fprintf(out, "Current user: %s\n\n", who)

			tw := newTable(out, "Project", "Status", "Health", "Budget", "Spent")
			for _, p := range snap.Projects {
				tw.AppendRow([]any{p.ID + " " + p.Name, p.Status, p.Health, formatMoney(p.Budget), formatMoney(p.Spent)})
			}
			tw.Render()
			fmt.Fprintln(out)

			tw = newTable(out, "ID", "Title", "Type", "Priority", "Status")
			for _, w := range snap.WorkItems {
				tw.AppendRow([]any{w.ID, truncate(w.Title, 40), w.Type, w.Priority, w.Status})
			}
			tw.Render()

			unread := 0
			for _, n := range snap.Notifications {
				if !n.IsRead {
					unread++
				}
			}
			fmt.Fprintf(out, "\n%d notifications, %d unread\n", len(snap.Notifications), unread)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "bypass the provider cache")
	return cmd
}
