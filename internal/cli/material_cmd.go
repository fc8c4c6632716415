package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/enjaz/internal/domain"
)

func newMaterialCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "material",
		Short: "Manage material stock",
	}
	cmd.AddCommand(
		newMaterialListCmd(app),
		newMaterialAdjustCmd(app),
		newMaterialMovementsCmd(app),
	)
	return cmd
}

func newMaterialListCmd(app *App) *cobra.Command {
	var lowOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List materials and stock levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			mats, err := app.Provider.Materials.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "ID", "Name", "Stock", "Unit", "Min", "Location")
			for _, m := range mats {
				if lowOnly && !m.BelowThreshold() {
					continue
				}
				stock := strconv.FormatFloat(m.CurrentStock, 'f', -1, 64)
				if m.BelowThreshold() {
					stock += " !"
				}
				tw.AppendRow([]any{m.ID, m.Name, stock, m.Unit, m.MinThreshold, m.Location})
			}
			tw.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&lowOnly, "low", false, "only materials below their reorder threshold")
	return cmd
}

func newMaterialAdjustCmd(app *App) *cobra.Command {
	var out bool
	var note string

	cmd := &cobra.Command{
		Use:   "adjust <id> <quantity>",
		Short: "Move stock in or out",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.ParseFloat(args[1], 64)
			if err != nil || qty <= 0 {
				return fmt.Errorf("quantity must be a positive number, got %q", args[1])
			}
			direction := domain.MovementInbound
			if out {
				direction = domain.MovementOutbound
			}

			ctx := cmd.Context()
			performedBy := ""
			if user, err := app.Provider.Users.Current(ctx); err == nil && user != nil {
				performedBy = user.ID
			}

			mat, err := app.Provider.Materials.AdjustStock(ctx, args[0], qty, direction, note, performedBy)
			if err != nil {
				return err
			}
			if mat == nil {
				return fmt.Errorf("material %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %v %s, now %v %s\n",
				mat.Name, direction, qty, mat.Unit, mat.CurrentStock, mat.Unit)
			return nil
		},
	}

	cmd.Flags().BoolVar(&out, "out", false, "issue stock out instead of receiving")
	cmd.Flags().StringVar(&note, "note", "", "movement note")
	return cmd
}

func newMaterialMovementsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "movements <id>",
		Short: "Show a material's movement ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := app.Provider.Materials.Movements(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "When", "Direction", "Qty", "By", "Note")
			for _, m := range moves {
				tw.AppendRow([]any{m.CreatedAt.Format("2006-01-02 15:04"), m.Direction, m.Quantity, m.PerformedBy, truncate(m.Note, 40)})
			}
			tw.Render()
			return nil
		},
	}
}
