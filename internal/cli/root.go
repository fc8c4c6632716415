package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexanderramin/enjaz/internal/core"
	"github.com/alexanderramin/enjaz/internal/repository"
)

// App holds everything CLI commands need: the resolved provider, the
// aggregation layer over it, and a logger.
type App struct {
	Provider   *repository.Provider
	Aggregator *core.Aggregator
	Log        *zap.Logger
}

// NewRootCmd creates the top-level "enjaz" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Log == nil {
		app.Log = zap.NewNop()
	}

	root := &cobra.Command{
		Use:           "enjaz",
		Short:         "Construction operations from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSnapshotCmd(app),
		newWorkCmd(app),
		newMaterialCmd(app),
		newNotifyCmd(app),
		newUserCmd(app),
	)

	return root
}
