package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func init() {
	// Never expose debug output because of a missing setting.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "flavor-reservation",
		Short:         "Capacity-limited flavor reservations backed by provider leases",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAPICmd(),
		newWorkerCmd(),
		newMigrateCmd(),
	)

	return root
}

// runApp starts app and blocks until it receives a shutdown signal.
func runApp(app *fx.App) error {
	if err := app.Start(context.Background()); err != nil {
		return err
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		// Shutdown errors are logged; the process still exits cleanly.
		slog.Error("failed to stop application", "error", err)
	}

	slog.Info("application stopped")
	return nil
}
