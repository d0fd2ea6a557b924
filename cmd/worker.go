package main

import (
	"flavor-reservation/cmd/bootstrap"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run the lease job runner, the lease event consumer and the periodic janitor",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runApp(fx.New(bootstrap.WorkerProcessModule))
		},
	}
}
