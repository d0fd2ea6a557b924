package main

import (
	"log/slog"
	"os"

	"flavor-reservation/internal/pkg/config"
	"flavor-reservation/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

type migrateOptions struct {
	dir      string
	atlasBin string
	url      string
	dryRun   bool
}

func newMigrateCmd() *cobra.Command {
	opts := migrateOptions{
		dir:      "migrations",
		atlasBin: "atlas",
	}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations with Atlas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			url := opts.url
			if url == "" {
				url = os.Getenv("DATABASE_URL")
			}
			if url == "" {
				cfg, err := config.LoadConfig()
				if err != nil {
					return err
				}
				url = cfg.DB.BuildDSN()
			}

			workdir, err := atlasexec.NewWorkingDir(
				atlasexec.WithMigrations(os.DirFS(opts.dir)),
			)
			if err != nil {
				return errs.Wrap(err, "failed to prepare migration directory")
			}
			defer workdir.Close()

			client, err := atlasexec.NewClient(workdir.Path(), opts.atlasBin)
			if err != nil {
				return errs.Wrap(err, "failed to initialize atlas client")
			}

			res, err := client.MigrateApply(cmd.Context(), &atlasexec.MigrateApplyParams{
				URL:    url,
				DryRun: opts.dryRun,
			})
			if err != nil {
				return errs.Wrap(err, "failed to apply migrations")
			}

			slog.Info("migrations applied",
				"applied", len(res.Applied),
				"current", res.Current,
				"target", res.Target,
				"dry_run", opts.dryRun)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", opts.dir, "migration directory")
	cmd.Flags().StringVar(&opts.atlasBin, "atlas", opts.atlasBin, "path to the atlas binary")
	cmd.Flags().StringVar(&opts.url, "url", "", "database URL (defaults to DATABASE_URL, then DB_* settings)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print pending migrations without applying them")

	return cmd
}
