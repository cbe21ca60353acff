package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"statustable/internal/storage/sqlite"
)

func cmdSeed(flags *widgetFlags) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Fill the database with demo workspaces, scans and findings",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := flags.load(c)
			if err != nil {
				return err
			}

			db, _, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			stats, err := sqlite.Seed(ctx, db)
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Database seeded",
				slog.String("db", cfg.Database.Path),
				slog.Int("workspaces", stats.Workspaces),
				slog.Int("scans", stats.Scans),
				slog.Int("findings", stats.Findings),
			)
			_, err = fmt.Fprintf(c.Root().Writer, "seeded %d workspaces, %d scans, %d findings into %s\n",
				stats.Workspaces, stats.Scans, stats.Findings, cfg.Database.Path)
			return err
		},
	}
}
