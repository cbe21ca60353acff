package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"statustable/internal/storage/sqlite"
)

func cmdMigrate(flags *widgetFlags) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply database migrations",
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

			version, dirty, err := sqlite.SchemaVersion(db)
			if err != nil {
				return err
			}

			suffix := ""
			if dirty {
				suffix = " (dirty)"
			}
			_, err = fmt.Fprintf(c.Root().Writer, "schema version %d%s\n", version, suffix)
			return err
		},
	}
}
