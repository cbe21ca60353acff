package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"statustable/internal/config"
)

func cmdInitConfig(flags *widgetFlags) *cli.Command {
	var force bool

	return &cli.Command{
		Name:  "init-config",
		Usage: "Write a config file with the default settings",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "Overwrite an existing config file",
				Destination: &force,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			path := flags.configPath()
			if _, err := os.Stat(path); err == nil && !force {
				return goerr.New("config file already exists, use --force to overwrite", goerr.V("path", path))
			}

			cfg := config.DefaultConfig()
			if c.IsSet("db") {
				cfg.Database.Path = flags.DBPath
			}
			if err := config.Save(cfg, path); err != nil {
				return err
			}

			_, err := fmt.Fprintf(c.Root().Writer, "wrote %s\n", path)
			return err
		},
	}
}
