package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"statustable/internal/config"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	if err := newApp(os.Stdout, os.Stderr).Run(ctx, args); err != nil {
		return goerr.Wrap(err, "CLI execution failed")
	}
	return nil
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	var (
		loggerCfg config.Logger
		flags     widgetFlags
		closeLog  = func() error { return nil }
	)

	run := cmdRun(&loggerCfg, &flags)

	return &cli.Command{
		Name:      "statustable",
		Usage:     "Pick a finding status for the selected workspace and scans",
		Version:   "0.1.0",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     joinFlags(loggerCfg.Flags(), flags.Flags()),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closeFn, err := loggerCfg.Configure(stderr)
			if err != nil {
				return nil, err
			}
			closeLog = closeFn

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			return closeLog()
		},
		Action: run.Action,
		Commands: []*cli.Command{
			run,
			cmdRender(&flags),
			cmdSeed(&flags),
			cmdMigrate(&flags),
			cmdInitConfig(&flags),
		},
	}
}

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}
