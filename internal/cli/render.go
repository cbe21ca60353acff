package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"statustable/internal/logic"
	"statustable/internal/ui/views"
	"statustable/internal/widget/statustable"
)

func cmdRender(flags *widgetFlags) *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Print the status table once and exit",
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			cfg, err := flags.load(c)
			if err != nil {
				return err
			}

			db, store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			opts, err := initialOptions(ctx, cfg, store)
			if err != nil {
				return err
			}

			findings := logic.NewMemoryFindingStore()
			if opts.WorkspaceID != nil && opts.WorkspaceID.Valid() {
				loaded, err := store.Findings(ctx, *opts.WorkspaceID)
				if err != nil {
					return err
				}
				findings.Replace(*opts.WorkspaceID, loaded)
			}

			widget, err := statustable.New(views.NewTemplates(nil), findings, opts, statustable.WithLogger(logger))
			if err != nil {
				return err
			}

			logger.Debug("rendered status table",
				"mode", widget.Mode().String(),
				"findings", findings.Len())
			_, err = fmt.Fprintln(c.Root().Writer, widget.Content())
			return err
		},
	}
}
