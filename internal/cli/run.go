package cli

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"statustable/internal/config"
	"statustable/internal/eventbus"
	"statustable/internal/ui"
)

// defaultRunLogFile keeps logs off the terminal the TUI draws on
const defaultRunLogFile = "statustable.log"

func cmdRun(loggerCfg *config.Logger, flags *widgetFlags) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Start the interactive status table (default)",
		Action: func(ctx context.Context, c *cli.Command) error {
			if loggerCfg.File == "" {
				fileCfg := *loggerCfg
				fileCfg.File = defaultRunLogFile
				logger, closeFn, err := fileCfg.Configure(nil)
				if err != nil {
					return err
				}
				defer closeFn()
				slog.SetDefault(logger)
				ctx = ctxlog.With(ctx, logger)
			}
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

			initial, err := initialOptions(ctx, cfg, store)
			if err != nil {
				return err
			}

			bus := eventbus.New(logger)
			defer bus.Close()

			model, err := ui.NewModel(ctx, bus, store, initial, logger)
			if err != nil {
				return err
			}

			opts := []tea.ProgramOption{tea.WithContext(ctx)}
			if cfg.UI.AltScreen {
				opts = append(opts, tea.WithAltScreen())
			}
			p := tea.NewProgram(model, opts...)
			unsubscribe := model.ForwardEvents(p.Send)
			defer unsubscribe()

			logger.Info("Starting UI",
				slog.String("db", cfg.Database.Path),
				slog.String("mode", model.Widget().Mode().String()),
			)
			if _, err := p.Run(); err != nil {
				return err
			}
			logger.Info("UI exited normally")

			if cfg.UI.RememberSelection {
				state := model.Widget().State()
				cfg.Widget.SetSelection(state.WorkspaceID, state.Scans)
				cfg.Widget.Status = state.Status.String()
				if err := config.Save(cfg, flags.configPath()); err != nil {
					return err
				}
				logger.Info("Selection saved", slog.String("path", flags.configPath()))
			}
			return nil
		},
	}
}
