package cli

import (
	"context"
	"database/sql"

	"github.com/urfave/cli/v3"

	"statustable/internal/config"
	"statustable/internal/domain"
	"statustable/internal/logic"
	"statustable/internal/storage/sqlite"
	"statustable/internal/widget/statustable"
)

// widgetFlags override the config file
type widgetFlags struct {
	ConfigPath string
	DBPath     string
	Workspace  int
	Scans      []int64
	Status     string
}

func (f *widgetFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Config file path (default: user config dir)",
			Sources:     cli.EnvVars(config.EnvPrefix + "_CONFIG"),
			Destination: &f.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "db",
			Usage:       "Findings database path",
			Category:    "Widget",
			Destination: &f.DBPath,
		},
		&cli.IntFlag{
			Name:        "workspace",
			Aliases:     []string{"w"},
			Usage:       "Initial workspace id (-1 for none)",
			Category:    "Widget",
			Destination: &f.Workspace,
		},
		&cli.Int64SliceFlag{
			Name:        "scan",
			Aliases:     []string{"s"},
			Usage:       "Initial scan id, repeatable",
			Category:    "Widget",
			Destination: &f.Scans,
		},
		&cli.StringFlag{
			Name:        "status",
			Usage:       "Initial status code",
			Category:    "Widget",
			Destination: &f.Status,
		},
	}
}

// load reads the config file and applies the flags that were given
func (f *widgetFlags) load(c *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}

	if c.IsSet("db") {
		cfg.Database.Path = f.DBPath
	}
	if c.IsSet("workspace") {
		cfg.Widget.Workspace = f.Workspace
	}
	if c.IsSet("scan") {
		ids := append([]int64{}, f.Scans...)
		cfg.Widget.Scans = &ids
	}
	if c.IsSet("status") {
		cfg.Widget.Status = f.Status
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (f *widgetFlags) configPath() string {
	if f.ConfigPath != "" {
		return f.ConfigPath
	}
	return config.DefaultPath()
}

// openStore opens and migrates the findings database
func openStore(cfg *config.Config) (*sql.DB, *sqlite.Store, error) {
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	if err := sqlite.Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, sqlite.NewStore(db), nil
}

// initialOptions builds the widget options from the widget config
func initialOptions(ctx context.Context, cfg *config.Config, src logic.FindingSource) (statustable.Options, error) {
	ws := domain.WorkspaceID(cfg.Widget.Workspace)

	scans := domain.NoScans()
	if cfg.Widget.HasScans() {
		sel, err := logic.ResolveScans(ctx, src, ws, cfg.Widget.ScanIDs())
		if err != nil {
			return statustable.Options{}, err
		}
		scans = sel
	}

	return statustable.Workspace(ws).
		With(statustable.Scans(scans)).
		With(statustable.Status(domain.StatusCode(cfg.Widget.Status))), nil
}
