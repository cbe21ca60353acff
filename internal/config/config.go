package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"statustable/internal/domain"
)

// EnvPrefix is the prefix of environment overrides, e.g. STATUSTABLE_DATABASE_PATH
const EnvPrefix = "STATUSTABLE"

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	Widget   WidgetConfig   `mapstructure:"widget" toml:"widget"`
	UI       UISettings     `mapstructure:"ui" toml:"ui"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// WidgetConfig is the initial status table configuration.
// A nil Scans means no scan selection; an empty list is a selection.
type WidgetConfig struct {
	Workspace int      `mapstructure:"workspace" toml:"workspace"`
	Scans     *[]int64 `mapstructure:"scans" toml:"scans,omitempty"`
	Status    string   `mapstructure:"status" toml:"status"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AltScreen         bool `mapstructure:"alt_screen" toml:"alt_screen"`
	RememberSelection bool `mapstructure:"remember_selection" toml:"remember_selection"`
}

// DefaultDir returns the directory holding config.toml and the database
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "statustable")
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.toml")
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(DefaultDir(), "findings.db"),
		},
		Widget: WidgetConfig{
			Workspace: int(domain.NoWorkspace),
			Status:    string(domain.DefaultStatus),
		},
		UI: UISettings{
			AltScreen:         true,
			RememberSelection: false,
		},
	}
}

// Load reads configuration from path (or the default location when empty)
// and the environment. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("database.path", def.Database.Path)
	v.SetDefault("widget.workspace", def.Widget.Workspace)
	v.SetDefault("widget.status", def.Widget.Status)
	v.SetDefault("ui.alt_screen", def.UI.AltScreen)
	v.SetDefault("ui.remember_selection", def.UI.RememberSelection)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(DefaultDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// scans has no default, so it has to be bound for env overrides
	if err := v.BindEnv("widget.scans"); err != nil {
		return nil, goerr.Wrap(err, "failed to bind env")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config", goerr.V("path", v.ConfigFileUsed()))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to path as TOML
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return goerr.Wrap(err, "failed to create config directory", goerr.V("path", path))
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write config file", goerr.V("path", path))
	}
	return nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return goerr.New("database path is required")
	}
	if c.Widget.Status == "" {
		return goerr.New("widget status must not be empty")
	}
	return nil
}

// ScanIDs returns the configured scans, or nil when no selection is configured
func (w WidgetConfig) ScanIDs() []domain.ScanID {
	if w.Scans == nil {
		return nil
	}
	ids := make([]domain.ScanID, 0, len(*w.Scans))
	for _, id := range *w.Scans {
		ids = append(ids, domain.ScanID(id))
	}
	return ids
}

// HasScans reports whether a scan selection is configured
func (w WidgetConfig) HasScans() bool {
	return w.Scans != nil
}

// SetSelection stores the workspace and scan selection
func (w *WidgetConfig) SetSelection(workspace domain.WorkspaceID, scans domain.ScanSelection) {
	w.Workspace = int(workspace)
	if !scans.Selected() {
		w.Scans = nil
		return
	}
	ids := make([]int64, 0, scans.Len())
	for _, id := range scans.IDs() {
		ids = append(ids, int64(id))
	}
	w.Scans = &ids
}
