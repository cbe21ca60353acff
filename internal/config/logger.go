package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"statustable/internal/logging"
)

// Logger holds logger configuration
type Logger struct {
	Level  string
	Format string
	File   string
}

// Flags returns CLI flags for Logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "info",
			Sources:     cli.EnvVars(EnvPrefix + "_LOG_LEVEL"),
			Destination: &l.Level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json, auto)",
			Category:    "Logging",
			Value:       "auto",
			Sources:     cli.EnvVars(EnvPrefix + "_LOG_FORMAT"),
			Destination: &l.Format,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "Write logs to this file instead of stderr",
			Category:    "Logging",
			Sources:     cli.EnvVars(EnvPrefix + "_LOG_FILE"),
			Destination: &l.File,
		},
	}
}

// Configure builds the logger. Output goes to File when set, otherwise to
// fallback. The returned close function releases the log file.
func (l *Logger) Configure(fallback io.Writer) (*slog.Logger, func() error, error) {
	if err := l.Validate(); err != nil {
		return nil, nil, err
	}

	format := logging.FormatAuto
	switch l.Format {
	case "console":
		format = logging.FormatConsole
	case "json":
		format = logging.FormatJSON
	}

	w := fallback
	closeFn := func() error { return nil }
	if l.File != "" {
		if dir := filepath.Dir(l.File); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, nil, goerr.Wrap(err, "failed to create log directory", goerr.V("file", l.File))
			}
		}
		f, err := os.OpenFile(l.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to open log file", goerr.V("file", l.File))
		}
		w = f
		closeFn = f.Close
	}

	return logging.NewLoggerWithFormat(logging.ParseLogLevel(l.Level), w, format), closeFn, nil
}

// LogValue returns structured log value
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.Level),
		slog.String("format", l.Format),
		slog.String("file", l.File),
	)
}

// Validate validates the logger configuration
func (l *Logger) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"":      true,
	}
	if !validLevels[l.Level] {
		return goerr.New("invalid log level", goerr.V("level", l.Level))
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
		"auto":    true,
		"":        true, // empty means auto
	}
	if !validFormats[l.Format] {
		return goerr.New("invalid log format", goerr.V("format", l.Format))
	}

	return nil
}
