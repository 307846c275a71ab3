package config

import (
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/reclaimer/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logger holds logger configuration
type Logger struct {
	Level  string
	Format string

	level *slog.LevelVar
}

// Flags returns CLI flags for Logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "info",
			Sources:     cli.EnvVars("RECLAIMER_LOG_LEVEL"),
			Destination: &l.Level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json, auto)",
			Category:    "Logging",
			Value:       "auto",
			Sources:     cli.EnvVars("RECLAIMER_LOG_FORMAT"),
			Destination: &l.Format,
		},
	}
}

// Configure sets up the logger based on configuration. Registered secrets
// are masked in every record the logger writes.
func (l *Logger) Configure(w io.Writer, secrets *logging.Secrets) (*slog.Logger, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	l.level = &slog.LevelVar{}
	l.level.Set(logging.ParseLogLevel(l.Level))

	// Parse format option
	format := logging.FormatAuto
	switch l.Format {
	case "console":
		format = logging.FormatConsole
	case "json":
		format = logging.FormatJSON
	}

	return logging.NewLoggerWithFormat(l.level, w, format, secrets), nil
}

// SetVerbose lowers the level of a configured logger to debug
func (l *Logger) SetVerbose() {
	if l.level != nil {
		l.level.Set(slog.LevelDebug)
	}
}

// LogValue returns structured log value
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.Level),
		slog.String("format", l.Format),
	)
}

// Validate validates the logger configuration
func (l *Logger) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"":      true, // empty means info
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
