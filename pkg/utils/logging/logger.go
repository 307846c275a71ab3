package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/clog"
	"golang.org/x/term"
)

// Format represents the log output format
type Format int

const (
	FormatAuto Format = iota
	FormatConsole
	FormatJSON
)

// NewLogger creates a new slog.Logger with automatic format detection
// If output is a terminal, use clog for colored console output
// Otherwise, use JSON format for structured logging
func NewLogger(level slog.Leveler, w io.Writer, secrets *Secrets) *slog.Logger {
	return NewLoggerWithFormat(level, w, FormatAuto, secrets)
}

// NewLoggerWithFormat creates a new slog.Logger with specified format. Every
// record goes through a RedactHandler so registered secrets never reach w.
func NewLoggerWithFormat(level slog.Leveler, w io.Writer, format Format, secrets *Secrets) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	if secrets == nil {
		secrets = NewSecrets()
	}

	var handler slog.Handler

	// Inner handlers accept everything; RedactHandler applies the level so
	// that it can be raised after the logger is built.
	switch format {
	case FormatConsole:
		handler = newConsoleHandler(w)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		})

	case FormatAuto:
		if isTerminal(w) {
			handler = newConsoleHandler(w)
		} else {
			handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})
		}
	}

	return slog.New(NewRedactHandler(handler, level, secrets))
}

func newConsoleHandler(w io.Writer) slog.Handler {
	return clog.New(
		clog.WithWriter(w),
		clog.WithLevel(slog.LevelDebug),
		clog.WithTimeFmt("15:04:05"),
		clog.WithSource(false),
		clog.WithAttrHook(clog.GoerrHook),
	)
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ParseLogLevel parses a string log level to slog.Level
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug", "DEBUG":
		return slog.LevelDebug
	case "info", "INFO", "":
		return slog.LevelInfo
	case "warn", "warning", "WARN", "WARNING":
		return slog.LevelWarn
	case "error", "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
