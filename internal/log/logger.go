package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// Logger wraps slog.Logger with the component it reports for.
type Logger struct {
	*slog.Logger
	component string
}

type Config struct {
	Level     slog.Level
	Component string
	// Writer defaults to stderr so log records never mix with command output.
	Writer io.Writer
}

// New creates a logger whose records are rendered by pterm.
func New(config Config) *Logger {
	w := config.Writer
	if w == nil {
		w = os.Stderr
	}

	ptermLogger := pterm.DefaultLogger.
		WithLevel(toPtermLevel(config.Level)).
		WithWriter(w)

	logger := slog.New(pterm.NewSlogHandler(ptermLogger))
	if config.Component != "" {
		logger = logger.With(FieldComponent, config.Component)
	}

	return &Logger{
		Logger:    logger,
		component: config.Component,
	}
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return New(Config{Level: slog.LevelError, Writer: io.Discard})
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		component: l.component,
	}
}

func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With(FieldComponent, component),
		component: component,
	}
}

func (l *Logger) Component() string {
	return l.component
}

// SetDefault sets the default logger for the application
func SetDefault(logger *Logger) {
	slog.SetDefault(logger.Logger)
}

// ParseLevel maps debug, info, warn and error (any case) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level '%s' (use debug, info, warn or error)", s)
	}
}

func toPtermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
