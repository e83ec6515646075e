package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelCritical sits above slog.LevelError for failures that should page.
const LevelCritical = slog.Level(12)

// Logger is the logging surface the rest of the module depends on.
// BusinessError and InternalError separate expected, caller-recoverable
// failures (logged at warn) from genuine defects (logged at error).
type Logger interface {
	Debug(message string, args ...any)
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
	Critical(message string, args ...any)
	BusinessError(message string, err error, args ...any)
	InternalError(message string, err error, args ...any)
	With(args ...any) Logger
}

type logger struct {
	slog *slog.Logger
}

// NewFromEnv builds a logger from LOG_LEVEL and LOG_FORMAT. Absent LOG_LEVEL,
// development gets debug and everything else info.
func NewFromEnv() Logger {
	env := normalize(os.Getenv("ENV"))
	return New(os.Stdout, parseLevel(os.Getenv("LOG_LEVEL"), env), normalize(os.Getenv("LOG_FORMAT")))
}

func New(output io.Writer, level slog.Level, format string) Logger {
	options := &slog.HandlerOptions{Level: level, ReplaceAttr: labelCritical}

	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(output, options)
	default:
		handler = slog.NewJSONHandler(output, options)
	}
	return &logger{slog: slog.New(handler)}
}

func (l *logger) Debug(message string, args ...any) { l.slog.Debug(message, args...) }
func (l *logger) Info(message string, args ...any)  { l.slog.Info(message, args...) }
func (l *logger) Warn(message string, args ...any)  { l.slog.Warn(message, args...) }
func (l *logger) Error(message string, args ...any) { l.slog.Error(message, args...) }

func (l *logger) Critical(message string, args ...any) {
	l.slog.Log(context.Background(), LevelCritical, message, args...)
}

func (l *logger) BusinessError(message string, err error, args ...any) {
	l.logErr(slog.LevelWarn, message, err, args)
}

func (l *logger) InternalError(message string, err error, args ...any) {
	l.logErr(slog.LevelError, message, err, args)
}

func (l *logger) logErr(level slog.Level, message string, err error, args []any) {
	if err == nil {
		return
	}
	l.slog.Log(context.Background(), level, message, append([]any{"err", err}, args...)...)
}

func (l *logger) With(args ...any) Logger {
	return &logger{slog: l.slog.With(args...)}
}

func parseLevel(value, env string) slog.Level {
	switch normalize(value) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "critical", "fatal":
		return LevelCritical
	}
	if env == "development" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func labelCritical(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key != slog.LevelKey {
		return attr
	}
	if level, ok := attr.Value.Any().(slog.Level); ok && level == LevelCritical {
		attr.Value = slog.StringValue("CRITICAL")
	}
	return attr
}
