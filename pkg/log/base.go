package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// fatalSlogLevel sits above slog.LevelError so FATAL lines are never filtered.
const fatalSlogLevel = slog.LevelError + 4

func toSlogLevel(l Level) slog.Level {
	switch l {
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	case FatalLevel:
		return fatalSlogLevel
	default:
		return slog.LevelInfo
	}
}

func fromSlogLevel(l slog.Level) Level {
	switch {
	case l < slog.LevelInfo:
		return DebugLevel
	case l < slog.LevelWarn:
		return InfoLevel
	case l < slog.LevelError:
		return WarnLevel
	case l < fatalSlogLevel:
		return ErrorLevel
	default:
		return FatalLevel
	}
}

// LoggerOption configures a logger under construction.
type LoggerOption func(*loggerOptions)

type loggerOptions struct {
	level  Level
	format string
	out    io.Writer
	exit   func(int)
}

// WithLevel sets the minimum log level.
func WithLevel(l Level) LoggerOption { return func(o *loggerOptions) { o.level = l } }

// WithFormat selects the output format: "text" (default) or "json".
func WithFormat(format string) LoggerOption { return func(o *loggerOptions) { o.format = format } }

// WithOutput directs log output to w instead of stderr.
func WithOutput(w io.Writer) LoggerOption { return func(o *loggerOptions) { o.out = w } }

// withExit overrides the Fatal exit hook; used in tests.
func withExit(exit func(int)) LoggerOption { return func(o *loggerOptions) { o.exit = exit } }

// BaseLogger implements the Logger interface on top of slog.
type BaseLogger struct {
	slogger *slog.Logger
	level   *slog.LevelVar
	exit    func(int)
}

// NewLogger builds a logger from the provided options.
func NewLogger(opts ...LoggerOption) *BaseLogger {
	o := loggerOptions{level: InfoLevel, format: "text", out: os.Stderr, exit: os.Exit}
	for _, opt := range opts {
		opt(&o)
	}

	lv := new(slog.LevelVar)
	lv.Set(toSlogLevel(o.level))
	hopts := &slog.HandlerOptions{Level: lv}

	var h slog.Handler
	if o.format == "json" {
		h = slog.NewJSONHandler(o.out, hopts)
	} else {
		h = slog.NewTextHandler(o.out, hopts)
	}
	return &BaseLogger{slogger: slog.New(h), level: lv, exit: o.exit}
}

func toAttrs(fields []Field) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(fields))
	for _, f := range fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}
	return attrs
}

func (b *BaseLogger) log(level Level, msg string, fields []Field) {
	b.slogger.LogAttrs(context.Background(), toSlogLevel(level), msg, toAttrs(fields)...)
}

func (b *BaseLogger) Debug(msg string, fields ...Field) { b.log(DebugLevel, msg, fields) }
func (b *BaseLogger) Info(msg string, fields ...Field)  { b.log(InfoLevel, msg, fields) }
func (b *BaseLogger) Warn(msg string, fields ...Field)  { b.log(WarnLevel, msg, fields) }
func (b *BaseLogger) Error(msg string, fields ...Field) { b.log(ErrorLevel, msg, fields) }

// Fatal logs at FATAL and terminates the process.
func (b *BaseLogger) Fatal(msg string, fields ...Field) {
	b.log(FatalLevel, msg, fields)
	b.exit(1)
}

// With returns a derived Logger carrying the given fields. The derived logger
// shares the parent's level.
func (b *BaseLogger) With(fields ...Field) Logger {
	attrs := toAttrs(fields)
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	return &BaseLogger{slogger: b.slogger.With(args...), level: b.level, exit: b.exit}
}

// SetLevel sets the minimum log level for this logger and all loggers derived
// from it.
func (b *BaseLogger) SetLevel(level Level) { b.level.Set(toSlogLevel(level)) }

// GetLevel returns the current minimum log level.
func (b *BaseLogger) GetLevel() Level { return fromSlogLevel(b.level.Level()) }

// NewNopLogger returns a logger that discards everything. Useful in tests.
func NewNopLogger() *BaseLogger {
	return NewLogger(WithOutput(io.Discard), WithLevel(FatalLevel), withExit(func(int) {}))
}
