// Package logging provides structured logging with context propagation,
// built directly on log/slog: a chainable Logger wrapper carrying
// graph IDs, node IDs, and step indices as structured attributes instead
// of the request IDs and workflow IDs a request-serving system would
// attach.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"

	"github.com/dagflow/streamdag/pkg/types"
)

type contextKey string

const ContextKeyLogger contextKey = "logger"

// Logger wraps slog.Logger with dataflow-core-specific context helpers.
type Logger struct {
	logger *slog.Logger
}

// Config holds logging configuration.
type Config struct {
	Level         string    // debug, info, warn, error
	Output        io.Writer // default: os.Stdout
	Pretty        bool      // text output instead of JSON
	IncludeCaller bool
}

// DefaultConfig returns default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:         "info",
		Output:        os.Stdout,
		Pretty:        false,
		IncludeCaller: false,
	}
}

// New creates a new logger with the given configuration. It returns
// ErrInvalidLogLevel for an unrecognized cfg.Level, and ErrInvalidOutput
// for a cfg.Output that is a non-nil interface wrapping a nil writer (the
// classic typed-nil footgun — e.g. a nil *os.File assigned into the
// io.Writer field, which compares != nil but panics on Write).
func New(cfg Config) (*Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	output := cfg.Output
	if output == nil {
		output = os.Stdout
	} else if isNilWriter(output) {
		return nil, fmt.Errorf("%w: %T", ErrInvalidOutput, cfg.Output)
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.IncludeCaller,
	}

	var handler slog.Handler
	if cfg.Pretty {
		handler = slog.NewTextHandler(output, opts)
	} else {
		handler = slog.NewJSONHandler(output, opts)
	}

	return &Logger{logger: slog.New(handler)}, nil
}

// MustNew is like New but panics instead of returning an error. Use only
// with configuration known to be valid, such as DefaultConfig().
func MustNew(cfg Config) *Logger {
	logger, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return logger
}

func isNilWriter(w io.Writer) bool {
	v := reflect.ValueOf(w)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func parseLevel(level string) (slog.Level, error) {
	switch level {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}
}

// WithContext attaches the logger to a context.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, l)
}

// FromContext retrieves the logger from a context, or a default logger
// if none was attached.
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(ContextKeyLogger).(*Logger); ok {
		return logger
	}
	return MustNew(DefaultConfig())
}

// WithGraphID adds the ArenaGraph's build ID to the logger context.
func (l *Logger) WithGraphID(buildID string) *Logger {
	return &Logger{logger: l.logger.With(slog.String("graph_id", buildID))}
}

// WithStepIndex adds the current step's ordinal to the logger context.
func (l *Logger) WithStepIndex(step int) *Logger {
	return &Logger{logger: l.logger.With(slog.Int("step_index", step))}
}

// WithNodeID adds node_id to the logger context.
func (l *Logger) WithNodeID(id types.NodeID) *Logger {
	return &Logger{logger: l.logger.With(slog.Int("node_id", int(id)))}
}

// WithNodeKind adds node_kind to the logger context.
func (l *Logger) WithNodeKind(kind types.NodeKind) *Logger {
	return &Logger{logger: l.logger.With(slog.String("node_kind", string(kind)))}
}

// WithField adds a custom field to the logger context.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{logger: l.logger.With(slog.Any(key, value))}
}

// WithFields adds multiple custom fields to the logger context.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	return &Logger{logger: l.logger.With(args...)}
}

// WithError adds an error to the logger context.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{logger: l.logger.With(slog.Any("error", err))}
}

// Enabled reports whether level would currently be logged. Callers on the
// evaluator's hot path use this to skip building field values entirely
// when debug logging is off, so a nil-metrics, info-level Evaluator.Step
// never allocates for logging it will discard.
func (l *Logger) Enabled(ctx context.Context, level slog.Level) bool {
	return l.logger.Enabled(ctx, level)
}

func (l *Logger) Debug(msg string) { l.logger.Debug(msg) }
func (l *Logger) Info(msg string)  { l.logger.Info(msg) }
func (l *Logger) Warn(msg string)  { l.logger.Warn(msg) }
func (l *Logger) Error(msg string) { l.logger.Error(msg) }

func (l *Logger) Debugf(format string, args ...interface{}) { l.logger.Debug(fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...interface{})  { l.logger.Info(fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.logger.Warn(fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.logger.Error(fmt.Sprintf(format, args...)) }

// GetSlogLogger returns the underlying slog.Logger for advanced use cases.
func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}
