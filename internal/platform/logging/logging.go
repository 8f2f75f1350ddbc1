// Package logging builds the service's slog logger and carries the
// request-scoped logger through context.
//
// The HTTP middleware stores a child logger holding request_id and
// correlation_id, and Authenticate adds user_id, so code below the handlers
// logs through FromContext and gets those attributes for free. Error entries
// follow one shape:
//
//	logger.ErrorContext(ctx, "failed to write collection",
//	    slog.String("operation", "CreateTask"),
//	    slog.String("collection", "tasks"),
//	    slog.Any("error", err),
//	)
//
// Credentials never reach the output: see SensitiveHeaders and the masq
// options in newRedactAttr.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. level is any slog level name ("debug",
// "INFO", "warn+2"); anything unparsable means info. format "text" selects
// the text handler, everything else JSON. Debug loggers also record the
// source location.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// Enrich stores a child of the context logger carrying attrs.
func Enrich(ctx context.Context, attrs ...slog.Attr) context.Context {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return WithLogger(ctx, FromContext(ctx).With(args...))
}
