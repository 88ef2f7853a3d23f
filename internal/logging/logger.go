package logging

import (
	"context"
	"io"
	"log/slog"
	"time"
)

type loggerKey struct{}

// NewStructuredLogger returns a JSON slog logger writing to w at the given level.
func NewStructuredLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default when none is set.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.Default()
}

// LogOperation records a named operation at info level.
func LogOperation(logger *slog.Logger, operation string, attrs ...slog.Attr) {
	logger.LogAttrs(context.Background(), slog.LevelInfo, operation, attrs...)
}

// LogError records msg with the error attached at error level.
func LogError(logger *slog.Logger, msg string, err error, attrs ...slog.Attr) {
	all := make([]slog.Attr, 0, len(attrs)+1)
	all = append(all, slog.String("error", errString(err)))
	all = append(all, attrs...)
	logger.LogAttrs(context.Background(), slog.LevelError, msg, all...)
}

// LogHTTPRequest records one completed HTTP request.
func LogHTTPRequest(logger *slog.Logger, method, path string, status int, duration time.Duration, attrs ...slog.Attr) {
	all := make([]slog.Attr, 0, len(attrs)+4)
	all = append(all,
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("duration_ms", float64(duration.Microseconds())/1000.0),
	)
	all = append(all, attrs...)

	level := slog.LevelInfo
	if status >= 500 {
		level = slog.LevelError
	} else if status >= 400 {
		level = slog.LevelWarn
	}
	logger.LogAttrs(context.Background(), level, "http_request", all...)
}

// SafeCloseWithLogging closes c and logs a failure instead of dropping it.
func SafeCloseWithLogging(c io.Closer, logger *slog.Logger, resource string) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		LogError(logger, "failed to close resource", err, slog.String("resource", resource))
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
