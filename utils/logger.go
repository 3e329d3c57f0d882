package utils

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns a logger writing to w. id becomes the line prefix, and
// verbose lowers the level to debug and adds the caller's file:line.
func NewLogger(w io.Writer, id string, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    verbose,
		TimeFormat:      "15:04:05.00",
		Prefix:          id,
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// LoggerFrom returns the logger attached to ctx, or log.Default().
func LoggerFrom(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
