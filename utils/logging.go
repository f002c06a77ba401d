package utils

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger writes timestamped records to w at or above level.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// LoggerFrom returns the logger attached to ctx, or log.Default() when there is none.
func LoggerFrom(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}

// Timer logs a message with the elapsed time since it was started.
type Timer struct {
	logger *log.Logger
	start  time.Time
}

func NewTimer(l *log.Logger) *Timer {
	return &Timer{logger: l, start: time.Now()}
}

func (t *Timer) Done(msg string, keyvals ...interface{}) {
	keyvals = append(keyvals, "elapsed", time.Since(t.start).Round(time.Millisecond))
	t.logger.Info(msg, keyvals...)
}
