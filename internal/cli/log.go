package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Built ring of 20 nodes (1ms)".
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Debug(msg, append(keyvals, "elapsed", time.Since(p.start).Round(time.Microsecond))...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks implements the observability hooks on top of a logger. Run
// events log at debug level; per-step events are only formatted when the
// logger is at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnDanceStart(ctx context.Context, runID string, size int) {
	h.from(ctx).Debug("Dance started", "run", runID, "nodes", size)
}

func (h *logHooks) OnStep(ctx context.Context, runID string, depth int, phase string, size int) {
	l := h.from(ctx)
	if l.GetLevel() > log.DebugLevel {
		return
	}
	l.Debug("Step", "run", runID, "depth", depth, "phase", phase, "size", size)
}

func (h *logHooks) OnDanceComplete(ctx context.Context, runID string, levels, snapshots int, duration time.Duration, err error) {
	l := h.from(ctx)
	if err != nil {
		l.Error("Dance finished with broken links", "run", runID, "err", err)
		return
	}
	l.Debug("Dance complete", "run", runID, "levels", levels, "snapshots", snapshots,
		"elapsed", duration.Round(time.Microsecond))
}

func (h *logHooks) OnTeardown(ctx context.Context, deleted int, duration time.Duration) {
	h.from(ctx).Debug("Ring released", "nodes", deleted, "elapsed", duration.Round(time.Microsecond))
}

// from prefers a logger carried by ctx over the one the hooks were built with.
func (h *logHooks) from(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return h.logger
}
