// Package cli implements the ghfinder command-line interface.
//
// The CLI drives the application store: search and profile run a single store
// operation and print the resulting state, browse is an interactive terminal
// UI rendering from store subscriptions, and serve exposes the same operations
// as JSON.
//
// # Commands
//
// The main commands are:
//   - search: Find GitHub users matching a query
//   - profile: Show a user's details, top repositories and profile README
//   - browse: Interactive search and profile screens
//   - serve: JSON view server
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Debug output
// includes every GitHub request and the underlying cause of failures that are
// shown to the user only as a fixed message. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Resolved 42 packages (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks forwards client and store events to a logger. Everything is logged
// at debug level: the raw causes kept behind user-facing messages are only
// diagnostics.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("request failed", "method", method, "host", host, "path", path, "error", err)
}

func (h *logHooks) OnActionStart(_ context.Context, id, action, arg string) {
	h.logger.Debug("action", "id", shortID(id), "name", action, "arg", arg)
}

func (h *logHooks) OnActionComplete(_ context.Context, id, action string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("action failed", "id", shortID(id), "name", action, "took", d.Round(time.Millisecond), "cause", err)
		return
	}
	h.logger.Debug("action done", "id", shortID(id), "name", action, "took", d.Round(time.Millisecond))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
