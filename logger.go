package penrose

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip building the record entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a viewer is running.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for penrose and its sub-packages.
// By default, penrose produces no log output. Pass nil to restore
// the default silent behavior.
//
// Log levels used by penrose:
//   - [slog.LevelDebug]: regeneration details (family, depth, tile count, duration)
//   - [slog.LevelInfo]: viewer lifecycle (canvas created, font loaded)
//   - [slog.LevelWarn]: non-fatal issues (font unavailable, resize failures)
//
// Example:
//
//	penrose.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by penrose.
// The render and viewer packages call this to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
