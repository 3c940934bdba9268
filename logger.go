package frascr

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// LevelTrace is below slog.LevelDebug and carries per-column and per-row
// progress from the renderer.
const LevelTrace = slog.LevelDebug - 4

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so the caller skips message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for frascr and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [LevelTrace]: per-column iteration and per-row colourisation progress
//   - [slog.LevelDebug]: palette construction, reference selection, output sizes
//   - [slog.LevelInfo]: run lifecycle (configuration loaded, file written)
//   - [slog.LevelWarn]: non-fatal issues (query failures painted black)
//
// Example:
//
//	frascr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (algorithm, writer,
// config) call this to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// VerbosityLevel maps a -v count to a log level: 0 warn, 1 info, 2 debug,
// 3 or more trace.
func VerbosityLevel(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}
