package canvas

import (
	"log/slog"
	"sync/atomic"
)

func newNopLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by canvas and the packages built on
// it (host, surface backends). By default nothing is logged.
//
// Pass nil to restore the silent default.
//
// Log levels:
//   - [slog.LevelDebug]: per-call tracing of bridge operations
//   - [slog.LevelInfo]: lifecycle (surface registered, guest loaded)
//   - [slog.LevelWarn]: tolerated malformed input (unexpected path verbs)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
