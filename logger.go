package trifont

import (
	"log/slog"
	"sync/atomic"

	"github.com/osuushi/trifont/internal"
)

// loggerPtr stores the active logger. Accessed atomically so that SetLogger
// can be called while fonts are being read on other goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(internal.NopLogger())
}

// SetLogger configures the package logger. By default trifont produces no log
// output. Pass nil to restore the silent default.
//
// Log levels used by trifont:
//   - [slog.LevelDebug]: per polygon pipeline detail (classification, bridges, dropped holes)
//   - [slog.LevelInfo]: one summary per font read
//   - [slog.LevelWarn]: glyphs that could not be triangulated
//
// A logger passed to a single call with WithLogger takes precedence.
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(internal.LoggerOrNop(l))
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
