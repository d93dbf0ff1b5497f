package internal

import (
	"context"
	"log/slog"
)

// nopHandler silently discards all log records. Enabled returns false, so
// attributes such as polygon names are never resolved.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})

func NopLogger() *slog.Logger { return nopLogger }

// Pipeline functions take an optional logger. nil means silent.
func LoggerOrNop(l *slog.Logger) *slog.Logger {
	if l == nil {
		return nopLogger
	}
	return l
}
