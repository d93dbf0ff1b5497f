package trifont

import (
	"log/slog"
	"runtime"

	"github.com/osuushi/trifont/fontsrc"
	"github.com/osuushi/trifont/internal"
)

// Option configures a font read.
type Option func(*options)

type options struct {
	logger         *slog.Logger
	workers        int
	outliner       fontsrc.Outliner
	runes          []rune
	cubicTolerance float64
}

func defaultOptions() options {
	return options{
		logger:         Logger(),
		workers:        runtime.GOMAXPROCS(0),
		outliner:       fontsrc.OutlinerSFNT,
		cubicTolerance: internal.DefaultCubicTolerance,
	}
}

func newOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &o
}

// WithLogger logs this call to l instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = internal.LoggerOrNop(l)
	}
}

// WithWorkers sets how many glyphs are triangulated at once. Values below 1
// mean one. The result does not depend on the worker count.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(n, 1)
	}
}

// WithOutliner picks the library that decodes glyph outlines.
func WithOutliner(outliner fontsrc.Outliner) Option {
	return func(o *options) {
		o.outliner = outliner
	}
}

// WithRunes restricts the read to the given code points. Code points the font
// doesn't map are ignored.
func WithRunes(runes ...rune) Option {
	return func(o *options) {
		o.runes = append(o.runes, runes...)
	}
}

// WithCubicTolerance sets the maximum distance, in font design units, between
// a cubic curve and its flattened polyline. Quadratic curves are always
// sampled the same way.
func WithCubicTolerance(units float64) Option {
	return func(o *options) {
		o.cubicTolerance = units
	}
}
