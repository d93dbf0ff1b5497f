package internal

import "math"

// Quadratic curves are sampled at a fixed parameter step. A sample is only
// kept if it is far enough from the last kept sample, and far enough from the
// end of the curve that the explicit end point appended by the caller won't
// sit right on top of it.
const (
	quadStep                   = 0.01
	quadSampleCount            = 100
	quadMinSpacingSquared      = 64 * 64
	quadMinEndClearanceSquared = 32 * 32
)

// Cubic curves are split into uniform segments, with the count chosen by
// Wang's formula for the given tolerance.
const (
	DefaultCubicTolerance = 1.0
	maxCubicSegments      = 100
)

// QuadFlattener lazily produces the interior points of a quadratic curve from
// a through control point b to c. It excludes a and c. Once Next returns false
// it stays exhausted.
type QuadFlattener struct {
	a, b, c Point
	last    Point
	i       int
}

func NewQuadFlattener(a, b, c Point) *QuadFlattener {
	return &QuadFlattener{a: a, b: b, c: c, last: a}
}

func (q *QuadFlattener) Next() (Point, bool) {
	for q.i < quadSampleCount {
		t := float64(q.i) * quadStep
		q.i++
		// De Casteljau
		p := Lerp(Lerp(q.a, q.b, t), Lerp(q.b, q.c, t), t)
		if p.DistanceSquared(q.last) >= quadMinSpacingSquared &&
			p.DistanceSquared(q.c) >= quadMinEndClearanceSquared {
			q.last = p
			return p.Floor(), true
		}
	}
	return Point{}, false
}

// CubicFlattener lazily produces the interior points of a cubic curve from a
// to d with control points b and c. It excludes a and d.
type CubicFlattener struct {
	a, b, c, d Point
	n          int
	i          int
}

func NewCubicFlattener(a, b, c, d Point, tolerance float64) *CubicFlattener {
	if tolerance <= 0 {
		tolerance = DefaultCubicTolerance
	}
	// Second differences of the control polygon
	d1 := a.Sub(b.Scale(2)).Add(c)
	d2 := b.Sub(c.Scale(2)).Add(d)
	m := math.Max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		// n = ceil(sqrt(3 * m / (4 * tolerance)))
		nFloat := math.Sqrt(3 * m / (4 * tolerance))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}
	n = min(n, maxCubicSegments)
	return &CubicFlattener{a: a, b: b, c: c, d: d, n: n, i: 1}
}

func (f *CubicFlattener) Next() (Point, bool) {
	if f.i >= f.n {
		return Point{}, false
	}
	t := float64(f.i) / float64(f.n)
	f.i++

	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	p := f.a.Scale(omt2 * omt).
		Add(f.b.Scale(3 * omt2 * t)).
		Add(f.c.Scale(3 * omt * t2)).
		Add(f.d.Scale(t2 * t))
	return p.Floor(), true
}
