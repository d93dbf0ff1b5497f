package internal

import "math"

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Z component of the 3D cross product.
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) DistanceSquared(other Point) float64 {
	d := p.Sub(other)
	return d.Dot(d)
}

// Snap to the integer grid that font outlines live on.
func (p Point) Floor() Point {
	return Point{math.Floor(p.X), math.Floor(p.Y)}
}

func Lerp(a, b Point, t float64) Point {
	return Point{a.X + t*(b.X-a.X), a.Y + t*(b.Y-a.Y)}
}

// Twice the signed area of the triangle abc. Positive when a, b, c turn
// counterclockwise in a y-up coordinate system, zero when they are collinear.
func Orientation(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// EmptyBounds returns a box that any point extends.
func EmptyBounds() Bounds {
	return Bounds{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
}

func (b Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

func (b *Bounds) Extend(p Point) {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
}

func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Scaled divides both corners by scale and narrows to float32.
func (b Bounds) Scaled(scale float64) Rect {
	if b.IsEmpty() {
		return Rect{}
	}
	return Rect{Min: scaleVec(b.Min, scale), Max: scaleVec(b.Max, scale)}
}

func scaleVec(p Point, scale float64) Vec2 {
	return Vec2{float32(p.X / scale), float32(p.Y / scale)}
}
