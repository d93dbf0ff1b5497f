package internal

import "math"

// Points are values, not pointers. Identity is the exact bit pattern of both
// coordinates (see PointKey), so two points at the same position are the same
// vertex no matter where they came from. Coordinates are never adjusted after
// a point enters a polygon.
type Point struct {
	X float64
	Y float64
}

// PointKey packs the bits of both coordinates. It is used for vertex
// interning and anywhere the pipeline needs to know whether two points are
// the same vertex. Note that 0 and -0 are different keys.
type PointKey struct {
	X, Y uint64
}

func (p Point) Key() PointKey {
	return PointKey{math.Float64bits(p.X), math.Float64bits(p.Y)}
}

// Same reports bitwise identity.
func (p Point) Same(other Point) bool {
	return p.Key() == other.Key()
}

// Polygons are implicitly closed. The first point is never repeated at the end.
type Polygon struct {
	Points []Point
}

type PolygonList []Polygon

type Segment struct {
	Start Point
	End   Point
}

// Bounds is an axis aligned box in design units.
type Bounds struct {
	Min, Max Point
}

// Vec2 is a point in em units, as stored in a Mesh.
type Vec2 struct {
	X, Y float32
}

// Rect is a bounding box in em units.
type Rect struct {
	Min, Max Vec2
}
