package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// TriangulationError is returned when the ear clipper goes all the way around
// a polygon without finding an ear. That happens for self intersecting and
// other degenerate polygons.
type TriangulationError struct {
	Remaining int
}

func (e *TriangulationError) Error() string {
	return fmt.Sprintf("triangulation failed: no ear found with %d vertices remaining", e.Remaining)
}

// ClipEars triangulates a simple counterclockwise polygon, interning each
// triangle's vertices and appending their indices to indices. The polygon
// itself is left as it was.
//
// The scan starts at vertex 0. After clipping an ear the scan stays at the same
// position, which now holds the vertex after the one removed. A full lap with
// no ear is an error.
func ClipEars(poly Polygon, interner *Interner, indices []int) ([]int, error) {
	if len(poly.Points) < 3 {
		fatalf("cannot triangulate degenerate polygon with point count: %d", len(poly.Points))
	}
	points := append([]Point(nil), poly.Points...)

	i, misses := 0, 0
	for len(points) >= 3 {
		n := len(points)
		if misses >= n {
			return indices, errors.WithStack(&TriangulationError{Remaining: n})
		}

		prev, next := CircularIndex(i-1, n), CircularIndex(i+1, n)
		if !isEar(points, prev, i, next) {
			i = CircularIndex(i+1, n)
			misses++
			continue
		}

		indices = append(indices,
			interner.Intern(points[prev]),
			interner.Intern(points[i]),
			interner.Intern(points[next]),
		)
		points = append(points[:i], points[i+1:]...)
		if i >= len(points) {
			i = 0
		}
		misses = 0
	}
	return indices, nil
}

// An ear turns counterclockwise (collinear counts), and no other vertex lies
// inside it.
func isEar(points []Point, prev, cur, next int) bool {
	a, b, c := points[prev], points[cur], points[next]
	if Orientation(a, b, c) < 0 {
		return false
	}
	for j := range points {
		if j == prev || j == cur || j == next {
			continue
		}
		if blocksEar(points, j, a, b, c) {
			return false
		}
	}
	return true
}

// Vertex j blocks the ear abc if it lies inside the triangle. A vertex that is
// the same point as a corner of the ear (at both ends of a hole bridge, or
// where a contour touches itself) is never inside, but it still blocks if one
// of its edges leaves the corner into the triangle.
func blocksEar(points []Point, j int, a, b, c Point) bool {
	q := points[j]
	n := len(points)
	var corner, from, to Point
	switch {
	case q.Same(a):
		corner, from, to = a, b, c
	case q.Same(b):
		corner, from, to = b, c, a
	case q.Same(c):
		corner, from, to = c, a, b
	default:
		return PointInTriangle(q, a, b, c)
	}
	return wedgeContains(corner, from, to, points[CircularIndex(j-1, n)]) ||
		wedgeContains(corner, from, to, points[CircularIndex(j+1, n)])
}

// Whether d lies strictly inside the counterclockwise wedge at v that sweeps
// from the ray toward from to the ray toward to.
func wedgeContains(v, from, to, d Point) bool {
	return from.Sub(v).Cross(d.Sub(v)) > 0 && d.Sub(v).Cross(to.Sub(v)) > 0
}

// Barycentric point in triangle test. Points on the edges ab and ac count as
// inside, points on bc do not. Points identical to a corner are never inside,
// and nothing is inside a degenerate triangle.
func PointInTriangle(p, a, b, c Point) bool {
	if p.Same(a) || p.Same(b) || p.Same(c) {
		return false
	}
	v0 := c.Sub(a)
	v1 := b.Sub(a)
	v2 := p.Sub(a)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denominator := dot00*dot11 - dot01*dot01
	if denominator == 0 {
		return false
	}
	inverse := 1 / denominator
	u := (dot11*dot02 - dot01*dot12) * inverse
	v := (dot00*dot12 - dot01*dot02) * inverse
	return u >= 0 && v >= 0 && u+v < 1
}
