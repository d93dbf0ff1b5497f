package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		assert.Equal(t, expectedIndexes[i+3], CircularIndex(i, n))
	}
}

func TestOrientation(t *testing.T) {
	a, b, c := Point{0, 0}, Point{1, 0}, Point{0, 1}
	assert.Equal(t, 1.0, Orientation(a, b, c))
	assert.Equal(t, -1.0, Orientation(a, c, b))
	assert.Equal(t, 0.0, Orientation(a, b, Point{5, 0}))

	// Rotating the arguments doesn't change the sign
	assert.Equal(t, Orientation(a, b, c), Orientation(b, c, a))
	assert.Equal(t, Orientation(a, b, c), Orientation(c, a, b))
}

func TestPointFloor(t *testing.T) {
	assert.Equal(t, Point{1, -2}, Point{1.9, -1.1}.Floor())
	assert.Equal(t, Point{3, 4}, Point{3, 4}.Floor())
}

func TestBounds(t *testing.T) {
	b := EmptyBounds()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, Rect{}, b.Scaled(10))

	b.Extend(Point{5, -5})
	assert.False(t, b.IsEmpty())
	b.Extend(Point{-10, 20})
	assert.Equal(t, Bounds{Min: Point{-10, -5}, Max: Point{5, 20}}, b)
	assert.Equal(t, 15.0, b.Width())
	assert.Equal(t, 25.0, b.Height())
	assert.Equal(t, Rect{Min: Vec2{-1, -0.5}, Max: Vec2{0.5, 2}}, b.Scaled(10))
}

func TestSegmentIntersects(t *testing.T) {
	seg := func(x0, y0, x1, y1 float64) Segment {
		return Segment{Point{x0, y0}, Point{x1, y1}}
	}
	cases := []struct {
		name     string
		a, b     Segment
		expected bool
	}{
		{"crossing", seg(0, 0, 10, 10), seg(0, 10, 10, 0), true},
		{"disjoint", seg(0, 0, 10, 0), seg(0, 5, 10, 5), false},
		{"parallel collinear apart", seg(0, 0, 1, 0), seg(2, 0, 3, 0), false},
		{"collinear overlap", seg(0, 0, 10, 0), seg(5, 0, 15, 0), true},
		{"touching at an interior point", seg(0, 0, 10, 0), seg(5, 0, 5, 5), true},
		{"through a vertex", seg(0, 0, 10, 10), seg(5, 5, 5, 0), true},
		{"shared endpoint", seg(0, 0, 10, 0), seg(0, 0, 0, 10), false},
		{"shared endpoint opposite directions", seg(0, 0, 10, 0), seg(0, 0, -10, 0), false},
		{"shared endpoint overlapping", seg(0, 0, 10, 0), seg(0, 0, 5, 0), true},
		{"same segment reversed", seg(0, 0, 10, 0), seg(10, 0, 0, 0), true},
		{"crossing near an end", seg(0, 0, 10, 10), seg(4, 5, 10, 5), true},
		{"short of the line", seg(0, 0, 10, 10), seg(6, 5, 10, 5), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Intersects(tc.b))
			assert.Equal(t, tc.expected, tc.b.Intersects(tc.a), "swapped")
		})
	}
}

func TestSegmentIntersectsPolygon(t *testing.T) {
	square := poly(0, 0, 10, 0, 10, 10, 0, 10)
	assert.False(t, Segment{Point{2, 2}, Point{8, 8}}.IntersectsPolygon(square))
	assert.True(t, Segment{Point{5, 5}, Point{15, 5}}.IntersectsPolygon(square))
	// Leaving from a corner is fine, running along an edge is not.
	assert.False(t, Segment{Point{0, 0}, Point{5, 5}}.IntersectsPolygon(square))
	assert.True(t, Segment{Point{0, 0}, Point{5, 0}}.IntersectsPolygon(square))
	assert.Equal(t, 50.0, Segment{Point{0, 0}, Point{5, 5}}.LengthSquared())
}

func TestPolygonArea(t *testing.T) {
	square := poly(0, 0, 10, 0, 10, 10, 0, 10)
	assert.Equal(t, 100.0, square.SignedArea())
	assert.True(t, square.IsCCW())

	reversed := square.Reverse()
	assert.Equal(t, -100.0, reversed.SignedArea())
	assert.False(t, reversed.IsCCW())
	assert.Equal(t, []Point{{0, 10}, {10, 10}, {10, 0}, {0, 0}}, reversed.Points)
	assert.Equal(t, Point{0, 0}, square.Points[0], "Reverse must not touch the original")

	assert.Equal(t, 84.0, SquareWithHole().SignedArea())
	assert.Equal(t, 8, SquareWithHole().PointCount())
}

func TestContainsPointByEvenOdd(t *testing.T) {
	list := SquareWithHole()
	outer := list[0]
	assert.True(t, outer.ContainsPointByEvenOdd(Point{5, 5}))
	assert.False(t, outer.ContainsPointByEvenOdd(Point{15, 5}))
	assert.False(t, outer.ContainsPointByEvenOdd(Point{-5, 5}))

	assert.True(t, list.ContainsPointByEvenOdd(Point{1, 1}))
	assert.False(t, list.ContainsPointByEvenOdd(Point{5, 5}), "inside the hole")

	assert.True(t, outer.ContainsPolygon(list[1]))
	assert.False(t, list[1].ContainsPolygon(outer))
	assert.False(t, outer.ContainsPolygon(Polygon{}))
}

func TestPolygonBounds(t *testing.T) {
	b := MultiLayeredHoles().Bounds()
	assert.InDelta(t, 10*math.Cos(0.8*math.Pi), b.Min.X, 1e-9)
	assert.InDelta(t, 10, b.Max.X, 1e-9)
	assert.True(t, math.IsInf(Polygon{}.Bounds().Min.X, 1))
}
