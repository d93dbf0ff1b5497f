package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. The index list comes in triples and every index is in range.
// 2. No two vertices share a bit pattern, and every vertex is used.
// 3. Every vertex of the triangulation is a vertex of the input.
// 4. No triangle is clockwise.
// 5. The sum of the areas of all triangles is equal to the area of the input.
func AssertValidTriangulation(t *testing.T, polygons PolygonList, tri *Triangulation) {
	t.Helper()
	require.NotNil(t, tri)
	require.Zero(t, len(tri.Indices)%3, "index count must be a multiple of 3")

	seen := make(map[PointKey]int)
	for i, v := range tri.Vertices {
		if j, ok := seen[v.Key()]; ok {
			t.Fatalf("vertices %d and %d are both %v", j, i, v)
		}
		seen[v.Key()] = i
	}

	inputPoints := make(map[PointKey]struct{})
	for _, poly := range polygons {
		for _, p := range poly.Points {
			inputPoints[p.Key()] = struct{}{}
		}
	}
	for _, v := range tri.Vertices {
		_, ok := inputPoints[v.Key()]
		require.True(t, ok, "vertex %v is not in the input", v)
	}

	used := make([]bool, len(tri.Vertices))
	var triangleArea float64
	for i := 0; i+2 < len(tri.Indices); i += 3 {
		for _, index := range tri.Indices[i : i+3] {
			require.True(t, index >= 0 && index < len(tri.Vertices), "index %d out of range", index)
			used[index] = true
		}
		a, b, c := tri.Vertices[tri.Indices[i]], tri.Vertices[tri.Indices[i+1]], tri.Vertices[tri.Indices[i+2]]
		area := Orientation(a, b, c) / 2
		require.GreaterOrEqual(t, area, 0.0, "clockwise triangle: %v %v %v", a, b, c)
		triangleArea += area
	}
	for i, ok := range used {
		require.True(t, ok, "vertex %d is not used by any triangle", i)
	}

	expected := polygons.SignedArea()
	require.InDelta(t, expected, triangleArea, 1e-9*math.Max(1, math.Abs(expected)),
		"sum of the areas of all triangles must equal the area of the polygons")
}

// Checks a grid of points against the even-odd fill of the expected polygons.
// Every filled point must be covered by a triangle, and no point may be
// strictly inside two triangles. The grid is offset by different fractions in x
// and y so that it doesn't land on edges or diagonals.
func validateTriangulationBySampling(t *testing.T, tri *Triangulation, expected PolygonList) {
	t.Helper()
	bounds := expected.Bounds()

	// Pad the bounding box by 10%
	xPadding := bounds.Width() * 0.1
	yPadding := bounds.Height() * 0.1
	minX, maxX := bounds.Min.X-xPadding, bounds.Max.X+xPadding
	minY, maxY := bounds.Min.Y-yPadding, bounds.Max.Y+yPadding

	step := math.Max(maxX-minX, maxY-minY) / 50

	for y := minY + 0.613*step; y <= maxY; y += step {
		for x := minX + 0.377*step; x <= maxX; x += step {
			p := Point{X: x, Y: y}
			covered, strictCount := 0, 0
			for i := 0; i+2 < len(tri.Indices); i += 3 {
				a, b, c := tri.Vertices[tri.Indices[i]], tri.Vertices[tri.Indices[i+1]], tri.Vertices[tri.Indices[i+2]]
				o1, o2, o3 := Orientation(a, b, p), Orientation(b, c, p), Orientation(c, a, p)
				if o1 >= 0 && o2 >= 0 && o3 >= 0 && Orientation(a, b, c) > 0 {
					covered++
					if o1 > 0 && o2 > 0 && o3 > 0 {
						strictCount++
					}
				}
			}

			if expected.ContainsPointByEvenOdd(p) {
				assert.True(t, covered > 0, "point %v should be covered by a triangle", p)
			} else {
				assert.Zero(t, covered, "point %v should not be covered by any triangle", p)
			}
			assert.LessOrEqual(t, strictCount, 1, "point %v is inside overlapping triangles", p)
		}
	}
}
