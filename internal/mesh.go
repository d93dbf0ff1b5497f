package internal

import (
	"log/slog"
	"math"

	"github.com/pkg/errors"
)

// Triangulation is the raw pipeline output, still in design units.
type Triangulation struct {
	Vertices []Point
	Indices  []int
}

// Mesh is a triangulated glyph in em units. Vertices are in first seen order
// with no two sharing a bit pattern, and every consecutive triple of Indices is
// one counterclockwise triangle.
type Mesh struct {
	Rect     Rect
	Vertices []Vec2
	Indices  []int
}

// Triangulate merges the holes into their fills and clips every fill into
// triangles, sharing one interner across the whole outline. Afterwards the
// outline holds the merged fills and no holes. On failure nothing is returned
// for the outline, even if some fills were clipped.
func (o *Outline) Triangulate(log *slog.Logger) (*Triangulation, error) {
	fills, dropped := MergeHoles(o.Fills, o.Holes, log)
	o.Fills, o.Holes, o.DroppedHoles = fills, nil, dropped

	interner := NewInterner()
	indices := make([]int, 0, 3*max(fills.PointCount()-2, 0))
	for _, fill := range fills {
		var err error
		indices, err = ClipEars(fill, interner, indices)
		if err != nil {
			return nil, err
		}
	}
	return &Triangulation{Vertices: interner.Vertices, Indices: indices}, nil
}

// Mesh divides everything by scale (units per em) and narrows to float32.
// Deduplication happens before narrowing, so two design space points that round
// to the same float32 vertex are caught by Validate.
func (t *Triangulation) Mesh(bounds Bounds, scale float64) *Mesh {
	if scale == 0 {
		fatalf("cannot scale a mesh by zero")
	}
	vertices := make([]Vec2, len(t.Vertices))
	for i, p := range t.Vertices {
		vertices[i] = scaleVec(p, scale)
	}
	return &Mesh{
		Rect:     bounds.Scaled(scale),
		Vertices: vertices,
		Indices:  t.Indices,
	}
}

// BuildMesh runs the whole pipeline after collection: hole merging, ear
// clipping, interning and scaling. A mesh that breaks the index invariants is
// a bug and panics through fatalf.
func BuildMesh(outline *Outline, scale float64, log *slog.Logger) (*Mesh, error) {
	triangulation, err := outline.Triangulate(log)
	if err != nil {
		return nil, err
	}
	mesh := triangulation.Mesh(outline.Bounds, scale)
	if err := mesh.Validate(); err != nil {
		fatalf("invalid mesh: %v", err)
	}
	return mesh, nil
}

func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

func (m *Mesh) Triangle(i int) (a, b, c Vec2) {
	return m.Vertices[m.Indices[3*i]], m.Vertices[m.Indices[3*i+1]], m.Vertices[m.Indices[3*i+2]]
}

// Validate checks that the indices come in triples, that every index is in
// range, that no two vertices share a bit pattern, and that every vertex is
// used.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return errors.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	seen := make(map[[2]uint32]int, len(m.Vertices))
	for i, v := range m.Vertices {
		key := [2]uint32{math.Float32bits(v.X), math.Float32bits(v.Y)}
		if j, ok := seen[key]; ok {
			return errors.Errorf("vertices %d and %d are both %v", j, i, v)
		}
		seen[key] = i
	}
	used := make([]bool, len(m.Vertices))
	for i, index := range m.Indices {
		if index < 0 || index >= len(m.Vertices) {
			return errors.Errorf("index %d at position %d is out of range for %d vertices", index, i, len(m.Vertices))
		}
		used[index] = true
	}
	for i, ok := range used {
		if !ok {
			return errors.Errorf("vertex %d is not referenced by any triangle", i)
		}
	}
	return nil
}

// Area sums the signed areas of the triangles, in square em units.
func (m *Mesh) Area() float64 {
	var area float64
	for i := 0; i < m.Triangles(); i++ {
		a, b, c := m.Triangle(i)
		area += Orientation(vec2Point(a), vec2Point(b), vec2Point(c)) / 2
	}
	return area
}

func vec2Point(v Vec2) Point {
	return Point{float64(v.X), float64(v.Y)}
}
