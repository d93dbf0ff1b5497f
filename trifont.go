// Package trifont turns font glyphs into triangle meshes.
//
// Every glyph outline is flattened into polygons, its holes are bridged into
// the surrounding fills, and the result is ear clipped. Meshes contain only
// points of the flattened outline, with each distinct point stored once, and
// are scaled to em units so that a font can be drawn at any size.
//
//	font, err := trifont.ReadFile("Go-Regular.ttf")
//	if err != nil {
//		return err
//	}
//	glyph, ok := font.Glyph('A')
package trifont

import "github.com/osuushi/trifont/internal"

type Point = internal.Point
type Vec2 = internal.Vec2
type Rect = internal.Rect
type Mesh = internal.Mesh

// TriangulationError is reported when a polygon has no ear left to clip, which
// happens for self intersecting outlines.
type TriangulationError = internal.TriangulationError

// Take a set of point lists and convert them into a mesh, in the units of the
// input.
//
// Polygons are implicitly closed. "Solid" polygons must give their points in
// counterclockwise order, while holes must be in clockwise order, and every
// hole must lie inside a solid polygon. Holes that don't are ignored.
//
// The order of the polygons is irrelevant, except that a hole goes to the
// first solid polygon that contains it.
func Triangulate(polygonPoints ...[]Point) (mesh *Mesh, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			mesh = nil
			err = recoveredErr
		}
	}()

	collector := internal.NewCollector(internal.PositiveFill, Logger())
	for _, points := range polygonPoints {
		if len(points) == 0 {
			continue
		}
		collector.MoveTo(points[0].X, points[0].Y)
		for _, p := range points[1:] {
			collector.LineTo(p.X, p.Y)
		}
		collector.Close()
	}
	outline := collector.Finish()
	if outline == nil {
		return &Mesh{}, nil
	}
	return internal.BuildMesh(outline, 1, Logger())
}
