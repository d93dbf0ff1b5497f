package internal

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// Padding around the shape, in pixels
const drawPadding = 16

// RenderMesh draws the triangles of a mesh with their edges, scaled so the
// mesh fits a size×size image. The y axis points up, as in the font.
func RenderMesh(m *Mesh, size int) image.Image {
	bounds := EmptyBounds()
	if m != nil {
		for _, v := range m.Vertices {
			bounds.Extend(vec2Point(v))
		}
	}
	c, ok := newDrawContext(size, bounds)
	if !ok {
		return c.Image()
	}

	for i := 0; i < m.Triangles(); i++ {
		p0, p1, p2 := m.Triangle(i)
		c.MoveTo(float64(p0.X), float64(p0.Y))
		c.LineTo(float64(p1.X), float64(p1.Y))
		c.LineTo(float64(p2.X), float64(p2.Y))
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetLineWidth(1)
	c.SetRGB(0, 1, 1)
	c.Stroke()

	return c.Image()
}

// RenderPolygons draws polygons filled by the even-odd rule, with fills
// outlined in green and holes in red.
func RenderPolygons(list PolygonList, size int) image.Image {
	c, ok := newDrawContext(size, list.Bounds())
	if !ok {
		return c.Image()
	}

	c.SetFillRuleEvenOdd()
	for _, poly := range list {
		tracePolygon(c, poly)
	}
	c.SetRGB(0.2, 0.2, 0.2)
	c.Fill()

	c.SetLineWidth(2)
	for _, poly := range list {
		if len(poly.Points) == 0 {
			continue
		}
		tracePolygon(c, poly)
		if poly.IsCCW() {
			c.SetRGB(0, 1, 0)
		} else {
			c.SetRGB(1, 0, 0)
		}
		c.Stroke()
	}
	return c.Image()
}

func tracePolygon(c *gg.Context, poly Polygon) {
	if len(poly.Points) == 0 {
		return
	}
	c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
	for _, p := range poly.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// Black canvas with the context transformed so that bounds fills it, minus
// the padding. Reports false when there is nothing with an extent to draw.
func newDrawContext(size int, bounds Bounds) (*gg.Context, bool) {
	c := gg.NewContext(size, size)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(size), float64(size))
	c.Fill()
	if bounds.IsEmpty() {
		return c, false
	}
	extent := math.Max(bounds.Width(), bounds.Height())
	if extent == 0 {
		return c, false
	}
	scale := (float64(size) - 2*drawPadding) / extent

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(size))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-bounds.Min.X, -bounds.Min.Y)
	return c, true
}
