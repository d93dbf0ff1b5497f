package internal

import (
	"embed"
	"log"
	"math"

	"github.com/osuushi/trifont/svgpoly"
)

// This file loads the svg fixtures and builds the ad hoc ones. SVG fixtures go
// through svgpoly and a Collector, with the y axis flipped, so they arrive as
// a classified Outline exactly like a glyph would. If anything goes wrong, it
// exits.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Outline {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	collector := &Collector{}
	n, err := svgpoly.Drive(fixture, svgpoly.FlipY(collector))
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if n == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	return collector.Finish()
}

// Runs a polygon list through a collector, one contour per polygon.
func OutlineOf(list PolygonList, winding Winding) *Outline {
	collector := &Collector{Winding: winding}
	for _, poly := range list {
		collector.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			collector.LineTo(p.X, p.Y)
		}
		collector.Close()
	}
	return collector.Finish()
}

// The fills and holes of an outline as one list, for even-odd sampling and area
// checks. Call before triangulating, which consumes the outline.
func (o *Outline) Polygons() PolygonList {
	var list PolygonList
	for _, poly := range append(append(PolygonList{}, o.Fills...), o.Holes...) {
		list = append(list, Polygon{Points: append([]Point(nil), poly.Points...)})
	}
	return list
}

func poly(coords ...float64) Polygon {
	points := make([]Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		points = append(points, Point{coords[i], coords[i+1]})
	}
	return Polygon{Points: points}
}

// Some ad hoc code specified fixtures
func makeStar(x, y, outerRadius, innerRadius float64) Polygon {
	points := []Point{}
	for i := 0; i < 10; i++ {
		angle := 2 * math.Pi * float64(i) / 10
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		points = append(points, Point{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)})
	}
	return Polygon{points}
}

func SimpleStar() PolygonList {
	return PolygonList{makeStar(0, 0, 5, 2)}
}

func Square() PolygonList {
	return PolygonList{poly(0, 0, 10, 0, 10, 10, 0, 10)}
}

func SquareWithHole() PolygonList {
	return PolygonList{
		poly(0, 0, 10, 0, 10, 10, 0, 10),
		poly(3, 3, 3, 7, 7, 7, 7, 3),
	}
}

func StarOutline() PolygonList {
	return PolygonList{
		makeStar(0, 0, 10, 5),
		makeStar(0, 0, 8, 3).Reverse(),
	}
}

func StarStripes() PolygonList {
	// Multiple inset stars with alternating winding
	var list PolygonList
	const outerRadius = 10
	const n = 20
	var scale float64 = 1
	const indentScale = 0.7
	const gapScale = 0.9

	for i := 0; i < n; i++ {
		var points []Point
		for j := 0; j < 10; j++ {
			angle := 2 * math.Pi * float64(j) / 10
			r := outerRadius * scale
			if j%2 == 1 {
				r *= indentScale
			}
			points = append(points, Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)})
		}
		scale *= gapScale
		poly := Polygon{points}
		if i%2 == 1 {
			poly = poly.Reverse()
		}
		list = append(list, poly)
	}
	return list
}

func MultiLayeredHoles() PolygonList {
	// In this test, we want multiple holes which contain filled shapes inside.
	return PolygonList{
		// Outer star
		makeStar(0, 0, 10, 7),
		// Top hole
		makeStar(1.5, 5, 3, 2).Reverse(),
		// Top inner
		makeStar(1.5, 5, 2, 1),
		// Bottom hole
		makeStar(1.8, -5, 3, 2).Reverse(),
		// Bottom inner
		makeStar(1.8, -5, 2, 1),
		// Left hole
		makeStar(-3, 0, 4, 2).Reverse(),
		// Left inner
		makeStar(-3, 0, 3, 1),
	}
}

// Self intersecting polygon with positive area and no ear.
func FigureEight() PolygonList {
	return PolygonList{poly(0, 0, 30, 0, 0, 10, 10, 10)}
}
