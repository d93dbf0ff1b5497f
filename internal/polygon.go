package internal

import (
	"fmt"
	"log/slog"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/trifont/internal/dbg"
)

// Shoelace sum over the closed ring. This is twice the enclosed area, positive
// for counterclockwise polygons.
func (poly Polygon) SignedDoubleArea() float64 {
	var sum float64
	n := len(poly.Points)
	for i, a := range poly.Points {
		b := poly.Points[CircularIndex(i+1, n)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

func (poly Polygon) SignedArea() float64 {
	return poly.SignedDoubleArea() / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedDoubleArea() > 0
}

// Even-odd point-in-polygon. Points exactly on an edge may land on either side.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. Counts the edges crossed by a ray
// cast from p in the +x direction.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	n := len(poly.Points)
	for i, vertex := range poly.Points {
		prevVertex := poly.Points[CircularIndex(i-1, n)]
		if (vertex.Y > p.Y) == (prevVertex.Y > p.Y) {
			continue
		}
		crossX := (vertex.X-prevVertex.X)*(p.Y-prevVertex.Y)/(vertex.Y-prevVertex.Y) + prevVertex.X
		if p.X < crossX {
			crossingCount++
		}
	}
	return crossingCount
}

// True when every vertex of other passes the even-odd test against poly.
func (poly Polygon) ContainsPolygon(other Polygon) bool {
	if len(other.Points) == 0 {
		return false
	}
	for _, p := range other.Points {
		if !poly.ContainsPointByEvenOdd(p) {
			return false
		}
	}
	return true
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

func (poly Polygon) Bounds() Bounds {
	b := EmptyBounds()
	for _, p := range poly.Points {
		b.Extend(p)
	}
	return b
}

// Readable name for debugging, with the point count.
func (poly *Polygon) Name() string {
	return fmt.Sprintf("%s(%d)", dbg.Name(poly), len(poly.Points))
}

// Name for terminal output. Fills are green and holes are red.
func (poly *Polygon) DbgName() string {
	name := poly.Name()
	if poly.IsCCW() {
		return aurora.Green(name).String()
	}
	return aurora.Red(name).String()
}

// Names are only generated when a handler actually formats the record.
func (poly *Polygon) LogValue() slog.Value {
	return slog.StringValue(poly.Name())
}

// Even-odd across the whole list, so that holes listed separately from their
// fills are honored.
func (list PolygonList) ContainsPointByEvenOdd(p Point) bool {
	crossingCount := 0
	for _, poly := range list {
		crossingCount += poly.CrossingCount(p)
	}
	return crossingCount%2 == 1
}

func (list PolygonList) SignedArea() float64 {
	var area float64
	for _, poly := range list {
		area += poly.SignedArea()
	}
	return area
}

func (list PolygonList) Bounds() Bounds {
	b := EmptyBounds()
	for _, poly := range list {
		for _, p := range poly.Points {
			b.Extend(p)
		}
	}
	return b
}

func (list PolygonList) PointCount() int {
	count := 0
	for _, poly := range list {
		count += len(poly.Points)
	}
	return count
}
