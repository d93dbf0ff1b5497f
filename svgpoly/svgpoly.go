// Package svgpoly reads the <polygon> elements of an SVG document as closed
// contours. This is not a full (or even correct) SVG renderer: transforms,
// styles and every other element are ignored.
package svgpoly

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// PathBuilder receives one MoveTo, some LineTos and a Close per polygon.
type PathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Close()
}

// Polygon is the point list of one element, as x, y pairs.
type Polygon struct {
	ID     string
	Points [][2]float64
}

// Read parses the document and returns its polygons in document order.
func Read(r io.Reader) ([]Polygon, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	elements := root.FindAll("polygon")
	polygons := make([]Polygon, 0, len(elements))
	for i, el := range elements {
		points, err := ParsePoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		polygons = append(polygons, Polygon{ID: el.Attributes["id"], Points: points})
	}
	return polygons, nil
}

// Drive replays every polygon of the document into b and returns how many it
// sent. SVG puts the y axis downward; pass the builder through FlipY to get
// the usual y-up orientation.
func Drive(r io.Reader, b PathBuilder) (int, error) {
	polygons, err := Read(r)
	if err != nil {
		return 0, err
	}
	for _, poly := range polygons {
		poly.Drive(b)
	}
	return len(polygons), nil
}

func (poly Polygon) Drive(b PathBuilder) {
	if len(poly.Points) == 0 {
		return
	}
	b.MoveTo(poly.Points[0][0], poly.Points[0][1])
	for _, p := range poly.Points[1:] {
		b.LineTo(p[0], p[1])
	}
	b.Close()
}

// ParsePoints reads an SVG points attribute. Coordinates may be separated by
// commas, whitespace, or both.
func ParsePoints(s string) ([][2]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d) in points %q", len(fields), s)
	}

	points := make([][2]float64, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, [2]float64{x, y})
	}
	return points, nil
}

type flipped struct {
	PathBuilder
}

// FlipY negates every y coordinate on the way to b.
func FlipY(b PathBuilder) PathBuilder {
	return flipped{b}
}

// 0 - y rather than -y, so that points on the x axis don't become -0.
func (f flipped) MoveTo(x, y float64) { f.PathBuilder.MoveTo(x, 0-y) }
func (f flipped) LineTo(x, y float64) { f.PathBuilder.LineTo(x, 0-y) }
