package main

import (
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/osuushi/trifont"
	"github.com/osuushi/trifont/internal"
	"github.com/osuushi/trifont/svgpoly"
	"github.com/pkg/errors"
)

const svgImageSize = 512

// Collects the polygons of an SVG document.
type polygonCollector struct {
	polygons [][]trifont.Point
}

func (c *polygonCollector) MoveTo(x, y float64) {
	c.polygons = append(c.polygons, []trifont.Point{{X: x, Y: y}})
}

func (c *polygonCollector) LineTo(x, y float64) {
	last := len(c.polygons) - 1
	c.polygons[last] = append(c.polygons[last], trifont.Point{X: x, Y: y})
}

func (c *polygonCollector) Close() {}

func runSVG(path, output string, input bool, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening svg")
	}
	defer f.Close()

	collector := &polygonCollector{}
	if _, err := svgpoly.Drive(f, svgpoly.FlipY(collector)); err != nil {
		return err
	}
	mesh, err := trifont.Triangulate(collector.polygons...)
	if err != nil {
		return err
	}
	printMesh(out, len(collector.polygons), mesh)
	if output == "" {
		return nil
	}

	if input {
		list := make(internal.PolygonList, len(collector.polygons))
		for i, points := range collector.polygons {
			list[i] = internal.Polygon{Points: points}
		}
		return errors.Wrap(gg.SavePNG(output, internal.RenderPolygons(list, svgImageSize)), "saving image")
	}
	return errors.Wrap(gg.SavePNG(output, internal.RenderMesh(mesh, svgImageSize)), "saving image")
}
