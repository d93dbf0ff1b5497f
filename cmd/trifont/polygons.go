package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/trifont"
	"github.com/pkg/errors"
)

// Input should be newline separated points in the form "x y", with each
// polygon separated by an extra newline.
//
// Polygons should be simple and wind counterclockwise. A clockwise polygon is a
// hole, and should be inside an outer polygon without touching its edges.
// None of these requirements are validated.
func runPolygons(in io.Reader, out io.Writer) error {
	polygons, err := readPolygons(in)
	if err != nil {
		return err
	}
	mesh, err := trifont.Triangulate(polygons...)
	if err != nil {
		return err
	}
	printMesh(out, len(polygons), mesh)
	return nil
}

func readPolygons(in io.Reader) ([][]trifont.Point, error) {
	polygons := [][]trifont.Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []trifont.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = []trifont.Point{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePoint(line string) (trifont.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return trifont.Point{}, errors.Errorf("want \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return trifont.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return trifont.Point{}, errors.Wrap(err, "y")
	}
	return trifont.Point{X: x, Y: y}, nil
}

// One "v x y" line per vertex, then one "t a b c" line per triangle.
func printMesh(out io.Writer, polygons int, mesh *trifont.Mesh) {
	fmt.Fprintf(out, "# %d polygons, %d vertices, %d triangles\n", polygons, len(mesh.Vertices), mesh.Triangles())
	for _, v := range mesh.Vertices {
		fmt.Fprintf(out, "v %g %g\n", v.X, v.Y)
	}
	for i := 0; i < mesh.Triangles(); i++ {
		fmt.Fprintf(out, "t %d %d %d\n", mesh.Indices[3*i], mesh.Indices[3*i+1], mesh.Indices[3*i+2])
	}
}
