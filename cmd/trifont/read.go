package main

import (
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/trifont"
)

// Reads the font runs times, like a benchmark, and prints what came out.
func runRead(path string, runs int, out io.Writer) error {
	runs = max(runs, 1)
	var font *trifont.Font
	var total time.Duration
	for i := 0; i < runs; i++ {
		start := time.Now()
		f, err := trifont.ReadFile(path, readOptions()...)
		if err != nil {
			return err
		}
		total += time.Since(start)
		font = f
	}
	printSummary(out, font)
	fmt.Fprintf(out, "%v per read (%d runs)\n", aurora.Bold(total/time.Duration(runs)), runs)
	return nil
}

func printSummary(out io.Writer, font *trifont.Font) {
	meshes := make(map[*trifont.Mesh]bool)
	vertices, triangles := 0, 0
	for _, g := range font.Glyphs {
		if g.Mesh == nil || meshes[g.Mesh] {
			continue
		}
		meshes[g.Mesh] = true
		vertices += len(g.Mesh.Vertices)
		triangles += g.Mesh.Triangles()
	}

	fmt.Fprintf(out, "%v glyphs, %v meshes, %d vertices, %d triangles\n",
		aurora.Bold(font.Len()), aurora.Green(len(meshes)), vertices, triangles)
	if len(font.Failures) == 0 {
		return
	}
	fmt.Fprintf(out, "%v glyphs could not be triangulated:\n", aurora.Red(len(font.Failures)))
	for _, failure := range font.Failures {
		fmt.Fprintf(out, "  %U %q: %v\n", failure.Rune, failure.Rune, failure.Err)
	}
}
