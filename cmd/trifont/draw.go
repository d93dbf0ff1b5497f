package main

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/trifont"
	"github.com/osuushi/trifont/internal"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const labelSize = 14

func runDraw(path, char, output string, size int, cat bool) error {
	r, n := utf8.DecodeRuneInString(char)
	if r == utf8.RuneError || n != len(char) {
		return errors.Errorf("want exactly one character, got %q", char)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading font")
	}
	f, err := trifont.Read(bytes.NewReader(data), append(readOptions(), trifont.WithRunes(r))...)
	if err != nil {
		return err
	}
	glyph, ok := f.Glyph(r)
	if !ok {
		return errors.Errorf("font has no glyph for %q", r)
	}

	c := gg.NewContextForImage(internal.RenderMesh(glyph.Mesh, size))
	face, err := labelFace(data)
	if err != nil {
		return err
	}
	c.SetFontFace(face)
	c.SetRGB(1, 1, 1)
	triangles := 0
	if glyph.Mesh != nil {
		triangles = glyph.Mesh.Triangles()
	}
	c.DrawString(fmt.Sprintf("%U %c  %d triangles", r, r, triangles), 4, labelSize+2)

	if err := c.SavePNG(output); err != nil {
		return errors.Wrap(err, "saving image")
	}
	if cat {
		imgcat.CatFile(output, os.Stdout)
	}
	return nil
}

// The label is set in the font being drawn. freetype only reads TrueType
// outlines, so CFF fonts fall back to Go Regular.
func labelFace(data []byte) (font.Face, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		f, err = truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, errors.Wrap(err, "parsing label font")
		}
	}
	return truetype.NewFace(f, &truetype.Options{Size: labelSize}), nil
}
