// Package fontsrc reads what the triangulator needs from a TrueType or
// OpenType font: the character map, the metrics, and glyph outlines replayed
// into an OutlineBuilder.
package fontsrc

import (
	"bytes"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

// Face is a parsed font. It is safe for concurrent use.
type Face struct {
	font     *sfnt.Font
	cmap     cmap.Subtable
	outliner Outliner
	ximage   *ximageOutlines
}

// Mapping pairs a code point with the glyph the character map assigns to it.
type Mapping struct {
	Rune    rune
	GlyphID glyph.ID
}

// Open reads and parses a font file.
func Open(path string, outliner Outliner) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading font")
	}
	face, err := Parse(data, outliner)
	if err != nil {
		return nil, errors.Wrapf(err, "font %s", path)
	}
	return face, nil
}

// Parse reads a font from memory. A font without a usable Unicode character
// map, or without glyph outlines, is rejected.
func Parse(data []byte, outliner Outliner) (*Face, error) {
	font, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "parsing font")
	}
	if font.UnitsPerEm == 0 {
		return nil, errors.New("font has zero units per em")
	}
	subtable, err := font.CMapTable.GetBest()
	if err != nil {
		return nil, errors.Wrap(err, "no usable unicode character map")
	}

	face := &Face{font: font, cmap: subtable, outliner: outliner}
	switch outliner {
	case OutlinerSFNT:
		if font.Outlines == nil {
			return nil, errors.New("font has no glyph outlines")
		}
	case OutlinerXImage:
		face.ximage, err = newXImageOutlines(data)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unknown outliner %d", outliner)
	}
	return face, nil
}

// UnitsPerEm is the scale that turns design units into em units.
func (f *Face) UnitsPerEm() float64 {
	return float64(f.font.UnitsPerEm)
}

// CellHeight is ascent - descent + line gap, in design units.
func (f *Face) CellHeight() float64 {
	return float64(f.font.Ascent) - float64(f.font.Descent) + float64(f.font.LineGap)
}

// IsCFF reports whether the outlines are PostScript (CFF) rather than
// TrueType (glyf). The two wind their outer contours in opposite directions.
func (f *Face) IsCFF() bool {
	return f.font.IsCFF()
}

func (f *Face) NumGlyphs() int {
	return f.font.NumGlyphs()
}

func (f *Face) Outliner() Outliner {
	return f.outliner
}

// Advance is the horizontal advance of a glyph in design units, or 0 for a
// glyph the font doesn't have.
func (f *Face) Advance(gid glyph.ID) float64 {
	if int(gid) >= f.NumGlyphs() {
		return 0
	}
	return float64(f.font.GlyphWidth(gid))
}

// Lookup returns the glyph for r, or 0 if the font doesn't map it.
func (f *Face) Lookup(r rune) glyph.ID {
	return f.cmap.Lookup(r)
}

// Runes lists every valid code point the character map sends to a glyph
// other than .notdef, in increasing order.
func (f *Face) Runes() []Mapping {
	low, high := f.cmap.CodeRange()
	high = min(high, utf8.MaxRune)
	var mappings []Mapping
	for r := max(low, 0); r <= high; r++ {
		if !utf8.ValidRune(r) {
			continue
		}
		if gid := f.cmap.Lookup(r); gid != 0 {
			mappings = append(mappings, Mapping{Rune: r, GlyphID: gid})
		}
	}
	return mappings
}

// Outline replays the outline of a glyph into b. Glyphs without an outline,
// like the space, send nothing.
func (f *Face) Outline(gid glyph.ID, b OutlineBuilder) error {
	if int(gid) >= f.NumGlyphs() {
		return errors.Errorf("glyph %d out of range (font has %d glyphs)", gid, f.NumGlyphs())
	}
	if f.outliner == OutlinerXImage {
		return f.ximage.outline(gid, b)
	}

	for cmd, pts := range f.font.Outlines.Path(gid) {
		switch cmd {
		case path.CmdMoveTo:
			b.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			b.LineTo(pts[0].X, pts[0].Y)
		case path.CmdQuadTo:
			b.QuadTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case path.CmdCubeTo:
			b.CubeTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			b.Close()
		}
	}
	return nil
}
