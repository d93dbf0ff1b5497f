package fontsrc

import (
	"sync"

	"github.com/pkg/errors"
	xsfnt "golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/sfnt/glyph"
)

// Outlines decoded by golang.org/x/image. Glyphs are loaded at a ppem equal
// to the units per em, so the 26.6 values are exactly the design units.
type ximageOutlines struct {
	font    *xsfnt.Font
	ppem    fixed.Int26_6
	buffers sync.Pool
}

func newXImageOutlines(data []byte) (*ximageOutlines, error) {
	font, err := xsfnt.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing font with x/image")
	}
	return &ximageOutlines{
		font: font,
		ppem: fixed.Int26_6(font.UnitsPerEm()),
		buffers: sync.Pool{New: func() any {
			return new(xsfnt.Buffer)
		}},
	}, nil
}

// x/image puts the y axis downward and leaves contours open.
func (o *ximageOutlines) outline(gid glyph.ID, b OutlineBuilder) error {
	buffer := o.buffers.Get().(*xsfnt.Buffer)
	defer o.buffers.Put(buffer)

	segments, err := o.font.LoadGlyph(buffer, xsfnt.GlyphIndex(gid), o.ppem, nil)
	if err != nil {
		return errors.Wrapf(err, "loading glyph %d", gid)
	}

	open := false
	for _, seg := range segments {
		switch seg.Op {
		case xsfnt.SegmentOpMoveTo:
			if open {
				b.Close()
			}
			open = true
			b.MoveTo(unfix(seg.Args[0]))
		case xsfnt.SegmentOpLineTo:
			b.LineTo(unfix(seg.Args[0]))
		case xsfnt.SegmentOpQuadTo:
			cx, cy := unfix(seg.Args[0])
			x, y := unfix(seg.Args[1])
			b.QuadTo(cx, cy, x, y)
		case xsfnt.SegmentOpCubeTo:
			c1x, c1y := unfix(seg.Args[0])
			c2x, c2y := unfix(seg.Args[1])
			x, y := unfix(seg.Args[2])
			b.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		b.Close()
	}
	return nil
}

func unfix(p fixed.Point26_6) (x, y float64) {
	return float64(p.X), 0 - float64(p.Y)
}
