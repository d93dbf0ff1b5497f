package fontsrc

import (
	"strings"

	"github.com/pkg/errors"
)

// OutlineBuilder receives the drawing commands of one glyph, in font design
// units with the y axis pointing up. Every contour ends with Close.
type OutlineBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubeTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// Outliner selects the library that decodes glyph outlines. Metrics and the
// character map always come from seehuhn.de/go/sfnt.
type Outliner int

const (
	OutlinerSFNT Outliner = iota
	OutlinerXImage
)

var outlinerNames = map[Outliner]string{
	OutlinerSFNT:   "sfnt",
	OutlinerXImage: "ximage",
}

func (o Outliner) String() string {
	if name, ok := outlinerNames[o]; ok {
		return name
	}
	return "unknown"
}

// OutlinerNames lists the accepted names, for flag help.
func OutlinerNames() []string {
	return []string{OutlinerSFNT.String(), OutlinerXImage.String()}
}

func ParseOutliner(name string) (Outliner, error) {
	for o, n := range outlinerNames {
		if strings.EqualFold(name, n) {
			return o, nil
		}
	}
	return 0, errors.Errorf("unknown outliner %q (want one of %s)", name, strings.Join(OutlinerNames(), ", "))
}
