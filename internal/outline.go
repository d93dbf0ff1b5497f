package internal

import "log/slog"

// Winding says which orientation marks an outer contour.
type Winding int

const (
	// Counterclockwise contours (positive shoelace area) are fills. This is the
	// convention for CFF outlines and for polygons handed in directly.
	PositiveFill Winding = iota
	// Clockwise contours are fills. TrueType glyf outlines use this.
	NegativeFill
)

func (w Winding) String() string {
	if w == NegativeFill {
		return "negative-fill"
	}
	return "positive-fill"
}

// Outline is the classified result of one glyph's drawing commands. Fills are
// always counterclockwise and holes clockwise, whatever the source winding.
type Outline struct {
	Bounds       Bounds
	Fills        PolygonList
	Holes        PolygonList
	DroppedHoles int
}

// Collector is driven by move/line/quad/cubic/close commands and assembles
// closed polygons. It has two states: idle, and open with a path being
// accumulated. A collector handles one glyph; use a new one for the next.
//
// The zero value is ready to use, with PositiveFill winding, the default cubic
// tolerance and no logging.
type Collector struct {
	Winding        Winding
	CubicTolerance float64
	Log            *slog.Logger

	pos, start Point
	open       bool
	path       []Point

	seen   bool
	bounds Bounds
	fills  PolygonList
	holes  PolygonList
}

func NewCollector(winding Winding, log *slog.Logger) *Collector {
	return &Collector{Winding: winding, Log: log}
}

func (c *Collector) MoveTo(x, y float64) {
	if c.open {
		c.Close()
	}
	p := Point{x, y}
	c.extend(p)
	c.pos = p
	c.start = p
}

func (c *Collector) LineTo(x, y float64) {
	p := Point{x, y}
	c.extend(p)
	c.push(p)
	c.pos = p
}

func (c *Collector) QuadTo(cx, cy, x, y float64) {
	control, end := Point{cx, cy}, Point{x, y}
	c.extend(control)
	c.extend(end)
	flattener := NewQuadFlattener(c.pos, control, end)
	for p, ok := flattener.Next(); ok; p, ok = flattener.Next() {
		c.push(p)
	}
	c.push(end)
	c.pos = end
}

func (c *Collector) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	control1, control2, end := Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y}
	c.extend(control1)
	c.extend(control2)
	c.extend(end)
	flattener := NewCubicFlattener(c.pos, control1, control2, end, c.CubicTolerance)
	for p, ok := flattener.Next(); ok; p, ok = flattener.Next() {
		c.push(p)
	}
	c.push(end)
	c.pos = end
}

// Close finalizes the open path, if any, and classifies it.
func (c *Collector) Close() {
	path := c.path
	c.path = nil
	c.open = false
	c.pos = c.start
	if len(path) == 0 {
		return
	}

	if !path[len(path)-1].Same(c.start) {
		path = append(path, c.start)
	}
	// A path that started with an explicit line to its own start point now
	// repeats its first point at the end.
	if len(path) > 1 && path[0].Same(path[len(path)-1]) {
		path = path[:len(path)-1]
	}
	if len(path) < 3 {
		c.logger().Debug("discarding degenerate contour", "points", len(path))
		return
	}
	c.classify(Polygon{Points: path})
}

// Finish closes any open path and hands over the classified polygons. It
// returns nil if no command carrying a point was ever received, which is how
// glyphs without an outline are recognized.
func (c *Collector) Finish() *Outline {
	if c.open {
		c.Close()
	}
	if !c.seen {
		return nil
	}
	outline := &Outline{Bounds: c.bounds, Fills: c.fills, Holes: c.holes}
	c.fills, c.holes = nil, nil
	return outline
}

// Signed area > 0 is a fill. Everything else, including zero area, is a hole.
func (c *Collector) classify(poly Polygon) {
	area := poly.SignedDoubleArea()
	if c.Winding == NegativeFill {
		area = -area
		poly = poly.Reverse()
	}
	if area > 0 {
		c.fills = append(c.fills, poly)
		c.logger().Debug("fill contour", "polygon", &c.fills[len(c.fills)-1], "area", area/2)
	} else {
		c.holes = append(c.holes, poly)
		c.logger().Debug("hole contour", "polygon", &c.holes[len(c.holes)-1], "area", area/2)
	}
}

// Consecutive duplicates are collapsed.
func (c *Collector) push(p Point) {
	c.open = true
	if n := len(c.path); n > 0 && c.path[n-1].Same(p) {
		return
	}
	c.path = append(c.path, p)
}

func (c *Collector) extend(p Point) {
	if !c.seen {
		c.seen = true
		c.bounds = EmptyBounds()
	}
	c.bounds.Extend(p)
}

func (c *Collector) logger() *slog.Logger {
	return LoggerOrNop(c.Log)
}
