package internal

// Closed segment intersection, with one exception: two segments that share an
// endpoint (bitwise) only count as intersecting when they overlap along a
// line. A bridge may leave from a vertex without being blocked by the edges
// that meet there, but it may never run along one of them or pass through any
// other vertex.
func (s Segment) Intersects(other Segment) bool {
	a, b, c, d := s.Start, s.End, other.Start, other.End
	o1 := sign(Orientation(a, b, c))
	o2 := sign(Orientation(a, b, d))
	o3 := sign(Orientation(c, d, a))
	o4 := sign(Orientation(c, d, b))

	if c.Same(a) || c.Same(b) || d.Same(a) || d.Same(b) {
		if o1 != 0 || o2 != 0 {
			return false
		}
		return s.overlapsCollinear(other)
	}

	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}
	return (o1 == 0 && s.boxContains(c)) ||
		(o2 == 0 && s.boxContains(d)) ||
		(o3 == 0 && other.boxContains(a)) ||
		(o4 == 0 && other.boxContains(b))
}

func (s Segment) IntersectsPolygon(poly Polygon) bool {
	n := len(poly.Points)
	for i, p := range poly.Points {
		if s.Intersects(Segment{p, poly.Points[CircularIndex(i+1, n)]}) {
			return true
		}
	}
	return false
}

func (s Segment) LengthSquared() float64 {
	return s.Start.DistanceSquared(s.End)
}

// For a point already known to be collinear with s.
func (s Segment) boxContains(p Point) bool {
	return p.X >= min(s.Start.X, s.End.X) && p.X <= max(s.Start.X, s.End.X) &&
		p.Y >= min(s.Start.Y, s.End.Y) && p.Y <= max(s.Start.Y, s.End.Y)
}

// Projects a collinear segment onto s and checks that the overlap is longer
// than a single point.
func (s Segment) overlapsCollinear(other Segment) bool {
	dir := s.End.Sub(s.Start)
	lengthSquared := dir.Dot(dir)
	if lengthSquared == 0 {
		return false
	}
	t0 := other.Start.Sub(s.Start).Dot(dir) / lengthSquared
	t1 := other.End.Sub(s.Start).Dot(dir) / lengthSquared
	lo := max(0, min(t0, t1))
	hi := min(1, max(t0, t1))
	return hi > lo
}
