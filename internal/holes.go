package internal

import (
	"log/slog"
	"math"
)

// MergeHoles bridges every hole into the fill that contains it, so that each
// connected region becomes one simple polygon (touching itself along the
// bridge) that the ear clipper can consume.
//
// Holes are handled in order. Each one goes to the first fill, in order, that
// contains all of its vertices. Merged fills replace the originals in place,
// so a hole inside a region that an earlier hole already cut away is not
// contained by that fill anymore, and falls through to a fill nested inside
// the earlier hole.
//
// Holes that no fill contains, and holes with no bridge that stays clear of
// both polygons, are dropped. The returned count says how many.
func MergeHoles(fills, holes PolygonList, log *slog.Logger) (PolygonList, int) {
	log = LoggerOrNop(log)
	dropped := 0
	for h := range holes {
		hole := &holes[h]
		fillIndex := -1
		for i := range fills {
			if fills[i].ContainsPolygon(*hole) {
				fillIndex = i
				break
			}
		}
		if fillIndex < 0 {
			log.Debug("dropping hole outside every fill", "hole", hole)
			dropped++
			continue
		}

		fill := &fills[fillIndex]
		holeVertex, fillVertex, ok := FindBridge(*hole, *fill)
		if !ok {
			log.Debug("dropping hole with no clear bridge", "hole", hole, "fill", fill)
			dropped++
			continue
		}
		log.Debug("bridging hole",
			"hole", hole,
			"fill", fill,
			"from", hole.Points[holeVertex],
			"to", fill.Points[fillVertex],
		)
		*fill = splice(*fill, *hole, holeVertex, fillVertex)
	}
	return fills, dropped
}

// FindBridge returns the vertex pair with the smallest distance whose
// connecting segment crosses neither polygon. Ties go to the first pair found.
//
// A fill that already has holes merged into it repeats the vertices at each end
// of a bridge. When the chosen fill vertex is one of those, the copy whose
// corner opens toward the hole is used, so the new bridge never crosses an
// older one.
func FindBridge(hole, fill Polygon) (holeIndex, fillIndex int, ok bool) {
	best := math.Inf(1)
	holeIndex, fillIndex = -1, -1
	for i, a := range hole.Points {
		for j, b := range fill.Points {
			distance := a.DistanceSquared(b)
			if distance >= best {
				continue
			}
			bridge := Segment{a, b}
			if bridge.IntersectsPolygon(hole) || bridge.IntersectsPolygon(fill) {
				continue
			}
			best, holeIndex, fillIndex = distance, i, j
		}
	}
	if holeIndex < 0 {
		return 0, 0, false
	}

	target := fill.Points[fillIndex]
	towards := hole.Points[holeIndex]
	for k, p := range fill.Points {
		if p.Same(target) && cornerContains(fill, k, towards) {
			fillIndex = k
			break
		}
	}
	return holeIndex, fillIndex, true
}

// Whether the direction from vertex k toward d points into the polygon's
// interior. The polygon must be counterclockwise.
func cornerContains(poly Polygon, k int, d Point) bool {
	n := len(poly.Points)
	v := poly.Points[k]
	prev := poly.Points[CircularIndex(k-1, n)]
	next := poly.Points[CircularIndex(k+1, n)]

	toNext := next.Sub(v).Cross(d.Sub(v))
	fromPrev := d.Sub(v).Cross(prev.Sub(v))
	if Orientation(prev, v, next) >= 0 {
		// Convex corner
		return toNext > 0 && fromPrev > 0
	}
	return toNext > 0 || fromPrev > 0
}

// Builds fill[f+1:], fill[:f+1], hole[h:], hole[:h], hole[h], fill[f]. The last
// two points close the zero width slit back to where the fill left off.
func splice(fill, hole Polygon, h, f int) Polygon {
	points := make([]Point, 0, len(fill.Points)+len(hole.Points)+2)
	appendPoint := func(p Point) {
		// Only happens when the hole touches the fill at a vertex.
		if n := len(points); n > 0 && points[n-1].Same(p) {
			return
		}
		points = append(points, p)
	}
	for i := range fill.Points {
		appendPoint(fill.Points[CircularIndex(f+1+i, len(fill.Points))])
	}
	for i := range hole.Points {
		appendPoint(hole.Points[CircularIndex(h+i, len(hole.Points))])
	}
	appendPoint(hole.Points[h])
	appendPoint(fill.Points[f])
	if n := len(points); n > 1 && points[0].Same(points[n-1]) {
		points = points[:n-1]
	}
	return Polygon{Points: points}
}
