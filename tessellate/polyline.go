package tessellate

import (
	"math"

	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/registry"
)

// lineIntersect returns the intersection of lines p1+t*d1 and p2+t*d2, or
// ok=false if they are parallel.
func lineIntersect(p1, d1, p2, d2 geom.Point) (geom.Point, bool) {
	denom := d1.Cross(d2)
	if math.Abs(denom) < 1e-12 {
		return geom.Point{}, false
	}
	diff := p2.Sub(p1)
	t := diff.Cross(d2) / denom
	return p1.Add(d1.Scale(t)), true
}

// sideOffset computes the offset points for one side (sign=+1 left,
// sign=-1 right) of a polyline, applying a miter join at each interior
// vertex, clamped to 2*halfWidth beyond which the join collapses to a
// bevel in the direction of the miter (spec §4.B).
func sideOffset(pts []geom.Point, halfWidth, sign float64) []geom.Point {
	n := len(pts)
	out := make([]geom.Point, 0, n+4)

	dir := func(i int) geom.Point { return pts[i+1].Sub(pts[i]).Normalize() }

	// First point: offset along the first segment's normal only.
	n0 := dir(0).Perp().Scale(sign)
	out = append(out, pts[0].Add(n0.Scale(halfWidth)))

	for i := 1; i < n-1; i++ {
		dIn := dir(i - 1)
		dOut := dir(i)
		nIn := dIn.Perp().Scale(sign)
		nOut := dOut.Perp().Scale(sign)

		if dIn.Sub(dOut).Len() < 1e-9 {
			out = append(out, pts[i].Add(nIn.Scale(halfWidth)))
			continue
		}

		p1 := pts[i-1].Add(nIn.Scale(halfWidth))
		p2 := pts[i].Add(nOut.Scale(halfWidth))
		miter, ok := lineIntersect(p1, dIn, p2, dOut)
		if ok && miter.Dist(pts[i]) <= 2*halfWidth {
			out = append(out, miter)
		} else {
			// Bevel: two points, one per incoming/outgoing offset line.
			out = append(out, pts[i].Add(nIn.Scale(halfWidth)))
			out = append(out, pts[i].Add(nOut.Scale(halfWidth)))
		}
	}

	nLast := dir(n - 2).Perp().Scale(sign)
	out = append(out, pts[n-1].Add(nLast.Scale(halfWidth)))
	return out
}

// Polyline tessellates a stroked open polyline (>= 2 points) into a ring
// (spec §4.B): per-segment line rule plus miter joins at interior
// vertices, with rounded end caps identical to Line's.
func Polyline(pts []geom.Point, width float64, cfg Config, reg *registry.Registry) Ring {
	if len(pts) < 2 {
		return Ring{}
	}
	if len(pts) == 2 {
		return Line(pts[0], pts[1], width, cfg, reg)
	}

	halfWidth := width / 2
	n := SegmentCount(halfWidth, cfg) / 2
	if n < 1 {
		n = 1
	}

	startDir := math.Atan2(pts[1].Y-pts[0].Y, pts[1].X-pts[0].X)
	endDir := math.Atan2(pts[len(pts)-1].Y-pts[len(pts)-2].Y, pts[len(pts)-1].X-pts[len(pts)-2].X)

	rightSide := sideOffset(pts, halfWidth, -1)
	leftSide := sideOffset(pts, halfWidth, 1)

	startCap, startID := capPoints(pts[0], startDir+math.Pi/2, startDir+3*math.Pi/2, halfWidth, n, reg)
	endCap, endID := capPoints(pts[len(pts)-1], endDir-math.Pi/2, endDir+math.Pi/2, halfWidth, n, reg)

	var verts []Vertex
	// Right side: from start to end.
	for _, p := range rightSide {
		verts = append(verts, Vertex{Point: p})
	}
	verts = append(verts, endCap...)
	// Left side: from end back to start.
	for i := len(leftSide) - 1; i >= 0; i-- {
		verts = append(verts, Vertex{Point: leftSide[i]})
	}
	verts = append(verts, startCap...)

	arcSegs := []registry.ArcSegment{
		{Start: len(rightSide), End: len(rightSide) + len(endCap) - 1, CurveID: endID,
			Center: pts[len(pts)-1], Radius: halfWidth, StartAngle: endDir - math.Pi/2, EndAngle: endDir + math.Pi/2},
		{Start: len(verts) - len(startCap), End: len(verts) - 1, CurveID: startID,
			Center: pts[0], Radius: halfWidth, StartAngle: startDir + math.Pi/2, EndAngle: startDir + 3*math.Pi/2},
	}
	return Ring{Vertices: verts, ArcSegments: arcSegs}
}
