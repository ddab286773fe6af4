package tessellate

import (
	"math"

	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/registry"
)

// capPoints walks CCW from fromAngle to toAngle (toAngle is normalized to
// be >= fromAngle, adding 2*pi if necessary, matching the direction-aware
// sweep rule of spec §4.B) around center at radius r, emitting n+1 points
// inclusive of both ends. It registers one arc descriptor for the cap
// (always CCW, per spec §3.3: "End-cap entries are always registered with
// clockwise=false by construction").
func capPoints(center geom.Point, fromAngle, toAngle float64, r float64, n int, reg *registry.Registry) ([]Vertex, registry.CurveID) {
	from := geom.NormalizeAngle(fromAngle)
	to := geom.NormalizeAngle(toAngle)
	if to <= from {
		to += 2 * math.Pi
	}
	id := reg.Register(registry.Descriptor{
		Variant: registry.VariantArc, Center: center, Radius: r,
		StartAngle: from, EndAngle: to, Clockwise: false, Source: registry.SourceEndCap,
	})
	verts := make([]Vertex, n+1)
	for i := 0; i <= n; i++ {
		angle := from + (to-from)*float64(i)/float64(n)
		p := geom.Pt(center.X+r*math.Cos(angle), center.Y+r*math.Sin(angle))
		cid := id
		verts[i] = Vertex{
			Point: p, CurveID: &cid, SegmentIndex: i, TotalSegments: n + 1,
			T:                 float64(i) / float64(n),
			IsConnectionPoint: i == 0 || i == n,
		}
	}
	return verts, id
}

// Line tessellates a stroked line segment of the given width into a
// rounded-cap rectangle ring — a "pill" (spec §4.B). A zero-length segment
// degenerates to a circle of radius width/2.
func Line(p0, p1 geom.Point, width float64, cfg Config, reg *registry.Registry) Ring {
	halfWidth := width / 2
	d := p1.Sub(p0)
	length := d.Len()
	if length < cfg.CoordinatePrecision {
		return Circle(p0, halfWidth, cfg, reg)
	}

	dirAngle := math.Atan2(d.Y, d.X)
	n := SegmentCount(halfWidth, cfg) / 2
	if n < 1 {
		n = 1
	}

	endCap, endID := capPoints(p1, dirAngle-math.Pi/2, dirAngle+math.Pi/2, halfWidth, n, reg)
	startCap, startID := capPoints(p0, dirAngle+math.Pi/2, dirAngle+3*math.Pi/2, halfWidth, n, reg)

	verts := make([]Vertex, 0, len(endCap)+len(startCap))
	verts = append(verts, endCap...)
	verts = append(verts, startCap...)

	arcSegs := []registry.ArcSegment{
		{Start: 0, End: len(endCap) - 1, CurveID: endID, Center: p1, Radius: halfWidth,
			StartAngle: dirAngle - math.Pi/2, EndAngle: dirAngle + math.Pi/2},
		{Start: len(endCap), End: len(verts) - 1, CurveID: startID, Center: p0, Radius: halfWidth,
			StartAngle: dirAngle + math.Pi/2, EndAngle: dirAngle + 3*math.Pi/2},
	}
	return Ring{Vertices: verts, ArcSegments: arcSegs}
}
