package tessellate

import (
	"math"

	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/registry"
)

// centerlinePoint returns the point on the arc's centerline circle at the
// given angle.
func centerlinePoint(center geom.Point, radius, angle float64) geom.Point {
	return geom.Pt(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle))
}

func arcRun(center geom.Point, radius, fromAngle, toAngle float64, clockwise bool, n int, src registry.Source, reg *registry.Registry) ([]Vertex, registry.CurveID) {
	id := reg.Register(registry.Descriptor{
		Variant: registry.VariantArc, Center: center, Radius: radius,
		StartAngle: fromAngle, EndAngle: toAngle, Clockwise: clockwise, Source: src,
	})
	verts := make([]Vertex, n+1)
	for i := 0; i <= n; i++ {
		angle := fromAngle + (toAngle-fromAngle)*float64(i)/float64(n)
		cid := id
		verts[i] = Vertex{
			Point: centerlinePoint(center, radius, angle), CurveID: &cid,
			SegmentIndex: i, TotalSegments: n + 1, T: float64(i) / float64(n),
		}
	}
	return verts, id
}

// Arc tessellates a stroked circular arc into a ring (spec §4.B): outer
// arc (CCW along sweep) -> end cap (semicircle, CCW) -> inner arc
// (reversed) -> start cap (semicircle, CCW), force-closed if the last
// point does not coincide with the first within 0.1*precision.
func Arc(center geom.Point, radius, startAngle, endAngle float64, clockwise bool, width float64, cfg Config, reg *registry.Registry) Ring {
	halfWidth := width / 2
	outerRadius := radius + halfWidth
	innerRadius := math.Max(radius-halfWidth, 0)

	sweep := math.Abs(endAngle - startAngle)
	dirMul := 1.0
	if clockwise {
		dirMul = -1.0
	}
	outerEnd := startAngle + dirMul*sweep

	fraction := sweep / (2 * math.Pi)
	nOuter := int(math.Max(2, math.Round(float64(SegmentCount(outerRadius, cfg))*fraction)))
	nInner := int(math.Max(2, math.Round(float64(SegmentCount(innerRadius, cfg))*fraction)))
	capN := SegmentCount(halfWidth, cfg) / 2
	if capN < 1 {
		capN = 1
	}

	outer, outerID := arcRun(center, outerRadius, startAngle, outerEnd, clockwise, nOuter, registry.SourceArcOuter, reg)

	endCapCenter := centerlinePoint(center, radius, outerEnd)
	endCap, endCapID := capPoints(endCapCenter, outerEnd, outerEnd+math.Pi, halfWidth, capN, reg)

	inner, innerID := arcRun(center, innerRadius, startAngle, outerEnd, clockwise, nInner, registry.SourceArcInner, reg)
	innerReversed := reverseVertices(inner)

	startCapCenter := centerlinePoint(center, radius, startAngle)
	startCap, startCapID := capPoints(startCapCenter, startAngle+math.Pi, startAngle+2*math.Pi, halfWidth, capN, reg)

	verts := make([]Vertex, 0, len(outer)+len(endCap)+len(inner)+len(startCap))
	segs := make([]registry.ArcSegment, 0, 4)

	start := len(verts)
	verts = append(verts, outer...)
	segs = append(segs, registry.ArcSegment{Start: start, End: len(verts) - 1, CurveID: outerID,
		Center: center, Radius: outerRadius, StartAngle: startAngle, EndAngle: outerEnd, Clockwise: clockwise})

	start = len(verts)
	verts = append(verts, endCap[1:]...)
	segs = append(segs, registry.ArcSegment{Start: start - 1, End: len(verts) - 1, CurveID: endCapID,
		Center: endCapCenter, Radius: halfWidth, StartAngle: outerEnd, EndAngle: outerEnd + math.Pi})

	start = len(verts)
	verts = append(verts, innerReversed[1:]...)
	segs = append(segs, registry.ArcSegment{Start: start - 1, End: len(verts) - 1, CurveID: innerID,
		Center: center, Radius: innerRadius, StartAngle: outerEnd, EndAngle: startAngle, Clockwise: !clockwise})

	start = len(verts)
	verts = append(verts, startCap[1:]...)
	segs = append(segs, registry.ArcSegment{Start: start - 1, End: len(verts) - 1, CurveID: startCapID,
		Center: startCapCenter, Radius: halfWidth, StartAngle: startAngle + math.Pi, EndAngle: startAngle + 2*math.Pi})

	if len(verts) > 0 {
		first, last := verts[0].Point, verts[len(verts)-1].Point
		if first.Dist(last) > 0.1*cfg.CoordinatePrecision {
			verts = append(verts, Vertex{Point: first})
		}
	}

	return Ring{Vertices: verts, ArcSegments: segs}
}

func reverseVertices(vs []Vertex) []Vertex {
	out := make([]Vertex, len(vs))
	n := len(vs)
	for i, v := range vs {
		out[n-1-i] = v
	}
	return out
}
