package tessellate

import (
	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/registry"
)

// NormalizeWinding reverses r if its signed area is negative, so that
// every emitted ring is CCW (spec §4.B "Winding normalization"). End-caps
// are constructed CCW already so they never trigger a reversal on their
// own; this is meant to be applied to whole rings assembled from multiple
// tessellation calls.
func NormalizeWinding(r Ring) Ring {
	pts := r.Points()
	if geom.IsCCW(pts) {
		return r
	}
	n := len(r.Vertices)
	rev := make([]Vertex, n)
	for i, v := range r.Vertices {
		rev[n-1-i] = v
	}
	return Ring{Vertices: rev, ArcSegments: reverseArcSegments(r.ArcSegments, n)}
}

// reverseArcSegments remaps segs onto a ring whose point order has been
// reversed. The vertex that used to sit at s.Start (angle StartAngle) now
// sits at index n-1-s.Start, which becomes the new segment's End, and vice
// versa — so StartAngle/EndAngle swap along with the index range, and
// Clockwise flips: sweeping from the new Start (the old End) to the new End
// (the old Start) now traverses the arc in the opposite angular direction.
func reverseArcSegments(segs []registry.ArcSegment, n int) []registry.ArcSegment {
	out := make([]registry.ArcSegment, len(segs))
	for i, s := range segs {
		out[len(segs)-1-i] = registry.ArcSegment{
			Start: n - 1 - s.End, End: n - 1 - s.Start, CurveID: s.CurveID,
			Center: s.Center, Radius: s.Radius, StartAngle: s.EndAngle,
			EndAngle: s.StartAngle, Clockwise: !s.Clockwise,
		}
	}
	return out
}
