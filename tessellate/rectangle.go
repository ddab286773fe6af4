package tessellate

import (
	"math"

	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/registry"
)

// RoundedRectangle tessellates a rectangle anchored at bottomLeft with the
// given corner radius into a CCW ring. r<=0 produces a sharp-cornered
// rectangle with no registered curves; r is clamped to half the shorter
// side, matching Obround's corner-radius clamp for the degenerate case
// where a "rounded rectangle" is actually a stadium.
func RoundedRectangle(bottomLeft geom.Point, width, height, r float64, cfg Config, reg *registry.Registry) Ring {
	if r <= 0 {
		pts := []geom.Point{
			bottomLeft,
			bottomLeft.Add(geom.Pt(width, 0)),
			bottomLeft.Add(geom.Pt(width, height)),
			bottomLeft.Add(geom.Pt(0, height)),
		}
		verts := make([]Vertex, len(pts))
		for i, p := range pts {
			verts[i] = Vertex{Point: p}
		}
		return Ring{Vertices: verts}
	}
	if r > width/2 {
		r = width / 2
	}
	if r > height/2 {
		r = height / 2
	}

	centers := [4]geom.Point{
		bottomLeft.Add(geom.Pt(width-r, r)),        // bottom-right
		bottomLeft.Add(geom.Pt(width-r, height-r)), // top-right
		bottomLeft.Add(geom.Pt(r, height-r)),       // top-left
		bottomLeft.Add(geom.Pt(r, r)),               // bottom-left
	}
	startAngles := [4]float64{-math.Pi / 2, 0, math.Pi / 2, math.Pi}

	capN := SegmentCount(r, cfg) / 4
	if capN < 1 {
		capN = 1
	}

	var verts []Vertex
	var segs []registry.ArcSegment
	for i := 0; i < 4; i++ {
		from := startAngles[i]
		to := from + math.Pi/2
		pts, id := arcRun(centers[i], r, from, to, false, capN, registry.SourceEndCap, reg)
		start := len(verts)
		verts = append(verts, pts...)
		segs = append(segs, registry.ArcSegment{
			Start: start, End: len(verts) - 1, CurveID: id,
			Center: centers[i], Radius: r, StartAngle: from, EndAngle: to,
		})
	}
	return Ring{Vertices: verts, ArcSegments: segs}
}
