// Package tessellate implements the Geometry Utilities (spec §4.B): pure,
// deterministic functions converting analytic or stroked shapes into CCW
// vertex rings, each vertex carrying optional curve provenance registered
// with a registry.Registry.
//
// The teacher has no single analogue of "tessellate a curve into a
// polyline" (Recast consumes triangle meshes, it doesn't generate curves),
// but the *shape* of these functions — pure, allocate-and-fill, driven by
// a small tunables struct — follows recast/rasterization.go and
// recast/meshdetail.go, which build vertex/triangle arrays the same way.
package tessellate

import (
	"math"

	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/registry"
)

// Config holds the tunables controlling adaptive tessellation (spec §4.B).
type Config struct {
	TargetSegmentLength float64
	MinSegments         int
	MaxSegments         int
	CoordinatePrecision float64
}

// DefaultConfig mirrors the default values named in spec §6.
func DefaultConfig() Config {
	return Config{
		TargetSegmentLength: 0.05,
		MinSegments:         8,
		MaxSegments:         512,
		CoordinatePrecision: 0.001,
	}
}

// Vertex is one point of a tessellated ring, with optional curve
// provenance (spec §3.3). Points generated by linear (non-curved) edges
// carry a nil CurveID.
type Vertex struct {
	Point             geom.Point
	CurveID           *registry.CurveID
	SegmentIndex      int
	TotalSegments     int
	T                 float64
	IsConnectionPoint bool
}

// Ring is a tessellated, ordered vertex sequence, read as closed: an edge
// joins the last vertex back to the first. Circle, Line, Obround and
// RoundedRectangle rings do not repeat the first vertex at the end; the
// last vertex of an Arc or a Polyline (3+ points) ring coincides with its
// first.
type Ring struct {
	Vertices    []Vertex
	ArcSegments []registry.ArcSegment
}

// Points extracts the plain point sequence from r.
func (r Ring) Points() []geom.Point {
	pts := make([]geom.Point, len(r.Vertices))
	for i, v := range r.Vertices {
		pts[i] = v.Point
	}
	return pts
}

// SegmentCount implements the segment-count contract of spec §4.B: for a
// curve of radius r and target chord length L, the chosen count is
// clamp(round(2*pi*r/L/8)*8, min, max) — always a multiple of 8 so that
// circles tessellated at different radii share quadrant alignment (spec
// §8 P3).
func SegmentCount(radius float64, cfg Config) int {
	if radius <= 0 {
		return cfg.MinSegments
	}
	circumference := 2 * math.Pi * radius
	raw := circumference / cfg.TargetSegmentLength / 8
	n := int(math.Round(raw)) * 8
	if n < cfg.MinSegments {
		n = cfg.MinSegments
	}
	if n > cfg.MaxSegments {
		n = cfg.MaxSegments
	}
	// Round MinSegments/MaxSegments themselves up/down to a multiple of 8
	// so the clamp never breaks the invariant.
	if n%8 != 0 {
		n = ((n + 4) / 8) * 8
		if n == 0 {
			n = 8
		}
	}
	return n
}
