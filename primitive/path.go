package primitive

import (
	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/registry"
)

// Contour is one ring of a Path: an ordered list of points, optionally
// closed, optionally hosting arc-segment metadata over index ranges of
// Points (spec §3.1).
type Contour struct {
	Points      []geom.Point
	ArcSegments []registry.ArcSegment
	IsHole      bool
	Closed      bool
}

// Path is a polygonal primitive made of one or more contours (spec §3.1).
// Unlike the analytic variants, a Path is never itself analytically
// offsettable (spec §4.A) — it must go through the general tessellated
// offset path, even though its own geometry may already be polygonal.
type Path struct {
	Base
	Contours []Contour
}

// NewPath constructs a Path from the given contours. Degenerate contours
// (fewer than 3 distinct vertices, spec §3.2 invariant 1) are dropped
// silently; a Path left with zero contours after dropping is rejected
// with InvalidPrimitive.
func NewPath(contours []Contour, props Properties) (*Path, error) {
	kept := make([]Contour, 0, len(contours))
	for _, c := range contours {
		if countDistinct(c.Points) < 3 {
			continue
		}
		for _, p := range c.Points {
			if !finite(p.X, p.Y) {
				return nil, invalidPrimitive("NewPath")
			}
		}
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return nil, invalidPrimitive("NewPath")
	}
	return &Path{Base: newBase(props), Contours: kept}, nil
}

func countDistinct(pts []geom.Point) int {
	n := 0
	for i, p := range pts {
		distinct := true
		for j := 0; j < i; j++ {
			if p.Equal(pts[j], 1e-9) {
				distinct = false
				break
			}
		}
		if distinct {
			n++
		}
	}
	return n
}

func (p *Path) Bounds() geom.Rect {
	if p.haveBounds {
		return p.cached
	}
	b := geom.EmptyRect()
	for _, c := range p.Contours {
		for _, pt := range c.Points {
			b = b.Extend(pt)
		}
	}
	if half := p.Properties().StrokeWidth / 2; half > 0 {
		b = b.Expand(half)
	}
	p.cached = b
	p.haveBounds = true
	return p.cached
}

func (p *Path) IsAnalytic() bool             { return false }
func (p *Path) Capability() OffsetCapability { return PolygonalOnly }

// Outer returns the index of the first non-hole contour, or -1 if Path has
// none (which NewPath never produces, since at least one contour is kept,
// but a Path built by other means could).
func (p *Path) Outer() int {
	for i, c := range p.Contours {
		if !c.IsHole {
			return i
		}
	}
	return -1
}
