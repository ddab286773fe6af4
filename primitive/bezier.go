package primitive

import "github.com/arl/camgeo/geom"

// Bezier is an analytic quadratic or cubic Bezier curve primitive (spec
// §3.1), carrying its ordered control points. It cannot be offset
// analytically (spec §4.A): a true offset of a Bezier is not itself a
// Bezier of the same degree, so it must go through the general
// tessellate-then-inflate path.
type Bezier struct {
	Base
	Control []geom.Point // 3 points (quadratic) or 4 points (cubic)
}

// NewBezier constructs a Bezier from 3 (quadratic) or 4 (cubic) control
// points. Fails with InvalidPrimitive otherwise, or if any point is
// non-finite.
func NewBezier(control []geom.Point, props Properties) (*Bezier, error) {
	if len(control) != 3 && len(control) != 4 {
		return nil, invalidPrimitive("NewBezier")
	}
	for _, p := range control {
		if !finite(p.X, p.Y) {
			return nil, invalidPrimitive("NewBezier")
		}
	}
	cp := make([]geom.Point, len(control))
	copy(cp, control)
	return &Bezier{Base: newBase(props), Control: cp}, nil
}

// Degree returns 2 for a quadratic curve, 3 for a cubic one.
func (c *Bezier) Degree() int { return len(c.Control) - 1 }

// PointAt evaluates the curve at parameter t in [0, 1] using De Casteljau's
// algorithm.
func (c *Bezier) PointAt(t float64) geom.Point {
	pts := make([]geom.Point, len(c.Control))
	copy(pts, c.Control)
	for len(pts) > 1 {
		next := make([]geom.Point, len(pts)-1)
		for i := range next {
			next[i] = geom.Pt(
				pts[i].X+(pts[i+1].X-pts[i].X)*t,
				pts[i].Y+(pts[i+1].Y-pts[i].Y)*t,
			)
		}
		pts = next
	}
	return pts[0]
}

func (c *Bezier) Bounds() geom.Rect {
	if c.haveBounds {
		return c.cached
	}
	// Control polygon bounds always contain the curve (convex hull
	// property), so it is a safe, cheap bound without subdivision.
	b := geom.EmptyRect()
	for _, p := range c.Control {
		b = b.Extend(p)
	}
	if half := c.Properties().StrokeWidth / 2; half > 0 {
		b = b.Expand(half)
	}
	c.cached = b
	c.haveBounds = true
	return c.cached
}

func (c *Bezier) IsAnalytic() bool             { return true }
func (c *Bezier) Capability() OffsetCapability { return PolygonalOnly }
