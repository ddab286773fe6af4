package offset

import (
	"math"

	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/primitive"
	"github.com/arl/camgeo/registry"
	"github.com/arl/camgeo/tessellate"
)

// analytic implements spec §4.E.1: the four offsettable primitive
// variants are handled without ever visiting the integer engine. handled
// is false for every other primitive, signaling the caller to fall
// through to the general path.
func analytic(p primitive.Primitive, d float64, cfg Config, reg *registry.Registry) (*primitive.Path, bool, error) {
	switch v := p.(type) {
	case *primitive.Circle:
		path, err := offsetCircle(v, d, cfg, reg)
		return path, true, err
	case *primitive.Rectangle:
		path, err := offsetRectangle(v, d, cfg, reg)
		return path, true, err
	case *primitive.Obround:
		path, err := offsetObround(v, d, cfg, reg)
		return path, true, err
	case *primitive.Arc:
		path, err := offsetArc(v, d, cfg, reg)
		return path, true, err
	default:
		return nil, false, nil
	}
}

// ringToContour normalizes r to CCW winding (spec invariant P1: every outer
// contour has signed area >= 0) before turning it into a Contour. Circle,
// Rectangle and Obround tessellation already produce CCW rings, but Arc
// inherits its sweep direction from Clockwise and needs the same
// normalization the general boolean path gets for free from
// boolean.normalizeWinding.
func ringToContour(r tessellate.Ring) primitive.Contour {
	r = tessellate.NormalizeWinding(r)
	return primitive.Contour{Points: r.Points(), ArcSegments: r.ArcSegments, Closed: true}
}

func offsetCircle(c *primitive.Circle, d float64, cfg Config, reg *registry.Registry) (*primitive.Path, error) {
	r := c.Radius + d
	if r <= 0 {
		return nil, nil
	}
	ring := tessellate.Circle(c.Center, r, cfg.Tessellate, reg)
	return primitive.NewPath([]primitive.Contour{ringToContour(ring)}, c.Properties())
}

func offsetRectangle(r *primitive.Rectangle, d float64, cfg Config, reg *registry.Registry) (*primitive.Path, error) {
	w := r.Width + 2*d
	h := r.Height + 2*d
	if w <= 0 || h <= 0 {
		return nil, nil
	}
	bottomLeft := r.BottomLeft.Add(geom.Pt(-d, -d))
	ring := tessellate.RoundedRectangle(bottomLeft, w, h, math.Abs(d), cfg.Tessellate, reg)
	return primitive.NewPath([]primitive.Contour{ringToContour(ring)}, r.Properties())
}

func offsetObround(o *primitive.Obround, d float64, cfg Config, reg *registry.Registry) (*primitive.Path, error) {
	w := o.Width + 2*d
	h := o.Height + 2*d
	if w <= 0 || h <= 0 {
		return nil, nil
	}
	position := o.Position.Add(geom.Pt(-d, -d))
	ring := tessellate.Obround(position, w, h, cfg.Tessellate, reg)
	return primitive.NewPath([]primitive.Contour{ringToContour(ring)}, o.Properties())
}

func offsetArc(a *primitive.Arc, d float64, cfg Config, reg *registry.Registry) (*primitive.Path, error) {
	width := a.Properties().StrokeWidth
	if width <= 0 {
		width = 2 * math.Abs(d)
	}
	radius := a.Radius + d
	if radius <= 0 {
		return nil, nil
	}
	ring := tessellate.Arc(a.Center, radius, a.StartAngle, a.EndAngle, a.Clockwise, width, cfg.Tessellate, reg)
	return primitive.NewPath([]primitive.Contour{ringToContour(ring)}, a.Properties())
}
