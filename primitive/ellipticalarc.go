package primitive

import "github.com/arl/camgeo/geom"

// EllipticalArc is an analytic elliptical arc primitive expressed in SVG
// arc parameterization (spec §3.1). It cannot be offset analytically: an
// offset ellipse is not itself an ellipse, so it must go through the
// general tessellate-then-inflate path (spec §4.E.2).
type EllipticalArc struct {
	Base
	Start, End geom.Point
	Rx, Ry     float64
	Phi        float64 // x-axis rotation, radians
	LargeArc   bool
	Sweep      bool
}

// NewEllipticalArc constructs an EllipticalArc. Fails with InvalidPrimitive
// if either radius is not strictly positive or any attribute is
// non-finite.
func NewEllipticalArc(start, end geom.Point, rx, ry, phi float64, largeArc, sweep bool, props Properties) (*EllipticalArc, error) {
	if !finite(start.X, start.Y, end.X, end.Y, rx, ry, phi) || rx <= 0 || ry <= 0 {
		return nil, invalidPrimitive("NewEllipticalArc")
	}
	return &EllipticalArc{
		Base: newBase(props), Start: start, End: end, Rx: rx, Ry: ry,
		Phi: phi, LargeArc: largeArc, Sweep: sweep,
	}, nil
}

func (e *EllipticalArc) Bounds() geom.Rect {
	if e.haveBounds {
		return e.cached
	}
	// Conservative bound: the rx/ry-expanded box around both endpoints,
	// rotated extent accounted for by the larger of rx, ry on each axis.
	r := e.Rx
	if e.Ry > r {
		r = e.Ry
	}
	b := geom.EmptyRect()
	b = b.Extend(e.Start).Extend(e.End)
	b = b.Expand(r)
	if half := e.Properties().StrokeWidth / 2; half > 0 {
		b = b.Expand(half)
	}
	e.cached = b
	e.haveBounds = true
	return e.cached
}

func (e *EllipticalArc) IsAnalytic() bool             { return true }
func (e *EllipticalArc) Capability() OffsetCapability { return PolygonalOnly }
