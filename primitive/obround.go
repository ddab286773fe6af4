package primitive

import "github.com/arl/camgeo/geom"

// Obround is an analytic stadium/obround shape: a rectangle capped by two
// half-circles whose radius is min(width, height)/2 (spec §3.1).
type Obround struct {
	Base
	Position      geom.Point // bottom-left of the bounding rectangle
	Width, Height float64
}

// NewObround constructs an Obround. Fails with InvalidPrimitive if width or
// height are not strictly positive or any attribute is non-finite.
func NewObround(position geom.Point, width, height float64, props Properties) (*Obround, error) {
	if !finite(position.X, position.Y, width, height) || width <= 0 || height <= 0 {
		return nil, invalidPrimitive("NewObround")
	}
	return &Obround{Base: newBase(props), Position: position, Width: width, Height: height}, nil
}

// CornerRadius returns min(Width, Height)/2, the radius of both caps (spec
// §3.1 invariant).
func (o *Obround) CornerRadius() float64 {
	if o.Width < o.Height {
		return o.Width / 2
	}
	return o.Height / 2
}

func (o *Obround) Bounds() geom.Rect {
	if o.haveBounds {
		return o.cached
	}
	half := o.Properties().StrokeWidth / 2
	o.cached = geom.RectWH(o.Position.X-half, o.Position.Y-half, o.Width+2*half, o.Height+2*half)
	o.haveBounds = true
	return o.cached
}

func (o *Obround) IsAnalytic() bool             { return true }
func (o *Obround) Capability() OffsetCapability { return AnalyticOffset }
