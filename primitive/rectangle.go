package primitive

import "github.com/arl/camgeo/geom"

// Rectangle is an axis-aligned analytic rectangle primitive (spec §3.1).
type Rectangle struct {
	Base
	BottomLeft    geom.Point
	Width, Height float64
}

// NewRectangle constructs a Rectangle. Fails with InvalidPrimitive if width
// or height are not strictly positive or any attribute is non-finite.
func NewRectangle(bottomLeft geom.Point, width, height float64, props Properties) (*Rectangle, error) {
	if !finite(bottomLeft.X, bottomLeft.Y, width, height) || width <= 0 || height <= 0 {
		return nil, invalidPrimitive("NewRectangle")
	}
	return &Rectangle{Base: newBase(props), BottomLeft: bottomLeft, Width: width, Height: height}, nil
}

func (r *Rectangle) Bounds() geom.Rect {
	if r.haveBounds {
		return r.cached
	}
	half := r.Properties().StrokeWidth / 2
	r.cached = geom.RectWH(r.BottomLeft.X-half, r.BottomLeft.Y-half, r.Width+2*half, r.Height+2*half)
	r.haveBounds = true
	return r.cached
}

func (r *Rectangle) IsAnalytic() bool             { return true }
func (r *Rectangle) Capability() OffsetCapability { return AnalyticOffset }

// CornerRadius is the radius an outward offset of distance d applies to
// each of the rectangle's four corners (spec §4.E.1): |d|.
func (r *Rectangle) CornerRadius(d float64) float64 {
	if d < 0 {
		return -d
	}
	return d
}
