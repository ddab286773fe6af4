package primitive

import "github.com/arl/camgeo/geom"

// Circle is an analytic circle primitive (spec §3.1).
type Circle struct {
	Base
	Center geom.Point
	Radius float64
}

// NewCircle constructs a Circle. Fails with InvalidPrimitive if radius is
// not strictly positive or any attribute is non-finite (spec §4.A
// "Failure").
func NewCircle(center geom.Point, radius float64, props Properties) (*Circle, error) {
	if !finite(center.X, center.Y, radius) || radius <= 0 {
		return nil, invalidPrimitive("NewCircle")
	}
	return &Circle{Base: newBase(props), Center: center, Radius: radius}, nil
}

func (c *Circle) Bounds() geom.Rect {
	if c.haveBounds {
		return c.cached
	}
	r := c.Radius + c.Properties().StrokeWidth/2
	c.cached = geom.RectCR(c.Center, r)
	c.haveBounds = true
	return c.cached
}

func (c *Circle) IsAnalytic() bool          { return true }
func (c *Circle) Capability() OffsetCapability { return AnalyticOffset }
