package primitive

import (
	"math"

	"github.com/arl/camgeo/geom"
)

// Arc is an analytic circular arc primitive (spec §3.1). The angular span
// must not exceed a full turn: |EndAngle - StartAngle| <= 2*pi.
type Arc struct {
	Base
	Center               geom.Point
	Radius               float64
	StartAngle, EndAngle float64
	Clockwise            bool
}

// NewArc constructs an Arc. Fails with InvalidPrimitive if radius is not
// strictly positive, any attribute is non-finite, or the angular span
// exceeds a full turn.
func NewArc(center geom.Point, radius, startAngle, endAngle float64, clockwise bool, props Properties) (*Arc, error) {
	if !finite(center.X, center.Y, radius, startAngle, endAngle) || radius <= 0 {
		return nil, invalidPrimitive("NewArc")
	}
	if math.Abs(endAngle-startAngle) > 2*math.Pi+1e-9 {
		return nil, invalidPrimitive("NewArc")
	}
	return &Arc{
		Base: newBase(props), Center: center, Radius: radius,
		StartAngle: startAngle, EndAngle: endAngle, Clockwise: clockwise,
	}, nil
}

// Point returns the point on the arc's circle at the given angle.
func (a *Arc) Point(angle float64) geom.Point {
	return geom.Pt(a.Center.X+a.Radius*math.Cos(angle), a.Center.Y+a.Radius*math.Sin(angle))
}

// cardinalAngles are the four axis crossings tested against an arc's
// angular sweep when computing its bounding box (spec §4.A).
var cardinalAngles = [4]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}

// inSweep reports whether angle lies within the arc sweep from start to
// end, walked in the given direction (spec §4.B "Numeric precision":
// strict inequality checks, with 2*pi added when walking CCW and the
// naive difference is negative).
func inSweep(angle, start, end float64, clockwise bool) bool {
	from, to := start, end
	if clockwise {
		from, to = end, start
	}
	from = geom.NormalizeAngle(from)
	to = geom.NormalizeAngle(to)
	a := geom.NormalizeAngle(angle)
	if to < from {
		to += 2 * math.Pi
	}
	if a < from {
		a += 2 * math.Pi
	}
	return a <= to
}

func (a *Arc) Bounds() geom.Rect {
	if a.haveBounds {
		return a.cached
	}
	b := geom.EmptyRect()
	b = b.Extend(a.Point(a.StartAngle))
	b = b.Extend(a.Point(a.EndAngle))
	for _, ca := range cardinalAngles {
		if inSweep(ca, a.StartAngle, a.EndAngle, a.Clockwise) {
			b = b.Extend(a.Point(ca))
		}
	}
	if half := a.Properties().StrokeWidth / 2; half > 0 {
		b = b.Expand(half)
	}
	a.cached = b
	a.haveBounds = true
	return a.cached
}

func (a *Arc) IsAnalytic() bool             { return true }
func (a *Arc) Capability() OffsetCapability { return AnalyticOffset }
