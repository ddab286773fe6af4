// Package fixedpoint implements the integer scaling contract of spec
// §4.D: promoting caller-unit float64 coordinates to 64-bit integers for
// the boolean solver, and back. Kept separate from package boolean so the
// offset package (which needs the exact same scale/descale rules to
// convert distances) can share it without importing the solver.
package fixedpoint

import (
	"math"

	"github.com/arl/camgeo/errs"
	"github.com/arl/camgeo/geom"
)

// DefaultScale is the default fixed-point multiplier (spec §6 "scale").
const DefaultScale = 10000

// MinScale and MaxScale bound Config.Scale; camgeo.Engine.Initialize
// applies ClampScale to it.
const (
	MinScale = 1000
	MaxScale = 1000000
)

// ClampScale clamps s to [MinScale, MaxScale].
func ClampScale(s int64) int64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}

// maxSafeProduct is the largest magnitude a scaled coordinate may have
// such that the product of two such coordinates still fits in an int64
// (spec §4.D "Products of two coordinates fit in 64 bits for the maximum
// coordinate ever handled"). Conservatively sqrt(MaxInt64).
var maxSafeProduct = int64(math.Sqrt(float64(math.MaxInt64)))

// Scale converts a caller-unit point to scaled integer coordinates.
// Returns ScaleOverflow if the scaled value would not safely support a
// product with another scaled coordinate.
func Scale(p geom.Point, scale int64) (x, y int64, err error) {
	sx := math.Round(p.X * float64(scale))
	sy := math.Round(p.Y * float64(scale))
	if math.Abs(sx) > float64(maxSafeProduct) || math.Abs(sy) > float64(maxSafeProduct) {
		return 0, 0, errs.New("fixedpoint.Scale", errs.ScaleOverflow)
	}
	return int64(sx), int64(sy), nil
}

// Unscale converts scaled integer coordinates back to caller units.
func Unscale(x, y int64, scale int64) geom.Point {
	return geom.Pt(float64(x)/float64(scale), float64(y)/float64(scale))
}

// ScaleRing scales a whole ring of points, returning ScaleOverflow if any
// point overflows.
func ScaleRing(pts []geom.Point, scale int64) ([][2]int64, error) {
	out := make([][2]int64, len(pts))
	for i, p := range pts {
		x, y, err := Scale(p, scale)
		if err != nil {
			return nil, err
		}
		out[i] = [2]int64{x, y}
	}
	return out, nil
}

// UnscaleRing converts a whole ring of scaled integer coordinates back to
// caller units.
func UnscaleRing(pts [][2]int64, scale int64) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = Unscale(p[0], p[1], scale)
	}
	return out
}
