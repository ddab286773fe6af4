// Package geom provides the 2D value types shared by every layer of the CAM
// geometry core: points, bounding rectangles and small vector helpers. It
// plays the role the teacher's vendored github.com/arl/gogeo/f32/d3 package
// plays for go-detour, except in float64 — see DESIGN.md for why float32
// was dropped.
package geom

import "math"

// Point is a 2D point or vector in caller units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X, Y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the 2D (scalar) cross product of p and q.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Len returns the Euclidean length of p treated as a vector.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return p.Sub(q).Len() }

// DistSqr returns the squared Euclidean distance between p and q, useful
// when only relative distances matter and a sqrt can be avoided.
func (p Point) DistSqr(q Point) float64 {
	d := p.Sub(q)
	return d.X*d.X + d.Y*d.Y
}

// Normalize returns p scaled to unit length; the zero vector is returned
// unchanged.
func (p Point) Normalize() Point {
	l := p.Len()
	if l < 1e-12 {
		return p
	}
	return p.Scale(1 / l)
}

// Perp returns p rotated +90 degrees (the left-hand perpendicular).
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

// Rotated returns p rotated by angle radians about the origin.
func (p Point) Rotated(angle float64) Point {
	s, c := math.Sin(angle), math.Cos(angle)
	return Point{p.X*c - p.Y*s, p.X*s + p.Y*c}
}

// Equal reports whether p and q coincide within the given absolute
// precision, the coordinate-identity test used throughout §4.B/§4.D.
func (p Point) Equal(q Point, precision float64) bool {
	return math.Abs(p.X-q.X) <= precision && math.Abs(p.Y-q.Y) <= precision
}

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyRect returns a rect in the "not yet extended" state: any call to
// Extend or Union on it adopts the other operand's bounds outright.
func EmptyRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// RectWH returns the rectangle with bottom-left (x, y) and the given width
// and height.
func RectWH(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// RectCR returns the rectangle centered on c with "radius" r on each axis.
func RectCR(c Point, r float64) Rect {
	return Rect{MinX: c.X - r, MinY: c.Y - r, MaxX: c.X + r, MaxY: c.Y + r}
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// IsFinite reports whether every bound of r is a finite float64, the
// validity condition required by §3.2 invariant 3.
func (r Rect) IsFinite() bool {
	for _, v := range []float64{r.MinX, r.MinY, r.MaxX, r.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Extend grows r in place (by value; callers reassign) to include p.
func (r Rect) Extend(p Point) Rect {
	return Rect{
		MinX: math.Min(r.MinX, p.X), MinY: math.Min(r.MinY, p.Y),
		MaxX: math.Max(r.MaxX, p.X), MaxY: math.Max(r.MaxY, p.Y),
	}
}

// Union returns the smallest rect containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, s.MinX), MinY: math.Min(r.MinY, s.MinY),
		MaxX: math.Max(r.MaxX, s.MaxX), MaxY: math.Max(r.MaxY, s.MaxY),
	}
}

// Expand returns r grown by d on every side (d may be negative to shrink).
func (r Rect) Expand(d float64) Rect {
	return Rect{MinX: r.MinX - d, MinY: r.MinY - d, MaxX: r.MaxX + d, MaxY: r.MaxY + d}
}

// Contains reports whether p lies within r (inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// MaxAbsCoord returns the largest absolute coordinate magnitude of any
// corner of r, used against Config.MaxCoordinate (§6, §8 P9).
func (r Rect) MaxAbsCoord() float64 {
	return math.Max(
		math.Max(math.Abs(r.MinX), math.Abs(r.MaxX)),
		math.Max(math.Abs(r.MinY), math.Abs(r.MaxY)),
	)
}

// SignedArea returns the signed area of a closed polygon ring (shoelace
// formula). Positive means counter-clockwise.
func SignedArea(ring []Point) float64 {
	if len(ring) < 3 {
		return 0
	}
	var area float64
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return area / 2
}

// IsCCW reports whether ring has non-negative signed area.
func IsCCW(ring []Point) bool { return SignedArea(ring) >= 0 }

// Reversed returns a copy of ring with point order reversed.
func Reversed(ring []Point) []Point {
	out := make([]Point, len(ring))
	n := len(ring)
	for i, p := range ring {
		out[n-1-i] = p
	}
	return out
}

// PointInPolygon reports whether p lies inside the closed ring, using the
// standard even-odd crossing-number test (the same pnpoly shape the
// teacher's detour/common.go distancePtPolyEdgesSqr applies, generalized
// to a plain containment test for hole-to-outer pairing, §4.D "Result
// topology").
func PointInPolygon(p Point, ring []Point) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := ring[i], ring[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}

// BoundsOf returns the bounding rect of ring.
func BoundsOf(ring []Point) Rect {
	b := EmptyRect()
	for _, p := range ring {
		b = b.Extend(p)
	}
	return b
}

// NormalizeAngle reduces a to the range [0, 2*pi).
func NormalizeAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
