package boolean

import (
	"github.com/arl/camgeo/errs"
	"github.com/arl/camgeo/internal/dbg"
)

const defaultTargetCells = 512

// rasterAndTrace rasterizes rings at an adaptively-sized resolution,
// applies the engine's tangency strategy as a morphological closing
// (dilate then erode by half the tangency epsilon, merging near-touching
// contours the same way a real solver's tangency-merge mode would), and
// vectorizes the result back into classified rings.
func (e *Engine) rasterAndTrace(rings []Ring, rule FillRule) []Ring {
	rings = normalizeWinding(rings)
	minX, minY, maxX, maxY, ok := boundsOf(rings)
	if !ok {
		return nil
	}
	cell := e.cfg.PolygonResolution
	if cell == 0 {
		cell = gridCellSize(minX, minY, maxX, maxY, defaultTargetCells)
	}
	g := newGrid(minX, minY, maxX, maxY, cell)
	g.rasterize(rings, rule)

	if e.cfg.TangencyStrategy == TangencyMerge && e.cfg.TangencyEpsilon > 0 {
		r := int(e.cfg.TangencyEpsilon/cell/2) + 1
		g = dilate(g, r)
		g = erode(g, r)
	}

	traced := g.traceContours()
	return classifyTopology(traced)
}

// operandGrid rasterizes a single ring set onto a grid sized to cover
// both bounds, so two independently-bounded operands can be combined
// cell-for-cell.
func (e *Engine) operandGrid(rings []Ring, minX, minY, maxX, maxY, cell int64, rule FillRule) *grid {
	g := newGrid(minX, minY, maxX, maxY, cell)
	g.rasterize(normalizeWinding(rings), rule)
	return g
}

func unionBounds(a, b []Ring) (minX, minY, maxX, maxY int64, ok bool) {
	amx, amy, aXx, aXy, aok := boundsOf(a)
	bmx, bmy, bXx, bXy, bok := boundsOf(b)
	if !aok && !bok {
		return 0, 0, 0, 0, false
	}
	if !aok {
		return bmx, bmy, bXx, bXy, true
	}
	if !bok {
		return amx, amy, aXx, aXy, true
	}
	minX, minY = minI64(amx, bmx), minI64(amy, bmy)
	maxX, maxY = maxI64(aXx, bXx), maxI64(aXy, bXy)
	return minX, minY, maxX, maxY, true
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func (e *Engine) combineOp(a, b []Ring, rule FillRule, combiner func(x, y bool) bool) []Ring {
	e.ctx.StartTimer(dbg.TimerRasterize)
	defer e.ctx.StopTimer(dbg.TimerRasterize)

	minX, minY, maxX, maxY, ok := unionBounds(a, b)
	if !ok {
		return nil
	}
	cell := e.cfg.PolygonResolution
	if cell == 0 {
		cell = gridCellSize(minX, minY, maxX, maxY, defaultTargetCells)
	}
	ga := e.operandGrid(a, minX, minY, maxX, maxY, cell, rule)
	gb := e.operandGrid(b, minX, minY, maxX, maxY, cell, rule)
	merged := combine(ga, gb, combiner)

	if e.cfg.TangencyStrategy == TangencyMerge && e.cfg.TangencyEpsilon > 0 {
		r := int(e.cfg.TangencyEpsilon/cell/2) + 1
		merged = dilate(merged, r)
		merged = erode(merged, r)
	}

	e.ctx.StartTimer(dbg.TimerContourTrace)
	traced := merged.traceContours()
	e.ctx.StopTimer(dbg.TimerContourTrace)

	e.ctx.StartTimer(dbg.TimerRegionLabel)
	out := classifyTopology(traced)
	e.ctx.StopTimer(dbg.TimerRegionLabel)
	return out
}

// Union returns all points in a or b (spec §4.D).
func (e *Engine) Union(a, b []Ring, rule FillRule) ([]Ring, error) {
	if e.destroyed {
		return nil, errs.New("boolean.Union", errs.SolverUnavailable)
	}
	return e.combineOp(a, b, rule, func(x, y bool) bool { return x || y }), nil
}

// Difference returns points in a and not in b.
func (e *Engine) Difference(a, b []Ring, rule FillRule) ([]Ring, error) {
	if e.destroyed {
		return nil, errs.New("boolean.Difference", errs.SolverUnavailable)
	}
	return e.combineOp(a, b, rule, func(x, y bool) bool { return x && !y }), nil
}

// Intersection returns points in both a and b.
func (e *Engine) Intersection(a, b []Ring, rule FillRule) ([]Ring, error) {
	if e.destroyed {
		return nil, errs.New("boolean.Intersection", errs.SolverUnavailable)
	}
	return e.combineOp(a, b, rule, func(x, y bool) bool { return x && y }), nil
}

// Xor returns the symmetric difference of a and b.
func (e *Engine) Xor(a, b []Ring, rule FillRule) ([]Ring, error) {
	if e.destroyed {
		return nil, errs.New("boolean.Xor", errs.SolverUnavailable)
	}
	return e.combineOp(a, b, rule, func(x, y bool) bool { return x != y }), nil
}

// UnionSelf unions a ring set with itself, resolving any
// self-intersections (spec §4.D: "resolving self-intersections" -
// achieved for free here, since rasterizing with a fill rule and
// re-tracing never reproduces a crossing edge).
func (e *Engine) UnionSelf(rings []Ring, rule FillRule) ([]Ring, error) {
	if e.destroyed {
		return nil, errs.New("boolean.UnionSelf", errs.SolverUnavailable)
	}
	e.ctx.StartTimer(dbg.TimerRasterize)
	out := e.rasterAndTrace(rings, rule)
	e.ctx.StopTimer(dbg.TimerRasterize)
	return out, nil
}

// Inflate computes the Minkowski sum of rings with a disk of radius
// delta (positive = outward, negative = inward), spec §4.D.
func (e *Engine) Inflate(rings []Ring, delta int64) ([]Ring, error) {
	if e.destroyed {
		return nil, errs.New("boolean.Inflate", errs.SolverUnavailable)
	}
	e.ctx.StartTimer(dbg.TimerInflate)
	defer e.ctx.StopTimer(dbg.TimerInflate)

	rings = normalizeWinding(rings)
	minX, minY, maxX, maxY, ok := boundsOf(rings)
	if !ok {
		return nil, nil
	}
	pad := absI64(delta) + 1
	cell := e.cfg.PolygonResolution
	if cell == 0 {
		cell = gridCellSize(minX-pad, minY-pad, maxX+pad, maxY+pad, defaultTargetCells)
		// The adaptive cell size is chosen from the shape's overall
		// extent, which for a small offset on a large shape can come out
		// coarser than delta itself: radiusCells below would then floor
		// to 0 and Inflate would silently return the input unchanged.
		// An explicit PolygonResolution is a caller's deliberate choice
		// and is left alone even if it has the same effect.
		if d := absI64(delta); d > 0 && cell > d {
			cell = d
		}
	}
	g := newGrid(minX-pad, minY-pad, maxX+pad, maxY+pad, cell)
	g.rasterize(rings, e.cfg.FillRule)

	radiusCells := int(absI64(delta) / cell)
	if delta >= 0 {
		g = dilate(g, radiusCells)
	} else {
		g = erode(g, radiusCells)
	}

	traced := g.traceContours()
	return classifyTopology(traced), nil
}

func absI64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// SimplifyPaths removes collinear and near-duplicate vertices within
// tolerance eps (integer-scale units).
func (e *Engine) SimplifyPaths(rings []Ring, eps int64) []Ring {
	out := make([]Ring, 0, len(rings))
	for _, r := range rings {
		out = append(out, Ring{Points: simplifyRing(r.Points, eps), IsHole: r.IsHole})
	}
	return out
}

func simplifyRing(pts []IntPoint, eps int64) []IntPoint {
	if len(pts) < 3 {
		return pts
	}
	var out []IntPoint
	n := len(pts)
	for i := 0; i < n; i++ {
		prev := pts[(i-1+n)%n]
		cur := pts[i]
		next := pts[(i+1)%n]
		if dist2(prev, cur) <= float64(eps)*float64(eps) {
			continue // near-duplicate of prev
		}
		if isCollinear(prev, cur, next, eps) {
			continue
		}
		out = append(out, cur)
	}
	if len(out) < 3 {
		return pts
	}
	return out
}

// dist2 and isCollinear compute in float64 rather than int64: scaled
// coordinates only individually stay under fixedpoint's overflow guard,
// not their pairwise differences or cross products, and squaring those
// differences again (as the int64 math used to) overflows int64 well
// before it overflows a legitimate, spec-legal geometry.
func dist2(a, b IntPoint) float64 {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
	return dx*dx + dy*dy
}

// isCollinear reports whether cur lies within eps of the line prev-next
// (cross-product-over-length test).
func isCollinear(prev, cur, next IntPoint, eps int64) bool {
	ex, ey := float64(next.X-prev.X), float64(next.Y-prev.Y)
	length2 := ex*ex + ey*ey
	if length2 == 0 {
		return false
	}
	cross := float64(cur.X-prev.X)*ey - float64(cur.Y-prev.Y)*ex
	if cross < 0 {
		cross = -cross
	}
	// |cross| / len(e) is the perpendicular distance; compare
	// cross^2 against (eps*len)^2 to avoid a sqrt.
	e := float64(eps)
	return cross*cross <= e*e*length2
}
