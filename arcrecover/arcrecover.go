// Package arcrecover recovers circular arcs from a polygonal ring
// produced by the boolean solver, matching each vertex against the
// descriptors of the curves that fed the operation.
//
// The raster-based solver in package boolean does not carry a per-vertex
// curve id through rasterize/contour-trace/region-label the way a
// vector clipper ferrying a Z-field would. Instead this package
// re-derives the same grouping by testing every ring vertex against
// every candidate descriptor's expected circle and keeping the runs
// that fit. The observable result — contiguous vertex runs reclassified
// as arcs, annotated with the originating curve and degraded safely to
// straight edges on rejection — matches fuse's (d=0) and offset's
// (d=signed distance) needs identically, so both call the same code.
package arcrecover

import (
	"math"

	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/registry"
)

// DefaultTolerance is 0.25 * the default tessellation target segment
// length (0.05), i.e. 0.0125 caller units.
const DefaultTolerance = 0.0125

// Config tunes the fit-check.
type Config struct {
	// Tolerance is the maximum allowed |dist_to_center - expected_radius|
	// for a vertex to be considered on-curve.
	Tolerance float64
}

// DefaultConfig returns the default arc-recovery tuning.
func DefaultConfig() Config { return Config{Tolerance: DefaultTolerance} }

// Result is the outcome of recovering arcs from one ring.
type Result struct {
	// Segments are the confirmed arc runs, index ranges into the input
	// ring, in ring order.
	Segments []registry.ArcSegment
	// CurvesSeen, CurvesReconstructed, CurvesLost mirror the Curve
	// Registry's bookkeeping fields for this single ring; Recover has
	// already recorded them on reg via reg.MarkReconstructed/MarkLost.
	CurvesSeen          int64
	CurvesReconstructed int64
	CurvesLost          int64
}

// candidateMatch is the best-fitting candidate for one ring vertex.
type candidateMatch struct {
	ok        bool
	curveID   registry.CurveID
	radius    float64
	clockwise bool
	outward   bool
}

// Recover matches ring against candidates (the fused/offset primitive's
// registry descriptors) at signed distance d (0 for fuse, the offset
// distance otherwise) and emits confirmed arc segments. reg receives
// newly registered descriptors for confirmed runs.
func Recover(ring []geom.Point, candidates []registry.Descriptor, d float64, reg *registry.Registry, cfg Config) Result {
	n := len(ring)
	if n == 0 || len(candidates) == 0 {
		return Result{}
	}

	matches := make([]candidateMatch, n)
	seen := map[registry.CurveID]bool{}
	for i, p := range ring {
		m, ok := bestMatch(p, candidates, d, cfg.Tolerance)
		if ok {
			matches[i] = m
			seen[m.curveID] = true
		}
	}

	runs := groupRuns(matches, n)
	res := Result{CurvesSeen: int64(len(seen))}

	for _, run := range runs {
		if !run.ok {
			if run.matched {
				res.CurvesLost++
				reg.MarkLost()
			}
			continue
		}
		c := findCandidate(candidates, run.curveID)
		radius := run.radius
		center := c.Center
		startAngle := math.Atan2(ring[run.start].Y-center.Y, ring[run.start].X-center.X)
		endIdx := run.end
		if endIdx < run.start {
			endIdx += n
		}
		endAngle := math.Atan2(ring[endIdx%n].Y-center.Y, ring[endIdx%n].X-center.X)

		newID := reg.Register(registry.Descriptor{
			Variant: registry.VariantArc, Center: center, Radius: radius,
			StartAngle: startAngle, EndAngle: endAngle, Clockwise: run.clockwise,
			Source: c.Source, IsOffsetDerived: d != 0,
		})
		res.Segments = append(res.Segments, registry.ArcSegment{
			Start: run.start, End: run.end, CurveID: newID, Center: center,
			Radius: radius, StartAngle: startAngle, EndAngle: endAngle, Clockwise: run.clockwise,
		})
		res.CurvesReconstructed++
		reg.MarkReconstructed()
	}
	return res
}

func bestMatch(p geom.Point, candidates []registry.Descriptor, d, tol float64) (candidateMatch, bool) {
	var best candidateMatch
	bestErr := math.Inf(1)
	for _, c := range candidates {
		if c.Variant != registry.VariantArc && c.Variant != registry.VariantCircle {
			continue
		}
		dist := p.Dist(c.Center)
		for _, outward := range [2]bool{true, false} {
			expected := c.Radius + d
			if !outward {
				expected = c.Radius - d
			}
			if expected <= 0 {
				continue
			}
			e := math.Abs(dist - expected)
			if e < tol && e < bestErr {
				bestErr = e
				best = candidateMatch{ok: true, curveID: c.ID, radius: expected, clockwise: c.Clockwise, outward: outward}
			}
		}
	}
	return best, best.ok
}

func findCandidate(candidates []registry.Descriptor, id registry.CurveID) registry.Descriptor {
	for _, c := range candidates {
		if c.ID == id {
			return c
		}
	}
	return registry.Descriptor{}
}

type run struct {
	ok        bool // matched a candidate and survived tie-break
	matched   bool // matched a candidate before tie-break (for Lost accounting)
	start, end int
	curveID   registry.CurveID
	radius    float64
	clockwise bool
}

// groupRuns walks matches cyclically and returns maximal contiguous runs
// sharing the same curveID. A run that wraps past index n-1 keeps
// start > end (e.g. start n-2, end 1); callers add n to end to walk it.
func groupRuns(matches []candidateMatch, n int) []run {
	if n == 0 {
		return nil
	}
	// Find a split point where the curveID changes, to avoid cutting a
	// run that wraps across index 0.
	splitAt := 0
	for i := 0; i < n; i++ {
		prev := matches[(i-1+n)%n]
		cur := matches[i]
		if !sameCurve(prev, cur) {
			splitAt = i
			break
		}
	}

	var runs []run
	i := 0
	for i < n {
		idx := (splitAt + i) % n
		cur := matches[idx]
		j := i
		for j+1 < n && sameCurve(matches[(splitAt+j)%n], matches[(splitAt+j+1)%n]) {
			j++
		}
		startIdx := (splitAt + i) % n
		endIdx := (splitAt + j) % n
		runs = append(runs, run{
			ok: cur.ok, matched: cur.ok, start: startIdx, end: endIdx,
			curveID: cur.curveID, radius: cur.radius, clockwise: cur.clockwise,
		})
		i = j + 1
	}

	resolveTies(runs, n)
	return runs
}

func sameCurve(a, b candidateMatch) bool {
	return a.ok && b.ok && a.curveID == b.curveID
}

// resolveTies drops one-vertex runs (always rejected) per spec rule.
func resolveTies(runs []run, n int) {
	for i := range runs {
		if runs[i].ok && runLen(runs[i], n) < 2 {
			runs[i].ok = false
		}
	}
}

// runLen returns the vertex count of a run over an n-vertex cyclic index
// space. A run that wraps past index n-1 back to 0 (end < start) still
// covers (n-start)+(end+1) vertices, not end+1 — the latter silently
// undercounts every wrapped run and can make a well-fit multi-vertex arc
// look like a spurious 1-vertex run to resolveTies.
func runLen(r run, n int) int {
	if r.end >= r.start {
		return r.end - r.start + 1
	}
	return n - r.start + r.end + 1
}
