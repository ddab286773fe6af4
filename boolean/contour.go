package boolean

// corner is a raster grid corner, addressed in cell-corner units (one
// unit per cell edge).
type corner struct{ x, y int }

// traceContours vectorizes g's occupancy mask into closed CCW/CW rings
// via marching-squares edge extraction: every cell edge that separates
// an inside cell from an outside one becomes a directed boundary
// segment, oriented so the inside cell is on the segment's left: this
// makes outer boundaries trace CCW and holes trace CW automatically,
// matching the rest of the package's winding convention without a
// separate classification pass over the traced points.
//
// Unlike recast/contour.go's buildContours, which walks a distinct
// region-id label per cell (recast/region.go's watershed flood fill),
// this vectorizer needs no explicit labeling step: disjoint shapes and
// holes simply produce disjoint edge loops, since the oriented-edge
// rule only ever looks at a cell's four immediate neighbors.
func (g *grid) traceContours() []Ring {
	type edge struct {
		from, to corner
		cell     corner // the inside cell this edge bounds
	}
	var edges []edge
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if !g.at(x, y) {
				continue
			}
			cell := corner{x, y}
			if !g.at(x+1, y) {
				edges = append(edges, edge{corner{x + 1, y}, corner{x + 1, y + 1}, cell})
			}
			if !g.at(x, y+1) {
				edges = append(edges, edge{corner{x + 1, y + 1}, corner{x, y + 1}, cell})
			}
			if !g.at(x-1, y) {
				edges = append(edges, edge{corner{x, y + 1}, corner{x, y}, cell})
			}
			if !g.at(x, y-1) {
				edges = append(edges, edge{corner{x, y}, corner{x + 1, y}, cell})
			}
		}
	}
	if len(edges) == 0 {
		return nil
	}

	// A corner can have more than one outgoing boundary edge when the
	// cells around it touch only diagonally (the marching-squares saddle
	// case), so candidates are kept per corner instead of collapsed into
	// a map[corner]corner, where the second edge sharing a "from" corner
	// would silently overwrite the first.
	candidates := map[corner][]edge{}
	for _, e := range edges {
		candidates[e.from] = append(candidates[e.from], e)
	}
	consumed := map[edge]bool{}

	// dirIndex buckets a unit grid step into one of 4 axis directions so
	// picking the next edge at a branching corner can rank turns without
	// floating point.
	dirIndex := func(from, to corner) int {
		switch {
		case to.y > from.y:
			return 0 // up
		case to.x > from.x:
			return 1 // right
		case to.y < from.y:
			return 2 // down
		default:
			return 3 // left
		}
	}
	// At a branching corner, prefer the tightest right turn, then
	// straight, then left, then reversal last — the standard
	// boundary-tracing rule that keeps a saddle point's two loops
	// following their own side instead of crossing into each other.
	rankOf := func(inDir, outDir int) int {
		switch (outDir - inDir + 4) % 4 {
		case 1:
			return 0
		case 0:
			return 1
		case 3:
			return 2
		default:
			return 3
		}
	}
	// pick chooses the next edge out of cur. At an ordinary corner there is
	// only one live candidate. At a saddle corner (two cells touching only
	// diagonally) there are two: one continuing the same cell's own
	// boundary, one crossing into the diagonal cell's boundary instead. A
	// pure turn-direction rank can't tell those apart — it happily follows
	// the tightest turn straight across the diagonal, splicing two
	// unrelated shapes (or a shape and its own far side) into one corrupt
	// ring. Preferring the candidate whose bounded cell matches the
	// incoming edge's cell keeps the trace on the same shape through the
	// saddle instead; turn-rank is only the fallback for the non-saddle
	// case where cell identity alone doesn't disambiguate (e.g. two edges
	// of the same cell meeting at a corner).
	pick := func(cur corner, inDir int, fromCell corner) (edge, bool) {
		var live []edge
		for _, cand := range candidates[cur] {
			if !consumed[cand] {
				live = append(live, cand)
			}
		}
		var pool []edge
		for _, cand := range live {
			if cand.cell == fromCell {
				pool = append(pool, cand)
			}
		}
		if pool == nil {
			pool = live
		}
		var best edge
		bestRank := -1
		for _, cand := range pool {
			rank := rankOf(inDir, dirIndex(cand.from, cand.to))
			if bestRank == -1 || rank < bestRank {
				best, bestRank = cand, rank
			}
		}
		return best, bestRank != -1
	}

	var rings []Ring
	for _, start := range edges {
		if consumed[start] {
			continue
		}
		var loop []corner
		e := start
		for {
			consumed[e] = true
			loop = append(loop, e.from)
			if e.to == start.from {
				break
			}
			var ok bool
			e, ok = pick(e.to, dirIndex(e.from, e.to), e.cell)
			if !ok {
				break
			}
		}
		if len(loop) < 3 {
			continue
		}
		pts := make([]IntPoint, len(loop))
		for i, c := range loop {
			pts[i] = IntPoint{X: g.minX + int64(c.x)*g.cell, Y: g.minY + int64(c.y)*g.cell}
		}
		rings = append(rings, Ring{Points: pts})
	}
	return rings
}

// pointInRing reports whether p lies within ring using an even-odd
// crossing test over integer coordinates.
func pointInRing(p IntPoint, ring []IntPoint) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xint := float64(pj.X-pi.X)*float64(p.Y-pi.Y)/float64(pj.Y-pi.Y) + float64(pi.X)
			if float64(p.X) < xint {
				inside = !inside
			}
		}
	}
	return inside
}
