package boolean

import "sort"

// grid is a dense occupancy raster over a bounded region of solver
// space, addressed in cell units. minX/minY locate cell (0,0) in solver
// coordinates; cell is the cell's edge length in solver units.
type grid struct {
	minX, minY int64
	cell       int64
	w, h       int
	data       []bool
}

func newGrid(minX, minY, maxX, maxY, cell int64) *grid {
	if cell < 1 {
		cell = 1
	}
	w := int((maxX-minX)/cell) + 3
	h := int((maxY-minY)/cell) + 3
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &grid{minX: minX - cell, minY: minY - cell, cell: cell, w: w, h: h, data: make([]bool, w*h)}
}

func (g *grid) at(x, y int) bool {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return false
	}
	return g.data[y*g.w+x]
}

func (g *grid) set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.data[y*g.w+x] = v
}

func (g *grid) cellToWorldX(cx int) int64 { return g.minX + int64(cx)*g.cell + g.cell/2 }
func (g *grid) cellToWorldY(cy int) int64 { return g.minY + int64(cy)*g.cell + g.cell/2 }

// boundsOf computes the scaled-coordinate bounding box of a set of rings.
func boundsOf(rings []Ring) (minX, minY, maxX, maxY int64, ok bool) {
	first := true
	for _, r := range rings {
		for _, p := range r.Points {
			if first {
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				first = false
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	return minX, minY, maxX, maxY, !first
}

// gridCellSize picks a raster resolution from the operand's own extent
// rather than from the engine's literal fixed-point scale (so a tiny
// shape and a huge one each get a grid sized to their own geometry),
// mirroring recast.CalcGridSize's bounds-driven sizing. targetCells
// bounds the longer axis to a manageable cell count.
func gridCellSize(minX, minY, maxX, maxY int64, targetCells int) int64 {
	span := maxX - minX
	if maxY-minY > span {
		span = maxY - minY
	}
	if span <= 0 {
		return 1
	}
	cell := span / int64(targetCells)
	if cell < 1 {
		cell = 1
	}
	return cell
}

// rasterize fills g from rings using fill rule, sampling cell centers
// against the horizontal crossing list of every ring edge (a scanline
// polygon fill, grounded on recast/rasterization.go's per-row span
// fill, generalized from triangle-edge crossings to arbitrary ring
// edges and from a boolean walkable mask to a fill-rule-aware winding
// count).
func (g *grid) rasterize(rings []Ring, rule FillRule) {
	type crossing struct {
		x    float64
		wind int
	}
	for cy := 0; cy < g.h; cy++ {
		wy := g.cellToWorldY(cy)
		var xs []crossing
		for _, r := range rings {
			pts := r.Points
			n := len(pts)
			for i := 0; i < n; i++ {
				j := (i + 1) % n
				p1, p2 := pts[i], pts[j]
				if p1.Y == p2.Y {
					continue
				}
				wind := 1
				lo, hi := p1, p2
				if p1.Y > p2.Y {
					lo, hi = p2, p1
					wind = -1
				}
				if wy < lo.Y || wy >= hi.Y {
					continue
				}
				t := float64(wy-lo.Y) / float64(hi.Y-lo.Y)
				x := float64(lo.X) + t*float64(hi.X-lo.X)
				xs = append(xs, crossing{x: x, wind: wind})
			}
		}
		sort.Slice(xs, func(i, j int) bool { return xs[i].x < xs[j].x })

		wind := 0
		count := 0
		idx := 0
		for cx := 0; cx < g.w; cx++ {
			wxCell := g.cellToWorldX(cx)
			for idx < len(xs) && xs[idx].x <= float64(wxCell) {
				wind += xs[idx].wind
				count++
				idx++
			}
			inside := false
			switch rule {
			case EvenOdd:
				inside = count%2 == 1
			case Positive:
				inside = wind > 0
			default: // NonZero
				inside = wind != 0
			}
			g.set(cx, cy, inside)
		}
	}
}

// combine applies a boolean op elementwise across two same-shaped grids.
func combine(a, b *grid, op func(x, y bool) bool) *grid {
	out := &grid{minX: a.minX, minY: a.minY, cell: a.cell, w: a.w, h: a.h, data: make([]bool, len(a.data))}
	for i := range out.data {
		out.data[i] = op(a.data[i], b.data[i])
	}
	return out
}
