package boolean

// distanceTransform computes, for every outside cell (inside=false) or
// every inside cell (inside=true), an approximate chamfer distance (in
// cell units, scaled by 2 the way recast/area.go's ErodeWalkableArea does
// to keep diagonal steps an integer 3 against orthogonal steps of 2) to
// the nearest cell of the opposite occupancy.
// Two raster passes (forward, backward) propagate the running minimum,
// exactly as ErodeWalkableArea does over a compact heightfield's span
// graph; here the "span graph" is just a dense 2D grid, so the four/four
// neighbor propagation collapses to plain pixel offsets.
func distanceTransform(g *grid, inside bool) []uint16 {
	const maxDist = uint16(0xffff)
	dist := make([]uint16, g.w*g.h)
	for i := range dist {
		occ := g.data[i]
		if occ == inside {
			dist[i] = maxDist
		} else {
			dist[i] = 0
		}
	}

	min3 := func(v uint16, add uint16) uint16 {
		if v == maxDist {
			return maxDist
		}
		sum := uint32(v) + uint32(add)
		if sum > uint32(maxDist) {
			return maxDist
		}
		return uint16(sum)
	}

	idx := func(x, y int) int { return y*g.w + x }

	// Forward pass: top-left to bottom-right.
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := idx(x, y)
			if dist[i] == 0 {
				continue
			}
			if x > 0 {
				if d := min3(dist[idx(x-1, y)], 2); d < dist[i] {
					dist[i] = d
				}
			}
			if y > 0 {
				if d := min3(dist[idx(x, y-1)], 2); d < dist[i] {
					dist[i] = d
				}
				if x > 0 {
					if d := min3(dist[idx(x-1, y-1)], 3); d < dist[i] {
						dist[i] = d
					}
				}
				if x < g.w-1 {
					if d := min3(dist[idx(x+1, y-1)], 3); d < dist[i] {
						dist[i] = d
					}
				}
			}
		}
	}

	// Backward pass: bottom-right to top-left.
	for y := g.h - 1; y >= 0; y-- {
		for x := g.w - 1; x >= 0; x-- {
			i := idx(x, y)
			if dist[i] == 0 {
				continue
			}
			if x < g.w-1 {
				if d := min3(dist[idx(x+1, y)], 2); d < dist[i] {
					dist[i] = d
				}
			}
			if y < g.h-1 {
				if d := min3(dist[idx(x, y+1)], 2); d < dist[i] {
					dist[i] = d
				}
				if x < g.w-1 {
					if d := min3(dist[idx(x+1, y+1)], 3); d < dist[i] {
						dist[i] = d
					}
				}
				if x > 0 {
					if d := min3(dist[idx(x-1, y+1)], 3); d < dist[i] {
						dist[i] = d
					}
				}
			}
		}
	}
	return dist
}

// dilate grows the inside region by radiusCells (chamfer distance <=
// radiusCells*2, matching the 2-per-orthogonal-step scale used above).
func dilate(g *grid, radiusCells int) *grid {
	if radiusCells <= 0 {
		return g
	}
	dist := distanceTransform(g, false)
	thr := uint16(radiusCells * 2)
	out := &grid{minX: g.minX, minY: g.minY, cell: g.cell, w: g.w, h: g.h, data: make([]bool, len(g.data))}
	for i := range out.data {
		out.data[i] = g.data[i] || dist[i] <= thr
	}
	return out
}

// erode shrinks the inside region by radiusCells.
func erode(g *grid, radiusCells int) *grid {
	if radiusCells <= 0 {
		return g
	}
	dist := distanceTransform(g, true)
	thr := uint16(radiusCells * 2)
	out := &grid{minX: g.minX, minY: g.minY, cell: g.cell, w: g.w, h: g.h, data: make([]bool, len(g.data))}
	for i := range out.data {
		out.data[i] = g.data[i] && dist[i] > thr
	}
	return out
}
