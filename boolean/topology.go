package boolean

import "sort"

// Group is one outer ring with the holes nested directly inside it
// (spec §4.D result topology point 3: "a list of Path primitives where
// each has one outer and 0...n holes").
type Group struct {
	Outer Ring
	Holes []Ring
}

// GroupByContainment classifies rings (already tagged IsHole by
// classifyTopology) and pairs each hole with the smallest-area outer
// whose boundary contains one of the hole's vertices.
func GroupByContainment(rings []Ring) []Group {
	var outers, holes []Ring
	for _, r := range rings {
		if r.IsHole {
			holes = append(holes, r)
		} else {
			outers = append(outers, r)
		}
	}

	sort.SliceStable(outers, func(i, j int) bool {
		return absF(signedArea(outers[i].Points)) < absF(signedArea(outers[j].Points))
	})

	groups := make([]Group, len(outers))
	for i, o := range outers {
		groups[i] = Group{Outer: o}
	}

	for _, h := range holes {
		if len(h.Points) == 0 {
			continue
		}
		probe := h.Points[0]
		assigned := false
		for i := range groups {
			if pointInRing(probe, groups[i].Outer.Points) {
				groups[i].Holes = append(groups[i].Holes, h)
				assigned = true
				break
			}
		}
		if !assigned && len(groups) > 0 {
			groups[0].Holes = append(groups[0].Holes, h)
		}
	}
	return groups
}
