package camgeo

import (
	"github.com/arl/camgeo/arcrecover"
	"github.com/arl/camgeo/boolean"
	"github.com/arl/camgeo/errs"
	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/internal/fixedpoint"
	"github.com/arl/camgeo/primitive"
	"github.com/arl/camgeo/registry"
	"github.com/arl/camgeo/tessellate"
)

// FuseOptions mirrors spec §6's fuse(primitives[], options) options bag.
// PreserveArcs is a *bool rather than bool so a caller can explicitly
// request false and have it stick even when the engine's configured
// default is true — with a plain bool, an explicit false would be
// indistinguishable from "caller didn't set this" and get silently
// overridden by Fuse falling back to the engine default.
type FuseOptions struct {
	FillRule     boolean.FillRule
	PreserveArcs *bool
}

// BoolPtr returns a pointer to b, for building a FuseOptions.PreserveArcs
// value inline (e.g. camgeo.FuseOptions{PreserveArcs: camgeo.BoolPtr(false)}).
func BoolPtr(b bool) *bool { return &b }

// flattened is one primitive reduced to a polygonal contour plus the
// curve candidates it registered, the input Fuse hands to the boolean
// engine. offset's general path flattens its input separately
// (offset.toContours).
type flattened struct {
	points     []geom.Point
	isHole     bool
	candidates []registry.Descriptor
}

// flattenOne tessellates a single primitive into its polygonal contour(s)
// (spec §4.B). Circle, Rectangle, Obround and Arc go through their
// tessellator; a Bezier is sampled at 33 points along the curve; an
// EllipticalArc is sampled along the straight chord from Start to End,
// without using its radii, rotation or arc flags. Path contributes its
// contours directly.
func flattenOne(p primitive.Primitive, cfg Config, reg *registry.Registry) []flattened {
	tcfg := cfg.tessellateConfig()
	isHole := p.Properties().Polarity == primitive.Clear

	switch v := p.(type) {
	case *primitive.Circle:
		r := tessellate.Circle(v.Center, v.Radius, tcfg, reg)
		return []flattened{{points: r.Points(), isHole: isHole, candidates: curveCandidates(r, reg)}}
	case *primitive.Rectangle:
		r := tessellate.RoundedRectangle(v.BottomLeft, v.Width, v.Height, 0, tcfg, reg)
		return []flattened{{points: r.Points(), isHole: isHole, candidates: curveCandidates(r, reg)}}
	case *primitive.Obround:
		r := tessellate.Obround(v.Position, v.Width, v.Height, tcfg, reg)
		return []flattened{{points: r.Points(), isHole: isHole, candidates: curveCandidates(r, reg)}}
	case *primitive.Arc:
		width := v.Properties().StrokeWidth
		if width <= 0 {
			width = v.Radius * 0.1
		}
		r := tessellate.Arc(v.Center, v.Radius, v.StartAngle, v.EndAngle, v.Clockwise, width, tcfg, reg)
		return []flattened{{points: r.Points(), isHole: isHole, candidates: curveCandidates(r, reg)}}
	case *primitive.EllipticalArc:
		return []flattened{{points: sampleCurve(v.Start, v.End), isHole: isHole}}
	case *primitive.Bezier:
		pts := make([]geom.Point, 0, 33)
		for i := 0; i <= 32; i++ {
			pts = append(pts, v.PointAt(float64(i)/32))
		}
		return []flattened{{points: pts, isHole: isHole}}
	case *primitive.Path:
		out := make([]flattened, len(v.Contours))
		for i, c := range v.Contours {
			out[i] = flattened{points: c.Points, isHole: c.IsHole, candidates: candidatesFromSegments(c.ArcSegments, reg)}
		}
		return out
	default:
		return nil
	}
}

func sampleCurve(a, b geom.Point) []geom.Point {
	const n = 16
	pts := make([]geom.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		pts = append(pts, geom.Pt(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t))
	}
	return pts
}

func curveCandidates(r tessellate.Ring, reg *registry.Registry) []registry.Descriptor {
	return candidatesFromSegments(r.ArcSegments, reg)
}

func candidatesFromSegments(segs []registry.ArcSegment, reg *registry.Registry) []registry.Descriptor {
	var out []registry.Descriptor
	seen := map[registry.CurveID]bool{}
	for _, s := range segs {
		if seen[s.CurveID] {
			continue
		}
		seen[s.CurveID] = true
		if d, ok := reg.Lookup(s.CurveID); ok {
			out = append(out, d)
		}
	}
	return out
}

// Fuse implements spec §6's fuse(primitives[], options): tessellates
// every non-polygonal primitive, scales to fixed point, runs the boolean
// solver's repeated union across the whole set (dark material additive,
// clear material subtractive, by polarity), recovers arcs on request, and
// descales back to a primitive list. InvalidPrimitive candidates are
// filtered at ingestion per spec §7 propagation policy; fusion itself
// never fails for a single bad primitive.
func (e *Engine) Fuse(primitives []primitive.Primitive, opts FuseOptions) ([]primitive.Primitive, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ensureReady(); err != nil {
		return nil, err
	}
	if opts.FillRule == boolean.FillRuleUnspecified {
		opts.FillRule = e.cfg.FillRule
	}
	preserveArcs := e.cfg.PreserveArcs
	if opts.PreserveArcs != nil {
		preserveArcs = *opts.PreserveArcs
	}

	var darkRings, clearRings []boolean.Ring
	var allCandidates []registry.Descriptor
	seenCurve := map[registry.CurveID]bool{}

	for _, p := range primitives {
		if p == nil {
			continue
		}
		if err := primitive.Validate(p); err != nil {
			e.dbgCtx.Warningf("dropping invalid primitive: %v", err)
			continue
		}
		// Spec §6 "max_coordinate — validator threshold; primitives with
		// bounds beyond this are warned" and §8 P9: out-of-range bounds
		// are a warning, not a rejection, so the primitive still fuses.
		if m := p.Bounds().MaxAbsCoord(); m > e.cfg.MaxCoordinate {
			e.dbgCtx.Warningf("primitive bounds %.3f exceed max_coordinate %.3f", m, e.cfg.MaxCoordinate)
		}
		for _, fl := range flattenOne(p, e.cfg, e.reg) {
			scaled, err := fixedpoint.ScaleRing(fl.points, e.cfg.Scale)
			if err != nil {
				return nil, errs.Wrap("camgeo.Fuse", errs.ScaleOverflow, err)
			}
			pts := make([]boolean.IntPoint, len(scaled))
			for i, s := range scaled {
				pts[i] = boolean.IntPoint{X: s[0], Y: s[1]}
			}
			ring := boolean.Ring{Points: pts, IsHole: fl.isHole}
			if p.Properties().Polarity == primitive.Clear {
				clearRings = append(clearRings, ring)
			} else {
				darkRings = append(darkRings, ring)
			}
			for _, c := range fl.candidates {
				if seenCurve[c.ID] {
					continue
				}
				seenCurve[c.ID] = true
				allCandidates = append(allCandidates, c)
			}
		}
	}

	if len(darkRings) == 0 {
		return nil, nil
	}

	fused, err := e.boolEng.UnionSelf(darkRings, opts.FillRule)
	if err != nil {
		return nil, err
	}
	if len(clearRings) > 0 {
		clearUnion, err := e.boolEng.UnionSelf(clearRings, opts.FillRule)
		if err != nil {
			return nil, err
		}
		fused, err = e.boolEng.Difference(fused, clearUnion, opts.FillRule)
		if err != nil {
			return nil, err
		}
	}

	toContour := func(ring boolean.Ring) primitive.Contour {
		pts := fixedpoint.UnscaleRing(boolean.ToFixed(ring.Points), e.cfg.Scale)
		var segs []registry.ArcSegment
		if preserveArcs {
			res := arcrecover.Recover(pts, allCandidates, 0, e.reg, arcrecover.DefaultConfig())
			segs = res.Segments
		}
		return primitive.Contour{Points: pts, ArcSegments: segs, IsHole: ring.IsHole, Closed: true}
	}

	// Spec §3.4/§4.D result topology: the fused ring set may contain
	// several disjoint outer regions, each pairing its own holes, so the
	// result is a list with one Path per boolean.GroupByContainment group
	// rather than a single Path flattening every contour together.
	groups := boolean.GroupByContainment(fused)
	out := make([]primitive.Primitive, 0, len(groups))
	for _, g := range groups {
		contours := make([]primitive.Contour, 0, len(g.Holes)+1)
		contours = append(contours, toContour(g.Outer))
		for _, h := range g.Holes {
			contours = append(contours, toContour(h))
		}
		path, err := primitive.NewPath(contours, primitive.Properties{Polarity: primitive.Dark})
		if err != nil {
			return nil, err
		}
		out = append(out, path)
	}
	e.boolEng.SetCached(boolean.SlotFusedGeometry, fused)
	return out, nil
}

// ringsToPaths groups rings by containment (spec §3.4/§4.D result
// topology) and builds one Path per disjoint outer region, instead of
// flattening every ring into a single Path regardless of how many
// separate outer regions it actually contains.
func ringsToPaths(rings []boolean.Ring, scale int64) ([]*primitive.Path, error) {
	groups := boolean.GroupByContainment(rings)
	paths := make([]*primitive.Path, 0, len(groups))
	for _, g := range groups {
		contours := make([]primitive.Contour, 0, len(g.Holes)+1)
		contours = append(contours, ringToContour(g.Outer, scale))
		for _, h := range g.Holes {
			contours = append(contours, ringToContour(h, scale))
		}
		path, err := primitive.NewPath(contours, primitive.Properties{})
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func ringToContour(ring boolean.Ring, scale int64) primitive.Contour {
	pts := fixedpoint.UnscaleRing(boolean.ToFixed(ring.Points), scale)
	return primitive.Contour{Points: pts, IsHole: ring.IsHole, Closed: true}
}
