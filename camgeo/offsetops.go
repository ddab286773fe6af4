package camgeo

import (
	"github.com/arl/camgeo/boolean"
	"github.com/arl/camgeo/errs"
	"github.com/arl/camgeo/internal/fixedpoint"
	"github.com/arl/camgeo/offset"
	"github.com/arl/camgeo/primitive"
)

// PreparedOffset is the opaque handle prepare_offset returns (spec §6
// prepare_offset(fused[])), carrying the fused primitives generate_offset
// will act on.
type PreparedOffset struct {
	primitives []primitive.Primitive
}

// PrepareOffset validates a fused primitive list and wraps it in a handle
// generate_offset can consume (spec §6). Every primitive must already be
// valid (InvalidPrimitive otherwise); the primitives are not
// re-tessellated here, just held for the subsequent offset pass.
func (e *Engine) PrepareOffset(fused []primitive.Primitive) (*PreparedOffset, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ensureReady(); err != nil {
		return nil, err
	}
	for _, p := range fused {
		if p == nil || primitive.Validate(p) != nil {
			return nil, errs.New("camgeo.PrepareOffset", errs.InvalidPrimitive)
		}
	}
	kept := make([]primitive.Primitive, len(fused))
	copy(kept, fused)

	var rings []boolean.Ring
	for _, p := range kept {
		if path, ok := p.(*primitive.Path); ok {
			for _, c := range path.Contours {
				ring, ok := contourToRing(c, e.cfg.Scale)
				if !ok {
					continue
				}
				rings = append(rings, ring)
			}
		}
	}
	if rings != nil {
		e.boolEng.SetCached(boolean.SlotPreprocessedGeometry, rings)
	}
	return &PreparedOffset{primitives: kept}, nil
}

func contourToRing(c primitive.Contour, scale int64) (boolean.Ring, bool) {
	scaled, err := fixedpoint.ScaleRing(c.Points, scale)
	if err != nil {
		return boolean.Ring{}, false
	}
	pts := make([]boolean.IntPoint, len(scaled))
	for i, s := range scaled {
		pts[i] = boolean.IntPoint{X: s[0], Y: s[1]}
	}
	return boolean.Ring{Points: pts, IsHole: c.IsHole}, true
}

// GenerateOffsetOptions mirrors spec §6's generate_offset options bag.
// EnableArcReconstruction is a *bool, not a bool, for the same reason
// FuseOptions.PreserveArcs is: a caller explicitly requesting false must
// override the engine's configured default rather than be silently
// indistinguishable from "caller didn't set this".
type GenerateOffsetOptions struct {
	Join                    offset.JoinType
	MiterLimit              float64
	Passes                  int
	Stepover                float64
	Inward                  bool
	EnableArcReconstruction *bool
}

// GenerateOffset implements spec §6's generate_offset(preprocessed,
// distance, options): runs Offset (or MultiPass, when Passes > 1) over
// every primitive the handle holds, returning offset primitives with
// arcSegments populated. Returns OffsetDegenerate's empty-result behavior
// (not an error) when every ring collapses.
func (e *Engine) GenerateOffset(prep *PreparedOffset, distance float64, opts GenerateOffsetOptions) ([]primitive.Primitive, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ensureReady(); err != nil {
		return nil, err
	}
	if prep == nil {
		return nil, errs.New("camgeo.GenerateOffset", errs.InvalidPrimitive)
	}

	ocfg := e.cfg.offsetConfig()
	if opts.Join != offset.JoinUnspecified {
		ocfg.JoinType = opts.Join
	}
	if opts.MiterLimit != 0 {
		ocfg.MiterLimit = opts.MiterLimit
	}
	if opts.EnableArcReconstruction != nil {
		ocfg.EnableArcReconstruction = *opts.EnableArcReconstruction
	}

	var out []primitive.Primitive
	for _, p := range prep.primitives {
		if opts.Passes > 1 {
			passes, err := offset.MultiPass(p, opts.Passes, opts.Stepover, opts.Inward, ocfg, e.reg, e.boolEng)
			if err != nil {
				return nil, err
			}
			for _, pass := range passes {
				for _, path := range pass.Paths {
					out = append(out, path)
				}
			}
			continue
		}
		d := distance
		if opts.Inward && d > 0 {
			d = -d
		}
		result, err := offset.Offset(p, d, ocfg, e.reg, e.boolEng)
		if err != nil {
			return nil, err
		}
		if len(result) == 0 {
			// Spec §7 "OffsetDegenerate returns an empty result; it is
			// not thrown" — this primitive simply contributes nothing.
			continue
		}
		for _, path := range result {
			out = append(out, path)
		}
	}
	return out, nil
}
