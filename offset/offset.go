// Package offset implements the Offset + Arc Reconstructor: analytic
// fast paths for the four offsettable primitive variants, and a general
// tessellate/inflate/recover path for everything else, including
// multi-pass stepover support.
package offset

import (
	"github.com/arl/camgeo/arcrecover"
	"github.com/arl/camgeo/boolean"
	"github.com/arl/camgeo/internal/fixedpoint"
	"github.com/arl/camgeo/primitive"
	"github.com/arl/camgeo/registry"
	"github.com/arl/camgeo/tessellate"
)

// JoinType mirrors the boolean engine's Inflate join behavior (spec
// §4.E.2 "join type = Round, miter limit = 2"). Only Round is currently
// backed by the raster Inflate implementation; the others are accepted
// for interface completeness and fall back to Round. JoinUnspecified is
// the zero value, deliberately not a real join, so a caller not setting
// JoinType can be told apart from one explicitly requesting JoinRound
// (camgeo.GenerateOffsetOptions.Join compares against this, not 0).
type JoinType uint8

const (
	JoinUnspecified JoinType = iota
	JoinRound
	JoinMiter
	JoinBevel
)

// Config tunes one offset run.
type Config struct {
	Scale                   int64
	Tessellate              tessellate.Config
	ArcRecover              arcrecover.Config
	JoinType                JoinType
	MiterLimit              float64
	// EnableArcReconstruction gates general()'s arcrecover.Recover call
	// (spec §6 "enable_arc_reconstruction — whether generate_offset
	// attempts recovery"). It does not affect the analytic fast path,
	// whose Path carries the ArcSegments that tessellating the offset
	// shape registered, with no recovery step.
	EnableArcReconstruction bool
}

// DefaultConfig returns the spec's default offset tuning.
func DefaultConfig() Config {
	return Config{
		Scale:                   fixedpoint.DefaultScale,
		Tessellate:              tessellate.DefaultConfig(),
		ArcRecover:              arcrecover.DefaultConfig(),
		JoinType:                JoinRound,
		MiterLimit:              2,
		EnableArcReconstruction: true,
	}
}

// Offset produces the primitive offset by signed distance d (positive
// outward, negative inward), as one Path per disjoint outer region (spec
// §4.D result topology point 3, via boolean.GroupByContainment in the
// general path). Returns (nil, nil) when the offset collapses the shape
// entirely (spec §4.E.4 "inner offset collapses a ring: drop it; do not
// emit").
func Offset(p primitive.Primitive, d float64, cfg Config, reg *registry.Registry, eng *boolean.Engine) ([]*primitive.Path, error) {
	if path, handled, err := analytic(p, d, cfg, reg); handled {
		if err != nil || path == nil {
			return nil, err
		}
		return []*primitive.Path{path}, nil
	}
	return general(p, d, cfg, reg, eng)
}

// Pass describes one step of a multi-pass offset job (spec §4.E.2
// "callers ask for N passes at stepover s"). Paths holds one entry per
// disjoint outer region produced by that step.
type Pass struct {
	Paths    []*primitive.Path
	Distance float64
}

// MultiPass computes N passes at stepover s starting from p. Each pass
// after the first runs against every region the prior pass produced for
// inward sequences (inward=true) or against the original source for
// outward sequences (inward=false), per spec's caller policy.
func MultiPass(p primitive.Primitive, n int, stepover float64, inward bool, cfg Config, reg *registry.Registry, eng *boolean.Engine) ([]Pass, error) {
	passes := make([]Pass, 0, n)
	targets := []primitive.Primitive{p}
	for k := 1; k <= n; k++ {
		d := stepover * float64(k)
		var outPaths []*primitive.Path
		if inward {
			d = -stepover
			for _, t := range targets {
				out, err := Offset(t, d, cfg, reg, eng)
				if err != nil {
					return passes, err
				}
				outPaths = append(outPaths, out...)
			}
		} else {
			out, err := Offset(p, d, cfg, reg, eng)
			if err != nil {
				return passes, err
			}
			outPaths = out
		}
		if len(outPaths) == 0 {
			break
		}
		passes = append(passes, Pass{Paths: outPaths, Distance: stepover * float64(k)})
		if inward {
			targets = make([]primitive.Primitive, len(outPaths))
			for i, pp := range outPaths {
				targets[i] = pp
			}
		}
	}
	return passes, nil
}
