// Package boolean implements the integer-scaled planar boolean engine
// (Union/Difference/Intersection/Xor/Inflate/SimplifyPaths/UnionSelf)
// against a resolution-adaptive raster grid rather than a literal vector
// polygon clipper.
//
// The solver is a deliberate substitution grounded in the teacher's own
// heightfield pipeline: rasterize (recast/rasterization.go) -> erode/
// dilate a distance field (recast/area.go's ErodeWalkableArea) -> trace
// contours (recast/contour.go) -> label regions (recast/region.go). A
// grid is cheap to combine (elementwise AND/OR/XOR), cheap to Minkowski
// inflate/deflate (a distance transform), and its resolution is chosen
// from the input's own bounds rather than from the literal fixed-point
// scale, so a circle of radius 1e6 and one of radius 1e-3 each get a
// grid sized to their own geometry instead of one sized to the global
// coordinate range.
package boolean

import (
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/arl/camgeo/errs"
	"github.com/arl/camgeo/internal/dbg"
	"github.com/arl/camgeo/registry"
)

// FillRule selects how overlapping windings resolve to "inside" (spec
// §4.D). FillRuleUnspecified is the zero value, deliberately not an
// alias for NonZero, so callers building an options struct without
// setting FillRule can be told apart from a caller explicitly asking
// for NonZero — see FuseOptions.FillRule.
type FillRule uint8

const (
	FillRuleUnspecified FillRule = iota
	NonZero
	EvenOdd
	Positive
)

func (f FillRule) String() string {
	switch f {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	case Positive:
		return "Positive"
	default:
		return "Unspecified"
	}
}

// TangencyStrategy controls how near-touching contours are handled.
type TangencyStrategy uint8

const (
	TangencyNone TangencyStrategy = iota
	TangencyMerge
	TangencyKeep
)

// IntPoint is a fixed-point coordinate pair, the solver's native unit.
type IntPoint struct{ X, Y int64 }

// ToFixed converts a ring's solver-space points into the [2]int64 pairs
// internal/fixedpoint's Unscale/UnscaleRing expect, the shared bridge
// between this package's IntPoint and fixedpoint's caller-facing
// conversions.
func ToFixed(pts []IntPoint) [][2]int64 {
	out := make([][2]int64, len(pts))
	for i, p := range pts {
		out[i] = [2]int64{p.X, p.Y}
	}
	return out
}

// Ring is one closed contour in solver space. IsHole is assigned by the
// engine's result-topology pass (spec §4.D point 1-2), not by the
// caller.
type Ring struct {
	Points []IntPoint
	IsHole bool
}

// DefaultScale, DefaultTangencyEpsilonFactor mirror spec §4.D/§6
// defaults.
const (
	DefaultScale                 = 10000
	DefaultTangencyEpsilonFactor = 0.003
)

// Config tunes one Engine instance (spec §6 initialize()).
type Config struct {
	Scale            int64
	FillRule         FillRule
	TangencyStrategy TangencyStrategy
	TangencyEpsilon  int64 // integer-scale units, clamped [10, 1000]
	Debug            bool
	// PolygonResolution is the raster grid's cell size in scaled
	// integer units. Smaller values trace finer contours (and recover
	// arcs more accurately) at higher memory cost. Zero selects an
	// adaptive default from the operand bounds (see gridCellSize).
	PolygonResolution int64
}

// DefaultConfig returns the spec's default engine configuration.
func DefaultConfig() Config {
	return Config{
		Scale:            DefaultScale,
		FillRule:         NonZero,
		TangencyStrategy: TangencyMerge,
		TangencyEpsilon:  clampEpsilon(int64(DefaultScale * DefaultTangencyEpsilonFactor)),
		Debug:            false,
	}
}

func clampEpsilon(e int64) int64 {
	return ClampEpsilon(e)
}

// ClampEpsilon clamps a tangency epsilon to the supported integer-scale
// range [10, 1000] (spec §4.D), exported so callers building a Config from
// a scale factor can compute the default without duplicating the bounds.
func ClampEpsilon(e int64) int64 {
	if e < 10 {
		return 10
	}
	if e > 1000 {
		return 1000
	}
	return e
}

// DefaultTangencyEpsilon returns the default tangency epsilon for scale
// (spec §6 "tangency_epsilon (S·0.003, clamp 10…1000)").
func DefaultTangencyEpsilon(scale int64) int64 {
	return ClampEpsilon(int64(float64(scale) * DefaultTangencyEpsilonFactor))
}

// Named cache slots (spec §6 get_cached(slot_name)).
const (
	SlotPreprocessedGeometry = "preprocessedGeometry"
	SlotFusedGeometry        = "fusedGeometry"
)

// Engine is the boolean solver instance (spec §4.D, §5 resource model).
// Not safe for concurrent use; per spec the caller is single-threaded
// cooperative and re-entrant calls from the same goroutine are safe.
type Engine struct {
	cfg Config
	reg *registry.Registry
	ctx *dbg.Context

	cache    *lru.Cache[string, []Ring]
	refCount int32
	destroyed bool
}

// New constructs an Engine. Mirrors spec §6 initialize(): the only
// documented failure here is SolverUnavailable, which this
// implementation never raises since it has no native dependency, but
// the signature is kept for parity with a backend that might.
func New(cfg Config, reg *registry.Registry, ctx *dbg.Context) (*Engine, error) {
	if cfg.Scale <= 0 {
		cfg.Scale = DefaultScale
	}
	clamped := clampEpsilon(cfg.TangencyEpsilon)
	if clamped != cfg.TangencyEpsilon && cfg.TangencyEpsilon != 0 {
		ctx.Warningf("tangency epsilon %d out of range, clamped to %d", cfg.TangencyEpsilon, clamped)
	}
	cfg.TangencyEpsilon = clamped

	cache, _ := lru.New[string, []Ring](8)
	return &Engine{cfg: cfg, reg: reg, ctx: ctx, cache: cache, refCount: 1}, nil
}

// Cleanup releases any cached geometry. Idempotent.
func (e *Engine) Cleanup() {
	if e.cache != nil {
		e.cache.Purge()
	}
}

// Destroy invalidates the engine. Idempotent (spec §5 "destroy() is
// idempotent and invalidates the registry handle").
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	e.Cleanup()
	e.destroyed = true
}

// GetCached returns the geometry cached under slot, if any.
func (e *Engine) GetCached(slot string) ([]Ring, bool) {
	if e.cache == nil {
		return nil, false
	}
	return e.cache.Get(slot)
}

// SetCached stores geometry under slot, for callers (the camgeo.Engine
// façade) to populate the named slots after a fuse or prepare_offset
// call.
func (e *Engine) SetCached(slot string, rings []Ring) {
	if e.cache != nil {
		e.cache.Add(slot, rings)
	}
}

// InvalidateCache clears both named cache slots explicitly (spec §4.D
// "Cache invalidation is explicit").
func (e *Engine) InvalidateCache() {
	if e.cache != nil {
		e.cache.Remove(SlotPreprocessedGeometry)
		e.cache.Remove(SlotFusedGeometry)
	}
}

// Fingerprint computes a stable cache key for a ring set.
func Fingerprint(rings []Ring) string {
	h := fnvOffset
	for _, r := range rings {
		h = fnvMix(h, uint64(len(r.Points)))
		for _, p := range r.Points {
			h = fnvMix(h, uint64(p.X))
			h = fnvMix(h, uint64(p.Y))
		}
	}
	return fmt.Sprintf("%x", h)
}

const fnvOffset = uint64(14695981039346656037)
const fnvPrime = uint64(1099511628211)

func fnvMix(h, v uint64) uint64 {
	for i := 0; i < 8; i++ {
		h ^= v & 0xff
		h *= fnvPrime
		v >>= 8
	}
	return h
}

// normalizeWinding reverses any ring whose signed area is negative, so
// every input is CCW before it reaches the raster stage (spec §4.D
// "Winding pre-normalization").
func normalizeWinding(rings []Ring) []Ring {
	out := make([]Ring, len(rings))
	for i, r := range rings {
		if signedArea(r.Points) < 0 {
			out[i] = Ring{Points: reversePoints(r.Points)}
		} else {
			out[i] = Ring{Points: r.Points}
		}
	}
	return out
}

func signedArea(pts []IntPoint) float64 {
	var sum int64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return float64(sum) / 2
}

func reversePoints(pts []IntPoint) []IntPoint {
	n := len(pts)
	out := make([]IntPoint, n)
	for i, p := range pts {
		out[n-1-i] = p
	}
	return out
}

// classifyTopology assigns IsHole and orders results so each outer is
// immediately useful to a caller pairing holes by containment (spec
// §4.D result topology points 1-2).
func classifyTopology(rings []Ring) []Ring {
	type entry struct {
		ring Ring
		area float64
	}
	entries := make([]entry, len(rings))
	for i, r := range rings {
		a := signedArea(r.Points)
		entries[i] = entry{ring: Ring{Points: r.Points, IsHole: a < 0}, area: a}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return absF(entries[i].area) > absF(entries[j].area)
	})
	out := make([]Ring, len(entries))
	for i, e := range entries {
		out[i] = e.ring
	}
	return out
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// missingFunction builds the EngineMissingFunction error for a solver
// capability this implementation does not (yet) provide.
func missingFunction(name string) error {
	return errs.New("boolean."+name, errs.EngineMissingFunction)
}
