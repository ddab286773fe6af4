// Package camgeo is the EngineContext façade (spec §6, §9 redesign note
// 1): one Engine object replacing the source's module-level singletons,
// owning the Curve Registry, the boolean solver and the debug context,
// and exposing Fuse/PrepareOffset/GenerateOffset/GetCached/
// GetArcReconstructionStats/Cleanup as its public contract.
package camgeo

import (
	"sync"

	"github.com/arl/camgeo/boolean"
	"github.com/arl/camgeo/errs"
	"github.com/arl/camgeo/internal/dbg"
	"github.com/arl/camgeo/internal/fixedpoint"
	"github.com/arl/camgeo/primitive"
	"github.com/arl/camgeo/registry"
)

// state is the {Uninit -> Initializing -> Ready|Failed} machine of spec
// §9 redesign note 2.
type state uint8

const (
	stateUninit state = iota
	stateInitializing
	stateReady
	stateFailed
)

// Engine is the one object a caller holds (spec §6 "the core exposes one
// engine object"). Every public method but Initialize calls ensureReady
// first, the Go analogue of the source's `ensure_ready()` async guard —
// collapsed here to a synchronous check since a pure-Go solver has no
// native module to await (spec's EngineContext façade note).
type Engine struct {
	mu       sync.Mutex
	st       state
	initErr  error
	cfg      Config
	reg      *registry.Registry
	boolEng  *boolean.Engine
	dbgCtx   *dbg.Context
	refCount int32
}

// New constructs an Engine in the Uninit state. It must be initialized
// with Initialize before any other public method succeeds.
func New() *Engine {
	return &Engine{st: stateUninit}
}

// Initialize is the one-shot initialize(config) call of spec §6. It is
// idempotent per instance: a second call returns the first call's result
// without redoing the work.
func (e *Engine) Initialize(cfg Config) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st == stateReady || e.st == stateFailed {
		return e.initErr
	}
	e.st = stateInitializing

	if cfg.Scale <= 0 {
		// Only the scaling factor needs a default here — replacing the
		// whole struct would silently discard every other field the
		// caller explicitly set (PolygonResolution, TangencyStrategy,
		// ...) just because Scale was left at its Go zero value.
		cfg.Scale = DefaultConfig().Scale
	}
	cfg.Scale = fixedpoint.ClampScale(cfg.Scale)
	e.cfg = cfg
	e.reg = registry.New()
	// NewContext enables logging and timers by default, so Debug=false
	// (the documented default) has to explicitly disable them here;
	// Debug=true just leaves NewContext's own defaults in place.
	e.dbgCtx = dbg.NewContext()
	if !cfg.Debug {
		e.dbgCtx.EnableLog(false)
		e.dbgCtx.EnableTimer(false)
	}

	boolEng, err := boolean.New(cfg.booleanConfig(), e.reg, e.dbgCtx)
	if err != nil {
		e.st = stateFailed
		e.initErr = errs.Wrap("camgeo.Initialize", errs.SolverUnavailable, err)
		return e.initErr
	}
	e.boolEng = boolEng
	e.refCount = 1
	e.st = stateReady
	return nil
}

// ensureReady is the guard every public method but Initialize runs first
// (spec §5 "an explicit ensure_ready() guard at the top of every other
// public entry").
func (e *Engine) ensureReady() error {
	switch e.st {
	case stateReady:
		return nil
	case stateFailed:
		return e.initErr
	default:
		return errs.New("camgeo.ensureReady", errs.SolverUnavailable)
	}
}

// Cleanup releases cached geometry and reports the count of released
// objects (spec §6 cleanup()).
func (e *Engine) Cleanup() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.boolEng == nil {
		return 0
	}
	released := 0
	for _, slot := range []string{boolean.SlotPreprocessedGeometry, boolean.SlotFusedGeometry} {
		if _, ok := e.boolEng.GetCached(slot); ok {
			released++
		}
	}
	e.boolEng.Cleanup()
	return released
}

// Destroy invalidates the engine (spec §5 "destroy() is idempotent and
// invalidates the registry handle"). A caller that wants to cancel
// in-flight work drops its reference and builds a new Engine instead
// (spec §5 "Cancellation").
func (e *Engine) Destroy() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.st != stateReady && e.st != stateFailed {
		return
	}
	if e.boolEng != nil {
		e.boolEng.Destroy()
	}
	e.refCount = 0
	e.st = stateUninit
	e.initErr = nil
}

// GetCached returns the primitives stored under slot ("preprocessedGeometry"
// or "fusedGeometry"), or (nil, false) on a cache miss (spec §6
// get_cached, errs.CacheMiss "not an error, just a null").
func (e *Engine) GetCached(slot string) ([]primitive.Primitive, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ensureReady(); err != nil {
		return nil, false
	}
	rings, ok := e.boolEng.GetCached(slot)
	if !ok {
		return nil, false
	}
	paths, err := ringsToPaths(rings, e.cfg.Scale)
	if err != nil {
		return nil, false
	}
	out := make([]primitive.Primitive, len(paths))
	for i, p := range paths {
		out[i] = p
	}
	return out, true
}

// GetArcReconstructionStats returns the registry's observability counters
// (spec §6 get_arc_reconstruction_stats()).
func (e *Engine) GetArcReconstructionStats() (registry.Stats, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ensureReady(); err != nil {
		return registry.Stats{}, err
	}
	return e.reg.Stats(), nil
}
