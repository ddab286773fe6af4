// Package registry implements the Curve Registry (spec §3.3, §4.C): a
// process-scoped store binding generated tessellation vertices back to the
// analytic curve that produced them, so that an offset can later recover
// true arcs instead of emitting chords.
//
// The teacher's equivalent concept doesn't have a single-file analogue —
// it is closest in spirit to detour's NodePool (detour/node.go), a flat,
// monotonically-growing table of entries addressed by an opaque integer
// handle, looked up in constant time. Registry follows the same shape:
// append-only storage, integer handles, O(1) lookup.
package registry

import "github.com/arl/camgeo/geom"

// Variant identifies the kind of analytic curve a Descriptor records.
type Variant uint8

const (
	VariantArc Variant = iota
	VariantCircle
)

// Source identifies which tessellation step registered a curve.
type Source uint8

const (
	SourceEndCap Source = iota
	SourceArcOuter
	SourceArcInner
	SourceArcEndCap
	SourceArcFallback
)

// CurveID is a registry handle, monotonically increasing and never reused
// (spec §4.C guarantees, tested by §8 P8).
type CurveID int64

// Descriptor is one immutable registry entry (spec §3.3).
type Descriptor struct {
	ID         CurveID
	Variant    Variant
	Center     geom.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
	Source     Source

	// IsOffsetDerived marks a descriptor synthesized during arc recovery
	// for an offset ring rather than during original tessellation.
	IsOffsetDerived bool
}

// ArcSegment identifies a contiguous index range [Start, End] (inclusive,
// into some ring's point slice) that corresponds to a preserved or
// recovered analytic arc, carrying its own copy of the descriptor fields
// so it remains meaningful even if the registry is later cleared (spec
// §3.4, §4.E.3).
type ArcSegment struct {
	Start, End int // inclusive index range into the owning ring
	CurveID    CurveID
	Center     geom.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

// Stats mirrors the observability counters of spec §4.C / §6
// get_arc_reconstruction_stats.
type Stats struct {
	Size                int
	CurvesRegistered    int64
	CurvesReconstructed int64
	CurvesLost          int64
}

// Registry is the curve registry. It is not safe for concurrent use, which
// is acceptable: per spec §5 the engine is single-threaded cooperative and
// a re-entrant call from within the same goroutine is safe since Go
// doesn't pre-empt mid-call.
type Registry struct {
	entries map[CurveID]Descriptor
	nextID  CurveID
	stats   Stats
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[CurveID]Descriptor)}
}

// Register stores descriptor (with its ID assigned) and returns the new
// CurveID. IDs are 0-based and strictly increasing, drawn from a counter
// that Clear never rewinds, so an id is never reused even across a clear
// (spec §4.C "ids are never reused", §8 P8).
func (r *Registry) Register(d Descriptor) CurveID {
	id := r.nextID
	r.nextID++
	d.ID = id
	r.entries[id] = d
	r.stats.CurvesRegistered++
	r.stats.Size = len(r.entries)
	return id
}

// Lookup returns the descriptor for id, or (zero, false) if id is unknown
// (e.g. a stale id from a cleared registry — spec §4.E.4 "Analytic
// candidate whose descriptor is not found in the registry").
func (r *Registry) Lookup(id CurveID) (Descriptor, bool) {
	d, ok := r.entries[id]
	return d, ok
}

// Clear empties the registry. Existing CurveIDs become stale; callers
// holding them must treat subsequent Lookup failures as "not found", not
// as an error. The id counter is not reset, so ids issued after Clear
// never collide with ids issued before it.
func (r *Registry) Clear() {
	r.entries = make(map[CurveID]Descriptor)
	r.stats.Size = 0
}

// Stats returns a snapshot of the observability counters.
func (r *Registry) Stats() Stats { return r.stats }

// MarkReconstructed increments the curvesReconstructed counter (spec
// §4.E.3 step 6), called once per confirmed arc run during arc recovery.
func (r *Registry) MarkReconstructed() { r.stats.CurvesReconstructed++ }

// MarkLost increments the curvesLost counter, called once per rejected
// candidate run during arc recovery.
func (r *Registry) MarkLost() { r.stats.CurvesLost++ }
