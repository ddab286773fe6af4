// Package primitive implements the Primitive Model (spec §3.1, §3.2, §4.A):
// a closed set of typed geometric entities, replacing the source's dynamic
// property bags with a tagged variant per spec §9 redesign note 3.
package primitive

import (
	"math"

	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/errs"
	"github.com/rs/xid"
)

// Polarity is the semantic "add material" / "remove material" label a
// caller attaches to a primitive before fusion. It is used only by the
// boolean engine, never by tessellation (spec §3.2).
type Polarity uint8

const (
	Dark Polarity = iota
	Clear
)

// OperationKind records why a primitive exists, informational only.
type OperationKind string

// OffsetCapability replaces duck-typed "canOffsetAnalytically" methods
// (spec §9 redesign note 4) with a capability enum settled at construction
// time.
type OffsetCapability uint8

const (
	AnalyticOffset OffsetCapability = iota
	PolygonalOnly
)

// Properties is the small, typed replacement for the source's
// `properties.polarity`, `properties.isTrace`, ... dynamic bag (spec §9
// redesign note 3). Unknown flags have no representation here by
// construction: ingestion of an unrecognized flag is a compile-time
// impossibility rather than a runtime rejection.
type Properties struct {
	Polarity    Polarity
	Operation   OperationKind
	Stroke      bool
	Fill        bool
	StrokeWidth float64
}

// ID is a stable, creation-ordered identifier assigned to every primitive.
type ID = xid.ID

// NewID returns a fresh stable identifier.
func NewID() ID { return xid.New() }

// Base is embedded by every primitive variant; it caches bounds (computed
// lazily by the owning variant's Bounds method) and carries the identity
// and property bag shared by all variants.
type Base struct {
	id         ID
	props      Properties
	cached     geom.Rect
	haveBounds bool
}

func newBase(props Properties) Base {
	return Base{id: NewID(), props: props}
}

// ID returns the primitive's stable identifier.
func (b *Base) ID() ID { return b.id }

// Properties returns the primitive's property bag.
func (b *Base) Properties() Properties { return b.props }

// Primitive is the sum type of every geometric entity the core accepts.
// Each concrete variant (Circle, Rectangle, Obround, Arc, EllipticalArc,
// Bezier, Path) implements it.
type Primitive interface {
	ID() ID
	Properties() Properties

	// Bounds returns the axis-aligned bounding rectangle, lazily computed
	// and cached (spec §4.A).
	Bounds() geom.Rect

	// IsAnalytic reports whether the variant is an analytic shape (true
	// for every variant except Path).
	IsAnalytic() bool

	// Capability reports whether the variant supports an analytic offset
	// fast path (spec §4.A can_offset_analytically, §9 redesign note 4).
	Capability() OffsetCapability
}

// Validate checks the finiteness invariant common to every primitive
// (spec §3.2 invariant 3): non-finite bounds are rejected.
func Validate(p Primitive) error {
	b := p.Bounds()
	if !b.IsFinite() {
		return errs.New("primitive.Validate", errs.InvalidPrimitive)
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func invalidPrimitive(op string) error {
	return errs.New(op, errs.InvalidPrimitive)
}
