package registry_test

import (
	"testing"

	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/registry"
	"github.com/stretchr/testify/assert"
)

func TestRegisterAssignsStrictlyIncreasingIDs(t *testing.T) {
	r := registry.New()
	var ids []registry.CurveID
	for i := 0; i < 5; i++ {
		ids = append(ids, r.Register(registry.Descriptor{Variant: registry.VariantCircle, Radius: float64(i)}))
	}
	for i := 1; i < len(ids); i++ {
		assert.Greater(t, ids[i], ids[i-1])
	}
}

func TestLookupReturnsRegisteredDescriptor(t *testing.T) {
	r := registry.New()
	center := geom.Pt(1, 2)
	id := r.Register(registry.Descriptor{Variant: registry.VariantCircle, Center: center, Radius: 3})

	d, ok := r.Lookup(id)
	assert.True(t, ok)
	assert.Equal(t, center, d.Center)
	assert.Equal(t, 3.0, d.Radius)
}

func TestLookupMissesUnknownID(t *testing.T) {
	r := registry.New()
	_, ok := r.Lookup(registry.CurveID(42))
	assert.False(t, ok)
}

// P8 (spec §8): curveIds strictly increase and are never reused, even
// across a Clear.
func TestClearNeverReusesIDs(t *testing.T) {
	r := registry.New()
	var before []registry.CurveID
	for i := 0; i < 3; i++ {
		before = append(before, r.Register(registry.Descriptor{Variant: registry.VariantArc}))
	}
	maxBefore := before[len(before)-1]

	r.Clear()
	assert.Equal(t, 0, r.Stats().Size, "Clear must empty the registry")

	afterFirst := r.Register(registry.Descriptor{Variant: registry.VariantArc})
	assert.Greater(t, afterFirst, maxBefore, "id issued after Clear must never collide with one issued before it")

	for _, id := range before {
		_, ok := r.Lookup(id)
		assert.False(t, ok, "a pre-clear id must read back as a miss, not resolve to a different descriptor")
	}
}

// TestClearPreservesCumulativeReconstructionStats guards spec §3.5's "callers
// may clear it between independent runs to bound memory": Clear's job is
// bounding memory (dropping entries), not resetting the observability
// counters get_arc_reconstruction_stats() reports — a caller clearing
// mid-session would otherwise lose all reconstruction-quality history every
// time it clears, even though only Size is documented as what Clear resets.
func TestClearPreservesCumulativeReconstructionStats(t *testing.T) {
	r := registry.New()
	r.Register(registry.Descriptor{Variant: registry.VariantArc})
	r.MarkReconstructed()
	r.MarkLost()

	r.Clear()

	stats := r.Stats()
	assert.Zero(t, stats.Size, "Clear must empty the registry's entries")
	assert.Equal(t, int64(1), stats.CurvesRegistered, "cumulative registration count must survive a Clear")
	assert.Equal(t, int64(1), stats.CurvesReconstructed, "cumulative reconstruction count must survive a Clear")
	assert.Equal(t, int64(1), stats.CurvesLost, "cumulative lost count must survive a Clear")
}

func TestStatsTracksRegisteredReconstructedAndLost(t *testing.T) {
	r := registry.New()
	r.Register(registry.Descriptor{Variant: registry.VariantCircle})
	r.Register(registry.Descriptor{Variant: registry.VariantArc})
	r.MarkReconstructed()
	r.MarkLost()

	stats := r.Stats()
	assert.Equal(t, 2, stats.Size)
	assert.Equal(t, int64(2), stats.CurvesRegistered)
	assert.Equal(t, int64(1), stats.CurvesReconstructed)
	assert.Equal(t, int64(1), stats.CurvesLost)
}
