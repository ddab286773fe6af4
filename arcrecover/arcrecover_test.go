package arcrecover_test

import (
	"math"
	"testing"

	"github.com/arl/camgeo/arcrecover"
	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func circlePoints(center geom.Point, radius float64, n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.Pt(center.X+radius*math.Cos(a), center.Y+radius*math.Sin(a))
	}
	return pts
}

func TestRecoverConfirmsWholeCircleAtZeroOffset(t *testing.T) {
	reg := registry.New()
	center := geom.Pt(0, 0)
	candID := reg.Register(registry.Descriptor{Variant: registry.VariantCircle, Center: center, Radius: 5})
	candidate := registry.Descriptor{ID: candID, Variant: registry.VariantCircle, Center: center, Radius: 5}

	ring := circlePoints(center, 5, 32)
	res := arcrecover.Recover(ring, []registry.Descriptor{candidate}, 0, reg, arcrecover.DefaultConfig())

	assert.Equal(t, int64(1), res.CurvesReconstructed)
	assert.Zero(t, res.CurvesLost)
	assert.Len(t, res.Segments, 1)
	assert.InDelta(t, 5.0, res.Segments[0].Radius, 1e-6)
}

func TestRecoverMatchesOffsetRadius(t *testing.T) {
	reg := registry.New()
	center := geom.Pt(0, 0)
	candID := reg.Register(registry.Descriptor{Variant: registry.VariantCircle, Center: center, Radius: 5})
	candidate := registry.Descriptor{ID: candID, Variant: registry.VariantCircle, Center: center, Radius: 5}

	ring := circlePoints(center, 6, 32) // offset outward by 1
	res := arcrecover.Recover(ring, []registry.Descriptor{candidate}, 1, reg, arcrecover.DefaultConfig())

	assert.Equal(t, int64(1), res.CurvesReconstructed)
	assert.InDelta(t, 6.0, res.Segments[0].Radius, 1e-6)
}

// TestRecoverReconstructsRunThatWrapsPastRingStart builds a ring where one
// curve's run occupies the last and first vertex (indices 9 and 0 of a
// 10-vertex ring), wrapping past the array boundary. A run-length
// computation that doesn't account for the wrap undercounts it as a
// single vertex and spuriously rejects it as "lost" even though it's a
// valid 2-vertex run, exactly like any non-wrapping 2-vertex run would be
// accepted.
func TestRecoverReconstructsRunThatWrapsPastRingStart(t *testing.T) {
	reg := registry.New()
	bigID := reg.Register(registry.Descriptor{Variant: registry.VariantCircle, Center: geom.Pt(0, 0), Radius: 5})
	wrapID := reg.Register(registry.Descriptor{Variant: registry.VariantCircle, Center: geom.Pt(0, 0), Radius: 9})
	candidates := []registry.Descriptor{
		{ID: bigID, Variant: registry.VariantCircle, Center: geom.Pt(0, 0), Radius: 5},
		{ID: wrapID, Variant: registry.VariantCircle, Center: geom.Pt(0, 0), Radius: 9},
	}

	ring := make([]geom.Point, 10)
	// indices 1..8: a confirmed 8-vertex run on the radius-5 candidate.
	for i := 1; i <= 8; i++ {
		a := 2 * math.Pi * float64(i) / 16
		ring[i] = geom.Pt(5*math.Cos(a), 5*math.Sin(a))
	}
	// indices 9 and 0: a 2-vertex run on the radius-9 candidate, wrapping
	// past the end of the ring's index array back to its start.
	ring[9] = geom.Pt(9*math.Cos(0.1), 9*math.Sin(0.1))
	ring[0] = geom.Pt(9*math.Cos(0.2), 9*math.Sin(0.2))

	res := arcrecover.Recover(ring, candidates, 0, reg, arcrecover.DefaultConfig())

	assert.Zero(t, res.CurvesLost, "a genuine 2-vertex wrapping run must not be rejected as lost")
	require.Len(t, res.Segments, 2)
	var sawWrap bool
	for _, s := range res.Segments {
		if s.Start == 9 && s.End == 0 {
			sawWrap = true
			assert.InDelta(t, 9.0, s.Radius, 1e-6)
		}
	}
	assert.True(t, sawWrap, "expected one segment spanning indices 9..0")
}

func TestRecoverRejectsNoisyRing(t *testing.T) {
	reg := registry.New()
	center := geom.Pt(0, 0)
	candID := reg.Register(registry.Descriptor{Variant: registry.VariantCircle, Center: center, Radius: 5})
	candidate := registry.Descriptor{ID: candID, Variant: registry.VariantCircle, Center: center, Radius: 5}

	// A square, not a circle: should fail the fit-check entirely.
	ring := []geom.Point{geom.Pt(-5, -5), geom.Pt(5, -5), geom.Pt(5, 5), geom.Pt(-5, 5)}
	res := arcrecover.Recover(ring, []registry.Descriptor{candidate}, 0, reg, arcrecover.DefaultConfig())

	assert.Empty(t, res.Segments)
	assert.Zero(t, res.CurvesReconstructed)
}

func TestRecoverEmptyInputs(t *testing.T) {
	reg := registry.New()
	res := arcrecover.Recover(nil, nil, 0, reg, arcrecover.DefaultConfig())
	assert.Empty(t, res.Segments)
}
