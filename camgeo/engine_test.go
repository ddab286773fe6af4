package camgeo_test

import (
	"testing"

	"github.com/arl/camgeo/boolean"
	"github.com/arl/camgeo/camgeo"
	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/offset"
	"github.com/arl/camgeo/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReadyEngine(t *testing.T) *camgeo.Engine {
	t.Helper()
	e := camgeo.New()
	require.NoError(t, e.Initialize(camgeo.DefaultConfig()))
	return e
}

func TestEngineRejectsCallsBeforeInitialize(t *testing.T) {
	e := camgeo.New()
	_, err := e.GetArcReconstructionStats()
	assert.Error(t, err)
}

func TestFuseTwoOverlappingDisks(t *testing.T) {
	e := newReadyEngine(t)
	c1, err := primitive.NewCircle(geom.Pt(0, 0), 1, primitive.Properties{Polarity: primitive.Dark})
	require.NoError(t, err)
	c2, err := primitive.NewCircle(geom.Pt(1, 0), 1, primitive.Properties{Polarity: primitive.Dark})
	require.NoError(t, err)

	out, err := e.Fuse([]primitive.Primitive{c1, c2}, camgeo.FuseOptions{PreserveArcs: camgeo.BoolPtr(true)})
	require.NoError(t, err)
	require.Len(t, out, 1)

	path, ok := out[0].(*primitive.Path)
	require.True(t, ok)
	assert.Len(t, path.Contours, 1)
}

func TestFuseAnnulusViaDifference(t *testing.T) {
	e := newReadyEngine(t)
	outer, err := primitive.NewCircle(geom.Pt(0, 0), 2, primitive.Properties{Polarity: primitive.Dark})
	require.NoError(t, err)
	inner, err := primitive.NewCircle(geom.Pt(0, 0), 1, primitive.Properties{Polarity: primitive.Clear})
	require.NoError(t, err)

	out, err := e.Fuse([]primitive.Primitive{outer, inner}, camgeo.FuseOptions{})
	require.NoError(t, err)
	require.Len(t, out, 1)

	path := out[0].(*primitive.Path)
	var holeCount int
	for _, c := range path.Contours {
		if c.IsHole {
			holeCount++
		}
	}
	assert.Equal(t, 1, holeCount)
}

func TestFuseTwoDisjointDisksProducesTwoPaths(t *testing.T) {
	e := newReadyEngine(t)
	c1, err := primitive.NewCircle(geom.Pt(0, 0), 1, primitive.Properties{Polarity: primitive.Dark})
	require.NoError(t, err)
	c2, err := primitive.NewCircle(geom.Pt(100, 0), 1, primitive.Properties{Polarity: primitive.Dark})
	require.NoError(t, err)

	out, err := e.Fuse([]primitive.Primitive{c1, c2}, camgeo.FuseOptions{PreserveArcs: camgeo.BoolPtr(true)})
	require.NoError(t, err)
	require.Len(t, out, 2, "two far-apart disks must fuse into two separate outer regions, not one flattened Path")

	for _, prim := range out {
		path, ok := prim.(*primitive.Path)
		require.True(t, ok)
		assert.Len(t, path.Contours, 1)
		assert.False(t, path.Contours[0].IsHole)
	}
}

// TestFuseHonorsExplicitFillRuleOverEngineDefault fuses two same-sense dark
// rectangles, one entirely nested inside the other, so the inner rectangle's
// interior has winding count 2 while the annulus between them has winding
// count 1: under EvenOdd the doubly-wound interior is excluded (a hole),
// under NonZero it's solid throughout. Nested (rather than merely
// overlapping) rectangles keep this deterministic regardless of how the
// raster tracer resolves touching-at-a-point ambiguities, since here the
// two boundaries never touch or cross at all. An engine configured with
// EvenOdd as its default must still honor an explicit NonZero request
// instead of silently falling back to its own configured rule.
func TestFuseHonorsExplicitFillRuleOverEngineDefault(t *testing.T) {
	cfg := camgeo.DefaultConfig()
	cfg.FillRule = boolean.EvenOdd
	e := camgeo.New()
	require.NoError(t, e.Initialize(cfg))

	outer, err := primitive.NewRectangle(geom.Pt(0, 0), 10, 10, primitive.Properties{Polarity: primitive.Dark})
	require.NoError(t, err)
	inner, err := primitive.NewRectangle(geom.Pt(3, 3), 4, 4, primitive.Properties{Polarity: primitive.Dark})
	require.NoError(t, err)
	prims := []primitive.Primitive{outer, inner}

	evenOdd, err := e.Fuse(prims, camgeo.FuseOptions{})
	require.NoError(t, err)
	assert.True(t, countHoles(evenOdd) > 0, "engine-default EvenOdd must turn the doubly-wound nested interior into a hole")

	nonZero, err := e.Fuse(prims, camgeo.FuseOptions{FillRule: boolean.NonZero})
	require.NoError(t, err)
	assert.Equal(t, 0, countHoles(nonZero), "explicit NonZero must override the engine's EvenOdd default and leave the nested interior solid")
}

func countHoles(prims []primitive.Primitive) int {
	var n int
	for _, p := range prims {
		path, ok := p.(*primitive.Path)
		if !ok {
			continue
		}
		for _, c := range path.Contours {
			if c.IsHole {
				n++
			}
		}
	}
	return n
}

// TestFuseExplicitPreserveArcsFalseOverridesEngineDefault exercises the
// same override requirement as FillRule, but for a bool option: an engine
// whose configured PreserveArcs default is true must still honor a caller
// explicitly passing PreserveArcs: false for one call.
func TestFuseExplicitPreserveArcsFalseOverridesEngineDefault(t *testing.T) {
	e := newReadyEngine(t) // DefaultConfig().PreserveArcs == true
	c, err := primitive.NewCircle(geom.Pt(0, 0), 3, primitive.Properties{Polarity: primitive.Dark})
	require.NoError(t, err)

	out, err := e.Fuse([]primitive.Primitive{c}, camgeo.FuseOptions{PreserveArcs: camgeo.BoolPtr(false)})
	require.NoError(t, err)
	require.Len(t, out, 1)

	path := out[0].(*primitive.Path)
	for _, c := range path.Contours {
		assert.Empty(t, c.ArcSegments, "explicit PreserveArcs: false must suppress arc recovery even though the engine default is true")
	}
}

func TestFuseDropsInvalidPrimitiveAndKeepsGoing(t *testing.T) {
	e := newReadyEngine(t)
	c, err := primitive.NewCircle(geom.Pt(0, 0), 1, primitive.Properties{Polarity: primitive.Dark})
	require.NoError(t, err)

	out, err := e.Fuse([]primitive.Primitive{nil, c}, camgeo.FuseOptions{})
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestPrepareAndGenerateOffset(t *testing.T) {
	e := newReadyEngine(t)
	c, err := primitive.NewCircle(geom.Pt(0, 0), 5, primitive.Properties{Polarity: primitive.Dark})
	require.NoError(t, err)

	fused, err := e.Fuse([]primitive.Primitive{c}, camgeo.FuseOptions{PreserveArcs: camgeo.BoolPtr(true)})
	require.NoError(t, err)

	prep, err := e.PrepareOffset(fused)
	require.NoError(t, err)

	offsetResult, err := e.GenerateOffset(prep, 1, camgeo.GenerateOffsetOptions{})
	require.NoError(t, err)
	require.Len(t, offsetResult, 1)
}

// TestGenerateOffsetHonorsExplicitEnableArcReconstructionFalse guards the
// same override-precedence requirement as PreserveArcs/FillRule, for
// GenerateOffsetOptions.EnableArcReconstruction: an engine configured with
// the spec default (true) must still honor a caller explicitly passing
// false for one call, suppressing arc recovery on the offset result.
func TestGenerateOffsetHonorsExplicitEnableArcReconstructionFalse(t *testing.T) {
	e := newReadyEngine(t) // DefaultConfig().EnableArcReconstruction == true
	c, err := primitive.NewCircle(geom.Pt(0, 0), 5, primitive.Properties{Polarity: primitive.Dark})
	require.NoError(t, err)

	fused, err := e.Fuse([]primitive.Primitive{c}, camgeo.FuseOptions{PreserveArcs: camgeo.BoolPtr(true)})
	require.NoError(t, err)
	prep, err := e.PrepareOffset(fused)
	require.NoError(t, err)

	withRecovery, err := e.GenerateOffset(prep, 1, camgeo.GenerateOffsetOptions{})
	require.NoError(t, err)
	require.Len(t, withRecovery, 1)
	pathWith := withRecovery[0].(*primitive.Path)
	require.NotEmpty(t, pathWith.Contours[0].ArcSegments, "engine default EnableArcReconstruction=true should recover the circle back to an arc")

	prep2, err := e.PrepareOffset(fused)
	require.NoError(t, err)
	noRecovery, err := e.GenerateOffset(prep2, 1, camgeo.GenerateOffsetOptions{EnableArcReconstruction: camgeo.BoolPtr(false)})
	require.NoError(t, err)
	require.Len(t, noRecovery, 1)
	pathWithout := noRecovery[0].(*primitive.Path)
	assert.Empty(t, pathWithout.Contours[0].ArcSegments, "explicit EnableArcReconstruction: false must suppress arc recovery even though the engine default is true")
}

// TestGenerateOffsetHonorsExplicitJoinRoundOverride guards the same
// override-precedence requirement as the other GenerateOffsetOptions
// fields, for Join specifically: an explicit JoinRound request must win
// over an engine configured with JoinMiter, and must not be taken for
// "caller left Join unset" (that is JoinUnspecified, the enum's zero value).
func TestGenerateOffsetHonorsExplicitJoinRoundOverride(t *testing.T) {
	cfg := camgeo.DefaultConfig()
	cfg.JoinType = offset.JoinMiter
	e := camgeo.New()
	require.NoError(t, e.Initialize(cfg))

	c, err := primitive.NewCircle(geom.Pt(0, 0), 5, primitive.Properties{Polarity: primitive.Dark})
	require.NoError(t, err)
	fused, err := e.Fuse([]primitive.Primitive{c}, camgeo.FuseOptions{})
	require.NoError(t, err)
	prep, err := e.PrepareOffset(fused)
	require.NoError(t, err)

	_, err = e.GenerateOffset(prep, 1, camgeo.GenerateOffsetOptions{Join: offset.JoinRound})
	require.NoError(t, err, "an explicit JoinRound request must not be mistaken for an unset Join field")
}

// TestFuseWarnsOnPrimitiveBeyondMaxCoordinate guards spec §6/§8 P9: a
// primitive whose bounds exceed the configured max_coordinate is warned
// about, not silently fused as if it were within range.
func TestFuseWarnsOnPrimitiveBeyondMaxCoordinate(t *testing.T) {
	e := newReadyEngine(t) // DefaultConfig().MaxCoordinate == 1000
	// 5000 is well beyond MaxCoordinate (1000) but nowhere near the
	// fixed-point scale-overflow threshold (~3e5 at the default scale),
	// so this must produce a warning, not a ScaleOverflow error.
	far, err := primitive.NewCircle(geom.Pt(5000, 0), 1, primitive.Properties{Polarity: primitive.Dark})
	require.NoError(t, err)

	out, err := e.Fuse([]primitive.Primitive{far}, camgeo.FuseOptions{})
	require.NoError(t, err)
	require.Len(t, out, 1, "an out-of-range primitive is warned about, not dropped")
}

func TestGetArcReconstructionStatsAfterFuse(t *testing.T) {
	e := newReadyEngine(t)
	c, err := primitive.NewCircle(geom.Pt(0, 0), 3, primitive.Properties{Polarity: primitive.Dark})
	require.NoError(t, err)

	_, err = e.Fuse([]primitive.Primitive{c}, camgeo.FuseOptions{PreserveArcs: camgeo.BoolPtr(true)})
	require.NoError(t, err)

	stats, err := e.GetArcReconstructionStats()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.CurvesRegistered, int64(1))
}

func TestCleanupReportsReleasedSlots(t *testing.T) {
	e := newReadyEngine(t)
	c, err := primitive.NewCircle(geom.Pt(0, 0), 1, primitive.Properties{Polarity: primitive.Dark})
	require.NoError(t, err)
	_, err = e.Fuse([]primitive.Primitive{c}, camgeo.FuseOptions{})
	require.NoError(t, err)

	released := e.Cleanup()
	assert.GreaterOrEqual(t, released, 1)
}

// TestDestroyedEngineRejectsFurtherCalls guards spec §5's "destroy() is
// idempotent and invalidates the registry handle": every other public
// method must start failing once Destroy has run, not keep succeeding
// against torn-down state.
func TestDestroyedEngineRejectsFurtherCalls(t *testing.T) {
	e := newReadyEngine(t)
	c, err := primitive.NewCircle(geom.Pt(0, 0), 1, primitive.Properties{Polarity: primitive.Dark})
	require.NoError(t, err)

	e.Destroy()
	e.Destroy() // idempotent: a second call must not panic

	_, err = e.Fuse([]primitive.Primitive{c}, camgeo.FuseOptions{})
	assert.Error(t, err)

	_, err = e.GetArcReconstructionStats()
	assert.Error(t, err)
}
