package offset_test

import (
	"testing"

	"github.com/arl/camgeo/boolean"
	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/internal/dbg"
	"github.com/arl/camgeo/offset"
	"github.com/arl/camgeo/primitive"
	"github.com/arl/camgeo/registry"
	"github.com/arl/camgeo/tessellate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) (*boolean.Engine, *registry.Registry) {
	t.Helper()
	reg := registry.New()
	eng, err := boolean.New(boolean.DefaultConfig(), reg, dbg.NewContext())
	require.NoError(t, err)
	return eng, reg
}

func TestOffsetCircleOutward(t *testing.T) {
	eng, reg := newEngine(t)
	c, err := primitive.NewCircle(geom.Pt(0, 0), 5, primitive.Properties{})
	require.NoError(t, err)

	out, err := offset.Offset(c, 1, offset.DefaultConfig(), reg, eng)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Len(t, out[0].Contours, 1)
}

func TestOffsetCircleCollapsesWhenRadiusGoesNonPositive(t *testing.T) {
	eng, reg := newEngine(t)
	c, err := primitive.NewCircle(geom.Pt(0, 0), 1, primitive.Properties{})
	require.NoError(t, err)

	out, err := offset.Offset(c, -2, offset.DefaultConfig(), reg, eng)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestOffsetRectangleProducesRoundedCorners(t *testing.T) {
	eng, reg := newEngine(t)
	r, err := primitive.NewRectangle(geom.Pt(0, 0), 10, 10, primitive.Properties{})
	require.NoError(t, err)

	out, err := offset.Offset(r, 1, offset.DefaultConfig(), reg, eng)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotEmpty(t, out[0].Contours[0].ArcSegments)
}

func square(cx, cy, half float64) []geom.Point {
	return []geom.Point{
		geom.Pt(cx-half, cy-half),
		geom.Pt(cx+half, cy-half),
		geom.Pt(cx+half, cy+half),
		geom.Pt(cx-half, cy+half),
	}
}

func TestOffsetPathWithDisjointOutersProducesOnePathPerRegion(t *testing.T) {
	eng, reg := newEngine(t)
	path, err := primitive.NewPath([]primitive.Contour{
		{Points: square(0, 0, 5), Closed: true},
		{Points: square(100, 0, 5), Closed: true},
	}, primitive.Properties{})
	require.NoError(t, err)

	out, err := offset.Offset(path, 1, offset.DefaultConfig(), reg, eng)
	require.NoError(t, err)
	require.Len(t, out, 2, "two far-apart outer regions must not be flattened into one Path")
	for _, p := range out {
		assert.Len(t, p.Contours, 1)
		assert.False(t, p.Contours[0].IsHole)
	}
}

// TestOffsetClockwiseArcProducesCCWOuterContour guards against the analytic
// fast path returning Arc's raw tessellated winding: a clockwise sweep
// tessellates CW, and that must be normalized to CCW like every other
// outer contour (spec invariant P1), not handed through as-is.
func TestOffsetClockwiseArcProducesCCWOuterContour(t *testing.T) {
	eng, reg := newEngine(t)
	a, err := primitive.NewArc(geom.Pt(0, 0), 5, 0, 1.5, true, primitive.Properties{StrokeWidth: 1})
	require.NoError(t, err)

	out, err := offset.Offset(a, 1, offset.DefaultConfig(), reg, eng)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Contours, 1)
	assert.True(t, geom.IsCCW(out[0].Contours[0].Points), "outer contour must be CCW regardless of the arc's sweep direction")
}

// TestOffsetRespectsEnableArcReconstructionFlag guards offset.Config.
// EnableArcReconstruction: a caller turning it off must get a purely
// polygonal contour out of the general path, even for a source ring a
// circle candidate would otherwise let arcrecover.Recover reconstruct.
func TestOffsetRespectsEnableArcReconstructionFlag(t *testing.T) {
	eng, reg := newEngine(t)
	ring := tessellate.Circle(geom.Pt(0, 0), 5, tessellate.DefaultConfig(), reg)
	path, err := primitive.NewPath([]primitive.Contour{
		{Points: ring.Points(), ArcSegments: ring.ArcSegments, Closed: true},
	}, primitive.Properties{})
	require.NoError(t, err)

	withRecovery := offset.DefaultConfig()
	out, err := offset.Offset(path, 1, withRecovery, reg, eng)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotEmpty(t, out[0].Contours[0].ArcSegments, "EnableArcReconstruction defaults true and should recover the circle")

	withoutRecovery := offset.DefaultConfig()
	withoutRecovery.EnableArcReconstruction = false
	out2, err := offset.Offset(path, 1, withoutRecovery, reg, eng)
	require.NoError(t, err)
	require.Len(t, out2, 1)
	assert.Empty(t, out2[0].Contours[0].ArcSegments, "EnableArcReconstruction=false must suppress arc recovery")
}

func TestMultiPassOutwardAccumulatesDistance(t *testing.T) {
	eng, reg := newEngine(t)
	c, err := primitive.NewCircle(geom.Pt(0, 0), 5, primitive.Properties{})
	require.NoError(t, err)

	passes, err := offset.MultiPass(c, 3, 1, false, offset.DefaultConfig(), reg, eng)
	require.NoError(t, err)
	require.Len(t, passes, 3)
	assert.InDelta(t, 3.0, passes[2].Distance, 1e-9)
}
