package offset

import (
	"testing"

	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/registry"
)

// TestReclassifyFullCircleAcceptsRunSpanningWholeRing guards against
// requiring pts[Start] and pts[End] to coincide as points: a ring has no
// duplicated closing vertex, so those are two distinct adjacent perimeter
// points even when the run legitimately spans every vertex. Start==0 &&
// End==n-1 alone already means the whole ring is one run.
func TestReclassifyFullCircleAcceptsRunSpanningWholeRing(t *testing.T) {
	reg := registry.New()
	pts := []geom.Point{geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(-1, 0), geom.Pt(0, -1)}
	segs := []registry.ArcSegment{{Start: 0, End: len(pts) - 1, Center: geom.Pt(0, 0), Radius: 1}}

	out := reclassifyFullCircle(pts, segs, reg)
	if len(out) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(out))
	}
	d, ok := reg.Lookup(out[0].CurveID)
	if !ok {
		t.Fatal("reclassified segment's CurveID must resolve in the registry")
	}
	if d.Variant != registry.VariantCircle {
		t.Errorf("a run spanning the whole ring must reclassify as VariantCircle, got %v", d.Variant)
	}
}

// TestReclassifyFullCircleLeavesPartialRunAlone guards the other side: a
// run that doesn't cover the whole ring must pass through unchanged.
func TestReclassifyFullCircleLeavesPartialRunAlone(t *testing.T) {
	reg := registry.New()
	pts := []geom.Point{geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(-1, 0), geom.Pt(0, -1)}
	segs := []registry.ArcSegment{{Start: 0, End: 2, Center: geom.Pt(0, 0), Radius: 1}}

	out := reclassifyFullCircle(pts, segs, reg)
	if len(out) != 1 || out[0].Start != 0 || out[0].End != 2 {
		t.Fatalf("a partial run must pass through unchanged, got %+v", out)
	}
}
