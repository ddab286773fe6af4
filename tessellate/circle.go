package tessellate

import (
	"math"

	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/registry"
)

// Circle tessellates a circle into a CCW ring of N vertices (spec §4.B),
// registering one new curve descriptor.
func Circle(center geom.Point, radius float64, cfg Config, reg *registry.Registry) Ring {
	n := SegmentCount(radius, cfg)
	id := reg.Register(registry.Descriptor{
		Variant: registry.VariantCircle, Center: center, Radius: radius,
		StartAngle: 0, EndAngle: 2 * math.Pi, Clockwise: false,
		Source: registry.SourceArcOuter,
	})
	verts := make([]Vertex, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		p := geom.Pt(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle))
		cid := id
		verts[i] = Vertex{
			Point: p, CurveID: &cid, SegmentIndex: i, TotalSegments: n,
			T: float64(i) / float64(n),
		}
	}
	return Ring{
		Vertices: verts,
		ArcSegments: []registry.ArcSegment{{
			Start: 0, End: n - 1, CurveID: id, Center: center, Radius: radius,
			StartAngle: 0, EndAngle: 2 * math.Pi, Clockwise: false,
		}},
	}
}

// Obround tessellates a stadium shape (rectangle with two half-circle
// caps) into a CCW ring (spec §4.B): cap points carry curve metadata,
// straight edges do not.
func Obround(position geom.Point, width, height float64, cfg Config, reg *registry.Registry) Ring {
	r := width
	if height < width {
		r = height
	}
	r /= 2

	var capCenterL, capCenterR geom.Point
	if width >= height {
		capCenterL = geom.Pt(position.X+r, position.Y+r)
		capCenterR = geom.Pt(position.X+width-r, position.Y+r)
	} else {
		capCenterL = geom.Pt(position.X+r, position.Y+r)
		capCenterR = geom.Pt(position.X+r, position.Y+height-r)
	}

	n := SegmentCount(r, cfg)
	half := n / 2

	var verts []Vertex

	if width >= height {
		// Right cap: angles from -pi/2 to pi/2 (facing +X).
		rightID := reg.Register(registry.Descriptor{
			Variant: registry.VariantArc, Center: capCenterR, Radius: r,
			StartAngle: -math.Pi / 2, EndAngle: math.Pi / 2, Clockwise: false,
			Source: registry.SourceArcOuter,
		})
		rightStart := len(verts)
		for i := 0; i <= half; i++ {
			angle := -math.Pi/2 + math.Pi*float64(i)/float64(half)
			p := geom.Pt(capCenterR.X+r*math.Cos(angle), capCenterR.Y+r*math.Sin(angle))
			cid := rightID
			verts = append(verts, Vertex{Point: p, CurveID: &cid, SegmentIndex: i, TotalSegments: half + 1, T: float64(i) / float64(half)})
		}
		rightEnd := len(verts) - 1

		// Left cap: angles from pi/2 to 3pi/2 (facing -X).
		leftID := reg.Register(registry.Descriptor{
			Variant: registry.VariantArc, Center: capCenterL, Radius: r,
			StartAngle: math.Pi / 2, EndAngle: 3 * math.Pi / 2, Clockwise: false,
			Source: registry.SourceArcOuter,
		})
		leftStart := len(verts)
		for i := 0; i <= half; i++ {
			angle := math.Pi/2 + math.Pi*float64(i)/float64(half)
			p := geom.Pt(capCenterL.X+r*math.Cos(angle), capCenterL.Y+r*math.Sin(angle))
			cid := leftID
			verts = append(verts, Vertex{Point: p, CurveID: &cid, SegmentIndex: i, TotalSegments: half + 1, T: float64(i) / float64(half)})
		}
		leftEnd := len(verts) - 1

		return Ring{
			Vertices: verts,
			ArcSegments: []registry.ArcSegment{
				{Start: rightStart, End: rightEnd, CurveID: rightID, Center: capCenterR, Radius: r, StartAngle: -math.Pi / 2, EndAngle: math.Pi / 2},
				{Start: leftStart, End: leftEnd, CurveID: leftID, Center: capCenterL, Radius: r, StartAngle: math.Pi / 2, EndAngle: 3 * math.Pi / 2},
			},
		}
	}

	// height > width: caps face +Y / -Y.
	topID := reg.Register(registry.Descriptor{
		Variant: registry.VariantArc, Center: capCenterR, Radius: r,
		StartAngle: 0, EndAngle: math.Pi, Clockwise: false, Source: registry.SourceArcOuter,
	})
	topStart := len(verts)
	for i := 0; i <= half; i++ {
		angle := math.Pi * float64(i) / float64(half)
		p := geom.Pt(capCenterR.X+r*math.Cos(angle), capCenterR.Y+r*math.Sin(angle))
		cid := topID
		verts = append(verts, Vertex{Point: p, CurveID: &cid, SegmentIndex: i, TotalSegments: half + 1, T: float64(i) / float64(half)})
	}
	topEnd := len(verts) - 1

	botID := reg.Register(registry.Descriptor{
		Variant: registry.VariantArc, Center: capCenterL, Radius: r,
		StartAngle: math.Pi, EndAngle: 2 * math.Pi, Clockwise: false, Source: registry.SourceArcOuter,
	})
	botStart := len(verts)
	for i := 0; i <= half; i++ {
		angle := math.Pi + math.Pi*float64(i)/float64(half)
		p := geom.Pt(capCenterL.X+r*math.Cos(angle), capCenterL.Y+r*math.Sin(angle))
		cid := botID
		verts = append(verts, Vertex{Point: p, CurveID: &cid, SegmentIndex: i, TotalSegments: half + 1, T: float64(i) / float64(half)})
	}
	botEnd := len(verts) - 1

	return Ring{
		Vertices: verts,
		ArcSegments: []registry.ArcSegment{
			{Start: topStart, End: topEnd, CurveID: topID, Center: capCenterR, Radius: r, StartAngle: 0, EndAngle: math.Pi},
			{Start: botStart, End: botEnd, CurveID: botID, Center: capCenterL, Radius: r, StartAngle: math.Pi, EndAngle: 2 * math.Pi},
		},
	}
}
