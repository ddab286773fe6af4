// Package fixture loads a primitive list from a JSON file, the camgeo
// analogue of the teacher's MeshLoaderObj (recast/meshloaderobj.go): a
// small file-backed loader struct exposing the parsed data through typed
// accessors. Where the teacher parses OBJ via github.com/aurelien-rainone/gobj,
// this domain has no equivalent third-party geometry-description parser in
// the example pack to reach for — a CAM job fixture is just a flat list of
// typed records, exactly what encoding/json already exists to decode, so
// reaching for a dependency here would add a parser with nothing to parse
// that json.Unmarshal doesn't already handle.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/primitive"
)

// Entry is one record of a fixture file's primitive list. Only the fields
// relevant to Type are read; others are ignored.
type Entry struct {
	Type        string  `json:"type"`
	Polarity    string  `json:"polarity"`
	StrokeWidth float64 `json:"strokeWidth"`

	Center geom.Point `json:"center"`
	Radius float64    `json:"radius"`

	BottomLeft geom.Point `json:"bottomLeft"`
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`

	Position geom.Point `json:"position"`

	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
	Clockwise  bool    `json:"clockwise"`

	Start geom.Point `json:"start"`
	End   geom.Point `json:"end"`
	Rx    float64    `json:"rx"`
	Ry    float64    `json:"ry"`
	Phi   float64    `json:"phi"`
	LargeArc bool    `json:"largeArc"`
	Sweep    bool    `json:"sweep"`

	Control []geom.Point `json:"control"`

	Contours []ContourEntry `json:"contours"`
}

// ContourEntry is one ring of a "path" fixture entry.
type ContourEntry struct {
	Points []geom.Point `json:"points"`
	IsHole bool         `json:"isHole"`
}

// Doc is the top-level shape of a fixture file.
type Doc struct {
	Primitives []Entry `json:"primitives"`
}

// Load reads and parses a fixture file into a primitive list. Entries with
// an unrecognized type, or whose fields fail primitive construction (spec
// §7 "InvalidPrimitive is filtered at ingestion"), are dropped with the
// error returned alongside the otherwise-successful list so a caller can
// log it — Load never fails outright for one bad entry.
func Load(path string) ([]primitive.Primitive, []error, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var doc Doc
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, nil, err
	}

	var out []primitive.Primitive
	var warnings []error
	for i, e := range doc.Primitives {
		p, err := build(e)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("fixture entry %d (%s): %w", i, e.Type, err))
			continue
		}
		out = append(out, p)
	}
	return out, warnings, nil
}

func properties(e Entry) primitive.Properties {
	props := primitive.Properties{StrokeWidth: e.StrokeWidth}
	if e.Polarity == "clear" {
		props.Polarity = primitive.Clear
	}
	if e.StrokeWidth > 0 {
		props.Stroke = true
	}
	return props
}

func build(e Entry) (primitive.Primitive, error) {
	props := properties(e)
	switch e.Type {
	case "circle":
		return primitive.NewCircle(e.Center, e.Radius, props)
	case "rectangle":
		return primitive.NewRectangle(e.BottomLeft, e.Width, e.Height, props)
	case "obround":
		return primitive.NewObround(e.Position, e.Width, e.Height, props)
	case "arc":
		return primitive.NewArc(e.Center, e.Radius, e.StartAngle, e.EndAngle, e.Clockwise, props)
	case "ellipticalarc":
		return primitive.NewEllipticalArc(e.Start, e.End, e.Rx, e.Ry, e.Phi, e.LargeArc, e.Sweep, props)
	case "bezier":
		return primitive.NewBezier(e.Control, props)
	case "path":
		contours := make([]primitive.Contour, len(e.Contours))
		for i, c := range e.Contours {
			contours[i] = primitive.Contour{Points: c.Points, IsHole: c.IsHole, Closed: true}
		}
		return primitive.NewPath(contours, props)
	default:
		return nil, fmt.Errorf("unknown primitive type %q", e.Type)
	}
}
