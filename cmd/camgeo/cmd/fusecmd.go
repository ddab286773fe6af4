package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/arl/camgeo/boolean"
	"github.com/arl/camgeo/camgeo"
	"github.com/arl/camgeo/geom"
	"github.com/arl/camgeo/primitive"
	"github.com/arl/camgeo/sample/fixture"
)

var fuseFillRule string

// fuseCmd represents the fuse command.
var fuseCmd = &cobra.Command{
	Use:   "fuse FIXTURE.json",
	Short: "fuse a fixture's primitives into one shape",
	Long: `Read a JSON fixture file, fuse every primitive it contains
according to its polarity, and print the resulting contours.`,
	Args: cobra.ExactArgs(1),
	Run:  doFuse,
}

func init() {
	RootCmd.AddCommand(fuseCmd)
	fuseCmd.Flags().StringVar(&fuseFillRule, "fill-rule", "NonZero", "NonZero, EvenOdd or Positive")
}

func doFuse(cmd *cobra.Command, args []string) {
	prims, warnings, err := fixture.Load(args[0])
	if err != nil {
		fmt.Println("error loading fixture:", err)
		return
	}
	for _, w := range warnings {
		fmt.Println("warning:", w)
	}

	eng, err := loadEngine()
	if err != nil {
		fmt.Println("error initializing engine:", err)
		return
	}

	out, err := eng.Fuse(prims, camgeo.FuseOptions{
		FillRule:     parseFillRule(fuseFillRule),
		PreserveArcs: camgeo.BoolPtr(true),
	})
	if err != nil {
		fmt.Println("fuse failed:", err)
		return
	}
	printContourSummary(out)
}

// parseFillRule maps the --fill-rule flag's string form to a
// boolean.FillRule, the same NonZero/EvenOdd/Positive vocabulary
// camgeo.Config.resolveNames() accepts from a YAML build-settings file.
func parseFillRule(name string) boolean.FillRule {
	switch name {
	case "EvenOdd":
		return boolean.EvenOdd
	case "Positive":
		return boolean.Positive
	default:
		return boolean.NonZero
	}
}

// printContourSummary prints one line per contour, sorted by bounding-box
// min-X so output order is deterministic regardless of the solver's
// internal contour-emission order.
func printContourSummary(prims []primitive.Primitive) {
	type row struct {
		minX   float64
		hole   bool
		points int
		arcs   int
	}
	var rows []row
	for _, p := range prims {
		path, ok := p.(*primitive.Path)
		if !ok {
			continue
		}
		for _, c := range path.Contours {
			b := geom.BoundsOf(c.Points)
			rows = append(rows, row{minX: b.MinX, hole: c.IsHole, points: len(c.Points), arcs: len(c.ArcSegments)})
		}
	}
	slices.SortFunc(rows, func(a, b row) int {
		switch {
		case a.minX < b.minX:
			return -1
		case a.minX > b.minX:
			return 1
		default:
			return 0
		}
	})
	for _, r := range rows {
		kind := "outer"
		if r.hole {
			kind = "hole"
		}
		fmt.Printf("%s contour: %d vertices, %d arc segments\n", kind, r.points, r.arcs)
	}
}
