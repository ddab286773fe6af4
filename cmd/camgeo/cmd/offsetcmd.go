package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/camgeo/camgeo"
	"github.com/arl/camgeo/sample/fixture"
)

var (
	offsetDistance float64
	offsetPasses   int
	offsetStepover float64
	offsetInward   bool
)

// offsetCmd represents the offset command.
var offsetCmd = &cobra.Command{
	Use:   "offset FIXTURE.json",
	Short: "fuse a fixture then generate an offset",
	Long: `Read a JSON fixture file, fuse its primitives, then generate an
offset at --distance (or a multi-pass sequence with --passes/--stepover),
and print the resulting contours.`,
	Args: cobra.ExactArgs(1),
	Run:  doOffset,
}

func init() {
	RootCmd.AddCommand(offsetCmd)
	offsetCmd.Flags().Float64Var(&offsetDistance, "distance", 0, "offset distance (caller units)")
	offsetCmd.Flags().IntVar(&offsetPasses, "passes", 1, "number of multi-pass stepover passes")
	offsetCmd.Flags().Float64Var(&offsetStepover, "stepover", 0, "stepover distance between passes")
	offsetCmd.Flags().BoolVar(&offsetInward, "inward", false, "offset inward instead of outward")
}

func doOffset(cmd *cobra.Command, args []string) {
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

	fused, err := eng.Fuse(prims, camgeo.FuseOptions{PreserveArcs: camgeo.BoolPtr(true)})
	if err != nil {
		fmt.Println("fuse failed:", err)
		return
	}

	prep, err := eng.PrepareOffset(fused)
	if err != nil {
		fmt.Println("prepare_offset failed:", err)
		return
	}

	result, err := eng.GenerateOffset(prep, offsetDistance, camgeo.GenerateOffsetOptions{
		Passes:   offsetPasses,
		Stepover: offsetStepover,
		Inward:   offsetInward,
	})
	if err != nil {
		fmt.Println("generate_offset failed:", err)
		return
	}
	if len(result) == 0 {
		fmt.Println("offset degenerate: result is empty")
		return
	}
	printContourSummary(result)
}
