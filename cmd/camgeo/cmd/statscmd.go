package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/arl/camgeo/camgeo"
	"github.com/arl/camgeo/sample/fixture"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats FIXTURE.json",
	Short: "fuse a fixture and show arc-reconstruction stats",
	Long: `Read a JSON fixture file, fuse its primitives with arc
preservation enabled, and render get_arc_reconstruction_stats() as a
table, the CLI-output analogue of the teacher's 'infos' command.`,
	Args: cobra.ExactArgs(1),
	Run:  doStats,
}

func init() {
	RootCmd.AddCommand(statsCmd)
}

func doStats(cmd *cobra.Command, args []string) {
	prims, _, err := fixture.Load(args[0])
	if err != nil {
		fmt.Println("error loading fixture:", err)
		return
	}

	eng, err := loadEngine()
	if err != nil {
		fmt.Println("error initializing engine:", err)
		return
	}
	if _, err := eng.Fuse(prims, camgeo.FuseOptions{PreserveArcs: camgeo.BoolPtr(true)}); err != nil {
		fmt.Println("fuse failed:", err)
		return
	}

	stats, err := eng.GetArcReconstructionStats()
	if err != nil {
		fmt.Println("error reading stats:", err)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"metric", "value"})
	t.AppendRows([]table.Row{
		{"registry size", stats.Size},
		{"curves registered", stats.CurvesRegistered},
		{"curves reconstructed", stats.CurvesReconstructed},
		{"curves lost", stats.CurvesLost},
	})
	t.Render()
}
