package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "camgeo",
	Short: "fuse and offset PCB CAM geometry",
	Long: `camgeo is the command-line front end for the CAM geometry core:
	- fuse polarity-tagged primitives from a JSON fixture into a single shape,
	- generate offset contours at a distance, with multi-pass stepover,
	- write a build settings file (YAML),
	- show arc-reconstruction stats after a run.`,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "camgeo.yml", "engine settings file")
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
