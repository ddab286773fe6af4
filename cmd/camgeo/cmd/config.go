package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/camgeo/camgeo"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create an engine settings file",
	Long: `Create an engine settings file in YAML format, prefilled with
default values.

If FILE is not provided, 'camgeo.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "camgeo.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if ok, err := confirmIfExists(path,
			fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path)); !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		if err := camgeo.SaveConfig(path, camgeo.DefaultConfig()); err != nil {
			fmt.Println("error writing config:", err)
			return
		}
		fmt.Printf("engine settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
