package cmd

import (
	"fmt"
	"os"

	"github.com/arl/camgeo/camgeo"
)

// confirmIfExists checks that a file exists, and asks the user for
// confirmation to overwrite it. Returns true if the file doesn't exist, or
// if the user confirmed.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	fmt.Println(msg)
	var answer string
	fmt.Scanln(&answer)
	return answer == "y" || answer == "Y", nil
}

// loadEngine builds a ready camgeo.Engine from the settings file at
// cfgFile, falling back to defaults when the file is absent.
func loadEngine() (*camgeo.Engine, error) {
	cfg, err := camgeo.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = camgeo.DefaultConfig()
		} else {
			return nil, err
		}
	}
	eng := camgeo.New()
	if err := eng.Initialize(cfg); err != nil {
		return nil, err
	}
	return eng, nil
}
