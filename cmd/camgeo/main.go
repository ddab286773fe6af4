package main

import "github.com/arl/camgeo/cmd/camgeo/cmd"

func main() {
	cmd.Execute()
}
