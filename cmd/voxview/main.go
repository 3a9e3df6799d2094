package main

import "github.com/philipparndt/voxview/cmd"

func main() {
	cmd.Execute()
}
