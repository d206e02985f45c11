package main

import "github.com/oshokin/distinfo-builder/cmd/distinfo-builder/cmd"

func main() {
	cmd.Execute()
}
