package main

import (
	"os"

	"github.com/rick-howell/ricklib/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
