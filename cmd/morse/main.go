package main

import (
	"os"

	"github.com/mnightingale/morse/internal/cli"
)

// Set via ldflags at release time.
var (
	commit  = "HEAD"
	version = "latest"
)

func main() {
	if err := cli.Execute(version, commit); err != nil {
		os.Exit(1)
	}
}
