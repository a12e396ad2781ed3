package main

import (
	"os"

	"github.com/strafesuite/tasedit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
