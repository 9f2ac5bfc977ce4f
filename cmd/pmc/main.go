package main

import (
	"fmt"
	"os"

	"github.com/pmc-dev/pmc/internal/cli"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	cli.Version = version
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
