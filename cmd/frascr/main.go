// Command frascr renders escape-time fractals through a colorimetric
// palette.
//
// Usage:
//
//	frascr [flags] output...
//	frascr -f run.toml [-f zoom.yaml] [flags] [output...]
//	frascr palette -f run.toml
//	frascr illuminants | algorithms | writers
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "frascr: %s\n", describe(err))
		os.Exit(1)
	}
}
