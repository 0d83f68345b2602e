// Swatch - colour extraction, palette and gradient generator
//
// Swatch extracts dominant colours from images and turns them into
// palettes, CSS gradients and accessible colour pairs.
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
