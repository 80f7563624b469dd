// Package main provides the CLI entrypoint for almanac.
//
// almanac reads a seed catalogue and its category-to-category remapping
// tables, then:
//   - Locates every seed in the last category of the chain (locate, lowest)
//   - Walks a single value backward or forward, printing each hop (trace)
//   - Reports overlapping, missing or misplaced tables (check)
//   - Converts catalogues between the text and YAML formats (convert)
package main

import (
	"fmt"
	"os"
)

const (
	exitSuccess = 0
	exitError   = 1
	exitInvalid = 2
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		if isInvalid(err) {
			os.Exit(exitInvalid)
		}

		os.Exit(exitError)
	}

	os.Exit(exitSuccess)
}
