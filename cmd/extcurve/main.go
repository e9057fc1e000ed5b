// Command extcurve evaluates interstellar dust extinction laws.
//
// Usage:
//
//	extcurve eval [flags] [wavelength ...]
//	extcurve models
//
// Without wavelength arguments eval samples a linear grid between --from and
// --to. Flags may also be set in a YAML file (--config) or through
// EXTCURVE_* environment variables.
//
// Examples:
//
//	extcurve eval --model ccm89 3600 4400 5500
//	extcurve eval --model f99 --rv 5 --from 1000 --to 60000 --n 50
//	extcurve eval --model od94 --unit invum --output yaml 1.0 1.82 2.78
//	extcurve models
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
