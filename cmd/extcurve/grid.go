package main

import (
	"fmt"

	"github.com/spf13/cast"
	"gonum.org/v1/gonum/floats"
)

// resolveWavelengths parses positional arguments, or spans [From, To] with N
// points when there are none.
func resolveWavelengths(cfg Config, args []string) ([]float64, error) {
	if len(args) == 0 {
		return floats.Span(make([]float64, cfg.N), cfg.From, cfg.To), nil
	}

	wave := make([]float64, len(args))
	for i, a := range args {
		w, err := cast.ToFloat64E(a)
		if err != nil {
			return nil, fmt.Errorf("wavelength argument %d (%q): %w", i, a, err)
		}
		wave[i] = w
	}
	return wave, nil
}
