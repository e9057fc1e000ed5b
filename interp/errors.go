package interp

import (
	"errors"
	"fmt"
	"math"
)

var (
	errTooFewKnots      = errors.New("spline needs at least two knots")
	errMismatchedLength = errors.New("knot x and y slices must have same length")
)

func validateKnots(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d vs %d", errMismatchedLength, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return fmt.Errorf("%w: got %d", errTooFewKnots, len(xs))
	}
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return fmt.Errorf("knot %d is not finite: (%v, %v)", i, xs[i], ys[i])
		}
		if i > 0 && xs[i] <= xs[i-1] {
			return fmt.Errorf("knot x values must be strictly increasing: x[%d]=%v <= x[%d]=%v", i, xs[i], i-1, xs[i-1])
		}
	}
	return nil
}
