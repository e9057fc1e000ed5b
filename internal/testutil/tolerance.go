package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// RequireAllClose fails t unless got and want have equal length and every
// pair satisfies |got-want| <= atol + rtol*|want|, the allclose convention
// used for published reference tables.
func RequireAllClose(t *testing.T, got, want []float64, rtol, atol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > atol+rtol*math.Abs(want[i]) || math.IsNaN(got[i]) {
			t.Fatalf("index %d: got %v, want %v (diff %v > atol %v + rtol %v*|want|)",
				i, got[i], want[i], diff, atol, rtol)
		}
	}
}

// RequireSliceApprox fails t with a go-cmp diff if got and want differ beyond
// the relative fraction or absolute margin.
func RequireSliceApprox(t *testing.T, got, want []float64, fraction, margin float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(fraction, margin)); diff != "" {
		t.Fatalf("slices differ (-want +got):\n%s", diff)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxRelDiff returns the maximum of |a[i]-b[i]|/|b[i]|.
// Elements where b is zero contribute their absolute difference.
func MaxRelDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if b[i] != 0 {
			d /= math.Abs(b[i])
		}
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
