package interp

import (
	"math"
	"testing"

	gonuminterp "gonum.org/v1/gonum/interp"
)

var unevenKnotsX = []float64{0, 0.377, 0.820, 1.667, 1.828, 2.141, 2.433, 3.704, 3.846}

var unevenKnotsY = []float64{-3.1, -2.835, -2.271, -0.412, -0.045, 0.706, 1.215, 3.165, 3.491}

func TestNaturalCubicPassesThroughKnots(t *testing.T) {
	s, err := NewNaturalCubic(unevenKnotsX, unevenKnotsY)
	if err != nil {
		t.Fatalf("NewNaturalCubic: %v", err)
	}

	for i, x := range unevenKnotsX {
		if got := s.At(x); math.Abs(got-unevenKnotsY[i]) > 1e-12 {
			t.Fatalf("knot %d: got %v want %v", i, got, unevenKnotsY[i])
		}
	}
}

func TestNaturalCubicReproducesLine(t *testing.T) {
	xs := []float64{-2, -0.5, 0.1, 1.7, 4}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3*x - 1
	}

	s, err := NewNaturalCubic(xs, ys)
	if err != nil {
		t.Fatalf("NewNaturalCubic: %v", err)
	}

	for _, x := range []float64{-3, -2, -1.3, 0, 0.9, 2.5, 4, 6} {
		want := 3*x - 1
		if got := s.At(x); math.Abs(got-want) > 1e-12 {
			t.Fatalf("x=%v: got %v want %v", x, got, want)
		}
	}
}

func TestNaturalCubicMatchesGonum(t *testing.T) {
	s, err := NewNaturalCubic(unevenKnotsX, unevenKnotsY)
	if err != nil {
		t.Fatalf("NewNaturalCubic: %v", err)
	}

	var ref gonuminterp.NaturalCubic
	if err := ref.Fit(unevenKnotsX, unevenKnotsY); err != nil {
		t.Fatalf("gonum Fit: %v", err)
	}

	const steps = 257
	for i := range steps {
		x := s.Min() + (s.Max()-s.Min())*float64(i)/(steps-1)
		got := s.At(x)
		want := ref.Predict(x)
		if math.Abs(got-want) > 1e-10 {
			t.Fatalf("x=%v: got %v want %v (gonum)", x, got, want)
		}
	}
}

func TestNaturalCubicTwoKnotsIsLinear(t *testing.T) {
	s, err := NewNaturalCubic([]float64{1, 3}, []float64{2, 6})
	if err != nil {
		t.Fatalf("NewNaturalCubic: %v", err)
	}
	for _, tc := range []struct{ x, w float64 }{
		{x: 0, w: 0},
		{x: 1, w: 2},
		{x: 2, w: 4},
		{x: 3.5, w: 7},
	} {
		if got := s.At(tc.x); math.Abs(got-tc.w) > 1e-12 {
			t.Fatalf("x=%v: got %v want %v", tc.x, got, tc.w)
		}
	}
}

func TestNaturalCubicExtrapolationIsContinuous(t *testing.T) {
	s, err := NewNaturalCubic(unevenKnotsX, unevenKnotsY)
	if err != nil {
		t.Fatalf("NewNaturalCubic: %v", err)
	}

	const eps = 1e-7
	for _, edge := range []float64{s.Min(), s.Max()} {
		inside := s.At(edge)
		below := s.At(edge - eps)
		above := s.At(edge + eps)
		if math.Abs(below-inside) > 1e-5 || math.Abs(above-inside) > 1e-5 {
			t.Fatalf("edge %v: discontinuity %v | %v | %v", edge, below, inside, above)
		}

		// Beyond the knots the curve is a straight line.
		far := 1.0
		if edge == s.Min() {
			far = -1.0
		}
		p1 := s.At(edge + far)
		p2 := s.At(edge + 2*far)
		if d := (p2 - p1) - (p1 - inside); math.Abs(d) > 1e-9 {
			t.Fatalf("edge %v: extrapolation not linear (second difference %v)", edge, d)
		}
	}
}

func TestNaturalCubicEval(t *testing.T) {
	s, err := NewNaturalCubic(unevenKnotsX, unevenKnotsY)
	if err != nil {
		t.Fatalf("NewNaturalCubic: %v", err)
	}

	xs := []float64{0.1, 1.0, 2.0, 3.0}
	dst := make([]float64, len(xs))
	s.Eval(dst, xs)
	for i, x := range xs {
		if dst[i] != s.At(x) {
			t.Fatalf("index %d: Eval %v != At %v", i, dst[i], s.At(x))
		}
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for length mismatch")
		}
	}()
	s.Eval(make([]float64, 1), xs)
}

func TestNaturalCubicKnotsAreCopied(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 0}
	s, err := NewNaturalCubic(xs, ys)
	if err != nil {
		t.Fatalf("NewNaturalCubic: %v", err)
	}
	before := s.At(0.5)
	ys[1] = 100
	if got := s.At(0.5); got != before {
		t.Fatalf("spline changed after caller mutated input: %v -> %v", before, got)
	}

	kx, _ := s.Knots()
	kx[0] = -10
	if s.Min() != 0 {
		t.Fatalf("Knots exposed internal storage, Min=%v", s.Min())
	}
}

func TestNewNaturalCubicRejectsBadKnots(t *testing.T) {
	for _, tc := range []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{name: "empty", xs: nil, ys: nil},
		{name: "single", xs: []float64{1}, ys: []float64{1}},
		{name: "mismatch", xs: []float64{1, 2, 3}, ys: []float64{1, 2}},
		{name: "duplicate", xs: []float64{1, 1, 2}, ys: []float64{1, 2, 3}},
		{name: "decreasing", xs: []float64{3, 2, 1}, ys: []float64{1, 2, 3}},
		{name: "nan", xs: []float64{1, math.NaN(), 3}, ys: []float64{1, 2, 3}},
		{name: "inf", xs: []float64{1, 2, 3}, ys: []float64{1, math.Inf(1), 3}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewNaturalCubic(tc.xs, tc.ys); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
