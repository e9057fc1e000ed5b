package interp

import "sort"

// NaturalCubic is a natural cubic spline through a fixed knot table.
//
// Between knots the curve is the unique piecewise cubic with continuous first
// and second derivatives and zero second derivative at both end knots. Outside
// [Min, Max] it continues along the end tangents.
type NaturalCubic struct {
	xs []float64
	ys []float64
	// m holds the second derivative at each knot.
	m []float64
}

// NewNaturalCubic builds a spline through (xs[i], ys[i]).
// xs must be strictly increasing and both slices finite with equal length >= 2.
// The input slices are copied.
func NewNaturalCubic(xs, ys []float64) (*NaturalCubic, error) {
	if err := validateKnots(xs, ys); err != nil {
		return nil, err
	}

	s := &NaturalCubic{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
		m:  make([]float64, len(xs)),
	}
	s.solve()

	return s, nil
}

// solve fills s.m by running the Thomas algorithm on the tridiagonal system
//
//	h[i-1]*m[i-1] + 2*(h[i-1]+h[i])*m[i] + h[i]*m[i+1] = 6*(d[i]-d[i-1])
//
// for the interior knots, with m[0] = m[n-1] = 0.
func (s *NaturalCubic) solve() {
	n := len(s.xs)
	if n < 3 {
		return
	}

	cp := make([]float64, n)
	dp := make([]float64, n)
	for i := 1; i < n-1; i++ {
		hl := s.xs[i] - s.xs[i-1]
		hr := s.xs[i+1] - s.xs[i]
		rhs := 6 * ((s.ys[i+1]-s.ys[i])/hr - (s.ys[i]-s.ys[i-1])/hl)
		diag := 2*(hl+hr) - hl*cp[i-1]
		cp[i] = hr / diag
		dp[i] = (rhs - hl*dp[i-1]) / diag
	}

	for i := n - 2; i > 0; i-- {
		s.m[i] = dp[i] - cp[i]*s.m[i+1]
	}
}

// Min returns the first knot position.
func (s *NaturalCubic) Min() float64 { return s.xs[0] }

// Max returns the last knot position.
func (s *NaturalCubic) Max() float64 { return s.xs[len(s.xs)-1] }

// Knots returns copies of the knot positions and values.
func (s *NaturalCubic) Knots() (xs, ys []float64) {
	return append([]float64(nil), s.xs...), append([]float64(nil), s.ys...)
}

// At evaluates the spline at x.
func (s *NaturalCubic) At(x float64) float64 {
	n := len(s.xs)
	if x < s.xs[0] {
		return s.ys[0] + s.slope(0)*(x-s.xs[0])
	}
	if x > s.xs[n-1] {
		return s.ys[n-1] + s.slope(n-1)*(x-s.xs[n-1])
	}

	i := s.segment(x)
	h := s.xs[i+1] - s.xs[i]
	t0 := x - s.xs[i]
	t1 := s.xs[i+1] - x

	return (s.m[i]*t1*t1*t1+s.m[i+1]*t0*t0*t0)/(6*h) +
		(s.ys[i]/h-s.m[i]*h/6)*t1 +
		(s.ys[i+1]/h-s.m[i+1]*h/6)*t0
}

// Eval evaluates the spline at every element of xs and writes into dst.
// Panics if lengths differ.
func (s *NaturalCubic) Eval(dst, xs []float64) {
	if len(dst) != len(xs) {
		panic("interp: Eval slice length mismatch")
	}
	for i, x := range xs {
		dst[i] = s.At(x)
	}
}

// segment returns i such that xs[i] <= x <= xs[i+1].
func (s *NaturalCubic) segment(x float64) int {
	i := sort.SearchFloat64s(s.xs, x) - 1
	if i < 0 {
		return 0
	}
	if i > len(s.xs)-2 {
		return len(s.xs) - 2
	}
	return i
}

// slope returns the first derivative at end knot k (0 or n-1).
func (s *NaturalCubic) slope(k int) float64 {
	if k == 0 {
		h := s.xs[1] - s.xs[0]
		return (s.ys[1]-s.ys[0])/h - h*(2*s.m[0]+s.m[1])/6
	}
	h := s.xs[k] - s.xs[k-1]
	return (s.ys[k]-s.ys[k-1])/h + h*(s.m[k-1]+2*s.m[k])/6
}
