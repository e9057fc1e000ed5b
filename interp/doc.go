// Package interp provides spline interpolation over unevenly spaced knots.
//
// Available methods:
//
//   - [NaturalCubic]: natural cubic spline (zero curvature at both ends),
//     C2-continuous inside the knot range and linear beyond it.
//
// A spline is built once from a knot table and is immutable afterwards, so a
// single instance may be evaluated from multiple goroutines.
package interp
