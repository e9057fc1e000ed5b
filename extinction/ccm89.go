package extinction

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Supported wavelength range of CCM89 and OD94 in angstroms (x from 0.3 to 10 μm⁻¹).
const (
	CardelliMinWave = 1e4 / 10.0
	CardelliMaxWave = 1e4 / 0.3
)

var (
	ccm89Domain = domain{model: "ccm89", xmin: 0.3, xmax: 10.0}
	od94Domain  = domain{model: "od94", xmin: 0.3, xmax: 10.0}
)

// polyFit holds ascending-power polynomial coefficients of a(x) and b(x) in a
// shifted variable y. The optical/NIR fits (1.1 <= x < 3.3) use y = x - 1.82.
type polyFit struct {
	a []float64
	b []float64
}

// Cardelli, Clayton & Mathis (1989), eq. 3a and 3b.
var ccm89Optical = polyFit{
	a: []float64{1, 0.17699, -0.50447, -0.02427, 0.72085, 0.01979, -0.77530, 0.32999},
	b: []float64{0, 1.41338, 2.28305, 1.07233, -5.38434, -0.62251, 5.30260, -2.09002},
}

// O'Donnell (1994), eq. 2a and 2b.
var od94Optical = polyFit{
	a: []float64{1, 0.104, -0.609, 0.701, 1.137, -1.718, -0.827, 1.647, -0.505},
	b: []float64{0, 1.952, 2.908, -3.989, -7.985, 11.102, 5.491, -10.805, 3.347},
}

// Far-UV cubics in y = x - 8, eq. 5a and 5b. Shared by both laws.
var farUV = polyFit{
	a: []float64{-1.073, -0.628, 0.137, -0.070},
	b: []float64{13.670, 4.257, -0.420, 0.374},
}

// CCM89 returns A(λ) for the Cardelli, Clayton & Mathis (1989) law.
func CCM89(wave []float64, av, rv float64, opts ...Option) ([]float64, error) {
	return cardelli(ccm89Domain, ccm89Optical, wave, av, rv, opts)
}

// OD94 returns A(λ) for the O'Donnell (1994) law. It differs from CCM89 only
// in the optical/NIR coefficients.
func OD94(wave []float64, av, rv float64, opts ...Option) ([]float64, error) {
	return cardelli(od94Domain, od94Optical, wave, av, rv, opts)
}

// CCM89Coefficients returns a(x) and b(x) of CCM89 at x in μm⁻¹, so that
// A(λ)/A(V) = a + b/R(V).
func CCM89Coefficients(x float64) (a, b float64, err error) {
	if !ccm89Domain.contains(x) {
		return 0, 0, ccm89Domain.errorAt(0, x, UnitInverseMicron)
	}
	a, b = cardelliAB(x, ccm89Optical)
	return a, b, nil
}

// OD94Coefficients returns a(x) and b(x) of OD94 at x in μm⁻¹.
func OD94Coefficients(x float64) (a, b float64, err error) {
	if !od94Domain.contains(x) {
		return 0, 0, od94Domain.errorAt(0, x, UnitInverseMicron)
	}
	a, b = cardelliAB(x, od94Optical)
	return a, b, nil
}

func cardelli(d domain, fit polyFit, wave []float64, av, rv float64, opts []Option) ([]float64, error) {
	if err := validateRV(rv); err != nil {
		return nil, fmt.Errorf("%s: %w", d.model, err)
	}
	cfg := applyOptions(opts...)

	out := make([]float64, len(wave))
	for i, w := range wave {
		x := cfg.inverseMicrons(w)
		if !d.contains(x) {
			return nil, d.errorAt(i, w, cfg.unit)
		}
		a, b := cardelliAB(x, fit)
		out[i] = a + b/rv
	}

	vecmath.ScaleBlockInPlace(out, av)
	return out, nil
}

// cardelliAB evaluates a(x) and b(x); x must already be in [0.3, 10].
func cardelliAB(x float64, fit polyFit) (a, b float64) {
	switch {
	case x < 1.1:
		// Infrared.
		p := math.Pow(x, 1.61)
		return 0.574 * p, -0.527 * p
	case x < 3.3:
		y := x - 1.82
		return horner(fit.a, y), horner(fit.b, y)
	case x < 8.0:
		// Ultraviolet, with the far-UV curvature above 5.9 μm⁻¹.
		var fa, fb float64
		if x >= 5.9 {
			y := x - 5.9
			y2 := y * y
			fa = -0.04473*y2 - 0.009779*y2*y
			fb = 0.2130*y2 + 0.1207*y2*y
		}
		a = 1.752 - 0.316*x - 0.104/((x-4.67)*(x-4.67)+0.341) + fa
		b = -3.090 + 1.825*x + 1.206/((x-4.62)*(x-4.62)+0.263) + fb
		return a, b
	default:
		// Far ultraviolet.
		y := x - 8.0
		return horner(farUV.a, y), horner(farUV.b, y)
	}
}

// horner evaluates sum(c[i] * y^i).
func horner(c []float64, y float64) float64 {
	r := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		r = r*y + c[i]
	}
	return r
}
