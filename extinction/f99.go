package extinction

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-extinction/interp"
)

// DefaultRV is the conventional diffuse-ISM value of R(V).
const DefaultRV = 3.1

// Supported wavelength range of F99 in angstroms.
const (
	F99MinWave = 910.0
	F99MaxWave = 60000.0
)

var f99Domain = domain{model: "f99", xmin: 1e4 / F99MaxWave, xmax: 1e4 / F99MinWave}

// FM90 UV parameters adopted by Fitzpatrick (1999).
const (
	f99X0    = 4.596
	f99Gamma = 0.99
	f99C3    = 3.23
	f99C4    = 0.41
	f99C5    = 5.9

	// Below this wavenumber (λ > 2700 Å) the curve follows the spline.
	f99UVEdge = 1e4 / 2700.0
)

// Optical/IR spline knots in μm⁻¹. The last two lie in the UV and tie the
// spline to the FM90 curve.
var f99KnotX = []float64{
	0,
	1e4 / 26500.0,
	1e4 / 12200.0,
	1e4 / 6000.0,
	1e4 / 5470.0,
	1e4 / 4670.0,
	1e4 / 4110.0,
	1e4 / 2700.0,
	1e4 / 2600.0,
}

// F99Curve is a Fitzpatrick (1999) extinction curve prepared for one R(V).
// It is immutable and safe for concurrent use.
type F99Curve struct {
	rv     float64
	c1     float64
	c2     float64
	spline *interp.NaturalCubic
}

// NewF99 builds the curve for rv, including its optical/IR spline.
func NewF99(rv float64) (*F99Curve, error) {
	if err := validateRV(rv); err != nil {
		return nil, fmt.Errorf("f99: %w", err)
	}

	c := &F99Curve{rv: rv}
	c.c2 = -0.824 + 4.717/rv
	c.c1 = 2.030 - 3.007*c.c2

	rv2 := rv * rv
	knotY := []float64{
		-rv,
		0.26469*rv/DefaultRV - rv,
		0.82925*rv/DefaultRV - rv,
		-0.422809 + 1.00270*rv + 2.13572e-04*rv2 - rv,
		-5.13540e-02 + 1.00216*rv - 7.35778e-05*rv2 - rv,
		7.00127e-01 + 1.00184*rv - 3.32598e-05*rv2 - rv,
		1.19456 + 1.01707*rv - 5.46959e-03*rv2 + 7.97809e-04*rv2*rv - 4.45636e-05*rv2*rv2 - rv,
		c.uv(f99KnotX[7]),
		c.uv(f99KnotX[8]),
	}

	s, err := interp.NewNaturalCubic(f99KnotX, knotY)
	if err != nil {
		return nil, fmt.Errorf("f99: build spline: %w", err)
	}
	c.spline = s

	return c, nil
}

// F99 returns A(λ) for the Fitzpatrick (1999) law. Use DefaultRV for the
// standard diffuse-ISM curve.
func F99(wave []float64, av, rv float64, opts ...Option) ([]float64, error) {
	c, err := NewF99(rv)
	if err != nil {
		return nil, err
	}
	return c.Evaluate(wave, av, opts...)
}

// RV returns the R(V) the curve was built for.
func (c *F99Curve) RV() float64 { return c.rv }

// Evaluate returns A(λ) for every wavelength.
func (c *F99Curve) Evaluate(wave []float64, av float64, opts ...Option) ([]float64, error) {
	cfg := applyOptions(opts...)

	out := make([]float64, len(wave))
	for i, w := range wave {
		x := cfg.inverseMicrons(w)
		if !f99Domain.contains(x) {
			return nil, f99Domain.errorAt(i, w, cfg.unit)
		}
		out[i] = 1 + c.k(x)/c.rv
	}

	vecmath.ScaleBlockInPlace(out, av)
	return out, nil
}

// At returns A(λ) for a single wavelength in angstroms.
func (c *F99Curve) At(wave, av float64) (float64, error) {
	x := 1e4 / wave
	if !f99Domain.contains(x) {
		return 0, f99Domain.errorAt(0, wave, UnitAngstrom)
	}
	return av * (1 + c.k(x)/c.rv), nil
}

// k returns E(λ-V)/E(B-V) at x.
func (c *F99Curve) k(x float64) float64 {
	if x >= f99UVEdge {
		return c.uv(x)
	}
	return c.spline.At(x)
}

// uv is the FM90 parametrisation: linear background, Drude bump and far-UV
// curvature.
func (c *F99Curve) uv(x float64) float64 {
	x2 := x * x
	d := x2 - f99X0*f99X0
	k := c.c1 + c.c2*x + f99C3*x2/(d*d+x2*f99Gamma*f99Gamma)
	if x >= f99C5 {
		y := x - f99C5
		k += f99C4 * (0.5392*y*y + 0.05644*y*y*y)
	}
	return k
}
