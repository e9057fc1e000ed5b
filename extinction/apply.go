package extinction

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Apply returns flux reddened by ext (magnitudes): flux * 10^(-0.4*ext).
func Apply(ext, flux []float64) ([]float64, error) {
	return scaleFlux(ext, flux, -0.4)
}

// Remove returns flux corrected for ext: flux * 10^(0.4*ext).
func Remove(ext, flux []float64) ([]float64, error) {
	return scaleFlux(ext, flux, 0.4)
}

// ApplyInPlace reddens flux in place.
func ApplyInPlace(ext, flux []float64) error {
	return scaleFluxInPlace(ext, flux, -0.4)
}

// RemoveInPlace dereddens flux in place.
func RemoveInPlace(ext, flux []float64) error {
	return scaleFluxInPlace(ext, flux, 0.4)
}

func scaleFlux(ext, flux []float64, sign float64) ([]float64, error) {
	trans, err := transmission(ext, flux, sign)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(flux))
	vecmath.MulBlock(out, flux, trans)
	return out, nil
}

func scaleFluxInPlace(ext, flux []float64, sign float64) error {
	trans, err := transmission(ext, flux, sign)
	if err != nil {
		return err
	}
	vecmath.MulBlockInPlace(flux, trans)
	return nil
}

func transmission(ext, flux []float64, sign float64) ([]float64, error) {
	if len(ext) != len(flux) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(ext), len(flux))
	}
	trans := make([]float64, len(ext))
	for i, e := range ext {
		trans[i] = math.Pow(10, sign*e)
	}
	return trans, nil
}
