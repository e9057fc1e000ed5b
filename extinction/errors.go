package extinction

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDomain is matched by every *DomainError via errors.Is.
	ErrDomain = errors.New("extinction: wavelength outside supported range")

	// ErrInvalidRV is returned when R(V) is not a positive finite number.
	ErrInvalidRV = errors.New("extinction: R(V) must be positive and finite")

	// ErrLengthMismatch is returned by Apply and Remove for unequal slices.
	ErrLengthMismatch = errors.New("extinction: extinction and flux must have same length")
)

// DomainError reports a wavelength a law cannot evaluate.
type DomainError struct {
	Model string
	Index int
	// Wavelength is the offending input value, in Unit.
	Wavelength float64
	Unit       Unit
	// MinWave and MaxWave bound the supported range in angstroms.
	MinWave float64
	MaxWave float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("extinction: %s: wavelength %g %s at index %d outside supported range [%g, %g] Å",
		e.Model, e.Wavelength, e.Unit, e.Index, e.MinWave, e.MaxWave)
}

// Is reports whether target is ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// domain is a closed interval in inverse microns.
type domain struct {
	model string
	xmin  float64
	xmax  float64
}

func (d domain) contains(x float64) bool {
	return x >= d.xmin && x <= d.xmax
}

func (d domain) errorAt(index int, wave float64, unit Unit) error {
	return &DomainError{
		Model:      d.model,
		Index:      index,
		Wavelength: wave,
		Unit:       unit,
		MinWave:    1e4 / d.xmax,
		MaxWave:    1e4 / d.xmin,
	}
}

func validateRV(rv float64) error {
	if rv <= 0 || math.IsNaN(rv) || math.IsInf(rv, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRV, rv)
	}
	return nil
}
