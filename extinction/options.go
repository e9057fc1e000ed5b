package extinction

import (
	"fmt"
	"strings"
)

// Unit selects how input wavelengths are expressed.
type Unit int

const (
	// UnitAngstrom is wavelength in Å (default).
	UnitAngstrom Unit = iota
	// UnitInverseMicron is wavenumber x = 1/λ in μm⁻¹.
	UnitInverseMicron
)

func (u Unit) String() string {
	switch u {
	case UnitAngstrom:
		return "Å"
	case UnitInverseMicron:
		return "μm⁻¹"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// ParseUnit accepts "aa", "angstrom", "invum" or "inverse-micron".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aa", "angstrom", "å":
		return UnitAngstrom, nil
	case "invum", "inverse-micron", "1/um":
		return UnitInverseMicron, nil
	default:
		return 0, fmt.Errorf("extinction: unknown wavelength unit %q", s)
	}
}

// Option configures a law evaluation.
type Option func(*config)

type config struct {
	unit Unit
}

func defaultConfig() config {
	return config{unit: UnitAngstrom}
}

// WithUnit sets the unit of the input wavelengths.
func WithUnit(u Unit) Option {
	return func(cfg *config) {
		if u == UnitAngstrom || u == UnitInverseMicron {
			cfg.unit = u
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// inverseMicrons converts one input value to x in μm⁻¹.
// Non-positive angstrom values map to a non-positive or infinite x.
func (c config) inverseMicrons(w float64) float64 {
	if c.unit == UnitInverseMicron {
		return w
	}
	return 1e4 / w
}
