package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-extinction/extinction"
)

// Result is the serialised form of one evaluation.
type Result struct {
	Model  string  `json:"model" yaml:"model"`
	AV     float64 `json:"av" yaml:"av"`
	RV     float64 `json:"rv" yaml:"rv"`
	Unit   string  `json:"unit" yaml:"unit"`
	Points []Point `json:"points" yaml:"points"`
}

// Point pairs an input wavelength with its extinction in magnitudes.
type Point struct {
	Wavelength float64 `json:"wavelength" yaml:"wavelength"`
	Extinction float64 `json:"extinction" yaml:"extinction"`
}

func newResult(model string, cfg Config, unit extinction.Unit, wave, ext []float64) Result {
	res := Result{
		Model:  model,
		AV:     cfg.AV,
		RV:     cfg.RV,
		Unit:   unit.String(),
		Points: make([]Point, len(wave)),
	}
	for i := range wave {
		res.Points[i] = Point{Wavelength: wave[i], Extinction: ext[i]}
	}
	return res
}

func writeResult(w io.Writer, format string, res Result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		return writeTable(w, res)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeTable(w io.Writer, res Result) error {
	if _, err := fmt.Fprintf(w, "# %s  A(V)=%g  R(V)=%g\n", res.Model, res.AV, res.RV); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Wavelength [%s]\tA(λ) [mag]\tA(λ)/A(V)\n", res.Unit); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--------------\t----------\t---------\n"); err != nil {
		return err
	}
	for _, p := range res.Points {
		ratio := "-"
		if res.AV != 0 {
			ratio = fmt.Sprintf("%.4f", p.Extinction/res.AV)
		}
		if _, err := fmt.Fprintf(tw, "%.6g\t%.4f\t%s\n", p.Wavelength, p.Extinction, ratio); err != nil {
			return err
		}
	}
	return tw.Flush()
}
