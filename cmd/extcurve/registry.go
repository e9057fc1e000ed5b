package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-extinction/extinction"
)

type modelEntry struct {
	name    string
	title   string
	minWave float64
	maxWave float64
	eval    func(wave []float64, av, rv float64, unit extinction.Unit) ([]float64, error)
}

var registry = []modelEntry{
	{
		name:    "ccm89",
		title:   "Cardelli, Clayton & Mathis (1989)",
		minWave: extinction.CardelliMinWave,
		maxWave: extinction.CardelliMaxWave,
		eval: func(wave []float64, av, rv float64, unit extinction.Unit) ([]float64, error) {
			return extinction.CCM89(wave, av, rv, extinction.WithUnit(unit))
		},
	},
	{
		name:    "od94",
		title:   "O'Donnell (1994)",
		minWave: extinction.CardelliMinWave,
		maxWave: extinction.CardelliMaxWave,
		eval: func(wave []float64, av, rv float64, unit extinction.Unit) ([]float64, error) {
			return extinction.OD94(wave, av, rv, extinction.WithUnit(unit))
		},
	},
	{
		name:    "f99",
		title:   "Fitzpatrick (1999)",
		minWave: extinction.F99MinWave,
		maxWave: extinction.F99MaxWave,
		eval: func(wave []float64, av, rv float64, unit extinction.Unit) ([]float64, error) {
			return extinction.F99(wave, av, rv, extinction.WithUnit(unit))
		},
	},
}

func modelNames() string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func lookupModel(name string) (modelEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e, nil
		}
	}
	return modelEntry{}, fmt.Errorf("unknown model %q (available: %s)", name, modelNames())
}

func printModels(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Model\tReference\tMin [Å]\tMax [Å]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t---------\t-------\t-------\n"); err != nil {
		return err
	}
	for _, e := range registry {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%.0f\t%.0f\n", e.name, e.title, e.minWave, e.maxWave); err != nil {
			return err
		}
	}
	return tw.Flush()
}
