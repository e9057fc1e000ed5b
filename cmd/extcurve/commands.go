package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "extcurve",
		Short:         "Evaluate interstellar dust extinction laws",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEvalCmd(), newModelsCmd())
	return root
}

func newEvalCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "eval [wavelength ...]",
		Short: "Print A(λ) for a law over wavelengths or a linear grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			defer func() { _ = logger.Sync() }()

			return runEval(cmd, cfg, args, logger)
		},
	}

	f := cmd.Flags()
	f.String("config", "", "YAML config file")
	f.String("model", "f99", "extinction law ("+modelNames()+")")
	f.Float64("av", 1.0, "total V-band extinction A(V) in magnitudes")
	f.Float64("rv", 3.1, "ratio of total to selective extinction R(V)")
	f.String("unit", "aa", "wavelength unit: aa or invum")
	f.Float64("from", 1000, "grid start when no wavelengths are given")
	f.Float64("to", 30000, "grid end when no wavelengths are given")
	f.Int("n", 30, "number of grid points")
	f.StringP("output", "o", "table", "output format: table, json or yaml")
	f.BoolP("verbose", "v", false, "enable debug logging")

	if err := v.BindPFlags(f); err != nil {
		panic(err)
	}

	return cmd
}

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available extinction laws",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printModels(cmd.OutOrStdout())
		},
	}
}

func runEval(cmd *cobra.Command, cfg Config, args []string, logger *zap.Logger) error {
	m, err := lookupModel(cfg.Model)
	if err != nil {
		return err
	}

	unit, err := cfg.unit()
	if err != nil {
		return err
	}

	wave, err := resolveWavelengths(cfg, args)
	if err != nil {
		return err
	}

	logger.Debug("evaluating extinction law",
		zap.String("model", m.name),
		zap.Float64("av", cfg.AV),
		zap.Float64("rv", cfg.RV),
		zap.Stringer("unit", unit),
		zap.Int("points", len(wave)),
	)

	ext, err := m.eval(wave, cfg.AV, cfg.RV, unit)
	if err != nil {
		logger.Debug("evaluation failed", zap.String("model", m.name), zap.Error(err))
		return fmt.Errorf("%s: %w", m.name, err)
	}

	res := newResult(m.name, cfg, unit, wave, ext)
	return writeResult(cmd.OutOrStdout(), cfg.Output, res)
}
