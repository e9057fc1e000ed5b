package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-extinction/extinction"
)

const envPrefix = "EXTCURVE"

// Config is the resolved eval configuration: flags override environment,
// environment overrides the config file.
type Config struct {
	Model   string  `mapstructure:"model" validate:"required"`
	AV      float64 `mapstructure:"av" validate:"gte=0"`
	RV      float64 `mapstructure:"rv" validate:"gt=0"`
	Unit    string  `mapstructure:"unit" validate:"oneof=aa invum"`
	From    float64 `mapstructure:"from" validate:"gt=0"`
	To      float64 `mapstructure:"to" validate:"gtfield=From"`
	N       int     `mapstructure:"n" validate:"gte=2,lte=1000000"`
	Output  string  `mapstructure:"output" validate:"oneof=table json yaml"`
	Verbose bool    `mapstructure:"verbose"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func loadConfig(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) unit() (extinction.Unit, error) {
	return extinction.ParseUnit(c.Unit)
}
