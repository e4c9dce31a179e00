// Package config loads the demo CLI's settings from flags, environment and an optional file.
package config

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/next-trace/scg-failure/exit"
	"github.com/next-trace/scg-failure/failure"
)

// EnvPrefix is prepended to every key when read from the environment: SCG_COLOR, SCG_VERBOSE.
const EnvPrefix = "SCG"

// Config holds all CLI configuration
type Config struct {
	Color   string `mapstructure:"color"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load reads configuration into a Config. If file is non-empty it must exist;
// otherwise scg.yaml in the working directory is used when present.
func Load(v *viper.Viper, file string) (*Config, error) {
	v.SetDefault("color", exit.ColorAuto.String())
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return nil, failure.Path(err, "unable to read config", file)
		}
	} else {
		v.SetConfigName("scg")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, failure.Context(err, "unable to read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, failure.Context(err, "unable to decode config")
	}

	return &cfg, nil
}

// ColorMode parses the color setting.
func (c *Config) ColorMode() (exit.ColorMode, error) {
	m, err := exit.ParseColorMode(c.Color)
	if err != nil {
		return exit.ColorNever, failure.Context(err, "invalid config key color")
	}

	return m, nil
}

// LogLevel is debug when verbose, warn otherwise.
func (c *Config) LogLevel() logrus.Level {
	if c.Verbose {
		return logrus.DebugLevel
	}

	return logrus.WarnLevel
}
