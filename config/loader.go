// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".probdist"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for probdist settings.
const envPrefix = "PROBDIST"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD, ./config and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("config")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	cfg.resolveDatasets(viperCfg.ConfigFileUsed())

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("precision", DefaultPrecision)

	viperCfg.SetDefault("fit.population", DefaultFitPopulation)
	viperCfg.SetDefault("fit.mode_policy", DefaultModePolicy)

	viperCfg.SetDefault("plot.points", DefaultPlotPoints)
	viperCfg.SetDefault("plot.width", DefaultPlotWidth)
	viperCfg.SetDefault("plot.height", DefaultPlotHeight)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)
}

// resolveDatasets makes relative dataset paths relative to the
// directory of the config file that named them.
func (c *Config) resolveDatasets(configFile string) {
	if configFile == "" {
		return
	}

	dir := filepath.Dir(configFile)

	for name, path := range c.Datasets {
		if !filepath.IsAbs(path) {
			c.Datasets[name] = filepath.Join(dir, path)
		}
	}
}
