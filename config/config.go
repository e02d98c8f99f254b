// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads probdist settings from a YAML file, PROBDIST_*
// environment variables and built-in defaults.
package config

import (
	"errors"

	"github.com/probdists/probdist/stats"
)

// Config is the top-level configuration struct for probdist.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	// Precision is the number of decimal digits results are
	// rounded to. A negative value disables rounding.
	Precision int `mapstructure:"precision"`

	Fit     FitConfig     `mapstructure:"fit"`
	Plot    PlotConfig    `mapstructure:"plot"`
	Logging LoggingConfig `mapstructure:"logging"`

	// Datasets maps symbolic dataset names to file paths. Names
	// are case-insensitive.
	Datasets map[string]string `mapstructure:"datasets"`
}

// FitConfig holds parameter estimation settings.
type FitConfig struct {
	Population bool   `mapstructure:"population"`
	ModePolicy string `mapstructure:"mode_policy"`
}

// PlotConfig holds chart rendering settings.
type PlotConfig struct {
	Points int    `mapstructure:"points"`
	Width  string `mapstructure:"width"`
	Height string `mapstructure:"height"`
}

// LoggingConfig holds CLI logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// maxPrecision bounds Precision to what a float64 can represent.
const maxPrecision = 17

// minPlotPoints is the fewest points a continuous curve can have.
const minPlotPoints = 2

// Sentinel errors for configuration validation.
var (
	// ErrInvalidPrecision indicates the precision is above maxPrecision.
	ErrInvalidPrecision = errors.New("precision must be at most 17")
	// ErrInvalidModePolicy indicates an unknown triangular mode policy.
	ErrInvalidModePolicy = errors.New("fit.mode_policy must be mean or strict")
	// ErrInvalidPlotPoints indicates too few curve points.
	ErrInvalidPlotPoints = errors.New("plot.points must be at least 2")
	// ErrInvalidLogLevel indicates an unknown log level.
	ErrInvalidLogLevel = errors.New("logging.level must be debug, info, warn or error")
	// ErrInvalidLogFormat indicates an unknown log format.
	ErrInvalidLogFormat = errors.New("logging.format must be text or json")
	// ErrEmptyDatasetPath indicates a dataset with no path.
	ErrEmptyDatasetPath = errors.New("datasets entries must have a path")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if c.Precision > maxPrecision {
		return ErrInvalidPrecision
	}

	if _, err := stats.ParseModePolicy(c.Fit.ModePolicy); err != nil {
		return ErrInvalidModePolicy
	}

	if c.Plot.Points < minPlotPoints {
		return ErrInvalidPlotPoints
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return ErrInvalidLogFormat
	}

	for _, path := range c.Datasets {
		if path == "" {
			return ErrEmptyDatasetPath
		}
	}

	return nil
}

// Estimator returns the stats.Estimator described by c.Fit.
func (c *Config) Estimator() stats.Estimator {
	// Validate has already rejected unknown policies.
	modes, _ := stats.ParseModePolicy(c.Fit.ModePolicy)

	return stats.Estimator{Population: c.Fit.Population, Modes: modes}
}

// Round wraps d so that its results are rounded to c.Precision
// digits. A negative precision returns d unchanged.
func (c *Config) Round(d stats.Dist) stats.Dist {
	if c.Precision < 0 {
		return d
	}

	return stats.Rounded{Dist: d, Digits: c.Precision}
}
