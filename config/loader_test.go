// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probdists/probdist/config"
	"github.com/probdists/probdist/stats"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "probdist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig_EmptyFile_UsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, config.DefaultPrecision, cfg.Precision)
	assert.Equal(t, config.DefaultFitPopulation, cfg.Fit.Population)
	assert.Equal(t, config.DefaultModePolicy, cfg.Fit.ModePolicy)
	assert.Equal(t, config.DefaultPlotPoints, cfg.Plot.Points)
	assert.Equal(t, config.DefaultPlotWidth, cfg.Plot.Width)
	assert.Equal(t, config.DefaultPlotHeight, cfg.Plot.Height)
	assert.Equal(t, config.DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, config.DefaultLogFormat, cfg.Logging.Format)
	assert.Empty(t, cfg.Datasets)
	assert.Equal(t, stats.Estimator{}, cfg.Estimator())
}

func TestLoadConfig_FromFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
precision: 5
fit:
  population: true
  mode_policy: strict
plot:
  points: 50
logging:
  level: debug
  format: json
datasets:
  demo_gaussian_data: data/gauss.txt
  absolute: /var/data/binom.csv
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Precision)
	assert.True(t, cfg.Fit.Population)
	assert.Equal(t, 50, cfg.Plot.Points)
	assert.Equal(t, config.DefaultPlotWidth, cfg.Plot.Width)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, stats.Estimator{Population: true, Modes: stats.ModeStrict}, cfg.Estimator())

	assert.Equal(t, filepath.Join(filepath.Dir(path), "data", "gauss.txt"), cfg.Datasets["demo_gaussian_data"])
	assert.Equal(t, "/var/data/binom.csv", cfg.Datasets["absolute"])
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PROBDIST_PRECISION", "4")
	t.Setenv("PROBDIST_FIT_POPULATION", "true")

	cfg, err := config.LoadConfig(writeConfig(t, "precision: 3\n"))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Precision)
	assert.True(t, cfg.Fit.Population)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"precision", "precision: 40\n", config.ErrInvalidPrecision},
		{"mode policy", "fit:\n  mode_policy: median\n", config.ErrInvalidModePolicy},
		{"plot points", "plot:\n  points: 1\n", config.ErrInvalidPlotPoints},
		{"log level", "logging:\n  level: loud\n", config.ErrInvalidLogLevel},
		{"log format", "logging:\n  format: xml\n", config.ErrInvalidLogFormat},
		{"dataset path", "datasets:\n  empty: \"\"\n", config.ErrEmptyDatasetPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.LoadConfig(writeConfig(t, tt.content))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConfig_Round(t *testing.T) {
	t.Parallel()

	d := stats.NormalDist{Mu: 25, Sigma: 2}

	cfg := &config.Config{Precision: 5}
	assert.InDelta(t, 0.19947, cfg.Round(d).PDF(25), 1e-12)

	cfg.Precision = -1
	assert.Equal(t, stats.Dist(d), cfg.Round(d))
}
