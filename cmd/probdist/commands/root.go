// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands implements the probdist command line.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/probdists/probdist/config"
	"github.com/probdists/probdist/dataset"
	"github.com/probdists/probdist/stats"
)

const (
	configFlag    = "config"
	verboseFlag   = "verbose"
	precisionFlag = "precision"
)

// app holds state shared by every subcommand. It is filled in by the
// root command before a subcommand runs.
type app struct {
	configPath string
	verbose    bool
	precision  int

	cfg      *config.Config
	log      *slog.Logger
	datasets *dataset.Registry
}

// NewRootCommand returns the probdist command with all subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "probdist",
		Short: "Evaluate, fit, combine and plot probability distributions",
		Long: `probdist evaluates probability distributions given as expressions such
as normal(25,2) or binomial(20,0.4), fits them to sample data, combines
independent distributions and plots their density.

Families: ` + fmt.Sprint(familyNames()),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, configFlag, "", "config file (default .probdist.yaml in ., ./config or $HOME)")
	flags.BoolVarP(&a.verbose, verboseFlag, "v", false, "verbose output")
	flags.IntVarP(&a.precision, precisionFlag, "p", config.DefaultPrecision, "decimal digits to round results to (negative disables rounding)")

	root.AddCommand(
		newDescribeCommand(a),
		newEvalCommand(a),
		newFitCommand(a),
		newCombineCommand(a),
		newPlotCommand(a),
		newSummaryCommand(a),
		newDatasetsCommand(a),
		newVersionCommand(),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed(precisionFlag) {
		cfg.Precision = a.precision

		if validateErr := cfg.Validate(); validateErr != nil {
			return fmt.Errorf("--%s: %w", precisionFlag, validateErr)
		}
	}

	a.cfg = cfg
	a.log = newLogger(cmd.ErrOrStderr(), cfg.Logging, a.verbose)
	a.datasets = dataset.NewRegistry(cfg.Datasets)

	a.log.Debug("loaded config", "precision", cfg.Precision, "datasets", len(cfg.Datasets))

	return nil
}

// round applies the configured precision to d.
func (a *app) round(d stats.Dist) stats.Dist {
	return a.cfg.Round(d)
}

// parseDists parses every expression in exprs.
func parseDists(exprs []string) ([]stats.Dist, error) {
	dists := make([]stats.Dist, 0, len(exprs))

	for _, expr := range exprs {
		d, err := ParseDist(expr)
		if err != nil {
			return nil, err
		}

		dists = append(dists, d)
	}

	return dists, nil
}
