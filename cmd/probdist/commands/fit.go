// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/probdists/probdist/dataset"
	"github.com/probdists/probdist/stats"
)

const (
	dataFlag       = "data"
	formatFlag     = "format"
	columnFlag     = "column"
	separatorFlag  = "separator"
	populationFlag = "population"
	strictFlag     = "strict-mode"
	outputFlag     = "output"

	outputTable = "table"
	outputYAML  = "yaml"
	outputJSON  = "json"
)

// ErrNoData is returned when a command needing a sample has no --data.
var ErrNoData = errors.New("no dataset given (use --data)")

// ErrUnknownOutput is returned for an unknown --output format.
var ErrUnknownOutput = errors.New("output must be table, yaml or json")

// dataOptions are the flags selecting and parsing a dataset.
type dataOptions struct {
	name string
	opts dataset.Options
}

func (o *dataOptions) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.name, dataFlag, "", "dataset name from the config file, or a file path")
	flags.StringVar((*string)(&o.opts.Format), formatFlag, "", "dataset format: text or csv (default from extension)")
	flags.StringVar(&o.opts.Column, columnFlag, "", "CSV column name or index")
	flags.StringVar(&o.opts.Separator, separatorFlag, "", "field separator")
}

func (a *app) loadSample(o dataOptions) (stats.Sample, error) {
	if o.name == "" {
		return stats.Sample{}, ErrNoData
	}

	s, err := a.datasets.Load(o.name, o.opts)
	if err != nil {
		return stats.Sample{}, err
	}

	a.log.Debug("loaded dataset", "name", o.name, "observations", s.Len())

	return s, nil
}

// fitReport is the machine-readable result of a fit.
type fitReport struct {
	Family       string   `json:"family" yaml:"family"`
	Dataset      string   `json:"dataset" yaml:"dataset"`
	Observations int      `json:"observations" yaml:"observations"`
	Params       []param  `json:"params" yaml:"params"`
	Mean         *float64 `json:"mean,omitempty" yaml:"mean,omitempty"`
	StdDev       *float64 `json:"stddev,omitempty" yaml:"stddev,omitempty"`
}

func optional(v stats.Value) *float64 {
	x, ok := v.Float64()
	if !ok {
		return nil
	}

	return &x
}

func newFitCommand(a *app) *cobra.Command {
	var (
		data       dataOptions
		population bool
		strict     bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "fit FAMILY",
		Short: "Estimate the parameters of a distribution family from a sample",
		Example: `  probdist fit normal --data demo_gaussian_data
  probdist fit binomial --data trials.csv --column outcome -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, proto, err := ParseFamily(args[0])
			if err != nil {
				return err
			}

			s, err := a.loadSample(data)
			if err != nil {
				return err
			}

			est := a.cfg.Estimator()
			if cmd.Flags().Changed(populationFlag) {
				est.Population = population
			}

			if cmd.Flags().Changed(strictFlag) {
				est.Modes = stats.ModeMean
				if strict {
					est.Modes = stats.ModeStrict
				}
			}

			d, err := est.Fit(proto, s)
			if err != nil {
				return fmt.Errorf("fit %s to %s: %w", name, data.name, err)
			}

			a.log.Debug("fitted", "dist", d, "population", est.Population, "modes", est.Modes)

			r := a.round(d)
			report := fitReport{
				Family:       name,
				Dataset:      data.name,
				Observations: s.Len(),
				Params:       a.roundParams(paramsOf(d)),
				Mean:         optional(r.Mean()),
				StdDev:       optional(r.StdDev()),
			}

			return writeReport(cmd.OutOrStdout(), output, report, r)
		},
	}

	data.register(cmd)
	cmd.Flags().BoolVar(&population, populationFlag, false, "use the population variance instead of the sample variance")
	cmd.Flags().BoolVar(&strict, strictFlag, false, "fail a triangular fit when the sample has several modes")
	cmd.Flags().StringVarP(&output, outputFlag, "o", outputTable, "output format: table, yaml or json")

	return cmd
}

func (a *app) roundParams(ps []param) []param {
	if a.cfg.Precision < 0 {
		return ps
	}

	for i := range ps {
		ps[i].Value = stats.Round(ps[i].Value, a.cfg.Precision)
	}

	return ps
}

func writeReport(w io.Writer, output string, report fitReport, d stats.Dist) error {
	switch output {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()

	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(report)

	case outputTable:
		fmt.Fprintln(w, headingColor.Sprintf("%s fit to %s", report.Family, report.Dataset))

		tbl := newTable()
		tbl.AppendHeader(table.Row{"Parameter", "Value"})

		for _, p := range report.Params {
			tbl.AppendRow(table.Row{p.Name, formatFloat(p.Value)})
		}

		tbl.AppendFooter(table.Row{"n", humanize.Comma(int64(report.Observations))})
		renderTable(w, tbl)

		moments := newTable()
		moments.AppendHeader(momentsHeader)
		moments.AppendRow(momentsRow(d))
		renderTable(w, moments)

		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownOutput, output)
}
