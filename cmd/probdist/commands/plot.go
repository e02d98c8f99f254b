// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/probdists/probdist/plot"
	"github.com/probdists/probdist/stats"
)

const (
	outFlag    = "out"
	cdfFlag    = "cdf"
	pointsFlag = "points"

	defaultPlotFile = "probdist.html"
	stdoutFile      = "-"
)

func newPlotCommand(a *app) *cobra.Command {
	var (
		data   dataOptions
		out    string
		cdf    bool
		points int
	)

	cmd := &cobra.Command{
		Use:   "plot EXPR",
		Short: "Render the density of a distribution as an HTML chart",
		Long: `plot writes an HTML page charting the density (or mass) function of a
distribution. With --data, a kernel density estimate of the sample is drawn
over it. With --cdf, the cumulative distribution is charted as well.`,
		Example: `  probdist plot 'normal(78, 92)' --data demo_gaussian_data --out gauss.html`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := ParseDist(args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed(pointsFlag) {
				points = a.cfg.Plot.Points
			}

			charts, err := a.charts(d, data, points, cdf)
			if err != nil {
				return err
			}

			return a.writePlot(cmd.OutOrStdout(), out, charts)
		},
	}

	data.register(cmd)
	cmd.Flags().StringVar(&out, outFlag, defaultPlotFile, `output HTML file, or "-" for standard output`)
	cmd.Flags().BoolVar(&cdf, cdfFlag, false, "also chart the cumulative distribution function")
	cmd.Flags().IntVar(&points, pointsFlag, 0, "points per curve (default from config)")

	return cmd
}

func (a *app) charts(d stats.Dist, data dataOptions, points int, cdf bool) ([]plot.Chart, error) {
	name := fmt.Sprint(d)
	pdf := plot.PDFSeries(name, d, points)

	density := plot.Chart{
		Title:  name,
		XLabel: "x",
		YLabel: "density",
		Width:  a.cfg.Plot.Width,
		Height: a.cfg.Plot.Height,
		Series: []plot.Series{pdf},
	}

	if data.name != "" {
		s, err := a.loadSample(data)
		if err != nil {
			return nil, err
		}

		kde, err := stats.KDE{}.From(s)
		if err != nil {
			return nil, fmt.Errorf("density estimate of %s: %w", data.name, err)
		}

		density.Subtitle = fmt.Sprintf("against %s", data.name)
		density.Series = append(density.Series, plot.Overlay(fmt.Sprintf("%v", kde), pdf, kde))
	}

	charts := []plot.Chart{density}

	if cdf {
		cs, err := plot.CDFSeries(name, d, points)
		if err != nil {
			return nil, err
		}

		charts = append(charts, plot.Chart{
			Title:  name,
			XLabel: "x",
			YLabel: "cumulative probability",
			Width:  a.cfg.Plot.Width,
			Height: a.cfg.Plot.Height,
			Series: []plot.Series{cs},
		})
	}

	return charts, nil
}

func (a *app) writePlot(stdout io.Writer, out string, charts []plot.Chart) error {
	if out == stdoutFile {
		return plot.Render(stdout, charts...)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}

	if err := plot.Render(f, charts...); err != nil {
		f.Close()

		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	a.log.Info("wrote plot", "file", out)

	return nil
}
