// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/probdists/probdist/stats"
)

// summaryPercentiles are the quantiles reported by summary.
var summaryPercentiles = []int{0, 1, 5, 25, 50, 75, 95, 99, 100}

func newSummaryCommand(a *app) *cobra.Command {
	var data dataOptions

	cmd := &cobra.Command{
		Use:     "summary",
		Short:   "Describe a sample: moments, modes and percentiles",
		Example: `  probdist summary --data demo_gaussian_data`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSample(data)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			round := func(x float64) string {
				if a.cfg.Precision < 0 {
					return formatFloat(x)
				}

				return formatFloat(stats.Round(x, a.cfg.Precision))
			}

			fmt.Fprintln(w, headingColor.Sprintf("%s: %s observations", data.name, humanize.Comma(int64(s.Len()))))

			moments := newTable()
			moments.AppendHeader(table.Row{"Sum", "Mean", "StdDev", "PopStdDev", "Modes"})

			modes := s.Modes()
			rounded := make([]string, len(modes))

			for i, m := range modes {
				rounded[i] = round(m)
			}

			moments.AppendRow(table.Row{round(s.Sum()), round(s.Mean()), round(s.StdDev()), round(math.Sqrt(s.PopVariance())), rounded})
			renderTable(w, moments)

			quantiles := newTable()
			quantiles.AppendHeader(table.Row{"Percentile", "Value"})

			labels := map[int]string{0: "min", 50: "median", 100: "max"}
			for _, p := range summaryPercentiles {
				label, ok := labels[p]
				if !ok {
					label = humanize.Ordinal(p)
				}

				quantiles.AppendRow(table.Row{label, round(s.Percentile(float64(p) / 100))})
			}

			renderTable(w, quantiles)

			return nil
		},
	}

	data.register(cmd)

	return cmd
}
