// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"errors"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const atFlag = "at"

// ErrNoPoints is returned when eval is given no evaluation points.
var ErrNoPoints = errors.New("no evaluation points (use --at)")

func newEvalCommand(a *app) *cobra.Command {
	var at []float64

	cmd := &cobra.Command{
		Use:     "eval EXPR",
		Short:   "Evaluate the density and cumulative distribution at points",
		Example: `  probdist eval 'binomial(20, 0.4)' --at 3,5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(at) == 0 {
				return ErrNoPoints
			}

			d, err := ParseDist(args[0])
			if err != nil {
				return err
			}

			r := a.round(d)

			tbl := newTable()
			tbl.SetTitle("%v", r)
			tbl.AppendHeader(table.Row{"x", "PDF", "CDF"})

			for _, x := range at {
				v, cdfErr := r.CDF(x)

				cdf := formatValue(v)
				if cdfErr != nil {
					a.log.Warn("CDF not evaluated", "dist", d, "x", x, "error", cdfErr)
					cdf = errorColor.Sprint("domain error")
				}

				tbl.AppendRow(table.Row{formatFloat(x), formatFloat(r.PDF(x)), cdf})
			}

			renderTable(cmd.OutOrStdout(), tbl)

			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&at, atFlag, nil, "comma-separated points to evaluate at")

	return cmd
}
