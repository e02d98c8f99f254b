// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/spf13/cobra"

	"github.com/probdists/probdist/stats"
)

func newCombineCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "combine EXPR EXPR",
		Short: "Show the distribution of the sum of two independent variables",
		Long: `combine shows the distribution of X+Y for independent X and Y. It is
defined for normal+normal, binomial or bernoulli pairs with equal p, and
gamma pairs with equal theta.`,
		Example: `  probdist combine 'normal(25, 3)' 'normal(30, 4)'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dists, err := parseDists(args)
			if err != nil {
				return err
			}

			sum, err := stats.Combine(dists[0], dists[1])
			if err != nil {
				return err
			}

			a.log.Debug("combined", "a", dists[0], "b", dists[1], "sum", sum)

			tbl := newTable()
			tbl.AppendHeader(momentsHeader)
			tbl.AppendRow(momentsRow(a.round(dists[0])))
			tbl.AppendRow(momentsRow(a.round(dists[1])))
			tbl.AppendSeparator()
			tbl.AppendRow(momentsRow(a.round(sum)))
			renderTable(cmd.OutOrStdout(), tbl)

			return nil
		},
	}
}
