// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/spf13/cobra"
)

func newDescribeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe EXPR...",
		Short: "Show the mean, standard deviation and range of distributions",
		Example: `  probdist describe 'normal(25, 2)' 'binomial(20, 0.4)'
  probdist describe 't(1)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dists, err := parseDists(args)
			if err != nil {
				return err
			}

			tbl := newTable()
			tbl.AppendHeader(momentsHeader)

			for _, d := range dists {
				tbl.AppendRow(momentsRow(a.round(d)))
			}

			renderTable(cmd.OutOrStdout(), tbl)

			return nil
		},
	}
}
