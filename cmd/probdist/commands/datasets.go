// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newDatasetsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the datasets named in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl := newTable()
			tbl.AppendHeader(table.Row{"Name", "Path"})

			for _, name := range a.datasets.Names() {
				path, err := a.datasets.Resolve(name)
				if err != nil {
					return err
				}

				tbl.AppendRow(table.Row{name, path})
			}

			renderTable(cmd.OutOrStdout(), tbl)

			return nil
		},
	}
}
