// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/probdists/probdist/stats"
)

var (
	undefinedColor = color.New(color.FgYellow)
	errorColor     = color.New(color.FgRed)
	headingColor   = color.New(color.FgCyan, color.Bold)
)

// newTable returns a table writer in the style used by every
// subcommand.
func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	return tbl
}

func renderTable(w io.Writer, tbl table.Writer) {
	fmt.Fprintln(w, tbl.Render())
}

// formatValue formats v, highlighting undefined values.
func formatValue(v stats.Value) string {
	x, ok := v.Float64()
	if !ok {
		return undefinedColor.Sprint(v.String())
	}

	return formatFloat(x)
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// formatBounds formats the plotting range of d.
func formatBounds(d stats.Dist) string {
	lo, hi := d.Bounds()

	return fmt.Sprintf("[%s, %s]", formatFloat(lo), formatFloat(hi))
}

// momentsRow returns the table row describing d.
func momentsRow(d stats.Dist) table.Row {
	return table.Row{d, formatValue(d.Mean()), formatValue(d.StdDev()), formatBounds(d)}
}

var momentsHeader = table.Row{"Distribution", "Mean", "StdDev", "Bounds"}
