// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot renders distribution curves as self-contained HTML
// pages of ECharts line charts.
package plot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var (
	// ErrNoSeries is returned when rendering a chart with no
	// series.
	ErrNoSeries = errors.New("chart has no series")

	// ErrMismatchedSeries is returned for a series whose Xs and
	// Ys differ in length.
	ErrMismatchedSeries = errors.New("series has mismatched coordinates")
)

// Default chart size.
const (
	DefaultWidth  = "900px"
	DefaultHeight = "500px"
)

const lineWidth = 2

// A Series is one curve of a chart.
type Series struct {
	Name   string
	Xs, Ys []float64

	// Discrete draws the series as a step function, as for the
	// mass function of a discrete distribution.
	Discrete bool
}

// A Chart is a set of series drawn on shared value axes.
type Chart struct {
	Title, Subtitle string
	XLabel, YLabel  string

	// Width and Height are CSS sizes. They default to
	// DefaultWidth and DefaultHeight.
	Width, Height string

	Series []Series
}

// Render writes an HTML page holding every chart to w.
func Render(w io.Writer, cs ...Chart) error {
	page := components.NewPage()
	page.PageTitle = "probdist"
	for _, c := range cs {
		line, err := c.line()
		if err != nil {
			return fmt.Errorf("chart %q: %w", c.Title, err)
		}
		page.AddCharts(line)
	}
	return page.Render(w)
}

func (c Chart) line() (*charts.Line, error) {
	if len(c.Series) == 0 {
		return nil, ErrNoSeries
	}
	width, height := c.Width, c.Height
	if width == "" {
		width = DefaultWidth
	}
	if height == "" {
		height = DefaultHeight
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: width, Height: height}),
		charts.WithTitleOpts(opts.Title{Title: c.Title, Subtitle: c.Subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true), Title: "Save"},
				DataZoom:    &opts.ToolBoxFeatureDataZoom{Show: opts.Bool(true)},
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: c.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: c.YLabel}),
	)

	for _, s := range c.Series {
		if len(s.Xs) != len(s.Ys) {
			return nil, fmt.Errorf("%w: %q has %d x and %d y values", ErrMismatchedSeries, s.Name, len(s.Xs), len(s.Ys))
		}
		lc := opts.LineChart{Smooth: opts.Bool(!s.Discrete), ShowSymbol: opts.Bool(s.Discrete)}
		if s.Discrete {
			lc.Step = "middle"
		}
		line.AddSeries(s.Name, lineData(s),
			charts.WithLineChartOpts(lc),
			charts.WithLineStyleOpts(opts.LineStyle{Width: lineWidth}),
		)
	}
	return line, nil
}

// lineData converts s to chart points. Points with a NaN or infinite
// coordinate become gaps.
func lineData(s Series) []opts.LineData {
	items := make([]opts.LineData, len(s.Xs))
	for i := range s.Xs {
		x, y := s.Xs[i], s.Ys[i]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			items[i] = opts.LineData{Value: "-"}
			continue
		}
		items[i] = opts.LineData{Value: [2]float64{x, y}}
	}
	return items
}
