// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "github.com/probdists/probdist/stats"

// Default values for every configuration key.
const (
	DefaultPrecision     = stats.DefaultPrecision
	DefaultFitPopulation = false
	DefaultModePolicy    = "mean"
	DefaultPlotPoints    = 200
	DefaultPlotWidth     = "900px"
	DefaultPlotHeight    = "500px"
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "text"
)
