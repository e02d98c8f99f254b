// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements a family of probability distributions.
//
// Every distribution exposes its moments, its probability density (or
// mass) function and its cumulative distribution function through the
// Dist interface. Families that are closed under convolution can be
// combined with Combine, and families with a closed-form estimator can
// be refit from an empirical Sample with an Estimator.
//
// All distribution types are plain values. Their methods never modify
// the receiver, so a distribution may be shared between goroutines.
package stats // import "github.com/probdists/probdist/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// DefaultPrecision is the number of decimal digits results are
// rounded to when the caller asks for rounding without specifying a
// precision.
const DefaultPrecision = 2
