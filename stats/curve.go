// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Axis returns the points at which to sample d for a curve of about n
// points across d.Bounds().
//
// For a Discrete distribution, or a Rounded one, Axis returns every lattice point in
// Bounds (at most n of them, starting from the low bound). Otherwise
// it returns n evenly spaced points, including both bounds. n must be
// at least 2.
func Axis(d Dist, n int) []float64 {
	if n < 2 {
		n = 2
	}
	lo, hi := d.Bounds()
	if dd, ok := AsDiscrete(d); ok {
		step := dd.Step()
		count := int(math.Floor((hi-lo)/step)) + 1
		if count > n {
			count = n
		}
		xs := make([]float64, count)
		for i := range xs {
			xs[i] = lo + float64(i)*step
		}
		return xs
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// PDFCurve returns the points of d's density curve, suitable for
// plotting. See Axis for how the x coordinates are chosen.
func PDFCurve(d Dist, n int) (xs, ys []float64) {
	xs = Axis(d, n)
	return xs, PDFEach(d, xs)
}

// CDFCurve returns the points of d's cumulative distribution curve.
// Points where the CDF is Undefined have a y coordinate of NaN.
func CDFCurve(d Dist, n int) (xs, ys []float64, err error) {
	xs = Axis(d, n)
	vs, err := CDFEach(d, xs)
	if err != nil {
		return nil, nil, err
	}
	ys = make([]float64, len(vs))
	for i, v := range vs {
		ys[i] = v.Or(nan)
	}
	return xs, ys, nil
}
