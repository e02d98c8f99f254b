// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/probdists/probdist/stats"
)

// PDFSeries samples d's density (or mass) function at about n points.
func PDFSeries(name string, d stats.Dist, n int) Series {
	xs, ys := stats.PDFCurve(d, n)
	_, discrete := stats.AsDiscrete(d)
	return Series{Name: name, Xs: xs, Ys: ys, Discrete: discrete}
}

// CDFSeries samples d's cumulative distribution function at about n
// points. Points where the CDF is undefined are left as gaps.
func CDFSeries(name string, d stats.Dist, n int) (Series, error) {
	xs, ys, err := stats.CDFCurve(d, n)
	if err != nil {
		return Series{}, err
	}
	_, discrete := stats.AsDiscrete(d)
	return Series{Name: name, Xs: xs, Ys: ys, Discrete: discrete}, nil
}

// Overlay samples other on the same x coordinates as s, so that a
// density estimate can be drawn against a fitted distribution.
func Overlay(name string, s Series, other stats.Dist) Series {
	return Series{Name: name, Xs: s.Xs, Ys: stats.PDFEach(other, s.Xs)}
}
