// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of observations.
//
// Methods of Sample never modify Xs; those that need the observations
// in order work on a sorted copy.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64
}

// Len returns the number of observations in s.
func (s Sample) Len() int {
	return len(s.Xs)
}

// Weight returns the total weight of s, which is its length since all
// observations are weighted equally.
func (s Sample) Weight() float64 {
	return float64(len(s.Xs))
}

// Sum returns the sum of the observations in s.
func (s Sample) Sum() float64 {
	return floats.Sum(s.Xs)
}

// Mean returns the arithmetic mean of s, or NaN if s is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// Variance returns the unbiased sample variance of s, dividing by
// n-1. It is NaN if s has fewer than two observations.
func (s Sample) Variance() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.Variance(s.Xs, nil)
}

// PopVariance returns the population variance of s, dividing by n.
func (s Sample) PopVariance() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.PopVariance(s.Xs, nil)
}

// StdDev returns the sample standard deviation of s.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Bounds returns the minimum and maximum values of s, or NaN, NaN if
// s is empty.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// sorted returns a sorted copy of s.Xs.
func (s Sample) sorted() []float64 {
	xs := slices.Clone(s.Xs)
	slices.Sort(xs)
	return xs
}

// Percentile returns the pth percentile of s, where p is in [0, 1],
// interpolating linearly between observations.
func (s Sample) Percentile(p float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	p = math.Max(0, math.Min(1, p))
	return stat.Quantile(p, stat.LinInterp, s.sorted(), nil)
}

// Modes returns the most frequent values in s in increasing order.
// If every value occurs the same number of times, all distinct values
// are modes.
func (s Sample) Modes() []float64 {
	counts := make(map[float64]int)
	max := 0
	for _, x := range s.Xs {
		counts[x]++
		if counts[x] > max {
			max = counts[x]
		}
	}
	var modes []float64
	for x, c := range counts {
		if c == max {
			modes = append(modes, x)
		}
	}
	slices.Sort(modes)
	return modes
}
