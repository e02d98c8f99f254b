// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "fmt"

// A Dist is a statistical distribution.
type Dist interface {
	// Mean returns the mean of this distribution, or Undefined
	// if the mean does not exist for its parameters.
	Mean() Value

	// StdDev returns the standard deviation of this
	// distribution. This may be +Inf or Undefined for some
	// parameters.
	StdDev() Value

	// PDF returns the value of the probability density function
	// of this distribution at x. For discrete distributions this
	// is the probability mass function. PDF is 0 outside the
	// support of the distribution.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is 0 below the
	// support and 1 above it.
	//
	// CDF returns Undefined if the distribution's closed form
	// does not converge at x and an error wrapping ErrDomain if
	// x lies outside the range the closed form can be evaluated
	// over.
	CDF(x float64) (Value, error)

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)

	// Validate returns an error wrapping ErrInvalidParameter if
	// the parameters of this distribution are outside its
	// domain.
	Validate() error
}

// A Discrete distribution is a Dist whose support is a lattice of
// points Step apart, starting from the low end of Bounds.
type Discrete interface {
	Dist

	Step() float64
}

// PDFEach returns d.PDF(xs[i]) for each i.
func PDFEach(d Dist, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.PDF(x)
	}
	return res
}

// CDFEach returns d.CDF(xs[i]) for each i. It stops at the first
// error.
func CDFEach(d Dist, xs []float64) ([]Value, error) {
	res := make([]Value, len(xs))
	for i, x := range xs {
		v, err := d.CDF(x)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

// Rounded wraps a Dist and rounds every value it returns to Digits
// decimal digits. Rounding only affects returned values; the wrapped
// distribution always computes at full precision.
type Rounded struct {
	Dist

	// Digits is the number of decimal digits to keep. It may be
	// negative to round to tens, hundreds, and so on.
	Digits int
}

func (r Rounded) Mean() Value {
	return r.Dist.Mean().Round(r.Digits)
}

func (r Rounded) StdDev() Value {
	return r.Dist.StdDev().Round(r.Digits)
}

func (r Rounded) PDF(x float64) float64 {
	return Round(r.Dist.PDF(x), r.Digits)
}

func (r Rounded) CDF(x float64) (Value, error) {
	v, err := r.Dist.CDF(x)
	if err != nil {
		return Undefined, err
	}
	return v.Round(r.Digits), nil
}

// AsDiscrete returns d as a Discrete distribution, looking through any
// Rounded wrappers. It reports false if d is not discrete.
func AsDiscrete(d Dist) (Discrete, bool) {
	dd, ok := unwrapRounded(d).(Discrete)
	return dd, ok
}

func (r Rounded) String() string {
	return fmt.Sprint(r.Dist)
}
