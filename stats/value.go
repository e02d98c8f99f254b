// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"strconv"
)

// A Value is the result of a computation that may have no numeric
// answer, such as the mean of a Student's t-distribution with one
// degree of freedom.
//
// The zero Value is Undefined. Infinite values are defined.
type Value struct {
	x       float64
	defined bool
}

// Undefined is the Value of a quantity that does not exist for the
// given parameters.
var Undefined = Value{}

// Defined returns a defined Value holding x.
func Defined(x float64) Value {
	return Value{x, true}
}

// Float64 returns v's numeric value and whether it is defined. If v
// is Undefined, Float64 returns NaN, false.
func (v Value) Float64() (float64, bool) {
	if !v.defined {
		return nan, false
	}
	return v.x, true
}

// IsDefined reports whether v holds a number.
func (v Value) IsDefined() bool {
	return v.defined
}

// IsInf reports whether v is defined and infinite with the given
// sign, following the conventions of math.IsInf.
func (v Value) IsInf(sign int) bool {
	return v.defined && math.IsInf(v.x, sign)
}

// Or returns v's numeric value, or def if v is Undefined.
func (v Value) Or(def float64) float64 {
	if !v.defined {
		return def
	}
	return v.x
}

// Round returns v rounded to digits decimal digits. Undefined and
// infinite values are returned unchanged.
func (v Value) Round(digits int) Value {
	if !v.defined {
		return v
	}
	return Value{Round(v.x, digits), true}
}

func (v Value) String() string {
	if !v.defined {
		return "undefined"
	}
	return strconv.FormatFloat(v.x, 'g', -1, 64)
}

// Round returns x rounded to digits decimal digits, with halves
// rounded away from zero. NaN and ±Inf are returned unchanged.
func Round(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	scale := math.Pow(10, float64(digits))
	r := math.Round(x*scale) / scale
	if math.IsInf(r, 0) || math.IsNaN(r) {
		// x*scale overflowed; x already has fewer digits than
		// requested.
		return x
	}
	return r
}
