// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// ExponentialDist is an exponential distribution with rate Lambda.
type ExponentialDist struct {
	Lambda float64
}

func NewExponentialDist(lambda float64) (ExponentialDist, error) {
	d := ExponentialDist{lambda}
	return d, d.Validate()
}

func (d ExponentialDist) Validate() error {
	if !(d.Lambda > 0) || math.IsInf(d.Lambda, 1) {
		return paramErr("Exponential", "lambda", d.Lambda)
	}
	return nil
}

func (d ExponentialDist) Mean() Value {
	return Defined(1 / d.Lambda)
}

func (d ExponentialDist) StdDev() Value {
	return Defined(1 / d.Lambda)
}

func (d ExponentialDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.Lambda * math.Exp(-d.Lambda*x)
}

func (d ExponentialDist) CDF(x float64) (Value, error) {
	if x < 0 {
		return Defined(0), nil
	}
	return Defined(-math.Expm1(-d.Lambda * x)), nil
}

func (d ExponentialDist) Bounds() (float64, float64) {
	// CDF reaches 0.999 at ln(1000)/λ.
	return 0, math.Log(1000) / d.Lambda
}

func (d ExponentialDist) String() string {
	return fmt.Sprintf("Exponential(lambda=%v)", d.Lambda)
}
