// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// WeibullDist is a Weibull distribution with scale Lambda and shape K.
type WeibullDist struct {
	Lambda, K float64
}

func NewWeibullDist(lambda, k float64) (WeibullDist, error) {
	d := WeibullDist{lambda, k}
	return d, d.Validate()
}

func (d WeibullDist) Validate() error {
	if !(d.Lambda > 0) || math.IsInf(d.Lambda, 1) {
		return paramErr("Weibull", "lambda", d.Lambda)
	}
	if !(d.K > 0) || math.IsInf(d.K, 1) {
		return paramErr("Weibull", "k", d.K)
	}
	return nil
}

func (d WeibullDist) Mean() Value {
	return Defined(d.Lambda * math.Gamma(1+1/d.K))
}

func (d WeibullDist) StdDev() Value {
	g1 := math.Gamma(1 + 1/d.K)
	g2 := math.Gamma(1 + 2/d.K)
	return Defined(math.Sqrt(d.Lambda * d.Lambda * (g2 - g1*g1)))
}

func (d WeibullDist) PDF(x float64) float64 {
	if x < 0 || math.IsInf(x, 1) {
		return 0
	}
	z := x / d.Lambda
	return d.K / d.Lambda * math.Pow(z, d.K-1) * math.Exp(-math.Pow(z, d.K))
}

func (d WeibullDist) CDF(x float64) (Value, error) {
	if x < 0 {
		return Defined(0), nil
	}
	return Defined(-math.Expm1(-math.Pow(x/d.Lambda, d.K))), nil
}

func (d WeibullDist) Bounds() (float64, float64) {
	// Quantile at 0.999: λ·(ln 1000)^(1/k).
	return 0, d.Lambda * math.Pow(math.Log(1000), 1/d.K)
}

func (d WeibullDist) String() string {
	return fmt.Sprintf("Weibull(lambda=%v, k=%v)", d.Lambda, d.K)
}
