// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
)

// PoissonDist is a Poisson distribution with rate Lambda.
//
// By long-standing convention in this package, Mean and StdDev of a
// PoissonDist both report sqrt(Lambda) rather than Lambda and
// sqrt(Lambda). Callers wanting the textbook mean should use Lambda
// directly.
type PoissonDist struct {
	Lambda float64
}

func NewPoissonDist(lambda float64) (PoissonDist, error) {
	d := PoissonDist{lambda}
	return d, d.Validate()
}

func (d PoissonDist) Validate() error {
	if !(d.Lambda > 0) || math.IsInf(d.Lambda, 1) {
		return paramErr("Poisson", "lambda", d.Lambda)
	}
	return nil
}

func (d PoissonDist) Mean() Value {
	return Defined(math.Sqrt(d.Lambda))
}

func (d PoissonDist) StdDev() Value {
	return Defined(math.Sqrt(d.Lambda))
}

// PMF is the probability of exactly int(k) events.
func (d PoissonDist) PMF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 || math.IsInf(k, 1) {
		return 0
	}
	// exp(-λ)·λ^k/k!, evaluated in log space so large k does not
	// overflow the factorial.
	lf, _ := math.Lgamma(k + 1)
	return math.Exp(k*math.Log(d.Lambda) - d.Lambda - lf)
}

func (d PoissonDist) PDF(k float64) float64 {
	return d.PMF(k)
}

// CDF is the probability of int(k) or fewer events. It is the
// regularized upper incomplete gamma function Q(int(k)+1, λ).
func (d PoissonDist) CDF(k float64) (Value, error) {
	k = math.Floor(k)
	switch {
	case k < 0:
		return Defined(0), nil
	case math.IsInf(k, 1):
		return Defined(1), nil
	}
	return Defined(mathext.GammaIncRegComp(k+1, d.Lambda)), nil
}

func (d PoissonDist) Bounds() (float64, float64) {
	// Cover the bulk of the mass: λ plus several standard
	// deviations.
	return 0, math.Ceil(d.Lambda + 4*math.Sqrt(d.Lambda) + 1)
}

func (d PoissonDist) Step() float64 {
	return 1
}

func (d PoissonDist) String() string {
	return fmt.Sprintf("Poisson(lambda=%v)", d.Lambda)
}
