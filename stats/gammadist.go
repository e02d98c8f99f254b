// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
)

// GammaDist is a gamma distribution with integer shape K and scale
// Theta. With an integer shape this is the Erlang distribution.
type GammaDist struct {
	K     int
	Theta float64
}

func NewGammaDist(k int, theta float64) (GammaDist, error) {
	d := GammaDist{k, theta}
	return d, d.Validate()
}

func (d GammaDist) Validate() error {
	if d.K <= 0 {
		return paramErr("Gamma", "k", float64(d.K))
	}
	if !(d.Theta > 0) || math.IsInf(d.Theta, 1) {
		return paramErr("Gamma", "theta", d.Theta)
	}
	return nil
}

func (d GammaDist) Mean() Value {
	return Defined(float64(d.K) * d.Theta)
}

func (d GammaDist) StdDev() Value {
	return Defined(math.Sqrt(float64(d.K) * d.Theta * d.Theta))
}

// PDF returns x^(k-1)·exp(-x/θ) / (Γ(k)·θ^k) for x >= 0.
func (d GammaDist) PDF(x float64) float64 {
	k := float64(d.K)
	switch {
	case x < 0, math.IsInf(x, 1):
		return 0
	case x == 0:
		if d.K == 1 {
			return 1 / d.Theta
		}
		return 0
	}
	lg, _ := math.Lgamma(k)
	return math.Exp((k-1)*math.Log(x) - x/d.Theta - lg - k*math.Log(d.Theta))
}

// CDF returns the regularized lower incomplete gamma function
// P(k, x/θ). It returns an error wrapping ErrDomain if x < 0.
func (d GammaDist) CDF(x float64) (Value, error) {
	p, err := d.RegIncGamma(x, false)
	if err != nil {
		return Undefined, err
	}
	return Defined(p), nil
}

// RegIncGamma returns the regularized incomplete gamma function of
// x/θ with shape d.K. If upper is true it returns the upper form
// Q(k, x/θ), the probability of exceeding x; otherwise it returns the
// lower form P(k, x/θ) = 1 - Q(k, x/θ).
func (d GammaDist) RegIncGamma(x float64, upper bool) (float64, error) {
	if x < 0 || math.IsNaN(x) {
		return nan, fmt.Errorf("%w: gamma CDF at x=%v", ErrDomain, x)
	}
	k, y := float64(d.K), x/d.Theta
	if upper {
		return mathext.GammaIncRegComp(k, y), nil
	}
	return mathext.GammaIncReg(k, y), nil
}

func (d GammaDist) Bounds() (float64, float64) {
	sd := d.StdDev().Or(0)
	return 0, d.Mean().Or(0) + 5*sd
}

// Add returns the distribution of the sum of independent variables
// drawn from d and o. d and o must have the same Theta.
func (d GammaDist) Add(o GammaDist) (GammaDist, error) {
	if d.Theta != o.Theta {
		return GammaDist{}, fmt.Errorf("%w: gamma theta %v != %v", ErrIncompatibleParameters, d.Theta, o.Theta)
	}
	return GammaDist{d.K + o.K, d.Theta}, nil
}

func (d GammaDist) String() string {
	return fmt.Sprintf("Gamma(k=%d, theta=%v)", d.K, d.Theta)
}
