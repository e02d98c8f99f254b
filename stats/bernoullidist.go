// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// BernoulliDist is the distribution of a single trial that succeeds
// (1) with probability P and fails (0) otherwise.
type BernoulliDist struct {
	P float64
}

func NewBernoulliDist(p float64) (BernoulliDist, error) {
	d := BernoulliDist{p}
	return d, d.Validate()
}

func (d BernoulliDist) Validate() error {
	return validProb("Bernoulli", d.P)
}

// PMF returns P^k * (1-P)^(1-k) for k in {0, 1} and 0 elsewhere.
func (d BernoulliDist) PMF(k float64) float64 {
	if k != 0 && k != 1 {
		return 0
	}
	return math.Pow(d.P, k) * math.Pow(1-d.P, 1-k)
}

func (d BernoulliDist) PDF(k float64) float64 {
	return d.PMF(k)
}

func (d BernoulliDist) CDF(x float64) (Value, error) {
	switch {
	case x < 0:
		return Defined(0), nil
	case x < 1:
		return Defined(1 - d.P), nil
	}
	return Defined(1), nil
}

func (d BernoulliDist) Bounds() (float64, float64) {
	return 0, 1
}

func (d BernoulliDist) Step() float64 {
	return 1
}

func (d BernoulliDist) Mean() Value {
	return Defined(d.P)
}

func (d BernoulliDist) StdDev() Value {
	return Defined(math.Sqrt(d.P * (1 - d.P)))
}

// Binomial returns d as a binomial distribution with one trial.
func (d BernoulliDist) Binomial() BinomialDist {
	return BinomialDist{1, d.P}
}

// Add returns the binomial distribution of the number of successes
// in two independent trials of d and o. d and o must have the same P.
func (d BernoulliDist) Add(o BernoulliDist) (BinomialDist, error) {
	return d.Binomial().Add(o.Binomial())
}

func (d BernoulliDist) String() string {
	return fmt.Sprintf("Bernoulli(p=%v)", d.P)
}
