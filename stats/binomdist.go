// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

// NewBinomialDist returns a binomial distribution of n trials with
// success probability p.
func NewBinomialDist(n int, p float64) (BinomialDist, error) {
	d := BinomialDist{n, p}
	return d, d.Validate()
}

func (d BinomialDist) Validate() error {
	if d.N < 0 {
		return paramErr("Binomial", "n", float64(d.N))
	}
	return validProb("Binomial", d.P)
}

func validProb(dist string, p float64) error {
	if !(0 <= p && p <= 1) {
		return paramErr(dist, "p", p)
	}
	return nil
}

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	k = math.Floor(k)
	if !(0 <= k && k <= float64(d.N)) {
		return 0
	}
	ki := int(k)
	return combin.GeneralizedBinomial(float64(d.N), float64(ki)) *
		math.Pow(d.P, float64(ki)) * math.Pow(1-d.P, float64(d.N-ki))
}

// PDF is the same as PMF.
func (d BinomialDist) PDF(k float64) float64 {
	return d.PMF(k)
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) (Value, error) {
	k = math.Floor(k)
	if !(k >= 0) {
		return Defined(0), nil
	} else if k >= float64(d.N) {
		return Defined(1), nil
	}
	ki := int(k)

	p := 0.0
	for i := 0; i <= ki; i++ {
		p += d.PMF(float64(i))
	}
	return Defined(math.Min(p, 1)), nil
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Mean() Value {
	return Defined(float64(d.N) * d.P)
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

func (d BinomialDist) StdDev() Value {
	return Defined(math.Sqrt(d.Variance()))
}

// Add returns the distribution of the number of successes in the
// trials of d and o together. d and o must have the same P.
func (d BinomialDist) Add(o BinomialDist) (BinomialDist, error) {
	if d.P != o.P {
		return BinomialDist{}, fmt.Errorf("%w: binomial p %v != %v", ErrIncompatibleParameters, d.P, o.P)
	}
	return BinomialDist{d.N + o.N, d.P}, nil
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: float64(d.N) * d.P, Sigma: math.Sqrt(d.Variance())}
}

func (d BinomialDist) String() string {
	return fmt.Sprintf("Binomial(n=%d, p=%v)", d.N, d.P)
}
