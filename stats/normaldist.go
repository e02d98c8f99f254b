// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1)
var StdNormal = NormalDist{0, 1}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

// NewNormalDist returns a normal distribution, or an error if sigma
// is not positive.
func NewNormalDist(mu, sigma float64) (NormalDist, error) {
	d := NormalDist{mu, sigma}
	return d, d.Validate()
}

func (n NormalDist) Validate() error {
	if math.IsNaN(n.Mu) || math.IsInf(n.Mu, 0) {
		return paramErr("Normal", "mu", n.Mu)
	}
	if !(n.Sigma > 0) || math.IsInf(n.Sigma, 1) {
		return paramErr("Normal", "sigma", n.Sigma)
	}
	return nil
}

func (n NormalDist) Mean() Value {
	return Defined(n.Mu)
}

func (n NormalDist) StdDev() Value {
	return Defined(n.Sigma)
}

func (n NormalDist) PDF(x float64) float64 {
	z := x - n.Mu
	return math.Exp(-z*z/(2*n.Sigma*n.Sigma)) * invSqrt2Pi / n.Sigma
}

func (n NormalDist) CDF(x float64) (Value, error) {
	return Defined((1 + math.Erf((x-n.Mu)/(n.Sigma*math.Sqrt2))) / 2), nil
}

func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}

// Add returns the distribution of the sum of independent variables
// drawn from n and o.
func (n NormalDist) Add(o NormalDist) NormalDist {
	return NormalDist{n.Mu + o.Mu, math.Hypot(n.Sigma, o.Sigma)}
}

func (n NormalDist) String() string {
	return fmt.Sprintf("Normal(mu=%v, sigma=%v)", n.Mu, n.Sigma)
}
