// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
)

// A TDist is a Student's t-distribution with V degrees of freedom.
type TDist struct {
	V float64
}

func NewTDist(v float64) (TDist, error) {
	d := TDist{v}
	return d, d.Validate()
}

func (t TDist) Validate() error {
	if !(t.V > 0) || math.IsInf(t.V, 1) {
		return paramErr("StudentT", "v", t.V)
	}
	return nil
}

func lgamma(x float64) float64 {
	y, _ := math.Lgamma(x)
	return y
}

// Mean is 0 for V > 1 and Undefined otherwise.
func (t TDist) Mean() Value {
	if t.V > 1 {
		return Defined(0)
	}
	return Undefined
}

// StdDev follows this package's historical convention of reporting
// V/(V-2) for V > 2. It is +Inf for 1 < V <= 2 and Undefined for
// V <= 1.
func (t TDist) StdDev() Value {
	switch {
	case t.V > 2:
		return Defined(t.V / (t.V - 2))
	case t.V > 1:
		return Defined(inf)
	}
	return Undefined
}

// coef returns Γ((v+1)/2) / (sqrt(vπ)·Γ(v/2)).
func (t TDist) coef() float64 {
	return math.Exp(lgamma((t.V+1)/2)-lgamma(t.V/2)) / math.Sqrt(t.V*math.Pi)
}

func (t TDist) PDF(x float64) float64 {
	return t.coef() * math.Pow(1+(x*x)/t.V, -(t.V+1)/2)
}

// CDF uses the hypergeometric closed form
//
//	1/2 + x·coef·₂F₁(1/2, (v+1)/2; 3/2; -x²/v)
//
// which only converges for x² < V. CDF returns Undefined for any other
// x.
func (t TDist) CDF(x float64) (Value, error) {
	if !(x*x < t.V) {
		return Undefined, nil
	}
	f := mathext.Hypergeo(0.5, (t.V+1)/2, 1.5, -x*x/t.V)
	return Defined(0.5 + x*t.coef()*f), nil
}

func (t TDist) Bounds() (float64, float64) {
	return -4, 4
}

func (t TDist) String() string {
	return fmt.Sprintf("StudentT(v=%v)", t.V)
}
