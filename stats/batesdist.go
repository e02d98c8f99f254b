// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// BatesDist is the distribution of the mean of N independent
// variables uniformly distributed on [A, B]. With A=0, B=1 it is the
// Irwin–Hall distribution scaled by 1/N.
//
// The density is evaluated with the alternating Irwin–Hall sum, which
// loses precision through cancellation as N grows. It is accurate to
// several digits for N up to about 20.
type BatesDist struct {
	N    int
	A, B float64
}

func NewBatesDist(n int, a, b float64) (BatesDist, error) {
	d := BatesDist{n, a, b}
	return d, d.Validate()
}

func (d BatesDist) Validate() error {
	if d.N < 1 {
		return paramErr("Bates", "n", float64(d.N))
	}
	if math.IsNaN(d.A) || math.IsInf(d.A, 0) {
		return paramErr("Bates", "a", d.A)
	}
	if !(d.A < d.B) || math.IsInf(d.B, 0) {
		return paramErr("Bates", "b", d.B)
	}
	return nil
}

func (d BatesDist) Mean() Value {
	return Defined((d.A + d.B) / 2)
}

// StdDev reports sqrt((B-A)/(12N)). This is the package's historical
// definition and matches the textbook sqrt((B-A)²/(12N)) only when
// B-A = 1.
func (d BatesDist) StdDev() Value {
	return Defined(math.Sqrt((d.B - d.A) / (12 * float64(d.N))))
}

// unit maps x onto [0, 1].
func (d BatesDist) unit(x float64) float64 {
	return (x - d.A) / (d.B - d.A)
}

func (d BatesDist) PDF(x float64) float64 {
	t := d.unit(x)
	if t < 0 || t > 1 {
		return 0
	}
	if d.N == 1 {
		return 1 / (d.B - d.A)
	}
	n := float64(d.N)
	g, sign := 0.0, 1.0
	for i := 0; i <= int(n*t); i++ {
		fi := float64(i)
		g += sign * combin.GeneralizedBinomial(n, fi) * math.Pow(t-fi/n, n-1)
		sign = -sign
	}
	// n^n / (n-1)!
	scale := math.Exp(n*math.Log(n) - lgamma(n))
	return math.Max(scale*g, 0) / (d.B - d.A)
}

// CDF returns the continuous Bates CDF,
//
//	F(t) = 1/n! · Σ_{i=0}^{⌊nt⌋} (-1)ⁱ·C(n,i)·(nt-i)ⁿ
//
// where t = (x-A)/(B-A).
func (d BatesDist) CDF(x float64) (Value, error) {
	t := d.unit(x)
	switch {
	case t <= 0:
		return Defined(0), nil
	case t >= 1:
		return Defined(1), nil
	}
	n := float64(d.N)
	s, sign := 0.0, 1.0
	for i := 0; i <= int(n*t); i++ {
		fi := float64(i)
		s += sign * combin.GeneralizedBinomial(n, fi) * math.Pow(n*t-fi, n)
		sign = -sign
	}
	s /= math.Exp(lgamma(n + 1))
	return Defined(math.Max(0, math.Min(1, s))), nil
}

// IndexCDF returns the sum of PDF over the integer points 0..k. This
// treats x as an index rather than a coordinate and is only
// meaningful when [A, B] spans integers; it is kept for callers that
// depend on that discrete approximation. Use CDF for the continuous
// cumulative distribution.
func (d BatesDist) IndexCDF(k int) float64 {
	p := 0.0
	for i := 0; i <= k; i++ {
		p += d.PDF(float64(i))
	}
	return p
}

func (d BatesDist) Bounds() (float64, float64) {
	return d.A, d.B
}

func (d BatesDist) String() string {
	return fmt.Sprintf("Bates(n=%d, a=%v, b=%v)", d.N, d.A, d.B)
}
