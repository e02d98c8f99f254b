// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestBinomialDist(t *testing.T) {
	dist := BinomialDist{N: 5, P: 0.2}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{
			-1000: 0,
			-1:    0,
			0:     0.32768,
			1:     0.4096,
			2:     0.2048,
			3:     0.0512,
			4:     0.0064,
			5:     math.Pow(dist.P, 5),
			6:     0,
			1000:  0,
		})
	testDiscreteCDF(t, fmt.Sprintf("%+v.CDF", dist), dist)

	dist = BinomialDist{N: 30, P: 0.5}
	norm := dist.NormalApprox()
	for k := 10; k <= 20; k++ {
		b := dist.PMF(float64(k))
		hi, _ := norm.CDF(float64(k) + 0.5)
		lo, _ := norm.CDF(float64(k) - 0.5)
		n := hi.Or(nan) - lo.Or(nan)

		// The normal approximation isn't actually very close,
		// even with high N and P near 0.5, so we only check
		// the center of the distribution and we're pretty
		// lax.
		err := math.Abs(b/n - 1)
		if err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}
}

func TestBinomialDistRounded(t *testing.T) {
	d := Rounded{BinomialDist{N: 20, P: 0.4}, 5}
	testFunc(t, "PDF", d.PDF, map[float64]float64{
		5: 0.07465,
		3: 0.01235,
	})
	testFunc(t, "CDF", cdfOf(t, d), map[float64]float64{
		5: 0.1256,
		3: 0.01596,
	})
	if got := (Rounded{BinomialDist{N: 20, P: 0.4}, 2}).StdDev().Or(nan); got != 2.19 {
		t.Errorf("StdDev = %v; want 2.19", got)
	}
	if got := d.Mean().Or(nan); got != 8 {
		t.Errorf("Mean = %v; want 8", got)
	}
}

func TestBinomialDistReference(t *testing.T) {
	for _, d := range []BinomialDist{{20, 0.4}, {13, 0.6153846153846154}, {60, 0.05}, {7, 0.9}} {
		ref := distuv.Binomial{N: float64(d.N), P: d.P}
		cdf := cdfOf(t, d)
		for k := 0; k <= d.N; k++ {
			x := float64(k)
			if !aeq(ref.Prob(x), d.PMF(x)) {
				t.Errorf("%v.PMF(%v) = %v; want %v", d, x, d.PMF(x), ref.Prob(x))
			}
			if !aeq(ref.CDF(x), cdf(x)) {
				t.Errorf("%v.CDF(%v) = %v; want %v", d, x, cdf(x), ref.CDF(x))
			}
		}
	}
}

func TestBinomialDistAdd(t *testing.T) {
	sum, err := BinomialDist{20, 0.4}.Add(BinomialDist{60, 0.4})
	if err != nil {
		t.Fatal(err)
	}
	if sum != (BinomialDist{80, 0.4}) {
		t.Errorf("sum = %v; want Binomial(80, 0.4)", sum)
	}
	_, err = BinomialDist{20, 0.4}.Add(BinomialDist{20, 0.5})
	wantErr(t, "Binomial p mismatch", err, ErrIncompatibleParameters)
}

func TestBinomialDistValidate(t *testing.T) {
	for _, d := range []BinomialDist{{-1, 0.5}, {3, -0.1}, {3, 1.1}, {3, nan}} {
		wantErr(t, d.String(), d.Validate(), ErrInvalidParameter)
	}
}

func TestBinomialDistTail(t *testing.T) {
	d := BinomialDist{20, 0.4}
	cdf := cdfOf(t, d)
	for _, x := range []float64{20, 21, 1e18, 1e300, inf} {
		if got := cdf(x); got != 1 {
			t.Errorf("%v.CDF(%v) = %v; want 1", d, x, got)
		}
	}
	for _, x := range []float64{-1e300, -inf} {
		if got := cdf(x); got != 0 {
			t.Errorf("%v.CDF(%v) = %v; want 0", d, x, got)
		}
	}
	for _, x := range []float64{21, 1e18, 1e300, inf, -1e300, -inf} {
		if got := d.PMF(x); got != 0 {
			t.Errorf("%v.PMF(%v) = %v; want 0", d, x, got)
		}
	}
}
