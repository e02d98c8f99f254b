// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestExponentialDist(t *testing.T) {
	d := ExponentialDist{0.25}
	testFunc(t, "CDF", cdfOf(t, d), map[float64]float64{
		-1:   0,
		0:    0,
		12.3: 0.9538104,
	})
	r := Rounded{d, 5}
	testFunc(t, "PDF", r.PDF, map[float64]float64{
		-1: 0,
		1:  0.19470,
		5:  0.07163,
	})

	ref := distuv.Exponential{Rate: d.Lambda}
	for x := 0.0; x < 30; x += 0.75 {
		if !aeq(ref.Prob(x), d.PDF(x)) {
			t.Errorf("%v.PDF(%v) = %v; want %v", d, x, d.PDF(x), ref.Prob(x))
		}
	}
	if got := mustValue(t, "mean", d.Mean()); got != 4 {
		t.Errorf("Mean = %v; want 4", got)
	}
	_, err := NewExponentialDist(0)
	wantErr(t, "NewExponentialDist(0)", err, ErrInvalidParameter)
}

func TestUniformDist(t *testing.T) {
	d := UniformDist{2, 6}
	testFunc(t, "PDF", d.PDF, map[float64]float64{
		1: 0,
		2: 0.25,
		4: 0.25,
		6: 0.25,
		7: 0,
	})
	testFunc(t, "CDF", cdfOf(t, d), map[float64]float64{
		1: 0,
		2: 0,
		3: 0.25,
		6: 1,
		9: 1,
	})
	if got := mustValue(t, "stddev", d.StdDev()); !aeq(math.Sqrt(16.0/12), got) {
		t.Errorf("StdDev = %v", got)
	}
	for _, bad := range []UniformDist{{3, 3}, {4, 1}, {nan, 1}, {0, inf}} {
		wantErr(t, bad.String(), bad.Validate(), ErrInvalidParameter)
	}
}

func TestTriangularDist(t *testing.T) {
	d := TriangularDist{0, 1, 0.5}
	testFunc(t, "PDF", d.PDF, map[float64]float64{
		-1:   0,
		0:    0,
		0.25: 1,
		0.5:  2,
		0.75: 1,
		1:    0,
		2:    0,
	})
	testFunc(t, "CDF", cdfOf(t, d), map[float64]float64{
		-1:   0,
		0.25: 0.125,
		0.5:  0.5,
		0.75: 0.875,
		1:    1,
		2:    1,
	})
	if got := mustValue(t, "mean", d.Mean()); got != 0.5 {
		t.Errorf("Mean = %v; want 0.5", got)
	}
	if got := mustValue(t, "stddev", d.StdDev()); !aeq(math.Sqrt(1.0/24), got) {
		t.Errorf("StdDev = %v; want sqrt(1/24)", got)
	}

	for _, bad := range []TriangularDist{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}} {
		_, err := NewTriangularDist(bad.A, bad.B, bad.Mode)
		wantErr(t, bad.String(), err, ErrDegenerateTriangular)
		wantErr(t, bad.String(), err, ErrInvalidParameter)
	}
	_, err := NewTriangularDist(0, 1, 2)
	wantErr(t, "mode outside [a, b]", err, ErrInvalidParameter)
	if errors.Is(err, ErrDegenerateTriangular) {
		t.Errorf("mode outside [a, b] reported as degenerate: %v", err)
	}
}

func TestWeibullDist(t *testing.T) {
	for _, d := range []WeibullDist{{2, 1.5}, {1, 1}, {3, 0.8}} {
		ref := distuv.Weibull{K: d.K, Lambda: d.Lambda}
		cdf := cdfOf(t, d)
		for x := 0.05; x < 10; x += 0.35 {
			if !aeq(ref.Prob(x), d.PDF(x)) {
				t.Errorf("%v.PDF(%v) = %v; want %v", d, x, d.PDF(x), ref.Prob(x))
			}
			if !aeq(ref.CDF(x), cdf(x)) {
				t.Errorf("%v.CDF(%v) = %v; want %v", d, x, cdf(x), ref.CDF(x))
			}
		}
		if got := mustValue(t, "mean", d.Mean()); !aeq(ref.Mean(), got) {
			t.Errorf("%v.Mean() = %v; want %v", d, got, ref.Mean())
		}
		if got := mustValue(t, "stddev", d.StdDev()); !aeq(ref.StdDev(), got) {
			t.Errorf("%v.StdDev() = %v; want %v", d, got, ref.StdDev())
		}
	}
	for _, x := range []float64{1e300, inf} {
		d := WeibullDist{1, 2}
		if got := d.PDF(x); got != 0 {
			t.Errorf("%v.PDF(%v) = %v; want 0", d, x, got)
		}
		if got := cdfOf(t, d)(x); got != 1 {
			t.Errorf("%v.CDF(%v) = %v; want 1", d, x, got)
		}
	}
	// K=1 is the exponential distribution with rate 1/Lambda.
	w, e := WeibullDist{4, 1}, ExponentialDist{0.25}
	testFunc(t, "Weibull(4, 1).PDF", w.PDF, map[float64]float64{
		1: e.PDF(1),
		5: e.PDF(5),
	})
	_, err := NewWeibullDist(1, -2)
	wantErr(t, "NewWeibullDist(1, -2)", err, ErrInvalidParameter)
}

func TestGammaDist(t *testing.T) {
	d := GammaDist{2, 2}
	testFunc(t, "PDF", d.PDF, map[float64]float64{
		-1: 0,
		0:  0,
		4:  math.Exp(-2),
	})
	if got := (GammaDist{1, 2}).PDF(0); got != 0.5 {
		t.Errorf("Gamma(1, 2).PDF(0) = %v; want 0.5", got)
	}
	if got := mustValue(t, "mean", d.Mean()); got != 4 {
		t.Errorf("Mean = %v; want 4", got)
	}
	if got := mustValue(t, "stddev", d.StdDev()); !aeq(math.Sqrt(8), got) {
		t.Errorf("StdDev = %v; want sqrt(8)", got)
	}

	for _, d := range []GammaDist{{1, 1}, {2, 2}, {5, 0.5}, {12, 3}} {
		ref := distuv.Gamma{Alpha: float64(d.K), Beta: 1 / d.Theta}
		cdf := cdfOf(t, d)
		for x := 0.25; x < 60; x += 1.5 {
			if !aeq(ref.Prob(x), d.PDF(x)) {
				t.Errorf("%v.PDF(%v) = %v; want %v", d, x, d.PDF(x), ref.Prob(x))
			}
			if !aeq(ref.CDF(x), cdf(x)) {
				t.Errorf("%v.CDF(%v) = %v; want %v", d, x, cdf(x), ref.CDF(x))
			}
			q, err := d.RegIncGamma(x, true)
			if err != nil {
				t.Fatal(err)
			}
			if !aeq(ref.Survival(x), q) {
				t.Errorf("%v.RegIncGamma(%v, true) = %v; want %v", d, x, q, ref.Survival(x))
			}
		}
	}

	// Large shapes, where e^(-x/θ) alone underflows.
	for _, d := range []GammaDist{{800, 1}, {1000, 1}, {2000, 0.5}} {
		ref := distuv.Gamma{Alpha: float64(d.K), Beta: 1 / d.Theta}
		cdf := cdfOf(t, d)
		mean := mustValue(t, "mean", d.Mean())
		for _, x := range []float64{0.9 * mean, mean, 1.1 * mean} {
			if !aeq(ref.Prob(x), d.PDF(x)) {
				t.Errorf("%v.PDF(%v) = %v; want %v", d, x, d.PDF(x), ref.Prob(x))
			}
			if !aeq(ref.CDF(x), cdf(x)) {
				t.Errorf("%v.CDF(%v) = %v; want %v", d, x, cdf(x), ref.CDF(x))
			}
		}
		if got := cdf(mean); !(got > 0.5 && got < 0.51) {
			t.Errorf("%v.CDF(mean) = %v; want just above 0.5", d, got)
		}
	}

	for _, x := range []float64{1e300, inf} {
		if got := cdfOf(t, d)(x); got != 1 {
			t.Errorf("%v.CDF(%v) = %v; want 1", d, x, got)
		}
		if q, err := d.RegIncGamma(x, true); err != nil || q != 0 {
			t.Errorf("%v.RegIncGamma(%v, true) = %v, %v; want 0", d, x, q, err)
		}
		if got := d.PDF(x); got != 0 {
			t.Errorf("%v.PDF(%v) = %v; want 0", d, x, got)
		}
	}

	_, err := d.CDF(-1)
	wantErr(t, "Gamma CDF(-1)", err, ErrDomain)
	for _, bad := range []GammaDist{{0, 1}, {2, 0}, {2, nan}} {
		wantErr(t, bad.String(), bad.Validate(), ErrInvalidParameter)
	}

	sum, err := d.Add(GammaDist{3, 2})
	if err != nil || sum != (GammaDist{5, 2}) {
		t.Errorf("Add = %v, %v; want Gamma(5, 2)", sum, err)
	}
	_, err = d.Add(GammaDist{2, 3})
	wantErr(t, "Gamma theta mismatch", err, ErrIncompatibleParameters)
}

func TestTDist(t *testing.T) {
	for _, v := range []float64{3, 5, 10} {
		d := TDist{v}
		ref := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: v}
		cdf := cdfOf(t, d)
		lim := math.Sqrt(0.8 * v)
		for x := -lim; x <= lim; x += lim / 8 {
			if !aeq(ref.Prob(x), d.PDF(x)) {
				t.Errorf("%v.PDF(%v) = %v; want %v", d, x, d.PDF(x), ref.Prob(x))
			}
			if !aeq(ref.CDF(x), cdf(x)) {
				t.Errorf("%v.CDF(%v) = %v; want %v", d, x, cdf(x), ref.CDF(x))
			}
		}
		// The closed form does not converge for x² >= v.
		for _, x := range []float64{math.Sqrt(v) * 1.0001, -math.Sqrt(v) - 1, 100} {
			c, err := d.CDF(x)
			if err != nil || c.IsDefined() {
				t.Errorf("%v.CDF(%v) = %v, %v; want undefined", d, x, c, err)
			}
		}
	}

	for _, test := range []struct {
		v            float64
		mean, stddev Value
	}{
		{0.5, Undefined, Undefined},
		{1, Undefined, Undefined},
		{1.5, Defined(0), Defined(inf)},
		{2, Defined(0), Defined(inf)},
		{4, Defined(0), Defined(2)},
		{12, Defined(0), Defined(1.2)},
	} {
		d := TDist{test.v}
		if got := d.Mean(); got != test.mean {
			t.Errorf("%v.Mean() = %v; want %v", d, got, test.mean)
		}
		if got := d.StdDev(); got != test.stddev {
			t.Errorf("%v.StdDev() = %v; want %v", d, got, test.stddev)
		}
	}
	_, err := NewTDist(0)
	wantErr(t, "NewTDist(0)", err, ErrInvalidParameter)
}

func TestBatesDist(t *testing.T) {
	// With two variables on [0, 1] the mean is triangular.
	b, tri := BatesDist{2, 0, 1}, TriangularDist{0, 1, 0.5}
	bcdf, tcdf := cdfOf(t, b), cdfOf(t, tri)
	for x := -0.5; x <= 1.5; x += 0.0625 {
		if !aeq(tri.PDF(x), b.PDF(x)) {
			t.Errorf("%v.PDF(%v) = %v; want %v", b, x, b.PDF(x), tri.PDF(x))
		}
		if !aeq(tcdf(x), bcdf(x)) {
			t.Errorf("%v.CDF(%v) = %v; want %v", b, x, bcdf(x), tcdf(x))
		}
	}

	// One variable is uniform.
	b1 := BatesDist{1, 2, 6}
	testFunc(t, fmt.Sprintf("%v.PDF", b1), b1.PDF, map[float64]float64{
		1: 0,
		3: 0.25,
		7: 0,
	})
	testFunc(t, fmt.Sprintf("%v.CDF", b1), cdfOf(t, b1), map[float64]float64{
		1: 0,
		3: 0.25,
		7: 1,
	})

	b3 := BatesDist{3, 0, 12}
	testFunc(t, fmt.Sprintf("%v.CDF", b3), cdfOf(t, b3), map[float64]float64{
		0:  0,
		6:  0.5,
		12: 1,
	})
	if got := mustValue(t, "stddev", b3.StdDev()); !aeq(math.Sqrt(1.0/3), got) {
		t.Errorf("%v.StdDev() = %v; want sqrt(1/3)", b3, got)
	}
	if got := mustValue(t, "mean", b3.Mean()); got != 6 {
		t.Errorf("%v.Mean() = %v; want 6", b3, got)
	}

	// IndexCDF sums the density over integer points.
	want := 0.0
	for i := 0; i <= 4; i++ {
		want += b3.PDF(float64(i))
	}
	if got := b3.IndexCDF(4); !aeq(want, got) {
		t.Errorf("%v.IndexCDF(4) = %v; want %v", b3, got, want)
	}

	for _, bad := range []BatesDist{{0, 0, 1}, {2, 1, 1}, {2, 0, inf}} {
		wantErr(t, bad.String(), bad.Validate(), ErrInvalidParameter)
	}
}
