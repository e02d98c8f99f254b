// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// aeqRel reports whether got is within a relative tolerance tol of
// expect, falling back to an absolute tolerance near zero.
func aeqRel(expect, got, tol float64) bool {
	if expect == got {
		return true
	}
	d := math.Abs(expect - got)
	return d < tol || d/math.Abs(expect) < tol
}

// testFunc checks f against the table vals, where NaN matches NaN.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || aeq(want, got) {
			continue
		}
		if math.IsInf(want, 0) && want == got {
			continue
		}
		t.Errorf("%s(%v) = %v; want %v", name, x, got, want)
	}
}

// cdfOf adapts d.CDF to a plain function for testFunc. Undefined maps
// to NaN; errors fail the test.
func cdfOf(t *testing.T, d Dist) func(float64) float64 {
	return func(x float64) float64 {
		t.Helper()
		v, err := d.CDF(x)
		if err != nil {
			t.Fatalf("%v.CDF(%v): %v", d, x, err)
		}
		return v.Or(nan)
	}
}

// testDiscreteCDF checks that the CDF of a discrete distribution is
// the running sum of its PMF over Bounds and is flat between lattice
// points.
func testDiscreteCDF(t *testing.T, name string, dist Discrete) {
	t.Helper()
	cdf := cdfOf(t, dist)
	lo, hi := dist.Bounds()
	step := dist.Step()

	if got := cdf(lo - step); got != 0 {
		t.Errorf("%s(%v) = %v; want 0", name, lo-step, got)
	}
	sum := 0.0
	for x := lo; x <= hi; x += step {
		sum += dist.PDF(x)
		if got := cdf(x); !aeq(sum, got) {
			t.Errorf("%s(%v) = %v; want running PMF sum %v", name, x, got, sum)
		}
		if got := cdf(x + step/2); !aeq(sum, got) {
			t.Errorf("%s(%v) = %v; want %v", name, x+step/2, got, sum)
		}
	}
	if got := cdf(hi + step); got > 1 || got < sum-0.00001 {
		t.Errorf("%s(%v) = %v; want in [%v, 1]", name, hi+step, got, sum)
	}
}

// wantErr checks that err wraps target.
func wantErr(t *testing.T, what string, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%s: got error %v; want %v", what, err, target)
	}
}

// mustValue returns the number held by v, failing the test if v is
// Undefined.
func mustValue(t *testing.T, what string, v Value) float64 {
	t.Helper()
	x, ok := v.Float64()
	if !ok {
		t.Fatalf("%s is undefined", what)
	}
	return x
}
