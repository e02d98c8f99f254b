// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// TriangularDist is a triangular distribution on [A, B] whose density
// peaks at Mode.
//
// A, B and Mode must be distinct: when Mode coincides with an end
// point the density is no longer a triangle with two linear sides, and
// Validate rejects it with ErrDegenerateTriangular.
type TriangularDist struct {
	A, B, Mode float64
}

func NewTriangularDist(a, b, mode float64) (TriangularDist, error) {
	d := TriangularDist{a, b, mode}
	return d, d.Validate()
}

func (d TriangularDist) Validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{{"a", d.A}, {"b", d.B}, {"mode", d.Mode}} {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) {
			return paramErr("Triangular", p.name, p.v)
		}
	}
	if d.Mode < d.A || d.B < d.Mode {
		return paramErr("Triangular", "mode", d.Mode)
	}
	if d.A == d.B || d.A == d.Mode || d.B == d.Mode {
		return &ParamError{"Triangular", "mode", d.Mode, ErrDegenerateTriangular}
	}
	return nil
}

func (d TriangularDist) Mean() Value {
	return Defined((d.A + d.B + d.Mode) / 3)
}

func (d TriangularDist) StdDev() Value {
	a, b, c := d.A, d.B, d.Mode
	v := (a*a + b*b + c*c - a*b - a*c - b*c) / 18
	return Defined(math.Sqrt(v))
}

func (d TriangularDist) PDF(x float64) float64 {
	a, b, c := d.A, d.B, d.Mode
	switch {
	case x < a || x > b:
		return 0
	case x == c:
		return 2 / (b - a)
	case x < c:
		return 2 * (x - a) / ((b - a) * (c - a))
	}
	return 2 * (b - x) / ((b - a) * (b - c))
}

func (d TriangularDist) CDF(x float64) (Value, error) {
	a, b, c := d.A, d.B, d.Mode
	switch {
	case x < a:
		return Defined(0), nil
	case x <= c:
		return Defined((x - a) * (x - a) / ((b - a) * (c - a))), nil
	case x <= b:
		return Defined(1 - (b-x)*(b-x)/((b-a)*(b-c))), nil
	}
	return Defined(1), nil
}

func (d TriangularDist) Bounds() (float64, float64) {
	return d.A, d.B
}

func (d TriangularDist) String() string {
	return fmt.Sprintf("Triangular(a=%v, b=%v, mode=%v)", d.A, d.B, d.Mode)
}
