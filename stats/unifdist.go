// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// UniformDist is a continuous uniform distribution on [Low, High].
type UniformDist struct {
	Low, High float64
}

func NewUniformDist(low, high float64) (UniformDist, error) {
	d := UniformDist{low, high}
	return d, d.Validate()
}

func (d UniformDist) Validate() error {
	if math.IsNaN(d.Low) || math.IsInf(d.Low, 0) {
		return paramErr("Uniform", "low", d.Low)
	}
	if !(d.Low < d.High) || math.IsInf(d.High, 0) {
		return paramErr("Uniform", "high", d.High)
	}
	return nil
}

func (d UniformDist) Mean() Value {
	return Defined((d.Low + d.High) / 2)
}

func (d UniformDist) StdDev() Value {
	w := d.High - d.Low
	return Defined(math.Sqrt(w * w / 12))
}

func (d UniformDist) PDF(x float64) float64 {
	if x < d.Low || x > d.High {
		return 0
	}
	return 1 / (d.High - d.Low)
}

func (d UniformDist) CDF(x float64) (Value, error) {
	switch {
	case x < d.Low:
		return Defined(0), nil
	case x > d.High:
		return Defined(1), nil
	}
	return Defined((x - d.Low) / (d.High - d.Low)), nil
}

func (d UniformDist) Bounds() (float64, float64) {
	return d.Low, d.High
}

func (d UniformDist) String() string {
	return fmt.Sprintf("Uniform(low=%v, high=%v)", d.Low, d.High)
}
