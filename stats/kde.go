// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// KDE represents options for constructing a kernel density estimate.
//
// Kernel density estimation is a method for constructing an estimate
// ƒ̂(x) of a unknown distribution ƒ(x) given a sample from that
// distribution. Unlike the families in this package, it doesn't
// assume any particular true distribution, which makes it useful for
// comparing a fitted distribution against the data it was fit to.
//
// A kernel density estimate is similar to a histogram, except that it
// is a smooth probability estimate and does not require choosing a
// bin size and discretizing the data.
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Bandwidth is the bandwidth of the Gaussian kernel.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using BandwidthScott.
	Bandwidth float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(data interface {
	StdDev() float64
	Weight() float64
}) float64 {
	return 1.06 * data.StdDev() * math.Pow(data.Weight(), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and an robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(data interface {
	StdDev() float64
	Weight() float64
	Percentile(float64) float64
}) float64 {
	iqr := data.Percentile(0.75) - data.Percentile(0.25)
	hScale := 1.06 * math.Pow(data.Weight(), -1.0/5)
	stdDev := data.StdDev()
	if stdDev < iqr/1.349 || iqr == 0 {
		// Use Silverman's Rule of Thumb
		return hScale * stdDev
	}
	// Use IQR/1.349 as a robust estimator of the standard
	// deviation of a Gaussian distribution.
	return hScale * (iqr / 1.349)
}

// From returns the kernel density estimate for the sample s. It fails
// with ErrEmptyData if s is empty and ErrInvalidParameter if the
// bandwidth is not positive (for example, because every observation
// is equal).
func (k KDE) From(s Sample) (Dist, error) {
	if s.Len() == 0 {
		return nil, fmt.Errorf("KDE: %w", ErrEmptyData)
	}
	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(s)
	}
	d := kdeDist{NormalDist{0, h}, s}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

type kdeDist struct {
	kernel NormalDist
	s      Sample
}

func (kde kdeDist) Validate() error {
	if !(kde.kernel.Sigma > 0) || math.IsInf(kde.kernel.Sigma, 0) {
		return paramErr("KDE", "bandwidth", kde.kernel.Sigma)
	}
	return nil
}

func (kde kdeDist) Mean() Value {
	return Defined(kde.s.Mean())
}

// StdDev is the standard deviation of the mixture: the spread of the
// observations plus the spread of the kernel.
func (kde kdeDist) StdDev() Value {
	h := kde.kernel.Sigma
	return Defined(math.Sqrt(kde.s.PopVariance() + h*h))
}

// PDF evaluates the kernel shifted to each observation at x.
// Evaluating kernels shifted by xs at x is equivalent to evaluating
// one unshifted kernel at x - xs.
func (kde kdeDist) PDF(x float64) float64 {
	y := 0.0
	for _, xi := range kde.s.Xs {
		y += kde.kernel.PDF(x - xi)
	}
	return y / kde.s.Weight()
}

func (kde kdeDist) CDF(x float64) (Value, error) {
	y := 0.0
	for _, xi := range kde.s.Xs {
		c, _ := kde.kernel.CDF(x - xi)
		y += c.Or(0)
	}
	return Defined(y / kde.s.Weight()), nil
}

func (kde kdeDist) Bounds() (float64, float64) {
	lo, hi := kde.s.Bounds()
	const bandwidths = 3
	return lo - bandwidths*kde.kernel.Sigma, hi + bandwidths*kde.kernel.Sigma
}

func (kde kdeDist) String() string {
	return fmt.Sprintf("KDE(n=%d, bandwidth=%v)", kde.s.Len(), kde.kernel.Sigma)
}
