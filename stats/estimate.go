// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// Estimator represents options for estimating distribution
// parameters from a sample.
//
// Families with a closed-form estimator are Normal, Binomial,
// Bernoulli, Gamma, Uniform and Triangular. Normal and Gamma use the
// method of moments; Uniform and Triangular take the sample extremes.
//
// The default (zero) value of Estimator is a reasonable default
// configuration.
type Estimator struct {
	// Population selects the population variance (dividing by n)
	// instead of the unbiased sample variance (dividing by n-1)
	// when an estimator needs a variance.
	Population bool

	// Modes selects how FitTriangular picks the mode of a sample
	// with more than one most frequent value.
	Modes ModePolicy
}

// ModePolicy controls how a triangular fit handles multimodal samples.
type ModePolicy int

const (
	// ModeMean uses the sample mean as the mode when the sample
	// has several equally frequent values.
	ModeMean ModePolicy = iota

	// ModeStrict fails with ErrMultimodalData when the sample
	// has several equally frequent values.
	ModeStrict
)

func (p ModePolicy) String() string {
	switch p {
	case ModeMean:
		return "mean"
	case ModeStrict:
		return "strict"
	}
	return fmt.Sprintf("ModePolicy(%d)", int(p))
}

// ParseModePolicy returns the ModePolicy named by s, which is "mean"
// or "strict".
func ParseModePolicy(s string) (ModePolicy, error) {
	switch s {
	case "mean", "":
		return ModeMean, nil
	case "strict":
		return ModeStrict, nil
	}
	return 0, fmt.Errorf("unknown mode policy %q", s)
}

// Fit returns a distribution of the same family as d whose parameters
// are estimated from s. The parameters of d are ignored.
//
// Fit fails with ErrUnsupportedFit if d's family has no estimator,
// ErrEmptyData if s is empty, and ErrInvalidParameter if the
// estimated parameters are outside the family's domain.
func (e Estimator) Fit(d Dist, s Sample) (Dist, error) {
	switch d := unwrapRounded(d).(type) {
	case NormalDist:
		return wrapDist(e.FitNormal(s))
	case BinomialDist:
		return wrapDist(e.FitBinomial(s))
	case BernoulliDist:
		return wrapDist(e.FitBernoulli(s))
	case GammaDist:
		return wrapDist(e.FitGamma(s))
	case UniformDist:
		return wrapDist(e.FitUniform(s))
	case TriangularDist:
		return wrapDist(e.FitTriangular(s))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFit, familyName(d))
	}
}

func (e Estimator) variance(s Sample) float64 {
	if e.Population {
		return s.PopVariance()
	}
	return s.Variance()
}

func nonEmpty(dist string, s Sample) error {
	if s.Len() == 0 {
		return fmt.Errorf("%s: %w", dist, ErrEmptyData)
	}
	return nil
}

// FitNormal estimates Mu as the sample mean and Sigma as the sample
// standard deviation.
func (e Estimator) FitNormal(s Sample) (NormalDist, error) {
	if err := nonEmpty("Normal", s); err != nil {
		return NormalDist{}, err
	}
	d := NormalDist{s.Mean(), math.Sqrt(e.variance(s))}
	return d, d.Validate()
}

// FitBinomial treats each observation as the outcome (0 or 1) of one
// trial. N is the number of observations and P the fraction of
// successes.
func (e Estimator) FitBinomial(s Sample) (BinomialDist, error) {
	if err := nonEmpty("Binomial", s); err != nil {
		return BinomialDist{}, err
	}
	if err := trials("Binomial", s); err != nil {
		return BinomialDist{}, err
	}
	d := BinomialDist{s.Len(), s.Mean()}
	return d, d.Validate()
}

// FitBernoulli estimates P as the fraction of successes in s.
func (e Estimator) FitBernoulli(s Sample) (BernoulliDist, error) {
	if err := nonEmpty("Bernoulli", s); err != nil {
		return BernoulliDist{}, err
	}
	if err := trials("Bernoulli", s); err != nil {
		return BernoulliDist{}, err
	}
	d := BernoulliDist{s.Mean()}
	return d, d.Validate()
}

// trials checks that every observation is a trial outcome.
func trials(dist string, s Sample) error {
	for _, x := range s.Xs {
		if x != 0 && x != 1 {
			return &ParamError{dist, "sample", x, ErrInvalidParameter}
		}
	}
	return nil
}

// FitGamma uses the method of moments: K = round(mean²/variance) and
// Theta = variance/mean.
func (e Estimator) FitGamma(s Sample) (GammaDist, error) {
	if err := nonEmpty("Gamma", s); err != nil {
		return GammaDist{}, err
	}
	m, v := s.Mean(), e.variance(s)
	if !(m > 0) {
		return GammaDist{}, paramErr("Gamma", "mean", m)
	}
	if !(v > 0) {
		return GammaDist{}, paramErr("Gamma", "variance", v)
	}
	d := GammaDist{int(math.Round(m * m / v)), v / m}
	return d, d.Validate()
}

// FitUniform takes Low and High from the sample extremes.
func (e Estimator) FitUniform(s Sample) (UniformDist, error) {
	if err := nonEmpty("Uniform", s); err != nil {
		return UniformDist{}, err
	}
	lo, hi := s.Bounds()
	d := UniformDist{lo, hi}
	return d, d.Validate()
}

// FitTriangular takes A and B from the sample extremes and Mode from
// its most frequent value. If several values are equally frequent,
// e.Modes decides between the sample mean and ErrMultimodalData.
func (e Estimator) FitTriangular(s Sample) (TriangularDist, error) {
	if err := nonEmpty("Triangular", s); err != nil {
		return TriangularDist{}, err
	}
	a, b := s.Bounds()
	var mode float64
	if modes := s.Modes(); len(modes) == 1 {
		mode = modes[0]
	} else if e.Modes == ModeStrict {
		return TriangularDist{}, fmt.Errorf("Triangular: %d modes %v: %w", len(modes), modes, ErrMultimodalData)
	} else {
		mode = s.Mean()
	}
	d := TriangularDist{a, b, mode}
	return d, d.Validate()
}
