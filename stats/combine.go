// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "fmt"

// Combine returns the distribution of X+Y where X ~ a and Y ~ b are
// independent. The result is defined only for families that are
// closed under convolution:
//
//	Normal    + Normal    => Normal
//	Binomial  + Binomial  => Binomial   (equal P)
//	Bernoulli + Bernoulli => Binomial   (equal P)
//	Bernoulli + Binomial  => Binomial   (equal P)
//	Gamma     + Gamma     => Gamma      (equal Theta)
//
// Combining families with a mismatched shared parameter fails with
// ErrIncompatibleParameters. Every other pair fails with
// ErrUnsupportedComposition.
func Combine(a, b Dist) (Dist, error) {
	a, b = unwrapRounded(a), unwrapRounded(b)
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	switch a := a.(type) {
	case NormalDist:
		if b, ok := b.(NormalDist); ok {
			return a.Add(b), nil
		}
	case BinomialDist:
		switch b := b.(type) {
		case BinomialDist:
			return wrapDist(a.Add(b))
		case BernoulliDist:
			return wrapDist(a.Add(b.Binomial()))
		}
	case BernoulliDist:
		switch b := b.(type) {
		case BernoulliDist:
			return wrapDist(a.Add(b))
		case BinomialDist:
			return wrapDist(a.Binomial().Add(b))
		}
	case GammaDist:
		if b, ok := b.(GammaDist); ok {
			return wrapDist(a.Add(b))
		}
	}
	return nil, fmt.Errorf("%w: %s + %s", ErrUnsupportedComposition, familyName(a), familyName(b))
}

// wrapDist converts a typed (value, error) pair into a (Dist, error)
// pair without producing a non-nil Dist on error.
func wrapDist[D Dist](d D, err error) (Dist, error) {
	if err != nil {
		return nil, err
	}
	return d, nil
}

// familyName returns a short name for d's family.
func familyName(d Dist) string {
	switch d := d.(type) {
	case NormalDist:
		return "Normal"
	case BinomialDist:
		return "Binomial"
	case BernoulliDist:
		return "Bernoulli"
	case PoissonDist:
		return "Poisson"
	case ExponentialDist:
		return "Exponential"
	case GammaDist:
		return "Gamma"
	case UniformDist:
		return "Uniform"
	case TriangularDist:
		return "Triangular"
	case WeibullDist:
		return "Weibull"
	case TDist:
		return "StudentT"
	case BatesDist:
		return "Bates"
	case kdeDist:
		return "KDE"
	case Rounded:
		return familyName(d.Dist)
	}
	return fmt.Sprintf("%T", d)
}

func unwrapRounded(d Dist) Dist {
	for {
		r, ok := d.(Rounded)
		if !ok {
			return d
		}
		d = r.Dist
	}
}
