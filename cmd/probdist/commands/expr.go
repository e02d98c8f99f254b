// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/probdists/probdist/stats"
)

// ErrUnknownFamily is returned for an expression naming no known
// distribution family.
var ErrUnknownFamily = errors.New("unknown distribution family")

// ErrSyntax is returned for a malformed distribution expression.
var ErrSyntax = errors.New("invalid distribution expression")

// A family describes how to build one distribution family from an
// expression such as "binomial(20, 0.4)".
type family struct {
	params []string
	// ints lists the indexes of params that must be integers.
	ints  []int
	build func(args []float64) (stats.Dist, error)
	// proto is a valid member of the family, used to select the
	// family when fitting.
	proto stats.Dist
}

func wrap[D stats.Dist](d D, err error) (stats.Dist, error) {
	if err != nil {
		return nil, err
	}

	return d, nil
}

var families = map[string]family{
	"normal": {
		params: []string{"mu", "sigma"},
		build:  func(a []float64) (stats.Dist, error) { return wrap(stats.NewNormalDist(a[0], a[1])) },
		proto:  stats.StdNormal,
	},
	"binomial": {
		params: []string{"n", "p"},
		ints:   []int{0},
		build:  func(a []float64) (stats.Dist, error) { return wrap(stats.NewBinomialDist(int(a[0]), a[1])) },
		proto:  stats.BinomialDist{N: 1, P: 0.5},
	},
	"bernoulli": {
		params: []string{"p"},
		build:  func(a []float64) (stats.Dist, error) { return wrap(stats.NewBernoulliDist(a[0])) },
		proto:  stats.BernoulliDist{P: 0.5},
	},
	"poisson": {
		params: []string{"lambda"},
		build:  func(a []float64) (stats.Dist, error) { return wrap(stats.NewPoissonDist(a[0])) },
		proto:  stats.PoissonDist{Lambda: 1},
	},
	"exponential": {
		params: []string{"lambda"},
		build:  func(a []float64) (stats.Dist, error) { return wrap(stats.NewExponentialDist(a[0])) },
		proto:  stats.ExponentialDist{Lambda: 1},
	},
	"gamma": {
		params: []string{"k", "theta"},
		ints:   []int{0},
		build:  func(a []float64) (stats.Dist, error) { return wrap(stats.NewGammaDist(int(a[0]), a[1])) },
		proto:  stats.GammaDist{K: 1, Theta: 1},
	},
	"uniform": {
		params: []string{"low", "high"},
		build:  func(a []float64) (stats.Dist, error) { return wrap(stats.NewUniformDist(a[0], a[1])) },
		proto:  stats.UniformDist{Low: 0, High: 1},
	},
	"triangular": {
		params: []string{"a", "b", "mode"},
		build:  func(a []float64) (stats.Dist, error) { return wrap(stats.NewTriangularDist(a[0], a[1], a[2])) },
		proto:  stats.TriangularDist{A: 0, B: 1, Mode: 0.5},
	},
	"weibull": {
		params: []string{"lambda", "k"},
		build:  func(a []float64) (stats.Dist, error) { return wrap(stats.NewWeibullDist(a[0], a[1])) },
		proto:  stats.WeibullDist{Lambda: 1, K: 1},
	},
	"t": {
		params: []string{"v"},
		build:  func(a []float64) (stats.Dist, error) { return wrap(stats.NewTDist(a[0])) },
		proto:  stats.TDist{V: 1},
	},
	"bates": {
		params: []string{"n", "a", "b"},
		ints:   []int{0},
		build:  func(a []float64) (stats.Dist, error) { return wrap(stats.NewBatesDist(int(a[0]), a[1], a[2])) },
		proto:  stats.BatesDist{N: 1, A: 0, B: 1},
	},
}

var aliases = map[string]string{
	"gaussian":  "normal",
	"gauss":     "normal",
	"exp":       "exponential",
	"tri":       "triangular",
	"studentt":  "t",
	"student_t": "t",
}

// exprRE matches "name(arg, ...)". The argument list may be empty.
var exprRE = regexp.MustCompile(`^([a-z_]+)\s*(?:\(\s*(.*?)\s*\))?$`)

func lookupFamily(name string) (string, family, error) {
	if canon, ok := aliases[name]; ok {
		name = canon
	}

	f, ok := families[name]
	if !ok {
		return "", family{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownFamily, name, strings.Join(familyNames(), ", "))
	}

	return name, f, nil
}

func familyNames() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// ParseDist parses a distribution expression such as "normal(25, 2)"
// or "bates(3, 0, 1)" and validates its parameters.
func ParseDist(s string) (stats.Dist, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	matches := exprRE.FindStringSubmatch(s)
	if matches == nil {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	name, f, err := lookupFamily(matches[1])
	if err != nil {
		return nil, err
	}

	var fields []string
	if matches[2] != "" {
		fields = strings.Split(matches[2], ",")
	}

	if len(fields) != len(f.params) {
		return nil, fmt.Errorf("%w: expected %s(%s)", ErrSyntax, name, strings.Join(f.params, ", "))
	}

	args := make([]float64, len(fields))

	for i, field := range fields {
		x, parseErr := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: invalid %s: %v", ErrSyntax, f.params[i], parseErr)
		}

		if slices.Contains(f.ints, i) && x != math.Trunc(x) {
			return nil, fmt.Errorf("%w: %s must be an integer, got %v", ErrSyntax, f.params[i], x)
		}

		args[i] = x
	}

	return f.build(args)
}

// ParseFamily returns the canonical name of the family called s and
// a member of it for use with stats.Estimator.Fit. s may carry an
// empty argument list, as in "normal()".
func ParseFamily(s string) (string, stats.Dist, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	matches := exprRE.FindStringSubmatch(s)
	if matches == nil || matches[2] != "" {
		return "", nil, fmt.Errorf("%w: expected a family name, got %q", ErrSyntax, s)
	}

	name, f, err := lookupFamily(matches[1])
	if err != nil {
		return "", nil, err
	}

	return name, f.proto, nil
}

// A param is a named distribution parameter.
type param struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// paramsOf returns the parameters of d in expression order.
func paramsOf(d stats.Dist) []param {
	switch d := d.(type) {
	case stats.NormalDist:
		return []param{{"mu", d.Mu}, {"sigma", d.Sigma}}
	case stats.BinomialDist:
		return []param{{"n", float64(d.N)}, {"p", d.P}}
	case stats.BernoulliDist:
		return []param{{"p", d.P}}
	case stats.PoissonDist:
		return []param{{"lambda", d.Lambda}}
	case stats.ExponentialDist:
		return []param{{"lambda", d.Lambda}}
	case stats.GammaDist:
		return []param{{"k", float64(d.K)}, {"theta", d.Theta}}
	case stats.UniformDist:
		return []param{{"low", d.Low}, {"high", d.High}}
	case stats.TriangularDist:
		return []param{{"a", d.A}, {"b", d.B}, {"mode", d.Mode}}
	case stats.WeibullDist:
		return []param{{"lambda", d.Lambda}, {"k", d.K}}
	case stats.TDist:
		return []param{{"v", d.V}}
	case stats.BatesDist:
		return []param{{"n", float64(d.N)}, {"a", d.A}, {"b", d.B}}
	case stats.Rounded:
		return paramsOf(d.Dist)
	}

	return nil
}
