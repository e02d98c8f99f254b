// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a distribution's
	// parameters fall outside its domain.
	ErrInvalidParameter = errors.New("invalid distribution parameter")

	// ErrDegenerateTriangular is returned for a triangular
	// distribution whose minimum, maximum and mode are not all
	// distinct. It wraps ErrInvalidParameter.
	ErrDegenerateTriangular = fmt.Errorf("%w: degenerate triangular distribution", ErrInvalidParameter)

	// ErrMultimodalData is returned when a triangular
	// distribution is fit with ModeStrict to a sample that has
	// more than one most frequent value. It wraps
	// ErrInvalidParameter.
	ErrMultimodalData = fmt.Errorf("%w: sample has more than one mode", ErrInvalidParameter)

	// ErrEmptyData is returned when fitting to an empty sample.
	ErrEmptyData = errors.New("sample is empty")

	// ErrDomain is returned when a function is evaluated at a
	// point where its closed form has no sane value.
	ErrDomain = errors.New("argument outside function domain")

	// ErrIncompatibleParameters is returned when combining two
	// distributions of a closed family whose shared parameter
	// differs.
	ErrIncompatibleParameters = errors.New("incompatible distribution parameters")

	// ErrUnsupportedComposition is returned when combining
	// distributions that have no closure rule.
	ErrUnsupportedComposition = errors.New("composition not supported")

	// ErrUnsupportedFit is returned when fitting a family that
	// has no closed-form estimator.
	ErrUnsupportedFit = errors.New("fitting not supported")
)

// A ParamError records a parameter that failed validation.
type ParamError struct {
	Dist  string  // Distribution name, such as "Normal"
	Param string  // Parameter name
	Value float64 // Offending value
	Err   error   // One of the Err* kinds
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %v", e.Dist, e.Param, e.Value, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

func paramErr(dist, param string, value float64) error {
	return &ParamError{dist, param, value, ErrInvalidParameter}
}
