// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/probdists/probdist/stats"
)

// A Registry maps symbolic dataset names, such as
// "demo_gaussian_data", to file paths. Names are case-insensitive.
type Registry struct {
	paths map[string]string
}

// NewRegistry returns a Registry of the given name to path mappings.
func NewRegistry(paths map[string]string) *Registry {
	r := &Registry{paths: make(map[string]string, len(paths))}
	for name, path := range paths {
		r.paths[strings.ToLower(name)] = path
	}
	return r
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.paths))
	for name := range r.paths {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve returns the path of the dataset called name. A name that
// is not registered is treated as a path and must name an existing
// file.
func (r *Registry) Resolve(name string) (string, error) {
	if path, ok := r.paths[strings.ToLower(name)]; ok {
		return path, nil
	}
	if _, err := os.Stat(name); err != nil {
		return "", fmt.Errorf("%w %q", ErrUnknownDataset, name)
	}
	return name, nil
}

// Load resolves name and loads the sample it refers to.
func (r *Registry) Load(name string, opts Options) (stats.Sample, error) {
	path, err := r.Resolve(name)
	if err != nil {
		return stats.Sample{}, err
	}
	return Load(path, opts)
}
