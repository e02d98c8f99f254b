// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// decompressors maps a file extension to a function wrapping a
// compressed stream.
var decompressors = map[string]func(io.Reader) (io.ReadCloser, error){
	".gz": func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	},
	".zst": func(r io.Reader) (io.ReadCloser, error) {
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	},
	".bz2": func(r io.Reader) (io.ReadCloser, error) {
		return bzip2.NewReader(r, &bzip2.ReaderConfig{})
	},
	".lz4": func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(lz4.NewReader(r)), nil
	},
}

// file is an open dataset file, possibly behind a decompressor.
type file struct {
	io.Reader
	closers []io.Closer
}

func (f *file) Close() error {
	var first error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if err := f.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// open opens path, decompressing it if its extension names a known
// compression format.
func open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	wrap, ok := decompressors[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return f, nil
	}
	z, err := wrap(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: cannot open compressed stream; %w", path, err)
	}
	return &file{z, []io.Closer{f, z}}, nil
}
