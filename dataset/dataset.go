// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads samples of observations from text and CSV
// files, optionally compressed, for fitting and plotting.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/probdists/probdist/stats"
)

var (
	// ErrUnknownDataset is returned when a name is neither a
	// registered dataset nor an existing file.
	ErrUnknownDataset = errors.New("unknown dataset")

	// ErrUnsupportedFormat is returned for a format other than
	// text or CSV.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrEmpty is returned when a file holds no observations.
	ErrEmpty = errors.New("dataset has no observations")

	// ErrNoColumn is returned when a CSV file has no column
	// matching Options.Column.
	ErrNoColumn = errors.New("no such column")
)

// A Format is the layout of a dataset file.
type Format string

const (
	// Text files hold numbers separated by Options.Separator, or
	// by any white space if Separator is empty. Blank lines and
	// lines starting with '#' are ignored.
	Text Format = "text"

	// CSV files hold records of comma-separated fields (or
	// Options.Separator-separated). One column holds the
	// observations.
	CSV Format = "csv"
)

// Options control how a dataset is parsed. The zero value reads a
// text file of white-space separated numbers.
type Options struct {
	// Format is the file layout. If empty, Load infers it from
	// the file extension, ignoring compression suffixes, and
	// falls back to Text.
	Format Format

	// Separator separates fields. For CSV it defaults to ",".
	Separator string

	// Column selects the CSV column holding the observations,
	// either by header name or by zero-based index. If empty,
	// the first column is used.
	Column string
}

// Load reads the sample stored at path. Files ending in .gz, .zst,
// .bz2 or .lz4 are decompressed transparently.
func Load(path string, opts Options) (stats.Sample, error) {
	f, err := open(path)
	if err != nil {
		return stats.Sample{}, err
	}
	defer f.Close()

	if opts.Format == "" {
		opts.Format = formatOf(path)
	}
	s, err := Read(f, opts)
	if err != nil {
		return stats.Sample{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// formatOf infers the format from the extension of path.
func formatOf(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := decompressors[ext]; ok {
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
	}
	if ext == ".csv" {
		return CSV
	}
	return Text
}

// Read reads a sample from r.
func Read(r io.Reader, opts Options) (stats.Sample, error) {
	var xs []float64
	var err error
	switch opts.Format {
	case Text, "":
		xs, err = readText(r, opts.Separator)
	case CSV:
		xs, err = readCSV(r, opts)
	default:
		return stats.Sample{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}
	if err != nil {
		return stats.Sample{}, err
	}
	if len(xs) == 0 {
		return stats.Sample{}, ErrEmpty
	}
	return stats.Sample{Xs: xs}, nil
}

func readText(r io.Reader, sep string) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var xs []float64
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var fields []string
		if sep == "" {
			fields = strings.Fields(line)
		} else {
			fields = strings.Split(line, sep)
		}
		for _, field := range fields {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			x, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			xs = append(xs, x)
		}
	}
	return xs, nil
}

func readCSV(r io.Reader, opts Options) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	if opts.Separator != "" {
		sep := []rune(opts.Separator)
		if len(sep) != 1 {
			return nil, fmt.Errorf("CSV separator %q must be one character", opts.Separator)
		}
		cr.Comma = sep[0]
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	col, byIndex := 0, true
	if opts.Column != "" {
		col, err = strconv.Atoi(opts.Column)
		byIndex = err == nil
	}
	start := 0
	if !byIndex {
		col = -1
		for i, name := range records[0] {
			if strings.TrimSpace(name) == opts.Column {
				col = i
				break
			}
		}
		if col < 0 {
			return nil, fmt.Errorf("%w %q in header %v", ErrNoColumn, opts.Column, records[0])
		}
		start = 1
	} else if col < 0 || col >= len(records[0]) {
		return nil, fmt.Errorf("%w %d: records have %d fields", ErrNoColumn, col, len(records[0]))
	} else if _, err := strconv.ParseFloat(strings.TrimSpace(records[0][col]), 64); err != nil {
		// The first record is a header.
		start = 1
	}

	var xs []float64
	for i, rec := range records[start:] {
		field := strings.TrimSpace(rec[col])
		if field == "" {
			continue
		}
		x, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", start+i+1, err)
		}
		xs = append(xs, x)
	}
	return xs, nil
}
