// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command probdist evaluates, fits, combines and plots probability
// distributions.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/probdists/probdist/cmd/probdist/commands"
)

func main() {
	err := commands.NewRootCommand().Execute()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
