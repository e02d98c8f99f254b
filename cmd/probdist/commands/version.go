// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is the probdist release, set at link time with
// -ldflags "-X github.com/probdists/probdist/cmd/probdist/commands.Version=...".
var Version = "devel"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// version needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "probdist %s (%s)\n", Version, runtime.Version())
		},
	}
}
