// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command planestress is a thin CLI demo around the fea pipeline: it reads
// a JSON scene (material, a literal node/element list standing in for the
// out-of-scope external mesher, and boundary rules) and prints the node and
// element tables of spec.md §6.
//
// CLI parsing/config-file loading are explicitly out of scope for the core
// (spec.md §1); this command exists only so the library has a runnable
// demonstration, the way gorcb wraps its beam-design core with a cobra
// command tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planestress",
	Short: "2D linear-elastic plane-stress CST finite element solver",
	Long: `planestress - 2D linear-elastic finite element engine

Solves isotropic, constant-thickness planar parts under the small-strain,
plane-stress assumption using constant-strain triangles (CST), given a
triangulated mesh, material properties, and rectangular-region boundary
conditions.`,
}

// Execute runs the root command and, on failure, prints the error on one
// line to stderr and exits with status 1. cobra's own "Error:" line and
// usage text are not silenced, and pipeline errors have already been printed
// once by printDiagnostic, so a failure prints more than one line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(solveCmd)
}

func main() {
	Execute()
}
