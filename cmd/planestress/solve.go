// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/planestress/config"
	"github.com/cpmech/planestress/errs"
	"github.com/cpmech/planestress/fea"
	"github.com/cpmech/planestress/report"
	"github.com/spf13/cobra"
)

var (
	scenePath string
	parallel  bool
	verbose   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a scene and print the node/element tables",
	Long: `Read a JSON scene file (material, node/element list, boundary rules)
and run the full assembly-and-solve pipeline, printing the resolved node
table (id, x, y, ux, uy, fx, fy) and element table (id, n1, n2, n3, sx, sy,
sxy) of spec.md §6.

Example:
  planestress solve --scene bracket.json`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&scenePath, "scene", "s", "", "path to the JSON scene file [required]")
	solveCmd.Flags().BoolVar(&parallel, "parallel", false, "evaluate element stiffness across a worker pool")
	solveCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print a banner before solving")
	solveCmd.MarkFlagRequired("scene")
}

func runSolve(cmd *cobra.Command, args []string) error {
	if verbose {
		io.PfWhite("\nplanestress -- 2D plane-stress CST finite element solver\n")
	}

	data, err := os.ReadFile(scenePath)
	if err != nil {
		return err
	}
	sc, err := config.Load(data)
	if err != nil {
		return err
	}

	rep, err := fea.Solve(sc.Mesh(), sc.Material(), sc.Rules(), fea.Options{Parallel: parallel})
	if err != nil {
		printDiagnostic(err)
		return err
	}

	sink := report.TableWriter{W: os.Stdout}
	return sink.WriteReport(rep)
}

// printDiagnostic prints one colored line identifying the offending entity,
// per spec.md §7's "one diagnostic line per error" user-visible contract.
func printDiagnostic(err error) {
	switch e := err.(type) {
	case *errs.IllPosedBoundary:
		io.PfRed("ill-posed boundary: node=%d axis=%d: %s\n", e.NodeID, e.Axis, e.Reason)
	case *errs.DegenerateElement:
		io.PfRed("degenerate element: id=%d area=%.3e tol=%.3e\n", e.ElemID, e.Area, e.Tol)
	case *errs.SingularSystem:
		io.PfRed("singular system: row=%d pivot=%.3e tol=%.3e\n", e.Row, e.Pivot, e.Tol)
	case *errs.InvalidMaterial:
		io.PfRed("invalid material: field=%s value=%g\n", e.Field, e.Value)
	case *errs.IndexOutOfRange:
		io.PfRed("index out of range: element=%d corner=%d node=%d n=%d\n", e.ElemID, e.Corner, e.NodeID, e.N)
	default:
		io.PfRed("%v\n", err)
	}
}
