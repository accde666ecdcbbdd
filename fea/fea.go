// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fea wires together the mesh, boundary binder, element kernel,
// assembler, partition solver and stress recovery into the single pipeline
// described in spec.md §2: (nodes, elements, BC rules) -> ... -> stresses.
package fea

import (
	"github.com/cpmech/planestress/assemble"
	"github.com/cpmech/planestress/bc"
	"github.com/cpmech/planestress/cst"
	"github.com/cpmech/planestress/mesh"
	"github.com/cpmech/planestress/solve"
	"github.com/cpmech/planestress/stress"
)

// NodeRow is one row of the node table of spec.md §6: (id, x, y, ux, uy,
// fx, fy), all resolved (no nulls) after solve.
type NodeRow struct {
	ID     int
	X, Y   float64
	Ux, Uy float64
	Fx, Fy float64
}

// ElementRow is one row of the element table of spec.md §6: (id, n1, n2,
// n3, σx, σy, τxy).
type ElementRow struct {
	ID             int
	N1, N2, N3     int
	Sx, Sy, Sxy    float64
}

// TraceEntry records, for one node/axis, which boundary rule (by index into
// the rules slice passed to Solve, or -1 for the implicit unmatched-DOF
// default) last set its known-displacement or known-force field. Populated
// only when Options.Trace is set (SPEC_FULL.md §9.4).
type TraceEntry struct {
	NodeID  int
	Axis    mesh.Dof
	RuleIdx int
	Field   string // "u" or "f"
}

// Report is the pipeline's complete output: the two tables of spec.md §6,
// plus the boundary-binder trace when Options.Trace was set.
type Report struct {
	Nodes    []NodeRow
	Elements []ElementRow
	Trace    []TraceEntry // nil unless Options.Trace was set
}

// Options controls optional pipeline behavior; the zero value keeps the
// material's own law (plane stress when it has none) and assembles serially.
type Options struct {
	Law      cst.MaterialLaw // overrides mat.Law when non-nil
	Parallel bool            // enable spec.md §5's parallel element-kernel path
	Trace    bool            // record boundary-binder provenance (SPEC_FULL §9.4)
}

// Solve runs the full pipeline: bind boundary conditions, evaluate every
// element's stiffness, assemble the global system, partition-solve it, and
// recover per-element stress. It returns the first error encountered,
// per spec.md §7's fail-fast propagation policy.
func Solve(m *mesh.Mesh, mat cst.Material, rules []bc.Rule, opt Options) (*Report, error) {
	if opt.Law != nil {
		mat.Law = opt.Law
	}
	if err := mat.Validate(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	binder := &bc.Binder{Trace: opt.Trace}
	if err := binder.Bind(m, rules); err != nil {
		return nil, err
	}

	asm := assemble.Assembler{Parallel: opt.Parallel}
	results, err := asm.Build(m, mat)
	if err != nil {
		return nil, err
	}

	sol, err := solve.Partition(m, mat, results)
	if err != nil {
		return nil, err
	}

	stresses := stress.Recover(m, results, sol.U)

	rep := buildReport(m, sol, stresses)
	if opt.Trace {
		entries := binder.Entries()
		rep.Trace = make([]TraceEntry, len(entries))
		for i, e := range entries {
			rep.Trace[i] = TraceEntry{NodeID: e.NodeID, Axis: e.Axis, RuleIdx: e.RuleIdx, Field: e.Field}
		}
	}
	return rep, nil
}

func buildReport(m *mesh.Mesh, sol *solve.Result, stresses []stress.Triple) *Report {
	rep := &Report{
		Nodes:    make([]NodeRow, len(m.Nodes)),
		Elements: make([]ElementRow, len(m.Elements)),
	}
	for i, n := range m.Nodes {
		rep.Nodes[i] = NodeRow{
			ID: i, X: n.X, Y: n.Y,
			Ux: sol.U[2*i], Uy: sol.U[2*i+1],
			Fx: sol.F[2*i], Fy: sol.F[2*i+1],
		}
	}
	for i, el := range m.Elements {
		s := stresses[i]
		rep.Elements[i] = ElementRow{
			ID: i, N1: el.N1, N2: el.N2, N3: el.N3,
			Sx: s.X, Sy: s.Y, Sxy: s.XY,
		}
	}
	return rep
}
