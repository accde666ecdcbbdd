// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve_test

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/planestress/assemble"
	"github.com/cpmech/planestress/bc"
	"github.com/cpmech/planestress/cst"
	"github.com/cpmech/planestress/mesh"
	"github.com/cpmech/planestress/solve"
	"github.com/cpmech/planestress/stress"
)

func buildAndSolve(m *mesh.Mesh, mat cst.Material, rules []bc.Rule) (*solve.Result, []cst.Result, error) {
	binder := &bc.Binder{}
	if err := binder.Bind(m, rules); err != nil {
		return nil, nil, err
	}
	asm := assemble.Assembler{}
	results, err := asm.Build(m, mat)
	if err != nil {
		return nil, nil, err
	}
	sol, err := solve.Partition(m, mat, results)
	if err != nil {
		return nil, nil, err
	}
	return sol, results, nil
}

// Test_solve01 is spec.md §8 scenario 2: pure shear on a single triangle,
// prescribed entirely via nodal displacements (every DOF is u_known), which
// exercises the degenerate K_uu-empty branch of the partition and checks
// that the recovered shear strain/stress match the prescribed uniform field
// exactly (CST is exact for a linear displacement field).
func Test_solve01_pureShear(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve01: pure shear, fully displacement-prescribed triangle")

	m := &mesh.Mesh{
		Nodes: []mesh.Node{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
		},
		Elements: []mesh.Element{{N1: 0, N2: 1, N3: 2}},
	}
	mat := cst.Material{E: 1e9, Nu: 0.3, T: 1}

	gamma := 2e-3 // prescribed engineering shear strain
	// u_x = 0.5*gamma*y, u_y = 0.5*gamma*x -> exx=eyy=0, gamma_xy=gamma
	disp := func(x, y float64) (ux, uy float64) {
		return 0.5 * gamma * y, 0.5 * gamma * x
	}
	rules := make([]bc.Rule, len(m.Nodes))
	for i, nd := range m.Nodes {
		ux, uy := disp(nd.X, nd.Y)
		rules[i] = bc.Rule{
			XMin: nd.X - 0.01, XMax: nd.X + 0.01,
			YMin: nd.Y - 0.01, YMax: nd.Y + 0.01,
			Target: bc.Target{Ux: bc.Val(ux), Uy: bc.Val(uy)},
		}
	}

	sol, results, err := buildAndSolve(m, mat, rules)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	strains := make([]stress.Triple, len(m.Elements))
	for eid, el := range m.Elements {
		strains[eid] = stress.Strain(results[eid], m, el, sol.U)
	}
	eps := strains[0]
	chk.Array(tst, "strain (exx,eyy,gamma_xy)", 1e-12, []float64{eps.X, eps.Y, eps.XY}, []float64{0, 0, gamma})

	stresses := stress.Recover(m, results, sol.U)
	G := mat.E / (2 * (1 + mat.Nu))
	wantTau := G * gamma
	chk.Float64(tst, "tau_xy", 1e-8*wantTau, stresses[0].XY, wantTau)
}

func twoElemSquare() *mesh.Mesh {
	return &mesh.Mesh{
		Nodes: []mesh.Node{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
		Elements: []mesh.Element{
			{N1: 0, N2: 1, N3: 2},
			{N1: 0, N2: 2, N3: 3},
		},
	}
}

// Test_solve02 is spec.md §8 scenario 3: two-element square under uniform
// tension, checking that both elements report the same sigma_x (a patch
// test: a uniform stress state is represented exactly regardless of mesh
// topology) and that equilibrium/reaction-balance both hold.
func Test_solve02_twoElementSquareUniformTension(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve02: two-element square patch test under uniform tension")

	m := twoElemSquare()
	mat := cst.Material{E: 1e9, Nu: 0.25, T: 1}

	totalFx := 1e6
	rules := []bc.Rule{
		// left edge (x=0): pin both dof
		{XMin: -0.01, XMax: 0.01, YMin: -0.01, YMax: 1.01, Target: bc.Target{Ux: bc.Val(0), Uy: bc.Val(0)}},
		// right edge (x=1): split the total traction between its two nodes,
		// free in y
		{XMin: 0.99, XMax: 1.01, YMin: -0.01, YMax: 1.01, Target: bc.Target{Fx: bc.Val(totalFx / 2), Fy: bc.Val(0)}},
	}

	sol, results, err := buildAndSolve(m, mat, rules)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	stresses := stress.Recover(m, results, sol.U)
	sx0, sx1 := stresses[0].X, stresses[1].X
	chk.Float64(tst, "element 0 vs element 1 sigma_x", 1e-6*math.Max(math.Abs(sx0), 1), sx0, sx1)
	wantSx := totalFx / 1.0 // cross-section = thickness(1) * height(1)
	chk.Float64(tst, "sigma_x", 1e-6*wantSx, sx0, wantSx)

	if _, ok := sol.CheckEquilibrium(m, results); !ok {
		tst.Errorf("equilibrium check failed")
	}
	if sumX, sumY, ok := sol.CheckReactionBalance(); !ok {
		tst.Errorf("reaction balance failed: sumX=%g sumY=%g", sumX, sumY)
	}
}

// Test_solve03 is spec.md §8's node-relabeling invariance property: permuting
// node indices (and updating element connectivity to match) must not change
// the physical solution, only which row of U/F corresponds to which node.
func Test_solve03_nodeRelabelingInvariance(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve03: relabeling nodes does not change the physical solution")

	m := twoElemSquare()
	mat := cst.Material{E: 1e9, Nu: 0.25, T: 1}
	rules := []bc.Rule{
		{XMin: -0.01, XMax: 0.01, YMin: -0.01, YMax: 1.01, Target: bc.Target{Ux: bc.Val(0), Uy: bc.Val(0)}},
		{XMin: 0.99, XMax: 1.01, YMin: -0.01, YMax: 1.01, Target: bc.Target{Fx: bc.Val(5e5), Fy: bc.Val(0)}},
	}
	sol1, _, err := buildAndSolve(m, mat, rules)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	// permutation: old index -> new index
	perm := [4]int{2, 0, 3, 1}
	mp := &mesh.Mesh{Nodes: make([]mesh.Node, 4), Elements: make([]mesh.Element, 2)}
	for old, nw := range perm {
		mp.Nodes[nw] = m.Nodes[old]
	}
	relabel := func(old int) int { return perm[old] }
	for i, el := range m.Elements {
		mp.Elements[i] = mesh.Element{N1: relabel(el.N1), N2: relabel(el.N2), N3: relabel(el.N3)}
	}
	rulesP := make([]bc.Rule, len(rules))
	copy(rulesP, rules) // rules are region-based, independent of node labels

	sol2, _, err := buildAndSolve(mp, mat, rulesP)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	for old, nw := range perm {
		ux1, uy1 := sol1.U[2*old], sol1.U[2*old+1]
		ux2, uy2 := sol2.U[2*nw], sol2.U[2*nw+1]
		chk.Float64(tst, io.Sf("node %d->%d: ux", old, nw), 1e-9*math.Max(math.Abs(ux1), 1), ux2, ux1)
		chk.Float64(tst, io.Sf("node %d->%d: uy", old, nw), 1e-9*math.Max(math.Abs(uy1), 1), uy2, uy1)
	}
}
