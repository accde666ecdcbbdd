// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/planestress/assemble"
	"github.com/cpmech/planestress/errs"
	"github.com/cpmech/planestress/mesh"
)

// SparseCrossover is the mesh size (number of unknown-displacement DOFs)
// above which Partition prefers the sparse path, matching spec.md §9's
// "N < ~2000" dense/sparse guidance.
const SparseCrossover = 2000

// Sparse solves the reduced system with a sparse K_uu assembled directly
// into a gosl/la.Triplet (the same COO accumulator the teacher's elements
// scatter into via AddToKb), factorized by a gosl/la.LinSol backend —
// mirroring fem/domain.go's `doms[i].LinSol = la.GetSolver(sim.LinSol.Name)`
// and fem/main.go's choice of "umfpack" as the default backend.
//
// Unlike Dense, K_uk/K_ku/K_kk are never materialized: the cross terms are
// folded into the RHS and into the reaction recovery by looping element
// contributions directly (standard practice for sparse FEM assembly), which
// is algebraically identical to spec.md §4.4's block form.
func Sparse(m *mesh.Mesh, contribs []assemble.ElementStiffness, c Classification) (U, F []float64, err error) {
	nu, nk := len(c.Du), len(c.Dk)
	n := m.NDof()

	Uk := make([]float64, nk)
	for i, eq := range c.Dk {
		Uk[i] = knownDisplacement(m, eq)
	}

	KuuT := new(la.Triplet)
	KuuT.Init(nu, nu, len(contribs)*36)
	rhs := make([]float64, nu)
	for _, eqI := range c.Du {
		rhs[c.uIndex[eqI]] = knownForce(m, eqI)
	}

	for _, contrib := range contribs {
		for a := 0; a < 3; a++ {
			for alpha := 0; alpha < 2; alpha++ {
				row := 2*contrib.Nodes[a] + alpha
				ri := c.uIndex[row]
				if ri < 0 {
					continue // row is displacement-known: it never appears in K_uu
				}
				for b := 0; b < 3; b++ {
					for beta := 0; beta < 2; beta++ {
						col := 2*contrib.Nodes[b] + beta
						val := contrib.Ke[2*a+alpha][2*b+beta]
						if ci := c.uIndex[col]; ci >= 0 {
							KuuT.Put(ri, ci, val)
						} else {
							// column is displacement-known: fold -K_uk*U_k into rhs
							rhs[ri] -= val * knownDisplacement(m, col)
						}
					}
				}
			}
		}
	}

	solver := la.GetSolver("umfpack")
	defer solver.Free()
	symmetric := true
	verbose := false
	timing := false
	if err := solver.Init(KuuT, symmetric, verbose, timing, "", "", nil); err != nil {
		return nil, nil, &errs.SingularSystem{Row: -1, Tol: 0}
	}
	if err := solver.Fact(); err != nil {
		return nil, nil, &errs.SingularSystem{Row: -1, Tol: 0}
	}
	Uu := make([]float64, nu)
	if err := solver.Solve(Uu, rhs, false); err != nil {
		return nil, nil, &errs.SingularSystem{Row: -1, Tol: 0}
	}

	U = make([]float64, n)
	for i, eq := range c.Du {
		U[eq] = Uu[i]
	}
	for i, eq := range c.Dk {
		U[eq] = Uk[i]
	}

	// F = K * U via per-element ke*q_e assembly: recovers both the
	// originally-prescribed F_u (as a consistency echo) and the reactions
	// F_k, in one pass, per spec.md §4.4 Step 2.
	F = make([]float64, n)
	for _, contrib := range contribs {
		var q [6]float64
		for a := 0; a < 3; a++ {
			q[2*a] = U[2*contrib.Nodes[a]]
			q[2*a+1] = U[2*contrib.Nodes[a]+1]
		}
		for a := 0; a < 3; a++ {
			for alpha := 0; alpha < 2; alpha++ {
				row := 2*contrib.Nodes[a] + alpha
				var s float64
				for k := 0; k < 6; k++ {
					s += contrib.Ke[2*a+alpha][k] * q[k]
				}
				F[row] += s
			}
		}
	}
	return U, F, nil
}
