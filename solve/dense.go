// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/planestress/errs"
	"github.com/cpmech/planestress/mesh"
)

// pivotRelTol is the relative tolerance of spec.md §4.4: a factorization
// pivot below 1e-10 * max|diag(K_uu)| is treated as singular.
const pivotRelTol = 1e-10

// Dense solves the reduced system by explicit block extraction, per
// spec.md §4.4's block form and design note (a) ("build a permutation and
// explicit sub-blocks ... easier to reason about, preferred for clarity").
// K is the full dense global stiffness (see assemble.Dense); c is the DOF
// classification. It returns the full U and F vectors (reassembled from the
// known/unknown blocks).
func Dense(m *mesh.Mesh, K [][]float64, c Classification) (U, F []float64, err error) {
	nu, nk := len(c.Du), len(c.Dk)
	n := m.NDof()

	if nu == 0 {
		// every DOF is displacement-known: no system to solve, reactions
		// are a direct K*U_k product (spec.md scenario 2's fully-prescribed
		// boundary, e.g. a pure-strain patch test).
		U = make([]float64, n)
		for _, eq := range c.Dk {
			U[eq] = knownDisplacement(m, eq)
		}
		F = make([]float64, n)
		for _, eqI := range c.Dk {
			var s float64
			for _, eqJ := range c.Dk {
				s += K[eqI][eqJ] * U[eqJ]
			}
			F[eqI] = s
		}
		return U, F, nil
	}

	Kuu := mat.NewSymDense(nu, nil)
	for i := 0; i < nu; i++ {
		for j := i; j < nu; j++ {
			Kuu.SetSym(i, j, K[c.Du[i]][c.Du[j]])
		}
	}

	Uk := make([]float64, nk)
	for i, eq := range c.Dk {
		Uk[i] = knownDisplacement(m, eq)
	}

	// rhs_u = F_u - K_uk * U_k
	rhs := make([]float64, nu)
	for i, eqI := range c.Du {
		rhs[i] = knownForce(m, eqI)
		for j, eqJ := range c.Dk {
			rhs[i] -= K[eqI][eqJ] * Uk[j]
		}
	}

	Uu, serr := solveSPD(Kuu, rhs)
	if serr != nil {
		return nil, nil, serr
	}

	// reassemble full U
	U = make([]float64, n)
	for i, eq := range c.Du {
		U[eq] = Uu[i]
	}
	for i, eq := range c.Dk {
		U[eq] = Uk[i]
	}

	// F_k = K_ku * U_u + K_kk * U_k  (direct matrix-vector product);
	// F_u is just the prescribed forces, echoed back for the full vector.
	F = make([]float64, n)
	for _, eqI := range c.Du {
		F[eqI] = knownForce(m, eqI)
	}
	for _, eqI := range c.Dk {
		var s float64
		for j, eqJ := range c.Du {
			s += K[eqI][eqJ] * Uu[j]
		}
		for j, eqJ := range c.Dk {
			s += K[eqI][eqJ] * Uk[j]
		}
		F[eqI] = s
	}
	return U, F, nil
}

// solveSPD solves a*x = b with Cholesky (preferred, per spec.md §4.4),
// falling back to LU (acceptable per spec.md) if Cholesky fails to
// factorize, and finally reporting errs.SingularSystem if both fail or the
// smallest pivot falls below tolerance.
func solveSPD(a *mat.SymDense, b []float64) ([]float64, error) {
	n := a.SymmetricDim()

	maxDiag := 0.0
	for i := 0; i < n; i++ {
		if d := math.Abs(a.At(i, i)); d > maxDiag {
			maxDiag = d
		}
	}
	tol := pivotRelTol * maxDiag

	var chol mat.Cholesky
	if ok := chol.Factorize(a); ok {
		// the i-th elimination pivot of a = Uᵀ·U is U[i][i]²
		u := chol.RawU()
		for i := 0; i < n; i++ {
			if p := u.At(i, i) * u.At(i, i); p < tol {
				return nil, &errs.SingularSystem{Row: i, Pivot: p, Tol: tol}
			}
		}
		var x mat.VecDense
		if err := chol.SolveVecTo(&x, mat.NewVecDense(n, b)); err == nil {
			return x.RawVector().Data, nil
		}
	}

	// fall back to LU on the dense (non-symmetric-view) matrix
	dense := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dense.Set(i, j, a.At(i, j))
		}
	}
	var lu mat.LU
	lu.Factorize(dense)
	if cond := lu.Cond(); math.IsInf(cond, 1) || cond > 1/tol {
		return nil, &errs.SingularSystem{Row: -1, Pivot: 0, Tol: tol}
	}
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, mat.NewVecDense(n, b)); err != nil {
		return nil, &errs.SingularSystem{Row: -1, Pivot: 0, Tol: tol}
	}
	return x.RawVector().Data, nil
}
