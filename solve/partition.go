// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"math"

	"github.com/cpmech/planestress/assemble"
	"github.com/cpmech/planestress/cst"
	"github.com/cpmech/planestress/mesh"
)

// Result is the solved global state: nodal displacements and forces
// (reactions folded in), ready for stress recovery.
type Result struct {
	U []float64 // length 2N, full displacement vector
	F []float64 // length 2N, full force vector (applied + reactions)
}

// Partition runs the full partition-and-solve step of spec.md §4.4: classify
// DOFs, solve the reduced system, and recover reactions. It chooses the
// dense (gonum) or sparse (gosl/la) path per spec.md §9's N < ~2000
// guidance, based on the number of unknown-displacement DOFs.
func Partition(m *mesh.Mesh, mat cst.Material, results []cst.Result) (*Result, error) {
	c := Classify(m)

	stiff := make([][6][6]float64, len(results))
	for i, r := range results {
		stiff[i] = r.Stiff
	}
	contribs := assemble.ContributionsFromStiff(m, stiff)

	var U, F []float64
	var err error
	if len(c.Du) > SparseCrossover {
		U, F, err = Sparse(m, contribs, c)
	} else {
		K := assemble.Dense(m, contribs)
		U, F, err = Dense(m, K, c)
	}
	if err != nil {
		return nil, err
	}
	return &Result{U: U, F: F}, nil
}

// CheckEquilibrium verifies K*U - F == 0 in infinity norm, to within
// 1e-8*max(||F||_inf, 1), per spec.md §8. K is recomputed densely from contribs for
// the check (this is a diagnostic, not part of the hot path).
func (r *Result) CheckEquilibrium(m *mesh.Mesh, results []cst.Result) (residual float64, ok bool) {
	stiff := make([][6][6]float64, len(results))
	for i, res := range results {
		stiff[i] = res.Stiff
	}
	contribs := assemble.ContributionsFromStiff(m, stiff)
	K := assemble.Dense(m, contribs)

	n := m.NDof()
	fNorm := 0.0
	for _, f := range r.F {
		fNorm = math.Max(fNorm, math.Abs(f))
	}
	maxRes := 0.0
	for i := 0; i < n; i++ {
		var ku float64
		for j := 0; j < n; j++ {
			ku += K[i][j] * r.U[j]
		}
		res := math.Abs(ku - r.F[i])
		maxRes = math.Max(maxRes, res)
	}
	tol := 1e-8 * math.Max(fNorm, 1)
	return maxRes, maxRes <= tol
}

// CheckReactionBalance verifies that the sum of all forces (applied loads
// plus reactions) is zero componentwise, to within 1e-8*max(max|F|, 1), per
// spec.md §8.
func (r *Result) CheckReactionBalance() (sumX, sumY float64, ok bool) {
	maxF := 0.0
	for _, f := range r.F {
		maxF = math.Max(maxF, math.Abs(f))
	}
	for i := 0; i+1 < len(r.F); i += 2 {
		sumX += r.F[i]
		sumY += r.F[i+1]
	}
	tol := 1e-8 * math.Max(maxF, 1)
	ok = math.Abs(sumX) <= tol && math.Abs(sumY) <= tol
	return
}
