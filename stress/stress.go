// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stress implements the recovery step of spec.md §4.5: for each
// element, ε = B·q_e and σ = D·B·q_e, using solved nodal displacements.
package stress

import (
	"github.com/cpmech/planestress/cst"
	"github.com/cpmech/planestress/mesh"
)

// Triple is a plane-stress state (σ_x, σ_y, τ_xy), or equivalently a plane
// strain state (ε_x, ε_y, γ_xy) depending on context.
type Triple struct {
	X, Y, XY float64
}

// Recover computes stress for every element, in element order, per
// spec.md §4.5 and the output contract ("one stress triple per element
// index"). results must be in the same order as m.Elements and produced by
// the same material (as returned by the element kernel during assembly).
func Recover(m *mesh.Mesh, results []cst.Result, U []float64) []Triple {
	out := make([]Triple, len(m.Elements))
	for eid, el := range m.Elements {
		r := results[eid]
		var q [6]float64
		for i, nid := range el.Nodes() {
			q[2*i] = U[2*nid]
			q[2*i+1] = U[2*nid+1]
		}
		b := r.B()
		var eps [3]float64
		for i := 0; i < 3; i++ {
			var s float64
			for j := 0; j < 6; j++ {
				s += b[i][j] * q[j]
			}
			eps[i] = s
		}
		var sig [3]float64
		for i := 0; i < 3; i++ {
			var s float64
			for j := 0; j < 3; j++ {
				s += r.D[i][j] * eps[j]
			}
			sig[i] = s
		}
		out[eid] = Triple{X: sig[0], Y: sig[1], XY: sig[2]}
	}
	return out
}

// Strain computes ε = B·q_e for one element, exposed separately from
// Recover so callers/tests can check the strain-displacement relation in
// isolation (spec.md scenario 2: "verify shear strain matches
// γ_xy = 2(1+ν)/E · τ_xy").
func Strain(r cst.Result, m *mesh.Mesh, el mesh.Element, U []float64) Triple {
	var q [6]float64
	for i, nid := range el.Nodes() {
		q[2*i] = U[2*nid]
		q[2*i+1] = U[2*nid+1]
	}
	b := r.B()
	var eps [3]float64
	for i := 0; i < 3; i++ {
		var s float64
		for j := 0; j < 6; j++ {
			s += b[i][j] * q[j]
		}
		eps[i] = s
	}
	return Triple{X: eps[0], Y: eps[1], XY: eps[2]}
}
