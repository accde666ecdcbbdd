// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assemble

import "github.com/cpmech/planestress/mesh"

// Dense scatters the same element contributions as Build into a plain dense
// M x M matrix, for the small-mesh partition-solve path (spec.md §9: "dense
// ... suffices" for N < ~2000) and for tests that check global symmetry
// directly (spec.md §8: "Symmetry of K").
func Dense(m *mesh.Mesh, contribs []ElementStiffness) [][]float64 {
	n := m.NDof()
	K := make([][]float64, n)
	for i := range K {
		K[i] = make([]float64, n)
	}
	for _, c := range contribs {
		for _, ra := range footprint {
			a, alpha := ra[0], ra[1]
			row := 2*c.Nodes[a] + alpha
			for _, cb := range footprint {
				b, beta := cb[0], cb[1]
				col := 2*c.Nodes[b] + beta
				K[row][col] += c.Ke[2*a+alpha][2*b+beta]
			}
		}
	}
	return K
}

// ContributionsFromStiff zips element node triples with their stiffness
// matrices, as produced by cst.Result.
func ContributionsFromStiff(m *mesh.Mesh, stiff [][6][6]float64) []ElementStiffness {
	out := make([]ElementStiffness, len(m.Elements))
	for i, el := range m.Elements {
		out[i] = ElementStiffness{ElemID: i, Nodes: el.Nodes(), Ke: stiff[i]}
	}
	return out
}
