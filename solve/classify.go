// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solve implements the partition-and-solve step of spec.md §4.4:
// classify DOFs into displacement-known (D_k) and force-known (D_u) sets,
// solve the reduced system for the unknown displacements, then recover
// reaction forces by direct matrix-vector multiplication.
package solve

import "github.com/cpmech/planestress/mesh"

// Classification partitions the M global DOFs into D_u (displacement
// unknown, force known) and D_k (displacement known) index sets, per
// spec.md §4.4. By the boundary binder's invariant (§4.1), every DOF is in
// exactly one of the two sets.
type Classification struct {
	Du []int // global DOF indices with displacement unknown
	Dk []int // global DOF indices with displacement known
	// uIndex/kIndex map a global DOF to its position within Du/Dk, or -1.
	uIndex, kIndex []int
}

// Classify builds a Classification from the mesh's bound node state.
func Classify(m *mesh.Mesh) Classification {
	n := m.NDof()
	c := Classification{
		uIndex: make([]int, n),
		kIndex: make([]int, n),
	}
	for i := range c.uIndex {
		c.uIndex[i] = -1
		c.kIndex[i] = -1
	}
	for nid := range m.Nodes {
		nd := &m.Nodes[nid]
		for axis := 0; axis < 2; axis++ {
			eq := mesh.Eq(nid, mesh.Dof(axis))
			if nd.Slots[axis].UKnown != nil {
				c.kIndex[eq] = len(c.Dk)
				c.Dk = append(c.Dk, eq)
			} else {
				c.uIndex[eq] = len(c.Du)
				c.Du = append(c.Du, eq)
			}
		}
	}
	return c
}

// knownDisplacement returns the node's prescribed value for the given DOF
// (0.0 if the DOF is not displacement-known — callers only pass DOFs from
// Dk, as 0.0 is not a sentinel).
func knownDisplacement(m *mesh.Mesh, eq int) float64 {
	nid, axis := eq/2, eq%2
	v := m.Nodes[nid].Slots[axis].UKnown
	if v == nil {
		return 0
	}
	return *v
}

// knownForce returns the node's prescribed external force for the given
// DOF, or 0 if the DOF is displacement-known (no applied-force meaning).
func knownForce(m *mesh.Mesh, eq int) float64 {
	nid, axis := eq/2, eq%2
	v := m.Nodes[nid].Slots[axis].FKnown
	if v == nil {
		return 0
	}
	return *v
}
