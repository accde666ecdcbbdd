// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh holds the passive data model consumed by the FEA core:
// nodes with per-DOF boundary state, and constant-strain-triangle
// elements referencing them by index.
package mesh

import (
	"math"

	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/planestress/errs"
)

// Dof identifies one of the two planar degrees of freedom of a node.
type Dof int

const (
	Ux Dof = 0
	Uy Dof = 1
)

// Slot holds the boundary state of a single DOF. Exactly one of UKnown and
// FKnown must be non-nil once the boundary binder has run; both nil or both
// set is an ill-posed model (errs.IllPosedBoundary).
type Slot struct {
	UKnown *float64 // prescribed displacement, or nil if unknown
	FKnown *float64 // prescribed force, or nil if unknown
}

// IsBound reports whether exactly one of UKnown/FKnown is set.
func (s Slot) IsBound() bool {
	return (s.UKnown == nil) != (s.FKnown == nil)
}

// Node is a point in the plane with per-DOF boundary state. Its index in
// Mesh.Nodes is its stable identity.
type Node struct {
	X, Y  float64
	Slots [2]Slot // indexed by Dof
}

// Eq returns the global equation number (row/column in K) for the given DOF
// of the node at index id: node i occupies rows 2i (x) and 2i+1 (y).
func Eq(id int, d Dof) int { return 2*id + int(d) }

// Element is a constant-strain triangle: an ordered triple of distinct node
// indices into the owning Mesh's Nodes slice.
type Element struct {
	N1, N2, N3 int
}

// Nodes returns the element's three node indices in order.
func (e Element) Nodes() [3]int { return [3]int{e.N1, e.N2, e.N3} }

// Mesh is the immutable geometric input to the pipeline: an ordered node
// list and an ordered element list. Index in each slice is identity.
type Mesh struct {
	Nodes    []Node
	Elements []Element
}

// NDof returns M = 2*N, the total number of global degrees of freedom.
func (m *Mesh) NDof() int { return 2 * len(m.Nodes) }

// Source is the interface an external mesher implements to hand a
// triangulation to the core. The core never invokes a mesher itself; it only
// consumes whatever satisfies this interface.
type Source interface {
	// GenerateMesh returns an ordered node-coordinate list and an ordered
	// triangle connectivity list, both zero-based.
	GenerateMesh() (nodes [][2]float64, elements [][3]int, err error)
}

// FromSource builds a Mesh from anything implementing Source, running
// Validate before returning it.
func FromSource(src Source) (*Mesh, error) {
	nodes, elements, err := src.GenerateMesh()
	if err != nil {
		return nil, err
	}
	m := &Mesh{
		Nodes:    make([]Node, len(nodes)),
		Elements: make([]Element, len(elements)),
	}
	for i, p := range nodes {
		m.Nodes[i] = Node{X: p[0], Y: p[1]}
	}
	for i, e := range elements {
		m.Elements[i] = Element{N1: e[0], N2: e[1], N3: e[2]}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// degenerateAreaFrac is the fraction of the mesh's bounding-box area below
// which a triangle is considered degenerate, per spec: "1e-12 of the
// bounding-box area".
const degenerateAreaFrac = 1e-12

// Validate checks index-range and non-degeneracy invariants on every
// element. It does not touch boundary state (that is the binder's job).
func (m *Mesh) Validate() error {
	n := len(m.Nodes)
	bboxArea := m.boundingBoxArea()
	tol := degenerateAreaFrac * bboxArea
	if tol <= 0 {
		tol = 1e-12
	}
	for eid, el := range m.Elements {
		corners := el.Nodes()
		for c, nid := range corners {
			if nid < 0 || nid >= n {
				return &errs.IndexOutOfRange{ElemID: eid, Corner: c, NodeID: nid, N: n}
			}
		}
		area := m.SignedArea2(el)
		if math.Abs(area)/2 < tol {
			return &errs.DegenerateElement{ElemID: eid, Area: math.Abs(area) / 2, Tol: tol}
		}
	}
	return nil
}

// SignedArea2 returns 2*A_signed for the element, per spec.md §4.2:
// x1(y2-y3) + x2(y3-y1) + x3(y1-y2). Sign encodes winding.
func (m *Mesh) SignedArea2(e Element) float64 {
	a, b, c := m.Nodes[e.N1], m.Nodes[e.N2], m.Nodes[e.N3]
	return a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y)
}

// boundingBoxArea tracks the mesh's (xmin,xmax,ymin,ymax) the same way
// fem/output.go tracks a domain's Xmin/Xmax/Ymin/Ymax: a running utl.Min/
// utl.Max fold over every vertex.
func (m *Mesh) boundingBoxArea() float64 {
	if len(m.Nodes) == 0 {
		return 0
	}
	xmin, xmax := m.Nodes[0].X, m.Nodes[0].X
	ymin, ymax := m.Nodes[0].Y, m.Nodes[0].Y
	for _, n := range m.Nodes[1:] {
		xmin, xmax = utl.Min(xmin, n.X), utl.Max(xmax, n.X)
		ymin, ymax = utl.Min(ymin, n.Y), utl.Max(ymax, n.Y)
	}
	return (xmax - xmin) * (ymax - ymin)
}
