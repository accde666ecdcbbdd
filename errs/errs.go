// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs defines the structured error taxonomy of the FEA pipeline.
//
// Every error aborts the pipeline; there is no recovery. Each type carries
// the offending entity (node id, element id, or DOF index) so a caller can
// print a precise diagnostic instead of a bare message.
package errs

import (
	"github.com/cpmech/gosl/io"
)

// IllPosedBoundary reports a DOF with both or neither of u_known/f_known set
// after the boundary binder ran, or a model without enough displacement
// constraints to remove rigid-body modes.
type IllPosedBoundary struct {
	NodeID int    // node index, or -1 if the failure is global (e.g. rigid-body)
	Axis   int    // 0=x, 1=y, or -1 if not DOF-specific
	Reason string // human-readable cause
}

func (e *IllPosedBoundary) Error() string {
	if e.NodeID < 0 {
		return io.Sf("ill-posed boundary: %s", e.Reason)
	}
	return io.Sf("ill-posed boundary: node %d axis %d: %s", e.NodeID, e.Axis, e.Reason)
}

// DegenerateElement reports a triangle whose signed area is below tolerance.
type DegenerateElement struct {
	ElemID int
	Area   float64
	Tol    float64
}

func (e *DegenerateElement) Error() string {
	return io.Sf("degenerate element %d: area=%.6e below tolerance=%.6e", e.ElemID, e.Area, e.Tol)
}

// SingularSystem reports a zero or near-zero pivot found during factorization
// of the reduced stiffness matrix K_uu.
type SingularSystem struct {
	Row   int // row/DOF index of the offending pivot, or -1 if unknown
	Pivot float64
	Tol   float64
}

func (e *SingularSystem) Error() string {
	if e.Row < 0 {
		return io.Sf("singular system: factorization failed (pivot below tolerance=%.6e)", e.Tol)
	}
	return io.Sf("singular system: pivot at row %d = %.6e below tolerance=%.6e", e.Row, e.Pivot, e.Tol)
}

// InvalidMaterial reports an out-of-range material scalar.
type InvalidMaterial struct {
	Field string // "E", "nu", or "t"
	Value float64
}

func (e *InvalidMaterial) Error() string {
	return io.Sf("invalid material: %s=%g", e.Field, e.Value)
}

// IndexOutOfRange reports an element referencing a node index >= N.
type IndexOutOfRange struct {
	ElemID int
	Corner int // 0, 1, or 2
	NodeID int
	N      int // number of nodes in the mesh
}

func (e *IndexOutOfRange) Error() string {
	return io.Sf("index out of range: element %d corner %d references node %d, but mesh has %d nodes",
		e.ElemID, e.Corner, e.NodeID, e.N)
}
