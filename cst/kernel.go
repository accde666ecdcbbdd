// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cst

import (
	"math"

	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/planestress/errs"
	"github.com/cpmech/planestress/mesh"
)

// degenerateAreaFrac mirrors mesh.degenerateAreaFrac; kept local since the
// kernel must be able to reject a degenerate triangle even when called
// directly (outside of mesh.Validate), e.g. from tests exercising a single
// element.
const degenerateAreaFrac = 1e-12

// Coords is the three (x,y) corner positions of a triangle, in the same
// order as its node indices.
type Coords [3][2]float64

// Kernel computes per-element quantities for one constant-strain triangle:
// area, the B matrix, and the stiffness k_e = Bᵀ·D·B·t·A.
type Kernel struct {
	Mat Material
}

// Result bundles everything Stiffness computes so stress recovery
// (package stress) can reuse B and D without recomputing them.
type Result struct {
	ElemID   int
	Area     float64     // |2*A_signed|/2
	Bu       [3][6]float64 // un-normalized B (see Numerical note below)
	TwoA     float64     // signed 2*A, carries winding
	D        [3][3]float64
	Stiff    [6][6]float64 // k_e, symmetric 6x6
}

// Stiffness computes the element stiffness matrix for the triangle with the
// given corner coordinates, per spec.md §4.2.
//
// Numerical note: 1/(2A) is not precomputed and multiplied into B before
// forming Bᵀ·D·B; instead the un-normalized matrix Bu (with the 1/(2A)
// factor omitted) is used, and the 1/(4A²) factor is fused into the outer
// product: k_e = (1/(4A²))·Buᵀ·D·Bu·t·A, to preserve accuracy on small-area
// elements.
func (k Kernel) Stiffness(elemID int, c Coords) (Result, error) {
	x1, y1 := c[0][0], c[0][1]
	x2, y2 := c[1][0], c[1][1]
	x3, y3 := c[2][0], c[2][1]

	twoA := x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2)
	area := math.Abs(twoA) / 2
	tol := degenerateAreaFrac * boundingBoxArea(c)
	if tol <= 0 {
		tol = 1e-12
	}
	if area < tol {
		return Result{}, &errs.DegenerateElement{ElemID: elemID, Area: area, Tol: tol}
	}

	y23, y31, y12 := y2-y3, y3-y1, y1-y2
	x32, x13, x21 := x3-x2, x1-x3, x2-x1

	var bu [3][6]float64
	bu[0] = [6]float64{y23, 0, y31, 0, y12, 0}
	bu[1] = [6]float64{0, x32, 0, x13, 0, x21}
	bu[2] = [6]float64{x32, y23, x13, y31, x21, y12}

	D := k.Mat.law().D(k.Mat.E, k.Mat.Nu)

	// k_e = (1/(4A^2)) * Bu^T * D * Bu * t * area
	coef := k.Mat.T * area / (4 * area * area)

	var DBu [3][6]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 6; j++ {
			var s float64
			for m := 0; m < 3; m++ {
				s += D[i][m] * bu[m][j]
			}
			DBu[i][j] = s
		}
	}

	var ke [6][6]float64
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			var s float64
			for m := 0; m < 3; m++ {
				s += bu[m][i] * DBu[m][j]
			}
			ke[i][j] = coef * s
		}
	}

	return Result{
		ElemID: elemID,
		Area:   area,
		Bu:     bu,
		TwoA:   twoA,
		D:      D,
		Stiff:  ke,
	}, nil
}

// B returns the normalized strain-displacement matrix (1/(2A)) * Bu.
func (r Result) B() [3][6]float64 {
	var b [3][6]float64
	inv2A := 1 / r.TwoA
	for i := 0; i < 3; i++ {
		for j := 0; j < 6; j++ {
			b[i][j] = r.Bu[i][j] * inv2A
		}
	}
	return b
}

func boundingBoxArea(c Coords) float64 {
	xmin, xmax := c[0][0], c[0][0]
	ymin, ymax := c[0][1], c[0][1]
	for _, p := range c[1:] {
		xmin, xmax = utl.Min(xmin, p[0]), utl.Max(xmax, p[0])
		ymin, ymax = utl.Min(ymin, p[1]), utl.Max(ymax, p[1])
	}
	return (xmax - xmin) * (ymax - ymin)
}

// KernelForElement is a convenience used by the assembler: builds the
// Coords for a mesh element and runs Stiffness.
func KernelForElement(mat Material, m *mesh.Mesh, elemID int) (Result, error) {
	el := m.Elements[elemID]
	corners := el.Nodes()
	var c Coords
	for i, nid := range corners {
		c[i] = [2]float64{m.Nodes[nid].X, m.Nodes[nid].Y}
	}
	return Kernel{Mat: mat}.Stiffness(elemID, c)
}
