// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cst implements the constant-strain-triangle element kernel:
// the material matrix D, the strain-displacement matrix B, and the
// element stiffness k_e = Bᵀ·D·B·t·A under the plane-stress assumption.
package cst

import (
	"github.com/cpmech/planestress/errs"
)

// MaterialLaw builds the 3x3 elasticity matrix D relating stress to strain,
// σ = D·ε, for a given (E, ν). Plane-stress is the only law spec.md's I/O
// contract requires; plane-strain is implemented as the documented
// extensibility point noted in spec.md §9 ("adding plane-strain is a matter
// of swapping D") but is not wired as a pipeline default.
type MaterialLaw interface {
	D(E, nu float64) [3][3]float64
}

// PlaneStress is the plane-stress elasticity law of spec.md §4.2.
type PlaneStress struct{}

func (PlaneStress) D(E, nu float64) [3][3]float64 {
	c := E / (1 - nu*nu)
	return [3][3]float64{
		{c * 1, c * nu, 0},
		{c * nu, c * 1, 0},
		{0, 0, c * (1 - nu) / 2},
	}
}

// PlaneStrain is the plane-strain elasticity law noted in spec.md §9.
type PlaneStrain struct{}

func (PlaneStrain) D(E, nu float64) [3][3]float64 {
	c := E / ((1 + nu) * (1 - 2*nu))
	return [3][3]float64{
		{c * (1 - nu), c * nu, 0},
		{c * nu, c * (1 - nu), 0},
		{0, 0, c * (1 - 2*nu) / 2},
	}
}

// Material holds the global, constant material parameters and the
// elasticity law used to build D. Validate enforces spec.md §7's
// InvalidMaterial checks.
type Material struct {
	E   float64 // Young's modulus, > 0
	Nu  float64 // Poisson ratio, in (-1, 0.5)
	T   float64 // thickness, > 0
	Law MaterialLaw
}

// Validate checks E > 0, t > 0, and nu in (-1, 0.5).
func (m Material) Validate() error {
	if !(m.E > 0) {
		return &errs.InvalidMaterial{Field: "E", Value: m.E}
	}
	if !(m.T > 0) {
		return &errs.InvalidMaterial{Field: "t", Value: m.T}
	}
	if !(m.Nu > -1 && m.Nu < 0.5) {
		return &errs.InvalidMaterial{Field: "nu", Value: m.Nu}
	}
	return nil
}

// law returns m.Law, defaulting to PlaneStress per spec.md's I/O contract.
func (m Material) law() MaterialLaw {
	if m.Law == nil {
		return PlaneStress{}
	}
	return m.Law
}
