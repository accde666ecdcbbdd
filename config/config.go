// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config decodes the JSON scene document the CLI demo (and any
// other caller outside the external mesher) uses to drive the pipeline:
// material scalars, boundary rules, and — since this module has no real
// mesher of its own — a literal node/element list standing in for the
// out-of-scope "external mesher" collaborator of spec.md §1.
//
// The struct-tag-decoded-JSON idiom mirrors inp/mat.go and inp/sim.go's
// Material/Data structs in the teacher project.
package config

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/planestress/bc"
	"github.com/cpmech/planestress/cst"
	"github.com/cpmech/planestress/mesh"
)

// Scene is the top-level JSON document.
type Scene struct {
	Material MaterialInput `json:"material"`
	Nodes    [][2]float64  `json:"nodes"`    // ordered (x,y) pairs
	Elements [][3]int      `json:"elements"` // ordered (n1,n2,n3) triples
	Rules    []RuleInput   `json:"rules"`    // boundary rules, in declaration order
}

// MaterialInput mirrors cst.Material with JSON tags; PlaneStrain selects
// cst.PlaneStrain instead of the default cst.PlaneStress.
type MaterialInput struct {
	E           float64 `json:"E"`
	Nu          float64 `json:"nu"`
	T           float64 `json:"t"`
	PlaneStrain bool    `json:"plane_strain"`
}

// RuleInput mirrors bc.Rule with JSON tags; bounds omitted (zero value of
// *float64, i.e. the JSON field absent) mean +-infinity, and target fields
// omitted mean "not specified by this rule" (spec.md §3).
type RuleInput struct {
	XMin *float64 `json:"x_min,omitempty"`
	XMax *float64 `json:"x_max,omitempty"`
	YMin *float64 `json:"y_min,omitempty"`
	YMax *float64 `json:"y_max,omitempty"`
	Ux   *float64 `json:"ux,omitempty"`
	Uy   *float64 `json:"uy,omitempty"`
	Fx   *float64 `json:"fx,omitempty"`
	Fy   *float64 `json:"fy,omitempty"`
}

// Load decodes a Scene from raw JSON bytes.
func Load(data []byte) (*Scene, error) {
	var sc Scene
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, chk.Err("cannot parse scene JSON: %v", err)
	}
	return &sc, nil
}

// Mesh builds a mesh.Mesh from the scene's literal node/element lists (the
// out-of-scope mesher's output, as consumed via spec.md §6's input-side
// contract).
func (sc *Scene) Mesh() *mesh.Mesh {
	m := &mesh.Mesh{
		Nodes:    make([]mesh.Node, len(sc.Nodes)),
		Elements: make([]mesh.Element, len(sc.Elements)),
	}
	for i, p := range sc.Nodes {
		m.Nodes[i] = mesh.Node{X: p[0], Y: p[1]}
	}
	for i, e := range sc.Elements {
		m.Elements[i] = mesh.Element{N1: e[0], N2: e[1], N3: e[2]}
	}
	return m
}

// Material converts MaterialInput into a cst.Material.
func (sc *Scene) Material() cst.Material {
	var law cst.MaterialLaw = cst.PlaneStress{}
	if sc.Material.PlaneStrain {
		law = cst.PlaneStrain{}
	}
	return cst.Material{E: sc.Material.E, Nu: sc.Material.Nu, T: sc.Material.T, Law: law}
}

// Rules converts RuleInput entries into bc.Rule, in declaration order.
func (sc *Scene) Rules() []bc.Rule {
	out := make([]bc.Rule, len(sc.Rules))
	for i, ri := range sc.Rules {
		out[i] = bc.Rule{
			XMin: orInf(ri.XMin, -1),
			XMax: orInf(ri.XMax, +1),
			YMin: orInf(ri.YMin, -1),
			YMax: orInf(ri.YMax, +1),
			Target: bc.Target{
				Ux: optVal(ri.Ux),
				Uy: optVal(ri.Uy),
				Fx: optVal(ri.Fx),
				Fy: optVal(ri.Fy),
			},
		}
	}
	return out
}

func orInf(v *float64, sign float64) float64 {
	if v == nil {
		return math.Inf(int(sign))
	}
	return *v
}

// optVal converts an optional JSON float into a fun.Func target, or nil if
// the field was absent — mirroring bc.Val's fun.Cte wrapping.
func optVal(v *float64) fun.Func {
	if v == nil {
		return nil
	}
	return bc.Val(*v)
}
