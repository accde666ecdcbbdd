// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const sampleScene = `{
	"material": {"E": 1e9, "nu": 0.3, "t": 1.0},
	"nodes": [[0,0],[1,0],[0,1]],
	"elements": [[0,1,2]],
	"rules": [
		{"x_max": 0.1, "y_max": 0.1, "ux": 0, "uy": 0},
		{"x_min": 0.9, "fx": 1e6, "fy": 0}
	]
}`

func Test_config01_loadAndConvert(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config01: decode a scene and convert to mesh/material/rules")

	sc, err := Load([]byte(sampleScene))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if sc.Material.E != 1e9 || sc.Material.Nu != 0.3 || sc.Material.T != 1.0 {
		tst.Errorf("unexpected material: %+v", sc.Material)
	}
	if len(sc.Nodes) != 3 || len(sc.Elements) != 1 || len(sc.Rules) != 2 {
		tst.Fatalf("unexpected scene shape: %+v", sc)
	}

	m := sc.Mesh()
	if err := m.Validate(); err != nil {
		tst.Fatalf("unexpected mesh validation error: %v", err)
	}

	mat := sc.Material()
	if err := mat.Validate(); err != nil {
		tst.Fatalf("unexpected material validation error: %v", err)
	}

	rules := sc.Rules()
	if len(rules) != 2 {
		tst.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].Target.Ux == nil || rules[0].Target.Ux.F(0, nil) != 0 {
		tst.Errorf("rule 0: expected ux=0")
	}
	if rules[1].Target.Fx == nil || rules[1].Target.Fx.F(0, nil) != 1e6 {
		tst.Errorf("rule 1: expected fx=1e6")
	}
	// x_min of rule 0 was omitted -> -infinity default
	if !math.IsInf(rules[0].XMin, -1) {
		tst.Errorf("rule 0: expected XMin=-inf, got %g", rules[0].XMin)
	}
}

func Test_config02_invalidJSON(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config02: malformed JSON returns an error, not a panic")

	_, err := Load([]byte(`{not json`))
	if err == nil {
		tst.Fatalf("expected an error for malformed JSON, got nil")
	}
}
