// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cst

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/planestress/errs"
)

func Test_material01_validate(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material01: InvalidMaterial checks")

	cases := []Material{
		{E: 0, Nu: 0.3, T: 1},
		{E: -1, Nu: 0.3, T: 1},
		{E: 1, Nu: 0.3, T: 0},
		{E: 1, Nu: 0.5, T: 1},
		{E: 1, Nu: -1, T: 1},
		{E: 1, Nu: 1.0, T: 1},
	}
	for _, c := range cases {
		err := c.Validate()
		if err == nil {
			tst.Errorf("expected InvalidMaterial for %+v, got nil", c)
			continue
		}
		if _, ok := err.(*errs.InvalidMaterial); !ok {
			tst.Errorf("expected *errs.InvalidMaterial, got %T", err)
		}
	}

	ok := Material{E: 200e9, Nu: 0.3, T: 0.01}
	if err := ok.Validate(); err != nil {
		tst.Errorf("unexpected error for valid material: %v", err)
	}
}
