// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assemble

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/planestress/cst"
	"github.com/cpmech/planestress/mesh"
)

func maxAbsDense(K [][]float64) float64 {
	max := 0.0
	for _, row := range K {
		for _, v := range row {
			if a := math.Abs(v); a > max {
				max = a
			}
		}
	}
	return max
}

func twoElemSquare() *mesh.Mesh {
	return &mesh.Mesh{
		Nodes: []mesh.Node{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
		Elements: []mesh.Element{
			{N1: 0, N2: 1, N3: 2},
			{N1: 0, N2: 2, N3: 3},
		},
	}
}

func Test_assemble01_globalSymmetry(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assemble01: global K is symmetric")

	m := twoElemSquare()
	mat := cst.Material{E: 1e9, Nu: 0.3, T: 1}
	asm := Assembler{}
	results, err := asm.Build(m, mat)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	stiff := make([][6][6]float64, len(results))
	for i, r := range results {
		stiff[i] = r.Stiff
	}
	K := Dense(m, ContributionsFromStiff(m, stiff))

	n := m.NDof()
	KT := make([][]float64, n)
	for i := range KT {
		KT[i] = make([]float64, n)
		for j := range KT[i] {
			KT[i][j] = K[j][i]
		}
	}
	chk.Deep2(tst, "K == K^T", 1e-10*maxAbsDense(K), K, KT)
}

func Test_assemble02_parallelMatchesSerial(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assemble02: parallel assembly matches serial assembly")

	m := twoElemSquare()
	mat := cst.Material{E: 1e9, Nu: 0.3, T: 1}

	rSerial, err := (Assembler{Parallel: false}).Build(m, mat)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	rParallel, err := (Assembler{Parallel: true}).Build(m, mat)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for e := range rSerial {
		serial := make([][]float64, 6)
		parallel := make([][]float64, 6)
		for i := 0; i < 6; i++ {
			serial[i] = append([]float64(nil), rSerial[e].Stiff[i][:]...)
			parallel[i] = append([]float64(nil), rParallel[e].Stiff[i][:]...)
		}
		chk.Deep2(tst, "serial vs parallel k_e", 1e-12, serial, parallel)
	}
}
