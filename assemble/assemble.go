// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assemble implements the global assembler of spec.md §4.3:
// evaluating each element's 6x6 local stiffness, ready for the scatter into
// the global 2N x 2N stiffness matrix that solve.Partition performs against
// its dense (Dense, this package) or sparse (solve.Sparse, a reduced
// gosl/la.Triplet) system, mirroring the split between the teacher's
// AddToKb(Kb *la.Triplet, ...) scatter and its dense-solve callers.
package assemble

import (
	"runtime"
	"sync"

	"github.com/cpmech/planestress/cst"
	"github.com/cpmech/planestress/mesh"
)

// ElementStiffness pairs an element's node indices with its local 6x6
// stiffness, the unit the assembler scatters.
type ElementStiffness struct {
	ElemID int
	Nodes  [3]int
	Ke     [6][6]float64
}

// Assembler evaluates the CST kernel for every element of a mesh.
type Assembler struct {
	// Parallel enables the goroutine-pool element-kernel evaluation path of
	// spec.md §5 strategy (a): each worker claims a disjoint slice index, so
	// results needs no locking; scatter into K remains the caller's job and
	// stays single-threaded regardless of Parallel.
	Parallel bool
}

// footprint maps the 3x3 node-pair x 2x2 axis-pair scatter of spec.md §4.3
// into flat (a,alpha) -> local-DOF-index pairs, once, since it never
// changes across elements. Shared with Dense's scatter loop.
var footprint = [6][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}

// Build evaluates the CST kernel for every element of m, in element order,
// for solve.Partition to scatter (via Dense or solve.Sparse) and for stress
// recovery to reuse.
func (a Assembler) Build(m *mesh.Mesh, mat cst.Material) ([]cst.Result, error) {
	results := make([]cst.Result, len(m.Elements))

	if a.Parallel && len(m.Elements) > 1 {
		if err := a.buildParallel(m, mat, results); err != nil {
			return nil, err
		}
	} else {
		for eid := range m.Elements {
			r, err := cst.KernelForElement(mat, m, eid)
			if err != nil {
				return nil, err
			}
			results[eid] = r
		}
	}
	return results, nil
}

// buildParallel evaluates the element kernel across a worker pool sized by
// GOMAXPROCS; each worker only writes to the disjoint slice indices it
// claims, so no synchronization is needed on `results` itself (the scatter
// into K happens later and single-threaded, in Dense or solve.Sparse,
// matching spec.md §5's note that assembly synchronization can simply be
// skipped by keeping the scatter step serial while parallelizing only kernel
// evaluation).
func (a Assembler) buildParallel(m *mesh.Mesh, mat cst.Material, results []cst.Result) error {
	n := len(m.Elements)
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	type job struct {
		eid int
		err error
	}
	jobs := make(chan int)
	errs := make(chan job, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for eid := range jobs {
				r, err := cst.KernelForElement(mat, m, eid)
				if err != nil {
					errs <- job{eid, err}
					continue
				}
				results[eid] = r
			}
		}()
	}
	for eid := 0; eid < n; eid++ {
		jobs <- eid
	}
	close(jobs)
	wg.Wait()
	close(errs)

	for j := range errs {
		if j.err != nil {
			return j.err
		}
	}
	return nil
}
