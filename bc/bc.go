// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bc implements the boundary binder of spec.md §4.1: applying an
// ordered list of rectangular region rules to mesh nodes, writing per-DOF
// known-displacement / known-force state.
package bc

import (
	"math"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/planestress/errs"
	"github.com/cpmech/planestress/mesh"
)

// Val wraps a constant target value the way fem/essenbcs.go wraps a
// prescribed value as a fun.Func — here evaluated once, since this engine
// has no time axis.
func Val(v float64) fun.Func { return &fun.Cte{C: v} }

// Target holds the (u_x, u_y, f_x, f_y) fields a Rule may set on a node. A
// nil field means "not specified by this rule"; Val wraps a concrete value.
type Target struct {
	Ux, Uy fun.Func // prescribed displacement, x/y
	Fx, Fy fun.Func // prescribed traction/force, x/y
}

// Rule is a rectangular region [XMin,XMax] x [YMin,YMax] (inclusive bounds;
// use math.Inf for an unbounded side) together with a Target. Rules are
// applied in slice order; later rules override earlier rules on the same
// node+DOF+field.
type Rule struct {
	XMin, XMax float64
	YMin, YMax float64
	Target     Target
}

// Contains reports whether (x, y) lies in the rule's region, inclusive.
func (r Rule) Contains(x, y float64) bool {
	return x >= r.XMin && x <= r.XMax && y >= r.YMin && y <= r.YMax
}

// Unbounded returns a Rule region spanning the whole plane, for callers that
// want to set a single target field on every node (e.g. a default zero
// load).
func Unbounded() Rule {
	return Rule{
		XMin: math.Inf(-1), XMax: math.Inf(1),
		YMin: math.Inf(-1), YMax: math.Inf(1),
	}
}

// trace, when non-nil, records which rule index (or -1 for the implicit
// free-node default) last wrote each node/axis/field, to help diagnose
// IllPosedBoundary failures per SPEC_FULL.md §9.4.
type traceEntry struct {
	ruleIdx int
	field   string // "u" or "f"
}

// Binder applies rules to nodes. Set Trace to record per-DOF provenance.
type Binder struct {
	Trace bool
	log   [][2]traceEntry // [nodeID][axis] -> last write, valid only if Trace
}

// Bind writes boundary state into every node of m from rules, in rule
// order, then verifies the §4.1 invariant that every DOF ends up with
// exactly one of u_known/f_known set. Nodes matched by no rule default to
// f_known=0 on both axes (free, zero external load).
func (b *Binder) Bind(m *mesh.Mesh, rules []Rule) error {
	n := len(m.Nodes)
	if b.Trace {
		b.log = make([][2]traceEntry, n)
		for i := range b.log {
			b.log[i] = [2]traceEntry{{-1, ""}, {-1, ""}}
		}
	}

	matched := make([][2]bool, n)
	for ri, r := range rules {
		for ni := range m.Nodes {
			nd := &m.Nodes[ni]
			if !r.Contains(nd.X, nd.Y) {
				continue
			}
			if r.Target.Ux != nil {
				v := r.Target.Ux.F(0, nil)
				nd.Slots[mesh.Ux].UKnown = &v
				nd.Slots[mesh.Ux].FKnown = nil
				matched[ni][mesh.Ux] = true
				b.trace(ni, int(mesh.Ux), ri, "u")
			}
			if r.Target.Fx != nil {
				v := r.Target.Fx.F(0, nil)
				nd.Slots[mesh.Ux].FKnown = &v
				nd.Slots[mesh.Ux].UKnown = nil
				matched[ni][mesh.Ux] = true
				b.trace(ni, int(mesh.Ux), ri, "f")
			}
			if r.Target.Uy != nil {
				v := r.Target.Uy.F(0, nil)
				nd.Slots[mesh.Uy].UKnown = &v
				nd.Slots[mesh.Uy].FKnown = nil
				matched[ni][mesh.Uy] = true
				b.trace(ni, int(mesh.Uy), ri, "u")
			}
			if r.Target.Fy != nil {
				v := r.Target.Fy.F(0, nil)
				nd.Slots[mesh.Uy].FKnown = &v
				nd.Slots[mesh.Uy].UKnown = nil
				matched[ni][mesh.Uy] = true
				b.trace(ni, int(mesh.Uy), ri, "f")
			}
		}
	}

	// default unmatched DOFs to f_known = 0
	zero := 0.0
	for ni := range m.Nodes {
		nd := &m.Nodes[ni]
		for axis := 0; axis < 2; axis++ {
			if !matched[ni][axis] && !nd.Slots[axis].IsBound() {
				z := zero
				nd.Slots[axis].FKnown = &z
				nd.Slots[axis].UKnown = nil
				b.trace(ni, axis, -1, "f")
			}
		}
	}

	// final invariant check
	for ni := range m.Nodes {
		nd := &m.Nodes[ni]
		for axis := 0; axis < 2; axis++ {
			if !nd.Slots[axis].IsBound() {
				reason := "both u_known and f_known are set"
				if nd.Slots[axis].UKnown == nil && nd.Slots[axis].FKnown == nil {
					reason = "neither u_known nor f_known is set"
				}
				return &errs.IllPosedBoundary{NodeID: ni, Axis: axis, Reason: reason}
			}
		}
	}
	return nil
}

func (b *Binder) trace(nodeID, axis, ruleIdx int, field string) {
	if !b.Trace {
		return
	}
	b.log[nodeID][axis] = traceEntry{ruleIdx, field}
}

// TraceFor returns which rule index (or -1 for the implicit default) last
// wrote the given node/axis, and which field kind ("u" or "f") it set. Only
// meaningful if Trace was true during Bind.
func (b *Binder) TraceFor(nodeID int, axis mesh.Dof) (ruleIdx int, field string) {
	e := b.log[nodeID][axis]
	return e.ruleIdx, e.field
}

// Entry is one TraceFor result flattened for bulk consumption (see
// Entries), so a caller does not have to loop node-by-node itself.
type Entry struct {
	NodeID  int
	Axis    mesh.Dof
	RuleIdx int
	Field   string
}

// Entries returns the full trace log, one Entry per node/axis, in node-then-
// axis order. Empty if Trace was false during Bind.
func (b *Binder) Entries() []Entry {
	if !b.Trace {
		return nil
	}
	out := make([]Entry, 0, 2*len(b.log))
	for nodeID, axes := range b.log {
		for axis, e := range axes {
			out = append(out, Entry{NodeID: nodeID, Axis: mesh.Dof(axis), RuleIdx: e.ruleIdx, Field: e.field})
		}
	}
	return out
}
