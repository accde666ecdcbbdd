// Copyright 2026 The Planestress Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report is the output-stage collaborator SPEC_FULL.md §6
// describes as mirroring mesh.Source: the core produces a fea.Report and a
// caller hands it to whatever Sink it wires in, so the core never imports a
// concrete serializer itself.
package report

import (
	"io"
	"text/tabwriter"

	gio "github.com/cpmech/gosl/io"
	"github.com/cpmech/planestress/fea"
)

// Sink is the interface a caller implements to consume a solved fea.Report
// (print it, write it to a file, ship it over the wire, ...). The core
// pipeline (package fea) never depends on Sink; only callers that want to
// report a Report do.
type Sink interface {
	WriteReport(rep *fea.Report) error
}

// TableWriter is the reference Sink: the node/element tables of spec.md §6,
// tab-aligned via text/tabwriter, the same layout cmd/planestress used to
// print directly against the concrete fea.Report.
type TableWriter struct {
	W io.Writer
}

// WriteReport implements Sink.
func (t TableWriter) WriteReport(rep *fea.Report) error {
	w := tabwriter.NewWriter(t.W, 0, 2, 2, ' ', 0)

	gio.Ff(w, "Node table:\n")
	fmtRow(w, "id", "x", "y", "ux", "uy", "fx", "fy")
	for _, n := range rep.Nodes {
		fmtRow(w, n.ID, n.X, n.Y, n.Ux, n.Uy, n.Fx, n.Fy)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	gio.Ff(w, "\nElement table:\n")
	fmtRow(w, "id", "n1", "n2", "n3", "sx", "sy", "sxy")
	for _, e := range rep.Elements {
		fmtRow(w, e.ID, e.N1, e.N2, e.N3, e.Sx, e.Sy, e.Sxy)
	}
	return w.Flush()
}

func fmtRow(w *tabwriter.Writer, vals ...interface{}) {
	for i, v := range vals {
		if i > 0 {
			gio.Ff(w, "\t")
		}
		gio.Ff(w, "%v", v)
	}
	gio.Ff(w, "\n")
}
