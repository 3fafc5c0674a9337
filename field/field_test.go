// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/curlfem/dofs"
	"github.com/cpmech/curlfem/geom"
	"github.com/cpmech/curlfem/mesh"
	"github.com/cpmech/curlfem/shp"
	"github.com/cpmech/gosl/chk"
)

func unitCellDomain(tst *testing.T) *dofs.Domain {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	defs := []mesh.ElementDef{{Materials: mesh.DefaultMaterials(), NodeIDs: [4]int{0, 1, 2, 3}}}
	m, err := mesh.NewMeshFromElements(points, defs)
	if err != nil {
		tst.Fatalf("construction failed: %v", err)
	}
	if err := m.SetGlobalExpansionOrders(2, 2); err != nil {
		tst.Fatalf("p-refinement failed: %v", err)
	}
	m.SetEdgeActivation()
	return dofs.NewDomain(m)
}

func Test_field01(tst *testing.T) {

	chk.PrintTitle("field01: reconstruction rejects a mismatched eigenvector length")

	d := unitCellDomain(tst)
	f := NewField(d, 3, 3)
	if len(f.Leaves) != 1 {
		tst.Fatalf("expected 1 leaf grid, got %d", len(f.Leaves))
	}

	err := f.Reconstruct(make([]float64, len(d.DoFs)+1), shp.KOL)
	if err == nil {
		tst.Fatalf("expected a MismatchedSolutionSize error")
	}
	uerr, ok := err.(*UniformFieldError)
	if !ok || uerr.Kind != MismatchedSolutionSize {
		tst.Fatalf("expected a MismatchedSolutionSize error, got %v", err)
	}
}

func Test_field02(tst *testing.T) {

	chk.PrintTitle("field02: reconstruction, derived magnitude, and a VTK dump all succeed")

	d := unitCellDomain(tst)
	f := NewField(d, 3, 3)

	eigenvector := make([]float64, len(d.DoFs))
	for i := range eigenvector {
		eigenvector[i] = 1.0
	}
	if err := f.Reconstruct(eigenvector, shp.KOL); err != nil {
		tst.Fatalf("reconstruction failed: %v", err)
	}

	if err := f.Magnitude("Mag", "X", "Y"); err != nil {
		tst.Fatalf("magnitude failed: %v", err)
	}
	leaf := f.Leaves[0]
	for m := 0; m < f.NX; m++ {
		for n := 0; n < f.NY; n++ {
			want := leaf.Quantities["X"][m][n]*leaf.Quantities["X"][m][n] + leaf.Quantities["Y"][m][n]*leaf.Quantities["Y"][m][n]
			got := leaf.Quantities["Mag"][m][n] * leaf.Quantities["Mag"][m][n]
			if diff := got - want; diff > 1e-9 || diff < -1e-9 {
				tst.Errorf("Mag^2 mismatch at (%d,%d): want %g, got %g", m, n, want, got)
			}
		}
	}

	if err := f.Abs("AbsX", "Missing"); err == nil {
		tst.Fatalf("expected a MissingQuantity error")
	} else if uerr, ok := err.(*UniformFieldError); !ok || uerr.Kind != MissingQuantity {
		tst.Fatalf("expected a MissingQuantity error, got %v", err)
	}

	var buf bytes.Buffer
	if err := f.WriteVTK(&buf, "field02"); err != nil {
		tst.Fatalf("VTK dump failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "# vtk DataFile Version 3.0\n") {
		tst.Errorf("expected a legacy VTK header, got %q", out[:40])
	}
	if !strings.Contains(out, "CELL_TYPES 4\n") {
		tst.Errorf("expected 4 quad cells for a 3x3 grid, got:\n%s", out)
	}
	if !strings.Contains(out, "SCALARS Mag double 1\n") {
		tst.Errorf("expected a Mag scalar block in the VTK dump")
	}
}

func Test_field03(tst *testing.T) {

	chk.PrintTitle("field03: Add, Sub, Scale and Dot derive correctly from reconstructed components")

	d := unitCellDomain(tst)
	f := NewField(d, 3, 3)

	eigenvector := make([]float64, len(d.DoFs))
	for i := range eigenvector {
		eigenvector[i] = 1.0
	}
	if err := f.Reconstruct(eigenvector, shp.KOL); err != nil {
		tst.Fatalf("reconstruction failed: %v", err)
	}

	if err := f.Add("Sum", "X", "Y"); err != nil {
		tst.Fatalf("Add failed: %v", err)
	}
	if err := f.Sub("Diff", "X", "Y"); err != nil {
		tst.Fatalf("Sub failed: %v", err)
	}
	if err := f.Scale("DoubleX", "X", 2.0); err != nil {
		tst.Fatalf("Scale failed: %v", err)
	}
	if err := f.Dot("SelfDot", "X", "Y", "X", "Y"); err != nil {
		tst.Fatalf("Dot failed: %v", err)
	}

	leaf := f.Leaves[0]
	for m := 0; m < f.NX; m++ {
		for n := 0; n < f.NY; n++ {
			x := leaf.Quantities["X"][m][n]
			y := leaf.Quantities["Y"][m][n]

			if got, want := leaf.Quantities["Sum"][m][n], x+y; got != want {
				tst.Errorf("Sum mismatch at (%d,%d): want %g, got %g", m, n, want, got)
			}
			if got, want := leaf.Quantities["Diff"][m][n], x-y; got != want {
				tst.Errorf("Diff mismatch at (%d,%d): want %g, got %g", m, n, want, got)
			}
			if got, want := leaf.Quantities["DoubleX"][m][n], 2.0*x; got != want {
				tst.Errorf("DoubleX mismatch at (%d,%d): want %g, got %g", m, n, want, got)
			}
			if got, want := leaf.Quantities["SelfDot"][m][n], x*x+y*y; got != want {
				tst.Errorf("SelfDot mismatch at (%d,%d): want %g, got %g", m, n, want, got)
			}
		}
	}

	if _, ok := leaf.Quantities["SelfDot@dotX"]; ok {
		tst.Errorf("Dot should not leave its intermediate products behind")
	}
	if _, ok := leaf.Quantities["SelfDot@dotY"]; ok {
		tst.Errorf("Dot should not leave its intermediate products behind")
	}
}
