// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galerkin

import (
	"testing"

	"github.com/cpmech/curlfem/dofs"
	"github.com/cpmech/curlfem/geom"
	"github.com/cpmech/curlfem/integral"
	"github.com/cpmech/curlfem/mesh"
	"github.com/cpmech/curlfem/shp"
	"github.com/cpmech/gosl/chk"
)

func Test_galerkin01(tst *testing.T) {

	chk.PrintTitle("galerkin01: assembly on a single Elem yields a symmetric, correctly-sized GEP")

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

	d := dofs.NewDomain(m)
	if len(d.DoFs) == 0 {
		tst.Fatalf("expected at least one DoF")
	}

	gep, err := AssembleGEP(d, shp.KOL, [2]int{0, 0}, integral.L2, integral.CurlCurl)
	if err != nil {
		tst.Fatalf("assembly failed: %v", err)
	}
	if gep.A.Dim != len(d.DoFs) || gep.B.Dim != len(d.DoFs) {
		tst.Fatalf("expected both matrices sized %d x %d, got A=%d B=%d", len(d.DoFs), len(d.DoFs), gep.A.Dim, gep.B.Dim)
	}
	for _, e := range gep.A.UpperEntries() {
		if gep.A.Get(e.Row, e.Col) != gep.A.Get(e.Col, e.Row) {
			tst.Errorf("A is not symmetric at (%d,%d)", e.Row, e.Col)
		}
	}
}

func Test_galerkin02(tst *testing.T) {

	chk.PrintTitle("galerkin02: AssembleGEP rejects an empty dof set")

	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	defs := []mesh.ElementDef{{Materials: mesh.DefaultMaterials(), NodeIDs: [4]int{0, 1, 2, 3}}}
	m, err := mesh.NewMeshFromElements(points, defs)
	if err != nil {
		tst.Fatalf("construction failed: %v", err)
	}
	m.SetEdgeActivation()

	d := dofs.NewDomain(m)
	if len(d.DoFs) != 0 {
		tst.Fatalf("expected zero dofs at the default orders (1,1), got %d", len(d.DoFs))
	}

	_, err = AssembleGEP(d, shp.KOL, [2]int{0, 0}, integral.L2, integral.CurlCurl)
	serr, ok := err.(*SamplingError)
	if !ok || serr.Kind != EmptyDofSet {
		tst.Fatalf("expected EmptyDofSet error, got %v", err)
	}
}

func Test_galerkin03(tst *testing.T) {

	chk.PrintTitle("galerkin03: AssembleGEP rejects a quadrature override too coarse for the mesh order")

	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	defs := []mesh.ElementDef{{Materials: mesh.DefaultMaterials(), NodeIDs: [4]int{0, 1, 2, 3}}}
	m, err := mesh.NewMeshFromElements(points, defs)
	if err != nil {
		tst.Fatalf("construction failed: %v", err)
	}
	if err := m.SetGlobalExpansionOrders(4, 4); err != nil {
		tst.Fatalf("p-refinement failed: %v", err)
	}
	m.SetEdgeActivation()

	d := dofs.NewDomain(m)
	_, err = AssembleGEP(d, shp.KOL, [2]int{1, 1}, integral.L2, integral.CurlCurl)
	serr, ok := err.(*SamplingError)
	if !ok || serr.Kind != InvalidQuadratureSettings {
		tst.Fatalf("expected InvalidQuadratureSettings error, got %v", err)
	}
}
