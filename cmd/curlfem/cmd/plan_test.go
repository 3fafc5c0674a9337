// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/curlfem/geom"
	"github.com/cpmech/curlfem/mesh"
	"github.com/cpmech/gosl/chk"
)

func unitCellMesh(tst *testing.T) *mesh.Mesh {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	defs := []mesh.ElementDef{{Materials: mesh.DefaultMaterials(), NodeIDs: [4]int{0, 1, 2, 3}}}
	m, err := mesh.NewMeshFromElements(points, defs)
	if err != nil {
		tst.Fatalf("construction failed: %v", err)
	}
	return m
}

func Test_cmd01(tst *testing.T) {

	chk.PrintTitle("cmd01: loadPlan defaults to global p=(2,2) when no path is given")

	p, err := loadPlan("")
	if err != nil {
		tst.Fatalf("loadPlan failed: %v", err)
	}
	if p.GlobalNi != 2 || p.GlobalNj != 2 {
		tst.Fatalf("expected default (2,2), got (%d,%d)", p.GlobalNi, p.GlobalNj)
	}

	m := unitCellMesh(tst)
	if err := p.apply(m); err != nil {
		tst.Fatalf("apply failed: %v", err)
	}
	if m.Elems[0].PolyOrders.Ni != 2 || m.Elems[0].PolyOrders.Nj != 2 {
		tst.Fatalf("expected expansion orders (2,2) after applying global_ni/nj=2, got (%d,%d)", m.Elems[0].PolyOrders.Ni, m.Elems[0].PolyOrders.Nj)
	}
}

func Test_cmd02(tst *testing.T) {

	chk.PrintTitle("cmd02: a JSON plan drives a T-refinement and refreshes edge activation")

	dir := tst.TempDir()
	planPath := filepath.Join(dir, "plan.json")
	body, _ := json.Marshal(plan{
		GlobalNi:     2,
		GlobalNj:     2,
		HRefinements: []hRefEntry{{ElemID: 0, Kind: "T"}},
	})
	if err := os.WriteFile(planPath, body, 0o644); err != nil {
		tst.Fatalf("failed writing plan: %v", err)
	}

	p, err := loadPlan(planPath)
	if err != nil {
		tst.Fatalf("loadPlan failed: %v", err)
	}

	m := unitCellMesh(tst)
	if err := p.apply(m); err != nil {
		tst.Fatalf("apply failed: %v", err)
	}
	if !m.Elems[0].HasChildren() {
		tst.Fatalf("expected elem 0 to have been T-refined")
	}
	childIDs, ok := m.Elems[0].ChildIDs()
	if !ok || len(childIDs) != 4 {
		tst.Fatalf("expected 4 children, got %v", childIDs)
	}
	for _, id := range childIDs {
		if m.Elems[id].PolyOrders.Ni != 2 || m.Elems[id].PolyOrders.Nj != 2 {
			tst.Errorf("child %d: expected inherited expansion orders (2,2), got (%d,%d)", id, m.Elems[id].PolyOrders.Ni, m.Elems[id].PolyOrders.Nj)
		}
	}
}

func Test_cmd03(tst *testing.T) {

	chk.PrintTitle("cmd03: an unknown h-refinement kind is rejected before touching the mesh")

	p := &plan{HRefinements: []hRefEntry{{ElemID: 0, Kind: "Q"}}}
	m := unitCellMesh(tst)
	if err := p.apply(m); err == nil {
		tst.Fatalf("expected an error for an unknown refinement kind")
	}
}
