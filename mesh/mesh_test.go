// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/curlfem/geom"
	"github.com/cpmech/gosl/chk"
)

// twoElemMesh builds a 2x1 grid of unit-ish squares sharing a vertical
// edge: nodes 0..5 laid out
//
//	2 --- 3 --- 5
//	|     |     |
//	0 --- 1 --- 4
func twoElemMesh() (*Mesh, error) {
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1},
		{X: 2, Y: 0}, {X: 2, Y: 1},
	}
	defs := []ElementDef{
		{Materials: DefaultMaterials(), NodeIDs: [4]int{0, 1, 2, 3}},
		{Materials: DefaultMaterials(), NodeIDs: [4]int{1, 4, 3, 5}},
	}
	return NewMeshFromElements(points, defs)
}

func Test_mesh01(tst *testing.T) {

	chk.PrintTitle("mesh01: construction and boundary flags")

	m, err := twoElemMesh()
	if err != nil {
		tst.Fatalf("construction failed: %v", err)
	}
	if len(m.Elems) != 2 || len(m.Nodes) != 6 {
		tst.Fatalf("unexpected mesh size: %d elems, %d nodes", len(m.Elems), len(m.Nodes))
	}
	if len(m.Edges) != 7 {
		tst.Fatalf("expected 7 edges (4+4 minus 1 shared), got %d", len(m.Edges))
	}

	boundaryNodes := 0
	for _, n := range m.Nodes {
		if n.Boundary {
			boundaryNodes++
		}
	}
	if boundaryNodes != 6 {
		tst.Errorf("expected all 6 nodes on the boundary of a 2x1 grid, got %d", boundaryNodes)
	}

	boundaryEdges, interiorEdges := 0, 0
	for _, e := range m.Edges {
		if e.Boundary {
			boundaryEdges++
		} else {
			interiorEdges++
		}
	}
	if boundaryEdges != 6 || interiorEdges != 1 {
		tst.Errorf("expected 6 boundary + 1 interior edge, got %d + %d", boundaryEdges, interiorEdges)
	}
}

func Test_mesh02(tst *testing.T) {

	chk.PrintTitle("mesh02: global T-refinement and edge activation")

	m, err := twoElemMesh()
	if err != nil {
		tst.Fatalf("construction failed: %v", err)
	}

	if err := m.GlobalHRefinement(HRef{Kind: HRefT}); err != nil {
		tst.Fatalf("global h-refinement failed: %v", err)
	}
	if len(m.Elems) != 2+8 {
		tst.Fatalf("expected 10 elems after refining 2 into 4 children each, got %d", len(m.Elems))
	}
	for _, id := range []int{0, 1} {
		if !m.Elems[id].HasChildren() {
			tst.Errorf("elem %d should have children", id)
		}
	}

	m.SetEdgeActivation()
	active, total := 0, 0
	for _, e := range m.Edges {
		if e.Boundary || e.HasChildren() {
			continue
		}
		total++
		if _, ok := e.ActiveElemPair(); ok {
			active++
		}
	}
	if total == 0 || active != total {
		tst.Errorf("expected every leaf non-boundary edge to have an active pair; active=%d total=%d", active, total)
	}
}

func Test_mesh03(tst *testing.T) {

	chk.PrintTitle("mesh03: batch validation rejects duplicate and out-of-range elem ids")

	m, err := twoElemMesh()
	if err != nil {
		tst.Fatalf("construction failed: %v", err)
	}

	_, err = m.ExecuteHRefinements([]HRefRequest{
		{ElemID: 0, Ref: HRef{Kind: HRefT}},
		{ElemID: 0, Ref: HRef{Kind: HRefT}},
	})
	re, ok := err.(*RefinementError)
	if !ok || re.Kind != DoubleRefinement {
		tst.Fatalf("expected DoubleRefinement error, got %v", err)
	}

	_, err = m.ExecuteHRefinements([]HRefRequest{{ElemID: 99, Ref: HRef{Kind: HRefT}}})
	re, ok = err.(*RefinementError)
	if !ok || re.Kind != ElemDoesntExist {
		tst.Fatalf("expected ElemDoesntExist error, got %v", err)
	}
}

func Test_mesh04(tst *testing.T) {

	chk.PrintTitle("mesh04: h-refinement stops once edges fall below the minimum length")

	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	defs := []ElementDef{{Materials: DefaultMaterials(), NodeIDs: [4]int{0, 1, 2, 3}}}
	m, err := NewMeshFromElements(points, defs)
	if err != nil {
		tst.Fatalf("construction failed: %v", err)
	}

	leaf := 0
	generations := 0
	for {
		ok, err := m.ElemIsHRefineable(leaf)
		if err != nil {
			tst.Fatalf("ElemIsHRefineable failed: %v", err)
		}
		if !ok {
			tst.Fatalf("elem %d unexpectedly not h-refineable at generation %d", leaf, generations)
		}
		err = m.HRefineElems([]int{leaf}, HRef{Kind: HRefT})
		if err != nil {
			if re, ok := err.(*RefinementError); ok && re.Kind == MinEdgeLength {
				break
			}
			tst.Fatalf("unexpected error: %v", err)
		}
		childIDs, _ := m.Elems[leaf].ChildIDs()
		leaf = childIDs[0]
		generations++
		if generations > 20 {
			tst.Fatalf("refinement did not hit MinEdgeLength within 20 generations")
		}
	}
	if generations < 14 {
		tst.Errorf("expected at least 14 successful refinement generations on a unit square, got %d", generations)
	}
}

func Test_mesh05(tst *testing.T) {

	chk.PrintTitle("mesh05: p-refinement bounds")

	m, err := twoElemMesh()
	if err != nil {
		tst.Fatalf("construction failed: %v", err)
	}

	if err := m.GlobalPRefinement(NewPRef(2, 0)); err != nil {
		tst.Fatalf("p-refinement failed: %v", err)
	}
	for _, e := range m.Elems {
		if e.PolyOrders.Ni != 3 || e.PolyOrders.Nj != 1 {
			tst.Errorf("elem %d: expected orders (3,1), got (%d,%d)", e.ID, e.PolyOrders.Ni, e.PolyOrders.Nj)
		}
	}

	err = m.PRefineElems([]int{0}, NewPRef(0, -1))
	pe, ok := err.(*PRefError)
	if !ok || pe.Kind != NegExpansion {
		tst.Fatalf("expected NegExpansion error decrementing an order of 1 to 0, got %v", err)
	}

	if err := m.SetGlobalExpansionOrders(MaxPolynomialOrder, MaxPolynomialOrder); err != nil {
		tst.Fatalf("SetGlobalExpansionOrders failed: %v", err)
	}
	err = m.PRefineElems([]int{1}, NewPRef(1, 0))
	pe, ok = err.(*PRefError)
	if !ok || pe.Kind != ExceededMaxExpansion {
		tst.Fatalf("expected ExceededMaxExpansion error, got %v", err)
	}
}

func Test_mesh06(tst *testing.T) {

	chk.PrintTitle("mesh06: U-refinement with a queued V extension")

	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	defs := []ElementDef{{Materials: DefaultMaterials(), NodeIDs: [4]int{0, 1, 2, 3}}}
	m, err := NewMeshFromElements(points, defs)
	if err != nil {
		tst.Fatalf("construction failed: %v", err)
	}

	ext := 0
	report, err := m.ExecuteHRefinements([]HRefRequest{{ElemID: 0, Ref: HRef{Kind: HRefU, Extension: &ext}}})
	if err != nil {
		tst.Fatalf("extension refinement failed: %v", err)
	}
	if report.Generations != 2 {
		tst.Errorf("expected 2 generations (U-refinement then the queued V extension), got %d", report.Generations)
	}
	childIDs, ok := m.Elems[0].ChildIDs()
	if !ok || len(childIDs) != 2 {
		tst.Fatalf("expected 2 U-refined children, got %v", childIDs)
	}
	if !m.Elems[childIDs[0]].HasChildren() {
		tst.Errorf("the extended child should have been further V-refined")
	}
	if m.Elems[childIDs[1]].HasChildren() {
		tst.Errorf("the non-extended child should remain a leaf")
	}

	s := m.Stats()
	if s.NumLeafElems != 3 {
		tst.Errorf("expected 3 leaf elems (1 untouched + 2 from the V extension), got %d", s.NumLeafElems)
	}
}
