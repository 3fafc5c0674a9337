// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dofs enumerates, per Elem, the H(curl) basis-spec grid and
// resolves it into degrees of freedom: element-local specs on leaf
// Elems become single-spec DoFs directly, and edge-local specs on an
// Edge's active Elem pair are greedily paired into two-spec DoFs.
package dofs

import "github.com/cpmech/curlfem/mesh"

// Kind classifies a BasisSpec by where its support lives.
type Kind int

const (
	KindElement Kind = iota
	KindEdge
	KindNode
)

// BasisSpec is one (dir, i, j) basis function attached to an Elem.
type BasisSpec struct {
	ElemID int
	Dir    mesh.BasisDir
	I, J   uint8

	Kind        Kind
	SideIndex   int // valid when Kind == KindEdge: local edge slot 0..3
	CornerIndex int // valid when Kind == KindNode: local node slot 0..3

	ElemIndex int // position within ElemID's full basis-spec list

	DofID  int
	HasDof bool
}

// DoF is a resolved degree of freedom: one spec (element-type) or two
// (edge-type, from the matched pair on an active edge).
type DoF struct {
	ID    int
	Specs []*BasisSpec
}

// Domain is the full basis-spec/DoF resolution over a Mesh.
type Domain struct {
	Mesh *mesh.Mesh

	ByElem map[int][]*BasisSpec
	ByEdge map[int][]*BasisSpec
	ByNode map[int][]*BasisSpec

	DoFs []*DoF
}

// locationOf derives the H(curl) location tag for a (dir, i, j) triple.
func locationOf(dir mesh.BasisDir, i, j uint8) (kind Kind, index int) {
	switch dir {
	case mesh.BasisU:
		if j == 0 || j == 1 {
			return KindEdge, int(j)
		}
	case mesh.BasisV:
		if i == 0 || i == 1 {
			return KindEdge, int(i) + 2
		}
	case mesh.BasisW:
		switch {
		case i < 2 && j >= 2:
			return KindEdge, int(i) + 2
		case i >= 2 && j < 2:
			return KindEdge, int(j)
		case i < 2 && j < 2:
			return KindNode, int(i) + 2*int(j)
		}
	}
	return KindElement, 0
}

// NewDomain enumerates every Elem's basis specs, buckets them by
// location, and resolves the DoFs.
func NewDomain(m *mesh.Mesh) *Domain {
	d := &Domain{
		Mesh:   m,
		ByElem: make(map[int][]*BasisSpec),
		ByEdge: make(map[int][]*BasisSpec),
		ByNode: make(map[int][]*BasisSpec),
	}
	for _, e := range m.Elems {
		for _, dir := range [3]mesh.BasisDir{mesh.BasisU, mesh.BasisV, mesh.BasisW} {
			for _, ij := range e.PolyOrders.Permutations(dir) {
				spec := &BasisSpec{
					ElemID:    e.ID,
					Dir:       dir,
					I:         ij[0],
					J:         ij[1],
					ElemIndex: len(d.ByElem[e.ID]),
				}
				kind, idx := locationOf(dir, ij[0], ij[1])
				spec.Kind = kind
				switch kind {
				case KindEdge:
					spec.SideIndex = idx
					edgeID := e.Edges[idx]
					d.ByEdge[edgeID] = append(d.ByEdge[edgeID], spec)
				case KindNode:
					spec.CornerIndex = idx
					nodeID := e.Nodes[idx]
					d.ByNode[nodeID] = append(d.ByNode[nodeID], spec)
				}
				d.ByElem[e.ID] = append(d.ByElem[e.ID], spec)
			}
		}
	}
	d.assignDoFs()
	return d
}

func (d *Domain) newDoF(specs ...*BasisSpec) {
	id := len(d.DoFs)
	dof := &DoF{ID: id, Specs: specs}
	d.DoFs = append(d.DoFs, dof)
	for _, s := range specs {
		s.DofID = id
		s.HasDof = true
	}
}

func (d *Domain) assignDoFs() {
	for _, e := range d.Mesh.Elems {
		if e.HasChildren() {
			continue
		}
		for _, s := range d.ByElem[e.ID] {
			if s.Kind == KindElement && (s.Dir == mesh.BasisU || s.Dir == mesh.BasisV) {
				d.newDoF(s)
			}
		}
	}

	for _, edge := range d.Mesh.Edges {
		pair, ok := edge.ActiveElemPair()
		if !ok {
			continue
		}
		var candidates []*BasisSpec
		for _, s := range d.ByEdge[edge.ID] {
			if s.Dir != mesh.BasisU && s.Dir != mesh.BasisV {
				continue
			}
			if s.ElemID == pair[0] || s.ElemID == pair[1] {
				candidates = append(candidates, s)
			}
		}
		for a := 0; a < len(candidates); a++ {
			if candidates[a].HasDof {
				continue
			}
			for b := a + 1; b < len(candidates); b++ {
				if candidates[b].HasDof {
					continue
				}
				if edgeMatch(candidates[a], candidates[b]) {
					d.newDoF(candidates[a], candidates[b])
					break
				}
			}
		}
	}
}

// edgeMatch reports whether two edge-type specs on the same Edge pair
// into a single DoF.
func edgeMatch(a, b *BasisSpec) bool {
	if a.Dir != b.Dir {
		return false
	}
	switch a.Dir {
	case mesh.BasisU:
		return a.I == b.I && a.J+b.J == 1 && a.SideIndex+b.SideIndex == 1
	case mesh.BasisV:
		return a.J == b.J && a.I+b.I == 1 && a.SideIndex+b.SideIndex == 5
	case mesh.BasisW:
		if a.I >= 2 && b.I >= 2 {
			return a.I == b.I && a.J+b.J == 1 && a.SideIndex+b.SideIndex == 1
		}
		if a.J >= 2 && b.J >= 2 {
			return a.J == b.J && a.I+b.I == 1 && a.SideIndex+b.SideIndex == 5
		}
	}
	return false
}
