// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/curlfem/geom"
	"github.com/cpmech/gosl/chk"
)

// ancestorEntry is one link in an Elem's stack back to its base-layer
// ancestor: the parent's id plus this Elem's location within it.
type ancestorEntry struct {
	ID  int
	Loc HRefLoc
}

// Elem is the mutable refinement cell: a node/edge quadruple in fixed
// index order (edge 0 = south, 1 = north, 2 = west, 3 = east; node
// ordering matches), a reference to its owning (immutable) Element, its
// h-level and polynomial-order state, and its place in the refinement
// forest.
type Elem struct {
	ID      int
	Nodes   [4]int
	Edges   [4]int
	Element *Element
	HLevels HLevels
	PolyOrders PolyOrders

	children  []int
	ancestors []ancestorEntry
}

// NewElem builds a base-layer Elem (no ancestors, default h-levels and
// polynomial orders) directly associated with its Element.
func NewElem(id int, nodes, edges [4]int, element *Element) *Elem {
	return &Elem{
		ID:         id,
		Nodes:      nodes,
		Edges:      edges,
		Element:    element,
		HLevels:    HLevels{},
		PolyOrders: DefaultPolyOrders(),
	}
}

// ParentID returns this Elem's immediate parent id, if any.
func (e *Elem) ParentID() (int, bool) {
	if len(e.ancestors) == 0 {
		return 0, false
	}
	return e.ancestors[len(e.ancestors)-1].ID, true
}

// LocStack returns the stack of (ancestorID, location) pairs back to the
// base layer.
func (e *Elem) LocStack() []ancestorEntry {
	return e.ancestors
}

// ChildIDs returns this Elem's child ids, if it has been h-refined.
func (e *Elem) ChildIDs() ([]int, bool) {
	if e.children == nil {
		return nil, false
	}
	return e.children, true
}

// HasChildren reports whether this Elem has been h-refined.
func (e *Elem) HasChildren() bool {
	return e.children != nil
}

// ParametricRange returns this Elem's bounds in its Element's parametric
// square, folding sub_range over every ancestor link.
func (e *Elem) ParametricRange() [2][2]float64 {
	r := [2][2]float64{{-1, 1}, {-1, 1}}
	for _, a := range e.ancestors {
		r = a.Loc.subRange(r)
	}
	return r
}

// RealPoint maps a parametric coordinate (u, v), given in this Elem's
// own [-1,1]x[-1,1] square, to its real-space location.
func (e *Elem) RealPoint(u, v float64) geom.Point {
	r := e.ParametricRange()
	realU := mapRange(u, -1, 1, r[0][0], r[0][1])
	realV := mapRange(v, -1, 1, r[1][0], r[1][1])
	x := mapRange(realU, -1, 1, e.Element.Points[0].X, e.Element.Points[3].X)
	y := mapRange(realV, -1, 1, e.Element.Points[0].Y, e.Element.Points[3].Y)
	return geom.NewPoint(x, y)
}

// RelativeParametricRange returns this Elem's bounds relative to one of
// its ancestors (fromAncestor's own parametric square is [-1,1]x[-1,1]).
// Panics if fromAncestor is not actually an ancestor of e.
func (e *Elem) RelativeParametricRange(fromAncestor int) [2][2]float64 {
	start := -1
	for i, a := range e.ancestors {
		if a.ID == fromAncestor {
			start = i
			break
		}
	}
	if start < 0 {
		chk.Panic("mesh: Elem %d is not an ancestor of Elem %d; cannot compute relative parametric range\n", fromAncestor, e.ID)
	}
	r := [2][2]float64{{-1, 1}, {-1, 1}}
	for _, a := range e.ancestors[start:] {
		r = a.Loc.subRange(r)
	}
	return r
}

// hRefine produces 2 or 4 ElemUninit children of e for the given
// refinement, marking e as having those children. Errors if e already
// has children.
func (e *Elem) hRefine(refinement HRef, ids *idTracker) ([]*ElemUninit, error) {
	if e.children != nil {
		return nil, &RefinementError{Kind: ElemHasChildren, ID: e.ID}
	}
	n := refinement.numChildren()
	children := make([]*ElemUninit, n)
	childIDs := make([]int, n)
	for idx := 0; idx < n; idx++ {
		id := ids.nextID()
		childIDs[idx] = id
		ancestors := make([]ancestorEntry, len(e.ancestors)+1)
		copy(ancestors, e.ancestors)
		ancestors[len(e.ancestors)] = ancestorEntry{ID: e.ID, Loc: locOf(refinement, idx)}
		children[idx] = &ElemUninit{
			ID:         id,
			Element:    e.Element,
			ancestors:  ancestors,
			HLevels:    refinement.refined(e.HLevels),
			PolyOrders: e.PolyOrders,
		}
	}
	e.children = childIDs
	return children, nil
}

// ElemUninit is a child Elem under construction during h-refinement: its
// four node and edge slots are filled incrementally as parent/sibling
// edges are bisected, then promoted to an Elem once complete.
type ElemUninit struct {
	ID         int
	nodes      [4]*int
	edges      [4]*int
	Element    *Element
	ancestors  []ancestorEntry
	HLevels    HLevels
	PolyOrders PolyOrders
}

// setNode assigns node slot idx, idempotently (re-setting it to the same
// id is a no-op; a conflicting id is a programmer error).
func (u *ElemUninit) setNode(idx, nodeID int) {
	if u.nodes[idx] != nil {
		if *u.nodes[idx] != nodeID {
			chk.Panic("mesh: Node (%d) has already been set to %d on ElemUninit %d; cannot set to %d\n", idx, *u.nodes[idx], u.ID, nodeID)
		}
		return
	}
	u.nodes[idx] = &nodeID
}

// setEdge assigns edge slot idx. A conflicting re-assignment is a
// programmer error (unlike nodes, each edge slot is set exactly once).
func (u *ElemUninit) setEdge(idx, edgeID int) {
	if u.edges[idx] != nil {
		chk.Panic("mesh: Edge (%d) has already been set to %d on ElemUninit %d; cannot set to %d\n", idx, *u.edges[idx], u.ID, edgeID)
	}
	u.edges[idx] = &edgeID
}

// intoElem promotes a fully-initialized ElemUninit (all four node and
// edge slots set) into an Elem.
func (u *ElemUninit) intoElem() (*Elem, error) {
	var nodes, edges [4]int
	for i := 0; i < 4; i++ {
		if u.nodes[i] == nil || u.edges[i] == nil {
			return nil, &RefinementError{Kind: UninitializedElem, ID: u.ID}
		}
		nodes[i] = *u.nodes[i]
		edges[i] = *u.edges[i]
	}
	return &Elem{
		ID:         u.ID,
		Nodes:      nodes,
		Edges:      edges,
		Element:    u.Element,
		HLevels:    u.HLevels,
		PolyOrders: u.PolyOrders,
		ancestors:  u.ancestors,
	}, nil
}
