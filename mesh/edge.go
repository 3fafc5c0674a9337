// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gosl/chk"
)

// MinEdgeLengthParam is the minimum edge length, in parametric units,
// below which h-refinement is rejected (about 15 refinement levels on a
// unit cell).
const MinEdgeLengthParam = 3.0518e-5

// Edge is a straight segment between two Nodes, shared by the Elem(s)
// on either side of it. Side 0 is "below/left" of the edge, side 1 is
// "above/right".
type Edge struct {
	ID       int
	Nodes    [2]int
	Boundary bool
	Dir      ParaDir
	Length   float64

	children  *[2]int
	parent    *int
	childNode *int

	// sides[s] maps an h-level key (edge_ranking of a connected Elem)
	// to that Elem's id.
	sides [2]map[[2]uint8]int

	// activePair holds the BL/TR active pair once set_activation has
	// run and succeeded.
	activePair *[2]int
}

// NewEdge builds an Edge between two Nodes; its direction is derived
// from the orientation of the segment between their coordinates.
func NewEdge(id int, a, b *Node, boundary bool) *Edge {
	return &Edge{
		ID:       id,
		Nodes:    [2]int{a.ID, b.ID},
		Boundary: boundary,
		Dir:      orientationOf(a.Coords, b.Coords),
		Length:   a.Coords.Dist(b.Coords),
		sides:    [2]map[[2]uint8]int{make(map[[2]uint8]int), make(map[[2]uint8]int)},
	}
}

// ParentID returns this Edge's parent id, if it has one.
func (e *Edge) ParentID() (int, bool) {
	if e.parent == nil {
		return 0, false
	}
	return *e.parent, true
}

// ChildIDs returns this Edge's two child ids, if it has children.
func (e *Edge) ChildIDs() ([2]int, bool) {
	if e.children == nil {
		return [2]int{}, false
	}
	return *e.children, true
}

// HasChildren reports whether this Edge has been bisected.
func (e *Edge) HasChildren() bool {
	return e.children != nil
}

// ChildNodeID returns the id of the midpoint Node created when this
// Edge was bisected, if any.
func (e *Edge) ChildNodeID() (int, bool) {
	if e.childNode == nil {
		return 0, false
	}
	return *e.childNode, true
}

// ActiveElemPair returns this Edge's active BL/TR Elem pair, if set.
func (e *Edge) ActiveElemPair() ([2]int, bool) {
	if e.activePair == nil {
		return [2]int{}, false
	}
	return *e.activePair, true
}

// OtherActiveElem returns the other member of the active pair given one
// of its members; false if elemID is not part of the active pair.
func (e *Edge) OtherActiveElem(elemID int) (int, bool) {
	if e.activePair == nil {
		return 0, false
	}
	pair := *e.activePair
	switch elemID {
	case pair[0]:
		return pair[1], true
	case pair[1]:
		return pair[0], true
	default:
		return 0, false
	}
}

// connectElem registers elem's presence on whichever side of this Edge
// its local edge-index (within elem.Edges) places it: index 0 or 2
// (south/west) registers on side 1 (above/right), index 1 or 3
// (north/east) registers on side 0 (below/left). Reconnecting the same
// Elem id at the same h-level key is a no-op; a conflict is a
// programmer error.
func (e *Edge) connectElem(elem *Elem) {
	idx := -1
	for i, edgeID := range elem.Edges {
		if edgeID == e.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		chk.Panic("mesh: Elem %d is not connected to Edge %d; cannot reciprocate connection\n", elem.ID, e.ID)
	}
	address := edgeRanking(elem.HLevels, e.Dir)
	var side int
	switch idx {
	case 0, 2:
		side = 1
	default: // 1, 3
		side = 0
	}
	if prev, ok := e.sides[side][address]; ok && prev != elem.ID {
		chk.Panic("mesh: Edge %d is already connected to Elem %d at %v (side %d); cannot connect to Elem %d\n", e.ID, prev, address, side, elem.ID)
	}
	e.sides[side][address] = elem.ID
}

// hRefine bisects this Edge, producing two children sharing newNodeID
// at their midpoint. Errors if this Edge already has children, or if
// the resulting child length would fall below MinEdgeLengthParam.
func (e *Edge) hRefine(newIDs [2]int, newNodeID int) ([2]*Edge, error) {
	if e.children != nil {
		return [2]*Edge{}, &RefinementError{Kind: EdgeHasChildren, ID: e.ID}
	}
	childLength := e.Length / 2
	if childLength < MinEdgeLengthParam {
		return [2]*Edge{}, &RefinementError{Kind: MinEdgeLength, ID: e.ID}
	}
	e.children = &newIDs
	e.childNode = &newNodeID

	c0 := &Edge{
		ID: newIDs[0], Nodes: [2]int{e.Nodes[0], newNodeID}, Boundary: e.Boundary,
		Dir: e.Dir, Length: childLength, parent: intPtr(e.ID),
		sides: [2]map[[2]uint8]int{make(map[[2]uint8]int), make(map[[2]uint8]int)},
	}
	c1 := &Edge{
		ID: newIDs[1], Nodes: [2]int{newNodeID, e.Nodes[1]}, Boundary: e.Boundary,
		Dir: e.Dir, Length: childLength, parent: intPtr(e.ID),
		sides: [2]map[[2]uint8]int{make(map[[2]uint8]int), make(map[[2]uint8]int)},
	}
	return [2]*Edge{c0, c1}, nil
}

func intPtr(v int) *int { return &v }

// lastEntry returns the deepest (highest h-level key) Elem id registered
// on the given side, if any.
func (e *Edge) lastEntry(side int) (int, bool) {
	best, bestID, found := [2]uint8{}, 0, false
	for k, id := range e.sides[side] {
		if !found || k[0] > best[0] || (k[0] == best[0] && k[1] > best[1]) {
			best, bestID, found = k, id, true
		}
	}
	return bestID, found
}

// setActivation attempts to establish this Edge's active pair from its
// deepest side-0 and side-1 entries. Returns whether it succeeded.
func (e *Edge) setActivation() bool {
	bl, blOK := e.lastEntry(0)
	tr, trOK := e.lastEntry(1)
	if blOK && trOK {
		e.activePair = &[2]int{bl, tr}
		return true
	}
	e.activePair = nil
	return false
}

// resetActivation clears this Edge's active pair.
func (e *Edge) resetActivation() {
	e.activePair = nil
}
