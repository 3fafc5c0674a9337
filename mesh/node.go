// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/curlfem/geom"
	"github.com/cpmech/gosl/chk"
)

// Node sits at a junction of Elems (1 to 4; a corner of a single-Elem
// mesh joins only one) and of the Edges between them.
type Node struct {
	ID       int
	Coords   geom.Point
	Boundary bool

	// corners[i] maps an h-level key (u, v) to the id of the Elem
	// connected to this Node as its corner-i.
	corners [4]map[[2]uint8]int

	// activeQuadruple is reserved; H(curl) node-type DoFs are not
	// emitted so no resolution algorithm is implemented for it.
	activeQuadruple *[4]int
}

// NewNode builds a Node at the given real-space location.
func NewNode(id int, coords geom.Point, boundary bool) *Node {
	n := &Node{ID: id, Coords: coords, Boundary: boundary}
	for i := range n.corners {
		n.corners[i] = make(map[[2]uint8]int)
	}
	return n
}

// connectElem registers elem as owning this Node at whichever corner
// index elem.Nodes names it. Reconnecting the same Elem id at the same
// h-level key is a no-op; a conflicting id at that key is a programmer
// error.
func (n *Node) connectElem(elem *Elem) {
	idx := -1
	for i, nodeID := range elem.Nodes {
		if nodeID == n.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		chk.Panic("mesh: Elem %d is not connected to Node %d; cannot reciprocate connection\n", elem.ID, n.ID)
	}
	key := [2]uint8{elem.HLevels.U, elem.HLevels.V}
	if prev, ok := n.corners[idx][key]; ok && prev != elem.ID {
		chk.Panic("mesh: Node %d is already connected to Elem %d at %v (corner %d); cannot connect to Elem %d\n", n.ID, prev, key, idx, elem.ID)
	}
	n.corners[idx][key] = elem.ID
}

// ActiveElems returns the reserved node-type active quadruple, if set.
func (n *Node) ActiveElems() (*[4]int, bool) {
	return n.activeQuadruple, n.activeQuadruple != nil
}
