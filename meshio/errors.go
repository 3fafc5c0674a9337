// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import "github.com/cpmech/gosl/utl"

// ErrorKind classifies why a JSON mesh document was rejected.
type ErrorKind int

const (
	// Malformed reports a JSON document that does not even parse as
	// the {"Elements": [...], "Nodes": [...]} schema.
	Malformed ErrorKind = iota
	// TooFewNodes reports a node's coordinate array of the wrong length.
	TooFewNodes
	// DuplicateNodeIDs reports an Element whose node_ids are not four
	// pairwise-distinct indices.
	DuplicateNodeIDs
	// NodeIDOutOfRange reports an Element referencing a node index
	// outside [0, len(Nodes)).
	NodeIDOutOfRange
	// CoincidentNodes reports two nodes at the same canonical location.
	CoincidentNodes
	// TooManyElemRefs reports a node referenced by more than 4 Elements.
	TooManyElemRefs
)

// Error reports why LoadJSON rejected a mesh document.
type Error struct {
	Kind ErrorKind
	ID   int
}

func (e *Error) Error() string {
	switch e.Kind {
	case Malformed:
		return "meshio: malformed JSON mesh document"
	case TooFewNodes:
		return utl.Sf("meshio: node %d does not have exactly 2 coordinates", e.ID)
	case DuplicateNodeIDs:
		return utl.Sf("meshio: element %d does not reference 4 distinct node ids", e.ID)
	case NodeIDOutOfRange:
		return utl.Sf("meshio: element %d references a node id out of range", e.ID)
	case CoincidentNodes:
		return utl.Sf("meshio: node %d is coincident with an earlier node", e.ID)
	case TooManyElemRefs:
		return utl.Sf("meshio: node %d is referenced by more than 4 elements", e.ID)
	default:
		return "meshio: error"
	}
}
