// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// idTracker hands out sequential ids for new Nodes/Edges created during a
// batch of h-refinements, starting just past the current table length.
type idTracker struct {
	next int
}

func newIDTracker(start int) *idTracker {
	return &idTracker{next: start}
}

func (t *idTracker) nextID() int {
	id := t.next
	t.next++
	return id
}

func (t *idTracker) nextTwoIDs() [2]int {
	a, b := t.nextID(), t.nextID()
	return [2]int{a, b}
}
