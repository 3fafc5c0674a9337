// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"sort"

	"github.com/cpmech/curlfem/geom"
	"github.com/cpmech/gosl/chk"
)

// Mesh holds the complete refinement forest: the immutable Elements
// loaded at construction, and the (possibly larger, append-only) Elems,
// Edges, and Nodes produced by refinement. Every id is stable and equals
// its slice index.
type Mesh struct {
	Elements []*Element
	Elems    []*Elem
	Nodes    []*Node
	Edges    []*Edge
}

// ElementDef is one Element's construction input: the Materials to
// attach and the ids (into the Points slice passed to
// NewMeshFromElements) of its four corners in canonical order.
type ElementDef struct {
	Materials Materials
	NodeIDs   [4]int
}

// edgeIdxDefs pairs a local corner-index pair (forming one of an Elem's
// four edges, in edge-slot order S,N,W,E) with the side (0=below/left,
// 1=above/right) that Elem registers on the shared edge-construction map.
var edgeIdxDefs = [4]struct {
	corners [2]int
	side    int
}{
	{[2]int{0, 1}, 1}, // south
	{[2]int{2, 3}, 0}, // north
	{[2]int{0, 2}, 1}, // west
	{[2]int{1, 3}, 0}, // east
}

// NewMeshFromElements builds a base-layer Mesh (h-level 0 everywhere)
// from a flat Point table and a list of ElementDefs whose NodeIDs index
// into it. Nodes referenced by fewer than 4 Elements are marked as
// boundary nodes; Edges bordering only one Element are boundary edges.
func NewMeshFromElements(points []geom.Point, defs []ElementDef) (*Mesh, error) {
	elements := make([]*Element, len(defs))
	for id, d := range defs {
		var corners [4]geom.Point
		for k, nid := range d.NodeIDs {
			if nid < 0 || nid >= len(points) {
				return nil, fmt.Errorf("mesh: element %d references out-of-range node id %d", id, nid)
			}
			corners[k] = points[nid]
		}
		elements[id] = NewElement(id, corners, d.Materials)
	}

	connCount := make([]int, len(points))
	for _, d := range defs {
		for _, nid := range d.NodeIDs {
			connCount[nid]++
		}
	}
	nodes := make([]*Node, len(points))
	for id, p := range points {
		if connCount[id] > 4 {
			return nil, fmt.Errorf("mesh: node %d is shared by %d elements (max 4)", id, connCount[id])
		}
		nodes[id] = NewNode(id, p, connCount[id] < 4)
	}

	// edgeKey identifies a shared edge by its two corner node ids, in
	// the local order the first Element to touch it used.
	type edgeKey [2]int
	type edgeSlots struct {
		elemID [2]*int
	}
	order := make([]edgeKey, 0, len(defs)*2)
	slots := make(map[edgeKey]*edgeSlots)

	for elemID, d := range defs {
		for _, def := range edgeIdxDefs {
			key := edgeKey{d.NodeIDs[def.corners[0]], d.NodeIDs[def.corners[1]]}
			s, ok := slots[key]
			if !ok {
				s = &edgeSlots{}
				slots[key] = s
				order = append(order, key)
			}
			if s.elemID[def.side] != nil {
				return nil, fmt.Errorf("mesh: edge [%d %d]'s side %d is claimed by both elements %d and %d", key[0], key[1], def.side, *s.elemID[def.side], elemID)
			}
			id := elemID
			s.elemID[def.side] = &id
		}
	}

	edges := make([]*Edge, len(order))
	edgeIDOf := make(map[edgeKey]int, len(order))
	for edgeID, key := range order {
		s := slots[key]
		count := 0
		if s.elemID[0] != nil {
			count++
		}
		if s.elemID[1] != nil {
			count++
		}
		if count == 0 {
			return nil, fmt.Errorf("mesh: edge [%d %d] has no adjacent elements", key[0], key[1])
		}
		boundary := count == 1
		edges[edgeID] = NewEdge(edgeID, nodes[key[0]], nodes[key[1]], boundary)
		edgeIDOf[key] = edgeID
	}

	// invert: for each element, find its 4 edges in slot order S,N,W,E
	elemEdges := make([][4]int, len(defs))
	for elemID, d := range defs {
		for slot, def := range edgeIdxDefs {
			key := edgeKey{d.NodeIDs[def.corners[0]], d.NodeIDs[def.corners[1]]}
			elemEdges[elemID][slot] = edgeIDOf[key]
		}
	}

	elems := make([]*Elem, len(defs))
	for elemID, d := range defs {
		elems[elemID] = NewElem(elemID, d.NodeIDs, elemEdges[elemID], elements[elemID])
		for _, edgeID := range elemEdges[elemID] {
			edges[edgeID].connectElem(elems[elemID])
		}
		for _, nodeID := range d.NodeIDs {
			nodes[nodeID].connectElem(elems[elemID])
		}
	}

	return &Mesh{Elements: elements, Elems: elems, Nodes: nodes, Edges: edges}, nil
}

// DescendantElemIDs returns every Elem id reachable by recursively
// following elemID's children, deepest-first order not guaranteed.
func (m *Mesh) DescendantElemIDs(elemID int) []int {
	childIDs, ok := m.Elems[elemID].ChildIDs()
	if !ok {
		return nil
	}
	out := append([]int{}, childIDs...)
	for _, c := range childIDs {
		out = append(out, m.DescendantElemIDs(c)...)
	}
	return out
}

// AncestorElemIDs returns elemID's ancestor chain, root first.
func (m *Mesh) AncestorElemIDs(elemID int) []int {
	var out []int
	for _, a := range m.Elems[elemID].LocStack() {
		out = append(out, a.ID)
	}
	return out
}

// ElemIsHRefineable reports whether an Elem can be h-refined: it must be
// a leaf and every one of its edges must be longer than
// MinEdgeLengthParam.
func (m *Mesh) ElemIsHRefineable(elemID int) (bool, error) {
	if elemID < 0 || elemID >= len(m.Elems) {
		return false, &RefinementError{Kind: ElemDoesntExist, ID: elemID}
	}
	e := m.Elems[elemID]
	if e.HasChildren() {
		return false, nil
	}
	for _, edgeID := range e.Edges {
		if m.Edges[edgeID].Length <= MinEdgeLengthParam {
			return false, nil
		}
	}
	return true, nil
}

// HRefRequest pairs an Elem id with the HRef to apply to it.
type HRefRequest struct {
	ElemID int
	Ref    HRef
}

// GlobalHRefinement applies refinement to every currently h-refineable
// Elem.
func (m *Mesh) GlobalHRefinement(refinement HRef) error {
	var reqs []HRefRequest
	for _, e := range m.Elems {
		ok, err := m.ElemIsHRefineable(e.ID)
		if err != nil {
			return err
		}
		if ok {
			reqs = append(reqs, HRefRequest{ElemID: e.ID, Ref: refinement})
		}
	}
	_, err := m.ExecuteHRefinements(reqs)
	return err
}

// HRefineElems applies the same refinement to an explicit list of Elems.
func (m *Mesh) HRefineElems(elemIDs []int, refinement HRef) error {
	reqs := make([]HRefRequest, len(elemIDs))
	for i, id := range elemIDs {
		reqs[i] = HRefRequest{ElemID: id, Ref: refinement}
	}
	_, err := m.ExecuteHRefinements(reqs)
	return err
}

// RefinementReport summarizes one ExecuteHRefinements call: Generations
// counts how many rounds it took to settle every queued U/V extension
// (1 if no request queued an extension).
type RefinementReport struct {
	Generations int
}

// ExecuteHRefinements applies a batch of h-refinements, one generation at
// a time: requests are applied to Elems in ascending elem_id order within
// a generation; any (U/V) extensions they queue form the next generation
// and are processed recursively until none remain.
func (m *Mesh) ExecuteHRefinements(requests []HRefRequest) (*RefinementReport, error) {
	generations, err := m.executeHRefGeneration(requests)
	if err != nil {
		return nil, err
	}
	return &RefinementReport{Generations: generations}, nil
}

func (m *Mesh) executeHRefGeneration(requests []HRefRequest) (int, error) {
	seen := make(map[int]bool, len(requests))
	ordered := make([]HRefRequest, len(requests))
	copy(ordered, requests)
	for _, r := range ordered {
		if r.ElemID < 0 || r.ElemID >= len(m.Elems) {
			return 0, &RefinementError{Kind: ElemDoesntExist, ID: r.ElemID}
		}
		if seen[r.ElemID] {
			return 0, &RefinementError{Kind: DoubleRefinement, ID: r.ElemID}
		}
		seen[r.ElemID] = true
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ElemID < ordered[j].ElemID })

	var extensions []HRefRequest
	nodeIDs := newIDTracker(len(m.Nodes))
	edgeIDs := newIDTracker(len(m.Edges))
	elemIDTracker := newIDTracker(len(m.Elems))
	for _, req := range ordered {
		parent := m.Elems[req.ElemID]
		if parent.HasChildren() {
			return 0, &RefinementError{Kind: ElemHasChildren, ID: req.ElemID}
		}
		uninit, err := parent.hRefine(req.Ref, elemIDTracker)
		if err != nil {
			return 0, err
		}

		var newElems []*Elem
		switch req.Ref.Kind {
		case HRefT:
			newElems, err = m.executeTRefinement(uninit, req.ElemID, nodeIDs, edgeIDs)
		case HRefU:
			newElems, err = m.executeURefinement(uninit, req.ElemID, nodeIDs, edgeIDs)
			if err == nil && req.Ref.Extension != nil {
				extensions = append(extensions, HRefRequest{ElemID: newElems[*req.Ref.Extension].ID, Ref: HRef{Kind: HRefV}})
			}
		default:
			newElems, err = m.executeVRefinement(uninit, req.ElemID, nodeIDs, edgeIDs)
			if err == nil && req.Ref.Extension != nil {
				extensions = append(extensions, HRefRequest{ElemID: newElems[*req.Ref.Extension].ID, Ref: HRef{Kind: HRefU}})
			}
		}
		if err != nil {
			return 0, err
		}
		m.Elems = append(m.Elems, newElems...)
	}

	if len(extensions) > 0 {
		childGenerations, err := m.executeHRefGeneration(extensions)
		if err != nil {
			return 0, err
		}
		return childGenerations + 1, nil
	}
	return 1, nil
}

func (m *Mesh) elemPoints(elemID int) [4]geom.Point {
	e := m.Elems[elemID]
	var pts [4]geom.Point
	for i, nodeID := range e.Nodes {
		pts[i] = m.Nodes[nodeID].Coords
	}
	return pts
}

func (m *Mesh) edgePoints(edgeID int) [2]geom.Point {
	e := m.Edges[edgeID]
	return [2]geom.Point{m.Nodes[e.Nodes[0]].Coords, m.Nodes[e.Nodes[1]].Coords}
}

func (m *Mesh) executeTRefinement(newElems []*ElemUninit, parentID int, nodeIDs, edgeIDs *idTracker) ([]*Elem, error) {
	if len(newElems) != 4 {
		chk.Panic("mesh: T-refinement must produce 4 children, got %d\n", len(newElems))
	}
	parentPts := m.elemPoints(parentID)
	centerID := nodeIDs.nextID()
	centerPt := geom.Between(parentPts[0], parentPts[3])
	m.Nodes = append(m.Nodes, NewNode(centerID, centerPt, false))

	for idx, u := range newElems {
		u.setNode(3-idx, centerID)
		u.setNode(idx, m.Elems[parentID].Nodes[idx])
	}

	type rule struct {
		edgeIdx       int
		childElemIdx  [2]int
		sharedNodeIdx [2]int
		internalIdx   [2]int
	}
	rules := [4]rule{
		{0, [2]int{0, 1}, [2]int{1, 0}, [2]int{3, 2}},
		{1, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 2}},
		{2, [2]int{0, 2}, [2]int{2, 0}, [2]int{1, 0}},
		{3, [2]int{1, 3}, [2]int{3, 1}, [2]int{1, 0}},
	}
	for _, r := range rules {
		childEdgeIDs, sharedNodeID, err := m.hRefineEdgeIfNeeded(m.Elems[parentID].Edges[r.edgeIdx], nodeIDs, edgeIDs)
		if err != nil {
			return nil, err
		}
		newElems[r.childElemIdx[0]].setEdge(r.edgeIdx, childEdgeIDs[0])
		newElems[r.childElemIdx[1]].setEdge(r.edgeIdx, childEdgeIDs[1])
		newElems[r.childElemIdx[0]].setNode(r.sharedNodeIdx[0], sharedNodeID)
		newElems[r.childElemIdx[1]].setNode(r.sharedNodeIdx[1], sharedNodeID)

		newEdgeID, err := m.newEdgeBetweenNodes([2]int{sharedNodeID, centerID}, edgeIDs, parentID)
		if err != nil {
			return nil, err
		}
		newElems[r.childElemIdx[0]].setEdge(r.internalIdx[0], newEdgeID)
		newElems[r.childElemIdx[1]].setEdge(r.internalIdx[1], newEdgeID)
	}

	return m.upgradeUninitElems(newElems)
}

func (m *Mesh) executeURefinement(newElems []*ElemUninit, parentID int, nodeIDs, edgeIDs *idTracker) ([]*Elem, error) {
	if len(newElems) != 2 {
		chk.Panic("mesh: U-refinement must produce 2 children, got %d\n", len(newElems))
	}
	var outerNodeIDs [2]int

	type rule struct {
		edgeIdx          int
		sharedNodeIdx    [2]int
		outerNodeIdx     [2]int
	}
	rules := [2]rule{
		{0, [2]int{1, 0}, [2]int{0, 1}},
		{1, [2]int{3, 2}, [2]int{2, 3}},
	}
	for _, r := range rules {
		childEdgeIDs, sharedNodeID, err := m.hRefineEdgeIfNeeded(m.Elems[parentID].Edges[r.edgeIdx], nodeIDs, edgeIDs)
		if err != nil {
			return nil, err
		}
		outerNodeIDs[r.edgeIdx] = sharedNodeID
		newElems[0].setEdge(r.edgeIdx, childEdgeIDs[0])
		newElems[1].setEdge(r.edgeIdx, childEdgeIDs[1])
		newElems[0].setNode(r.sharedNodeIdx[0], sharedNodeID)
		newElems[1].setNode(r.sharedNodeIdx[1], sharedNodeID)
		newElems[0].setNode(r.outerNodeIdx[0], m.Elems[parentID].Nodes[r.outerNodeIdx[0]])
		newElems[1].setNode(r.outerNodeIdx[1], m.Elems[parentID].Nodes[r.outerNodeIdx[1]])
	}

	newEdgeID, err := m.newEdgeBetweenNodes(outerNodeIDs, edgeIDs, parentID)
	if err != nil {
		return nil, err
	}
	newElems[0].setEdge(3, newEdgeID)
	newElems[1].setEdge(2, newEdgeID)
	newElems[0].setEdge(2, m.Elems[parentID].Edges[2])
	newElems[1].setEdge(3, m.Elems[parentID].Edges[3])

	return m.upgradeUninitElems(newElems)
}

func (m *Mesh) executeVRefinement(newElems []*ElemUninit, parentID int, nodeIDs, edgeIDs *idTracker) ([]*Elem, error) {
	if len(newElems) != 2 {
		chk.Panic("mesh: V-refinement must produce 2 children, got %d\n", len(newElems))
	}
	var outerNodeIDs [2]int

	type rule struct {
		edgeIdx       int
		sharedNodeIdx [2]int
		outerNodeIdx  [2]int
	}
	rules := [2]rule{
		{2, [2]int{2, 0}, [2]int{0, 2}},
		{3, [2]int{3, 1}, [2]int{1, 3}},
	}
	for _, r := range rules {
		childEdgeIDs, sharedNodeID, err := m.hRefineEdgeIfNeeded(m.Elems[parentID].Edges[r.edgeIdx], nodeIDs, edgeIDs)
		if err != nil {
			return nil, err
		}
		outerNodeIDs[r.edgeIdx-2] = sharedNodeID
		newElems[0].setEdge(r.edgeIdx, childEdgeIDs[0])
		newElems[1].setEdge(r.edgeIdx, childEdgeIDs[1])
		newElems[0].setNode(r.sharedNodeIdx[0], sharedNodeID)
		newElems[1].setNode(r.sharedNodeIdx[1], sharedNodeID)
		newElems[0].setNode(r.outerNodeIdx[0], m.Elems[parentID].Nodes[r.outerNodeIdx[0]])
		newElems[1].setNode(r.outerNodeIdx[1], m.Elems[parentID].Nodes[r.outerNodeIdx[1]])
	}

	newEdgeID, err := m.newEdgeBetweenNodes(outerNodeIDs, edgeIDs, parentID)
	if err != nil {
		return nil, err
	}
	newElems[0].setEdge(1, newEdgeID)
	newElems[1].setEdge(0, newEdgeID)
	newElems[0].setEdge(0, m.Elems[parentID].Edges[0])
	newElems[1].setEdge(1, m.Elems[parentID].Edges[1])

	return m.upgradeUninitElems(newElems)
}

// hRefineEdgeIfNeeded returns the child edge ids and shared midpoint node
// id for parentEdgeID, bisecting it (and creating its midpoint Node) the
// first time it is asked for within a generation; later asks in the same
// generation read the cached result.
func (m *Mesh) hRefineEdgeIfNeeded(parentEdgeID int, nodeIDs, edgeIDs *idTracker) ([2]int, int, error) {
	parent := m.Edges[parentEdgeID]
	if parent.HasChildren() {
		childIDs, _ := parent.ChildIDs()
		nodeID, _ := parent.ChildNodeID()
		return childIDs, nodeID, nil
	}

	newEdgeIDs := edgeIDs.nextTwoIDs()
	newNodeID := nodeIDs.nextID()

	children, err := parent.hRefine(newEdgeIDs, newNodeID)
	if err != nil {
		return [2]int{}, 0, err
	}
	m.Edges = append(m.Edges, children[0], children[1])

	parentPts := m.edgePoints(parentEdgeID)
	nodeCoords := geom.Between(parentPts[0], parentPts[1])
	m.Nodes = append(m.Nodes, NewNode(newNodeID, nodeCoords, parent.Boundary))

	return newEdgeIDs, newNodeID, nil
}

func (m *Mesh) newEdgeBetweenNodes(nodeIDs [2]int, edgeIDTracker *idTracker, parentElemID int) (int, error) {
	if nodeIDs[0] == nodeIDs[1] {
		chk.Panic("mesh: cannot create an edge between a node and itself (%d)\n", nodeIDs[0])
	}
	newEdgeID := edgeIDTracker.nextID()
	n0, n1 := m.Nodes[nodeIDs[0]], m.Nodes[nodeIDs[1]]

	ord := m.Elems[parentElemID].Element.OrderPoints(n0.Coords, n1.Coords)
	var a, b *Node
	switch {
	case ord == 0:
		return 0, &RefinementError{Kind: EdgeOnEqualPoints, ID: parentElemID}
	case ord < 0:
		a, b = n0, n1
	default:
		a, b = n1, n0
	}

	e := NewEdge(newEdgeID, a, b, false)
	m.Edges = append(m.Edges, e)
	return newEdgeID, nil
}

func (m *Mesh) upgradeUninitElems(uninit []*ElemUninit) ([]*Elem, error) {
	elems := make([]*Elem, 0, len(uninit))
	for _, u := range uninit {
		e, err := u.intoElem()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	for _, e := range elems {
		for _, edgeID := range e.Edges {
			m.Edges[edgeID].connectElem(e)
		}
		for _, nodeID := range e.Nodes {
			m.Nodes[nodeID].connectElem(e)
		}
	}
	return elems, nil
}

// SetEdgeActivation recomputes every non-boundary Edge's active pair
// from scratch. Must be called after any batch of h-refinements and
// before basis-spec/DoF resolution.
func (m *Mesh) SetEdgeActivation() {
	for _, e := range m.Edges {
		e.resetActivation()
	}
	var baseEdgeIDs []int
	for _, e := range m.Edges {
		if _, hasParent := e.ParentID(); !hasParent && !e.Boundary {
			baseEdgeIDs = append(baseEdgeIDs, e.ID)
		}
	}
	for _, id := range baseEdgeIDs {
		if !m.recSetEdgeActivation(id) {
			chk.Panic("mesh: unable to find an active Edge pair over Edge %d; the mesh must be malformed\n", id)
		}
	}
}

func (m *Mesh) recSetEdgeActivation(edgeID int) bool {
	e := m.Edges[edgeID]
	if !e.setActivation() {
		return false
	}
	if childIDs, ok := e.ChildIDs(); ok {
		leftOK := m.recSetEdgeActivation(childIDs[0])
		rightOK := m.recSetEdgeActivation(childIDs[1])
		switch {
		case leftOK && rightOK:
			e.resetActivation()
		case !leftOK && !rightOK:
			// leave the parent's own pair in place
		default:
			chk.Panic("mesh: children of Edge %d do not have consistent basis-function support; cannot set activation\n", edgeID)
		}
	}
	return true
}

// PRefRequest pairs an Elem id with the PRef to apply to it.
type PRefRequest struct {
	ElemID int
	Ref    PRef
}

// GlobalPRefinement applies the same PRef to every Elem.
func (m *Mesh) GlobalPRefinement(ref PRef) error {
	reqs := make([]PRefRequest, len(m.Elems))
	for i, e := range m.Elems {
		reqs[i] = PRefRequest{ElemID: e.ID, Ref: ref}
	}
	return m.ExecutePRefinements(reqs)
}

// PRefineElems applies ref to an explicit list of Elems.
func (m *Mesh) PRefineElems(elemIDs []int, ref PRef) error {
	reqs := make([]PRefRequest, len(elemIDs))
	for i, id := range elemIDs {
		reqs[i] = PRefRequest{ElemID: id, Ref: ref}
	}
	return m.ExecutePRefinements(reqs)
}

// ExecutePRefinements validates a batch (no duplicate or out-of-range
// Elem ids) and then applies it in one pass.
func (m *Mesh) ExecutePRefinements(requests []PRefRequest) error {
	seen := make(map[int]bool, len(requests))
	for _, r := range requests {
		if r.ElemID < 0 || r.ElemID >= len(m.Elems) {
			return &PRefError{Kind: PRefElemDoesntExist, ID: r.ElemID}
		}
		if seen[r.ElemID] {
			return &PRefError{Kind: PRefDoubleRefinement, ID: r.ElemID}
		}
		seen[r.ElemID] = true
	}
	for _, r := range requests {
		if err := m.Elems[r.ElemID].PolyOrders.Refine(r.Ref); err != nil {
			return err
		}
	}
	return nil
}

// SetGlobalExpansionOrders overwrites every Elem's (ni, nj).
func (m *Mesh) SetGlobalExpansionOrders(ni, nj uint8) error {
	for _, e := range m.Elems {
		if err := e.PolyOrders.Set(ni, nj); err != nil {
			return err
		}
	}
	return nil
}

// MaxExpansionOrders returns the component-wise max (ni, nj) over all
// Elems.
func (m *Mesh) MaxExpansionOrders() [2]uint8 {
	acc := [2]uint8{}
	for _, e := range m.Elems {
		acc = e.PolyOrders.MaxWith(acc)
	}
	return acc
}

// Stats summarizes the current refinement state of the Mesh.
type Stats struct {
	NumElements  int
	NumElems     int
	NumLeafElems int
	NumNodes     int
	NumEdges     int
	NumActiveEdges int
	MaxOrders    [2]uint8
	MaxHLevel    [2]uint8
}

// Stats computes a snapshot of the Mesh's size and refinement depth.
func (m *Mesh) Stats() Stats {
	s := Stats{
		NumElements: len(m.Elements),
		NumElems:    len(m.Elems),
		NumNodes:    len(m.Nodes),
		NumEdges:    len(m.Edges),
		MaxOrders:   m.MaxExpansionOrders(),
	}
	for _, e := range m.Elems {
		if !e.HasChildren() {
			s.NumLeafElems++
		}
		if e.HLevels.U > s.MaxHLevel[0] {
			s.MaxHLevel[0] = e.HLevels.U
		}
		if e.HLevels.V > s.MaxHLevel[1] {
			s.MaxHLevel[1] = e.HLevels.V
		}
	}
	for _, e := range m.Edges {
		if _, ok := e.ActiveElemPair(); ok {
			s.NumActiveEdges++
		}
	}
	return s
}
