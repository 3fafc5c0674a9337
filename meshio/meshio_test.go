// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const twoElemDoc = `{
	"Nodes": [[0,0],[1,0],[2,0],[0,1],[1,1],[2,1]],
	"Elements": [
		{"materials": [1,0,1,0], "node_ids": [0,1,3,4]},
		{"materials": [2,0,1,0], "node_ids": [1,2,4,5]}
	]
}`

func Test_meshio01(tst *testing.T) {

	chk.PrintTitle("meshio01: a valid two-element document loads successfully")

	m, err := LoadJSON(strings.NewReader(twoElemDoc))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(m.Elements) != 2 {
		tst.Errorf("expected 2 elements, got %d", len(m.Elements))
	}
	if len(m.Nodes) != 6 {
		tst.Errorf("expected 6 nodes, got %d", len(m.Nodes))
	}
}

func Test_meshio02(tst *testing.T) {

	chk.PrintTitle("meshio02: duplicate node ids within an element are rejected")

	doc := `{"Nodes": [[0,0],[1,0],[0,1],[1,1]], "Elements": [{"materials":[1,0,1,0], "node_ids":[0,1,1,3]}]}`
	_, err := LoadJSON(strings.NewReader(doc))
	if err == nil {
		tst.Fatalf("expected an error")
	}
	merr, ok := err.(*Error)
	if !ok || merr.Kind != DuplicateNodeIDs {
		tst.Fatalf("expected DuplicateNodeIDs, got %v", err)
	}
}

func Test_meshio03(tst *testing.T) {

	chk.PrintTitle("meshio03: coincident nodes are rejected")

	doc := `{"Nodes": [[0,0],[1,0],[0,1],[1,1],[0,0]], "Elements": [{"materials":[1,0,1,0], "node_ids":[0,1,3,2]}]}`
	_, err := LoadJSON(strings.NewReader(doc))
	if err == nil {
		tst.Fatalf("expected an error")
	}
	merr, ok := err.(*Error)
	if !ok || merr.Kind != CoincidentNodes {
		tst.Fatalf("expected CoincidentNodes, got %v", err)
	}
}

func Test_meshio04(tst *testing.T) {

	chk.PrintTitle("meshio04: a node id out of range is rejected")

	doc := `{"Nodes": [[0,0],[1,0],[0,1],[1,1]], "Elements": [{"materials":[1,0,1,0], "node_ids":[0,1,2,9]}]}`
	_, err := LoadJSON(strings.NewReader(doc))
	if err == nil {
		tst.Fatalf("expected an error")
	}
	merr, ok := err.(*Error)
	if !ok || merr.Kind != NodeIDOutOfRange {
		tst.Fatalf("expected NodeIDOutOfRange, got %v", err)
	}
}

func Test_meshio05(tst *testing.T) {

	chk.PrintTitle("meshio05: malformed JSON is rejected")

	_, err := LoadJSON(strings.NewReader("not json"))
	if err == nil {
		tst.Fatalf("expected an error")
	}
	merr, ok := err.(*Error)
	if !ok || merr.Kind != Malformed {
		tst.Fatalf("expected Malformed, got %v", err)
	}
}
