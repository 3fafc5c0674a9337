// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package meshio loads the {"Elements": [...], "Nodes": [...]} JSON
// mesh schema, validates it, and builds a mesh.Mesh from it.
package meshio

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/cpmech/curlfem/geom"
	"github.com/cpmech/curlfem/mesh"
	"github.com/cpmech/gosl/utl"
)

// jsonElement is one entry of the document's "Elements" array.
type jsonElement struct {
	Materials []float64 `json:"materials"`
	NodeIDs   []int     `json:"node_ids"`
}

// jsonDoc is the full {"Elements": [...], "Nodes": [...]} document.
type jsonDoc struct {
	Elements []jsonElement `json:"Elements"`
	Nodes    [][]float64   `json:"Nodes"`
}

// LoadFile reads and parses the §6 JSON mesh schema from a path on
// disk.
func LoadFile(fn string) (*mesh.Mesh, error) {
	b, err := utl.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	return LoadJSON(bytes.NewReader(b))
}

// LoadJSON reads r as the §6 JSON mesh schema, validates it, and
// builds the corresponding mesh.Mesh.
func LoadJSON(r io.Reader) (*mesh.Mesh, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc jsonDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, &Error{Kind: Malformed}
	}

	points := make([]geom.Point, len(doc.Nodes))
	for i, c := range doc.Nodes {
		if len(c) != 2 {
			return nil, &Error{Kind: TooFewNodes, ID: i}
		}
		points[i] = geom.NewPoint(c[0], c[1])
	}
	for i := range points {
		for j := 0; j < i; j++ {
			if points[i].Equal(points[j]) {
				return nil, &Error{Kind: CoincidentNodes, ID: i}
			}
		}
	}

	refCount := make([]int, len(points))
	defs := make([]mesh.ElementDef, len(doc.Elements))
	for i, je := range doc.Elements {
		if len(je.NodeIDs) != 4 {
			return nil, &Error{Kind: DuplicateNodeIDs, ID: i}
		}
		var nodeIDs [4]int
		for k, id := range je.NodeIDs {
			if id < 0 || id >= len(points) {
				return nil, &Error{Kind: NodeIDOutOfRange, ID: i}
			}
			nodeIDs[k] = id
		}
		if nodeIDs[0] == nodeIDs[1] || nodeIDs[0] == nodeIDs[2] || nodeIDs[0] == nodeIDs[3] ||
			nodeIDs[1] == nodeIDs[2] || nodeIDs[1] == nodeIDs[3] || nodeIDs[2] == nodeIDs[3] {
			return nil, &Error{Kind: DuplicateNodeIDs, ID: i}
		}
		for _, id := range nodeIDs {
			refCount[id]++
		}

		materials := mesh.DefaultMaterials()
		if len(je.Materials) == 4 {
			materials = mesh.Materials{
				EpsRel: complex(je.Materials[0], je.Materials[1]),
				MuRel:  complex(je.Materials[2], je.Materials[3]),
			}
		}
		defs[i] = mesh.ElementDef{Materials: materials, NodeIDs: nodeIDs}
	}

	for id, n := range refCount {
		if n > 4 {
			return nil, &Error{Kind: TooManyElemRefs, ID: id}
		}
	}

	return mesh.NewMeshFromElements(points, defs)
}
