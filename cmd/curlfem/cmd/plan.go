// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cpmech/curlfem/mesh"
	"github.com/cpmech/curlfem/meshio"
)

// hRefEntry is one JSON-encoded h-refinement request.
type hRefEntry struct {
	ElemID    int    `json:"elem_id"`
	Kind      string `json:"kind"`
	Extension *int   `json:"extension,omitempty"`
}

func (e hRefEntry) toRequest() (mesh.HRefRequest, error) {
	var kind mesh.HRefKind
	switch e.Kind {
	case "T", "t":
		kind = mesh.HRefT
	case "U", "u":
		kind = mesh.HRefU
	case "V", "v":
		kind = mesh.HRefV
	default:
		return mesh.HRefRequest{}, fmt.Errorf("plan: unknown h-refinement kind %q on elem %d", e.Kind, e.ElemID)
	}
	return mesh.HRefRequest{ElemID: e.ElemID, Ref: mesh.HRef{Kind: kind, Extension: e.Extension}}, nil
}

// pRefEntry is one JSON-encoded p-refinement request, applied to an
// explicit list of Elems.
type pRefEntry struct {
	ElemIDs []int `json:"elem_ids"`
	DNi     int8  `json:"d_ni"`
	DNj     int8  `json:"d_nj"`
}

// plan is the small JSON document describing how to bring a freshly
// loaded mesh to the state assembly expects: a global starting
// expansion order, a batch of h-refinements, and any per-Elem
// p-refinements layered on afterwards.
type plan struct {
	GlobalNi     uint8       `json:"global_ni"`
	GlobalNj     uint8       `json:"global_nj"`
	HRefinements []hRefEntry `json:"h_refinements"`
	PRefinements []pRefEntry `json:"p_refinements"`
}

func loadPlan(path string) (*plan, error) {
	if path == "" {
		return &plan{GlobalNi: 2, GlobalNj: 2}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p plan
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("plan: malformed JSON: %w", err)
	}
	return &p, nil
}

// apply brings m to the state described by p: expansion orders first,
// then h-refinements (which also refreshes edge activation), then any
// additional p-refinements.
func (p *plan) apply(m *mesh.Mesh) error {
	if p.GlobalNi > 0 || p.GlobalNj > 0 {
		if err := m.SetGlobalExpansionOrders(p.GlobalNi, p.GlobalNj); err != nil {
			return err
		}
	}

	if len(p.HRefinements) > 0 {
		reqs := make([]mesh.HRefRequest, len(p.HRefinements))
		for i, e := range p.HRefinements {
			req, err := e.toRequest()
			if err != nil {
				return err
			}
			reqs[i] = req
		}
		if _, err := m.ExecuteHRefinements(reqs); err != nil {
			return err
		}
	}
	m.SetEdgeActivation()

	for _, e := range p.PRefinements {
		if err := m.PRefineElems(e.ElemIDs, mesh.NewPRef(e.DNi, e.DNj)); err != nil {
			return err
		}
	}
	return nil
}

// loadAndRefine loads a mesh from meshPath and brings it to the state
// described by the plan at planPath (or the default plan if empty).
func loadAndRefine(meshPath, planPath string) (*mesh.Mesh, error) {
	m, err := meshio.LoadFile(meshPath)
	if err != nil {
		return nil, fmt.Errorf("mesh load failed: %w", err)
	}
	p, err := loadPlan(planPath)
	if err != nil {
		return nil, fmt.Errorf("plan load failed: %w", err)
	}
	if err := p.apply(m); err != nil {
		return nil, fmt.Errorf("plan application failed: %w", err)
	}
	return m, nil
}
