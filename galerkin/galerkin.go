// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package galerkin drives parallel assembly of the generalized
// eigenvalue problem: one worker per Elem samples its own basis and its
// descendants' remapped bases, integrates every local-local and
// local-descendant spec pair, and ships the result as a private sparse
// shard through a channel to a single reducing goroutine.
package galerkin

import (
	"sync"

	"github.com/cpmech/curlfem/basis"
	"github.com/cpmech/curlfem/dofs"
	"github.com/cpmech/curlfem/integral"
	"github.com/cpmech/curlfem/mesh"
	"github.com/cpmech/curlfem/quad"
	"github.com/cpmech/curlfem/shp"
	"github.com/cpmech/curlfem/sparse"
)

// IntegralFn is the signature shared by integral.L2 and
// integral.CurlCurl; AssembleGEP takes one of each as AI, BI.
type IntegralFn func(pDir, qDir mesh.BasisDir, pI, pJ, qI, qJ uint8, pBasis, qBasis *basis.Sampler, wu, wv []float64, materials mesh.Materials) integral.Result

// GEP is the assembled generalized eigenvalue problem A x = λ B x.
type GEP struct {
	A, B *sparse.Symmetric
}

// shard is one worker's private contribution, ready to be merged into
// the global A/B matrices.
type shard struct {
	a, b *sparse.Symmetric
}

// AssembleGEP builds the GEP over every Elem in d, sampling with the
// given shape-function family. Each entry of numGLQ that is > 0
// overrides the default quadrature density of its own axis (max mesh
// order + 2); an entry below that default is rejected with
// InvalidQuadratureSettings.
func AssembleGEP(d *dofs.Domain, family shp.Family, numGLQ [2]int, AI, BI IntegralFn) (*GEP, error) {
	if len(d.DoFs) == 0 {
		return nil, &SamplingError{Kind: EmptyDofSet}
	}
	if err := checkActivePairContinuity(d); err != nil {
		return nil, err
	}

	maxOrders := d.Mesh.MaxExpansionOrders()
	numU, numV := numGLQ[0], numGLQ[1]
	minU, minV := int(maxOrders[0])+2, int(maxOrders[1])+2
	if numU > 0 && numU < minU {
		return nil, &SamplingError{Kind: InvalidQuadratureSettings}
	}
	if numV > 0 && numV < minV {
		return nil, &SamplingError{Kind: InvalidQuadratureSettings}
	}
	if numU <= 0 {
		numU = minU
	}
	if numV <= 0 {
		numV = minV
	}

	ruleU, err := quad.GaussLegendre(numU, false)
	if err != nil {
		return nil, err
	}
	ruleV, err := quad.GaussLegendre(numV, false)
	if err != nil {
		return nil, err
	}

	nDof := len(d.DoFs)
	results := make(chan shard, len(d.Mesh.Elems))
	var wg sync.WaitGroup

	for _, e := range d.Mesh.Elems {
		e := e
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- assembleElem(d, e, family, ruleU.Nodes, ruleV.Nodes, ruleU.Weights, ruleV.Weights, nDof, AI, BI)
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	gep := &GEP{A: sparse.New(nDof), B: sparse.New(nDof)}
	for s := range results {
		gep.A.Consume(s.a)
		gep.B.Consume(s.b)
	}
	return gep, nil
}

func assembleElem(d *dofs.Domain, e *mesh.Elem, family shp.Family, u, v, wu, wv []float64, nDof int, AI, BI IntegralFn) shard {
	a, b := sparse.New(nDof), sparse.New(nDof)
	materials := e.Element.Materials

	ownSpecs := dofedSpecs(d.ByElem[e.ID])
	if len(ownSpecs) == 0 && len(d.Mesh.DescendantElemIDs(e.ID)) == 0 {
		return shard{a: a, b: b}
	}

	bsLocal := basis.NewSampler(family, e.PolyOrders, false, u, v, e, nil)

	for i := 0; i < len(ownSpecs); i++ {
		for j := i; j < len(ownSpecs); j++ {
			p, q := ownSpecs[i], ownSpecs[j]
			pushPair(a, b, p, q, bsLocal, bsLocal, wu, wv, materials, AI, BI)
		}
	}

	for _, descID := range d.Mesh.DescendantElemIDs(e.ID) {
		descSpecs := dofedSpecs(d.ByElem[descID])
		if len(descSpecs) == 0 {
			continue
		}
		descElem := d.Mesh.Elems[descID]
		bsAncestorOnD := basis.NewSampler(family, e.PolyOrders, false, u, v, e, descElem)
		bsDLocal := basis.NewSampler(family, descElem.PolyOrders, false, u, v, descElem, nil)

		for _, p := range ownSpecs {
			for _, q := range descSpecs {
				pushPair(a, b, p, q, bsAncestorOnD, bsDLocal, wu, wv, materials, AI, BI)
			}
		}
	}

	return shard{a: a, b: b}
}

// checkActivePairContinuity verifies every dof-bearing edge-type spec
// is anchored on one of its Edge's two active Elems, per the
// H(curl)-conforming continuity the resolver is supposed to maintain.
func checkActivePairContinuity(d *dofs.Domain) error {
	for edgeID, specs := range d.ByEdge {
		edge := d.Mesh.Edges[edgeID]
		pair, ok := edge.ActiveElemPair()
		for _, s := range specs {
			if !s.HasDof {
				continue
			}
			if !ok || (s.ElemID != pair[0] && s.ElemID != pair[1]) {
				return &SamplingError{Kind: WrongContinuityCondition, ElemID: s.ElemID, EdgeID: edgeID}
			}
		}
	}
	return nil
}

func dofedSpecs(specs []*dofs.BasisSpec) []*dofs.BasisSpec {
	var out []*dofs.BasisSpec
	for _, s := range specs {
		if s.HasDof {
			out = append(out, s)
		}
	}
	return out
}

func pushPair(a, b *sparse.Symmetric, p, q *dofs.BasisSpec, pBasis, qBasis *basis.Sampler, wu, wv []float64, materials mesh.Materials, AI, BI IntegralFn) {
	ra := AI(p.Dir, q.Dir, p.I, p.J, q.I, q.J, pBasis, qBasis, wu, wv, materials)
	rb := BI(p.Dir, q.Dir, p.I, p.J, q.I, q.J, pBasis, qBasis, wu, wv, materials)
	if ra.Full == 0 && rb.Full == 0 {
		return
	}
	a.Insert(p.DofID, q.DofID, ra.Full)
	b.Insert(p.DofID, q.DofID, rb.Full)
}
