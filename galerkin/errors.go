// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galerkin

import "github.com/cpmech/gosl/utl"

// SamplingErrorKind classifies why AssembleGEP refused an assembly
// request instead of sampling a malformed integrand.
type SamplingErrorKind int

const (
	// WrongContinuityCondition: an edge-type BasisSpec with a DoF
	// assigned is anchored to an Elem that is not (or no longer) a
	// member of its Edge's active pair.
	WrongContinuityCondition SamplingErrorKind = iota
	// EmptyDofSet: the Domain resolved zero DoFs, so A/B would be 0x0.
	EmptyDofSet
	// InvalidQuadratureSettings: an explicit quadrature override is
	// too coarse to integrate the mesh's own polynomial orders exactly.
	InvalidQuadratureSettings
)

// SamplingError reports why AssembleGEP could not proceed.
type SamplingError struct {
	Kind   SamplingErrorKind
	ElemID int
	EdgeID int
}

func (e *SamplingError) Error() string {
	switch e.Kind {
	case WrongContinuityCondition:
		return utl.Sf("galerkin: elem %d holds a dof-bearing spec on edge %d but is not a member of that edge's active pair", e.ElemID, e.EdgeID)
	case EmptyDofSet:
		return "galerkin: domain has no resolved dofs to assemble"
	case InvalidQuadratureSettings:
		return "galerkin: requested quadrature density is too coarse for the mesh's polynomial orders"
	default:
		return "galerkin: sampling error"
	}
}
