// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package quad generates Gauss-Legendre quadrature nodes and weights on
// (-1, 1) via the Golub-Welsch tridiagonal eigenvalue method, plus the
// affine rescaling needed to map them onto an element's parametric range.
package quad

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Rule holds quadrature nodes and weights on (-1, 1)
type Rule struct {
	Nodes   []float64
	Weights []float64
}

// GaussLegendre builds n Gauss-Legendre nodes/weights on (-1, 1) by
// diagonalizing the symmetric tridiagonal Jacobi matrix with off-diagonal
// entries β_i = 0.5/sqrt(1-(2i)^-2), i = 1..n-1. Eigenvalues (sorted
// ascending) are the nodes; weights are 2*(first eigenvector component)^2.
//
// If endpoints is true, ±1 are inserted at the extremes with unit weight
// instead (Gauss-Lobatto-style endpoint augmentation).
func GaussLegendre(n int, endpoints bool) (*Rule, error) {
	if n < 1 {
		return nil, chk.Err("quad: n must be >= 1, got %d\n", n)
	}
	if n == 1 {
		if endpoints {
			return nil, chk.Err("quad: endpoint mode requires n >= 2, got %d\n", n)
		}
		return &Rule{Nodes: []float64{0}, Weights: []float64{2}}, nil
	}

	jacobi := mat.NewSymDense(n, nil)
	for i := 1; i < n; i++ {
		f := float64(i)
		beta := 0.5 / math.Sqrt(1.0-1.0/(4.0*f*f))
		jacobi.SetSym(i-1, i, beta)
	}

	var eig mat.EigenSym
	ok := eig.Factorize(jacobi, true)
	if !ok {
		return nil, chk.Err("quad: eigendecomposition of Jacobi matrix failed for n=%d\n", n)
	}

	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	type pair struct {
		node   float64
		weight float64
	}
	pairs := make([]pair, n)
	for i := 0; i < n; i++ {
		v0 := vectors.At(0, i)
		pairs[i] = pair{node: values[i], weight: 2 * v0 * v0}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].node < pairs[j].node })

	nodes := make([]float64, n)
	weights := make([]float64, n)
	for i, p := range pairs {
		nodes[i] = p.node
		weights[i] = p.weight
	}

	if !endpoints {
		return &Rule{Nodes: nodes, Weights: weights}, nil
	}

	augNodes := make([]float64, n+2)
	augWeights := make([]float64, n+2)
	augNodes[0] = -1
	augWeights[0] = 1
	copy(augNodes[1:], nodes)
	copy(augWeights[1:], weights)
	augNodes[n+1] = 1
	augWeights[n+1] = 1
	return &Rule{Nodes: augNodes, Weights: augWeights}, nil
}

// Rescale affinely maps a rule's nodes from (-1, 1) into (min, max),
// returning the scale factor (max-min)/2 — needed for Jacobian
// bookkeeping by the caller — and the shifted nodes. Weights are
// unaffected by the caller's choice of scale (the scale factor is applied
// separately wherever an area/length element is computed).
func Rescale(nodes []float64, min, max float64) (scale float64, shifted []float64, err error) {
	if min >= max {
		return 0, nil, chk.Err("quad: invalid rescale range [%g, %g]\n", min, max)
	}
	scale = (max - min) / 2
	offset := (max + min) / 2
	shifted = make([]float64, len(nodes))
	for i, x := range nodes {
		shifted[i] = scale*x + offset
	}
	return scale, shifted, nil
}
