// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package basis implements the tensor-product vector basis-function
// sampler: given a pair of 1-D hierarchical shape-function tables (one
// per parametric axis) and the real-to-parametric Jacobian of the Elem
// being sampled, it evaluates the eight H(curl) query families consumed
// by the integral kernels.
package basis

import (
	"math"

	"github.com/cpmech/curlfem/geom"
	"github.com/cpmech/curlfem/mesh"
	"github.com/cpmech/curlfem/shp"
)

// Sampler is built fresh per Elem, per worker; its ShapeFn tables are
// cheap to discard and rebuild, so it carries no shared mutable state
// and is safe to use from one goroutine at a time.
type Sampler struct {
	tableU, tableV shp.ShapeFn
	tInv           geom.Mat2
	sampleScale    float64
	paraScale      [2]float64
}

func rescale(points []float64, r [2]float64) []float64 {
	out := make([]float64, len(points))
	half := (r[1] - r[0]) / 2
	mid := (r[1] + r[0]) / 2
	for i, x := range points {
		out[i] = mid + half*x
	}
	return out
}

// NewSampler builds a Sampler for elem, optionally remapped onto one of
// its descendants: pass descendant = nil to sample elem's own basis, or
// a strict descendant of elem to sample elem's basis as it appears on
// that finer Elem's grid (the construction §4.4 describes).
func NewSampler(family shp.Family, maxOrders mesh.PolyOrders, computeD2 bool, u, v []float64, elem, descendant *mesh.Elem) *Sampler {
	rescaledU, rescaledV := u, v
	sU, sV := 1.0, 1.0
	absRange := elem.ParametricRange()

	if descendant != nil {
		sub := descendant.RelativeParametricRange(elem.ID)
		rescaledU = rescale(u, sub[0])
		rescaledV = rescale(v, sub[1])
		sU = (sub[0][1] - sub[0][0]) / 2
		sV = (sub[1][1] - sub[1][0]) / 2
		absRange = descendant.ParametricRange()
	}

	tableU := shp.New(family, int(maxOrders.Ni), rescaledU, computeD2)
	tableV := shp.New(family, int(maxOrders.Nj), rescaledV, computeD2)

	t := elem.Element.Gradient(absRange[0], absRange[1])
	tInv := t.Inverse()

	sampleScale := 1.0
	if descendant != nil {
		sampleScale = math.Abs(t.Det())
	}

	// note the swap: para_scale[0] is the v-axis scale, [1] is u-axis.
	return &Sampler{
		tableU:      tableU,
		tableV:      tableV,
		tInv:        tInv,
		sampleScale: sampleScale,
		paraScale:   [2]float64{sV, sU},
	}
}

// SampleScale is |det T|, the descendant sub-area compensation factor;
// 1 when this Sampler was not built with a descendant.
func (s *Sampler) SampleScale() float64 { return s.sampleScale }

// ParaScale returns (s_v, s_u).
func (s *Sampler) ParaScale() [2]float64 { return s.paraScale }

// GLQScale is the quadrature-weight compensation factor consumed by the
// integral kernels.
func (s *Sampler) GLQScale() float64 { return s.paraScale[0] + s.paraScale[1] }

// FU is the U-directed vector basis function's value, scaled into the
// real x-component by the inverse Jacobian's matching diagonal entry
// (off-diagonal terms are identically zero on the axis-aligned Elements
// this system builds, so the "row" of T^-1 a U-directed function
// carries collapses to that single entry).
func (s *Sampler) FU(i, j, m, n int) float64 {
	return s.tInv.U[0] * s.tableU.Tang(i, m) * s.tableV.Norm(j, n)
}

// FV is the V-directed counterpart of FU.
func (s *Sampler) FV(i, j, m, n int) float64 {
	return s.tInv.V[1] * s.tableU.Norm(i, m) * s.tableV.Tang(j, n)
}

// FUD1 is the U-directed basis function's derivative, remapped through
// the chain rule by para_scale and the inverse Jacobian.
func (s *Sampler) FUD1(i, j, m, n int) float64 {
	g := geom.NewVec2(
		s.tableU.Tang(i, m)*s.tableV.NormD1(j, n)*s.paraScale[0],
		s.tableU.TangD1(i, m)*s.tableV.Norm(j, n)*s.paraScale[1],
	)
	return s.tInv.U.Dot(g)
}

// FVD1 is the V-directed counterpart of FUD1.
func (s *Sampler) FVD1(i, j, m, n int) float64 {
	g := geom.NewVec2(
		s.tableU.Norm(i, m)*s.tableV.TangD1(j, n)*s.paraScale[0],
		s.tableU.NormD1(i, m)*s.tableV.Tang(j, n)*s.paraScale[1],
	)
	return s.tInv.V.Dot(g)
}

// FUD2 is FUD1 with second derivatives, scaled by para_scale^2.
func (s *Sampler) FUD2(i, j, m, n int) float64 {
	g := geom.NewVec2(
		s.tableU.Tang(i, m)*s.tableV.NormD2(j, n)*s.paraScale[0]*s.paraScale[0],
		s.tableU.TangD2(i, m)*s.tableV.Norm(j, n)*s.paraScale[1]*s.paraScale[1],
	)
	return s.tInv.U.Dot(g)
}

// FVD2 is the V-directed counterpart of FUD2.
func (s *Sampler) FVD2(i, j, m, n int) float64 {
	g := geom.NewVec2(
		s.tableU.Norm(i, m)*s.tableV.TangD2(j, n)*s.paraScale[0]*s.paraScale[0],
		s.tableU.NormD2(i, m)*s.tableV.Tang(j, n)*s.paraScale[1]*s.paraScale[1],
	)
	return s.tInv.V.Dot(g)
}

// FUDD is the U-directed mixed partial.
func (s *Sampler) FUDD(i, j, m, n int) float64 {
	return s.tInv.U[0] * s.tableU.TangD1(i, m) * s.tableV.NormD1(j, n) * s.paraScale[0] * s.paraScale[1]
}

// FVDD is the V-directed mixed partial.
func (s *Sampler) FVDD(i, j, m, n int) float64 {
	return s.tInv.V[1] * s.tableU.NormD1(i, m) * s.tableV.TangD1(j, n) * s.paraScale[0] * s.paraScale[1]
}
