// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// maxOrthoTabulatedOrder is the highest polynomial order for which the
// "norm" (Q-function) rational-combination coefficients below are
// published; orders are enumerated for n = 2..12 (11 tables). This
// bounds MaxOrthoShapeFn independently of the mesh-wide [1, 20] order
// range: an Elem may carry p-orders above 12, but a direction sampled
// with the MaxOrtho family on this table cannot.
const maxOrthoTabulatedOrder = 12

// eucNormCoeffs[k] is the Euclidean-normalization scalar for order n = k+2.
var eucNormCoeffs = []float64{
	0.968246, 2.561738, 0.838525, 4.248161, 0.816397, 5.882766, 0.808509, 1.0, 1.0, 1.0, 1.0,
}

// qNumerators[k] and qDenominators[k] give the rational weights of the
// Legendre combination for the norm function of order n = k+2:
// norm_n = eucNormCoeffs[k] * sum_j (qNumerators[k][j]/qDenominators[k]) * P_j(x)
var qNumerators = [][]float64{
	{-1, 0, 1},
	{0, -3, 0, 3},
	{-1, 0, -5, 0, 6},
	{0, -3, 0, -7, 0, 10},
	{-1, 0, -5, 0, -9, 0, 15},
	{0, -3, 0, -7, 0, -11, 0, 21},
	{-1, 0, -5, 0, -9, 0, -13, 0, 28},
	{0, -3, 0, -7, 0, -11, 0, -15, 0, 36},
	{-1, 0, -5, 0, -9, 0, -13, 0, -17, 0, 40},
	{0, -3, 0, -7, 0, -11, 0, -15, 0, -19, 0, 55},
	{-1, 0, -5, 0, -9, 0, -13, 0, -17, 0, -21, 0, 66},
}

var qDenominators = []float64{1, 3, 6, 10, 15, 21, 28, 36, 40, 55, 66}

func qWeights(order int) []float64 {
	k := order - 2
	num := qNumerators[k]
	den := qDenominators[k]
	w := make([]float64, len(num))
	for i, n := range num {
		w[i] = n / den
	}
	return w
}

// legendre holds P_n(x), P_n'(x), P_n''(x) for n = 0..maxOrder at each
// sample point, built by the standard three-term recurrence.
type legendre struct {
	l, d1, d2 [][]float64
}

func buildLegendre(maxOrder int, points []float64, computeD2 bool) *legendre {
	np := len(points)
	l := make([][]float64, maxOrder+1)
	d1 := make([][]float64, maxOrder+1)
	var d2 [][]float64
	if computeD2 {
		d2 = make([][]float64, maxOrder+1)
	}

	var denom []float64
	if computeD2 {
		denom = make([]float64, np)
		for p, x := range points {
			if math.Abs(math.Abs(x)-1) < 1e-15 {
				denom[p] = 1
			} else {
				denom[p] = 1 - x*x
			}
		}
	}

	for n := 0; n <= maxOrder; n++ {
		nf := float64(n)
		switch n {
		case 0:
			l[n] = constSlice(np, 1)
			d1[n] = constSlice(np, 0)
			if computeD2 {
				d2[n] = constSlice(np, 0)
			}
		case 1:
			l[n] = append([]float64(nil), points...)
			d1[n] = constSlice(np, 1)
			if computeD2 {
				d2[n] = constSlice(np, 0)
			}
		default:
			cur := make([]float64, np)
			for p, x := range points {
				cur[p] = ((2*nf-1)*x*l[n-1][p] - (nf-1)*l[n-2][p]) / nf
			}
			l[n] = cur

			dd1 := make([]float64, np)
			for p, x := range points {
				dd1[p] = nf*l[n-1][p] + x*d1[n-1][p]
			}
			d1[n] = dd1

			if computeD2 {
				if n == 2 {
					d2[n] = constSlice(np, 3)
				} else {
					dd2 := make([]float64, np)
					for p, x := range points {
						dd2[p] = (2*x*dd1[p] - nf*(nf+1)*cur[p]) / denom[p]
					}
					d2[n] = dd2
				}
			}
		}
	}
	return &legendre{l: l, d1: d1, d2: d2}
}

func weightedSum(table [][]float64, weights []float64, scale float64, np int) []float64 {
	sum := make([]float64, np)
	for order, w := range weights {
		row := table[order]
		for p := 0; p < np; p++ {
			sum[p] += w * row[p]
		}
	}
	for p := range sum {
		sum[p] *= scale
	}
	return sum
}

// MaxOrthoShapeFn is the maximally-orthogonal table: tang is the
// Legendre family P_n(x); norm is a tabulated rational Legendre
// combination that maximizes orthogonality between orders.
type MaxOrthoShapeFn struct {
	maxOrder  int
	numPoints int
	leg       *legendre
	norm      [][]float64
	normD1    [][]float64
	normD2    [][]float64
	hasD2     bool
}

// NewMaxOrtho builds a MaxOrtho table for orders 0..=maxOrder sampled at
// points. Panics (programmer error) if maxOrder exceeds the tabulated
// range of the norm family (see maxOrthoTabulatedOrder).
func NewMaxOrtho(maxOrder int, points []float64, computeD2 bool) *MaxOrthoShapeFn {
	if maxOrder > maxOrthoTabulatedOrder {
		chk.Panic("shp: MaxOrtho norm family is only tabulated through order %d, got %d\n", maxOrthoTabulatedOrder, maxOrder)
	}
	np := len(points)
	leg := buildLegendre(maxOrder, points, computeD2)

	o := &MaxOrthoShapeFn{
		maxOrder:  maxOrder,
		numPoints: np,
		leg:       leg,
		norm:      make([][]float64, maxOrder+1),
		normD1:    make([][]float64, maxOrder+1),
		hasD2:     computeD2,
	}
	if computeD2 {
		o.normD2 = make([][]float64, maxOrder+1)
	}

	for n := 0; n <= maxOrder; n++ {
		switch n {
		case 0:
			o.norm[n] = mapSlice(points, func(x float64) float64 { return 1 - x })
			o.normD1[n] = constSlice(np, -1)
			if computeD2 {
				o.normD2[n] = constSlice(np, 0)
			}
		case 1:
			o.norm[n] = mapSlice(points, func(x float64) float64 { return 1 + x })
			o.normD1[n] = constSlice(np, 1)
			if computeD2 {
				o.normD2[n] = constSlice(np, 0)
			}
		default:
			w := qWeights(n)
			scale := eucNormCoeffs[n-2]
			o.norm[n] = weightedSum(leg.l, w, scale, np)
			o.normD1[n] = weightedSum(leg.d1, w, scale, np)
			if computeD2 {
				o.normD2[n] = weightedSum(leg.d2, w, scale, np)
			}
		}
	}
	return o
}

func (o *MaxOrthoShapeFn) MaxOrder() int  { return o.maxOrder }
func (o *MaxOrthoShapeFn) NumPoints() int { return o.numPoints }

func (o *MaxOrthoShapeFn) Tang(n, p int) float64 {
	checkIndices(o.maxOrder, o.numPoints, n, p)
	return o.leg.l[n][p]
}

func (o *MaxOrthoShapeFn) TangD1(n, p int) float64 {
	checkIndices(o.maxOrder, o.numPoints, n, p)
	return o.leg.d1[n][p]
}

func (o *MaxOrthoShapeFn) TangD2(n, p int) float64 {
	checkIndices(o.maxOrder, o.numPoints, n, p)
	if !o.hasD2 {
		return 0
	}
	return o.leg.d2[n][p]
}

func (o *MaxOrthoShapeFn) Norm(n, p int) float64 {
	checkIndices(o.maxOrder, o.numPoints, n, p)
	return o.norm[n][p]
}

func (o *MaxOrthoShapeFn) NormD1(n, p int) float64 {
	checkIndices(o.maxOrder, o.numPoints, n, p)
	return o.normD1[n][p]
}

func (o *MaxOrthoShapeFn) NormD2(n, p int) float64 {
	checkIndices(o.maxOrder, o.numPoints, n, p)
	if !o.hasD2 {
		return 0
	}
	return o.normD2[n][p]
}
