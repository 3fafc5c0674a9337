// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// KOLShapeFn is the simple hierarchical ("KOL") table:
//
//	tang_n(x)   = x^n
//	tang_n'(x)  = n*x^(n-1)
//	tang_n''(x) = n*(n-1)*x^(n-2)
//
//	norm_0 = 1-x, norm_1 = 1+x
//	norm_n = x^n - 1 (n even, n>=2), x^n - x (n odd, n>=3)
type KOLShapeFn struct {
	maxOrder  int
	numPoints int
	tang      [][]float64
	tangD1    [][]float64
	tangD2    [][]float64
	norm      [][]float64
	normD1    [][]float64
	hasD2     bool
}

// NewKOL builds a KOL table for orders 0..=maxOrder sampled at points.
// If computeD2 is false, TangD2/NormD2 lookups are not allocated and
// evaluate to zero (never consulted by a caller that skipped that flag).
func NewKOL(maxOrder int, points []float64, computeD2 bool) *KOLShapeFn {
	np := len(points)
	o := &KOLShapeFn{
		maxOrder:  maxOrder,
		numPoints: np,
		tang:      make([][]float64, maxOrder+1),
		tangD1:    make([][]float64, maxOrder+1),
		norm:      make([][]float64, maxOrder+1),
		normD1:    make([][]float64, maxOrder+1),
		hasD2:     computeD2,
	}
	if computeD2 {
		o.tangD2 = make([][]float64, maxOrder+1)
	}

	for n := 0; n <= maxOrder; n++ {
		switch n {
		case 0:
			o.tang[n] = constSlice(np, 1)
			o.tangD1[n] = constSlice(np, 0)
			if computeD2 {
				o.tangD2[n] = constSlice(np, 0)
			}
			o.norm[n] = mapSlice(points, func(x float64) float64 { return 1 - x })
			o.normD1[n] = constSlice(np, -1)
		case 1:
			o.tang[n] = append([]float64(nil), points...)
			o.tangD1[n] = constSlice(np, 1)
			if computeD2 {
				o.tangD2[n] = constSlice(np, 0)
			}
			o.norm[n] = mapSlice(points, func(x float64) float64 { return 1 + x })
			o.normD1[n] = constSlice(np, 1)
		default:
			nf := float64(n)
			prev := o.tang[n-1]
			cur := make([]float64, np)
			for p := range points {
				cur[p] = prev[p] * points[p]
			}
			o.tang[n] = cur

			d1 := make([]float64, np)
			for p := range points {
				d1[p] = nf * prev[p]
			}
			o.tangD1[n] = d1

			if computeD2 {
				switch n {
				case 2:
					o.tangD2[n] = constSlice(np, 2)
				case 3:
					o.tangD2[n] = mapSlice(points, func(x float64) float64 { return 6 * x })
				default:
					prev2 := o.tang[n-2]
					d2 := make([]float64, np)
					for p := range points {
						d2[p] = nf * (nf - 1) * prev2[p]
					}
					o.tangD2[n] = d2
				}
			}

			if n%2 == 0 {
				o.norm[n] = mapSlice(cur, func(x float64) float64 { return x - 1 })
				o.normD1[n] = append([]float64(nil), d1...)
			} else {
				nrm := make([]float64, np)
				for p := range points {
					nrm[p] = cur[p] - points[p]
				}
				o.norm[n] = nrm
				nd1 := make([]float64, np)
				for p := range points {
					nd1[p] = d1[p] - 1
				}
				o.normD1[n] = nd1
			}
		}
	}
	return o
}

func constSlice(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func mapSlice(in []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(in))
	for i, x := range in {
		out[i] = f(x)
	}
	return out
}

func (o *KOLShapeFn) MaxOrder() int  { return o.maxOrder }
func (o *KOLShapeFn) NumPoints() int { return o.numPoints }

func (o *KOLShapeFn) Tang(n, p int) float64 {
	checkIndices(o.maxOrder, o.numPoints, n, p)
	return o.tang[n][p]
}

func (o *KOLShapeFn) TangD1(n, p int) float64 {
	checkIndices(o.maxOrder, o.numPoints, n, p)
	return o.tangD1[n][p]
}

func (o *KOLShapeFn) TangD2(n, p int) float64 {
	checkIndices(o.maxOrder, o.numPoints, n, p)
	if !o.hasD2 {
		return 0
	}
	return o.tangD2[n][p]
}

func (o *KOLShapeFn) Norm(n, p int) float64 {
	checkIndices(o.maxOrder, o.numPoints, n, p)
	return o.norm[n][p]
}

func (o *KOLShapeFn) NormD1(n, p int) float64 {
	checkIndices(o.maxOrder, o.numPoints, n, p)
	return o.normD1[n][p]
}

// NormD2 coincides with TangD2: the norm family differs from the tang
// family by an additive constant or a linear term, both of which vanish
// under two derivatives.
func (o *KOLShapeFn) NormD2(n, p int) float64 {
	return o.TangD2(n, p)
}
