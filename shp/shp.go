// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements 1-D hierarchical shape-function tables: dense
// (N+1) x num_points lookups of a "tangential" polynomial family and a
// "normal" polynomial family, each with up to two derivatives, sampled
// on a fixed grid on (-1, 1). Two interchangeable variants are provided:
// KOL (simple hierarchical powers) and MaxOrtho (maximally orthogonal,
// Legendre-based).
package shp

import "github.com/cpmech/gosl/chk"

// ShapeFn is the common lookup interface both table variants satisfy.
// n ranges over 0..=MaxOrder(), p over 0..NumPoints().
type ShapeFn interface {
	Tang(n, p int) float64
	TangD1(n, p int) float64
	TangD2(n, p int) float64
	Norm(n, p int) float64
	NormD1(n, p int) float64
	NormD2(n, p int) float64
	MaxOrder() int
	NumPoints() int
}

// checkIndices panics (programmer error, per spec §7) if n or p is out of
// the table's allocated range.
func checkIndices(maxOrder, numPoints, n, p int) {
	if n < 0 || n > maxOrder {
		chk.Panic("shp: order n=%d out of range [0, %d]\n", n, maxOrder)
	}
	if p < 0 || p >= numPoints {
		chk.Panic("shp: point index p=%d out of range [0, %d)\n", p, numPoints)
	}
}
