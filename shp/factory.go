// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Family selects which ShapeFn variant a basis.Sampler builds its
// per-axis tables from. Both families expose the identical
// (maxOrder, points, computeD2) constructor contract so a domain can
// choose between them at sampler-construction time.
type Family int

const (
	// KOL is the simple hierarchical (power) family.
	KOL Family = iota
	// MaxOrtho is the maximally-orthogonal (Legendre-based) family.
	MaxOrtho
)

// New builds a ShapeFn of the requested family.
func New(family Family, maxOrder int, points []float64, computeD2 bool) ShapeFn {
	switch family {
	case KOL:
		return NewKOL(maxOrder, points, computeD2)
	case MaxOrtho:
		return NewMaxOrtho(maxOrder, points, computeD2)
	default:
		panic("shp: unknown Family")
	}
}
