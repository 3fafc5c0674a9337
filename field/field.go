// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field reconstructs the real-space X/Y components of an
// eigenvector on a uniform per-leaf grid, derives pointwise scalar
// quantities from them, and dumps the result as a legacy ASCII VTK
// unstructured grid.
package field

import (
	"math"

	"github.com/cpmech/curlfem/basis"
	"github.com/cpmech/curlfem/dofs"
	"github.com/cpmech/curlfem/mesh"
	"github.com/cpmech/curlfem/shp"
	"github.com/cpmech/gosl/utl"
)

// LeafGrid is one leaf Elem's reconstructed sample grid: nx*ny points
// in row-major (m varies over u, n over v) order, plus whatever
// quantities have been computed on it.
type LeafGrid struct {
	ElemID     int
	RealX      [][]float64
	RealY      [][]float64
	Quantities map[string][][]float64
}

// Field holds the per-leaf reconstruction over an entire Domain.
type Field struct {
	Domain *dofs.Domain
	NX, NY int
	Leaves []*LeafGrid
}

func leafElems(m *mesh.Mesh) []*mesh.Elem {
	var out []*mesh.Elem
	for _, e := range m.Elems {
		if !e.HasChildren() {
			out = append(out, e)
		}
	}
	return out
}

// NewField allocates an empty per-leaf grid of density (nx, ny) over
// every leaf Elem of d, precomputing each leaf's real-space point
// geometry.
func NewField(d *dofs.Domain, nx, ny int) *Field {
	u := utl.LinSpace(-1, 1, nx)
	v := utl.LinSpace(-1, 1, ny)

	f := &Field{Domain: d, NX: nx, NY: ny}
	for _, e := range leafElems(d.Mesh) {
		realX := make([][]float64, nx)
		realY := make([][]float64, nx)
		for m := 0; m < nx; m++ {
			realX[m] = make([]float64, ny)
			realY[m] = make([]float64, ny)
			for n := 0; n < ny; n++ {
				p := e.RealPoint(u[m], v[n])
				realX[m][n] = p.X
				realY[m][n] = p.Y
			}
		}
		f.Leaves = append(f.Leaves, &LeafGrid{
			ElemID:     e.ID,
			RealX:      realX,
			RealY:      realY,
			Quantities: make(map[string][][]float64),
		})
	}
	return f
}

func zeroGrid(nx, ny int) [][]float64 {
	g := make([][]float64, nx)
	for m := range g {
		g[m] = make([]float64, ny)
	}
	return g
}

// Reconstruct fills the "X" and "Y" quantities on every leaf by
// accumulating eigenvector[spec.DofID] * f_u(...) (for U-directed
// specs, into X) or * f_v(...) (for V-directed specs, into Y) over
// every ancestor of the leaf, including the leaf itself. W-directed
// specs do not contribute to either component.
func (f *Field) Reconstruct(eigenvector []float64, family shp.Family) error {
	if len(eigenvector) != len(f.Domain.DoFs) {
		return &UniformFieldError{Kind: MismatchedSolutionSize, Expected: len(f.Domain.DoFs), Got: len(eigenvector)}
	}

	u := utl.LinSpace(-1, 1, f.NX)
	v := utl.LinSpace(-1, 1, f.NY)

	for _, leaf := range f.Leaves {
		x := zeroGrid(f.NX, f.NY)
		y := zeroGrid(f.NX, f.NY)
		leafElem := f.Domain.Mesh.Elems[leaf.ElemID]

		chain := append(f.Domain.Mesh.AncestorElemIDs(leaf.ElemID), leaf.ElemID)
		for _, ancestorID := range chain {
			ancestor := f.Domain.Mesh.Elems[ancestorID]
			var sampler *basis.Sampler
			if ancestorID == leaf.ElemID {
				sampler = basis.NewSampler(family, ancestor.PolyOrders, false, u, v, ancestor, nil)
			} else {
				sampler = basis.NewSampler(family, ancestor.PolyOrders, false, u, v, ancestor, leafElem)
			}

			for _, spec := range f.Domain.ByElem[ancestorID] {
				if !spec.HasDof {
					continue
				}
				coeff := eigenvector[spec.DofID]
				switch spec.Dir {
				case mesh.BasisU:
					for m := 0; m < f.NX; m++ {
						for n := 0; n < f.NY; n++ {
							x[m][n] += coeff * sampler.FU(int(spec.I), int(spec.J), m, n)
						}
					}
				case mesh.BasisV:
					for m := 0; m < f.NX; m++ {
						for n := 0; n < f.NY; n++ {
							y[m][n] += coeff * sampler.FV(int(spec.I), int(spec.J), m, n)
						}
					}
				}
			}
		}

		leaf.Quantities["X"] = x
		leaf.Quantities["Y"] = y
	}
	return nil
}

// UnaryOp derives a new quantity by applying fn pointwise to an
// existing one.
func (f *Field) UnaryOp(name, from string, fn func(float64) float64) error {
	for _, leaf := range f.Leaves {
		src, ok := leaf.Quantities[from]
		if !ok {
			return &UniformFieldError{Kind: MissingQuantity, QuantityName: from}
		}
		out := zeroGrid(f.NX, f.NY)
		for m := range src {
			for n := range src[m] {
				out[m][n] = fn(src[m][n])
			}
		}
		leaf.Quantities[name] = out
	}
	return nil
}

// BinaryOp derives a new quantity by applying fn pointwise to two
// existing ones.
func (f *Field) BinaryOp(name, fromA, fromB string, fn func(a, b float64) float64) error {
	for _, leaf := range f.Leaves {
		a, ok := leaf.Quantities[fromA]
		if !ok {
			return &UniformFieldError{Kind: MissingQuantity, QuantityName: fromA}
		}
		b, ok := leaf.Quantities[fromB]
		if !ok {
			return &UniformFieldError{Kind: MissingQuantity, QuantityName: fromB}
		}
		out := zeroGrid(f.NX, f.NY)
		for m := range a {
			for n := range a[m] {
				out[m][n] = fn(a[m][n], b[m][n])
			}
		}
		leaf.Quantities[name] = out
	}
	return nil
}

// Magnitude derives sqrt(x^2 + y^2) as quantity name from components
// x and y.
func (f *Field) Magnitude(name, x, y string) error {
	return f.BinaryOp(name, x, y, func(a, b float64) float64 {
		return math.Hypot(a, b)
	})
}

// Abs derives the pointwise absolute value of an existing quantity.
func (f *Field) Abs(name, from string) error {
	return f.UnaryOp(name, from, math.Abs)
}

// Add derives the pointwise sum of two existing quantities.
func (f *Field) Add(name, a, b string) error {
	return f.BinaryOp(name, a, b, func(x, y float64) float64 { return x + y })
}

// Sub derives the pointwise difference (a - b) of two existing
// quantities.
func (f *Field) Sub(name, a, b string) error {
	return f.BinaryOp(name, a, b, func(x, y float64) float64 { return x - y })
}

// Scale derives an existing quantity multiplied pointwise by a
// constant factor.
func (f *Field) Scale(name, from string, factor float64) error {
	return f.UnaryOp(name, from, func(x float64) float64 { return factor * x })
}

// Dot derives the pointwise dot product of two vector quantities, each
// given as an (x, y) component pair: axName*bxName + ayName*byName.
func (f *Field) Dot(name, ax, ay, bx, by string) error {
	prodX := name + "@dotX"
	prodY := name + "@dotY"
	if err := f.BinaryOp(prodX, ax, bx, func(x, y float64) float64 { return x * y }); err != nil {
		return err
	}
	if err := f.BinaryOp(prodY, ay, by, func(x, y float64) float64 { return x * y }); err != nil {
		return err
	}
	if err := f.Add(name, prodX, prodY); err != nil {
		return err
	}
	for _, leaf := range f.Leaves {
		delete(leaf.Quantities, prodX)
		delete(leaf.Quantities, prodY)
	}
	return nil
}
