// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// MaxPolynomialOrder bounds an Elem's expansion order in either
// direction; p-refinement fails once it would be exceeded.
const MaxPolynomialOrder uint8 = 20

// BasisDir is the direction tag of a BasisSpec/shape-function family.
type BasisDir int

const (
	BasisU BasisDir = iota
	BasisV
	BasisW
)

// PolyOrders is an Elem's (ni, nj) polynomial expansion order pair.
type PolyOrders struct {
	Ni, Nj uint8
}

// DefaultPolyOrders is the order pair a freshly created Elem starts at.
func DefaultPolyOrders() PolyOrders {
	return PolyOrders{Ni: 1, Nj: 1}
}

// Refine applies a signed delta to both directions.
func (p *PolyOrders) Refine(ref PRef) error {
	ni, err := ref.di.apply(p.Ni)
	if err != nil {
		return err
	}
	nj, err := ref.dj.apply(p.Nj)
	if err != nil {
		return err
	}
	p.Ni, p.Nj = ni, nj
	return nil
}

// Set overwrites both expansion orders directly.
func (p *PolyOrders) Set(ni, nj uint8) error {
	if ni > MaxPolynomialOrder || nj > MaxPolynomialOrder {
		return &PRefError{Kind: ExceededMaxExpansion}
	}
	p.Ni, p.Nj = ni, nj
	return nil
}

// Permutations enumerates the (i, j) index grid for the given basis
// direction: U has i in [0,Ni), j in [0,Nj]; V has i in [0,Ni], j in
// [0,Nj); W has i in [0,Ni], j in [0,Nj].
func (p PolyOrders) Permutations(dir BasisDir) [][2]uint8 {
	var out [][2]uint8
	switch dir {
	case BasisU:
		for i := uint8(0); i < p.Ni; i++ {
			for j := uint8(0); j <= p.Nj; j++ {
				out = append(out, [2]uint8{i, j})
			}
		}
	case BasisV:
		for i := uint8(0); i <= p.Ni; i++ {
			for j := uint8(0); j < p.Nj; j++ {
				out = append(out, [2]uint8{i, j})
			}
		}
	default:
		for i := uint8(0); i <= p.Ni; i++ {
			for j := uint8(0); j <= p.Nj; j++ {
				out = append(out, [2]uint8{i, j})
			}
		}
	}
	return out
}

// MaxWith returns the component-wise max of p and orders.
func (p PolyOrders) MaxWith(orders [2]uint8) [2]uint8 {
	m := func(a, b uint8) uint8 {
		if a > b {
			return a
		}
		return b
	}
	return [2]uint8{m(p.Ni, orders[0]), m(p.Nj, orders[1])}
}

// pRefDelta is a single-axis signed p-refinement increment/decrement.
type pRefDelta struct {
	inc   uint8
	dec   uint8
	isDec bool
}

func newDelta(d int8) pRefDelta {
	if d >= 0 {
		return pRefDelta{inc: uint8(d)}
	}
	return pRefDelta{dec: uint8(-d), isDec: true}
}

func (d pRefDelta) apply(n uint8) (uint8, error) {
	if d.isDec {
		if d.dec >= n {
			return 0, &PRefError{Kind: NegExpansion}
		}
		return n - d.dec, nil
	}
	if n+d.inc > MaxPolynomialOrder {
		return 0, &PRefError{Kind: ExceededMaxExpansion}
	}
	return n + d.inc, nil
}

// PRef describes a p-refinement: a signed delta on each of (ni, nj).
type PRef struct {
	di, dj pRefDelta
}

// NewPRef builds a PRef from signed deltas (i, j).
func NewPRef(i, j int8) PRef {
	return PRef{di: newDelta(i), dj: newDelta(j)}
}

// PRefOnDir builds a PRef that refines only the given direction.
func PRefOnDir(dir ParaDir, delta int8) PRef {
	if dir == DirU {
		return NewPRef(delta, 0)
	}
	return NewPRef(0, delta)
}
