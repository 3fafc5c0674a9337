// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// quantum is the rounding grid applied to the fractional part of a
// coordinate before comparison; coordinates differing only by round-off
// below this quantum hash and compare identically.
const quantum = 1e-12

// canonFloat is a float64 canonicalized for exact, hashable comparison:
// the fractional part of |x| is rounded to the nearest multiple of
// quantum, recombined with the integer part, and tagged with the sign
// of the original value. Negative values compare in reverse bit order
// so that the induced order remains a normal ascending numeric order.
type canonFloat struct {
	neg  bool
	bits uint64
}

func canonicalize(x float64) canonFloat {
	ax := math.Abs(x)
	ip, fp := math.Modf(ax)
	rounded := math.Round(fp/quantum) * quantum
	v := ip + rounded
	return canonFloat{neg: math.Signbit(x), bits: math.Float64bits(v)}
}

// less reports whether c sorts strictly before o
func (c canonFloat) less(o canonFloat) bool {
	if c.neg != o.neg {
		return c.neg // any negative sorts before any non-negative
	}
	if c.neg {
		return c.bits > o.bits // negative numbers compare inversely
	}
	return c.bits < o.bits
}

func (c canonFloat) equal(o canonFloat) bool {
	return c.neg == o.neg && c.bits == o.bits
}

// Point is a 2-D point compared and ordered by canonicalized coordinates:
// two points are equal iff their canonical keys are equal, which makes
// coordinates that differ only by round-off compare and hash identically.
type Point struct {
	X, Y float64
}

// NewPoint builds a Point from raw coordinates
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// key is the canonicalized comparison/hash key for this point
type key struct {
	cx, cy canonFloat
}

func (p Point) key() key {
	return key{cx: canonicalize(p.X), cy: canonicalize(p.Y)}
}

// Equal reports whether p and q are the same point under canonicalization
func (p Point) Equal(q Point) bool {
	pk, qk := p.key(), q.key()
	return pk.cx.equal(qk.cx) && pk.cy.equal(qk.cy)
}

// Less imposes a total order on points: compares canonical X first, then Y.
// This order is used to canonicalize node orientation for each Edge and to
// pick an Element's corner-0..corner-3 ordering.
func (p Point) Less(q Point) bool {
	pk, qk := p.key(), q.key()
	if !pk.cx.equal(qk.cx) {
		return pk.cx.less(qk.cx)
	}
	return pk.cy.less(qk.cy)
}

// HashKey returns a comparable, hashable representation of p suitable for
// use as a map key (canonical bits, not raw floats).
func (p Point) HashKey() [2]uint64 {
	k := p.key()
	pack := func(c canonFloat) uint64 {
		if c.neg {
			return c.bits | (1 << 63)
		}
		return c.bits &^ (1 << 63)
	}
	return [2]uint64{pack(k.cx), pack(k.cy)}
}

// Sub returns the displacement vector p - q
func (p Point) Sub(q Point) Vec2 {
	return Vec2{p.X - q.X, p.Y - q.Y}
}

// LessX reports whether p sorts strictly before q by canonical X alone.
func (p Point) LessX(q Point) bool {
	return canonicalize(p.X).less(canonicalize(q.X))
}

// LessY reports whether p sorts strictly before q by canonical Y alone.
func (p Point) LessY(q Point) bool {
	return canonicalize(p.Y).less(canonicalize(q.Y))
}

// Between returns the midpoint of p and q.
func Between(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	d := p.Sub(q)
	return math.Hypot(d[0], d[1])
}
