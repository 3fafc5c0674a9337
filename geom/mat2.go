// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/gosl/chk"

// Mat2 is a 2x2 real matrix stored by its two rows: U = row 0, V = row 1
type Mat2 struct {
	U, V Vec2
}

// NewMat2 builds a Mat2 from its two row vectors
func NewMat2(u, v Vec2) Mat2 {
	return Mat2{U: u, V: v}
}

// MulVec returns M*x (row-dot products)
func (m Mat2) MulVec(x Vec2) Vec2 {
	return Vec2{m.U.Dot(x), m.V.Dot(x)}
}

// Mul returns M*N
func (m Mat2) Mul(n Mat2) Mat2 {
	col0 := Vec2{n.U[0], n.V[0]}
	col1 := Vec2{n.U[1], n.V[1]}
	return Mat2{
		U: Vec2{m.U.Dot(col0), m.U.Dot(col1)},
		V: Vec2{m.V.Dot(col0), m.V.Dot(col1)},
	}
}

// Transpose returns M^T
func (m Mat2) Transpose() Mat2 {
	return Mat2{
		U: Vec2{m.U[0], m.V[0]},
		V: Vec2{m.U[1], m.V[1]},
	}
}

// Det returns det(M) = u[0]*v[1] - u[1]*v[0]
func (m Mat2) Det() float64 {
	return m.U[0]*m.V[1] - m.U[1]*m.V[0]
}

// Inverse returns (1/det)*[[v[1],-u[1]],[-v[0],u[0]]]
//
// Panics if det is (numerically) zero: a degenerate Jacobian is a
// programmer/mesh-construction error, not a recoverable condition.
func (m Mat2) Inverse() Mat2 {
	det := m.Det()
	if det == 0 {
		chk.Panic("Mat2: cannot invert a singular matrix (det=0)\n")
	}
	inv := 1.0 / det
	return Mat2{
		U: Vec2{inv * m.V[1], -inv * m.U[1]},
		V: Vec2{-inv * m.V[0], inv * m.U[0]},
	}
}
