// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements 2-D geometry primitives: vectors, 2x2 matrices,
// and the canonical point type used to key mesh topology.
package geom

import "github.com/cpmech/gosl/chk"

// Vec2 is a 2-component real vector
type Vec2 [2]float64

// NewVec2 allocates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// At returns the i-th component (panics on out-of-range i; programmer error)
func (v Vec2) At(i int) float64 {
	if i < 0 || i > 1 {
		chk.Panic("Vec2: index %d out of range\n", i)
	}
	return v[i]
}

// Add returns v + w
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v[0] + w[0], v[1] + w[1]}
}

// Sub returns v - w
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v[0] - w[0], v[1] - w[1]}
}

// Scale returns s*v
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{s * v[0], s * v[1]}
}

// Divide returns v/s
func (v Vec2) Divide(s float64) Vec2 {
	return Vec2{v[0] / s, v[1] / s}
}

// Dot returns the dot product v . w
func (v Vec2) Dot(w Vec2) float64 {
	return v[0]*w[0] + v[1]*w[1]
}
