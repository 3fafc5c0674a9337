// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the hp-adaptive refinement forest: Elements
// (immutable real-space rectangles), Elems (refinement cells), Edges
// and Nodes, and the h-/p-refinement operations over them.
package mesh

import "github.com/cpmech/curlfem/geom"

// ParaDir is a parametric-space axis.
type ParaDir int

const (
	DirU ParaDir = iota
	DirV
)

func (d ParaDir) String() string {
	if d == DirU {
		return "U"
	}
	return "V"
}

// orientationOf returns the ParaDir of the segment a->b: U when |Δx|
// dominates, V otherwise (a 45-degree tie favors V).
func orientationOf(a, b geom.Point) ParaDir {
	dx := absf(b.X - a.X)
	dy := absf(b.Y - a.Y)
	if dx > dy {
		return DirU
	}
	return DirV
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// orderPoints reports whether a sorts strictly before b along the axis of
// their mutual orientation (U-directed pairs order by X, V-directed by Y).
// Returns 0 if the points are coincident.
func orderPoints(a, b geom.Point) int {
	if a.Equal(b) {
		return 0
	}
	switch orientationOf(a, b) {
	case DirU:
		if a.LessX(b) {
			return -1
		}
		return 1
	default:
		if a.LessY(b) {
			return -1
		}
		return 1
	}
}
