// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/curlfem/geom"

// Materials holds the (possibly complex-valued) constitutive parameters
// of an Element's curl-curl eigenproblem: relative permittivity and
// permeability.
type Materials struct {
	EpsRel complex128
	MuRel  complex128
}

// DefaultMaterials is vacuum: eps_rel = mu_rel = 1+0i.
func DefaultMaterials() Materials {
	return Materials{EpsRel: 1, MuRel: 1}
}

// Element is the immutable, real-space geometric unit of the Mesh. Every
// Elem in the refinement forest traces back to exactly one Element for
// its corner coordinates, materials, and real/parametric mapping.
// Curvilinear Elements are not implemented; the mapping below is the
// axis-aligned bilinear case.
type Element struct {
	ID        int
	Points    [4]geom.Point // corner-0 (min,min) .. corner-3 (max,max)
	Materials Materials
}

// NewElement builds an Element from its four corners (already ordered
// corner-0..corner-3 by the mesh loader) and material parameters.
func NewElement(id int, points [4]geom.Point, materials Materials) *Element {
	return &Element{ID: id, Points: points, Materials: materials}
}

func mapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Gradient returns the real-to-parametric Jacobian (diagonal, since the
// mapping is an axis-aligned affine rectangle) for the sub-range of this
// Element's parametric square given by uRange, vRange (each a [min,max]
// pair over (-1,1)). Passing the full [-1,1]x[-1,1] range yields the
// Element's own Jacobian.
func (e *Element) Gradient(uRange, vRange [2]float64) geom.Mat2 {
	realXMin := mapRange(uRange[0], -1, 1, e.Points[0].X, e.Points[3].X)
	realXMax := mapRange(uRange[1], -1, 1, e.Points[0].X, e.Points[3].X)
	realYMin := mapRange(vRange[0], -1, 1, e.Points[0].Y, e.Points[3].Y)
	realYMax := mapRange(vRange[1], -1, 1, e.Points[0].Y, e.Points[3].Y)

	dxDu := (realXMax - realXMin) / 2
	dyDv := (realYMax - realYMin) / 2

	return geom.NewMat2(geom.NewVec2(dxDu, 0), geom.NewVec2(0, dyDv))
}

// OrderPoints reports the ordering of p0, p1 within this Element's real
// space: the point closer to the Element's own origin-ward corner sorts
// first. Returns -1, 0, or 1.
func (e *Element) OrderPoints(p0, p1 geom.Point) int {
	return orderPoints(p0, p1)
}
