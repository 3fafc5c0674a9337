// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// HLevels is the pair of h-refinement depths (u-directed, v-directed)
// an Elem has accumulated from its base-layer ancestor.
type HLevels struct {
	U, V uint8
}

// HRefKind names a variant of h-refinement.
type HRefKind int

const (
	// HRefT is isotropic: one Elem becomes four (SW, SE, NW, NE).
	HRefT HRefKind = iota
	// HRefU is anisotropic along u: one Elem becomes two (W, E).
	HRefU
	// HRefV is anisotropic along v: one Elem becomes two (S, N).
	HRefV
)

// HRef describes a requested h-refinement. For HRefU/HRefV, Extension
// optionally names a child index (0 or 1) on which the complementary
// refinement should be queued as the next generation.
type HRef struct {
	Kind      HRefKind
	Extension *int
}

// refined returns the HLevels of a child produced by applying this
// refinement to a parent with levels lv.
func (r HRef) refined(lv HLevels) HLevels {
	switch r.Kind {
	case HRefT:
		return HLevels{U: lv.U + 1, V: lv.V + 1}
	case HRefU:
		return HLevels{U: lv.U + 1, V: lv.V}
	default:
		return HLevels{U: lv.U, V: lv.V + 1}
	}
}

// numChildren is 4 for T, 2 for U/V.
func (r HRef) numChildren() int {
	if r.Kind == HRefT {
		return 4
	}
	return 2
}

// edgeRanking returns the h-level key an Elem at levels lv registers
// itself under on an edge of direction dir: (v, u) for U-directed edges,
// (u, v) for V-directed.
func edgeRanking(lv HLevels, dir ParaDir) [2]uint8 {
	if dir == DirU {
		return [2]uint8{lv.V, lv.U}
	}
	return [2]uint8{lv.U, lv.V}
}

// HRefLoc is a child's position relative to its parent within a single
// h-refinement.
type HRefLoc int

const (
	LocSW HRefLoc = iota
	LocSE
	LocNW
	LocNE
	LocW
	LocE
	LocS
	LocN
)

// locOf returns the HRefLoc of child index idx (0-based, in the order
// Elem.h_refine emits them) for refinement r.
func locOf(r HRef, idx int) HRefLoc {
	switch r.Kind {
	case HRefT:
		return [4]HRefLoc{LocSW, LocSE, LocNW, LocNE}[idx]
	case HRefU:
		return [2]HRefLoc{LocW, LocE}[idx]
	default:
		return [2]HRefLoc{LocS, LocN}[idx]
	}
}

// subURange narrows a u-range [min,max] to the half occupied by l.
func (l HRefLoc) subURange(r [2]float64) [2]float64 {
	mid := (r[0] + r[1]) / 2
	switch l {
	case LocSW, LocNW, LocW:
		return [2]float64{r[0], mid}
	case LocSE, LocNE, LocE:
		return [2]float64{mid, r[1]}
	default: // LocS, LocN: unchanged
		return r
	}
}

// subVRange narrows a v-range [min,max] to the half occupied by l.
func (l HRefLoc) subVRange(r [2]float64) [2]float64 {
	mid := (r[0] + r[1]) / 2
	switch l {
	case LocSW, LocSE, LocS:
		return [2]float64{r[0], mid}
	case LocNW, LocNE, LocN:
		return [2]float64{mid, r[1]}
	default: // LocW, LocE: unchanged
		return r
	}
}

// subRange narrows a [[u_min,u_max],[v_min,v_max]] range to the portion
// occupied by a child at location l.
func (l HRefLoc) subRange(r [2][2]float64) [2][2]float64 {
	return [2][2]float64{l.subURange(r[0]), l.subVRange(r[1])}
}
