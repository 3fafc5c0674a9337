// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package integral implements the two quadrature kernels consumed by
// the Galerkin assembly driver: an L2 inner product and a curl-curl
// product, both evaluated over a pair of basis specs sampled on a
// shared Gauss-Legendre grid.
package integral

import (
	"math"

	"github.com/cpmech/curlfem/basis"
	"github.com/cpmech/curlfem/mesh"
)

// Result holds either a single "Full" scalar or, for the by-parts form,
// a face scalar plus the four edge contributions (indexed south, north,
// west, east, matching an Elem's own edge-slot order).
type Result struct {
	Full      float64
	ByParts   bool
	Face      float64
	EdgeTerms [4]float64
}

// edgeOutwardNormal is the outward unit normal used to sign the
// by-parts boundary terms, indexed by Elem edge slot (south, north,
// west, east).
var edgeOutwardNormal = [4][2]float64{
	{0, -1},
	{0, 1},
	{-1, 0},
	{1, 0},
}

func fValue(dir mesh.BasisDir, s *basis.Sampler, i, j uint8, m, n int) float64 {
	switch dir {
	case mesh.BasisU:
		return s.FU(int(i), int(j), m, n)
	case mesh.BasisV:
		return s.FV(int(i), int(j), m, n)
	default:
		return 0
	}
}

func curlFactor(dir mesh.BasisDir, s *basis.Sampler, i, j uint8, m, n int) float64 {
	switch dir {
	case mesh.BasisU:
		return s.FUD1(int(i), int(j), m, n)
	case mesh.BasisV:
		return s.FVD1(int(i), int(j), m, n)
	default:
		return 0
	}
}

// L2 computes the L2 inner product of basis spec p (dir pDir, orders
// pI, pJ, sampled through pBasis) and basis spec q, over the shared
// quadrature grid (wu, wv). (W, _) and (_, W) pairs are zero.
func L2(pDir, qDir mesh.BasisDir, pI, pJ, qI, qJ uint8, pBasis, qBasis *basis.Sampler, wu, wv []float64, materials mesh.Materials) Result {
	if pDir == mesh.BasisW || qDir == mesh.BasisW {
		return Result{}
	}
	sum := 0.0
	scale := math.Max(pBasis.SampleScale(), qBasis.SampleScale())
	for m := range wu {
		for n := range wv {
			fp := fValue(pDir, pBasis, pI, pJ, m, n)
			fq := fValue(qDir, qBasis, qI, qJ, m, n)
			sum += wu[m] * wv[n] * fp * fq * scale
		}
	}
	sum *= real(materials.EpsRel) * pBasis.GLQScale() * qBasis.GLQScale()
	return Result{Full: sum}
}

// dominantRatio returns max(s_u/s_v, s_v/s_u) of whichever of p, q has
// the larger sample scale.
func dominantRatio(pBasis, qBasis *basis.Sampler) float64 {
	dominant := pBasis
	if qBasis.SampleScale() > pBasis.SampleScale() {
		dominant = qBasis
	}
	ps := dominant.ParaScale()
	uv := ps[1] / ps[0]
	vu := ps[0] / ps[1]
	return math.Max(uv, vu)
}

// CurlCurl computes the curl-curl product of p and q. (_, W) and (W, _)
// pairs are zero.
func CurlCurl(pDir, qDir mesh.BasisDir, pI, pJ, qI, qJ uint8, pBasis, qBasis *basis.Sampler, wu, wv []float64, materials mesh.Materials) Result {
	if pDir == mesh.BasisW || qDir == mesh.BasisW {
		return Result{}
	}
	weight := dominantRatio(pBasis, qBasis)
	sum := 0.0
	for m := range wu {
		for n := range wv {
			cp := curlFactor(pDir, pBasis, pI, pJ, m, n)
			cq := curlFactor(qDir, qBasis, qI, qJ, m, n)
			sum += wu[m] * wv[n] * cp * cq * weight
		}
	}
	sum /= real(materials.MuRel)
	return Result{Full: sum}
}

// CurlCurlByParts is CurlCurl's by-parts form: the surface term skips
// the extreme grid indices on both axes, and four edge terms walk the
// corresponding border row/column, signed by the outward normal.
func CurlCurlByParts(pDir, qDir mesh.BasisDir, pI, pJ, qI, qJ uint8, pBasis, qBasis *basis.Sampler, wu, wv []float64, materials mesh.Materials) Result {
	if pDir == mesh.BasisW || qDir == mesh.BasisW {
		return Result{ByParts: true}
	}
	weight := dominantRatio(pBasis, qBasis)
	muInv := 1 / real(materials.MuRel)

	face := 0.0
	for m := 1; m < len(wu)-1; m++ {
		for n := 1; n < len(wv)-1; n++ {
			cp := curlFactor(pDir, pBasis, pI, pJ, m, n)
			cq := curlFactor(qDir, qBasis, qI, qJ, m, n)
			face += wu[m] * wv[n] * cp * cq * weight
		}
	}
	face *= muInv

	var edges [4]float64
	for slot, normal := range edgeOutwardNormal {
		sign := normal[0] + normal[1]
		edges[slot] = edgeIntegral(slot, pDir, qDir, pI, pJ, qI, qJ, pBasis, qBasis, wu, wv, weight) * muInv * sign
	}

	return Result{ByParts: true, Face: face, EdgeTerms: edges}
}

// edgeIntegral walks the south/north (constant-n) or west/east
// (constant-m) border of the quadrature grid for the given Elem edge
// slot.
func edgeIntegral(slot int, pDir, qDir mesh.BasisDir, pI, pJ, qI, qJ uint8, pBasis, qBasis *basis.Sampler, wu, wv []float64, weight float64) float64 {
	sum := 0.0
	switch slot {
	case 0: // south: n = 0
		for m := range wu {
			sum += wu[m] * curlFactor(pDir, pBasis, pI, pJ, m, 0) * curlFactor(qDir, qBasis, qI, qJ, m, 0) * weight
		}
	case 1: // north: n = last
		n := len(wv) - 1
		for m := range wu {
			sum += wu[m] * curlFactor(pDir, pBasis, pI, pJ, m, n) * curlFactor(qDir, qBasis, qI, qJ, m, n) * weight
		}
	case 2: // west: m = 0
		for n := range wv {
			sum += wv[n] * curlFactor(pDir, pBasis, pI, pJ, 0, n) * curlFactor(qDir, qBasis, qI, qJ, 0, n) * weight
		}
	case 3: // east: m = last
		m := len(wu) - 1
		for n := range wv {
			sum += wv[n] * curlFactor(pDir, pBasis, pI, pJ, m, n) * curlFactor(qDir, qBasis, qI, qJ, m, n) * weight
		}
	}
	return sum
}
