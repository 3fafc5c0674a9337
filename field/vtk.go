// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"fmt"
	"io"
	"sort"
)

// vtkQuadCellType is VTK's legacy cell-type code for a 4-point quad,
// the same VTK_QUAD value the teacher's mesh families used.
const vtkQuadCellType = 9

// WriteVTK dumps every leaf's grid as one quad cell per (nx-1)*(ny-1)
// tile, tagging each point with every computed quantity, in legacy
// ASCII VTK unstructured-grid format.
func (f *Field) WriteVTK(w io.Writer, title string) error {
	var quantities []string
	if len(f.Leaves) > 0 {
		for name := range f.Leaves[0].Quantities {
			quantities = append(quantities, name)
		}
		sort.Strings(quantities)
	}

	nPerLeaf := f.NX * f.NY
	nPoints := nPerLeaf * len(f.Leaves)
	nCellsPerLeaf := (f.NX - 1) * (f.NY - 1)
	nCells := nCellsPerLeaf * len(f.Leaves)

	fmt.Fprintln(w, "# vtk DataFile Version 3.0")
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "ASCII")
	fmt.Fprintln(w, "DATASET UNSTRUCTURED_GRID")

	fmt.Fprintf(w, "POINTS %d double\n", nPoints)
	for _, leaf := range f.Leaves {
		for n := 0; n < f.NY; n++ {
			for m := 0; m < f.NX; m++ {
				fmt.Fprintf(w, "%.15e %.15e 0\n", leaf.RealX[m][n], leaf.RealY[m][n])
			}
		}
	}

	fmt.Fprintf(w, "CELLS %d %d\n", nCells, nCells*5)
	for leafIdx := range f.Leaves {
		base := leafIdx * nPerLeaf
		for n := 0; n < f.NY-1; n++ {
			for m := 0; m < f.NX-1; m++ {
				i0 := base + n*f.NX + m
				i1 := base + n*f.NX + m + 1
				i2 := base + (n+1)*f.NX + m + 1
				i3 := base + (n+1)*f.NX + m
				fmt.Fprintf(w, "4 %d %d %d %d\n", i0, i1, i2, i3)
			}
		}
	}

	fmt.Fprintf(w, "CELL_TYPES %d\n", nCells)
	for i := 0; i < nCells; i++ {
		fmt.Fprintf(w, "%d\n", vtkQuadCellType)
	}

	if len(quantities) > 0 {
		fmt.Fprintf(w, "POINT_DATA %d\n", nPoints)
		for _, name := range quantities {
			fmt.Fprintf(w, "SCALARS %s double 1\n", name)
			fmt.Fprintln(w, "LOOKUP_TABLE default")
			for _, leaf := range f.Leaves {
				grid := leaf.Quantities[name]
				for n := 0; n < f.NY; n++ {
					for m := 0; m < f.NX; m++ {
						fmt.Fprintf(w, "%.15e\n", grid[m][n])
					}
				}
			}
		}
	}
	return nil
}
