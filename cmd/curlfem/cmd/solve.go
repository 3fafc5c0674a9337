// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cpmech/curlfem/dofs"
	"github.com/cpmech/curlfem/eigensolver"
	"github.com/cpmech/curlfem/field"
	"github.com/cpmech/curlfem/sparse"
	"github.com/cpmech/gosl/utl"
)

var (
	solveInPrefix    string
	solveTargetEigen float64
	solveMeshPath    string
	solvePlanPath    string
	solveFamilyName  string
	solveVTKPath     string
	solveFieldGridNX int
	solveFieldGridNY int
)

var solveCmd = &cobra.Command{
	Use:   "solve-invoke",
	Short: "Read back an assembled A/B pair and invoke the external eigensolver",
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVarP(&solveInPrefix, "in", "i", "gep", "input path prefix; reads <prefix>_a.dat and <prefix>_b.dat")
	solveCmd.Flags().Float64VarP(&solveTargetEigen, "target", "t", 1.0, "target eigenvalue passed to the solver")
	solveCmd.Flags().StringVarP(&solveMeshPath, "mesh", "m", "", "mesh JSON used to reconstruct the eigenvector field (required only with --vtk)")
	solveCmd.Flags().StringVarP(&solvePlanPath, "plan", "p", "", "refinement plan JSON used alongside --mesh")
	solveCmd.Flags().StringVar(&solveFamilyName, "family", "kol", "shape-function family: kol or maxortho")
	solveCmd.Flags().StringVar(&solveVTKPath, "vtk", "", "write the reconstructed eigenvector field as legacy ASCII VTK to this path")
	solveCmd.Flags().IntVar(&solveFieldGridNX, "grid-nx", 9, "per-leaf sample grid density along u, used with --vtk")
	solveCmd.Flags().IntVar(&solveFieldGridNY, "grid-ny", 9, "per-leaf sample grid density along v, used with --vtk")
}

func readMatrixFile(path string) (*sparse.Symmetric, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed reading %s: %w", path, err)
	}
	defer f.Close()
	m, err := sparse.ReadPETScBinary(f)
	if err != nil {
		return nil, fmt.Errorf("failed reading %s: %w", path, err)
	}
	return m, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	a, err := readMatrixFile(solveInPrefix + "_a.dat")
	if err != nil {
		return err
	}
	b, err := readMatrixFile(solveInPrefix + "_b.dat")
	if err != nil {
		return err
	}

	cfg, err := eigensolver.ConfigFromEnv()
	if err != nil {
		return err
	}

	pair, err := cfg.Solve(a, b, solveTargetEigen)
	if err != nil {
		return err
	}
	utl.Pf("eigenvalue: %.10f\n", pair.Value)
	utl.Pf("eigenvector length: %d\n", len(pair.Vector))

	if solveVTKPath == "" {
		return nil
	}
	if solveMeshPath == "" {
		return fmt.Errorf("--vtk requires --mesh to rebuild the domain the eigenvector was assembled over")
	}

	m, err := loadAndRefine(solveMeshPath, solvePlanPath)
	if err != nil {
		return err
	}
	family, err := parseFamily(solveFamilyName)
	if err != nil {
		return err
	}

	d := dofs.NewDomain(m)
	fld := field.NewField(d, solveFieldGridNX, solveFieldGridNY)
	if err := fld.Reconstruct(pair.Vector, family); err != nil {
		return fmt.Errorf("field reconstruction failed: %w", err)
	}
	if err := fld.Magnitude("Mag", "X", "Y"); err != nil {
		return err
	}

	out, err := os.Create(solveVTKPath)
	if err != nil {
		return fmt.Errorf("failed writing %s: %w", solveVTKPath, err)
	}
	defer out.Close()
	if err := fld.WriteVTK(out, "curlfem"); err != nil {
		return fmt.Errorf("VTK dump failed: %w", err)
	}
	utl.Pf("wrote field to %s\n", solveVTKPath)
	return nil
}
