// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cpmech/gosl/utl"
)

var refineMeshPath string
var refinePlanPath string

var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Load a mesh and apply a refinement plan, reporting its stats",
	RunE:  runRefine,
}

func init() {
	rootCmd.AddCommand(refineCmd)
	refineCmd.Flags().StringVarP(&refineMeshPath, "mesh", "m", "", "path to the input mesh JSON (required)")
	refineCmd.Flags().StringVarP(&refinePlanPath, "plan", "p", "", "path to the refinement plan JSON (default: global p=(2,2), no h-refinement)")
	refineCmd.MarkFlagRequired("mesh")
}

func runRefine(cmd *cobra.Command, args []string) error {
	m, err := loadAndRefine(refineMeshPath, refinePlanPath)
	if err != nil {
		return err
	}

	s := m.Stats()
	utl.Pf("elements (base):   %d\n", s.NumElements)
	utl.Pf("elems (all gens):  %d\n", s.NumElems)
	utl.Pf("leaf elems:        %d\n", s.NumLeafElems)
	utl.Pf("nodes:             %d\n", s.NumNodes)
	utl.Pf("edges:             %d\n", s.NumEdges)
	utl.Pf("active edges:      %d\n", s.NumActiveEdges)
	utl.Pf("max poly orders:   (%d, %d)\n", s.MaxOrders[0], s.MaxOrders[1])
	utl.Pf("max h levels:      (%d, %d)\n", s.MaxHLevel[0], s.MaxHLevel[1])
	return nil
}
