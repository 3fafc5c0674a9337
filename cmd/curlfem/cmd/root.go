// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cpmech/gosl/utl"
)

var rootCmd = &cobra.Command{
	Use:   "curlfem",
	Short: "2-D hp-adaptive curl-curl finite-element driver",
	Long: `curlfem loads a quadrilateral mesh, refines it per a JSON plan,
resolves degrees of freedom, assembles the generalized eigenvalue
problem A x = lambda B x, and can hand A/B to an external SLEPc/PETSc
solver process.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		utl.PfWhite("\ncurlfem -- 2-D hp-adaptive curl-curl FEM\n\n")
		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		utl.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}
