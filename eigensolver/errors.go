// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eigensolver

import "github.com/cpmech/gosl/utl"

// ErrorKind classifies why the external eigensolver process failed.
type ErrorKind int

const (
	SolverNotFound ErrorKind = iota
	BadArguments
	FailedInit
	FailedConverge
	FailedIO
)

// Error reports why Solve could not produce an EigenPair. Stderr holds
// whatever the solver process wrote to its standard error stream, when
// it ran at all.
type Error struct {
	Kind     ErrorKind
	ExitCode int
	Cause    error
	Stderr   string
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case SolverNotFound:
		msg = "eigensolver: solver executable not found; set GEP_SOLVE_DIR"
	case BadArguments:
		msg = "eigensolver: solver rejected its arguments"
	case FailedInit:
		msg = utl.Sf("eigensolver: solver failed to initialize (exit code %d)", e.ExitCode)
	case FailedConverge:
		msg = "eigensolver: solver failed to converge on the target eigenvalue"
	case FailedIO:
		if e.Cause != nil {
			msg = utl.Sf("eigensolver: failed reading back the solution: %v", e.Cause)
		} else {
			msg = "eigensolver: failed reading back the solution"
		}
	default:
		msg = "eigensolver: error"
	}
	if e.Stderr != "" {
		return utl.Sf("%s (stderr: %s)", msg, e.Stderr)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }
