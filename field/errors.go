// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "fmt"

// UniformFieldErrorKind classifies a failure reconstructing or
// evaluating a field.
type UniformFieldErrorKind int

const (
	MismatchedSolutionSize UniformFieldErrorKind = iota
	MissingQuantity
)

// UniformFieldError reports why a Field operation was rejected.
type UniformFieldError struct {
	Kind          UniformFieldErrorKind
	Expected, Got int
	QuantityName  string
}

func (e *UniformFieldError) Error() string {
	switch e.Kind {
	case MismatchedSolutionSize:
		return fmt.Sprintf("field: eigenvector has %d entries, domain has %d DoFs", e.Got, e.Expected)
	case MissingQuantity:
		return fmt.Sprintf("field: quantity %q has not been computed", e.QuantityName)
	default:
		return "field: error"
	}
}
