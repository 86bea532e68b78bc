// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqsys

import "fmt"

// Kind classifies the failures the core can report.
type Kind int

const (
	// TypeClassMissing is a construction-time failure: V does not
	// provide a required capability (a Magma for a base assignment, a
	// Domain for a graph system).
	TypeClassMissing Kind = iota
	// ContractViolation is a runtime failure: a body's reported
	// dependency set under-approximated its actual reads.
	ContractViolation
)

func (k Kind) String() string {
	switch k {
	case TypeClassMissing:
		return "type class missing"
	case ContractViolation:
		return "contract violation"
	default:
		return "unknown"
	}
}

// Error reports a construction-time or runtime failure. Non-termination is
// deliberately absent from Kind: the core never detects it, by design, so
// there is nothing for an Error to report on that front.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("eqsys: %s: %s", e.Kind, e.Message)
}

// MissingCapability builds a TypeClassMissing Error, for constructors like
// graph.New that require a capability witness (a Domain, an Ordering) the
// caller failed to supply.
func MissingCapability(message string) error {
	return &Error{Kind: TypeClassMissing, Message: message}
}
