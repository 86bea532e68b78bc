// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine is the programmatic catalog of the solver family: which
// solvers exist, and a one-line description of each, the way the
// teacher's engine package once listed available refactorings. Unlike
// that registry, this one cannot hold the solvers themselves as map
// values: solver.Finite, solver.Priority and solver.Infinite are generic
// over U, V and a tracer type, and Go does not allow storing distinct
// instantiations of a generic function under a common, callable type
// without erasing to interface{} and losing the static tracer-elision
// the solver package is built around. Callers still import
// "github.com/godoctor/fixpoint/solver" and call the solver they want
// directly; this package only answers "what solvers are there."
package engine

import "fmt"

// Kind names one of the solver family's members.
type Kind string

const (
	KindFinite   Kind = "finite"
	KindPriority Kind = "priority"
	KindInfinite Kind = "infinite"
)

var descriptions = map[Kind]string{
	KindFinite:   "FIFO worklist solver over a finite, fully enumerated unknown set",
	KindPriority: "max-heap worklist solver with restart, ordered by an Ordering[U]",
	KindInfinite: "local worklist solver over a dynamically discovered unknown set",
}

// All lists every known solver kind, in the order the solver family is
// introduced in the package documentation.
func All() []Kind {
	return []Kind{KindFinite, KindPriority, KindInfinite}
}

// Describe returns kind's one-line description. The empty string means
// kind is not registered.
func Describe(kind Kind) string {
	return descriptions[kind]
}

// Register adds a custom Kind's description, for callers that wrap one of
// the three solvers behind their own name (e.g. a specific widening
// policy baked in). It refuses to overwrite one of the three built-in
// kinds.
func Register(kind Kind, description string) error {
	switch kind {
	case KindFinite, KindPriority, KindInfinite:
		return fmt.Errorf("engine: %q is a built-in solver kind and cannot be re-registered", kind)
	}
	descriptions[kind] = description
	return nil
}
