// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package box provides Box, the binary "combine old value with newly
// computed value" operator used to realize widenings and narrowings, and
// BoxAssignment, the per-unknown selection of boxes a solver applies while
// evaluating an equation system.
package box

// Box interprets as "given the old value and the freshly computed one,
// produce the value to store." A Box is idempotent if
//
//	Combine(x, Combine(x, y)) == Combine(x, y)
//
// for all x, y; BoxAssignment.Idempotent reports whether every Box a
// BoxAssignment can yield has this property. Non-idempotent boxes (most
// widenings) force extra bookkeeping in eqsys.FiniteEquationSystem and
// graph.GraphEquationSystem: re-evaluating the same dependencies can still
// change the result, so the unknown must influence itself.
type Box[V any] interface {
	Combine(old, new V) V
}

// Func adapts a plain function to a Box.
type Func[V any] func(old, new V) V

// Combine calls f(old, new).
func (f Func[V]) Combine(old, new V) V { return f(old, new) }
