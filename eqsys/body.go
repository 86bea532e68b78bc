// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eqsys implements the equation-system abstraction: Body, the pure
// right-hand-side function of an assignment; EquationSystem, which composes
// a body with an initial assignment, optional base assignment, optional box
// assignment, and an optional tracer; and FiniteEquationSystem, which
// additionally exposes a finite unknown set and a static influence relation.
package eqsys

import (
	"github.com/godoctor/fixpoint/assign"
	"github.com/godoctor/fixpoint/box"
	"github.com/godoctor/fixpoint/lattice"
)

// Body is the right-hand side of an equation system, viewed as a function
// from an assignment to a single unknown's value. Body.Eval may evaluate
// lazily: it is only ever asked for one unknown at a time, never the whole
// assignment at once.
type Body[U comparable, V any] interface {
	Eval(rho assign.Assignment[U, V], u U) V
}

// Func adapts a plain function to a Body. This is the "from(f)" constructor.
type Func[U comparable, V any] func(rho assign.Assignment[U, V], u U) V

// Eval calls f(rho, u).
func (f Func[U, V]) Eval(rho assign.Assignment[U, V], u U) V { return f(rho, u) }

// identity is the body that returns the input assignment unchanged:
// Eval(rho, u) = rho.Get(u). It carries no type parameters of its own at
// the value level; Identity returns a zero-sized identityBody[U, V], so
// within one instantiation every call to Identity[U, V]() compares equal to
// every other (the intended singleton property). Go's generics make a
// literal cross-instantiation singleton inexpressible, since
// identityBody[int, int]{} and identityBody[string, bool]{} are distinct
// types by construction, so that property is realized per instantiation
// only (one singleton per U, V pair, not one singleton across all of them).
type identityBody[U comparable, V any] struct{}

// Identity returns the identity Body for U, V.
func Identity[U comparable, V any]() Body[U, V] {
	return identityBody[U, V]{}
}

func (identityBody[U, V]) Eval(rho assign.Assignment[U, V], u U) V { return rho.Get(u) }

// IsIdentity reports whether b is the Identity body for this
// instantiation of U, V.
func IsIdentity[U comparable, V any](b Body[U, V]) bool {
	_, ok := b.(identityBody[U, V])
	return ok
}

// WithBoxAssignment decorates body with B: the result evaluates
//
//	B.At(u)(rho.Get(u), body.Eval(rho, u))
//
// when B is defined at u, and body.Eval(rho, u) otherwise. Decorating with
// an empty BoxAssignment is the identity: B.IsEmpty is checked and body is
// returned unchanged.
func WithBoxAssignment[U comparable, V any](body Body[U, V], boxes box.Assignment[U, V]) Body[U, V] {
	if boxes.IsEmpty() {
		return body
	}
	return Func[U, V](func(rho assign.Assignment[U, V], u U) V {
		raw := body.Eval(rho, u)
		if b, ok := boxes.At(u); ok {
			return b.Combine(rho.Get(u), raw)
		}
		return raw
	})
}

// WithBaseAssignment decorates body with a base assignment init and a
// Magma comb that folds init's value into body's: the result evaluates
//
//	comb.Op(init.Get(u), body.Eval(rho, u))
//
// when init is defined at u, and body.Eval(rho, u) otherwise.
func WithBaseAssignment[U comparable, V any](body Body[U, V], init assign.Partial[U, V], comb lattice.Magma[V]) Body[U, V] {
	return Func[U, V](func(rho assign.Assignment[U, V], u U) V {
		raw := body.Eval(rho, u)
		if init.IsDefinedAt(u) {
			return comb.Op(init.Get(u), raw)
		}
		return raw
	})
}

// WithDeps is a Body that also reports, for each evaluation, every unknown
// whose value in rho was consulted while producing the result. Super-sets
// are allowed; omitting a consulted unknown is a contract violation.
type WithDeps[U comparable, V any] interface {
	Eval(rho assign.Assignment[U, V], u U) (V, []U)
}

// DepsFunc adapts a plain function to a WithDeps.
type DepsFunc[U comparable, V any] func(rho assign.Assignment[U, V], u U) (V, []U)

// Eval calls f(rho, u).
func (f DepsFunc[U, V]) Eval(rho assign.Assignment[U, V], u U) (V, []U) { return f(rho, u) }

// recordingAssignment wraps an Assignment and remembers, in query order,
// every unknown it was asked for.
type recordingAssignment[U comparable, V any] struct {
	inner assign.Assignment[U, V]
	seen  []U
}

func (r *recordingAssignment[U, V]) Get(u U) V {
	r.seen = append(r.seen, u)
	return r.inner.Get(u)
}

// trackedBody is the generic "wrap rho in a recording proxy" dependency
// tracking strategy: it evaluates body exactly once, on a proxy that
// records every query, and returns whatever the proxy collected.
// GraphEquationSystem overrides this with the cheaper, exact static
// ingoing-edge closure.
type trackedBody[U comparable, V any] struct {
	body Body[U, V]
}

// TrackDependencies wraps body in the generic recording-proxy dependency
// tracking strategy.
func TrackDependencies[U comparable, V any](body Body[U, V]) WithDeps[U, V] {
	return trackedBody[U, V]{body: body}
}

func (t trackedBody[U, V]) Eval(rho assign.Assignment[U, V], u U) (V, []U) {
	rec := &recordingAssignment[U, V]{inner: rho}
	v := t.body.Eval(rec, u)
	return v, rec.seen
}
