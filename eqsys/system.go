// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqsys

import (
	"github.com/godoctor/fixpoint/assign"
	"github.com/godoctor/fixpoint/box"
	"github.com/godoctor/fixpoint/lattice"
	"github.com/godoctor/fixpoint/trace"
)

// EquationSystem composes a Body with an initial assignment and an input
// predicate, and evaluates a single unknown at a time, firing
// EquationSystemTracer events around the evaluation.
type EquationSystem[U comparable, V any] interface {
	// Apply evaluates u against rho, applying any decorating box.
	Apply(rho assign.Assignment[U, V], u U) V
	// ApplyWithDeps is Apply plus every unknown consulted while producing
	// the result, per the dependency-tracking contract of body.go.
	ApplyWithDeps(rho assign.Assignment[U, V], u U) (V, []U)
	// Initial is the assignment a solve starts from.
	Initial() assign.Assignment[U, V]
	// IsInput reports whether u is held fixed rather than recomputed.
	IsInput(u U) bool
}

// system is the sole EquationSystem implementation in this package. It
// keeps the raw body, any decorating BoxAssignment, and the tracer as
// separate fields rather than folding the box into the body the way
// WithBoxAssignment does, because Apply needs to know whether a box
// actually fired at u in order to choose between firing BoxEvaluation and
// NoBoxEvaluation in the right order.
//
// WithBoxes, WithBase and WithTracer each type-assert their argument to
// *system[U, V] and return a modified copy; they are only valid on
// EquationSystems produced by New (FiniteEquationSystems use the
// Finite-prefixed decorators instead, which thread the same contract
// through *finiteSystem). A fully polymorphic decorator chain was
// considered and rejected: two independently wrapped layers would each
// fire their own tracer events, double-firing and breaking the ordering
// callers rely on.
type system[U comparable, V any] struct {
	raw     Body[U, V]
	rawDeps WithDeps[U, V]
	boxes   box.Assignment[U, V]
	initial assign.Assignment[U, V]
	isInput func(u U) bool
	tracer  trace.EquationSystemTracer[U, V]
}

// New builds an EquationSystem from a body, an initial assignment, and an
// input predicate, with no boxes and a Null tracer.
func New[U comparable, V any](body Body[U, V], initial assign.Assignment[U, V], isInput func(u U) bool) EquationSystem[U, V] {
	return &system[U, V]{
		raw:     body,
		rawDeps: TrackDependencies(body),
		boxes:   box.Empty[U, V](),
		initial: initial,
		isInput: isInput,
		tracer:  trace.Null[U, V]{},
	}
}

func (s *system[U, V]) clone() *system[U, V] {
	cp := *s
	return &cp
}

func (s *system[U, V]) Initial() assign.Assignment[U, V] { return s.initial }

func (s *system[U, V]) IsInput(u U) bool { return s.isInput(u) }

func (s *system[U, V]) Apply(rho assign.Assignment[U, V], u U) V {
	s.tracer.PreEvaluation(rho, u)
	raw := s.raw.Eval(rho, u)
	s.tracer.PostEvaluation(rho, u, raw)
	if !s.boxes.IsEmpty() {
		if b, ok := s.boxes.At(u); ok {
			boxed := b.Combine(rho.Get(u), raw)
			s.tracer.BoxEvaluation(rho, u, raw, boxed)
			return boxed
		}
	}
	s.tracer.NoBoxEvaluation(rho, u, raw)
	return raw
}

func (s *system[U, V]) ApplyWithDeps(rho assign.Assignment[U, V], u U) (V, []U) {
	s.tracer.PreEvaluation(rho, u)
	raw, deps := s.rawDeps.Eval(rho, u)
	s.tracer.PostEvaluation(rho, u, raw)
	if !s.boxes.IsEmpty() {
		if b, ok := s.boxes.At(u); ok {
			boxed := b.Combine(rho.Get(u), raw)
			s.tracer.BoxEvaluation(rho, u, raw, boxed)
			// The box reads rho.Get(u) directly, outside the
			// recording proxy that produced deps, so u itself must
			// be added by hand.
			return boxed, append(deps, u)
		}
	}
	s.tracer.NoBoxEvaluation(rho, u, raw)
	return raw, deps
}

// WithBoxes decorates sys with a BoxAssignment, cloning boxes via Copy per
// the stateful-BoxAssignment contract (box.Assignment doc comment).
// Decorating with an empty assignment is the identity.
func WithBoxes[U comparable, V any](sys EquationSystem[U, V], boxes box.Assignment[U, V]) EquationSystem[U, V] {
	if boxes.IsEmpty() {
		return sys
	}
	s := sys.(*system[U, V]).clone()
	s.boxes = boxes.Copy()
	return s
}

// WithBase decorates sys's body with a base assignment init, folded in by
// comb, the EquationSystem-level counterpart of WithBaseAssignment.
func WithBase[U comparable, V any](sys EquationSystem[U, V], init assign.Partial[U, V], comb lattice.Magma[V]) EquationSystem[U, V] {
	s := sys.(*system[U, V]).clone()
	s.raw = WithBaseAssignment(s.raw, init, comb)
	s.rawDeps = TrackDependencies(s.raw)
	return s
}

// WithTracer decorates sys with t, replacing whatever tracer it already
// had.
func WithTracer[U comparable, V any](sys EquationSystem[U, V], t trace.EquationSystemTracer[U, V]) EquationSystem[U, V] {
	s := sys.(*system[U, V]).clone()
	s.tracer = t
	return s
}
