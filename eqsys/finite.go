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

// FiniteEquationSystem adds a finite, enumerable unknown set and a static
// influence relation to EquationSystem.
type FiniteEquationSystem[U comparable, V any] interface {
	EquationSystem[U, V]
	// Unknowns lists every unknown in the system.
	Unknowns() []U
	// Infl lists the unknowns whose recomputation u may trigger.
	Infl(u U) []U
}

// finiteSystem embeds system so Apply, ApplyWithDeps, Initial and IsInput
// are promoted unchanged; it adds the static unknown set and influence
// relation a finite equation system needs on top.
type finiteSystem[U comparable, V any] struct {
	system[U, V]
	unknowns []U
	infl     func(u U) []U
}

// NewFinite builds a FiniteEquationSystem from a body, an initial
// assignment, an input predicate, the full unknown set, and a static
// influence relation.
func NewFinite[U comparable, V any](
	body Body[U, V],
	initial assign.Assignment[U, V],
	isInput func(u U) bool,
	unknowns []U,
	infl func(u U) []U,
) FiniteEquationSystem[U, V] {
	base := New[U, V](body, initial, isInput).(*system[U, V])
	return &finiteSystem[U, V]{system: *base, unknowns: unknowns, infl: infl}
}

// NewFiniteWithDeps is NewFinite for a caller that can compute a cheaper,
// exact dependency set than the generic recording-proxy strategy
// TrackDependencies provides. graph.New uses this to report the static
// union of an unknown's ingoing edges' sources instead of re-recording
// every Apply.
func NewFiniteWithDeps[U comparable, V any](
	body Body[U, V],
	deps WithDeps[U, V],
	initial assign.Assignment[U, V],
	isInput func(u U) bool,
	unknowns []U,
	infl func(u U) []U,
) FiniteEquationSystem[U, V] {
	base := New[U, V](body, initial, isInput).(*system[U, V])
	base.rawDeps = deps
	return &finiteSystem[U, V]{system: *base, unknowns: unknowns, infl: infl}
}

func (f *finiteSystem[U, V]) clone() *finiteSystem[U, V] {
	cp := *f
	return &cp
}

func (f *finiteSystem[U, V]) Unknowns() []U { return f.unknowns }

func (f *finiteSystem[U, V]) Infl(u U) []U { return f.infl(u) }

// withDiagonal adds u to infl(u)'s result, for every u: the "+diagonal"
// rule required whenever a non-idempotent box is attached, so that an
// unknown whose box may still change the result on a repeat application
// keeps re-triggering its own recomputation.
func withDiagonal[U comparable](infl func(u U) []U) func(u U) []U {
	return func(u U) []U {
		return append(infl(u), u)
	}
}

// FiniteWithBoxes is WithBoxes for a FiniteEquationSystem: it additionally
// adds the diagonal to Infl when boxes is not idempotent.
func FiniteWithBoxes[U comparable, V any](sys FiniteEquationSystem[U, V], boxes box.Assignment[U, V]) FiniteEquationSystem[U, V] {
	if boxes.IsEmpty() {
		return sys
	}
	f := sys.(*finiteSystem[U, V]).clone()
	f.system.boxes = boxes.Copy()
	if !boxes.Idempotent() {
		f.infl = withDiagonal(f.infl)
	}
	return f
}

// FiniteWithBase is WithBase for a FiniteEquationSystem.
func FiniteWithBase[U comparable, V any](sys FiniteEquationSystem[U, V], init assign.Partial[U, V], comb lattice.Magma[V]) FiniteEquationSystem[U, V] {
	f := sys.(*finiteSystem[U, V]).clone()
	f.system.raw = WithBaseAssignment(f.system.raw, init, comb)
	f.system.rawDeps = TrackDependencies(f.system.raw)
	return f
}

// FiniteWithTracer is WithTracer for a FiniteEquationSystem.
func FiniteWithTracer[U comparable, V any](sys FiniteEquationSystem[U, V], t trace.EquationSystemTracer[U, V]) FiniteEquationSystem[U, V] {
	f := sys.(*finiteSystem[U, V]).clone()
	f.system.tracer = t
	return f
}
