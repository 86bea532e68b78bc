// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fixpoint is a generic fixpoint solver library for equation
// systems over user-defined lattices, of the kind consumed by static
// analyzers (reaching definitions, liveness, constant propagation, and
// similar dataflow problems).
//
// The public surface is spread across small packages rather than
// re-exported from one god package, in the layering the teacher repo
// uses for its own refactoring engine:
//
//   - lattice: algebraic capability witnesses (Magma, Domain, Ordering) a
//     value type V must supply to be usable as a lattice element.
//   - assign: Assignment, Partial and IO, the three flavors of "current
//     guess at rho" a body or solver reads from and writes to.
//   - box: Box and BoxAssignment, the per-unknown "combine old and new"
//     hook used for widening/narrowing and similar non-monotone folds.
//   - eqsys: Body, EquationSystem and FiniteEquationSystem, the core
//     construction/decoration surface (New, WithBoxes, WithBase,
//     WithTracer and their Finite-prefixed counterparts).
//   - graph: GraphEquationSystem, a directed-hypergraph presentation of
//     an equation system whose body, dependency tracking and influence
//     relation are all derived from a list of Edges, plus the localized
//     box/warrowing decorators that return a rewritten system and leave
//     the original unchanged.
//   - trace: EquationSystemTracer and FixpointSolverTracer, the
//     observation points a solver run fires through, with a no-op and a
//     line-oriented logging implementation.
//   - solver: Finite, Priority and Infinite, the three worklist
//     algorithms that actually run a FiniteEquationSystem (or, for
//     Infinite, a plain EquationSystem) to a fixpoint.
//   - engine: a small catalog of the solver family's names and
//     descriptions, for tooling that wants to offer a solver choice by
//     name rather than importing solver directly.
//   - analysis/reaching, analysis/loader: a worked example, reaching
//     definitions over a real Go function's control-flow graph, built
//     entirely out of the packages above.
//
// A typical caller builds a Body, wraps it in an EquationSystem or
// GraphEquationSystem, decorates it with boxes/base assignments/a tracer
// as needed, and hands the result to one of the solver package's three
// entry points.
package fixpoint
