// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trace provides the observability hooks an EquationSystem and a
// fixpoint solver fire while evaluating unknowns. Tracers are selected at
// construction time (Null for production, Logging for a human-readable
// transcript, or a caller-supplied implementation) and must be elidable:
// Null's methods are empty and, because solvers accept their tracer as a
// type parameter rather than always boxing it behind an interface, the
// compiler can devirtualize and drop the calls entirely when Null is
// chosen.
package trace

import "github.com/godoctor/fixpoint/assign"

// EquationSystemTracer observes a single EquationSystem.Apply evaluation.
// Events fire in this order:
//
//	PreEvaluation(rho, u)
//	PostEvaluation(rho, u, raw)
//	BoxEvaluation(rho, u, raw, boxed)    -- if a box was defined at u
//	  | NoBoxEvaluation(rho, u, raw)     -- otherwise
type EquationSystemTracer[U comparable, V any] interface {
	PreEvaluation(rho assign.Assignment[U, V], u U)
	PostEvaluation(rho assign.Assignment[U, V], u U, raw V)
	BoxEvaluation(rho assign.Assignment[U, V], u U, raw, boxed V)
	NoBoxEvaluation(rho assign.Assignment[U, V], u U, raw V)
}

// FixpointSolverTracer observes a solver run as a whole.
//
//	Initialized(rho)   -- fires exactly once, before any evaluation
//	Evaluated(rho,u,v) -- fires exactly once per dequeue of u
//	Completed(rho)     -- fires exactly once, when the worklist empties
type FixpointSolverTracer[U comparable, V any] interface {
	Initialized(rho assign.Assignment[U, V])
	Evaluated(rho assign.Assignment[U, V], u U, v V)
	Completed(rho assign.Assignment[U, V])
}
