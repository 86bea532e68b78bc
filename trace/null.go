// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import "github.com/godoctor/fixpoint/assign"

// Null is the EquationSystemTracer and FixpointSolverTracer that does
// nothing. It is the zero value of Null[U, V]; every method is an empty
// body, so a solver instantiated with Null as its tracer type parameter
// compiles down to no tracer calls at all rather than empty virtual
// dispatches.
type Null[U comparable, V any] struct{}

func (Null[U, V]) PreEvaluation(assign.Assignment[U, V], U)       {}
func (Null[U, V]) PostEvaluation(assign.Assignment[U, V], U, V)   {}
func (Null[U, V]) BoxEvaluation(assign.Assignment[U, V], U, V, V) {}
func (Null[U, V]) NoBoxEvaluation(assign.Assignment[U, V], U, V)  {}
func (Null[U, V]) Initialized(assign.Assignment[U, V])            {}
func (Null[U, V]) Evaluated(assign.Assignment[U, V], U, V)        {}
func (Null[U, V]) Completed(assign.Assignment[U, V])              {}
