// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements the fixpoint-solver family: a finite FIFO
// worklist solver, a priority worklist solver with restart semantics, and
// an infinite (local) worklist solver over a dynamically discovered
// unknown set. Each owns one mutable I/O assignment and one worklist, runs
// single-threaded and synchronously, and returns the result as an
// immutable assign.Snapshot.
package solver

import (
	"github.com/godoctor/fixpoint/assign"
	"github.com/godoctor/fixpoint/eqsys"
	"github.com/godoctor/fixpoint/lattice"
	"github.com/godoctor/fixpoint/trace"
)

// fifo is the plain queue the finite and infinite solvers share.
// Deduplication is not required; none is performed.
type fifo[U any] struct {
	items []U
}

func (q *fifo[U]) push(u U)     { q.items = append(q.items, u) }
func (q *fifo[U]) empty() bool  { return len(q.items) == 0 }
func (q *fifo[U]) pop() U {
	u := q.items[0]
	q.items = q.items[1:]
	return u
}
func (q *fifo[U]) pushAll(us []U) {
	q.items = append(q.items, us...)
}

func equal[V any](dom lattice.Domain[V], x, y V) bool {
	return dom.Lteq(x, y) && dom.Lteq(y, x)
}

// Finite runs the FIFO worklist fixpoint algorithm: the worklist is seeded
// with every unknown, and each dequeue re-evaluates the unknown against
// sys and enqueues its statically-known influence set whenever the value
// changed. dom provides the equality test "new != rho(x)" requires; T is
// the FixpointSolverTracer type, held as a type parameter so that
// trace.Null[U, V] elides to no calls at all.
func Finite[U comparable, V any, T trace.FixpointSolverTracer[U, V]](
	sys eqsys.FiniteEquationSystem[U, V],
	dom lattice.Domain[V],
	start assign.Assignment[U, V],
	tracer T,
) *assign.Snapshot[U, V] {
	rho := assign.NewIO[U, V](start)
	worklist := &fifo[U]{}
	worklist.pushAll(sys.Unknowns())

	tracer.Initialized(rho)
	for !worklist.empty() {
		x := worklist.pop()
		newVal := sys.Apply(rho, x)
		tracer.Evaluated(rho, x, newVal)
		if !equal(dom, newVal, rho.Get(x)) {
			rho.Set(x, newVal)
			worklist.pushAll(sys.Infl(x))
		}
	}
	tracer.Completed(rho)
	return rho.Snapshot()
}
