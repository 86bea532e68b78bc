// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/godoctor/fixpoint/assign"
	"github.com/godoctor/fixpoint/eqsys"
	"github.com/godoctor/fixpoint/lattice"
	"github.com/godoctor/fixpoint/trace"
)

// multiMap is infl for the infinite solver: an insertion-ordered set per
// bucket, built incrementally as dependencies are discovered. Unlike the
// other solvers' worklists, buckets are deduplicated: a multi-map is
// described as ordered sets, not queues.
type multiMap[U comparable] struct {
	buckets map[U][]U
	seen    map[U]map[U]bool
}

func newMultiMap[U comparable]() *multiMap[U] {
	return &multiMap[U]{buckets: make(map[U][]U), seen: make(map[U]map[U]bool)}
}

func (m *multiMap[U]) add(from, to U) {
	if m.seen[from] == nil {
		m.seen[from] = make(map[U]bool)
	}
	if m.seen[from][to] {
		return
	}
	m.seen[from][to] = true
	m.buckets[from] = append(m.buckets[from], to)
}

func (m *multiMap[U]) get(u U) []U { return m.buckets[u] }

// Infinite runs the local worklist solver over an unknown set that is not
// enumerated up front: it starts from wanted and materializes further
// unknowns lazily, the first time they turn up as a dependency of
// something already being evaluated. sys need only be a plain
// EquationSystem (there is no finite Unknowns()/Infl() to consult), so
// the influence relation is built up as evaluation proceeds.
func Infinite[U comparable, V any, T trace.FixpointSolverTracer[U, V]](
	sys eqsys.EquationSystem[U, V],
	dom lattice.Domain[V],
	wanted []U,
	start assign.Assignment[U, V],
	tracer T,
) *assign.Snapshot[U, V] {
	rho := assign.NewIO[U, V](start)
	infl := newMultiMap[U]()
	worklist := &fifo[U]{}
	worklist.pushAll(wanted)

	tracer.Initialized(rho)
	for !worklist.empty() {
		x := worklist.pop()
		newVal, deps := sys.ApplyWithDeps(rho, x)
		tracer.Evaluated(rho, x, newVal)

		for _, y := range deps {
			if !rho.IsDefinedAt(y) {
				rho.Set(y, start.Get(y))
				worklist.push(y)
			}
			infl.add(y, x)
		}

		if !equal(dom, newVal, rho.Get(x)) {
			rho.Set(x, newVal)
			worklist.pushAll(infl.get(x))
		}
	}
	tracer.Completed(rho)
	return rho.Snapshot()
}
