// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"container/heap"

	"github.com/godoctor/fixpoint/assign"
	"github.com/godoctor/fixpoint/eqsys"
	"github.com/godoctor/fixpoint/lattice"
	"github.com/godoctor/fixpoint/trace"
)

// priorityQueue is a container/heap max-heap over U ordered by an
// Ordering[U], in the style of the corpus's own Dijkstra/Prim priority
// queues (katalvlaran-lvlath/dijkstra.go, prim_kruskal.go).
type priorityQueue[U any] struct {
	items []U
	ord   lattice.Ordering[U]
}

func (pq *priorityQueue[U]) Len() int { return len(pq.items) }

func (pq *priorityQueue[U]) Less(i, j int) bool {
	// heap.Interface's Less defines the pop order; this solver dequeues
	// the greatest element first, so Less here is the reverse of ord.Less.
	return pq.ord.Less(pq.items[j], pq.items[i])
}

func (pq *priorityQueue[U]) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *priorityQueue[U]) Push(x any) { pq.items = append(pq.items, x.(U)) }

func (pq *priorityQueue[U]) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]
	return item
}

// Priority runs the priority worklist solver with restart. On evaluating
// x, after computing newVal and before testing it against the old value,
// restart(newVal, old) is consulted; if true, every unknown y with
// ord.Less(x, y) is reset to start(y) in rho (the worklist itself is
// untouched: those unknowns are re-enqueued as their own dependencies
// fire next).
func Priority[U comparable, V any, T trace.FixpointSolverTracer[U, V]](
	sys eqsys.FiniteEquationSystem[U, V],
	dom lattice.Domain[V],
	ord lattice.Ordering[U],
	start assign.Assignment[U, V],
	restart func(newVal, old V) bool,
	tracer T,
) *assign.Snapshot[U, V] {
	rho := assign.NewIO[U, V](start)
	pq := &priorityQueue[U]{ord: ord}
	heap.Init(pq)
	for _, u := range sys.Unknowns() {
		heap.Push(pq, u)
	}

	unknowns := sys.Unknowns()
	tracer.Initialized(rho)
	for pq.Len() > 0 {
		x := heap.Pop(pq).(U)
		old := rho.Get(x)
		newVal := sys.Apply(rho, x)
		tracer.Evaluated(rho, x, newVal)

		if restart(newVal, old) {
			for _, y := range unknowns {
				if ord.Less(x, y) {
					rho.Set(y, start.Get(y))
				}
			}
		}

		if !equal(dom, newVal, old) {
			rho.Set(x, newVal)
			for _, y := range sys.Infl(x) {
				heap.Push(pq, y)
			}
		}
	}
	tracer.Completed(rho)
	return rho.Snapshot()
}
