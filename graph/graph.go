// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph implements GraphEquationSystem: a directed hypergraph
// presentation of an equation system, from which body, bodyWithDependencies,
// and the influence relation are all derived rather than supplied directly.
// Edge actions are joined across each unknown's ingoing edges with a
// lattice.Domain's Join, the same capability-witness pattern eqsys uses for
// Magma.
package graph

import (
	"github.com/godoctor/fixpoint/assign"
	"github.com/godoctor/fixpoint/eqsys"
	"github.com/godoctor/fixpoint/lattice"
)

// Edge is one hyperedge of the hypergraph: Action, evaluated against an
// assignment, yields a value that is joined with every other edge into
// Target to produce body(rho)(Target). Sources lists the unknowns Action
// actually depends on; bodyWithDependencies' reported dependency set for an
// unknown is the union of Sources across every edge into it, not whatever
// Action happens to read (an edge is free to read fewer unknowns than it
// declares, but never one it does not declare: the dependency set it
// reports must always be a sound over-approximation).
type Edge[U comparable, V any] struct {
	Target  U
	Sources []U
	Action  func(rho assign.Assignment[U, V]) V
}

// GraphEquationSystem is a FiniteEquationSystem whose body, dependency
// tracking and influence relation are all derived from a fixed set of
// Edges.
type GraphEquationSystem[U comparable, V any] interface {
	eqsys.FiniteEquationSystem[U, V]
	Edges() []Edge[U, V]
	Ingoing(u U) []Edge[U, V]
	Outgoing(u U) []Edge[U, V]
	// Domain is the capability witness Join was built from; localized
	// decorators that rebuild a graph reuse it rather than asking the
	// caller for it a second time.
	Domain() lattice.Domain[V]
}

type graphSystem[U comparable, V any] struct {
	eqsys.FiniteEquationSystem[U, V]
	edges    []Edge[U, V]
	ingoing  map[U][]Edge[U, V]
	outgoing map[U][]Edge[U, V]
	dom      lattice.Domain[V]
}

// New builds a GraphEquationSystem from edges. dom must be non-nil: it
// provides the Join used to fold an unknown's ingoing edge actions
// together, the one capability a hypergraph presentation cannot do
// without.
func New[U comparable, V any](
	edges []Edge[U, V],
	unknowns []U,
	initial assign.Assignment[U, V],
	isInput func(u U) bool,
	dom lattice.Domain[V],
) (GraphEquationSystem[U, V], error) {
	if dom == nil {
		return nil, eqsys.MissingCapability("graph.New requires a non-nil lattice.Domain[V] to join ingoing edge actions")
	}
	return build(edges, unknowns, initial, isInput, dom), nil
}

// build assumes dom is already known non-nil; it is shared by New and by
// the localized decorators, which reuse a domain witness already validated
// by the graph they are decorating.
func build[U comparable, V any](
	edges []Edge[U, V],
	unknowns []U,
	initial assign.Assignment[U, V],
	isInput func(u U) bool,
	dom lattice.Domain[V],
) *graphSystem[U, V] {
	ingoing := make(map[U][]Edge[U, V])
	outgoing := make(map[U][]Edge[U, V])
	for _, e := range edges {
		ingoing[e.Target] = append(ingoing[e.Target], e)
		for _, s := range e.Sources {
			outgoing[s] = append(outgoing[s], e)
		}
	}

	body := eqsys.Func[U, V](func(rho assign.Assignment[U, V], u U) V {
		ins := ingoing[u]
		if len(ins) == 0 {
			return rho.Get(u)
		}
		result := ins[0].Action(rho)
		for _, e := range ins[1:] {
			result = dom.Join(result, e.Action(rho))
		}
		return result
	})

	deps := eqsys.DepsFunc[U, V](func(rho assign.Assignment[U, V], u U) (V, []U) {
		v := body.Eval(rho, u)
		var seen []U
		for _, e := range ingoing[u] {
			seen = append(seen, e.Sources...)
		}
		return v, seen
	})

	infl := func(u U) []U {
		outs := outgoing[u]
		if len(outs) == 0 {
			return nil
		}
		targets := make([]U, len(outs))
		for i, e := range outs {
			targets[i] = e.Target
		}
		return targets
	}

	fin := eqsys.NewFiniteWithDeps[U, V](body, deps, initial, isInput, unknowns, infl)
	return &graphSystem[U, V]{
		FiniteEquationSystem: fin,
		edges:                edges,
		ingoing:              ingoing,
		outgoing:             outgoing,
		dom:                  dom,
	}
}

func (g *graphSystem[U, V]) Edges() []Edge[U, V] { return g.edges }

func (g *graphSystem[U, V]) Ingoing(u U) []Edge[U, V] { return g.ingoing[u] }

func (g *graphSystem[U, V]) Outgoing(u U) []Edge[U, V] { return g.outgoing[u] }

func (g *graphSystem[U, V]) Domain() lattice.Domain[V] { return g.dom }
