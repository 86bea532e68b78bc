// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"github.com/godoctor/fixpoint/assign"
	"github.com/godoctor/fixpoint/box"
	"github.com/godoctor/fixpoint/eqsys"
	"github.com/godoctor/fixpoint/lattice"
)

// WithLocalizedBoxes rewrites sys so that boxes apply per-edge, on back
// edges only, instead of uniformly to every recomputation of an unknown.
// For each edge e with x = target(e): if boxes is defined at x and some
// source of e satisfies x <= s under ord (e runs "backward" into x), e's
// action is rewritten to apply the box; otherwise e is left alone.
//
// When boxes is not idempotent, x is also added to e's Sources wherever
// the box fires on e, so that the edge refires whenever rho(x) itself
// changes. Outgoing and infl are never rewritten directly: both are
// derived from Sources in the standard way (outgoing(u) = {e : u in
// sources(e)}), and that derivation already reproduces the intended
// second rewrite rule exactly, including the self-influence a
// non-idempotent box requires, so rebuilding the graph from the rewritten
// Sources is enough on its own.
func WithLocalizedBoxes[U comparable, V any](sys GraphEquationSystem[U, V], boxes box.Assignment[U, V], ord lattice.Ordering[U]) GraphEquationSystem[U, V] {
	if boxes.IsEmpty() {
		return sys
	}
	b := boxes.Copy()
	old := sys.Edges()
	rewritten := make([]Edge[U, V], len(old))
	copy(rewritten, old)

	for i, e := range old {
		bx, ok := b.At(e.Target)
		if !ok {
			continue
		}
		backEdge := false
		for _, s := range e.Sources {
			if ord.Leq(e.Target, s) {
				backEdge = true
				break
			}
		}
		if !backEdge {
			continue
		}
		action, target := e.Action, e.Target
		rewritten[i].Action = func(rho assign.Assignment[U, V]) V {
			return bx.Combine(rho.Get(target), action(rho))
		}
		if !b.Idempotent() {
			sources := make([]U, len(e.Sources)+1)
			copy(sources, e.Sources)
			sources[len(e.Sources)] = target
			rewritten[i].Sources = sources
		}
	}

	return build(rewritten, sys.Unknowns(), sys.Initial(), sys.IsInput, sys.Domain())
}

// WithLocalizedWarrowing replaces sys's body with a per-unknown
// widen/narrow selection: for each unknown x with non-empty ingoing edges,
// every edge's action is evaluated, flagged as a "widening point" when it
// both runs backward into x (per ord) and its value does not already sit
// below rho(x) (per sys.Domain()), and the flagged results are joined
// pairwise. If any edge was flagged, widen is applied; otherwise, if the
// joined result is strictly below rho(x), narrow is applied; otherwise the
// joined result is used unchanged. This construction is carried over
// as described even though its own source material calls it out as not
// entirely settled; the three-step selection above is exactly what is
// implemented, with no attempt to second-guess or tighten it further.
//
// The result is a flat FiniteEquationSystem, not a GraphEquationSystem:
// the rewrite depends on comparing the joined result against rho(x), which
// cannot be factored back into a per-edge action. Infl adds the diagonal
// unless both widen and narrow are idempotent.
func WithLocalizedWarrowing[U comparable, V any](sys GraphEquationSystem[U, V], ord lattice.Ordering[U], widen, narrow box.Assignment[U, V]) eqsys.FiniteEquationSystem[U, V] {
	dom := sys.Domain()
	w := widen.Copy()
	n := narrow.Copy()

	body := eqsys.Func[U, V](func(rho assign.Assignment[U, V], x U) V {
		ins := sys.Ingoing(x)
		if len(ins) == 0 {
			return rho.Get(x)
		}
		old := rho.Get(x)
		result, anyWiden := reduceEdges(rho, x, ins, dom, ord, old)
		if anyWiden {
			if bx, ok := w.At(x); ok {
				return bx.Combine(old, result)
			}
			return result
		}
		if dom.Lt(result, old) {
			if bx, ok := n.At(x); ok {
				return bx.Combine(old, result)
			}
		}
		return result
	})

	deps := eqsys.DepsFunc[U, V](func(rho assign.Assignment[U, V], x U) (V, []U) {
		ins := sys.Ingoing(x)
		if len(ins) == 0 {
			return rho.Get(x), nil
		}
		v := body.Eval(rho, x)
		seen := map[U]bool{x: true}
		out := []U{x}
		for _, e := range ins {
			for _, s := range e.Sources {
				if !seen[s] {
					seen[s] = true
					out = append(out, s)
				}
			}
		}
		return v, out
	})

	infl := sys.Infl
	if !(w.Idempotent() && n.Idempotent()) {
		infl = withDiagonal(infl)
	}

	return eqsys.NewFiniteWithDeps[U, V](body, deps, sys.Initial(), sys.IsInput, sys.Unknowns(), infl)
}

// reduceEdges computes the pairwise fold of the localized warrowing rule's
// first two steps: the joined value across ins, and whether any edge was a
// widening point.
func reduceEdges[U comparable, V any](rho assign.Assignment[U, V], x U, ins []Edge[U, V], dom lattice.Domain[V], ord lattice.Ordering[U], old V) (V, bool) {
	var result V
	anyWiden := false
	for i, e := range ins {
		c := e.Action(rho)
		backward := false
		for _, s := range e.Sources {
			if ord.Leq(x, s) {
				backward = true
				break
			}
		}
		widenPoint := backward && !dom.Lteq(c, old)
		if i == 0 {
			result = c
		} else {
			result = dom.Join(result, c)
		}
		anyWiden = anyWiden || widenPoint
	}
	return result, anyWiden
}

// withDiagonal adds u to infl(u)'s result, for every u.
func withDiagonal[U comparable](infl func(u U) []U) func(u U) []U {
	return func(u U) []U {
		return append(infl(u), u)
	}
}
