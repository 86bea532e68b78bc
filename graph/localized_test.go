// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph_test

import (
	"testing"

	"github.com/godoctor/fixpoint/assign"
	"github.com/godoctor/fixpoint/box"
	"github.com/godoctor/fixpoint/graph"
	"github.com/godoctor/fixpoint/lattice"
)

func selfLoopOrdering() lattice.Ordering[string] {
	// A single unknown is trivially <= itself; a self-loop edge's only
	// source is its own target, so this is always a back edge.
	return lattice.OrderingFunc[string](func(x, y string) bool { return x == y })
}

// x has one self-loop edge that adds one to its own current value, forever
// increasing: a direct stand-in for a loop counter's dataflow equation.
func selfLoop() graph.GraphEquationSystem[string, int] {
	edges := []graph.Edge[string, int]{
		{Target: "x", Sources: []string{"x"}, Action: func(rho assign.Assignment[string, int]) int { return rho.Get("x") + 1 }},
	}
	sys, err := graph.New[string, int](edges, []string{"x"}, assign.Const[string](0), func(string) bool { return false }, maxDomain())
	if err != nil {
		panic(err)
	}
	return sys
}

func TestWithLocalizedBoxesAppliesOnlyToBackEdges(t *testing.T) {
	sys := selfLoop()
	capBox := box.Func[int](func(old, new int) int {
		if new > 3 {
			return 3
		}
		return new
	})
	boxes := box.Uniform[string, int](capBox, true)
	decorated := graph.WithLocalizedBoxes[string, int](sys, boxes, selfLoopOrdering())

	rho := assign.Const[string](10)
	if got := decorated.Apply(rho, "x"); got != 3 {
		t.Errorf("localized box on a self-loop back edge: got %d, want 3 (capped)", got)
	}
}

func TestWithLocalizedBoxesEmptyIsIdentity(t *testing.T) {
	sys := selfLoop()
	decorated := graph.WithLocalizedBoxes[string, int](sys, box.Empty[string, int](), selfLoopOrdering())
	rho := assign.Const[string](5)
	if decorated.Apply(rho, "x") != sys.Apply(rho, "x") {
		t.Fatal("decorating with an empty BoxAssignment changed behavior")
	}
}

func TestWithLocalizedWarrowingWidensOnBackEdge(t *testing.T) {
	sys := selfLoop()
	widen := box.Func[int](func(old, new int) int { return 1000 })
	narrow := box.Func[int](func(old, new int) int { return new })
	decorated := graph.WithLocalizedWarrowing[string, int](
		sys,
		selfLoopOrdering(),
		box.Uniform[string, int](widen, false),
		box.Uniform[string, int](narrow, true),
	)

	rho := assign.Const[string](5)
	if got := decorated.Apply(rho, "x"); got != 1000 {
		t.Errorf("Apply(x) = %d, want 1000 (widened: back edge raises above rho(x))", got)
	}
}

func TestWithLocalizedWarrowingNarrowsWhenResultDrops(t *testing.T) {
	edges := []graph.Edge[string, int]{
		{Target: "x", Sources: []string{"x"}, Action: func(rho assign.Assignment[string, int]) int { return rho.Get("x") - 1 }},
	}
	sys, err := graph.New[string, int](edges, []string{"x"}, assign.Const[string](0), func(string) bool { return false }, maxDomain())
	if err != nil {
		t.Fatal(err)
	}
	narrowed := false
	narrow := box.Func[int](func(old, new int) int {
		narrowed = true
		return new
	})
	widen := box.Func[int](func(old, new int) int { return 1000 })
	decorated := graph.WithLocalizedWarrowing[string, int](
		sys,
		selfLoopOrdering(),
		box.Uniform[string, int](widen, false),
		box.Uniform[string, int](narrow, true),
	)

	rho := assign.Const[string](5)
	got := decorated.Apply(rho, "x")
	if got != 4 {
		t.Errorf("Apply(x) = %d, want 4", got)
	}
	if !narrowed {
		t.Error("expected narrow to fire when the joined result drops below rho(x)")
	}
}
