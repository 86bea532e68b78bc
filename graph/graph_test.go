// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/godoctor/fixpoint/assign"
	"github.com/godoctor/fixpoint/graph"
	"github.com/godoctor/fixpoint/lattice"
)

func maxDomain() lattice.Domain[int] {
	return lattice.NewDomain[int](
		func(x, y int) bool { return x <= y },
		func(x, y int) int {
			if x > y {
				return x
			}
			return y
		},
	)
}

// a -> b -> c, each edge action adds one to its single source.
func chain() (graph.GraphEquationSystem[string, int], error) {
	edges := []graph.Edge[string, int]{
		{Target: "b", Sources: []string{"a"}, Action: func(rho assign.Assignment[string, int]) int { return rho.Get("a") + 1 }},
		{Target: "c", Sources: []string{"b"}, Action: func(rho assign.Assignment[string, int]) int { return rho.Get("b") + 1 }},
	}
	return graph.New[string, int](edges, []string{"a", "b", "c"}, assign.Const[string](0), func(u string) bool { return u == "a" }, maxDomain())
}

func TestNewRejectsNilDomain(t *testing.T) {
	_, err := graph.New[string, int](nil, nil, assign.Const[string](0), func(string) bool { return false }, nil)
	if err == nil {
		t.Fatal("expected an error for a nil Domain, got nil")
	}
}

func TestBodyIsStationaryWithoutIngoingEdges(t *testing.T) {
	sys, err := chain()
	if err != nil {
		t.Fatal(err)
	}
	rho := assign.Const[string](5)
	if got := sys.Apply(rho, "a"); got != 5 {
		t.Errorf("Apply(a) = %d, want 5 (stationary, no ingoing edges)", got)
	}
}

func TestBodyJoinsIngoingEdges(t *testing.T) {
	sys, err := chain()
	if err != nil {
		t.Fatal(err)
	}
	rho := assign.Func[string, int](func(u string) int {
		if u == "a" {
			return 10
		}
		return 0
	})
	if got := sys.Apply(rho, "b"); got != 11 {
		t.Errorf("Apply(b) = %d, want 11", got)
	}
}

func TestInflDerivedFromOutgoing(t *testing.T) {
	sys, err := chain()
	if err != nil {
		t.Fatal(err)
	}
	got := sys.Infl("a")
	if !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Infl(a) = %v, want [b]", got)
	}
}

func TestApplyWithDepsUsesStaticSources(t *testing.T) {
	sys, err := chain()
	if err != nil {
		t.Fatal(err)
	}
	rho := assign.Const[string](0)
	_, deps := sys.ApplyWithDeps(rho, "c")
	sort.Strings(deps)
	if !reflect.DeepEqual(deps, []string{"b"}) {
		t.Errorf("ApplyWithDeps(c) deps = %v, want [b]", deps)
	}
}
