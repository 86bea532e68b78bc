// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqsys_test

import (
	"reflect"
	"testing"

	"github.com/godoctor/fixpoint/assign"
	"github.com/godoctor/fixpoint/box"
	"github.com/godoctor/fixpoint/eqsys"
)

func twoNode() (eqsys.FiniteEquationSystem[string, int], []string) {
	unknowns := []string{"x", "y"}
	infl := func(u string) []string {
		if u == "x" {
			return []string{"y"}
		}
		return nil
	}
	body := eqsys.Func[string, int](func(rho assign.Assignment[string, int], u string) int {
		return rho.Get(u) + 1
	})
	return eqsys.NewFinite[string, int](body, assign.Const[string](0), func(string) bool { return false }, unknowns, infl), unknowns
}

func TestNewFiniteExposesUnknownsAndInfl(t *testing.T) {
	sys, unknowns := twoNode()
	if !reflect.DeepEqual(sys.Unknowns(), unknowns) {
		t.Fatalf("Unknowns() = %v, want %v", sys.Unknowns(), unknowns)
	}
	if got := sys.Infl("x"); !reflect.DeepEqual(got, []string{"y"}) {
		t.Fatalf("Infl(x) = %v, want [y]", got)
	}
	if got := sys.Infl("y"); len(got) != 0 {
		t.Fatalf("Infl(y) = %v, want empty", got)
	}
}

func TestFiniteWithBoxesIdempotentLeavesInflAlone(t *testing.T) {
	sys, _ := twoNode()
	idBox := box.Func[int](func(old, new int) int { return new })
	boxes := box.Uniform[string, int](idBox, true)
	decorated := eqsys.FiniteWithBoxes[string, int](sys, boxes)
	if got := decorated.Infl("x"); !reflect.DeepEqual(got, []string{"y"}) {
		t.Fatalf("Infl(x) with idempotent box = %v, want unchanged [y]", got)
	}
	if got := decorated.Infl("y"); len(got) != 0 {
		t.Fatalf("Infl(y) with idempotent box = %v, want still empty", got)
	}
}

func TestFiniteWithBoxesNonIdempotentAddsDiagonal(t *testing.T) {
	sys, _ := twoNode()
	widen := box.Func[int](func(old, new int) int {
		if new > old {
			return 1000
		}
		return new
	})
	boxes := box.Uniform[string, int](widen, false)
	decorated := eqsys.FiniteWithBoxes[string, int](sys, boxes)

	got := decorated.Infl("x")
	want := map[string]bool{"y": true, "x": true}
	if len(got) != 2 {
		t.Fatalf("Infl(x) with non-idempotent box = %v, want 2 entries (y, plus diagonal x)", got)
	}
	for _, u := range got {
		if !want[u] {
			t.Errorf("Infl(x) contained unexpected %q", u)
		}
	}

	gotY := decorated.Infl("y")
	if len(gotY) != 1 || gotY[0] != "y" {
		t.Fatalf("Infl(y) with non-idempotent box = %v, want [y] (diagonal only)", gotY)
	}
}
