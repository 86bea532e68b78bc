// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqsys_test

import (
	"testing"

	"github.com/godoctor/fixpoint/assign"
	"github.com/godoctor/fixpoint/box"
	"github.com/godoctor/fixpoint/eqsys"
	"github.com/godoctor/fixpoint/lattice"
)

func plusOne() eqsys.Body[string, int] {
	return eqsys.Func[string, int](func(rho assign.Assignment[string, int], u string) int {
		return rho.Get(u) + 1
	})
}

func TestApplyWithNoDecorationIsRawBody(t *testing.T) {
	sys := eqsys.New[string, int](plusOne(), assign.Const[string](0), func(string) bool { return false })
	rho := assign.Const[string](10)
	if got := sys.Apply(rho, "x"); got != 11 {
		t.Fatalf("Apply = %d, want 11", got)
	}
}

func TestApplyWithDepsReportsConsultedUnknowns(t *testing.T) {
	body := eqsys.Func[string, int](func(rho assign.Assignment[string, int], u string) int {
		return rho.Get("a") + rho.Get("b")
	})
	sys := eqsys.New[string, int](body, assign.Const[string](0), func(string) bool { return false })
	rho := assign.Func[string, int](func(u string) int {
		if u == "a" {
			return 3
		}
		return 4
	})
	v, deps := sys.ApplyWithDeps(rho, "x")
	if v != 7 {
		t.Fatalf("value = %d, want 7", v)
	}
	if len(deps) != 2 || deps[0] != "a" || deps[1] != "b" {
		t.Fatalf("deps = %v, want [a b]", deps)
	}
}

func TestWithBoxesFiresOnlyWhereDefined(t *testing.T) {
	sys := eqsys.New[string, int](plusOne(), assign.Const[string](0), func(string) bool { return false })
	capBox := box.Func[int](func(old, new int) int {
		if new > 100 {
			return 100
		}
		return new
	})
	boxes := box.FromMap[string, int](map[string]box.Box[int]{"x": capBox}, true)
	decorated := eqsys.WithBoxes[string, int](sys, boxes)

	rho := assign.Const[string](200)
	if got := decorated.Apply(rho, "x"); got != 100 {
		t.Errorf("boxed unknown: got %d, want 100 (capped)", got)
	}
	if got := decorated.Apply(rho, "y"); got != 201 {
		t.Errorf("unboxed unknown: got %d, want 201 (raw)", got)
	}
}

func TestWithBoxesEmptyIsIdentity(t *testing.T) {
	sys := eqsys.New[string, int](plusOne(), assign.Const[string](0), func(string) bool { return false })
	decorated := eqsys.WithBoxes[string, int](sys, box.Empty[string, int]())
	rho := assign.Const[string](5)
	if decorated.Apply(rho, "x") != sys.Apply(rho, "x") {
		t.Fatalf("decorating with an empty BoxAssignment changed behavior")
	}
}

func TestWithBaseFoldsInitialValue(t *testing.T) {
	sys := eqsys.New[string, int](plusOne(), assign.Const[string](0), func(string) bool { return false })
	init := assign.FromMap(map[string]int{"x": 1000})
	max := lattice.MagmaFunc[int](func(x, y int) int {
		if x > y {
			return x
		}
		return y
	})
	decorated := eqsys.WithBase[string, int](sys, init, max)

	rho := assign.Const[string](0)
	if got := decorated.Apply(rho, "x"); got != 1000 {
		t.Errorf("Apply(x) = %d, want 1000 (base dominates)", got)
	}
	if got := decorated.Apply(rho, "y"); got != 1 {
		t.Errorf("Apply(y) = %d, want 1 (no base entry, raw unchanged)", got)
	}
}
