// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assign_test

import (
	"testing"

	"github.com/godoctor/fixpoint/assign"
)

func TestConstIsTotal(t *testing.T) {
	a := assign.Const[string](42)
	if got := a.Get("anything"); got != 42 {
		t.Errorf("Const(42).Get(x) = %d, want 42", got)
	}
}

func TestFromMapPartial(t *testing.T) {
	p := assign.FromMap(map[string]int{"x": 1})
	if !p.IsDefinedAt("x") {
		t.Errorf("IsDefinedAt(x) = false, want true")
	}
	if p.IsDefinedAt("y") {
		t.Errorf("IsDefinedAt(y) = true, want false")
	}
	if got := p.Get("x"); got != 1 {
		t.Errorf("Get(x) = %d, want 1", got)
	}
}

func TestIOFallbackDoesNotBind(t *testing.T) {
	fallback := assign.Const[string](0)
	io := assign.NewIO[string](fallback)

	if got := io.Get("x"); got != 0 {
		t.Errorf("Get(x) = %d, want fallback 0", got)
	}
	if io.IsDefinedAt("x") {
		t.Errorf("reading an unset key must not create a binding")
	}

	io.Set("x", 7)
	if !io.IsDefinedAt("x") {
		t.Errorf("IsDefinedAt(x) = false after Set, want true")
	}
	if got := io.Get("x"); got != 7 {
		t.Errorf("Get(x) = %d, want 7", got)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	fallback := assign.Const[string](0)
	io := assign.NewIO[string](fallback)
	io.Set("x", 1)

	snap := io.Snapshot()
	if got := snap.Get("x"); got != 1 {
		t.Errorf("snapshot Get(x) = %d, want 1", got)
	}

	io.Set("x", 2)
	io.Set("y", 9)

	if got := snap.Get("x"); got != 1 {
		t.Errorf("snapshot mutated by later Set: Get(x) = %d, want 1", got)
	}
	if snap.IsDefinedAt("y") {
		t.Errorf("snapshot picked up a binding set after it was taken")
	}
	if got := snap.Get("y"); got != 0 {
		t.Errorf("snapshot Get(y) = %d, want fallback 0", got)
	}
}
