// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assign provides the three flavors of mapping from unknowns to
// values that the solver family reads from and writes into: an immutable
// total Assignment, a Partial assignment defined only on a subset, and a
// mutable IO assignment used to carry a solve in progress.
package assign

// Assignment is a total mapping from an unknown to a value. Input
// assignments (the "start" or "fallback" of a solve) and the snapshots
// returned by IO.Snapshot are both Assignments.
type Assignment[U comparable, V any] interface {
	Get(u U) V
}

// Func adapts a plain function to an Assignment.
type Func[U comparable, V any] func(u U) V

// Get calls f(u).
func (f Func[U, V]) Get(u U) V { return f(u) }

// Const returns an Assignment that yields v for every unknown.
func Const[U comparable, V any](v V) Assignment[U, V] {
	return Func[U, V](func(U) V { return v })
}

// Partial is an Assignment defined only on a subset of unknowns.
// IsDefinedAt(u) reports whether u is in that subset; Get(u) is only
// meaningful when IsDefinedAt(u) is true (it returns the zero value of V
// otherwise). Partial assignments back base assignments (eqsys's
// WithBaseAssignment and WithBase), which carry no fallback of their own.
type Partial[U comparable, V any] interface {
	Assignment[U, V]
	IsDefinedAt(u U) bool
}

// partialMap is a Partial backed by a plain map.
type partialMap[U comparable, V any] struct {
	m map[U]V
}

// FromMap returns a Partial defined exactly on the keys of m.
func FromMap[U comparable, V any](m map[U]V) Partial[U, V] {
	return partialMap[U, V]{m: m}
}

func (p partialMap[U, V]) Get(u U) V {
	return p.m[u]
}

func (p partialMap[U, V]) IsDefinedAt(u U) bool {
	_, ok := p.m[u]
	return ok
}

// Empty returns a Partial defined nowhere.
func Empty[U comparable, V any]() Partial[U, V] {
	return partialMap[U, V]{m: nil}
}

// Snapshot is an immutable, map-backed total view produced by IO.Snapshot:
// a binding if one was recorded, the fallback's value otherwise. It plays
// the same "plain map you can hand around freely" role that the teacher's
// doctor.Cache plays for file contents, scoped to a single solve's result.
type Snapshot[U comparable, V any] struct {
	bindings map[U]V
	fallback Assignment[U, V]
}

// Get returns the recorded binding for u, or the fallback's value if u was
// never written.
func (s *Snapshot[U, V]) Get(u U) V {
	if v, ok := s.bindings[u]; ok {
		return v
	}
	return s.fallback.Get(u)
}

// IsDefinedAt reports whether u has an explicit recorded binding.
func (s *Snapshot[U, V]) IsDefinedAt(u U) bool {
	_, ok := s.bindings[u]
	return ok
}

// Bindings returns the explicitly recorded unknown/value pairs. The
// returned map must not be mutated.
func (s *Snapshot[U, V]) Bindings() map[U]V {
	return s.bindings
}
