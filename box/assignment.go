// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package box

// Assignment is a per-unknown selection of boxes: At(u) returns the Box to
// apply at u, if any. Idempotent is a global flag, true only when every
// Box this Assignment can ever yield is idempotent; callers that know
// their boxes are all idempotent (e.g. most narrowings) should pass true
// so that downstream decorators can skip the diagonal-influence
// bookkeeping an arbitrary box would otherwise require.
//
// An Assignment may close over mutable per-unknown state (a counter that
// switches from widening to narrowing after k applications is the classic
// example). Such an Assignment is "stateful": every solver MUST call Copy
// before first use and use the returned copy exclusively, never the
// original. Pure Assignments (the common case) may return themselves from
// Copy; there is nothing to reset.
type Assignment[U comparable, V any] interface {
	At(u U) (Box[V], bool)
	Idempotent() bool
	IsEmpty() bool
	// Copy returns an assignment safe to use for exactly one solve. For
	// pure assignments this may be the receiver itself; for stateful
	// assignments it must be a fresh copy with its internal state reset.
	Copy() Assignment[U, V]
}

// empty is the BoxAssignment with no entries; decorating an equation
// system with it is required to be the identity (eqsys.WithBoxes checks
// IsEmpty and returns its receiver unchanged).
type empty[U comparable, V any] struct{}

// Empty returns the BoxAssignment defined nowhere. It is idempotent
// vacuously (there is no non-idempotent box it could ever yield).
func Empty[U comparable, V any]() Assignment[U, V] {
	return empty[U, V]{}
}

func (empty[U, V]) At(U) (Box[V], bool)    { return nil, false }
func (empty[U, V]) Idempotent() bool       { return true }
func (empty[U, V]) IsEmpty() bool          { return true }
func (e empty[U, V]) Copy() Assignment[U, V] { return e }

// fromMap is a pure BoxAssignment backed by a fixed map of boxes. Copy is
// the identity: a fromMap value carries no mutable state to reset.
type fromMap[U comparable, V any] struct {
	boxes      map[U]Box[V]
	idempotent bool
}

// FromMap returns a pure BoxAssignment applying boxes[u] at u, with no box
// at all for unknowns absent from the map. idempotent must be true only if
// every box in boxes is idempotent.
func FromMap[U comparable, V any](boxes map[U]Box[V], idempotent bool) Assignment[U, V] {
	if len(boxes) == 0 {
		return Empty[U, V]()
	}
	return fromMap[U, V]{boxes: boxes, idempotent: idempotent}
}

// Uniform returns a pure BoxAssignment applying the same box at every
// unknown.
func Uniform[U comparable, V any](b Box[V], idempotent bool) Assignment[U, V] {
	return uniform[U, V]{box: b, idempotent: idempotent}
}

type uniform[U comparable, V any] struct {
	box        Box[V]
	idempotent bool
}

func (u uniform[U, V]) At(U) (Box[V], bool)    { return u.box, true }
func (u uniform[U, V]) Idempotent() bool       { return u.idempotent }
func (uniform[U, V]) IsEmpty() bool            { return false }
func (u uniform[U, V]) Copy() Assignment[U, V] { return u }

func (f fromMap[U, V]) At(u U) (Box[V], bool) {
	b, ok := f.boxes[u]
	return b, ok
}

func (f fromMap[U, V]) Idempotent() bool { return f.idempotent }

func (f fromMap[U, V]) IsEmpty() bool { return len(f.boxes) == 0 }

func (f fromMap[U, V]) Copy() Assignment[U, V] { return f }
