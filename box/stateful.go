// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package box

// CountingSwitch is the canonical stateful BoxAssignment: it applies
// before at every unknown for its first k evaluations, then switches to
// after. The per-unknown evaluation counters are exactly why stateful
// BoxAssignments must be copied before each solve: reusing one across two
// solves without copying would let the second solve inherit the first
// one's counts and switch boxes prematurely.
//
// before and after need not differ in idempotence; idempotent reports
// whether BOTH are idempotent (the assignment as a whole is idempotent
// only if every box it can ever yield is).
type CountingSwitch[U comparable, V any] struct {
	k          int
	before     Box[V]
	after      Box[V]
	idempotent bool
	counts     map[U]int
}

// NewCountingSwitch returns a stateful BoxAssignment applying before for an
// unknown's first k evaluations and after from the k+1th evaluation
// onward. The returned value must be Copy'd before use, like any stateful
// BoxAssignment.
func NewCountingSwitch[U comparable, V any](k int, before, after Box[V], idempotent bool) *CountingSwitch[U, V] {
	return &CountingSwitch[U, V]{
		k:          k,
		before:     before,
		after:      after,
		idempotent: idempotent,
		counts:     make(map[U]int),
	}
}

// At returns a Box that, when combined, increments u's counter and
// delegates to before or after depending on the count observed so far.
func (c *CountingSwitch[U, V]) At(u U) (Box[V], bool) {
	return Func[V](func(old, new V) V {
		n := c.counts[u]
		c.counts[u] = n + 1
		if n < c.k {
			return c.before.Combine(old, new)
		}
		return c.after.Combine(old, new)
	}), true
}

// Idempotent reports whether both before and after are idempotent.
func (c *CountingSwitch[U, V]) Idempotent() bool { return c.idempotent }

// IsEmpty is always false: CountingSwitch applies at every unknown.
func (c *CountingSwitch[U, V]) IsEmpty() bool { return false }

// Copy returns a fresh CountingSwitch with the same before/after boxes and
// k, but with every counter reset to zero, per the stateful-BoxAssignment
// contract.
func (c *CountingSwitch[U, V]) Copy() Assignment[U, V] {
	return &CountingSwitch[U, V]{
		k:          c.k,
		before:     c.before,
		after:      c.after,
		idempotent: c.idempotent,
		counts:     make(map[U]int),
	}
}
