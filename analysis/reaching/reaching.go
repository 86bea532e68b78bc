// Copyright 2015 Auburn University. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaching

import (
	"go/ast"
	"go/types"

	"github.com/bits-and-blooms/bitset"

	"github.com/godoctor/fixpoint/assign"
	"github.com/godoctor/fixpoint/graph"
	"github.com/godoctor/fixpoint/lattice"
	"github.com/godoctor/fixpoint/solver"
	"github.com/godoctor/fixpoint/trace"
)

// Domain is the reaching-definitions lattice: sets of blocks ordered by
// subset, joined by union, V = *bitset.BitSet. A bit at position
// b.Index is set iff some definition in block b reaches the unknown's
// block.
func Domain() lattice.Domain[*bitset.BitSet] {
	return lattice.NewDomain[*bitset.BitSet](
		func(a, b *bitset.BitSet) bool { return b.IsSuperSet(a) },
		func(a, b *bitset.BitSet) *bitset.BitSet { return a.Union(b) },
	)
}

// Result maps each block to the set of blocks whose definitions reach
// its IN and OUT points.
type Result struct {
	In, Out map[Block]*bitset.BitSet
}

// Build runs reaching-definitions analysis over fn's body, whose
// control-flow graph is constructed by golang.org/x/tools/go/cfg. info
// must carry type information for body's identifiers (as produced by
// go/types.Check or golang.org/x/tools/go/packages, see analysis/loader).
//
// This is the Dragon-book iterative algorithm from analysis/dataflow's
// former reaching.go (ch. 9.2, 2nd ed., p. 607), re-expressed as a
// graph.GraphEquationSystem:
//
//	OUT[B] = gen[B] ∪ (IN[B] \ kill[B]),  IN[B] = ⋃{OUT[P] : P a pred of B}
//
// Since difference distributes over union when the subtrahend is fixed
// ((A∪C)\K = (A\K)∪(C\K)), IN[B] never needs its own unknown: OUT[B] is
// the join of one constant edge carrying gen[B] and one edge per
// predecessor P carrying OUT[P]\kill[B]. go/cfg's entry block holds the
// function's first statements and has no predecessors, so its only
// ingoing edge is the constant gen[entry] edge: IN[entry] is empty (the
// Dragon-book's "OUT[ENTRY] = {}") and OUT[entry] = gen[entry].
func Build(fn *types.Func, body *ast.BlockStmt, info *types.Info) (Result, error) {
	f := buildFunction(fn, body, info)
	n := len(f.blocks)

	unknowns := make([]Block, n)
	for i, b := range f.blocks {
		unknowns[i] = Block{Func: fn, Index: b.Index}
	}

	gen := make([]*bitset.BitSet, n)
	killOwners := make(map[*types.Var]*bitset.BitSet)
	for _, b := range f.blocks {
		g := bitset.New(uint(n))
		for range f.defs[b.Index] {
			g.Set(uint(b.Index))
		}
		gen[b.Index] = g
	}
	for _, b := range f.blocks {
		for _, v := range f.defs[b.Index] {
			owners, ok := killOwners[v]
			if !ok {
				owners = bitset.New(uint(n))
				killOwners[v] = owners
			}
			owners.Set(uint(b.Index))
		}
	}
	kill := make([]*bitset.BitSet, n)
	for _, b := range f.blocks {
		k := bitset.New(uint(n))
		for _, v := range f.defs[b.Index] {
			k = k.Union(killOwners[v])
		}
		kill[b.Index] = k.Difference(gen[b.Index])
	}

	entry := f.entry()
	isInput := func(u Block) bool { return u.Index == entry.Index }

	var edges []graph.Edge[Block, *bitset.BitSet]
	for _, b := range f.blocks {
		target := Block{Func: fn, Index: b.Index}
		g := gen[b.Index]
		k := kill[b.Index]
		edges = append(edges, graph.Edge[Block, *bitset.BitSet]{
			Target: target,
			Action: func(assign.Assignment[Block, *bitset.BitSet]) *bitset.BitSet { return g },
		})
		for _, p := range f.preds[b.Index] {
			source := Block{Func: fn, Index: p.Index}
			edges = append(edges, graph.Edge[Block, *bitset.BitSet]{
				Target:  target,
				Sources: []Block{source},
				Action: func(rho assign.Assignment[Block, *bitset.BitSet]) *bitset.BitSet {
					return rho.Get(source).Difference(k)
				},
			})
		}
	}

	empty := bitset.New(uint(n))
	initial := assign.Const[Block](empty)
	dom := Domain()

	sys, err := graph.New[Block, *bitset.BitSet](edges, unknowns, initial, isInput, dom)
	if err != nil {
		return Result{}, err
	}

	snapshot := solver.Finite[Block, *bitset.BitSet](sys, dom, initial, trace.Null[Block, *bitset.BitSet]{})

	out := make(map[Block]*bitset.BitSet, n)
	in := make(map[Block]*bitset.BitSet, n)
	for _, u := range unknowns {
		out[u] = snapshot.Get(u)
		ins := bitset.New(uint(n))
		for _, p := range f.preds[u.Index] {
			ins = ins.Union(snapshot.Get(Block{Func: fn, Index: p.Index}))
		}
		in[u] = ins
	}
	return Result{In: in, Out: out}, nil
}
