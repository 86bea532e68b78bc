// Copyright 2015 Auburn University. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reaching computes reaching-definitions sets for a single Go
// function, as a worked example of the generic graph/solver packages
// applied to a real static analysis. It replaces the iterative fixpoint
// loop that analysis/dataflow/reaching.go hand-rolled with an equation
// system solved by solver.Finite, built atop golang.org/x/tools/go/cfg
// instead of the hand-written extras/cfg package.
package reaching

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/cfg"
)

// Block identifies one basic block of one function's control-flow graph.
// It is the unknown space (U) of the equation system: one unknown per
// block, holding that block's OUT set.
type Block struct {
	Func  *types.Func
	Index int32
}

// function is the per-function view built from a *cfg.CFG: block
// predecessors (cfg.Block only exposes successors) and the set of
// *types.Var defined by each block, resolved through a *types.Info.
type function struct {
	fn     *types.Func
	blocks []*cfg.Block
	preds  map[int32][]*cfg.Block
	defs   map[int32][]*types.Var
}

// mayReturn conservatively assumes every call may return. Pruning
// no-return calls (os.Exit, log.Fatal, panic wrappers) would only make
// the CFG more precise, not change what reaching definitions means; the
// conservative default is correct, just possibly coarser.
func mayReturn(*ast.CallExpr) bool { return true }

func buildFunction(fn *types.Func, body *ast.BlockStmt, info *types.Info) *function {
	g := cfg.New(body, mayReturn)

	preds := make(map[int32][]*cfg.Block, len(g.Blocks))
	for _, b := range g.Blocks {
		for _, succ := range b.Succs {
			preds[succ.Index] = append(preds[succ.Index], b)
		}
	}

	defsByBlock := make(map[int32][]*types.Var, len(g.Blocks))
	for _, b := range g.Blocks {
		defsByBlock[b.Index] = blockDefs(b, info)
	}

	return &function{fn: fn, blocks: g.Blocks, preds: preds, defs: defsByBlock}
}

// entry is the block with no predecessors and no incoming edges; cfg.New
// always places it first, at index 0.
func (f *function) entry() *cfg.Block { return f.blocks[0] }

// blockDefs extracts the variables assigned or declared directly within
// a block's statements, resolved to their *types.Var via info.
func blockDefs(b *cfg.Block, info *types.Info) []*types.Var {
	var out []*types.Var
	for _, n := range b.Nodes {
		switch s := n.(type) {
		case *ast.AssignStmt:
			for _, lhs := range s.Lhs {
				if v := identVar(lhs, info); v != nil {
					out = append(out, v)
				}
			}
		case *ast.ValueSpec:
			for _, id := range s.Names {
				if v := identVar(id, info); v != nil {
					out = append(out, v)
				}
			}
		case *ast.IncDecStmt:
			if v := identVar(s.X, info); v != nil {
				out = append(out, v)
			}
		}
	}
	return out
}

func identVar(e ast.Expr, info *types.Info) *types.Var {
	id, ok := e.(*ast.Ident)
	if !ok || id.Name == "_" {
		return nil
	}
	obj := info.ObjectOf(id)
	if obj == nil {
		return nil
	}
	v, ok := obj.(*types.Var)
	if !ok {
		return nil
	}
	return v
}
