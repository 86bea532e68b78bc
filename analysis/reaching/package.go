// Copyright 2015 Auburn University. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaching

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// AnalyzePackage runs Build over every function declared in pkg, which
// must have been loaded with at least packages.NeedTypes |
// packages.NeedSyntax | packages.NeedTypesInfo (analysis/loader.Load's
// default Mode satisfies this). Functions without a body (external,
// assembly) are skipped.
func AnalyzePackage(pkg *packages.Package) (map[*types.Func]Result, error) {
	results := make(map[*types.Func]Result)
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || fd.Body == nil {
				continue
			}
			obj, ok := pkg.TypesInfo.Defs[fd.Name].(*types.Func)
			if !ok {
				continue
			}
			result, err := Build(obj, fd.Body, pkg.TypesInfo)
			if err != nil {
				return nil, err
			}
			results[obj] = result
		}
	}
	return results, nil
}
