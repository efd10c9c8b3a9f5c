// Package usage finds the text keys Go callers request, so tooling can
// compare them with the keys the table defines.
package usage

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"cabriolet/internal/domain/entities"
)

// lookupMethods take the key as their first argument.
var lookupMethods = map[string]bool{
	"Get":         true,
	"Resolve":     true,
	"MustResolve": true,
}

// receivers are the type names whose lookup methods are tracked, wherever
// they are declared.
var receivers = map[string]bool{
	"Resolver":    true,
	"TextUseCase": true,
	"Table":       true,
}

// Scan loads the packages matching patterns under dir and collects every
// constant key passed to a lookup method. Paths in the result are relative
// to dir.
func Scan(dir string, patterns ...string) (entities.Usage, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("usage: %w", err)
	}

	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
		Dir: root,
	}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("usage: load packages: %w", err)
	}
	if n := packages.PrintErrors(pkgs); n > 0 {
		return nil, fmt.Errorf("usage: %d package errors", n)
	}

	found := make(entities.Usage)
	for _, p := range pkgs {
		if p.TypesInfo == nil {
			continue
		}
		collect(found, root, p.Fset, p.Syntax, p.TypesInfo)
	}
	return found, nil
}

// Collect is Scan for files that are already parsed and type-checked.
func Collect(root string, fset *token.FileSet, files []*ast.File, info *types.Info) entities.Usage {
	found := make(entities.Usage)
	collect(found, root, fset, files, info)
	return found
}

func collect(found entities.Usage, root string, fset *token.FileSet, files []*ast.File, info *types.Info) {
	for _, f := range files {
		ast.Inspect(f, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok || len(call.Args) == 0 {
				return true
			}
			if !isLookup(info, call) {
				return true
			}
			key, ok := constString(info, call.Args[0])
			if !ok {
				return true
			}
			found[entities.Key(key)] = append(found[entities.Key(key)], ref(root, fset, call.Args[0].Pos()))
			return true
		})
	}
}

func isLookup(info *types.Info, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || !lookupMethods[sel.Sel.Name] {
		return false
	}
	s, ok := info.Selections[sel]
	if !ok || s.Kind() != types.MethodVal {
		return false
	}

	recv := s.Recv()
	if p, ok := recv.(*types.Pointer); ok {
		recv = p.Elem()
	}
	named, ok := recv.(*types.Named)
	if !ok {
		return false
	}
	return receivers[named.Obj().Name()]
}

// constString evaluates expr to a constant string, including typed string
// constants and constant expressions like "menu." + "title".
func constString(info *types.Info, expr ast.Expr) (string, bool) {
	tv, ok := info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}
	return constant.StringVal(tv.Value), true
}

func ref(root string, fset *token.FileSet, pos token.Pos) entities.Ref {
	p := fset.Position(pos)
	file := p.Filename
	if rel, err := filepath.Rel(root, file); err == nil && root != "" {
		file = rel
	}
	return entities.Ref{File: filepath.ToSlash(file), Line: p.Line}
}
