package main

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// keyPrefixes are the tags a bookmark key starts with.
var keyPrefixes = []string{"recipe:", "fridge:"}

// BookmarkKeyAnalyzer reports bookmark keys assembled from string pieces
// outside internal/bookmark. A key written as "fridge:" + id loses the
// validation bookmark.FridgeRecipe does.
var BookmarkKeyAnalyzer = &analysis.Analyzer{
	Name:     "bookmarkkeylint",
	Doc:      "reports bookmark keys built by concatenation or fmt.Sprintf",
	Run:      runBookmarkKey,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func runBookmarkKey(pass *analysis.Pass) (any, error) {
	if strings.HasSuffix(pass.Pkg.Path(), "internal/bookmark") {
		return nil, nil
	}
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodes := []ast.Node{(*ast.BinaryExpr)(nil), (*ast.CallExpr)(nil)}
	insp.Preorder(nodes, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.BinaryExpr:
			if n.Op != token.ADD {
				return
			}
			// only the leftmost operand of a chain carries the tag
			if inner, ok := n.X.(*ast.BinaryExpr); ok && inner.Op == token.ADD {
				return
			}
			if hasKeyPrefix(pass, n.X) && !isConstant(pass, n) {
				report(pass, n)
			}
		case *ast.CallExpr:
			if !isSprintf(pass, n) || len(n.Args) < 2 {
				return
			}
			if hasKeyPrefix(pass, n.Args[0]) {
				report(pass, n)
			}
		}
	})

	return nil, nil
}

func report(pass *analysis.Pass, n ast.Node) {
	pass.Reportf(n.Pos(), "bookmark key built by hand, use bookmark.Recipe or bookmark.FridgeRecipe: %s", render(pass.Fset, n))
}

func hasKeyPrefix(pass *analysis.Pass, e ast.Expr) bool {
	tv, ok := pass.TypesInfo.Types[e]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return false
	}
	s := constant.StringVal(tv.Value)
	for _, p := range keyPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func isConstant(pass *analysis.Pass, e ast.Expr) bool {
	tv, ok := pass.TypesInfo.Types[e]
	return ok && tv.Value != nil
}

func isSprintf(pass *analysis.Pass, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != "fmt" {
		return false
	}
	return fn.Name() == "Sprintf" || fn.Name() == "Sprint"
}
