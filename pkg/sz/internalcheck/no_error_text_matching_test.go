package internalcheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// Error classification in this module is structural: callers branch on
// szerror categories and errors.Is sentinels. Branching on error text
// breaks the moment a native message changes, so string matching against
// err.Error() is rejected everywhere in the non-test sources.
func TestNoErrorTextMatching(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, "github.com/brianmacy/sz-sdk-go/pkg/sz/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		fset := pkg.Fset
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				switch node := n.(type) {
				case *ast.CallExpr:
					if !isStringMatcher(pkg, node) {
						return true
					}
					for _, arg := range node.Args {
						if isErrorTextCall(arg) {
							pos := fset.Position(arg.Pos())
							findings = append(findings, fmt.Sprintf("%s: match on error category or sentinel, not text", pos))
						}
					}
				case *ast.BinaryExpr:
					if node.Op != token.EQL && node.Op != token.NEQ {
						return true
					}
					if isErrorTextCall(node.X) || isErrorTextCall(node.Y) {
						pos := fset.Position(node.Pos())
						findings = append(findings, fmt.Sprintf("%s: compare error categories or sentinels, not text", pos))
					}
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("error classification policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

// isStringMatcher reports whether call is one of the strings package
// matching helpers.
func isStringMatcher(pkg *packages.Package, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	obj := pkg.TypesInfo.Uses[sel.Sel]
	if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() != "strings" {
		return false
	}
	switch obj.Name() {
	case "Contains", "HasPrefix", "HasSuffix", "EqualFold", "Index":
		return true
	}
	return false
}

// isErrorTextCall reports whether expr is a call of the form x.Error().
func isErrorTextCall(expr ast.Expr) bool {
	call, ok := expr.(*ast.CallExpr)
	if !ok || len(call.Args) != 0 {
		return false
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	return ok && sel.Sel.Name == "Error"
}
