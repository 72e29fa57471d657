package visitor

import "github.com/sqltranspile/sqltranspile/ast"

// ApplyFunc is called for each node during rewriting.
// Return the replacement node or the original to keep it.
type ApplyFunc func(ast.Node) ast.Node

// Rewrite traverses the AST and allows modifying nodes. The function
// is called in post-order (children first, then parent); replacements
// are not descended into, so a single pass terminates even when f
// keeps producing nodes of the kind it matches. The rewrite mutates
// the input tree in place; use ast.Transform with copyTree set to
// rewrite a clone instead.
func Rewrite(node ast.Node, f ApplyFunc) ast.Node {
	return ast.Transform(node, f, false)
}

// RewriteExpr is a convenience wrapper for rewriting only expressions.
func RewriteExpr(expr ast.Expr, f func(ast.Expr) ast.Expr) ast.Expr {
	result := Rewrite(expr, func(n ast.Node) ast.Node {
		if e, ok := n.(ast.Expr); ok {
			return f(e)
		}
		return n
	})
	if result == nil {
		return nil
	}
	if e, ok := result.(ast.Expr); ok {
		return e
	}
	return nil
}
