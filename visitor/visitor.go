// Package visitor provides AST traversal and rewriting utilities on
// top of the generic tree operations in the ast package.
package visitor

import "github.com/sqltranspile/sqltranspile/ast"

// Visitor is the interface for AST traversal. Visit is called for each
// node; the returned visitor handles that node's children, and a nil
// return stops descent into them.
type Visitor interface {
	Visit(node ast.Node) Visitor
}

// Walk traverses an AST in depth-first pre-order, driving v through
// every node.
func Walk(v Visitor, node ast.Node) {
	if v == nil || node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}
	for _, c := range children(node) {
		Walk(v, c)
	}
}

// children returns the direct children of n, in field order.
func children(n ast.Node) []ast.Node {
	var out []ast.Node
	ast.Walk(n, func(c, parent ast.Node, _ string) bool {
		if parent == nil {
			return true
		}
		out = append(out, c)
		return false
	})
	return out
}

// WalkFunc is a convenience wrapper that calls a function for each
// node. If fn returns false, the node's children are not visited.
func WalkFunc(node ast.Node, fn func(ast.Node) bool) {
	ast.Walk(node, func(n, _ ast.Node, _ string) bool {
		return fn(n)
	})
}

// Inspect calls f for each node in the AST.
// If f returns false, children are not visited.
func Inspect(node ast.Node, f func(ast.Node) bool) {
	WalkFunc(node, f)
}
