// Package ast defines the syntax tree for SQL statements, together
// with the generic tree operations (Walk, Find, Transform, Set,
// Append, Copy) the parser, generator, and rewriters build on.
package ast

import "github.com/sqltranspile/sqltranspile/token"

// Node is the interface implemented by every syntax tree node.
//
// Beyond its source positions, a node knows where it sits in the tree:
// Parent returns the owning node, ArgKey the name of the parent field
// holding it, and ArgIndex its position when that field is a list
// (-1 for a scalar field). Link establishes the references for a whole
// tree (the parser does this for every statement it returns) and Set,
// Append, and Transform keep them consistent through edits, so that
// Arg(n.Parent(), n.ArgKey(), n.ArgIndex()) == n holds for every
// linked descendant.
//
// Comments returns source comments attached to the node during
// parsing.
type Node interface {
	Pos() token.Pos
	End() token.Pos
	Parent() Node
	ArgKey() string
	ArgIndex() int
	Comments() []string
	AddComments(comments ...string)
	setRef(parent Node, key string, index int)
	detachComments()
}

// branch carries the parent back-link, arg-key/arg-index pair, and
// attached comments shared by every node type. It is embedded in each
// node struct; the zero value is an unlinked node.
type branch struct {
	parent   Node
	argKey   string
	argIndex int
	comments []string
}

// Parent returns the owning node, or nil for a root or unlinked node.
func (b *branch) Parent() Node { return b.parent }

// ArgKey returns the name of the parent field holding this node
// ("Where", "Columns", ...), or "" when unlinked.
func (b *branch) ArgKey() string { return b.argKey }

// ArgIndex returns the node's position within a list-valued parent
// field, or -1 for a scalar field.
func (b *branch) ArgIndex() int { return b.argIndex }

// Comments returns the comments attached to this node, in source order.
func (b *branch) Comments() []string { return b.comments }

// AddComments attaches comments to this node.
func (b *branch) AddComments(comments ...string) {
	b.comments = append(b.comments, comments...)
}

func (b *branch) setRef(parent Node, key string, index int) {
	b.parent = parent
	b.argKey = key
	b.argIndex = index
}

// detachComments reslices the comment list so a clone stops sharing
// backing storage with the node it was copied from.
func (b *branch) detachComments() {
	if b.comments != nil {
		b.comments = append([]string(nil), b.comments...)
	}
}

// Statement represents a SQL statement.
type Statement interface {
	Node
	statementNode()
}

// Expr represents an expression.
type Expr interface {
	Node
	exprNode()
}

// TableExpr represents a table expression (in FROM clause).
type TableExpr interface {
	Node
	tableExprNode()
}

// SelectExpr represents a select expression (in SELECT clause).
type SelectExpr interface {
	Node
	selectExprNode()
}

// SQLNode is an alias for compatibility with vitess API.
type SQLNode = Node
