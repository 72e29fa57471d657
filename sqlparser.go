// Package sqltranspile parses SQL in one vendor dialect and
// regenerates it in the same or another dialect.
//
// It accepts MySQL, PostgreSQL, SQLite, and SQL Server surface syntax
// on the read side, and regenerates through a per-dialect generator
// configuration on the write side. Parse, Walk, and Rewrite work like
// their vitess-sqlparser counterparts.
//
// Basic usage:
//
//	stmt, err := sqltranspile.Parse("SELECT * FROM users WHERE id = 1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sqltranspile.String(stmt))
//
// Transpiling between dialects:
//
//	out, err := sqltranspile.Transpile("SELECT `a` FROM `b`", "mysql", "postgres", false)
//	// out[0] == `SELECT "a" FROM "b"`
//
// Walking the AST:
//
//	sqltranspile.Walk(stmt, func(node ast.Node) bool {
//	    if col, ok := node.(*ast.ColName); ok {
//	        fmt.Printf("Found column: %s\n", col.Name())
//	    }
//	    return true
//	})
//
// Rewriting nodes:
//
//	rewritten := sqltranspile.Rewrite(stmt, func(n ast.Node) ast.Node {
//	    // Transform nodes as needed
//	    return n
//	})
package sqltranspile

import (
	"github.com/sqltranspile/sqltranspile/ast"
	"github.com/sqltranspile/sqltranspile/dialect"
	"github.com/sqltranspile/sqltranspile/format"
	"github.com/sqltranspile/sqltranspile/lexer"
	"github.com/sqltranspile/sqltranspile/parser"
	"github.com/sqltranspile/sqltranspile/sqlerr"
	"github.com/sqltranspile/sqltranspile/token"
	"github.com/sqltranspile/sqltranspile/visitor"
)

// Parse parses a single SQL statement.
// The parser uses internal pooling for efficiency.
// For maximum performance when parsing many queries, call Repool(stmt)
// when done with the statement (optional, see Repool).
func Parse(sql string) (ast.Statement, error) {
	p := parser.Get(sql)
	stmt, err := p.Parse()
	parser.Put(p)
	return stmt, err
}

// ParseAll parses all statements in the input.
// For maximum performance, call Repool on each statement when done (optional).
func ParseAll(sql string) ([]ast.Statement, error) {
	p := parser.Get(sql)
	stmts, err := p.ParseAll()
	parser.Put(p)
	return stmts, err
}

// Repool returns AST nodes to internal pools for reuse.
// This is optional - if not called, nodes are garbage collected normally.
// Calling Repool after you're done with a statement improves performance
// when parsing many queries by reducing allocations.
//
// Example:
//
//	stmt, err := sqltranspile.Parse(sql)
//	if err != nil {
//	    return err
//	}
//	defer sqltranspile.Repool(stmt)
//	// ... use stmt ...
func Repool(stmt Statement) {
	ast.ReleaseAST(stmt)
}

// String formats an AST node back to SQL.
func String(node ast.Node) string {
	return format.String(node)
}

// Tokenize scans sql into its full token stream, with comments
// attached to the tokens they belong to. See lexer.Tokenize for the
// attachment policy.
func Tokenize(sql string) ([]token.Item, error) {
	return lexer.Tokenize(sql)
}

// ParseOneDialect parses sql under the named dialect and requires it to
// contain exactly one non-empty statement: an empty input or one made
// up only of semicolons fails rather than silently returning nil.
//
// An empty dialectName resolves to the built-in default dialect; an
// unregistered name fails with a *sqlerr.UnsupportedError.
func ParseOneDialect(sql, dialectName string) (ast.Statement, error) {
	if _, err := dialect.GetOrRaise(dialectName); err != nil {
		return nil, err
	}
	stmts, err := ParseAll(sql)
	if err != nil {
		return nil, err
	}
	if len(stmts) != 1 || stmts[0] == nil {
		return nil, &sqlerr.ParseError{Diagnostics: []sqlerr.Diagnostic{{
			Description: "expected exactly one statement",
		}}}
	}
	return stmts[0], nil
}

// ParseAllDialect parses sql under the named dialect, returning one
// entry per `;`-separated chunk (nil for an empty chunk).
//
// The tokenizer and parser in this module accept every dialect's
// identifier/quote-delimiter forms unconditionally rather than being
// reconfigured per call; dialectName here only gates against unknown
// dialects and records intent for Transpile. The dialect's
// configuration takes effect at generation time.
func ParseAllDialect(sql, dialectName string) ([]ast.Statement, error) {
	if _, err := dialect.GetOrRaise(dialectName); err != nil {
		return nil, err
	}
	return ParseAll(sql)
}

// Transpile reads sql under readDialect and regenerates it under
// writeDialect, returning one SQL string per statement.
func Transpile(sql, readDialect, writeDialect string, pretty bool) ([]string, error) {
	wd, err := dialect.GetOrRaise(writeDialect)
	if err != nil {
		return nil, err
	}
	stmts, err := ParseAllDialect(sql, readDialect)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(stmts))
	opts := format.DefaultOptions
	opts.Dialect = wd
	opts.Pretty = pretty
	for i, stmt := range stmts {
		if stmt == nil {
			continue
		}
		f := format.New(opts)
		f.Format(stmt)
		if err := f.Err(); err != nil {
			return nil, err
		}
		out[i] = f.String()
	}
	return out, nil
}

// Walk traverses the AST calling the function for each node.
// If the function returns false, children are not visited.
func Walk(node ast.Node, fn func(ast.Node) bool) {
	visitor.WalkFunc(node, fn)
}

// Rewrite traverses the AST allowing node replacement.
// The function is called in post-order (children first, then parent).
// Return the replacement node, the original to keep it, or nil to
// remove the node from its parent. Replacements are not descended
// into. Rewrite mutates the tree in place; use ast.Transform with
// copyTree set to rewrite a clone, and ast.Find/FindAll/Set/Append
// for targeted queries and edits.
func Rewrite(node ast.Node, fn func(ast.Node) ast.Node) ast.Node {
	return visitor.Rewrite(node, fn)
}

// Statement is the interface for all SQL statements.
type Statement = ast.Statement

// Expr is the interface for all expressions.
type Expr = ast.Expr

// Node is the base interface for all AST nodes.
type Node = ast.Node

// Common type aliases for convenience.
type (
	SelectStmt       = ast.SelectStmt
	InsertStmt       = ast.InsertStmt
	UpdateStmt       = ast.UpdateStmt
	DeleteStmt       = ast.DeleteStmt
	CreateTableStmt  = ast.CreateTableStmt
	AlterTableStmt   = ast.AlterTableStmt
	DropTableStmt    = ast.DropTableStmt
	CreateIndexStmt  = ast.CreateIndexStmt
	DropIndexStmt    = ast.DropIndexStmt
	TruncateStmt     = ast.TruncateStmt
	ExplainStmt      = ast.ExplainStmt
	ColName          = ast.ColName
	TableName        = ast.TableName
	Literal          = ast.Literal
	BinaryExpr       = ast.BinaryExpr
	UnaryExpr        = ast.UnaryExpr
	FuncExpr         = ast.FuncExpr
	CaseExpr         = ast.CaseExpr
	CastExpr         = ast.CastExpr
	Subquery         = ast.Subquery
	JoinExpr         = ast.JoinExpr
	AliasedExpr      = ast.AliasedExpr
	AliasedTableExpr = ast.AliasedTableExpr
	StarExpr         = ast.StarExpr
	ParenExpr        = ast.ParenExpr
	InExpr           = ast.InExpr
	BetweenExpr      = ast.BetweenExpr
	LikeExpr         = ast.LikeExpr
	IsExpr           = ast.IsExpr
	ExistsExpr       = ast.ExistsExpr
	OrderByExpr      = ast.OrderByExpr
	Limit            = ast.Limit
	WithClause       = ast.WithClause
	CTE              = ast.CTE
)

// Join types
const (
	JoinInner = ast.JoinInner
	JoinLeft  = ast.JoinLeft
	JoinRight = ast.JoinRight
	JoinFull  = ast.JoinFull
	JoinCross = ast.JoinCross
)

// Literal types
const (
	LiteralNull   = ast.LiteralNull
	LiteralInt    = ast.LiteralInt
	LiteralFloat  = ast.LiteralFloat
	LiteralString = ast.LiteralString
	LiteralBool   = ast.LiteralBool
)
