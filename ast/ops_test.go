package ast_test

import (
	"testing"

	"github.com/sqltranspile/sqltranspile/ast"
	"github.com/sqltranspile/sqltranspile/format"
	"github.com/sqltranspile/sqltranspile/parser"
)

func mustParse(t *testing.T, sql string) ast.Statement {
	t.Helper()
	p := parser.New(sql)
	stmt, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse(%q): %v", sql, err)
	}
	if stmt == nil {
		t.Fatalf("Parse(%q) returned no statement", sql)
	}
	return stmt
}

func TestLinkEstablishesOwnership(t *testing.T) {
	stmt := mustParse(t, "SELECT a, b + 1 FROM t JOIN u ON t.id = u.id WHERE a = 1 ORDER BY b DESC LIMIT 10")

	count := 0
	ast.Walk(stmt, func(n, parent ast.Node, key string) bool {
		count++
		if parent == nil {
			if n != ast.Node(stmt) {
				t.Errorf("unparented node %T that is not the root", n)
			}
			return true
		}
		if n.Parent() != parent {
			t.Errorf("%T.Parent() = %T, want %T", n, n.Parent(), parent)
		}
		if n.ArgKey() != key {
			t.Errorf("%T.ArgKey() = %q, want %q", n, n.ArgKey(), key)
		}
		if got := ast.Arg(parent, n.ArgKey(), n.ArgIndex()); got != n {
			t.Errorf("Arg(%T, %q, %d) = %v, want the node itself", parent, n.ArgKey(), n.ArgIndex(), got)
		}
		return true
	})
	if count < 10 {
		t.Fatalf("walk visited only %d nodes", count)
	}
}

func TestFindAndFindAll(t *testing.T) {
	stmt := mustParse(t, "SELECT a, b FROM t WHERE c = 1 AND d = 2")

	cols := ast.FindAll[*ast.ColName](stmt)
	if len(cols) != 4 {
		t.Errorf("FindAll[*ColName] = %d columns, want 4", len(cols))
	}

	tbl, ok := ast.Find[*ast.TableName](stmt)
	if !ok || tbl.Name() != "t" {
		t.Errorf("Find[*TableName] = %v, %v", tbl, ok)
	}

	if _, ok := ast.Find[*ast.CaseExpr](stmt); ok {
		t.Error("Find[*CaseExpr] found a node in a query without CASE")
	}
}

func TestTransformIdentityKeepsSQL(t *testing.T) {
	sql := "SELECT a, b + 1 FROM t WHERE c IN (1, 2) ORDER BY a"
	stmt := mustParse(t, sql)
	before := format.String(stmt)

	out := ast.Transform(stmt, func(n ast.Node) ast.Node { return n }, false)
	if got := format.String(out); got != before {
		t.Errorf("identity transform changed SQL:\nbefore: %s\nafter:  %s", before, got)
	}
}

func TestTransformWithCopyLeavesInputUnchanged(t *testing.T) {
	stmt := mustParse(t, "SELECT a FROM t WHERE a = 1")
	before := format.String(stmt)

	out := ast.Transform(stmt, func(n ast.Node) ast.Node {
		if c, ok := n.(*ast.ColName); ok {
			c.Parts = []string{"renamed"}
		}
		return n
	}, true)

	if got := format.String(stmt); got != before {
		t.Errorf("copy transform mutated the input: %s", got)
	}
	rewritten := format.String(out)
	if rewritten == before {
		t.Errorf("copy transform produced unchanged SQL: %s", rewritten)
	}
}

func TestTransformRemovesNode(t *testing.T) {
	stmt := mustParse(t, "SELECT a FROM t WHERE a = 1")
	sel := stmt.(*ast.SelectStmt)
	where := sel.Where

	out := ast.Transform(stmt, func(n ast.Node) ast.Node {
		if n == ast.Node(where) {
			return nil
		}
		return n
	}, false)

	if got := format.String(out); got != "SELECT a FROM t" {
		t.Errorf("removal left %q", got)
	}
}

func TestTransformDoesNotRecurseIntoReplacements(t *testing.T) {
	stmt := mustParse(t, "SELECT a FROM t")

	// The replacement is of the same kind fn matches; a second visit
	// would loop forever replacing its own output.
	calls := 0
	ast.Transform(stmt, func(n ast.Node) ast.Node {
		if _, ok := n.(*ast.ColName); ok {
			calls++
			repl := &ast.ColName{Parts: []string{"x"}}
			return repl
		}
		return n
	}, false)
	if calls != 1 {
		t.Errorf("fn ran %d times for one column, want 1", calls)
	}
}

func TestSetMaintainsLinks(t *testing.T) {
	stmt := mustParse(t, "SELECT a FROM t WHERE a = 1")
	sel := stmt.(*ast.SelectStmt)
	old := ast.Node(sel.Where)

	lit := &ast.Literal{Type: ast.LiteralBool, Value: "TRUE"}
	if !ast.Set(sel, "Where", lit) {
		t.Fatal("Set(Where) failed")
	}
	if sel.Where != ast.Expr(lit) {
		t.Fatalf("Where is %v after Set", sel.Where)
	}
	if lit.Parent() != ast.Node(sel) || lit.ArgKey() != "Where" || lit.ArgIndex() != -1 {
		t.Errorf("Set left links %v/%q/%d", lit.Parent(), lit.ArgKey(), lit.ArgIndex())
	}
	if old.Parent() != nil {
		t.Error("displaced node kept its parent link")
	}
	if got := ast.Arg(sel, "Where", -1); got != ast.Node(lit) {
		t.Errorf("Arg(Where) = %v", got)
	}

	if ast.Set(sel, "NoSuchField", lit) {
		t.Error("Set accepted an unknown field")
	}
}

func TestAppendMaintainsLinks(t *testing.T) {
	stmt := mustParse(t, "SELECT a FROM t GROUP BY a")
	sel := stmt.(*ast.SelectStmt)

	col := &ast.ColName{Parts: []string{"b"}}
	if !ast.Append(sel, "GroupBy", col) {
		t.Fatal("Append(GroupBy) failed")
	}
	if len(sel.GroupBy) != 2 {
		t.Fatalf("GroupBy has %d entries", len(sel.GroupBy))
	}
	if col.Parent() != ast.Node(sel) || col.ArgKey() != "GroupBy" || col.ArgIndex() != 1 {
		t.Errorf("Append left links %v/%q/%d", col.Parent(), col.ArgKey(), col.ArgIndex())
	}
	if got := ast.Arg(sel, "GroupBy", 1); got != ast.Node(col) {
		t.Errorf("Arg(GroupBy, 1) = %v", got)
	}
}

func TestCopyIsIndependentAndLinked(t *testing.T) {
	stmt := mustParse(t, "SELECT a, b FROM t WHERE a = 1")
	before := format.String(stmt)

	clone := ast.Copy(stmt)
	if got := format.String(clone); got != before {
		t.Fatalf("clone formats differently: %s", got)
	}

	// Clone links are self-consistent and point into the clone.
	ast.Walk(clone, func(n, parent ast.Node, _ string) bool {
		if parent != nil && ast.Arg(parent, n.ArgKey(), n.ArgIndex()) != n {
			t.Errorf("clone link broken at %T", n)
		}
		return true
	})

	for _, c := range ast.FindAll[*ast.ColName](clone) {
		c.Parts = []string{"mutated"}
	}
	if got := format.String(stmt); got != before {
		t.Errorf("mutating the clone changed the original: %s", got)
	}
}

func TestStatementCommentsAttach(t *testing.T) {
	stmt := mustParse(t, "-- leading\nSELECT 1 -- trailing")
	got := stmt.Comments()
	if len(got) != 2 || got[0] != " leading" || got[1] != " trailing" {
		t.Errorf("statement comments = %q", got)
	}
}

func TestWalkYieldsParentAndKey(t *testing.T) {
	stmt := mustParse(t, "SELECT a FROM t WHERE b = 2")
	sel := stmt.(*ast.SelectStmt)

	var whereKey string
	var whereParent ast.Node
	ast.Walk(stmt, func(n, parent ast.Node, key string) bool {
		if n == ast.Node(sel.Where) {
			whereKey, whereParent = key, parent
		}
		return true
	})
	if whereKey != "Where" || whereParent != ast.Node(sel) {
		t.Errorf("WHERE reported as key %q under %T", whereKey, whereParent)
	}
}
