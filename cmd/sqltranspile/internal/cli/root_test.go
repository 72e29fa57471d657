package cli

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestDialectsCommandListsRegisteredNames(t *testing.T) {
	out, err := run(t, "dialects")
	if err != nil {
		t.Fatalf("dialects: %v", err)
	}
	for _, want := range []string{"postgres", "mysql", "bigquery"} {
		if !strings.Contains(out, want) {
			t.Errorf("dialects output missing %q, got: %s", want, out)
		}
	}
}

func TestParseCommandRoundTrips(t *testing.T) {
	out, err := run(t, "parse", "SELECT a FROM t WHERE a = 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.Contains(out, "1 statement(s)") {
		t.Errorf("expected one statement, got: %s", out)
	}
	if !strings.Contains(out, "SELECT") {
		t.Errorf("expected re-emitted SQL, got: %s", out)
	}
}

func TestTranspileCommandRewritesDialect(t *testing.T) {
	out, err := run(t, "transpile", "--read=postgres", "--write=mysql",
		"SELECT a FROM t WHERE a ILIKE 'x'")
	if err != nil {
		t.Fatalf("transpile: %v", err)
	}
	if strings.Contains(out, "ILIKE") {
		t.Errorf("expected ILIKE rewritten to LIKE for mysql, got: %s", out)
	}
	if !strings.Contains(out, "LIKE") {
		t.Errorf("expected LIKE in output, got: %s", out)
	}
}

func TestTranspileCommandUnknownDialectFails(t *testing.T) {
	_, err := run(t, "transpile", "--write=not-a-real-dialect", "SELECT 1")
	if err == nil {
		t.Fatal("expected an error for an unregistered dialect")
	}
}
