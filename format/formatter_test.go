package format

import (
	"testing"

	"github.com/sqltranspile/sqltranspile/parser"
)

func formatWith(t *testing.T, sql string, opts Options) string {
	t.Helper()
	p := parser.New(sql)
	stmt, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	f := New(opts)
	f.Format(stmt)
	return f.String()
}

func TestIdentifyModes(t *testing.T) {
	tests := []struct {
		name     string
		identify Identify
		input    string
		want     string
	}{
		{
			name:     "as written leaves plain names bare",
			identify: IdentifyAsWritten,
			input:    "SELECT a FROM t",
			want:     "SELECT a FROM t",
		},
		{
			name:     "always quotes every identifier",
			identify: IdentifyAlways,
			input:    "SELECT a FROM t",
			want:     `SELECT "a" FROM "t"`,
		},
		{
			name:     "safe quotes only case-significant names",
			identify: IdentifySafe,
			input:    "SELECT a, MixedCase FROM t",
			want:     `SELECT a, "MixedCase" FROM t`,
		},
		{
			name:     "safe leaves lowercase names bare",
			identify: IdentifySafe,
			input:    "SELECT a FROM t",
			want:     "SELECT a FROM t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions
			opts.Identify = tt.identify
			got := formatWith(t, tt.input, opts)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
