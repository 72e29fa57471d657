// Package dialect holds the process-wide registry of SQL dialect
// records consulted by the tokenizer, parser, and generator. Each
// Dialect is a plain record of configuration and override hooks, not a
// parser/generator subclass: the base pipeline always runs, and a
// Dialect only ever narrows or rewrites its output.
package dialect

import (
	"strings"
	"sync"

	"github.com/sqltranspile/sqltranspile/sqlerr"
)

// Dialect configures how the tokenizer, parser, and generator behave
// for one SQL variant. The zero value quotes identifiers with `"` and
// strings with `'`, maps no types or function names, leaves function
// names in their written case, and, since SupportsILike is false,
// rewrites ILIKE to LIKE; Default differs by uppercasing function
// names and keeping ILIKE.
type Dialect struct {
	Name    string
	Aliases []string

	// IdentifierStart/End delimit quoted identifiers, e.g. `"a"`,
	// `` `a` ``, or `[a]`.
	IdentifierStart byte
	IdentifierEnd   byte

	// QuoteStart/End delimit string literals.
	QuoteStart byte
	QuoteEnd   byte

	// NormalizeFunctions controls case applied to known function names:
	// "upper", "lower", or "" to leave as written.
	NormalizeFunctions string

	// NormalizeIdentifiers lowercases unquoted identifiers at generation
	// time.
	NormalizeIdentifiers bool

	// TypeMap rewrites a canonical (uppercase) type name to this
	// dialect's spelling, e.g. {"FLOAT": "FLOAT64"} for BigQuery.
	TypeMap map[string]string

	// StripTypeParams drops length/precision parameters for the named
	// (canonical, uppercase) type, e.g. DuckDB's bare TEXT.
	StripTypeParams map[string]bool

	// DefaultTypeParams supplies parameters for a bare type that this
	// dialect always parameterizes, e.g. DuckDB's DECIMAL -> DECIMAL(18,3).
	DefaultTypeParams map[string]string

	// FunctionNameMap rewrites a canonical (uppercase) function name to
	// this dialect's spelling, e.g. DuckDB's ARRAY_REMOVE -> LIST_FILTER.
	FunctionNameMap map[string]string

	// SupportsILike, when false, makes the generator rewrite ILIKE to
	// LIKE (preserving any NOT) since the dialect has no case-
	// insensitive LIKE operator of its own.
	SupportsILike bool

	// BoolAsInt emits TRUE/FALSE literals as 1/0 (T-SQL has no boolean
	// literal).
	BoolAsInt bool

	// TryCastIsCast rewrites TRY_CAST to CAST (Hive has no TRY_CAST).
	TryCastIsCast bool

	// RewriteDateSub rewrites DATE_SUB(a, b) to DATE_ADD(a, -1 * (b)) for
	// dialects whose DATE_ADD accepts a signed interval and has no
	// DATE_SUB of its own (Hive).
	RewriteDateSub bool
}

// IdentQuote returns the configured identifier delimiters, defaulting
// to double quotes when unset.
func (d *Dialect) IdentQuote() (byte, byte) {
	if d == nil || d.IdentifierStart == 0 {
		return '"', '"'
	}
	return d.IdentifierStart, d.IdentifierEnd
}

// MapType rewrites a canonical uppercase type name per TypeMap, or
// returns it unchanged.
func (d *Dialect) MapType(name string) string {
	if d == nil || d.TypeMap == nil {
		return name
	}
	if mapped, ok := d.TypeMap[strings.ToUpper(name)]; ok {
		return mapped
	}
	return name
}

// MapFunction rewrites a canonical uppercase function name per
// FunctionNameMap, or returns it unchanged.
func (d *Dialect) MapFunction(name string) string {
	if d == nil || d.FunctionNameMap == nil {
		return name
	}
	if mapped, ok := d.FunctionNameMap[strings.ToUpper(name)]; ok {
		return mapped
	}
	return name
}

var (
	mu       sync.RWMutex
	registry = map[string]*Dialect{}
)

// Register adds d under its own Name and every alias in d.Aliases.
// Registration is expected to happen once at process start (via this
// package's init); the registry is read-only from then on and safe for
// concurrent reads.
func Register(d *Dialect) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(d.Name)] = d
	for _, alias := range d.Aliases {
		registry[strings.ToLower(alias)] = d
	}
}

// GetOrRaise returns the dialect registered under name (case-
// insensitive). An empty name returns the built-in Default dialect.
// An unrecognized name returns an UnsupportedError.
func GetOrRaise(name string) (*Dialect, error) {
	if name == "" {
		return Default, nil
	}
	mu.RLock()
	d, ok := registry[strings.ToLower(name)]
	mu.RUnlock()
	if !ok {
		return nil, sqlerr.NewUnsupported("unknown dialect " + name)
	}
	return d, nil
}

// Names returns every registered dialect's canonical Name. Order is
// not guaranteed; callers that need a stable order should sort the
// result.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	seen := make(map[string]bool)
	var names []string
	for _, d := range registry {
		if !seen[d.Name] {
			seen[d.Name] = true
			names = append(names, d.Name)
		}
	}
	return names
}
