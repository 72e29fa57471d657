// Package sqlerr defines the error taxonomy raised by the tokenizer,
// parser, and generator, each carrying a positional diagnostic with a
// highlighted source snippet.
package sqlerr

import (
	"fmt"
	"strings"

	"github.com/sqltranspile/sqltranspile/token"
)

// Level controls how the parser reacts to a recoverable error.
type Level int

const (
	// Immediate aborts parsing and returns the first error encountered.
	Immediate Level = iota
	// Raise accumulates errors and returns them all once parsing finishes
	// (or fails to make further progress).
	Raise
	// Warn accumulates errors but never fails the parse; callers inspect
	// Parser.Errors() themselves.
	Warn
	// Ignore suppresses errors entirely and returns whatever partial tree
	// was built.
	Ignore
)

func (l Level) String() string {
	switch l {
	case Immediate:
		return "immediate"
	case Raise:
		return "raise"
	case Warn:
		return "warn"
	case Ignore:
		return "ignore"
	default:
		return "unknown"
	}
}

const contextRadius = 50

// Diagnostic is a single positioned error message, with the surrounding
// source split into the text before the offending span, the span itself
// (ANSI-underlined), and the text after it.
type Diagnostic struct {
	Description  string
	Line         int
	Col          int
	StartContext string
	Highlight    string
	EndContext   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s. Line %d, Col: %d.\n  %s%s%s",
		d.Description, d.Line, d.Col, d.StartContext, d.Highlight, d.EndContext)
}

// NewDiagnostic builds a Diagnostic from a source string and the byte
// span [start, end) that triggered description. end may equal start for
// a zero-width span (e.g. unexpected EOF).
func NewDiagnostic(sql string, pos token.Pos, start, end int, description string) Diagnostic {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	if end > len(sql) {
		end = len(sql)
	}
	if start > len(sql) {
		start = len(sql)
	}

	ctxStart := start - contextRadius
	if ctxStart < 0 {
		ctxStart = 0
	}
	ctxEnd := end + contextRadius
	if ctxEnd > len(sql) {
		ctxEnd = len(sql)
	}

	return Diagnostic{
		Description:  description,
		Line:         pos.Line,
		Col:          pos.Column,
		StartContext: sql[ctxStart:start],
		Highlight:    "\x1b[4m" + sql[start:end] + "\x1b[0m",
		EndContext:   sql[end:ctxEnd],
	}
}

// TokenError is raised by the tokenizer on an unterminated string
// literal, quoted identifier, block comment, or dollar-quoted string;
// no other input makes the tokenizer raise it. It is always immediate
// and unrecoverable.
type TokenError struct {
	Diagnostic
}

func (e *TokenError) Error() string { return "token error: " + e.Diagnostic.String() }

// ParseError is raised by the parser. At Immediate it wraps exactly one
// Diagnostic; at Raise it may wrap several, accumulated across an
// entire parse.
type ParseError struct {
	Diagnostics []Diagnostic
}

func (e *ParseError) Error() string {
	if len(e.Diagnostics) == 0 {
		return "parse error"
	}
	if len(e.Diagnostics) == 1 {
		return "parse error: " + e.Diagnostics[0].String()
	}
	parts := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		parts[i] = d.String()
	}
	return fmt.Sprintf("parse error (%d issues):\n%s", len(e.Diagnostics), strings.Join(parts, "\n"))
}

// GenerateError is raised by the generator, e.g. when asked to emit a
// node kind that has no dialect mapping. It unwinds immediately.
type GenerateError struct {
	Diagnostic
}

func (e *GenerateError) Error() string { return "generate error: " + e.Diagnostic.String() }

// UnsupportedError is raised when a dialect is asked to do something it
// has no representation for (e.g. an unknown dialect alias).
type UnsupportedError struct {
	Diagnostic
}

func (e *UnsupportedError) Error() string { return "unsupported: " + e.Diagnostic.String() }

// NewUnsupported builds an UnsupportedError with no source context,
// used for dialect-lookup failures that happen before any SQL is seen.
func NewUnsupported(description string) *UnsupportedError {
	return &UnsupportedError{Diagnostic{Description: description}}
}
