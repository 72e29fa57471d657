package lexer

import (
	"strings"

	"github.com/sqltranspile/sqltranspile/token"
)

// Tokenize scans input to completion and returns the token stream with
// comments attached to tokens rather than emitted as COMMENT items.
//
// Attachment policy: a comment attaches to the next token scanned
// after it; comments still pending when the next token is a SEMICOLON
// or end of input attach to the previous token instead, so a trailing
// comment stays with the statement it follows. Comment bodies are the
// text between the delimiters ("-- x" carries " x", "/*x*/" carries
// "x").
//
// Tokenize fails with a *sqlerr.TokenError on an unterminated string,
// identifier, or comment; the tokens scanned before the fault are
// returned alongside the error.
func Tokenize(input string) ([]token.Item, error) {
	l := Get(input)
	defer Put(l)

	var items []token.Item
	var pending []string

	attachPrev := func() {
		if len(pending) > 0 && len(items) > 0 {
			last := &items[len(items)-1]
			last.Comments = append(last.Comments, pending...)
		}
		pending = nil
	}

	for {
		item := l.Next()
		switch item.Type {
		case token.COMMENT:
			pending = append(pending, CommentBody(item.Value))
		case token.EOF:
			attachPrev()
			return items, l.Err()
		case token.SEMICOLON:
			attachPrev()
			items = append(items, item)
		case token.ILLEGAL:
			if err := l.Err(); err != nil {
				return items, err
			}
			items = append(items, item)
		default:
			if len(pending) > 0 {
				item.Comments = append(item.Comments, pending...)
				pending = nil
			}
			items = append(items, item)
		}
	}
}

// CommentBody strips the comment delimiters from a raw COMMENT value.
// The parser uses it when moving comments from the token stream onto
// the statements it builds.
func CommentBody(raw string) string {
	switch {
	case strings.HasPrefix(raw, "--"):
		return raw[2:]
	case strings.HasPrefix(raw, "/*"):
		return strings.TrimSuffix(raw[2:], "*/")
	case strings.HasPrefix(raw, "#"):
		return raw[1:]
	}
	return raw
}
