// Package lexer provides a lexical scanner for SQL.
package lexer

import (
	"sync"

	"github.com/sqltranspile/sqltranspile/sqlerr"
	"github.com/sqltranspile/sqltranspile/token"
)

// Lexer tokenizes SQL input.
type Lexer struct {
	input   string
	start   int        // start position of current token
	pos     int        // current position in input
	line    int        // current line number (1-indexed)
	linePos int        // position of current line start
	item    token.Item // most recently scanned item
	peeked  bool       // whether item contains a peeked token
	err     *sqlerr.TokenError
}

var lexerPool = sync.Pool{
	New: func() any { return &Lexer{} },
}

// New creates a new Lexer for the input string.
func New(input string) *Lexer {
	return &Lexer{
		input:   input,
		line:    1,
		linePos: 0,
	}
}

// Get returns a Lexer from the pool, initialized with the input.
func Get(input string) *Lexer {
	l := lexerPool.Get().(*Lexer)
	l.Reset(input)
	return l
}

// Put returns the Lexer to the pool.
func Put(l *Lexer) {
	lexerPool.Put(l)
}

// Reset resets the lexer to scan new input.
func (l *Lexer) Reset(input string) {
	l.input = input
	l.start = 0
	l.pos = 0
	l.line = 1
	l.linePos = 0
	l.item = token.Item{}
	l.peeked = false
	l.err = nil
}

// Next returns the next token.
func (l *Lexer) Next() token.Item {
	if l.peeked {
		l.peeked = false
		return l.item
	}
	l.item = l.scan()
	return l.item
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() token.Item {
	if !l.peeked {
		l.item = l.scan()
		l.peeked = true
	}
	return l.item
}

// Input returns the full source text being scanned, for callers that
// need to build positional diagnostics (e.g. sqlerr.NewDiagnostic).
func (l *Lexer) Input() string {
	return l.input
}

// Err returns the *sqlerr.TokenError recorded by the most recent scan,
// or nil. Tokenizer errors are immediate and unrecoverable; the
// partially scanned text remains inspectable as the ILLEGAL item's
// Value.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

// makeUnterminated records a TokenError for a construct whose closing
// delimiter was never found, and returns the partial text as an
// ILLEGAL item.
func (l *Lexer) makeUnterminated(what string) token.Item {
	item := l.makeItem(token.ILLEGAL, l.input[l.start:l.pos])
	if l.err == nil {
		l.err = &sqlerr.TokenError{
			Diagnostic: sqlerr.NewDiagnostic(l.input, item.Pos, l.start, l.pos, "unterminated "+what),
		}
	}
	return item
}

// scan performs the actual lexical analysis: whitespace, then the
// symbol trie (operators, comment openers, string and identifier
// delimiters), then bare identifiers/keywords and numbers.
func (l *Lexer) scan() token.Item {
	l.skipWhitespace()
	l.start = l.pos

	if l.pos >= len(l.input) {
		return l.makeItem(token.EOF, "")
	}

	if item, ok := l.scanSymbol(); ok {
		return item
	}

	ch := l.input[l.pos]
	if isIdentStart(ch) {
		return l.scanIdentifier()
	}
	if isDigit(ch) {
		return l.scanNumber()
	}

	l.pos++
	return l.makeItem(token.ILLEGAL, string(ch))
}

func (l *Lexer) makeItem(typ token.Token, val string) token.Item {
	return token.Item{
		Type:  typ,
		Value: val,
		Pos: token.Pos{
			Offset: l.start,
			Line:   l.line,
			Column: l.start - l.linePos + 1,
		},
	}
}

// makeQuotedItem is makeItem for an IDENT scanned from a delimited form
// ("...", `...`, [...]), marking it Quoted.
func (l *Lexer) makeQuotedItem(val string) token.Item {
	item := l.makeItem(token.IDENT, val)
	item.Quoted = true
	return item
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == ' ' || ch == '\t' || ch == '\r' {
			l.pos++
		} else if ch == '\n' {
			l.pos++
			l.line++
			l.linePos = l.pos
		} else {
			break
		}
	}
}

func (l *Lexer) scanIdentifier() token.Item {
	for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
		l.pos++
	}
	val := l.input[l.start:l.pos]
	tok := token.LookupIdent(val)
	return l.makeItem(tok, val)
}

func (l *Lexer) scanNumber() token.Item {
	tok := token.INT

	// Handle hex numbers: 0x...
	if l.pos+1 < len(l.input) && l.input[l.pos] == '0' &&
		(l.input[l.pos+1] == 'x' || l.input[l.pos+1] == 'X') {
		l.pos += 2
		for l.pos < len(l.input) && isHexDigit(l.input[l.pos]) {
			l.pos++
		}
		return l.makeItem(token.INT, l.input[l.start:l.pos])
	}

	// Integer part
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}

	// Decimal part
	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		// Check it's not a range operator (..)
		if l.pos+1 < len(l.input) && l.input[l.pos+1] == '.' {
			return l.makeItem(tok, l.input[l.start:l.pos])
		}
		tok = token.FLOAT
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}

	// Exponent
	if l.pos < len(l.input) && (l.input[l.pos] == 'e' || l.input[l.pos] == 'E') {
		tok = token.FLOAT
		l.pos++
		if l.pos < len(l.input) && (l.input[l.pos] == '+' || l.input[l.pos] == '-') {
			l.pos++
		}
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}

	return l.makeItem(tok, l.input[l.start:l.pos])
}

func (l *Lexer) scanString(quote byte) token.Item {
	var buf []byte
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == quote {
			// Check for escaped quote ('')
			if l.pos+1 < len(l.input) && l.input[l.pos+1] == quote {
				buf = append(buf, quote)
				l.pos += 2
				continue
			}
			// End of string
			l.pos++
			return l.makeItem(token.STRING, string(buf))
		}
		if ch == '\\' && l.pos+1 < len(l.input) {
			// Handle escape sequences - interpret them
			next := l.input[l.pos+1]
			switch next {
			case 'n':
				buf = append(buf, '\n')
			case 't':
				buf = append(buf, '\t')
			case 'r':
				buf = append(buf, '\r')
			case '\\':
				buf = append(buf, '\\')
			case '\'':
				buf = append(buf, '\'')
			case '"':
				buf = append(buf, '"')
			default:
				// Unknown escape - keep the backslash and char
				buf = append(buf, '\\', next)
			}
			l.pos += 2
			continue
		}
		if ch == '\n' {
			l.line++
			l.linePos = l.pos + 1
		}
		buf = append(buf, ch)
		l.pos++
	}
	return l.makeUnterminated("string literal")
}

func (l *Lexer) scanQuotedIdentifier() token.Item {
	var buf []byte
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '"' {
			// Check for escaped quote
			if l.pos+1 < len(l.input) && l.input[l.pos+1] == '"' {
				buf = append(buf, '"')
				l.pos += 2
				continue
			}
			l.pos++
			// Extract the identifier without quotes, handling escapes
			if buf == nil {
				return l.makeQuotedItem(l.input[l.start+1 : l.pos-1])
			}
			return l.makeQuotedItem(string(buf))
		}
		if ch == '\n' {
			l.line++
			l.linePos = l.pos + 1
		}
		buf = append(buf, ch)
		l.pos++
	}
	return l.makeUnterminated("quoted identifier")
}

func (l *Lexer) scanBacktickIdentifier() token.Item {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '`' {
			// Check for escaped backtick
			if l.pos+1 < len(l.input) && l.input[l.pos+1] == '`' {
				l.pos += 2
				continue
			}
			l.pos++
			// Extract the identifier without backticks
			val := l.input[l.start+1 : l.pos-1]
			return l.makeQuotedItem(val)
		}
		if ch == '\n' {
			l.line++
			l.linePos = l.pos + 1
		}
		l.pos++
	}
	return l.makeUnterminated("quoted identifier")
}

func (l *Lexer) scanBracketIdentifier() token.Item {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == ']' {
			// Check for escaped bracket ]]
			if l.pos+1 < len(l.input) && l.input[l.pos+1] == ']' {
				l.pos += 2
				continue
			}
			l.pos++
			// Extract the identifier without brackets
			val := l.input[l.start+1 : l.pos-1]
			return l.makeQuotedItem(val)
		}
		if ch == '\n' {
			l.line++
			l.linePos = l.pos + 1
		}
		l.pos++
	}
	return l.makeUnterminated("quoted identifier")
}

func (l *Lexer) scanLineComment() token.Item {
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.pos++
	}
	return l.makeItem(token.COMMENT, l.input[l.start:l.pos])
}

func (l *Lexer) scanBlockComment() token.Item {
	for l.pos < len(l.input) {
		if l.input[l.pos] == '*' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '/' {
			l.pos += 2
			return l.makeItem(token.COMMENT, l.input[l.start:l.pos])
		}
		if l.input[l.pos] == '\n' {
			l.line++
			l.linePos = l.pos + 1
		}
		l.pos++
	}
	return l.makeUnterminated("block comment")
}

// scanDot disambiguates a leading decimal point (".5") from the DOT
// operator. The trie has consumed the dot.
func (l *Lexer) scanDot() token.Item {
	if l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos = l.start
		return l.scanNumber()
	}
	return l.makeItem(token.DOT, ".")
}

// scanBracketOrSubscript decides what an opening bracket introduces: a
// name directly after [ makes a SQL Server bracket-quoted identifier
// (# and @ cover temp tables and variables), while "[ expr ]" keeps
// LBRACKET for array subscripts.
func (l *Lexer) scanBracketOrSubscript() token.Item {
	if l.pos < len(l.input) {
		next := l.input[l.pos]
		if isIdentStart(next) || next == '#' || next == '@' {
			return l.scanBracketIdentifier()
		}
	}
	return l.makeItem(token.LBRACKET, "[")
}

// scanHash handles what follows a bare # (#> and #>> are plain trie
// symbols): SQL Server #temp and ##global_temp identifiers, else a
// MySQL-style line comment.
func (l *Lexer) scanHash() token.Item {
	if l.pos < len(l.input) {
		switch {
		case l.input[l.pos] == '#':
			l.pos++
			if l.pos < len(l.input) && isIdentStart(l.input[l.pos]) {
				for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
					l.pos++
				}
				return l.makeItem(token.IDENT, l.input[l.start:l.pos])
			}
			l.pos-- // bare ##: treat as comment
		case isIdentStart(l.input[l.pos]):
			for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
				l.pos++
			}
			return l.makeItem(token.IDENT, l.input[l.start:l.pos])
		}
	}
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.pos++
	}
	return l.makeItem(token.COMMENT, l.input[l.start:l.pos])
}

// scanAt handles a bare @ (@@ is a plain trie symbol): a MySQL user
// variable when a name follows, AT otherwise.
func (l *Lexer) scanAt() token.Item {
	if l.pos < len(l.input) && isIdentStart(l.input[l.pos]) {
		for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
			l.pos++
		}
		return l.makeItem(token.PARAM, l.input[l.start:l.pos])
	}
	return l.makeItem(token.AT, "@")
}

// scanColon handles a bare : (:: is a plain trie symbol): a named
// parameter when a name follows, COLON otherwise.
func (l *Lexer) scanColon() token.Item {
	if l.pos < len(l.input) && isIdentStart(l.input[l.pos]) {
		for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
			l.pos++
		}
		return l.makeItem(token.PARAM, l.input[l.start:l.pos])
	}
	return l.makeItem(token.COLON, ":")
}

func (l *Lexer) scanDollar() token.Item {
	// Check for positional parameter $1, $2, etc.
	if l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
		return l.makeItem(token.PARAM, l.input[l.start:l.pos])
	}
	// Check for dollar-quoted string $$...$$ or $tag$...$tag$
	if l.pos < len(l.input) {
		tag := ""
		if l.input[l.pos] == '$' {
			// $$...$$ form
			l.pos++ // skip second $
		} else if isIdentStart(l.input[l.pos]) {
			// $tag$...$tag$ form - tag cannot contain $
			tagStart := l.pos
			for l.pos < len(l.input) && isTagChar(l.input[l.pos]) {
				l.pos++
			}
			if l.pos < len(l.input) && l.input[l.pos] == '$' {
				tag = l.input[tagStart:l.pos]
				l.pos++ // skip closing $ of opening delimiter
			} else {
				// Not a dollar-quoted string
				l.pos = l.start + 1
				return l.makeItem(token.ILLEGAL, "$")
			}
		} else {
			return l.makeItem(token.ILLEGAL, "$")
		}
		return l.scanDollarQuotedStringContent(tag)
	}
	return l.makeItem(token.ILLEGAL, "$")
}

func (l *Lexer) scanDollarQuotedStringContent(tag string) token.Item {
	contentStart := l.pos
	endDelim := "$" + tag + "$"

	for l.pos < len(l.input) {
		if l.input[l.pos] == '$' {
			// Check for closing delimiter
			if l.pos+len(endDelim) <= len(l.input) &&
				l.input[l.pos:l.pos+len(endDelim)] == endDelim {
				content := l.input[contentStart:l.pos]
				l.pos += len(endDelim)
				return l.makeItem(token.STRING, content)
			}
		}
		if l.input[l.pos] == '\n' {
			l.line++
			l.linePos = l.pos + 1
		}
		l.pos++
	}
	return l.makeUnterminated("dollar-quoted string")
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '$'
}

func isTagChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
