// Package lexer turns a Betsy source buffer into a sequence of Tokens.
//
// Betsy's surface syntax is whitespace-separated prefix notation, so
// the lexer has a much smaller job than a conventional one: a token is
// simply a maximal run of non-whitespace, non-control bytes, and a
// leading '#' starts a line comment. The lexer never rejects input —
// an ill-formed word is still a valid Token, and it's the classifier
// (package classify) that decides whether it means anything.
package lexer

import "unicode"

// Position identifies a single byte's place in a source file: the
// file it came from, and its 1-based line and column.
type Position struct {
	Filename string
	Line     int
	Column   int
}

// Token is a single word of source text together with the position of
// its first byte. Tokens are produced in source order and never
// overlap.
type Token struct {
	Lexeme string
	Pos    Position
}

// Lexer scans a source buffer one word at a time.
type Lexer struct {
	filename string
	input    []byte
	pos      int
	line     int
	column   int
}

// New creates a Lexer for the given filename (used only for
// diagnostics) and source bytes.
func New(filename string, source []byte) *Lexer {
	return &Lexer{
		filename: filename,
		input:    source,
		line:     1,
		column:   1,
	}
}

// Tokenize runs the lexer to completion and returns every token in the
// buffer. The lexer is total: it never returns an error.
func Tokenize(filename string, source []byte) []Token {
	l := New(filename, source)
	var tokens []Token
	for {
		tok, ok := l.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token in the buffer. ok is false once the
// buffer is exhausted.
func (l *Lexer) Next() (Token, bool) {
	l.skipInsignificant()
	if l.pos >= len(l.input) {
		return Token{}, false
	}

	start := l.pos
	startLine, startCol := l.line, l.column
	for l.pos < len(l.input) && isGraphic(l.input[l.pos]) {
		l.advance()
	}

	return Token{
		Lexeme: string(l.input[start:l.pos]),
		Pos: Position{
			Filename: l.filename,
			Line:     startLine,
			Column:   startCol,
		},
	}, true
}

// skipInsignificant consumes whitespace and line comments until the
// next word or end of input.
func (l *Lexer) skipInsignificant() {
	for l.pos < len(l.input) {
		b := l.input[l.pos]
		switch {
		case b == '#':
			l.skipLineComment()
		case isWhitespace(b):
			l.advance()
		default:
			return
		}
	}
}

// skipLineComment discards bytes from a '#' up to and including the
// terminating newline, or up to end of input if the comment is never
// terminated.
func (l *Lexer) skipLineComment() {
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.advance()
	}
	if l.pos < len(l.input) {
		l.advance() // consume the newline itself
	}
}

// advance consumes one byte, updating the line/column counters.
func (l *Lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

// isWhitespace reports whether b is whitespace: anything that is not
// a "graphical" byte.
func isWhitespace(b byte) bool {
	return !isGraphic(b)
}

// isGraphic reports whether b can appear inside a word: not
// whitespace, not a control byte, and not '#' (which always begins a
// comment and so can never be part of a word — no keyword, intrinsic,
// or identifier may contain one).
func isGraphic(b byte) bool {
	if b == '#' {
		return false
	}
	if b <= ' ' || b == 0x7f {
		return false
	}
	// Every byte above ASCII, 0x80-0x9f included, is treated as
	// graphic, since Betsy source is not required to be valid UTF-8;
	// unicode.IsGraphic decides only for the remaining ASCII bytes.
	return unicode.IsGraphic(rune(b)) || b >= 0x80
}
