// Package parser implements Betsy's expression parser, statement
// parser and interleaved type checker.
//
// The two parsers are layered: the statement parser (statement.go)
// drives the top-level loop and recognizes keyword-introduced control
// constructs, delegating to the expression parser (expression.go)
// whenever the grammar calls for a sub-expression. Both share one
// operation cursor and one identifier scope.Table threaded by
// reference.
package parser

import (
	"github.com/LennysLounge/Betsy/internal/ast"
	"github.com/LennysLounge/Betsy/internal/classify"
	"github.com/LennysLounge/Betsy/internal/errors"
	"github.com/LennysLounge/Betsy/internal/lexer"
	"github.com/LennysLounge/Betsy/internal/scope"
	"github.com/LennysLounge/Betsy/internal/types"
)

// identInfo is the identifier-table payload: the declared type plus
// the location of the name in the `var` that introduced it, so later diagnostics
// (Redefinition's NOTE) can point back at the original definition.
type identInfo struct {
	Type types.TypeInfo
	Pos  lexer.Position
}

// parser threads an operation cursor and an identifier table through
// the mutually recursive expression/statement parsing functions.
type parser struct {
	ops  []ast.Operation
	pos  int
	ids  scope.Table[identInfo]
	last lexer.Position // position of the most recently consumed operation, for end-of-input diagnostics
}

// Parse tokenizes, classifies and parses filename's source in one
// pass, returning the complete Program or the single fatal diagnostic
// that stopped it: the parser is a total function on tokens.
func Parse(filename string, source []byte) (*ast.Program, *errors.Error) {
	tokens := lexer.Tokenize(filename, source)
	ops := make([]ast.Operation, len(tokens))
	for i, tok := range tokens {
		ops[i] = classify.Operation(tok)
	}

	p := &parser{ops: ops}
	if len(ops) > 0 {
		p.last = ops[0].Pos
	} else {
		p.last = lexer.Position{Filename: filename, Line: 1, Column: 1}
	}

	return p.parseProgram()
}

// peek returns the next operation without consuming it.
func (p *parser) peek() (ast.Operation, bool) {
	if p.pos >= len(p.ops) {
		return ast.Operation{}, false
	}
	return p.ops[p.pos], true
}

// next consumes and returns the next operation.
func (p *parser) next() (ast.Operation, bool) {
	op, ok := p.peek()
	if !ok {
		return ast.Operation{}, false
	}
	p.pos++
	p.last = op.Pos
	return op, true
}

// unexpectedEndOfInput reports UnexpectedEndOfInput at
// the previous token's location, the contract expression.go and
// statement.go both rely on whenever next()/peek() comes up empty.
func (p *parser) unexpectedEndOfInput() *errors.Error {
	return errors.New(errors.UnexpectedEndOfInput, p.last, "unexpected end of input")
}
