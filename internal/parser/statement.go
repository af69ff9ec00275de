package parser

import (
	"github.com/LennysLounge/Betsy/internal/ast"
	"github.com/LennysLounge/Betsy/internal/errors"
	"github.com/LennysLounge/Betsy/internal/types"
)

// parseProgram drives the top-level loop: repeatedly parse a
// statement until the operation stream is exhausted.
func (p *parser) parseProgram() (*ast.Program, *errors.Error) {
	var prog ast.Program
	for {
		if _, ok := p.peek(); !ok {
			return &prog, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
}

// parseStatement recognizes one statement, dispatching on the head
// operation: control-flow keywords dispatch to their own parser,
// anything else parses as a naked expression statement.
func (p *parser) parseStatement() (ast.Statement, *errors.Error) {
	op, ok := p.peek()
	if !ok {
		return ast.Statement{}, p.unexpectedEndOfInput()
	}

	if op.Tag != ast.OpKeyword {
		return p.parseExprStatement()
	}

	switch op.Keyword {
	case ast.If:
		return p.parseIfOrWhile(ast.StmtIf)
	case ast.While:
		return p.parseIfOrWhile(ast.StmtWhile)
	case ast.Var:
		return p.parseVar()
	case ast.Set:
		return p.parseSet()
	case ast.Do:
		return p.parseDo()
	case ast.End:
		p.next()
		return ast.Statement{}, errors.New(errors.UnexpectedToken, op.Pos, "%q does not match any open %q", "end", "do")
	default:
		return p.parseExprStatement()
	}
}

// parseExprStatement parses a naked expression as a statement; its
// output values, if any, are discarded.
func (p *parser) parseExprStatement() (ast.Statement, *errors.Error) {
	exp, err := p.parseExpression()
	if err != nil {
		return ast.Statement{}, err
	}
	return ast.Statement{Tag: ast.StmtExpr, Expr: exp}, nil
}

// parseIfOrWhile implements both If and While: they differ only in
// the resulting Statement tag.
func (p *parser) parseIfOrWhile(tag ast.StatementTag) (ast.Statement, *errors.Error) {
	kwOp, _ := p.next() // the `if` or `while` itself

	cond, err := p.parseExpression()
	if err != nil {
		return ast.Statement{}, err
	}
	if len(cond.OutputTypes) != 1 || cond.OutputTypes[0] != types.Bool {
		return ast.Statement{}, errors.New(errors.TypeMismatch, kwOp.Pos, "%q condition must be a single bool value", kwOp.Token)
	}

	doOp, ok := p.next()
	if !ok {
		return ast.Statement{}, p.unexpectedEndOfInput()
	}
	if doOp.Tag != ast.OpKeyword || doOp.Keyword != ast.Do {
		return ast.Statement{}, errors.New(errors.UnexpectedToken, doOp.Pos, "expected %q after %q condition, got %q", "do", kwOp.Token, doOp.Token)
	}

	// The `do` opens the action body, a Block that runs to the matching
	// `end`; end of input also closes it, so `if c do print 1` is whole.
	mark := p.ids.Push()
	action := ast.Statement{Tag: ast.StmtBlock}
	for op, ok := p.peek(); ok; op, ok = p.peek() {
		if op.Tag == ast.OpKeyword && op.Keyword == ast.End {
			p.next()
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			p.ids.Pop(mark)
			return ast.Statement{}, err
		}
		action.Statements = append(action.Statements, stmt)
	}
	p.ids.Pop(mark)

	return ast.Statement{Tag: tag, Condition: cond, Action: &action}, nil
}

// parseVar implements `var NAME TYPE expression`. Registration
// happens before the initializer is parsed, intentionally and
// testably — self-reference is not meaningful in practice, but the
// registration order is still observable.
func (p *parser) parseVar() (ast.Statement, *errors.Error) {
	varOp, _ := p.next() // `var`

	nameOp, ok := p.next()
	if !ok {
		return ast.Statement{}, p.unexpectedEndOfInput()
	}
	if nameOp.Tag != ast.OpIdentifier {
		return ast.Statement{}, errors.New(errors.UnexpectedToken, nameOp.Pos, "expected an identifier after %q, got %q", varOp.Token, nameOp.Token)
	}

	typeOp, ok := p.next()
	if !ok {
		return ast.Statement{}, p.unexpectedEndOfInput()
	}
	declaredType, ok := types.ByName(typeOp.Token)
	if !ok {
		return ast.Statement{}, errors.New(errors.UnexpectedToken, typeOp.Pos, "%q is not a valid type name", typeOp.Token)
	}

	if prev, redefined := p.ids.Lookup(nameOp.Name); redefined {
		return ast.Statement{}, errors.New(errors.Redefinition, nameOp.Pos, "variable %q is already defined", nameOp.Name).
			WithNote(prev.Pos, "first defined here")
	}
	p.ids.Declare(nameOp.Name, identInfo{Type: declaredType, Pos: nameOp.Pos})

	init, err := p.parseExpression()
	if err != nil {
		return ast.Statement{}, err
	}
	if len(init.OutputTypes) != 1 || init.OutputTypes[0] != declaredType {
		return ast.Statement{}, errors.New(errors.TypeMismatch, varOp.Pos, "initializer for %q must be a single %s value", nameOp.Name, declaredType)
	}

	return ast.Statement{Tag: ast.StmtVar, VarName: nameOp, DeclaredType: declaredType, Init: init}, nil
}

// parseSet implements `set NAME expression`.
func (p *parser) parseSet() (ast.Statement, *errors.Error) {
	setOp, _ := p.next() // `set`

	nameOp, ok := p.next()
	if !ok {
		return ast.Statement{}, p.unexpectedEndOfInput()
	}
	if nameOp.Tag != ast.OpIdentifier {
		return ast.Statement{}, errors.New(errors.UnexpectedToken, nameOp.Pos, "expected an identifier after %q, got %q", setOp.Token, nameOp.Token)
	}

	info, ok := p.ids.Lookup(nameOp.Name)
	if !ok {
		return ast.Statement{}, errors.New(errors.UnknownIdentifier, nameOp.Pos, "identifier %q is not defined", nameOp.Name)
	}

	value, err := p.parseExpression()
	if err != nil {
		return ast.Statement{}, err
	}
	if len(value.OutputTypes) != 1 || value.OutputTypes[0] != info.Type {
		return ast.Statement{}, errors.New(errors.TypeMismatch, setOp.Pos, "assigned value for %q must be a single %s value", nameOp.Name, info.Type)
	}

	return ast.Statement{Tag: ast.StmtSet, SetName: nameOp, Value: value}, nil
}

// parseDo implements `do statement* end`: a fresh scope frame is
// pushed on entry and popped on the matching `end`, or the parse
// fails with UnterminatedBlock if input runs out first.
func (p *parser) parseDo() (ast.Statement, *errors.Error) {
	doOp, _ := p.next() // `do`

	mark := p.ids.Push()
	var block ast.Statement
	block.Tag = ast.StmtBlock

	for {
		op, ok := p.peek()
		if !ok {
			p.ids.Pop(mark)
			return ast.Statement{}, errors.New(errors.UnterminatedBlock, p.last, "unexpected end of input inside block").
				WithNote(doOp.Pos, "block opened here")
		}
		if op.Tag == ast.OpKeyword && op.Keyword == ast.End {
			p.next()
			p.ids.Pop(mark)
			return block, nil
		}

		stmt, err := p.parseStatement()
		if err != nil {
			p.ids.Pop(mark)
			return ast.Statement{}, err
		}
		block.Statements = append(block.Statements, stmt)
	}
}
