package parser

import (
	"github.com/LennysLounge/Betsy/internal/ast"
	"github.com/LennysLounge/Betsy/internal/errors"
	"github.com/LennysLounge/Betsy/internal/types"
)

// signature is an intrinsic's type contract: it accepts exactly
// len(Accepts) operands of the listed types (checked left-to-right,
// where index 0 is the left operand) and produces Produces, or no
// value when Produces is types.Invalid (Print).
type signature struct {
	Accepts  []types.TypeInfo
	Produces types.TypeInfo
}

// Print is handled separately by checkPrintable since it accepts
// either of Betsy's types rather than one fixed pair.
var signatures = map[ast.IntrinsicKind]signature{
	ast.Plus:        {Accepts: []types.TypeInfo{types.Int, types.Int}, Produces: types.Int},
	ast.Minus:       {Accepts: []types.TypeInfo{types.Int, types.Int}, Produces: types.Int},
	ast.Modulo:      {Accepts: []types.TypeInfo{types.Int, types.Int}, Produces: types.Int},
	ast.GreaterThan: {Accepts: []types.TypeInfo{types.Int, types.Int}, Produces: types.Bool},
	ast.Equal:       {Accepts: []types.TypeInfo{types.Int, types.Int}, Produces: types.Bool},
	ast.Or:          {Accepts: []types.TypeInfo{types.Bool, types.Bool}, Produces: types.Bool},
}

// parseExpression consumes one complete sub-expression from the
// operation cursor.
func (p *parser) parseExpression() (ast.Expression, *errors.Error) {
	var exp ast.Expression
	if err := p.parseExpressionInto(&exp); err != nil {
		return ast.Expression{}, err
	}
	return exp, nil
}

// parseExpressionInto appends one sub-expression's operations and
// output type onto exp in place. It is written this way (rather than
// returning a fresh Expression per recursive call and splicing
// afterwards) so that arity bookkeeping — "exactly one value added to
// the output stack per recursive call" — is a direct, local check on
// the same growing slice rather than on two separately-managed ones.
func (p *parser) parseExpressionInto(exp *ast.Expression) *errors.Error {
	op, ok := p.next()
	if !ok {
		return p.unexpectedEndOfInput()
	}

	switch op.Tag {
	case ast.OpLiteral:
		exp.Operations = append(exp.Operations, op)
		exp.OutputTypes = append(exp.OutputTypes, op.LiteralType)
		return nil

	case ast.OpIdentifier:
		info, ok := p.ids.Lookup(op.Name)
		if !ok {
			return errors.New(errors.UnknownIdentifier, op.Pos, "identifier %q is not defined", op.Name)
		}
		exp.Operations = append(exp.Operations, op)
		exp.OutputTypes = append(exp.OutputTypes, info.Type)
		return nil

	case ast.OpIntrinsic:
		return p.parseIntrinsicInto(exp, op)

	default: // ast.OpKeyword
		return errors.New(errors.UnexpectedToken, op.Pos, "unexpected keyword %q in expression", op.Token)
	}
}

// parseIntrinsicInto parses op's arity_in sub-expressions, checks the
// arity and type-checks the operands against op's signature, then
// appends op itself (post-order: operands first, operator last).
func (p *parser) parseIntrinsicInto(exp *ast.Expression, op ast.Operation) *errors.Error {
	n := op.Intrinsic.ArityIn()
	operandStart := len(exp.OutputTypes)

	for i := 0; i < n; i++ {
		before := len(exp.OutputTypes)
		if err := p.parseExpressionInto(exp); err != nil {
			return err
		}
		if len(exp.OutputTypes)-before != 1 {
			return errors.New(errors.MalformedExpression, op.Pos,
				"operand of %q did not yield exactly one value", op.Token)
		}
	}

	if len(exp.OutputTypes)-operandStart != n {
		return errors.New(errors.MalformedExpression, op.Pos,
			"%q expects %d operand(s)", op.Token, n)
	}

	operandTypes := exp.OutputTypes[operandStart:]

	var result types.TypeInfo
	if op.Intrinsic == ast.Print {
		if err := checkPrintable(op, operandTypes[0]); err != nil {
			return err
		}
		result = types.Invalid
	} else {
		sig := signatures[op.Intrinsic]
		for i, want := range sig.Accepts {
			if operandTypes[i] != want {
				return errors.New(errors.TypeMismatch, op.Pos,
					"%q expects %s, got %s for operand %d", op.Token, want, operandTypes[i], i+1)
			}
		}
		result = sig.Produces
	}

	// Pop the operand types (their operations stay, post-order,
	// already appended by the recursive calls above) and push the
	// intrinsic's own result, if any.
	exp.OutputTypes = exp.OutputTypes[:operandStart]
	if result != types.Invalid {
		exp.OutputTypes = append(exp.OutputTypes, result)
	}
	exp.Operations = append(exp.Operations, op)

	return nil
}

// checkPrintable enforces Print's "any printable" signature: both of
// Betsy's two types are printable, so this only rejects an
// impossible third type should one ever be added.
func checkPrintable(op ast.Operation, t types.TypeInfo) *errors.Error {
	if t != types.Int && t != types.Bool {
		return errors.New(errors.TypeMismatch, op.Pos, "%q cannot print a value of type %s", op.Token, t)
	}
	return nil
}
