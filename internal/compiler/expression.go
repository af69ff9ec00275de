package compiler

import (
	"fmt"

	"github.com/LennysLounge/Betsy/internal/ast"
	"github.com/LennysLounge/Betsy/internal/errors"
	"github.com/LennysLounge/Betsy/internal/types"
)

// compileExpression emits every Operation in exp in order, resetting
// depth to 0 first: each top-level expression gets its own value
// stack, exactly as the simulator resets its own stack slice in
// evalExpression.
func (c *Compiler) compileExpression(exp ast.Expression) *errors.Error {
	c.depth = 0
	for _, op := range exp.Operations {
		if err := c.compileOperation(op); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) compileOperation(op ast.Operation) *errors.Error {
	switch op.Tag {
	case ast.OpLiteral:
		c.pushValue(fmt.Sprintf("%d", op.LiteralValue), op.LiteralType)
		return nil

	case ast.OpIdentifier:
		info, ok := c.ids.Lookup(op.Name)
		if !ok {
			return errors.New(errors.SimulationError, op.Pos, "identifier %q is not defined", op.Name)
		}
		c.pushValue(fmt.Sprintf("(uint64_t)%s", op.Name), info.typ)
		return nil

	case ast.OpIntrinsic:
		return c.compileIntrinsic(op)

	default:
		return errors.New(errors.SimulationError, op.Pos, "unreachable operation in compiler")
	}
}

// pushValue emits the assignment that stores rhs into the slot at the
// current depth, declaring the stack_NNN local the first time this
// depth is used, and then increments depth.
func (c *Compiler) pushValue(rhs string, typ types.TypeInfo) {
	idx := c.depth
	if idx == len(c.types) {
		c.writelnf("uint64_t stack_%03d = %s;", idx, rhs)
		c.types = append(c.types, typ)
	} else {
		c.writelnf("stack_%03d = %s;", idx, rhs)
		c.types[idx] = typ
	}
	c.depth++
}

// compileIntrinsic emits the C statement(s) for one Intrinsic
// operation, popping its operands right-then-left to match the
// simulator's own evaluation order.
func (c *Compiler) compileIntrinsic(op ast.Operation) *errors.Error {
	if op.Intrinsic == ast.Print {
		c.depth--
		k := c.depth
		c.writelnf("printf(\"%%d\\n\", %s);", castFromSlot(k, c.types[k]))
		return nil
	}

	d := c.depth
	l, r := d-2, d-1
	if l < 0 {
		return errors.New(errors.SimulationError, op.Pos, "value stack underflow compiling %q", op.Token)
	}

	left := fmt.Sprintf("(int64_t)stack_%03d", l)
	right := fmt.Sprintf("(int64_t)stack_%03d", r)

	var rhs string
	switch op.Intrinsic {
	case ast.Plus:
		rhs = fmt.Sprintf("(uint64_t)(%s + %s)", left, right)
	case ast.Minus:
		rhs = fmt.Sprintf("(uint64_t)(%s - %s)", left, right)
	case ast.Modulo:
		rhs = fmt.Sprintf("(uint64_t)(%s %% %s)", left, right)
	case ast.GreaterThan:
		rhs = fmt.Sprintf("(uint64_t)((%s > %s) ? 1 : 0)", left, right)
	case ast.Equal:
		rhs = fmt.Sprintf("(uint64_t)((%s == %s) ? 1 : 0)", left, right)
	case ast.Or:
		rhs = fmt.Sprintf("(uint64_t)((stack_%03d != 0) || (stack_%03d != 0))", l, r)
	default:
		return errors.New(errors.SimulationError, op.Pos, "unreachable intrinsic %v", op.Intrinsic)
	}

	c.writelnf("stack_%03d = %s;", l, rhs)
	c.types[l] = op.Intrinsic.ResultType()
	c.depth--
	return nil
}
