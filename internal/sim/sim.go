// Package sim implements Betsy's tree-walking simulator: it walks a
// parsed Program, evaluating each Statement against a per-expression
// value stack and the simulator's own identifier table.
//
// The value stack and identifier table are deliberately separate from
// the parser's: the parser tracks types only, while the simulator
// tracks actual 64-bit slot contents, splitting compile-time type
// checking from runtime value evaluation.
package sim

import (
	"fmt"
	"io"

	"github.com/LennysLounge/Betsy/internal/ast"
	"github.com/LennysLounge/Betsy/internal/errors"
	"github.com/LennysLounge/Betsy/internal/lexer"
	"github.com/LennysLounge/Betsy/internal/scope"
	"github.com/LennysLounge/Betsy/internal/types"
)

// slot is one value-stack entry: a 64-bit two's-complement payload
// tagged with its TypeInfo.
type slot struct {
	bits uint64
	typ  types.TypeInfo
}

// varInfo is the simulator identifier table's payload: the variable's
// current value and declared type.
type varInfo struct {
	value slot
}

// Simulator executes a Program, writing Print output to out.
type Simulator struct {
	out   io.Writer
	stack []slot
	ids   scope.Table[varInfo]
}

// New creates a Simulator that writes Print output to out.
func New(out io.Writer) *Simulator {
	return &Simulator{out: out}
}

// Run executes prog statement by statement, stopping at the first
// fatal diagnostic: any error is fatal, with no recovery and no
// batching of multiple errors.
func (s *Simulator) Run(prog *ast.Program) *errors.Error {
	for _, stmt := range prog.Statements {
		if err := s.execStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulator) execStatement(stmt ast.Statement) *errors.Error {
	switch stmt.Tag {
	case ast.StmtExpr:
		_, err := s.evalExpression(stmt.Expr)
		return err

	case ast.StmtIf:
		cond, err := s.evalCondition(stmt.Condition)
		if err != nil {
			return err
		}
		if cond {
			mark := s.ids.Push()
			err := s.execStatement(*stmt.Action)
			s.ids.Pop(mark)
			if err != nil {
				return err
			}
		}
		return nil

	case ast.StmtWhile:
		for {
			cond, err := s.evalCondition(stmt.Condition)
			if err != nil {
				return err
			}
			if !cond {
				return nil
			}
			mark := s.ids.Push()
			err = s.execStatement(*stmt.Action)
			s.ids.Pop(mark)
			if err != nil {
				return err
			}
		}

	case ast.StmtVar:
		values, err := s.evalExpression(stmt.Init)
		if err != nil {
			return err
		}
		if len(values) != 1 {
			return errors.New(errors.SimulationError, stmt.VarName.Pos, "initializer for %q did not yield exactly one value", stmt.VarName.Name)
		}
		if _, redefined := s.ids.Lookup(stmt.VarName.Name); redefined {
			return errors.New(errors.SimulationError, stmt.VarName.Pos, "variable %q is already defined", stmt.VarName.Name)
		}
		s.ids.Declare(stmt.VarName.Name, varInfo{value: values[0]})
		return nil

	case ast.StmtSet:
		values, err := s.evalExpression(stmt.Value)
		if err != nil {
			return err
		}
		if len(values) != 1 {
			return errors.New(errors.SimulationError, stmt.SetName.Pos, "assigned value for %q did not yield exactly one value", stmt.SetName.Name)
		}
		if !s.ids.Set(stmt.SetName.Name, varInfo{value: values[0]}) {
			return errors.New(errors.SimulationError, stmt.SetName.Pos, "identifier %q is not defined", stmt.SetName.Name)
		}
		return nil

	case ast.StmtBlock:
		mark := s.ids.Push()
		for _, child := range stmt.Statements {
			if err := s.execStatement(child); err != nil {
				s.ids.Pop(mark)
				return err
			}
		}
		s.ids.Pop(mark)
		return nil

	default:
		return errors.New(errors.SimulationError, lexer.Position{}, "unreachable statement tag %d", stmt.Tag)
	}
}

// evalCondition evaluates exp and requires it to yield exactly one
// Bool value, the shared contract of If and While conditions.
func (s *Simulator) evalCondition(exp ast.Expression) (bool, *errors.Error) {
	values, err := s.evalExpression(exp)
	if err != nil {
		return false, err
	}
	if len(values) != 1 || values[0].typ != types.Bool {
		pos := lexer.Position{}
		if len(exp.Operations) > 0 {
			pos = exp.Operations[len(exp.Operations)-1].Pos
		}
		return false, errors.New(errors.SimulationError, pos, "condition did not yield exactly one bool value")
	}
	return values[0].bits != 0, nil
}

// evalExpression runs exp.Operations against a fresh transient value
// stack, cleared before every top-level expression evaluation, and
// returns the final stack contents.
func (s *Simulator) evalExpression(exp ast.Expression) ([]slot, *errors.Error) {
	s.stack = s.stack[:0]
	for _, op := range exp.Operations {
		if err := s.execOperation(op); err != nil {
			return nil, err
		}
	}
	result := make([]slot, len(s.stack))
	copy(result, s.stack)
	return result, nil
}

func (s *Simulator) execOperation(op ast.Operation) *errors.Error {
	switch op.Tag {
	case ast.OpLiteral:
		// Sign-extend the 32-bit-bounded literal into the 64-bit slot.
		s.push(slot{bits: uint64(op.LiteralValue), typ: op.LiteralType})
		return nil

	case ast.OpIdentifier:
		info, ok := s.ids.Lookup(op.Name)
		if !ok {
			return errors.New(errors.SimulationError, op.Pos, "identifier %q is not defined", op.Name)
		}
		s.push(info.value)
		return nil

	case ast.OpIntrinsic:
		return s.execIntrinsic(op)

	default:
		return errors.New(errors.SimulationError, op.Pos, "unreachable operation in simulator")
	}
}

// execIntrinsic pops op's operands right-then-left — both evaluators
// consistently pop right first, then left — computes the result and
// pushes it, or writes Print's formatted output.
func (s *Simulator) execIntrinsic(op ast.Operation) *errors.Error {
	if op.Intrinsic == ast.Print {
		v, err := s.pop(op)
		if err != nil {
			return err
		}
		return s.printValue(v)
	}

	right, err := s.pop(op)
	if err != nil {
		return err
	}
	left, err := s.pop(op)
	if err != nil {
		return err
	}

	l := int64(left.bits)
	r := int64(right.bits)

	switch op.Intrinsic {
	case ast.Plus:
		s.push(slot{bits: uint64(l + r), typ: types.Int})
	case ast.Minus:
		s.push(slot{bits: uint64(l - r), typ: types.Int})
	case ast.Modulo:
		if r == 0 {
			return errors.New(errors.SimulationError, op.Pos, "modulo by zero")
		}
		s.push(slot{bits: uint64(l % r), typ: types.Int})
	case ast.GreaterThan:
		s.push(boolSlot(l > r))
	case ast.Equal:
		s.push(boolSlot(l == r))
	case ast.Or:
		s.push(boolSlot(left.bits != 0 || right.bits != 0))
	default:
		return errors.New(errors.SimulationError, op.Pos, "unreachable intrinsic %v", op.Intrinsic)
	}
	return nil
}

func boolSlot(v bool) slot {
	if v {
		return slot{bits: 1, typ: types.Bool}
	}
	return slot{bits: 0, typ: types.Bool}
}

func (s *Simulator) printValue(v slot) *errors.Error {
	switch v.typ {
	case types.Int:
		fmt.Fprintf(s.out, "%d\n", int64(v.bits))
	case types.Bool:
		if v.bits != 0 {
			fmt.Fprint(s.out, "1\n")
		} else {
			fmt.Fprint(s.out, "0\n")
		}
	default:
		return errors.New(errors.SimulationError, lexer.Position{}, "cannot print value of unknown type")
	}
	return nil
}

func (s *Simulator) push(v slot) {
	s.stack = append(s.stack, v)
}

func (s *Simulator) pop(op ast.Operation) (slot, *errors.Error) {
	if len(s.stack) == 0 {
		return slot{}, errors.New(errors.SimulationError, op.Pos, "value stack underflow evaluating %q", op.Token)
	}
	v := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return v, nil
}
