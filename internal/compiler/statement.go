package compiler

import (
	"github.com/LennysLounge/Betsy/internal/ast"
	"github.com/LennysLounge/Betsy/internal/errors"
)

func (c *Compiler) compileStatement(stmt ast.Statement) *errors.Error {
	switch stmt.Tag {
	case ast.StmtExpr:
		return c.compileExpression(stmt.Expr)

	case ast.StmtIf:
		if err := c.compileExpression(stmt.Condition); err != nil {
			return err
		}
		c.writeln("if (stack_000 != 0) {")
		c.indent++
		if err := c.compileScopedBody(*stmt.Action); err != nil {
			return err
		}
		c.indent--
		c.writeln("}")
		return nil

	case ast.StmtWhile:
		// The condition's slots are declared inside the loop's braces, so
		// they go out of C scope with it.
		savedTypes := len(c.types)
		c.writeln("while (1) {")
		c.indent++
		if err := c.compileExpression(stmt.Condition); err != nil {
			return err
		}
		c.writeln("if (stack_000 == 0) break;")
		if err := c.compileScopedBody(*stmt.Action); err != nil {
			return err
		}
		c.indent--
		c.writeln("}")
		c.types = c.types[:savedTypes]
		return nil

	case ast.StmtVar:
		if err := c.compileExpression(stmt.Init); err != nil {
			return err
		}
		c.writelnf("%s %s = %s;", cType(stmt.DeclaredType), stmt.VarName.Name, castFromSlot(0, stmt.DeclaredType))
		c.ids.Declare(stmt.VarName.Name, cVarInfo{typ: stmt.DeclaredType})
		return nil

	case ast.StmtSet:
		info, ok := c.ids.Lookup(stmt.SetName.Name)
		if !ok {
			return errors.New(errors.SimulationError, stmt.SetName.Pos, "identifier %q is not defined", stmt.SetName.Name)
		}
		if err := c.compileExpression(stmt.Value); err != nil {
			return err
		}
		c.writelnf("%s = %s;", stmt.SetName.Name, castFromSlot(0, info.typ))
		return nil

	case ast.StmtBlock:
		c.writeln("{")
		c.indent++
		if err := c.compileScopedBody(stmt); err != nil {
			return err
		}
		c.indent--
		c.writeln("}")
		return nil

	default:
		return errors.New(errors.SimulationError, stmt.VarName.Pos, "unreachable statement tag %d", stmt.Tag)
	}
}

// compileScopedBody compiles the statements of a nested scope (an If
// or While action, or a bare block), restoring the compiler's
// identifier table and slot bookkeeping to their pre-entry state on
// exit. Truncating types back to its saved length does not clash with
// the C declarations already emitted inside the nested braces: those
// stack_NNN locals go out of C scope when the block's own closing `}`
// is written, so the same numbered slot may be redeclared afterward
// at the outer level.
func (c *Compiler) compileScopedBody(action ast.Statement) *errors.Error {
	mark := c.ids.Push()
	savedTypes := len(c.types)

	var err *errors.Error
	if action.Tag == ast.StmtBlock {
		for _, child := range action.Statements {
			if err = c.compileStatement(child); err != nil {
				break
			}
		}
	} else {
		err = c.compileStatement(action)
	}

	c.ids.Pop(mark)
	c.types = c.types[:savedTypes]
	return err
}
