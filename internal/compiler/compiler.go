// Package compiler implements Betsy's source-to-source C backend: it
// walks the same Program the simulator walks, but instead of
// evaluating expressions it emits C statements that reproduce their
// effect at the target's own runtime.
//
// The compiler tracks types only, never values — a parallel to the
// parser's type-only bookkeeping. Where the simulator keeps a value
// stack of {bits, type} slots, the compiler keeps a depth counter of
// how many values are currently live and a slice of TypeInfo whose
// length is how many stack_NNN locals are declared in the current C
// scope, since a slot is declared exactly once, the first time it is
// pushed to.
package compiler

import (
	"fmt"
	"strings"

	"github.com/LennysLounge/Betsy/internal/ast"
	"github.com/LennysLounge/Betsy/internal/errors"
	"github.com/LennysLounge/Betsy/internal/scope"
	"github.com/LennysLounge/Betsy/internal/types"
)

// cVarInfo is the compiler identifier table's payload: a Betsy
// variable's declared type, needed to cast correctly whenever the
// variable is read or written.
type cVarInfo struct {
	typ types.TypeInfo
}

// Compiler translates a Program into C source. Unlike the simulator,
// it never runs anything: Compile only ever appends text to out.
type Compiler struct {
	out    strings.Builder
	indent int

	// depth is how many values are live on the emitted program's
	// conceptual value stack right now; it resets to 0 at the start of
	// every top-level expression, mirroring the simulator's own
	// per-expression stack reset.
	depth int

	// types[i] is the TypeInfo last stored in stack_00i. len(types) is
	// the number of stack_NNN locals declared so far: pushing at
	// depth == len(types) declares a new local, pushing at a lower
	// depth reuses one already declared.
	types []types.TypeInfo

	ids scope.Table[cVarInfo]
}

// New creates an empty Compiler.
func New() *Compiler {
	return &Compiler{}
}

// Compile translates prog into a complete C translation unit.
func (c *Compiler) Compile(prog *ast.Program) (string, *errors.Error) {
	c.out.Reset()
	c.indent = 0
	c.depth = 0
	c.types = c.types[:0]
	c.ids = scope.Table[cVarInfo]{}

	c.writeln("#include <stdint.h>")
	c.writeln("#include <stdio.h>")
	c.writeln("")
	c.writeln("int main(void) {")
	c.indent++
	for _, stmt := range prog.Statements {
		if err := c.compileStatement(stmt); err != nil {
			return "", err
		}
	}
	c.writeln("return 0;")
	c.indent--
	c.writeln("}")
	return c.out.String(), nil
}

// writeln appends one line, indented to the current nesting level.
func (c *Compiler) writeln(line string) {
	if line == "" {
		c.out.WriteByte('\n')
		return
	}
	c.out.WriteString(strings.Repeat("    ", c.indent))
	c.out.WriteString(line)
	c.out.WriteByte('\n')
}

// writelnf is writeln with Sprintf-style formatting.
func (c *Compiler) writelnf(format string, args ...any) {
	c.writeln(fmt.Sprintf(format, args...))
}

// cType is the C type used to hold a Betsy value of type t when it is
// declared as a named variable (`var`), as opposed to a stack_NNN
// slot, which is always uint64_t.
func cType(t types.TypeInfo) string {
	switch t {
	case types.Bool:
		return "uint8_t"
	default:
		return "int32_t"
	}
}

// castFromSlot renders the expression that reads stack_NNN back out as
// a value of type t.
func castFromSlot(idx int, t types.TypeInfo) string {
	if t == types.Bool {
		return fmt.Sprintf("(uint8_t)stack_%03d", idx)
	}
	return fmt.Sprintf("(int32_t)stack_%03d", idx)
}
