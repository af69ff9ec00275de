package parser

import (
	"strings"
	"testing"

	"github.com/LennysLounge/Betsy/internal/ast"
	"github.com/LennysLounge/Betsy/internal/errors"
	"github.com/LennysLounge/Betsy/internal/types"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := Parse("t.betsy", []byte(src))
	if err != nil {
		t.Fatalf("Parse(%q) returned unexpected error: %v", src, err)
	}
	return prog
}

func TestEmptySourceYieldsEmptyProgram(t *testing.T) {
	prog := mustParse(t, "")
	if len(prog.Statements) != 0 {
		t.Errorf("got %d statements, want 0", len(prog.Statements))
	}
}

func TestBareExpressionStatement(t *testing.T) {
	prog := mustParse(t, "print + 34 35")
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	stmt := prog.Statements[0]
	if stmt.Tag != ast.StmtExpr {
		t.Fatalf("got tag %v, want StmtExpr", stmt.Tag)
	}
	if len(stmt.Expr.Operations) != 4 {
		t.Fatalf("got %d operations, want 4 (34, 35, +, print)", len(stmt.Expr.Operations))
	}
	// Post-order: operands first, innermost operator, then outermost.
	if stmt.Expr.Operations[0].LiteralValue != 34 || stmt.Expr.Operations[1].LiteralValue != 35 {
		t.Errorf("operand order wrong: %+v", stmt.Expr.Operations)
	}
	if stmt.Expr.Operations[2].Intrinsic != ast.Plus {
		t.Errorf("operation 2 is %+v, want Plus", stmt.Expr.Operations[2])
	}
	if stmt.Expr.Operations[3].Intrinsic != ast.Print {
		t.Errorf("last operation is %+v, want Print", stmt.Expr.Operations[3])
	}
	if len(stmt.Expr.OutputTypes) != 0 {
		t.Errorf("got %d output types, want 0 (print produces none)", len(stmt.Expr.OutputTypes))
	}
}

func TestVarDeclarationAndLookup(t *testing.T) {
	prog := mustParse(t, "var x int 10 print x")
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Statements))
	}
	varStmt := prog.Statements[0]
	if varStmt.Tag != ast.StmtVar || varStmt.DeclaredType != types.Int {
		t.Fatalf("var statement = %+v", varStmt)
	}

	printStmt := prog.Statements[1]
	if printStmt.Tag != ast.StmtExpr {
		t.Fatalf("got tag %v, want StmtExpr", printStmt.Tag)
	}
	ident := printStmt.Expr.Operations[0]
	if ident.Tag != ast.OpIdentifier || ident.Name != "x" {
		t.Errorf("expected identifier x, got %+v", ident)
	}
}

func TestIfWithBoolCondition(t *testing.T) {
	prog := mustParse(t, "if > 5 3 do print 1")
	if len(prog.Statements) != 1 || prog.Statements[0].Tag != ast.StmtIf {
		t.Fatalf("got %+v", prog.Statements)
	}
}

func TestIfConditionMustBeBool(t *testing.T) {
	_, err := Parse("t.betsy", []byte("if 5 do print 1"))
	if err == nil {
		t.Fatal("expected a type error, got none")
	}
	if err.Kind != errors.TypeMismatch {
		t.Errorf("got kind %v, want TypeMismatch", err.Kind)
	}
}

func TestWhileLoopWithBlock(t *testing.T) {
	src := `
var i int 0
while > 10 i do
    print i
    set i + i 1
end
`
	prog := mustParse(t, src)
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Statements))
	}
	whileStmt := prog.Statements[1]
	if whileStmt.Tag != ast.StmtWhile {
		t.Fatalf("got tag %v, want StmtWhile", whileStmt.Tag)
	}
	block := whileStmt.Action
	if block.Tag != ast.StmtBlock || len(block.Statements) != 2 {
		t.Fatalf("got block %+v", block)
	}
}

func TestRedefinitionReportsNoteAtFirstDefinition(t *testing.T) {
	_, err := Parse("t.betsy", []byte("var x int 1 var x int 2"))
	if err == nil {
		t.Fatal("expected Redefinition error")
	}
	if err.Kind != errors.Redefinition {
		t.Errorf("got kind %v, want Redefinition", err.Kind)
	}
	if len(err.Notes) != 1 {
		t.Fatalf("got %d notes, want 1", len(err.Notes))
	}
	if !strings.Contains(err.Format(), "NOTE:") {
		t.Errorf("formatted error missing NOTE line:\n%s", err.Format())
	}
}

func TestShadowingAcrossScopesIsAlsoRedefinition(t *testing.T) {
	src := "var x int 1 do var x int 2 end"
	_, err := Parse("t.betsy", []byte(src))
	if err == nil {
		t.Fatal("expected Redefinition error for shadowing inner var")
	}
}

func TestScopeIsPoppedAfterBlock(t *testing.T) {
	// x declared inside `do ... end` must not be visible afterwards.
	src := "do var x int 1 end print x"
	_, err := Parse("t.betsy", []byte(src))
	if err == nil {
		t.Fatal("expected UnknownIdentifier after block exit")
	}
}

func TestUnterminatedBlock(t *testing.T) {
	_, err := Parse("t.betsy", []byte("do print 1"))
	if err == nil {
		t.Fatal("expected UnterminatedBlock error")
	}
	if err.Kind != errors.UnterminatedBlock {
		t.Errorf("got kind %v, want UnterminatedBlock", err.Kind)
	}
}

func TestStrayEndIsUnexpectedToken(t *testing.T) {
	_, err := Parse("t.betsy", []byte("end"))
	if err == nil {
		t.Fatal("expected an error for a stray end")
	}
}

func TestMalformedExpressionArity(t *testing.T) {
	// `+` needs two operands but only one is given before input ends.
	_, err := Parse("t.betsy", []byte("+ 1"))
	if err == nil {
		t.Fatal("expected UnexpectedEndOfInput")
	}
}

func TestPrintAsOperandIsMalformed(t *testing.T) {
	// print consumes one value and produces none, so it cannot be
	// used as an operand of +.
	_, err := Parse("t.betsy", []byte("+ print 1 2"))
	if err == nil {
		t.Fatal("expected MalformedExpression")
	}
	if err.Kind != errors.MalformedExpression {
		t.Errorf("got kind %v, want MalformedExpression", err.Kind)
	}
}

func TestUnknownIdentifier(t *testing.T) {
	_, err := Parse("t.betsy", []byte("print x"))
	if err == nil {
		t.Fatal("expected UnknownIdentifier")
	}
	if err.Kind != errors.UnknownIdentifier {
		t.Errorf("got kind %v, want UnknownIdentifier", err.Kind)
	}
	if !strings.Contains(err.Format(), "ERROR:") {
		t.Errorf("formatted error missing ERROR:\n%s", err.Format())
	}
}

func TestOrOfBools(t *testing.T) {
	prog := mustParse(t, "var b bool or = 1 2 > 3 2 print b")
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Statements))
	}
	if prog.Statements[0].DeclaredType != types.Bool {
		t.Fatalf("declared type = %v, want Bool", prog.Statements[0].DeclaredType)
	}
}
