package classify

import (
	"testing"

	"github.com/LennysLounge/Betsy/internal/ast"
	"github.com/LennysLounge/Betsy/internal/lexer"
	"github.com/LennysLounge/Betsy/internal/types"
)

func classifyLexeme(s string) ast.Operation {
	return Operation(lexer.Token{Lexeme: s})
}

func TestIntrinsicsClassified(t *testing.T) {
	tests := map[string]ast.IntrinsicKind{
		"print": ast.Print,
		"+":     ast.Plus,
		"-":     ast.Minus,
		">":     ast.GreaterThan,
		"%":     ast.Modulo,
		"=":     ast.Equal,
		"or":    ast.Or,
	}
	for lexeme, kind := range tests {
		op := classifyLexeme(lexeme)
		if op.Tag != ast.OpIntrinsic || op.Intrinsic != kind {
			t.Errorf("classify(%q) = %+v, want Intrinsic %v", lexeme, op, kind)
		}
	}
}

func TestKeywordsClassified(t *testing.T) {
	tests := map[string]ast.KeywordKind{
		"if": ast.If, "while": ast.While, "var": ast.Var,
		"set": ast.Set, "do": ast.Do, "end": ast.End,
	}
	for lexeme, kind := range tests {
		op := classifyLexeme(lexeme)
		if op.Tag != ast.OpKeyword || op.Keyword != kind {
			t.Errorf("classify(%q) = %+v, want Keyword %v", lexeme, op, kind)
		}
	}
}

func TestIntegerLiterals(t *testing.T) {
	tests := []struct {
		lexeme string
		value  int64
	}{
		{"0", 0},
		{"35", 35},
		{"-35", -35},
		{"1_000_000", 1000000},
		{"2147483647", 2147483647},
		{"-2147483648", -2147483648},
	}
	for _, tt := range tests {
		op := classifyLexeme(tt.lexeme)
		if op.Tag != ast.OpLiteral || op.LiteralType != types.Int || op.LiteralValue != tt.value {
			t.Errorf("classify(%q) = %+v, want Literal %d", tt.lexeme, op, tt.value)
		}
	}
}

func TestOverflowingLiteralBecomesIdentifier(t *testing.T) {
	tests := []string{"2147483648", "-2147483649", "99999999999"}
	for _, lexeme := range tests {
		op := classifyLexeme(lexeme)
		if op.Tag != ast.OpIdentifier || op.Name != lexeme {
			t.Errorf("classify(%q) = %+v, want Identifier", lexeme, op)
		}
	}
}

func TestPlainWordIsIdentifier(t *testing.T) {
	op := classifyLexeme("x")
	if op.Tag != ast.OpIdentifier || op.Name != "x" {
		t.Errorf("classify(%q) = %+v, want Identifier", "x", op)
	}
}

func TestMalformedIntegerFallsBackToIdentifier(t *testing.T) {
	tests := []string{"1.5", "--5", "5-"}
	for _, lexeme := range tests {
		op := classifyLexeme(lexeme)
		if op.Tag != ast.OpIdentifier {
			t.Errorf("classify(%q) = %+v, want Identifier", lexeme, op)
		}
	}
}
