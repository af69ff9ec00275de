package ast

import (
	"testing"

	"github.com/LennysLounge/Betsy/internal/types"
)

func TestIntrinsicArities(t *testing.T) {
	tests := []struct {
		kind   IntrinsicKind
		wantIn int
	}{
		{Print, 1},
		{Plus, 2},
		{Minus, 2},
		{GreaterThan, 2},
		{Modulo, 2},
		{Equal, 2},
		{Or, 2},
	}

	for _, tt := range tests {
		if got := tt.kind.ArityIn(); got != tt.wantIn {
			t.Errorf("%v.ArityIn() = %d, want %d", tt.kind, got, tt.wantIn)
		}
	}
}

func TestPrintProducesNoOutput(t *testing.T) {
	if got := Print.ArityOut(); got != 0 {
		t.Errorf("Print.ArityOut() = %d, want 0", got)
	}
}

func TestOtherIntrinsicsProduceOneValue(t *testing.T) {
	for _, k := range []IntrinsicKind{Plus, Minus, GreaterThan, Modulo, Equal, Or} {
		if got := k.ArityOut(); got != 1 {
			t.Errorf("%v.ArityOut() = %d, want 1", k, got)
		}
	}
}

func TestResultTypeMatchesSignatureTable(t *testing.T) {
	tests := map[IntrinsicKind]types.TypeInfo{
		Plus:        types.Int,
		Minus:       types.Int,
		Modulo:      types.Int,
		GreaterThan: types.Bool,
		Equal:       types.Bool,
		Or:          types.Bool,
		Print:       types.Invalid,
	}
	for kind, want := range tests {
		if got := kind.ResultType(); got != want {
			t.Errorf("%v.ResultType() = %v, want %v", kind, got, want)
		}
	}
}

func TestKeywordStringsMatchLexemes(t *testing.T) {
	tests := map[KeywordKind]string{
		If:    "if",
		While: "while",
		Var:   "var",
		Set:   "set",
		Do:    "do",
		End:   "end",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", kind, got, want)
		}
	}
}
