package errors

import (
	"testing"

	"github.com/LennysLounge/Betsy/internal/lexer"
)

func TestFormatMatchesWireContract(t *testing.T) {
	err := New(UnknownIdentifier, lexer.Position{Filename: "prog.betsy", Line: 3, Column: 7}, "identifier %q is not in scope", "x")

	want := `prog.betsy:3:7 ERROR: identifier "x" is not in scope`
	if got := err.Format(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestSimulationErrorUsesSimErrorLabel(t *testing.T) {
	err := New(SimulationError, lexer.Position{Filename: "p", Line: 1, Column: 1}, "condition did not yield exactly one bool")
	want := "p:1:1 SIM_ERROR: condition did not yield exactly one bool"
	if got := err.Format(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestRedefinitionCarriesANote(t *testing.T) {
	first := lexer.Position{Filename: "p", Line: 1, Column: 5}
	second := lexer.Position{Filename: "p", Line: 2, Column: 5}

	err := New(Redefinition, second, "variable %q redefined", "x").
		WithNote(first, "first defined here")

	want := "p:2:5 ERROR: variable \"x\" redefined\np:1:5 NOTE:  first defined here"
	if got := err.Format(); got != want {
		t.Errorf("Format() =\n%s\nwant\n%s", got, want)
	}
}
