// Package errors implements Betsy's diagnostic taxonomy and the
// fixed wire format the CLI must print.
//
// Every stage past the lexer (which is total and never errors)
// returns a *Error instead of calling os.Exit directly, so the
// exiting happens exactly once, in cmd/betsy/cmd, after the single
// diagnostic and its notes have been written.
package errors

import (
	"fmt"
	"strings"

	"github.com/LennysLounge/Betsy/internal/lexer"
)

// Kind is Betsy's closed error taxonomy. Every *Error carries exactly
// one.
type Kind int

const (
	InvalidWord Kind = iota
	UnexpectedEndOfInput
	UnexpectedToken
	MalformedExpression
	TypeMismatch
	UnknownIdentifier
	Redefinition
	UnterminatedBlock
	ArityMismatch
	SimulationError
	FileOpenFailed
)

// label is the word printed between the position and the message:
// ERROR for every parser/type-checker kind, SIM_ERROR for the one
// kind the simulator raises.
func (k Kind) label() string {
	if k == SimulationError {
		return "SIM_ERROR"
	}
	return "ERROR"
}

// Note is a secondary location attached to an Error, such as the
// original definition site of a Redefinition.
type Note struct {
	Pos     lexer.Position
	Message string
}

// Error is Betsy's single diagnostic type. There is no multi-error
// batching: the first Error produced anywhere in the pipeline is
// fatal.
type Error struct {
	Kind    Kind
	Pos     lexer.Position
	Message string
	Notes   []Note
}

// New builds an Error of the given kind at pos.
func New(kind Kind, pos lexer.Position, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithNote attaches a secondary location to the error and returns it,
// for the common case of constructing and annotating in one
// expression (e.g. Redefinition pointing back at the first `var`).
func (e *Error) WithNote(pos lexer.Position, format string, args ...any) *Error {
	e.Notes = append(e.Notes, Note{Pos: pos, Message: fmt.Sprintf(format, args...)})
	return e
}

// Error implements the standard error interface by rendering the
// full diagnostic, notes included.
func (e *Error) Error() string {
	return e.Format()
}

// Format renders the diagnostic in the exact form required for
// compatibility:
//
//	<filename>:<line>:<column> ERROR: <message>
//	<filename>:<line>:<column> NOTE:  <annotation>
//
// one line per note, in the order they were attached.
func (e *Error) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s: %s", pos(e.Pos), e.Kind.label(), e.Message)
	for _, n := range e.Notes {
		fmt.Fprintf(&sb, "\n%s NOTE:  %s", pos(n.Pos), n.Message)
	}
	return sb.String()
}

func pos(p lexer.Position) string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}
