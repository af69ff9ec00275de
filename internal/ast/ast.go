// Package ast defines Betsy's abstract syntax tree: Operation,
// Expression, Statement and Program.
//
// Unlike a conventional AST, an Operation is not itself a tree node —
// it is closed-set tagged data (a literal, an identifier reference, an
// intrinsic, or a keyword) that only becomes structure once the
// expression and statement parsers fold a stream of them into
// Expression.Operations (a post-order sequence) and a Statement tree.
package ast

import (
	"github.com/LennysLounge/Betsy/internal/lexer"
	"github.com/LennysLounge/Betsy/internal/types"
)

// IntrinsicKind enumerates Betsy's built-in operators.
type IntrinsicKind int

const (
	Print IntrinsicKind = iota
	Plus
	Minus
	GreaterThan
	Modulo
	Equal
	Or
)

// String names the intrinsic by its source lexeme, the way it prints
// in diagnostics.
func (k IntrinsicKind) String() string {
	switch k {
	case Print:
		return "print"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case GreaterThan:
		return ">"
	case Modulo:
		return "%"
	case Equal:
		return "="
	case Or:
		return "or"
	default:
		return "<invalid intrinsic>"
	}
}

// ArityIn and ArityOut are constants of IntrinsicKind: every Intrinsic
// of a given kind always consumes and produces the same number of
// values.
func (k IntrinsicKind) ArityIn() int {
	if k == Print {
		return 1
	}
	return 2
}

func (k IntrinsicKind) ArityOut() int {
	if k == Print {
		return 0
	}
	return 1
}

// ResultType is the TypeInfo an intrinsic of this kind produces; it is
// Invalid for Print, which produces no value.
func (k IntrinsicKind) ResultType() types.TypeInfo {
	switch k {
	case Plus, Minus, Modulo:
		return types.Int
	case GreaterThan, Equal, Or:
		return types.Bool
	default:
		return types.Invalid
	}
}

// KeywordKind enumerates Betsy's statement-introducing keywords.
type KeywordKind int

const (
	If KeywordKind = iota
	While
	Var
	Set
	Do
	End
)

func (k KeywordKind) String() string {
	switch k {
	case If:
		return "if"
	case While:
		return "while"
	case Var:
		return "var"
	case Set:
		return "set"
	case Do:
		return "do"
	case End:
		return "end"
	default:
		return "<invalid keyword>"
	}
}

// OperationTag discriminates Operation's payload.
type OperationTag int

const (
	OpLiteral OperationTag = iota
	OpIdentifier
	OpIntrinsic
	OpKeyword
)

// Operation is the classifier's output and the expression parser's
// input: a closed-set tagged value carrying exactly one of Literal,
// Identifier, Intrinsic or Keyword payload fields, plus the token it
// was classified from.
type Operation struct {
	Token string
	Pos   lexer.Position
	Tag   OperationTag

	// OpLiteral
	LiteralType  types.TypeInfo
	LiteralValue int64

	// OpIdentifier
	Name string

	// OpIntrinsic
	Intrinsic IntrinsicKind

	// OpKeyword
	Keyword KeywordKind
}
