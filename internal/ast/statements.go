package ast

import "github.com/LennysLounge/Betsy/internal/types"

// StatementTag discriminates Statement's payload.
type StatementTag int

const (
	StmtExpr StatementTag = iota
	StmtIf
	StmtWhile
	StmtVar
	StmtSet
	StmtBlock
)

// Statement is a closed-set tagged node. Exactly one of the payload
// groups below is meaningful, selected by Tag.
type Statement struct {
	Tag StatementTag

	// StmtExpr
	Expr Expression

	// StmtIf, StmtWhile
	Condition Expression
	Action    *Statement

	// StmtVar
	VarName      Operation // the Identifier operation that introduced the name
	DeclaredType types.TypeInfo
	Init         Expression

	// StmtSet
	SetName Operation
	Value   Expression

	// StmtBlock
	Statements []Statement
}

// Program is the ordered top-level sequence of Statements.
type Program struct {
	Statements []Statement
}
