package ast

import "github.com/LennysLounge/Betsy/internal/types"

// Expression is a post-order sequence of Operations together with the
// types of the values it leaves on the output stack once fully
// executed. Every well-formed Expression satisfies: executing
// Operations on an empty value stack yields exactly len(OutputTypes)
// values whose runtime types equal OutputTypes.
type Expression struct {
	Operations  []Operation
	OutputTypes []types.TypeInfo
}
