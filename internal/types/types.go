// Package types defines Betsy's closed set of runtime types.
//
// Betsy has exactly two types, Int and Bool. There is no implicit
// conversion between them and no user-defined types, so a TypeInfo
// value is nothing more than a tag: equality of TypeInfo is equality
// of type.
package types

// TypeInfo identifies one of Betsy's two runtime types.
type TypeInfo int

const (
	// Invalid marks the zero value so an uninitialized TypeInfo is
	// never mistaken for a real type.
	Invalid TypeInfo = iota
	Int
	Bool
)

// String renders the type the way it appears in source (the `var`
// type-name syntax) and in diagnostics.
func (t TypeInfo) String() string {
	switch t {
	case Int:
		return "int"
	case Bool:
		return "bool"
	default:
		return "<invalid type>"
	}
}

// ByName resolves a declared-type name from `var` syntax. It reports
// ok=false for anything other than the two spellings the grammar
// allows.
func ByName(name string) (t TypeInfo, ok bool) {
	switch name {
	case "int":
		return Int, true
	case "bool":
		return Bool, true
	default:
		return Invalid, false
	}
}
