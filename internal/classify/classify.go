// Package classify turns a lexer.Token into an ast.Operation by
// matching it against the exhaustive table of intrinsics, keywords,
// integer literals, and identifiers.
package classify

import (
	"strconv"

	"github.com/LennysLounge/Betsy/internal/ast"
	"github.com/LennysLounge/Betsy/internal/lexer"
	"github.com/LennysLounge/Betsy/internal/types"
)

var intrinsics = map[string]ast.IntrinsicKind{
	"print": ast.Print,
	"+":     ast.Plus,
	"-":     ast.Minus,
	">":     ast.GreaterThan,
	"%":     ast.Modulo,
	"=":     ast.Equal,
	"or":    ast.Or,
}

var keywords = map[string]ast.KeywordKind{
	"if":    ast.If,
	"while": ast.While,
	"var":   ast.Var,
	"set":   ast.Set,
	"do":    ast.Do,
	"end":   ast.End,
}

// Operation classifies one token. Intrinsics and keywords are matched
// first by exact lexeme so they can never be shadowed by an
// identifier of the same spelling; then a decimal-integer check; and
// finally, whatever is left becomes an Identifier. The classifier
// itself never fails — an ill-formed integer literal simply falls
// through to Identifier, same as any other word.
func Operation(tok lexer.Token) ast.Operation {
	base := ast.Operation{Token: tok.Lexeme, Pos: tok.Pos}

	if kind, ok := intrinsics[tok.Lexeme]; ok {
		base.Tag = ast.OpIntrinsic
		base.Intrinsic = kind
		return base
	}
	if kind, ok := keywords[tok.Lexeme]; ok {
		base.Tag = ast.OpKeyword
		base.Keyword = kind
		return base
	}
	if value, ok := parseInteger(tok.Lexeme); ok {
		base.Tag = ast.OpLiteral
		base.LiteralType = types.Int
		base.LiteralValue = value
		return base
	}

	base.Tag = ast.OpIdentifier
	base.Name = tok.Lexeme
	return base
}

// parseInteger implements Betsy's integer syntax: an optional
// leading '-', then one or more decimal digits, with '_' bytes
// ignored inside the digit run. Accumulation is bounded to signed
// 32-bit range; anything that would overflow fails the rule (the
// caller then reclassifies the token as an identifier) rather than
// wrapping or saturating.
func parseInteger(lexeme string) (int64, bool) {
	s := lexeme
	negative := false
	if len(s) > 0 && s[0] == '-' {
		negative = true
		s = s[1:]
	}

	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			continue
		}
		if c < '0' || c > '9' {
			return 0, false
		}
		digits = append(digits, c)
	}
	if len(digits) == 0 {
		return 0, false
	}

	unsigned, err := strconv.ParseUint(string(digits), 10, 32)
	if err != nil {
		return 0, false
	}

	value := int64(unsigned)
	if negative {
		value = -value
		if value < int64(minInt32) {
			return 0, false
		}
	} else if value > int64(maxInt32) {
		return 0, false
	}

	return value, true
}

const (
	minInt32 = -2147483648
	maxInt32 = 2147483647
)
