// Package token defines the lexical token kinds produced by the tokenizer
// together with the grammar properties the parser needs for each kind.
package token

import (
	"strconv"
)

// Token is the set of lexical tokens in ECMAScript.
type Token int

// String returns the label of the token: the punctuator or keyword text
// for fixed tokens, a lower-case kind name ("name", "num", ...) otherwise.
func (t Token) String() string {
	if t > 0 && int(t) < len(tokenProps) && tokenProps[t].label != "" {
		return tokenProps[t].label
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

func (t Token) props() props {
	if t < 0 || int(t) >= len(tokenProps) {
		return props{}
	}
	return tokenProps[t]
}

// BeforeExpr reports whether an expression may follow the token, which is
// what decides between a regular expression and a division after it.
func (t Token) BeforeExpr() bool { return t.props().beforeExpr }

// StartsExpr reports whether the token can begin an expression.
func (t Token) StartsExpr() bool { return t.props().startsExpr }

// IsLoop reports whether the token is a loop keyword.
func (t Token) IsLoop() bool { return t.props().isLoop }

// IsAssign reports whether the token is an assignment operator.
func (t Token) IsAssign() bool { return t.props().isAssign }

// IsPrefix reports whether the token can be a prefix operator.
func (t Token) IsPrefix() bool { return t.props().prefix }

// IsPostfix reports whether the token can be a postfix operator.
func (t Token) IsPostfix() bool { return t.props().postfix }

// Precedence returns the binary operator precedence, or 0 when the token
// is not a binary operator. ** has the highest precedence and is the only
// right-associative one.
func (t Token) Precedence() int { return t.props().binop }

// IsKeyword reports whether the token is a reserved keyword token.
func (t Token) IsKeyword() bool {
	return t > firstKeyword && t < lastKeyword
}

// IsLogical reports whether the token is one of the short-circuit operators.
func (t Token) IsLogical() bool {
	return t == LogicalAnd || t == LogicalOr || t == Coalesce
}

// Keyword returns the keyword token for literal, if it is one.
func Keyword(literal string) (Token, bool) {
	t, ok := keywordTable[literal]
	return t, ok
}

// Keywords returns every keyword token in declaration order.
func Keywords() []Token {
	out := make([]Token, 0, lastKeyword-firstKeyword-1)
	for t := firstKeyword + 1; t < lastKeyword; t++ {
		out = append(out, t)
	}
	return out
}
