package ast

import "github.com/t14raptor/go-estree/token"

type (
	ThisExpression struct {
		Span
	}

	Super struct {
		Span
	}

	// ArrayExpression elements are nil for holes.
	ArrayExpression struct {
		Span
		Elements []Expr `json:"elements"`
	}

	ObjectExpression struct {
		Span
		Properties []ObjectMember `json:"properties"`
	}

	// Property is a member of an object literal. Kind is "init", "get" or
	// "set".
	Property struct {
		Span
		Key       Expr   `json:"key"`
		Value     Expr   `json:"value"`
		Kind      string `json:"kind"`
		Method    bool   `json:"method"`
		Shorthand bool   `json:"shorthand"`
		Computed  bool   `json:"computed"`
	}

	SpreadElement struct {
		Span
		Argument Expr `json:"argument"`
	}

	UnaryExpression struct {
		Span
		Operator token.Token `json:"operator"`
		Prefix   bool        `json:"prefix"`
		Argument Expr        `json:"argument"`
	}

	UpdateExpression struct {
		Span
		Operator token.Token `json:"operator"`
		Prefix   bool        `json:"prefix"`
		Argument Expr        `json:"argument"`
	}

	// BinaryExpression.Left is a PrivateIdentifier for `#x in obj`.
	BinaryExpression struct {
		Span
		Operator token.Token `json:"operator"`
		Left     Expr        `json:"left"`
		Right    Expr        `json:"right"`
	}

	LogicalExpression struct {
		Span
		Operator token.Token `json:"operator"`
		Left     Expr        `json:"left"`
		Right    Expr        `json:"right"`
	}

	AssignmentExpression struct {
		Span
		Operator token.Token `json:"operator"`
		Left     Pattern     `json:"left"`
		Right    Expr        `json:"right"`
	}

	ConditionalExpression struct {
		Span
		Test       Expr `json:"test"`
		Consequent Expr `json:"consequent"`
		Alternate  Expr `json:"alternate"`
	}

	CallExpression struct {
		Span
		Callee    Expr   `json:"callee"`
		Arguments []Expr `json:"arguments"`
		Optional  bool   `json:"optional"`
	}

	NewExpression struct {
		Span
		Callee    Expr   `json:"callee"`
		Arguments []Expr `json:"arguments"`
	}

	// MemberExpression.Property is a PrivateIdentifier for `a.#b`.
	MemberExpression struct {
		Span
		Object   Expr `json:"object"`
		Property Expr `json:"property"`
		Computed bool `json:"computed"`
		Optional bool `json:"optional"`
	}

	// ChainExpression wraps an optional chain `a?.b.c`.
	ChainExpression struct {
		Span
		Expression Expr `json:"expression"`
	}

	SequenceExpression struct {
		Span
		Expressions []Expr `json:"expressions"`
	}

	YieldExpression struct {
		Span
		Argument Expr `json:"argument"`
		Delegate bool `json:"delegate"`
	}

	AwaitExpression struct {
		Span
		Argument Expr `json:"argument"`
	}

	TaggedTemplateExpression struct {
		Span
		Tag   Expr             `json:"tag"`
		Quasi *TemplateLiteral `json:"quasi"`
	}

	// MetaProperty is `new.target` or `import.meta`.
	MetaProperty struct {
		Span
		Meta     *Identifier `json:"meta"`
		Property *Identifier `json:"property"`
	}

	ImportExpression struct {
		Span
		Source  Expr `json:"source"`
		Options Expr `json:"options"`
	}

	// ParenthesizedExpression is only produced with preserveParens.
	ParenthesizedExpression struct {
		Span
		Expression Expr `json:"expression"`
	}
)
