package ast

type (
	FunctionExpression struct {
		Span
		ID         *Identifier     `json:"id"`
		Expression bool            `json:"expression"`
		Generator  bool            `json:"generator"`
		Async      bool            `json:"async"`
		Params     []Pattern       `json:"params"`
		Body       *BlockStatement `json:"body"`
	}

	FunctionDeclaration struct {
		Span
		ID         *Identifier     `json:"id"`
		Expression bool            `json:"expression"`
		Generator  bool            `json:"generator"`
		Async      bool            `json:"async"`
		Params     []Pattern       `json:"params"`
		Body       *BlockStatement `json:"body"`
	}

	// ArrowFunctionExpression.Body is a *BlockStatement or, when Expression
	// is set, an Expr.
	ArrowFunctionExpression struct {
		Span
		ID         *Identifier `json:"id"`
		Expression bool        `json:"expression"`
		Generator  bool        `json:"generator"`
		Async      bool        `json:"async"`
		Params     []Pattern   `json:"params"`
		Body       Node        `json:"body"`
	}
)
