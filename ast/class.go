package ast

type (
	ClassDeclaration struct {
		Span
		ID         *Identifier `json:"id"`
		SuperClass Expr        `json:"superClass"`
		Body       *ClassBody  `json:"body"`
	}

	ClassExpression struct {
		Span
		ID         *Identifier `json:"id"`
		SuperClass Expr        `json:"superClass"`
		Body       *ClassBody  `json:"body"`
	}

	ClassBody struct {
		Span
		Body []ClassElement `json:"body"`
	}

	// MethodDefinition.Kind is "constructor", "method", "get" or "set". Key
	// is a PrivateIdentifier for private methods.
	MethodDefinition struct {
		Span
		Static   bool                `json:"static"`
		Computed bool                `json:"computed"`
		Key      Expr                `json:"key"`
		Kind     string              `json:"kind"`
		Value    *FunctionExpression `json:"value"`
	}

	PropertyDefinition struct {
		Span
		Static   bool `json:"static"`
		Computed bool `json:"computed"`
		Key      Expr `json:"key"`
		Value    Expr `json:"value"`
	}

	StaticBlock struct {
		Span
		Body []Stmt `json:"body"`
	}
)
