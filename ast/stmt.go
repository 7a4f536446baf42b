package ast

type (
	Program struct {
		Span
		Body       []Stmt `json:"body"`
		SourceType string `json:"sourceType"`
	}

	// ExpressionStatement.Directive holds the raw text between the quotes of
	// a directive prologue entry, and is nil for ordinary statements.
	ExpressionStatement struct {
		Span
		Expression Expr    `json:"expression"`
		Directive  *string `json:"directive,omitempty"`
	}

	BlockStatement struct {
		Span
		Body []Stmt `json:"body"`
	}

	EmptyStatement struct {
		Span
	}

	DebuggerStatement struct {
		Span
	}

	WithStatement struct {
		Span
		Object Expr `json:"object"`
		Body   Stmt `json:"body"`
	}

	ReturnStatement struct {
		Span
		Argument Expr `json:"argument"`
	}

	LabeledStatement struct {
		Span
		Body  Stmt        `json:"body"`
		Label *Identifier `json:"label"`
	}

	BreakStatement struct {
		Span
		Label *Identifier `json:"label"`
	}

	ContinueStatement struct {
		Span
		Label *Identifier `json:"label"`
	}

	IfStatement struct {
		Span
		Test       Expr `json:"test"`
		Consequent Stmt `json:"consequent"`
		Alternate  Stmt `json:"alternate"`
	}

	SwitchStatement struct {
		Span
		Discriminant Expr          `json:"discriminant"`
		Cases        []*SwitchCase `json:"cases"`
	}

	// SwitchCase.Test is nil for the default clause.
	SwitchCase struct {
		Span
		Consequent []Stmt `json:"consequent"`
		Test       Expr   `json:"test"`
	}

	ThrowStatement struct {
		Span
		Argument Expr `json:"argument"`
	}

	TryStatement struct {
		Span
		Block     *BlockStatement `json:"block"`
		Handler   *CatchClause    `json:"handler"`
		Finalizer *BlockStatement `json:"finalizer"`
	}

	// CatchClause.Param is nil for `catch {}`.
	CatchClause struct {
		Span
		Param Pattern         `json:"param"`
		Body  *BlockStatement `json:"body"`
	}

	WhileStatement struct {
		Span
		Test Expr `json:"test"`
		Body Stmt `json:"body"`
	}

	DoWhileStatement struct {
		Span
		Body Stmt `json:"body"`
		Test Expr `json:"test"`
	}

	// ForStatement.Init is a *VariableDeclaration, an Expr or nil.
	ForStatement struct {
		Span
		Init   Node `json:"init"`
		Test   Expr `json:"test"`
		Update Expr `json:"update"`
		Body   Stmt `json:"body"`
	}

	// ForInStatement.Left is a *VariableDeclaration or a Pattern.
	ForInStatement struct {
		Span
		Left  Node `json:"left"`
		Right Expr `json:"right"`
		Body  Stmt `json:"body"`
	}

	ForOfStatement struct {
		Span
		Await bool `json:"await"`
		Left  Node `json:"left"`
		Right Expr `json:"right"`
		Body  Stmt `json:"body"`
	}
)
