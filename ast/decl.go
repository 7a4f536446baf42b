package ast

type (
	// VariableDeclaration.Kind is "var", "let" or "const".
	VariableDeclaration struct {
		Span
		Declarations []*VariableDeclarator `json:"declarations"`
		Kind         string                `json:"kind"`
	}

	VariableDeclarator struct {
		Span
		ID   Pattern `json:"id"`
		Init Expr    `json:"init"`
	}

	ImportDeclaration struct {
		Span
		Specifiers []ImportSpec       `json:"specifiers"`
		Source     *Literal           `json:"source"`
		Attributes []*ImportAttribute `json:"attributes,omitnil"`
	}

	ImportSpecifier struct {
		Span
		Imported ModuleName  `json:"imported"`
		Local    *Identifier `json:"local"`
	}

	ImportDefaultSpecifier struct {
		Span
		Local *Identifier `json:"local"`
	}

	ImportNamespaceSpecifier struct {
		Span
		Local *Identifier `json:"local"`
	}

	// ImportAttribute is one `key: "value"` entry of a `with { ... }`
	// clause.
	ImportAttribute struct {
		Span
		Key   ModuleName `json:"key"`
		Value *Literal    `json:"value"`
	}

	ExportNamedDeclaration struct {
		Span
		Declaration Stmt               `json:"declaration"`
		Specifiers  []*ExportSpecifier `json:"specifiers"`
		Source      *Literal           `json:"source"`
		Attributes  []*ImportAttribute `json:"attributes,omitnil"`
	}

	ExportSpecifier struct {
		Span
		Local    ModuleName `json:"local"`
		Exported ModuleName `json:"exported"`
	}

	// ExportDefaultDeclaration.Declaration is a *FunctionDeclaration, a
	// *ClassDeclaration or an Expr. Anonymous function and class
	// declarations keep a nil ID.
	ExportDefaultDeclaration struct {
		Span
		Declaration Node `json:"declaration"`
	}

	ExportAllDeclaration struct {
		Span
		Exported   ModuleName         `json:"exported"`
		Source     *Literal           `json:"source"`
		Attributes []*ImportAttribute `json:"attributes,omitnil"`
	}
)
