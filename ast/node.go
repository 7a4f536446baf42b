// Package ast declares the ESTree node types produced by the parser.
//
// Nodes are grouped into closed categories (Expr, Stmt, Pattern, ...) via
// unexported marker methods, so that a value of each interface can only be
// one of the node types declared here.
package ast

// Idx is a byte offset into the source text.
type Idx int

// Position is a line/column pair. Lines are 1-based, columns 0-based.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceLocation is the ESTree "loc" object.
type SourceLocation struct {
	Start  Position `json:"start"`
	End    Position `json:"end"`
	Source string   `json:"source,omitempty"`
}

// Span carries the source position metadata shared by every node.
type Span struct {
	Start Idx
	End   Idx

	// Loc is only set when locations are requested.
	Loc *SourceLocation
	// Range is only set when ranges are requested.
	Range *[2]Idx
	// SourceFile is stamped from the directSourceFile option.
	SourceFile string
}

// Idx0 returns the index of the first character belonging to the node.
func (s *Span) Idx0() Idx { return s.Start }

// Idx1 returns the index of the first character immediately after the node.
func (s *Span) Idx1() Idx { return s.End }

// NodeSpan returns the node's span for in-place position updates.
func (s *Span) NodeSpan() *Span { return s }

type Node interface {
	Idx0() Idx
	Idx1() Idx
	NodeSpan() *Span
	// Type returns the ESTree type tag.
	Type() string
}

type (
	// Expr is implemented by every expression node.
	Expr interface {
		Node
		_expr()
	}

	// Stmt is implemented by statements, declarations and module
	// declarations.
	Stmt interface {
		Node
		_stmt()
	}

	// Pattern is a binding or assignment target. Identifier and
	// MemberExpression are both expressions and patterns.
	Pattern interface {
		Node
		_pattern()
	}

	// ModuleDecl is an import or export declaration.
	ModuleDecl interface {
		Stmt
		_moduleDecl()
	}

	// ObjectMember is an element of ObjectExpression.properties.
	ObjectMember interface {
		Node
		_objectMember()
	}

	// PatternMember is an element of ObjectPattern.properties.
	PatternMember interface {
		Node
		_patternMember()
	}

	// ClassElement is an element of ClassBody.body.
	ClassElement interface {
		Node
		_classElement()
	}

	// ImportSpec is an element of ImportDeclaration.specifiers.
	ImportSpec interface {
		Node
		_importSpec()
	}

	// ModuleName is an Identifier or a string Literal naming an import or
	// export binding.
	ModuleName interface {
		Node
		_moduleName()
	}
)

func (*Identifier) _expr()               {}
func (*PrivateIdentifier) _expr()        {}
func (*Literal) _expr()                  {}
func (*ThisExpression) _expr()           {}
func (*Super) _expr()                    {}
func (*ArrayExpression) _expr()          {}
func (*ObjectExpression) _expr()         {}
func (*FunctionExpression) _expr()       {}
func (*ArrowFunctionExpression) _expr()  {}
func (*ClassExpression) _expr()          {}
func (*UnaryExpression) _expr()          {}
func (*UpdateExpression) _expr()         {}
func (*BinaryExpression) _expr()         {}
func (*LogicalExpression) _expr()        {}
func (*AssignmentExpression) _expr()     {}
func (*ConditionalExpression) _expr()    {}
func (*CallExpression) _expr()           {}
func (*NewExpression) _expr()            {}
func (*MemberExpression) _expr()         {}
func (*ChainExpression) _expr()          {}
func (*SequenceExpression) _expr()       {}
func (*YieldExpression) _expr()          {}
func (*AwaitExpression) _expr()          {}
func (*TemplateLiteral) _expr()          {}
func (*TaggedTemplateExpression) _expr() {}
func (*MetaProperty) _expr()             {}
func (*ImportExpression) _expr()         {}
func (*ParenthesizedExpression) _expr()  {}
func (*SpreadElement) _expr()            {}

func (*Identifier) _pattern()              {}
func (*MemberExpression) _pattern()        {}
func (*ObjectPattern) _pattern()           {}
func (*ArrayPattern) _pattern()            {}
func (*RestElement) _pattern()             {}
func (*AssignmentPattern) _pattern()       {}
func (*ParenthesizedExpression) _pattern() {}

func (*ExpressionStatement) _stmt()      {}
func (*BlockStatement) _stmt()           {}
func (*EmptyStatement) _stmt()           {}
func (*DebuggerStatement) _stmt()        {}
func (*WithStatement) _stmt()            {}
func (*ReturnStatement) _stmt()          {}
func (*LabeledStatement) _stmt()         {}
func (*BreakStatement) _stmt()           {}
func (*ContinueStatement) _stmt()        {}
func (*IfStatement) _stmt()              {}
func (*SwitchStatement) _stmt()          {}
func (*ThrowStatement) _stmt()           {}
func (*TryStatement) _stmt()             {}
func (*WhileStatement) _stmt()           {}
func (*DoWhileStatement) _stmt()         {}
func (*ForStatement) _stmt()             {}
func (*ForInStatement) _stmt()           {}
func (*ForOfStatement) _stmt()           {}
func (*FunctionDeclaration) _stmt()      {}
func (*VariableDeclaration) _stmt()      {}
func (*ClassDeclaration) _stmt()         {}
func (*ImportDeclaration) _stmt()        {}
func (*ExportNamedDeclaration) _stmt()   {}
func (*ExportDefaultDeclaration) _stmt() {}
func (*ExportAllDeclaration) _stmt()     {}

func (*ImportDeclaration) _moduleDecl()        {}
func (*ExportNamedDeclaration) _moduleDecl()   {}
func (*ExportDefaultDeclaration) _moduleDecl() {}
func (*ExportAllDeclaration) _moduleDecl()     {}

func (*Property) _objectMember()      {}
func (*SpreadElement) _objectMember() {}

func (*AssignmentProperty) _patternMember() {}
func (*RestElement) _patternMember()        {}

func (*MethodDefinition) _classElement()   {}
func (*PropertyDefinition) _classElement() {}
func (*StaticBlock) _classElement()        {}

func (*ImportSpecifier) _importSpec()          {}
func (*ImportDefaultSpecifier) _importSpec()   {}
func (*ImportNamespaceSpecifier) _importSpec() {}

func (*Identifier) _moduleName() {}
func (*Literal) _moduleName()    {}
