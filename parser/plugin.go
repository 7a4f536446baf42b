package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

// A Plugin installs hooks on a Dialect.
type Plugin func(d *Dialect)

// StatementHook may claim the statement starting at the current token. It
// must not consume tokens when it returns false.
type StatementHook func(p *Parser) (ast.Stmt, bool)

// ExprAtomHook may claim the atomic expression starting at the current
// token. It must not consume tokens when it returns false.
type ExprAtomHook func(p *Parser) (ast.Expr, bool)

// Dialect is the parser extended by a set of plugins. Hooks run in the
// order they were installed and the first one to claim the input wins.
type Dialect struct {
	statementHooks []StatementHook
	exprAtomHooks  []ExprAtomHook
}

// Extend returns a Dialect with every plugin applied in order.
func Extend(plugins ...Plugin) *Dialect {
	d := &Dialect{}
	for _, plugin := range plugins {
		plugin(d)
	}
	return d
}

func (d *Dialect) HookStatement(h StatementHook) { d.statementHooks = append(d.statementHooks, h) }
func (d *Dialect) HookExprAtom(h ExprAtomHook)   { d.exprAtomHooks = append(d.exprAtomHooks, h) }

// Parse parses a complete program in the dialect.
func (d *Dialect) Parse(src string, opts Options) (*ast.Program, error) {
	p := newParser(opts, src, 0)
	p.dialect = d
	return p.parse()
}

// ParseExpressionAt parses a single expression in the dialect.
func (d *Dialect) ParseExpressionAt(src string, offset int, opts Options) (ast.Expr, error) {
	if err := checkOffset(src, offset); err != nil {
		return nil, err
	}
	p := newParser(opts, src, offset)
	p.dialect = d
	return p.parseExpressionAt()
}

// Tokenize returns a Tokenizer over src. Hooks only extend the grammar, so
// the token stream is the one Tokenize produces.
func (d *Dialect) Tokenize(src string, opts Options) *Tokenizer {
	t := Tokenize(src, opts)
	t.p.dialect = d
	return t
}

func (d *Dialect) statement(p *parser) (ast.Stmt, bool) {
	for _, h := range d.statementHooks {
		if stmt, ok := h(&Parser{p: p}); ok {
			return stmt, true
		}
	}
	return nil, false
}

func (d *Dialect) exprAtom(p *parser) (ast.Expr, bool) {
	for _, h := range d.exprAtomHooks {
		if expr, ok := h(&Parser{p: p}); ok {
			return expr, true
		}
	}
	return nil, false
}

// Parser is the view of a running parse given to hooks. Its methods may
// abort the parse the same way the built-in grammar does, so it must not
// be used after the hook returns.
type Parser struct {
	p *parser
}

// Marker is the start of a node being built by a hook.
type Marker struct {
	m marker
}

func (c *Parser) Token() Token                  { return c.p.currentToken() }
func (c *Parser) Type() token.Token             { return c.p.typ }
func (c *Parser) Input() string                 { return c.p.input }
func (c *Parser) Strict() bool                  { return c.p.strict }
func (c *Parser) Next()                         { c.p.next(false) }
func (c *Parser) Eat(t token.Token) bool        { return c.p.eat(t) }
func (c *Parser) Expect(t token.Token)          { c.p.expect(t) }
func (c *Parser) IsContextual(name string) bool { return c.p.isContextual(name) }
func (c *Parser) Semicolon()                    { c.p.semicolon() }

// Raise aborts the parse with a syntax error at pos.
func (c *Parser) Raise(pos int, msg string) { c.p.raise(pos, msg) }

// Unexpected aborts the parse at the current token.
func (c *Parser) Unexpected() { c.p.unexpected() }

func (c *Parser) ParseExpression() ast.Expr     { return c.p.parseExpression(false, nil) }
func (c *Parser) ParseMaybeAssign() ast.Expr    { return c.p.parseMaybeAssign(false, nil) }
func (c *Parser) ParseStatement() ast.Stmt      { return c.p.parseStatement("", false, nil) }
func (c *Parser) ParseIdent() *ast.Identifier   { return c.p.parseIdent(false) }
func (c *Parser) ParseBindingAtom() ast.Pattern { return c.p.parseBindingAtom() }

// StartNode marks the start of the current token.
func (c *Parser) StartNode() Marker { return Marker{c.p.startNode()} }

// FinishNode sets the position of n from m to the end of the last
// consumed token.
func (c *Parser) FinishNode(n ast.Node, m Marker) { c.p.finishNode(n, m.m) }
