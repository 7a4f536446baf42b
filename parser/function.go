package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

// parseFunction flags.
const (
	funcStatement = 1 << iota
	// funcHangingStatement is a declaration in a single-statement
	// position, such as the body of an if.
	funcHangingStatement
	funcNullableID
)

// function collects what the three function node types share while one
// is being parsed.
type function struct {
	start      marker
	id         *ast.Identifier
	generator  bool
	async      bool
	expression bool
	params     []ast.Pattern
	body       ast.Node
}

// parseFunction parses a function declaration or expression after the
// function keyword. It returns a *ast.FunctionDeclaration when statement
// holds funcStatement.
func (p *parser) parseFunction(start marker, statement int, isAsync, forInit bool) ast.Node {
	fn := &function{start: start}
	if p.ecmaVersion >= 9 || p.ecmaVersion >= 6 && !isAsync {
		if p.typ == token.Multiply && statement&funcHangingStatement != 0 {
			// Generator declarations are not allowed in a hanging position.
			p.unexpected()
		}
		fn.generator = p.eat(token.Multiply)
	}
	if p.ecmaVersion >= 8 {
		fn.async = isAsync
	}

	if statement&funcStatement != 0 && (statement&funcNullableID == 0 || p.typ == token.Name) {
		fn.id = p.parseIdent(false)
		if statement&funcHangingStatement == 0 {
			// Sloppy-mode plain functions may be redeclared like vars.
			kind := bindFunction
			if p.strict || fn.generator || fn.async {
				kind = bindLexical
				if p.treatFunctionsAsVar() {
					kind = bindVar
				}
			}
			p.checkLValSimple(fn.id, kind, nil)
		}
	}

	oldYieldPos, oldAwaitPos, oldAwaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos
	p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0
	p.enterScope(functionFlags(fn.async, fn.generator))

	// An expression's own name is bound inside its scope.
	if statement&funcStatement == 0 && p.typ == token.Name {
		fn.id = p.parseIdent(false)
	}

	p.parseFunctionParams(fn)
	p.parseFunctionBody(fn, false, false, forInit)

	p.yieldPos, p.awaitPos, p.awaitIdentPos = oldYieldPos, oldAwaitPos, oldAwaitIdentPos

	body := fn.body.(*ast.BlockStatement)
	if statement&funcStatement != 0 {
		n := &ast.FunctionDeclaration{ID: fn.id, Generator: fn.generator, Async: fn.async, Params: fn.params, Body: body}
		p.finishNode(n, start)
		return n
	}
	n := &ast.FunctionExpression{ID: fn.id, Generator: fn.generator, Async: fn.async, Params: fn.params, Body: body}
	p.finishNode(n, start)
	return n
}

func (p *parser) parseFunctionParams(fn *function) {
	p.expect(token.LeftParenthesis)
	fn.params = p.parseBindingList(token.RightParenthesis, false, p.ecmaVersion >= 8)
	p.checkYieldAwaitInDefaultParams()
}

// parseMethod parses the parameters and body of an object or class method.
// The node starts at the opening parenthesis.
func (p *parser) parseMethod(isGenerator, isAsync, allowDirectSuper bool) *ast.FunctionExpression {
	start := p.startNode()
	oldYieldPos, oldAwaitPos, oldAwaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos

	fn := &function{start: start}
	if p.ecmaVersion >= 6 {
		fn.generator = isGenerator
	}
	if p.ecmaVersion >= 8 {
		fn.async = isAsync
	}

	p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0
	flags := functionFlags(isAsync, fn.generator) | scopeSuper
	if allowDirectSuper {
		flags |= scopeDirectSuper
	}
	p.enterScope(flags)

	p.expect(token.LeftParenthesis)
	fn.params = p.parseBindingList(token.RightParenthesis, false, p.ecmaVersion >= 8)
	p.checkYieldAwaitInDefaultParams()
	p.parseFunctionBody(fn, false, true, false)

	p.yieldPos, p.awaitPos, p.awaitIdentPos = oldYieldPos, oldAwaitPos, oldAwaitIdentPos
	n := &ast.FunctionExpression{Generator: fn.generator, Async: fn.async, Params: fn.params, Body: fn.body.(*ast.BlockStatement)}
	p.finishNode(n, start)
	return n
}

// parseArrowExpression parses the body of an arrow function whose
// parameter list was first read as expressions.
func (p *parser) parseArrowExpression(start marker, params []ast.Node, isAsync, forInit bool) *ast.ArrowFunctionExpression {
	oldYieldPos, oldAwaitPos, oldAwaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos

	p.enterScope(functionFlags(isAsync, false) | scopeArrow)
	fn := &function{start: start}
	if p.ecmaVersion >= 8 {
		fn.async = isAsync
	}

	p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0

	fn.params = p.toAssignableList(params, true)
	p.parseFunctionBody(fn, true, false, forInit)

	p.yieldPos, p.awaitPos, p.awaitIdentPos = oldYieldPos, oldAwaitPos, oldAwaitIdentPos
	n := &ast.ArrowFunctionExpression{Expression: fn.expression, Async: fn.async, Params: fn.params, Body: fn.body}
	p.finishNode(n, start)
	return n
}

// parseFunctionBody parses a function body and leaves the function scope
// entered by the caller. A "use strict" directive applies retroactively
// to the name and parameters.
func (p *parser) parseFunctionBody(fn *function, isArrow, isMethod, forInit bool) {
	if isArrow && p.typ != token.LeftBrace {
		fn.body = p.parseMaybeAssign(forInit, nil)
		fn.expression = true
		p.checkParams(fn, false)
		p.exitScope()
		return
	}

	oldStrict := p.strict
	simple := isSimpleParamList(fn.params)
	nonSimple := p.ecmaVersion >= 7 && !simple
	useStrict := false
	if !oldStrict || nonSimple {
		useStrict = p.strictDirective(p.end)
		if useStrict && nonSimple {
			p.raiseRecoverable(fn.start.pos, "Illegal 'use strict' directive in function with non-simple parameter list")
		}
	}

	oldLabels := p.labels
	p.labels = nil
	if useStrict {
		p.strict = true
	}

	// Duplicate parameters are only allowed in sloppy functions with a
	// simple parameter list.
	p.checkParams(fn, !oldStrict && !useStrict && !isArrow && !isMethod && simple)
	if p.strict && fn.id != nil {
		p.checkLValSimple(fn.id, bindOutside, nil)
	}
	body := p.parseBlock(false, p.startNode(), useStrict && !oldStrict)
	fn.body = body
	fn.expression = false
	p.adaptDirectivePrologue(body.Body)
	p.labels = oldLabels
	p.exitScope()
}

func isSimpleParamList(params []ast.Pattern) bool {
	for _, param := range params {
		if _, ok := param.(*ast.Identifier); !ok {
			return false
		}
	}
	return true
}

// checkParams declares the parameters in the function scope.
func (p *parser) checkParams(fn *function, allowDuplicates bool) {
	var clashes map[string]bool
	if !allowDuplicates {
		clashes = map[string]bool{}
	}
	for _, param := range fn.params {
		p.checkLValInnerPattern(param, bindVar, clashes)
	}
}
