package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/charclass"
	"github.com/t14raptor/go-estree/token"
)

type labelKind int

const (
	labelPlain labelKind = iota
	labelLoop
	labelSwitch
)

type label struct {
	name           string
	kind           labelKind
	statementStart int
}

var (
	loopLabel   = label{kind: labelLoop}
	switchLabel = label{kind: labelSwitch}
)

// isLet reports whether the `let` at the current position starts a
// declaration. context is non-empty for statement positions that only
// accept a single statement.
func (p *parser) isLet(context string) bool {
	if p.ecmaVersion < 6 || !p.isContextual("let") {
		return false
	}
	next := p.skipWhiteSpace(p.pos)
	nextCh := p.codePointAt(next)
	if nextCh == '[' || nextCh == '\\' {
		return true
	}
	if context != "" {
		return false
	}
	if nextCh == '{' {
		return true
	}
	if charclass.IsIdentifierStart(nextCh, true) {
		pos := next
		for pos < len(p.input) {
			r := p.codePointAt(pos)
			if r == '\\' {
				return true
			}
			if !charclass.IsIdentifierChar(r, true) {
				break
			}
			_, size := utf8.DecodeRuneInString(p.input[pos:])
			pos += size
		}
		ident := p.input[next:pos]
		if ident != "in" && ident != "instanceof" {
			return true
		}
	}
	return false
}

// isAsyncFunction reports whether the current `async` is followed by
// `function` on the same line.
func (p *parser) isAsyncFunction() bool {
	if p.ecmaVersion < 8 || !p.isContextual("async") {
		return false
	}
	next := p.skipWhiteSpace(p.pos)
	if p.hasLineBreak(p.pos, next) || !strings.HasPrefix(p.input[next:], "function") {
		return false
	}
	after := p.codePointAt(next + 8)
	return after < 0 || !charclass.IsIdentifierChar(after, true)
}

// parseStatement parses a single statement. context names the enclosing
// construct ("if", "label", "do", ...) when only a substatement is
// allowed there.
func (p *parser) parseStatement(context string, topLevel bool, exports map[string]bool) ast.Stmt {
	if p.dialect != nil {
		if stmt, ok := p.dialect.statement(p); ok {
			return stmt
		}
	}

	starttype := p.typ
	start := p.startNode()
	kind := ""
	if p.isLet(context) {
		starttype = token.Var
		kind = "let"
	}

	switch starttype {
	case token.Break, token.Continue:
		return p.parseBreakContinueStatement(start, starttype == token.Break)
	case token.Debugger:
		p.next(false)
		p.semicolon()
		n := &ast.DebuggerStatement{}
		p.finishNode(n, start)
		return n
	case token.Do:
		return p.parseDoStatement(start)
	case token.For:
		return p.parseForStatement(start)
	case token.Function:
		if context != "" && (p.strict || context != "if" && context != "label") && p.ecmaVersion >= 6 {
			p.unexpected()
		}
		return p.parseFunctionStatement(start, false, context == "")
	case token.Class:
		if context != "" {
			p.unexpected()
		}
		return p.parseClass(start, true, false).(ast.Stmt)
	case token.If:
		return p.parseIfStatement(start)
	case token.Return:
		return p.parseReturnStatement(start)
	case token.Switch:
		return p.parseSwitchStatement(start)
	case token.Throw:
		return p.parseThrowStatement(start)
	case token.Try:
		return p.parseTryStatement(start)
	case token.Const, token.Var:
		if kind == "" {
			kind = p.str()
		}
		if context != "" && kind != "var" {
			p.unexpected()
		}
		return p.parseVarStatement(start, kind)
	case token.While:
		return p.parseWhileStatement(start)
	case token.With:
		return p.parseWithStatement(start)
	case token.LeftBrace:
		return p.parseBlock(true, start, false)
	case token.Semicolon:
		p.next(false)
		n := &ast.EmptyStatement{}
		p.finishNode(n, start)
		return n
	case token.Export, token.Import:
		if p.ecmaVersion > 10 && starttype == token.Import {
			next := p.skipWhiteSpace(p.pos)
			if c := p.charAt(next); c == '(' || c == '.' {
				return p.parseExpressionStatement(start, p.parseExpression(false, nil))
			}
		}
		if !p.opts.AllowImportExportEverywhere {
			if !topLevel {
				p.raise(p.start, "'import' and 'export' may only appear at the top level")
			}
			if !p.inModule {
				p.raise(p.start, "'import' and 'export' may appear only with 'sourceType: module'")
			}
		}
		if starttype == token.Import {
			return p.parseImport(start)
		}
		return p.parseExport(start, exports)
	}

	if p.isAsyncFunction() {
		if context != "" {
			p.unexpected()
		}
		p.next(false)
		return p.parseFunctionStatement(start, true, context == "")
	}

	maybeName := p.str()
	expr := p.parseExpression(false, nil)
	if id, ok := expr.(*ast.Identifier); ok && starttype == token.Name && p.eat(token.Colon) {
		return p.parseLabeledStatement(start, maybeName, id, context)
	}
	return p.parseExpressionStatement(start, expr)
}

func (p *parser) parseBreakContinueStatement(start marker, isBreak bool) ast.Stmt {
	p.next(false)
	var lbl *ast.Identifier
	if !p.eat(token.Semicolon) && !p.insertSemicolon() {
		if p.typ != token.Name {
			p.unexpected()
		}
		lbl = p.parseIdent(false)
		p.semicolon()
	}

	// There must be a destination to break or continue to.
	i := 0
	for ; i < len(p.labels); i++ {
		lab := p.labels[i]
		if lbl == nil || lab.name == lbl.Name {
			if lab.kind != labelPlain && (isBreak || lab.kind == labelLoop) {
				break
			}
			if lbl != nil && isBreak {
				break
			}
		}
	}
	keyword := "continue"
	if isBreak {
		keyword = "break"
	}
	if i == len(p.labels) {
		p.raise(start.pos, "Unsyntactic "+keyword)
	}

	if isBreak {
		n := &ast.BreakStatement{Label: lbl}
		p.finishNode(n, start)
		return n
	}
	n := &ast.ContinueStatement{Label: lbl}
	p.finishNode(n, start)
	return n
}

func (p *parser) parseDoStatement(start marker) ast.Stmt {
	p.next(false)
	p.labels = append(p.labels, loopLabel)
	n := &ast.DoWhileStatement{}
	n.Body = p.parseStatement("do", false, nil)
	p.labels = p.labels[:len(p.labels)-1]
	p.expect(token.While)
	n.Test = p.parseParenExpression()
	if p.ecmaVersion >= 6 {
		p.eat(token.Semicolon)
	} else {
		p.semicolon()
	}
	p.finishNode(n, start)
	return n
}

// parseForStatement disambiguates the for, for-in and for-of forms once
// the init part has been read.
func (p *parser) parseForStatement(start marker) ast.Stmt {
	p.next(false)
	awaitAt := -1
	if p.ecmaVersion >= 9 && p.canAwait() && p.eatContextual("await") {
		awaitAt = p.lastTokStart
	}
	p.labels = append(p.labels, loopLabel)
	p.enterScope(0)
	p.expect(token.LeftParenthesis)
	if p.typ == token.Semicolon {
		if awaitAt > -1 {
			p.unexpectedAt(awaitAt)
		}
		return p.parseFor(start, nil)
	}

	isLet := p.isLet("")
	if p.typ == token.Var || p.typ == token.Const || isLet {
		initStart := p.startNode()
		kind := "let"
		if !isLet {
			kind = p.str()
		}
		p.next(false)
		init := p.parseVar(true, kind)
		p.finishNode(init, initStart)
		if (p.typ == token.In || p.ecmaVersion >= 6 && p.isContextual("of")) && len(init.Declarations) == 1 {
			await := false
			if p.ecmaVersion >= 9 {
				if p.typ == token.In {
					if awaitAt > -1 {
						p.unexpectedAt(awaitAt)
					}
				} else {
					await = awaitAt > -1
				}
			}
			return p.parseForIn(start, init, await)
		}
		if awaitAt > -1 {
			p.unexpectedAt(awaitAt)
		}
		return p.parseFor(start, init)
	}

	startsWithLet := p.isContextual("let")
	containsEsc := p.containsEsc
	errs := newDestructuringErrors()
	initPos := p.start
	var init ast.Expr
	if awaitAt > -1 {
		init = p.parseExprSubscripts(errs, true)
	} else {
		init = p.parseExpression(true, errs)
	}
	isForOf := p.ecmaVersion >= 6 && p.isContextual("of")
	if p.typ == token.In || isForOf {
		await := false
		if awaitAt > -1 {
			if p.typ == token.In {
				p.unexpectedAt(awaitAt)
			}
			await = true
		} else if isForOf && p.ecmaVersion >= 8 {
			if id, ok := init.(*ast.Identifier); ok && int(id.Start) == initPos && !containsEsc && id.Name == "async" {
				p.unexpected()
			}
		}
		if startsWithLet && isForOf {
			p.raise(int(init.Idx0()), "The left-hand side of a for-of loop may not start with 'let'.")
		}
		left := p.toAssignable(init, false, errs)
		p.checkLValPattern(left, bindNone, nil)
		return p.parseForIn(start, left, await)
	}
	p.checkExpressionErrors(errs, true)
	if awaitAt > -1 {
		p.unexpectedAt(awaitAt)
	}
	return p.parseFor(start, init)
}

// parseFor parses the rest of a plain for loop after its init.
func (p *parser) parseFor(start marker, init ast.Node) ast.Stmt {
	n := &ast.ForStatement{Init: init}
	p.expect(token.Semicolon)
	if p.typ != token.Semicolon {
		n.Test = p.parseExpression(false, nil)
	}
	p.expect(token.Semicolon)
	if p.typ != token.RightParenthesis {
		n.Update = p.parseExpression(false, nil)
	}
	p.expect(token.RightParenthesis)
	n.Body = p.parseStatement("for", false, nil)
	p.exitScope()
	p.labels = p.labels[:len(p.labels)-1]
	p.finishNode(n, start)
	return n
}

// parseForIn parses the rest of a for-in or for-of loop.
func (p *parser) parseForIn(start marker, init ast.Node, await bool) ast.Stmt {
	isForIn := p.typ == token.In
	p.next(false)

	if decl, ok := init.(*ast.VariableDeclaration); ok && decl.Declarations[0].Init != nil {
		_, simple := decl.Declarations[0].ID.(*ast.Identifier)
		if !isForIn || p.ecmaVersion < 8 || p.strict || decl.Kind != "var" || !simple {
			kind := "for-of"
			if isForIn {
				kind = "for-in"
			}
			p.raise(int(init.Idx0()), kind+" loop variable declaration may not have an initializer")
		}
	}

	var right ast.Expr
	if isForIn {
		right = p.parseExpression(false, nil)
	} else {
		right = p.parseMaybeAssign(false, nil)
	}
	p.expect(token.RightParenthesis)
	body := p.parseStatement("for", false, nil)
	p.exitScope()
	p.labels = p.labels[:len(p.labels)-1]

	if isForIn {
		n := &ast.ForInStatement{Left: init, Right: right, Body: body}
		p.finishNode(n, start)
		return n
	}
	n := &ast.ForOfStatement{Await: await, Left: init, Right: right, Body: body}
	p.finishNode(n, start)
	return n
}

func (p *parser) parseFunctionStatement(start marker, isAsync, declarationPosition bool) ast.Stmt {
	p.next(false)
	flags := funcStatement
	if !declarationPosition {
		flags |= funcHangingStatement
	}
	return p.parseFunction(start, flags, isAsync, false).(ast.Stmt)
}

func (p *parser) parseIfStatement(start marker) ast.Stmt {
	p.next(false)
	n := &ast.IfStatement{}
	n.Test = p.parseParenExpression()
	n.Consequent = p.parseStatement("if", false, nil)
	if p.eat(token.Else) {
		n.Alternate = p.parseStatement("if", false, nil)
	}
	p.finishNode(n, start)
	return n
}

func (p *parser) parseReturnStatement(start marker) ast.Stmt {
	if !p.inFunction() && !p.opts.AllowReturnOutsideFunction {
		p.raise(p.start, "'return' outside of function")
	}
	p.next(false)
	n := &ast.ReturnStatement{}
	if !p.eat(token.Semicolon) && !p.insertSemicolon() {
		n.Argument = p.parseExpression(false, nil)
		p.semicolon()
	}
	p.finishNode(n, start)
	return n
}

func (p *parser) parseSwitchStatement(start marker) ast.Stmt {
	p.next(false)
	n := &ast.SwitchStatement{Cases: []*ast.SwitchCase{}}
	n.Discriminant = p.parseParenExpression()
	p.expect(token.LeftBrace)
	p.labels = append(p.labels, switchLabel)
	p.enterScope(0)

	var cur *ast.SwitchCase
	var curStart marker
	sawDefault := false
	for p.typ != token.RightBrace {
		if p.typ == token.Case || p.typ == token.Default {
			isCase := p.typ == token.Case
			if cur != nil {
				p.finishNode(cur, curStart)
			}
			cur = &ast.SwitchCase{Consequent: []ast.Stmt{}}
			curStart = p.startNode()
			n.Cases = append(n.Cases, cur)
			p.next(false)
			if isCase {
				cur.Test = p.parseExpression(false, nil)
			} else {
				if sawDefault {
					p.raiseRecoverable(p.lastTokStart, "Multiple default clauses")
				}
				sawDefault = true
			}
			p.expect(token.Colon)
		} else {
			if cur == nil {
				p.unexpected()
			}
			cur.Consequent = append(cur.Consequent, p.parseStatement("", false, nil))
		}
	}
	p.exitScope()
	if cur != nil {
		p.finishNode(cur, curStart)
	}
	p.next(false)
	p.labels = p.labels[:len(p.labels)-1]
	p.finishNode(n, start)
	return n
}

func (p *parser) parseThrowStatement(start marker) ast.Stmt {
	p.next(false)
	if p.hasLineBreak(p.lastTokEnd, p.start) {
		p.raise(p.lastTokEnd, "Illegal newline after throw")
	}
	n := &ast.ThrowStatement{}
	n.Argument = p.parseExpression(false, nil)
	p.semicolon()
	p.finishNode(n, start)
	return n
}

func (p *parser) parseCatchClauseParam() ast.Pattern {
	param := p.parseBindingAtom()
	_, simple := param.(*ast.Identifier)
	if simple {
		p.enterScope(scopeSimpleCatch)
		p.checkLValPattern(param, bindSimpleCatch, nil)
	} else {
		p.enterScope(0)
		p.checkLValPattern(param, bindLexical, nil)
	}
	p.expect(token.RightParenthesis)
	return param
}

func (p *parser) parseTryStatement(start marker) ast.Stmt {
	p.next(false)
	n := &ast.TryStatement{}
	n.Block = p.parseBlock(true, p.startNode(), false)
	if p.typ == token.Catch {
		clauseStart := p.startNode()
		clause := &ast.CatchClause{}
		p.next(false)
		if p.eat(token.LeftParenthesis) {
			clause.Param = p.parseCatchClauseParam()
		} else {
			if p.ecmaVersion < 10 {
				p.unexpected()
			}
			p.enterScope(0)
		}
		clause.Body = p.parseBlock(false, p.startNode(), false)
		p.exitScope()
		p.finishNode(clause, clauseStart)
		n.Handler = clause
	}
	if p.eat(token.Finally) {
		n.Finalizer = p.parseBlock(true, p.startNode(), false)
	}
	if n.Handler == nil && n.Finalizer == nil {
		p.raise(start.pos, "Missing catch or finally clause")
	}
	p.finishNode(n, start)
	return n
}

func (p *parser) parseVarStatement(start marker, kind string) ast.Stmt {
	p.next(false)
	n := p.parseVar(false, kind)
	p.semicolon()
	p.finishNode(n, start)
	return n
}

func (p *parser) parseWhileStatement(start marker) ast.Stmt {
	p.next(false)
	n := &ast.WhileStatement{}
	n.Test = p.parseParenExpression()
	p.labels = append(p.labels, loopLabel)
	n.Body = p.parseStatement("while", false, nil)
	p.labels = p.labels[:len(p.labels)-1]
	p.finishNode(n, start)
	return n
}

func (p *parser) parseWithStatement(start marker) ast.Stmt {
	if p.strict {
		p.raise(p.start, "'with' in strict mode")
	}
	p.next(false)
	n := &ast.WithStatement{}
	n.Object = p.parseParenExpression()
	n.Body = p.parseStatement("with", false, nil)
	p.finishNode(n, start)
	return n
}

func (p *parser) parseLabeledStatement(start marker, maybeName string, expr *ast.Identifier, context string) ast.Stmt {
	for _, l := range p.labels {
		if l.name == maybeName {
			p.raise(int(expr.Start), "Label '"+maybeName+"' is already declared")
		}
	}
	kind := labelPlain
	if p.typ.IsLoop() {
		kind = labelLoop
	} else if p.typ == token.Switch {
		kind = labelSwitch
	}
	for i := len(p.labels) - 1; i >= 0; i-- {
		l := &p.labels[i]
		if l.statementStart != start.pos {
			break
		}
		// Labels stacked on the same statement share its kind.
		l.statementStart = p.start
		l.kind = kind
	}
	p.labels = append(p.labels, label{name: maybeName, kind: kind, statementStart: p.start})
	switch {
	case context == "":
		context = "label"
	case !strings.Contains(context, "label"):
		context += "label"
	}
	n := &ast.LabeledStatement{Label: expr}
	n.Body = p.parseStatement(context, false, nil)
	p.labels = p.labels[:len(p.labels)-1]
	p.finishNode(n, start)
	return n
}

func (p *parser) parseExpressionStatement(start marker, expr ast.Expr) ast.Stmt {
	n := &ast.ExpressionStatement{Expression: expr}
	p.semicolon()
	p.finishNode(n, start)
	return n
}

// parseBlock parses a braced statement list. exitStrict leaves strict mode
// before the closing brace is consumed.
func (p *parser) parseBlock(createNewLexicalScope bool, start marker, exitStrict bool) *ast.BlockStatement {
	n := &ast.BlockStatement{Body: []ast.Stmt{}}
	p.expect(token.LeftBrace)
	if createNewLexicalScope {
		p.enterScope(0)
	}
	for p.typ != token.RightBrace {
		n.Body = append(n.Body, p.parseStatement("", false, nil))
	}
	if exitStrict {
		p.strict = false
	}
	p.next(false)
	if createNewLexicalScope {
		p.exitScope()
	}
	p.finishNode(n, start)
	return n
}

// parseVar parses a list of declarators. The caller finishes the node.
func (p *parser) parseVar(isFor bool, kind string) *ast.VariableDeclaration {
	n := &ast.VariableDeclaration{Kind: kind}
	for {
		declStart := p.startNode()
		decl := &ast.VariableDeclarator{}
		decl.ID = p.parseVarID(kind)
		_, simple := decl.ID.(*ast.Identifier)
		switch {
		case p.eat(token.Assign):
			decl.Init = p.parseMaybeAssign(isFor, nil)
		case kind == "const" && !(p.typ == token.In || p.ecmaVersion >= 6 && p.isContextual("of")):
			p.unexpected()
		case !simple && !(isFor && (p.typ == token.In || p.isContextual("of"))):
			p.raise(p.lastTokEnd, "Complex binding patterns require an initialization value")
		}
		p.finishNode(decl, declStart)
		n.Declarations = append(n.Declarations, decl)
		if !p.eat(token.Comma) {
			break
		}
	}
	return n
}

func (p *parser) parseVarID(kind string) ast.Pattern {
	id := p.parseBindingAtom()
	if kind == "var" {
		p.checkLValPattern(id, bindVar, nil)
	} else {
		p.checkLValPattern(id, bindLexical, nil)
	}
	return id
}

func (p *parser) parseParenExpression() ast.Expr {
	p.expect(token.LeftParenthesis)
	val := p.parseExpression(false, nil)
	p.expect(token.RightParenthesis)
	return val
}

// adaptDirectivePrologue marks the leading string literal statements as
// directives.
func (p *parser) adaptDirectivePrologue(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		es, ok := stmt.(*ast.ExpressionStatement)
		if !ok || !p.isDirectiveCandidate(es) {
			return
		}
		raw := es.Expression.(*ast.Literal).Raw
		directive := raw[1 : len(raw)-1]
		es.Directive = &directive
	}
}

func (p *parser) isDirectiveCandidate(es *ast.ExpressionStatement) bool {
	lit, ok := es.Expression.(*ast.Literal)
	if !ok || p.ecmaVersion < 5 {
		return false
	}
	if _, isString := lit.Value.(string); !isString || lit.Regex != nil {
		return false
	}
	// Parenthesized strings are not directives.
	c := p.charAt(int(es.Start))
	return c == '"' || c == '\''
}
