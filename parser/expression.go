package parser

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

// parseExpression parses a comma separated expression. forInit forbids a
// bare `in` operator, as in the head of a for statement.
func (p *parser) parseExpression(forInit bool, errs *destructuringErrors) ast.Expr {
	start := p.startNode()
	expr := p.parseMaybeAssign(forInit, errs)
	if p.typ != token.Comma {
		return expr
	}
	n := &ast.SequenceExpression{Expressions: []ast.Expr{expr}}
	for p.eat(token.Comma) {
		n.Expressions = append(n.Expressions, p.parseMaybeAssign(forInit, errs))
	}
	p.finishNode(n, start)
	return n
}

// parseMaybeAssign parses an assignment expression. The left side is only
// converted to a pattern once an assignment operator shows up.
func (p *parser) parseMaybeAssign(forInit bool, errs *destructuringErrors) ast.Expr {
	if p.isContextual("yield") {
		if p.inGenerator() {
			return p.parseYield(forInit)
		}
		// `yield` is an identifier here; a following slash is a division.
		p.exprAllowed = false
	}

	ownErrors := false
	oldParenAssign, oldTrailingComma, oldDoubleProto := -1, -1, -1
	if errs != nil {
		oldParenAssign = errs.parenthesizedAssign
		oldTrailingComma = errs.trailingComma
		oldDoubleProto = errs.doubleProto
		errs.parenthesizedAssign, errs.trailingComma = -1, -1
	} else {
		errs = newDestructuringErrors()
		ownErrors = true
	}

	start := p.startNode()
	if p.typ == token.LeftParenthesis || p.typ == token.Name {
		p.potentialArrowAt = p.start
	}
	left := p.parseMaybeConditional(forInit, errs)
	if p.typ.IsAssign() {
		op := p.typ
		var target ast.Pattern
		if op == token.Assign {
			target = p.toAssignable(left, false, errs)
		}
		if !ownErrors {
			errs.parenthesizedAssign, errs.trailingComma, errs.doubleProto = -1, -1, -1
		}
		if errs.shorthandAssign >= int(left.Idx0()) {
			// The shorthand default was used correctly.
			errs.shorthandAssign = -1
		}
		if op == token.Assign {
			p.checkLValPattern(target, bindNone, nil)
		} else {
			p.checkLValSimple(left, bindNone, nil)
			target = left.(ast.Pattern)
		}
		p.next(false)
		n := &ast.AssignmentExpression{Operator: op, Left: target}
		n.Right = p.parseMaybeAssign(forInit, nil)
		if oldDoubleProto > -1 {
			errs.doubleProto = oldDoubleProto
		}
		p.finishNode(n, start)
		return n
	}
	if ownErrors {
		p.checkExpressionErrors(errs, true)
	}
	if oldParenAssign > -1 {
		errs.parenthesizedAssign = oldParenAssign
	}
	if oldTrailingComma > -1 {
		errs.trailingComma = oldTrailingComma
	}
	return left
}

func (p *parser) parseMaybeConditional(forInit bool, errs *destructuringErrors) ast.Expr {
	start := p.startNode()
	expr := p.parseExprOps(forInit, errs)
	if p.checkExpressionErrors(errs, false) {
		return expr
	}
	if !p.eat(token.QuestionMark) {
		return expr
	}
	n := &ast.ConditionalExpression{Test: expr}
	n.Consequent = p.parseMaybeAssign(false, nil)
	p.expect(token.Colon)
	n.Alternate = p.parseMaybeAssign(forInit, nil)
	p.finishNode(n, start)
	return n
}

func (p *parser) parseExprOps(forInit bool, errs *destructuringErrors) ast.Expr {
	start := p.startNode()
	expr := p.parseMaybeUnary(errs, false, false, forInit)
	if p.checkExpressionErrors(errs, false) {
		return expr
	}
	if _, arrow := expr.(*ast.ArrowFunctionExpression); arrow && int(expr.Idx0()) == start.pos {
		return expr
	}
	return p.parseExprOp(expr, start, -1, forInit)
}

// parseExprOp folds binary operators binding tighter than minPrec onto
// left by precedence climbing.
func (p *parser) parseExprOp(left ast.Expr, leftStart marker, minPrec int, forInit bool) ast.Expr {
	prec := p.typ.Precedence()
	if prec == 0 || p.typ == token.Exponent || forInit && p.typ == token.In || prec <= minPrec {
		return left
	}
	op := p.typ
	logical := op == token.LogicalOr || op == token.LogicalAnd
	coalesce := op == token.Coalesce
	if coalesce {
		// ?? shares the precedence of && so that mixing is caught below.
		prec = token.LogicalAnd.Precedence()
	}
	p.next(false)
	start := p.startNode()
	right := p.parseExprOp(p.parseMaybeUnary(nil, false, false, forInit), start, prec, forInit)
	n := p.buildBinary(leftStart, left, right, op, logical || coalesce)
	if logical && p.typ == token.Coalesce || coalesce && (p.typ == token.LogicalOr || p.typ == token.LogicalAnd) {
		p.raiseRecoverable(p.start, "Logical expressions and coalesce expressions cannot be mixed. Wrap either by parentheses")
	}
	return p.parseExprOp(n, leftStart, minPrec, forInit)
}

func (p *parser) buildBinary(start marker, left, right ast.Expr, op token.Token, logical bool) ast.Expr {
	if _, ok := right.(*ast.PrivateIdentifier); ok {
		p.raise(int(right.Idx0()), "Private identifier can only be left side of binary expression")
	}
	if logical {
		n := &ast.LogicalExpression{Operator: op, Left: left, Right: right}
		p.finishNode(n, start)
		return n
	}
	n := &ast.BinaryExpression{Operator: op, Left: left, Right: right}
	p.finishNode(n, start)
	return n
}

// parseMaybeUnary parses unary and update expressions and the
// right-associative exponent operator.
func (p *parser) parseMaybeUnary(errs *destructuringErrors, sawUnary, incDec, forInit bool) ast.Expr {
	start := p.startNode()
	var expr ast.Expr
	switch {
	case p.isContextual("await") && p.canAwait():
		expr = p.parseAwait(forInit)
		sawUnary = true
	case p.typ.IsPrefix():
		op := p.typ
		update := op == token.Increment || op == token.Decrement
		p.next(false)
		arg := p.parseMaybeUnary(nil, true, update, forInit)
		p.checkExpressionErrors(errs, true)
		switch {
		case update:
			p.checkLValSimple(arg, bindNone, nil)
		case p.strict && op == token.Delete && isLocalVariableAccess(arg):
			p.raiseRecoverable(start.pos, "Deleting local variable in strict mode")
		case op == token.Delete && isPrivateFieldAccess(arg):
			p.raiseRecoverable(start.pos, "Private fields can not be deleted")
		default:
			sawUnary = true
		}
		if update {
			n := &ast.UpdateExpression{Operator: op, Prefix: true, Argument: arg}
			p.finishNode(n, start)
			expr = n
		} else {
			n := &ast.UnaryExpression{Operator: op, Prefix: true, Argument: arg}
			p.finishNode(n, start)
			expr = n
		}
	case !sawUnary && p.typ == token.PrivateName:
		if (forInit || len(p.privateNameStack) == 0) && p.opts.checkPrivate {
			p.unexpected()
		}
		expr = p.parsePrivateIdent()
		// Only `#x in obj` may start with a private name.
		if p.typ != token.In {
			p.unexpected()
		}
	default:
		expr = p.parseExprSubscripts(errs, forInit)
		if p.checkExpressionErrors(errs, false) {
			return expr
		}
		for p.typ.IsPostfix() && !p.canInsertSemicolon() {
			p.checkLValSimple(expr, bindNone, nil)
			n := &ast.UpdateExpression{Operator: p.typ, Argument: expr}
			p.next(false)
			p.finishNode(n, start)
			expr = n
		}
	}

	if !incDec && p.eat(token.Exponent) {
		if sawUnary {
			p.unexpectedAt(p.lastTokStart)
		}
		return p.buildBinary(start, expr, p.parseMaybeUnary(nil, false, false, forInit), token.Exponent, false)
	}
	return expr
}

func isLocalVariableAccess(n ast.Expr) bool {
	switch n := n.(type) {
	case *ast.Identifier:
		return true
	case *ast.ParenthesizedExpression:
		return isLocalVariableAccess(n.Expression)
	}
	return false
}

func isPrivateFieldAccess(n ast.Expr) bool {
	switch n := n.(type) {
	case *ast.MemberExpression:
		_, ok := n.Property.(*ast.PrivateIdentifier)
		return ok
	case *ast.ChainExpression:
		return isPrivateFieldAccess(n.Expression)
	case *ast.ParenthesizedExpression:
		return isPrivateFieldAccess(n.Expression)
	}
	return false
}

func (p *parser) parseExprSubscripts(errs *destructuringErrors, forInit bool) ast.Expr {
	start := p.startNode()
	expr := p.parseExprAtom(errs, forInit, false)
	if _, arrow := expr.(*ast.ArrowFunctionExpression); arrow && p.input[p.lastTokStart:p.lastTokEnd] != ")" {
		return expr
	}
	result := p.parseSubscripts(expr, start, false, forInit)
	if _, member := result.(*ast.MemberExpression); errs != nil && member {
		pos := int(result.Idx0())
		if errs.parenthesizedAssign >= pos {
			errs.parenthesizedAssign = -1
		}
		if errs.parenthesizedBind >= pos {
			errs.parenthesizedBind = -1
		}
		if errs.trailingComma >= pos {
			errs.trailingComma = -1
		}
	}
	return result
}

// parseSubscripts parses member accesses, calls and tagged templates
// applied to base. A chain holding ?. is wrapped in a ChainExpression.
func (p *parser) parseSubscripts(base ast.Expr, start marker, noCalls, forInit bool) ast.Expr {
	id, isIdent := base.(*ast.Identifier)
	maybeAsyncArrow := p.ecmaVersion >= 8 && isIdent && id.Name == "async" &&
		p.lastTokEnd == int(id.End) && !p.canInsertSemicolon() && id.End-id.Start == 5 &&
		p.potentialArrowAt == int(id.Start)
	optionalChained := false

	for {
		element, optional := p.parseSubscript(base, start, noCalls, maybeAsyncArrow, optionalChained, forInit)
		if optional {
			optionalChained = true
		}
		_, arrow := element.(*ast.ArrowFunctionExpression)
		if element == base || arrow {
			if optionalChained {
				n := &ast.ChainExpression{Expression: element}
				p.finishNode(n, start)
				element = n
			}
			return element
		}
		base = element
	}
}

// parseSubscript parses one subscript. It returns base unchanged when
// there is none, and reports whether the subscript was optional.
func (p *parser) parseSubscript(base ast.Expr, start marker, noCalls, maybeAsyncArrow, optionalChained, forInit bool) (ast.Expr, bool) {
	optionalSupported := p.ecmaVersion >= 11
	optional := optionalSupported && p.eat(token.QuestionDot)
	if noCalls && optional {
		p.raise(p.lastTokStart, "Optional chaining cannot appear in the callee of new expressions")
	}

	computed := p.eat(token.LeftBracket)
	if computed || optional && p.typ != token.LeftParenthesis && p.typ != token.Backquote || p.eat(token.Period) {
		n := &ast.MemberExpression{Object: base, Computed: computed, Optional: optional}
		_, isSuper := base.(*ast.Super)
		switch {
		case computed:
			n.Property = p.parseExpression(false, nil)
			p.expect(token.RightBracket)
		case p.typ == token.PrivateName && !isSuper:
			n.Property = p.parsePrivateIdent()
		default:
			n.Property = p.parseIdent(!p.opts.reservedNever)
		}
		p.finishNode(n, start)
		return n, optional
	}

	if !noCalls && p.eat(token.LeftParenthesis) {
		errs := newDestructuringErrors()
		oldYieldPos, oldAwaitPos, oldAwaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos
		p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0
		exprList := p.parseExprList(token.RightParenthesis, p.ecmaVersion >= 8, false, errs)
		if maybeAsyncArrow && !optional && !p.canInsertSemicolon() && p.eat(token.Arrow) {
			p.checkPatternErrors(errs, false)
			p.checkYieldAwaitInDefaultParams()
			if p.awaitIdentPos > 0 {
				p.raise(p.awaitIdentPos, "Cannot use 'await' as identifier inside an async function")
			}
			p.yieldPos, p.awaitPos, p.awaitIdentPos = oldYieldPos, oldAwaitPos, oldAwaitIdentPos
			return p.parseArrowExpression(start, exprsToNodes(exprList), true, forInit), false
		}
		p.checkExpressionErrors(errs, true)
		p.yieldPos = firstSet(oldYieldPos, p.yieldPos)
		p.awaitPos = firstSet(oldAwaitPos, p.awaitPos)
		p.awaitIdentPos = firstSet(oldAwaitIdentPos, p.awaitIdentPos)
		n := &ast.CallExpression{Callee: base, Arguments: exprList, Optional: optional}
		p.finishNode(n, start)
		return n, optional
	}

	if p.typ == token.Backquote {
		if optional || optionalChained {
			p.raise(p.start, "Optional chaining cannot appear in the tag of tagged template expressions")
		}
		n := &ast.TaggedTemplateExpression{Tag: base}
		n.Quasi = p.parseTemplate(true)
		p.finishNode(n, start)
		return n, false
	}
	return base, false
}

// firstSet returns old unless it is zero.
func firstSet(old, cur int) int {
	if old != 0 {
		return old
	}
	return cur
}

// parseExprAtom parses an atomic expression: an identifier, literal,
// parenthesized expression or any construct that starts with a keyword
// or bracket.
func (p *parser) parseExprAtom(errs *destructuringErrors, forInit, forNew bool) ast.Expr {
	// A slash in expression position starts a regular expression even if
	// the tokenizer read it as division.
	if p.typ == token.Slash {
		p.readRegexp()
	}
	if p.dialect != nil {
		if expr, ok := p.dialect.exprAtom(p); ok {
			return expr
		}
	}

	canBeArrow := p.potentialArrowAt == p.start
	start := p.startNode()
	switch p.typ {
	case token.Super:
		if !p.allowSuper() {
			p.raise(p.start, "'super' keyword outside a method")
		}
		p.next(false)
		if p.typ == token.LeftParenthesis && !p.allowDirectSuper() {
			p.raise(start.pos, "super() call outside constructor of a subclass")
		}
		// super is only valid as super(...), super.x or super[x].
		if p.typ != token.Period && p.typ != token.LeftBracket && p.typ != token.LeftParenthesis {
			p.unexpected()
		}
		n := &ast.Super{}
		p.finishNode(n, start)
		return n

	case token.This:
		p.next(false)
		n := &ast.ThisExpression{}
		p.finishNode(n, start)
		return n

	case token.Name:
		containsEsc := p.containsEsc
		id := p.parseIdent(false)
		if p.ecmaVersion >= 8 && !containsEsc && id.Name == "async" && !p.canInsertSemicolon() && p.eat(token.Function) {
			p.overrideContext(ctxFuncExpr)
			return p.parseFunction(start, 0, true, forInit).(ast.Expr)
		}
		if canBeArrow && !p.canInsertSemicolon() {
			if p.eat(token.Arrow) {
				return p.parseArrowExpression(start, []ast.Node{id}, false, forInit)
			}
			if p.ecmaVersion >= 8 && id.Name == "async" && p.typ == token.Name && !containsEsc {
				id = p.parseIdent(false)
				if p.canInsertSemicolon() || !p.eat(token.Arrow) {
					p.unexpected()
				}
				return p.parseArrowExpression(start, []ast.Node{id}, true, forInit)
			}
		}
		return id

	case token.RegExp:
		v := p.value.(*RegExpValue)
		var value any
		if v.Value != nil {
			value = v.Value
		}
		n := p.parseLiteral(value)
		n.Regex = &ast.RegExpRaw{Pattern: v.Pattern, Flags: v.Flags}
		return n

	case token.Number, token.String:
		return p.parseLiteral(p.value)

	case token.Null, token.True, token.False:
		n := &ast.Literal{Raw: p.typ.String()}
		if p.typ != token.Null {
			n.Value = p.typ == token.True
		}
		p.next(false)
		p.finishNode(n, start)
		return n

	case token.LeftParenthesis:
		expr := p.parseParenAndDistinguishExpression(canBeArrow, forInit)
		if errs != nil {
			if errs.parenthesizedAssign < 0 && !isSimpleAssignTarget(expr) {
				errs.parenthesizedAssign = start.pos
			}
			if errs.parenthesizedBind < 0 {
				errs.parenthesizedBind = start.pos
			}
		}
		return expr

	case token.LeftBracket:
		p.next(false)
		n := &ast.ArrayExpression{}
		n.Elements = p.parseExprList(token.RightBracket, true, true, errs)
		p.finishNode(n, start)
		return n

	case token.LeftBrace:
		p.overrideContext(ctxBraceExpr)
		return p.parseObj(errs)

	case token.Function:
		p.next(false)
		return p.parseFunction(start, 0, false, false).(ast.Expr)

	case token.Class:
		return p.parseClass(start, false, false).(ast.Expr)

	case token.New:
		return p.parseNew()

	case token.Backquote:
		return p.parseTemplate(false)

	case token.Import:
		if p.ecmaVersion >= 11 {
			return p.parseExprImport(forNew)
		}
	}
	p.unexpected()
	return nil
}

// parseExprImport parses import(...) and import.meta.
func (p *parser) parseExprImport(forNew bool) ast.Expr {
	start := p.startNode()
	if p.containsEsc {
		p.raiseRecoverable(p.start, "Escape sequence in keyword import")
	}
	p.next(false)

	switch {
	case p.typ == token.LeftParenthesis && !forNew:
		return p.parseDynamicImport(start)
	case p.typ == token.Period:
		meta := &ast.Identifier{Name: "import"}
		p.finishNode(meta, start)
		return p.parseImportMeta(start, meta)
	}
	p.unexpected()
	return nil
}

func (p *parser) parseDynamicImport(start marker) ast.Expr {
	p.next(false)
	n := &ast.ImportExpression{}
	n.Source = p.parseMaybeAssign(false, nil)

	if p.ecmaVersion >= 16 {
		if !p.eat(token.RightParenthesis) {
			p.expect(token.Comma)
			if !p.afterTrailingComma(token.RightParenthesis, false) {
				n.Options = p.parseMaybeAssign(false, nil)
				if !p.eat(token.RightParenthesis) {
					p.expect(token.Comma)
					if !p.afterTrailingComma(token.RightParenthesis, false) {
						p.unexpected()
					}
				}
			}
		}
	} else if !p.eat(token.RightParenthesis) {
		errorPos := p.start
		if p.eat(token.Comma) && p.eat(token.RightParenthesis) {
			p.raiseRecoverable(errorPos, "Trailing comma is not allowed in import()")
		}
		p.unexpectedAt(errorPos)
	}
	p.finishNode(n, start)
	return n
}

func (p *parser) parseImportMeta(start marker, meta *ast.Identifier) ast.Expr {
	p.next(false)
	containsEsc := p.containsEsc
	n := &ast.MetaProperty{Meta: meta}
	n.Property = p.parseIdent(true)
	if n.Property.Name != "meta" {
		p.raiseRecoverable(int(n.Property.Start), "The only valid meta property for import is 'import.meta'")
	}
	if containsEsc {
		p.raiseRecoverable(start.pos, "'import.meta' must not contain escaped characters")
	}
	if !p.inModule && !p.opts.AllowImportExportEverywhere {
		p.raiseRecoverable(start.pos, "Cannot use 'import.meta' outside a module")
	}
	p.finishNode(n, start)
	return n
}

// parseLiteral turns the current number, string or regexp token into a
// Literal holding value.
func (p *parser) parseLiteral(value any) *ast.Literal {
	start := p.startNode()
	n := &ast.Literal{Value: value, Raw: p.input[p.start:p.end]}
	if p.typ == token.Number && strings.HasSuffix(n.Raw, "n") {
		if b, ok := value.(*big.Int); ok && b != nil {
			n.Bigint = b.String()
		} else {
			n.Bigint = strings.ReplaceAll(n.Raw[:len(n.Raw)-1], "_", "")
		}
	}
	p.next(false)
	p.finishNode(n, start)
	return n
}

// parseParenAndDistinguishExpression parses a parenthesized expression
// or, when it is followed by =>, the parameter list of an arrow function.
func (p *parser) parseParenAndDistinguishExpression(canBeArrow, forInit bool) ast.Expr {
	start := p.startNode()
	var val ast.Expr
	if p.ecmaVersion >= 6 {
		allowTrailingComma := p.ecmaVersion >= 8
		p.next(false)

		innerStart := p.startNode()
		var exprList []ast.Node
		lastIsComma := false
		errs := newDestructuringErrors()
		oldYieldPos, oldAwaitPos := p.yieldPos, p.awaitPos
		spreadStart := -1
		p.yieldPos, p.awaitPos = 0, 0
		// awaitIdentPos is kept so that awaits nested in parameters are
		// still reported.
		for first := true; p.typ != token.RightParenthesis; first = false {
			if !first {
				p.expect(token.Comma)
			}
			if allowTrailingComma && p.afterTrailingComma(token.RightParenthesis, true) {
				lastIsComma = true
				break
			}
			if p.typ == token.Ellipsis {
				spreadStart = p.start
				exprList = append(exprList, p.parseRestBinding())
				if p.typ == token.Comma {
					p.raiseRecoverable(p.start, "Comma is not permitted after the rest element")
				}
				break
			}
			exprList = append(exprList, p.parseMaybeAssign(false, errs))
		}
		innerEnd, innerEndLoc := p.lastTokEnd, p.lastTokEndLoc
		p.expect(token.RightParenthesis)

		if canBeArrow && !p.canInsertSemicolon() && p.eat(token.Arrow) {
			p.checkPatternErrors(errs, false)
			p.checkYieldAwaitInDefaultParams()
			p.yieldPos, p.awaitPos = oldYieldPos, oldAwaitPos
			return p.parseArrowExpression(start, exprList, false, forInit)
		}

		if len(exprList) == 0 || lastIsComma {
			p.unexpectedAt(p.lastTokStart)
		}
		if spreadStart >= 0 {
			p.unexpectedAt(spreadStart)
		}
		p.checkExpressionErrors(errs, true)
		p.yieldPos = firstSet(oldYieldPos, p.yieldPos)
		p.awaitPos = firstSet(oldAwaitPos, p.awaitPos)

		if len(exprList) > 1 {
			seq := &ast.SequenceExpression{Expressions: make([]ast.Expr, len(exprList))}
			for i, e := range exprList {
				seq.Expressions[i] = e.(ast.Expr)
			}
			p.finishNodeAt(seq, innerStart, innerEnd, innerEndLoc)
			val = seq
		} else {
			val = exprList[0].(ast.Expr)
		}
	} else {
		val = p.parseParenExpression()
	}

	if p.opts.PreserveParens {
		n := &ast.ParenthesizedExpression{Expression: val}
		p.finishNode(n, start)
		return n
	}
	return val
}

// parseNew parses a new expression or new.target.
func (p *parser) parseNew() ast.Expr {
	if p.containsEsc {
		p.raiseRecoverable(p.start, "Escape sequence in keyword new")
	}
	start := p.startNode()
	p.next(false)
	if p.ecmaVersion >= 6 && p.typ == token.Period {
		meta := &ast.Identifier{Name: "new"}
		p.finishNode(meta, start)
		p.next(false)
		containsEsc := p.containsEsc
		n := &ast.MetaProperty{Meta: meta}
		n.Property = p.parseIdent(true)
		if n.Property.Name != "target" {
			p.raiseRecoverable(int(n.Property.Start), "The only valid meta property for new is 'new.target'")
		}
		if containsEsc {
			p.raiseRecoverable(start.pos, "'new.target' must not contain escaped characters")
		}
		if !p.allowNewDotTarget() {
			p.raiseRecoverable(start.pos, "'new.target' can only be used in functions and class static block")
		}
		p.finishNode(n, start)
		return n
	}

	calleeStart := p.startNode()
	n := &ast.NewExpression{Arguments: []ast.Expr{}}
	n.Callee = p.parseSubscripts(p.parseExprAtom(nil, false, true), calleeStart, true, false)
	if p.eat(token.LeftParenthesis) {
		n.Arguments = p.parseExprList(token.RightParenthesis, p.ecmaVersion >= 8, false, nil)
	}
	p.finishNode(n, start)
	return n
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func (p *parser) parseTemplateElement(isTagged bool) *ast.TemplateElement {
	start := p.startNode()
	n := &ast.TemplateElement{}
	if p.typ == token.InvalidTemplate {
		if !isTagged {
			p.raiseRecoverable(p.start, "Bad escape sequence in untagged template literal")
		}
		n.Value.Raw = lineEndings.Replace(p.str())
	} else {
		n.Value.Raw = lineEndings.Replace(p.input[p.start:p.end])
		cooked := p.str()
		n.Value.Cooked = &cooked
	}
	p.next(false)
	n.Tail = p.typ == token.Backquote
	p.finishNode(n, start)
	return n
}

func (p *parser) parseTemplate(isTagged bool) *ast.TemplateLiteral {
	start := p.startNode()
	p.next(false)
	n := &ast.TemplateLiteral{Expressions: []ast.Expr{}}
	cur := p.parseTemplateElement(isTagged)
	n.Quasis = []*ast.TemplateElement{cur}
	for !cur.Tail {
		if p.typ == token.Eof {
			p.raise(p.pos, "Unterminated template literal")
		}
		p.expect(token.DollarBrace)
		n.Expressions = append(n.Expressions, p.parseExpression(false, nil))
		p.expect(token.RightBrace)
		cur = p.parseTemplateElement(isTagged)
		n.Quasis = append(n.Quasis, cur)
	}
	p.next(false)
	p.finishNode(n, start)
	return n
}

// propHash tracks property names of an object literal for the duplicate
// checks.
type propHash struct {
	proto bool
	// kinds is only used below ES2015, where duplicate data properties
	// are errors in strict mode.
	kinds map[string]*propKinds
}

type propKinds struct {
	init, get, set bool
}

func (p *parser) checkPropClash(member ast.ObjectMember, hash *propHash, errs *destructuringErrors) {
	prop, ok := member.(*ast.Property)
	if !ok {
		return
	}
	if p.ecmaVersion >= 6 && (prop.Computed || prop.Method || prop.Shorthand) {
		return
	}
	var name string
	switch key := prop.Key.(type) {
	case *ast.Identifier:
		name = key.Name
	case *ast.Literal:
		name = propertyKeyString(key)
	default:
		return
	}
	keyPos := int(prop.Key.Idx0())

	if p.ecmaVersion >= 6 {
		if name == "__proto__" && prop.Kind == "init" {
			if hash.proto {
				if errs != nil {
					if errs.doubleProto < 0 {
						errs.doubleProto = keyPos
					}
				} else {
					p.raiseRecoverable(keyPos, "Redefinition of __proto__ property")
				}
			}
			hash.proto = true
		}
		return
	}

	if hash.kinds == nil {
		hash.kinds = map[string]*propKinds{}
	}
	other := hash.kinds[name]
	if other == nil {
		other = &propKinds{}
		hash.kinds[name] = other
	} else {
		var redefinition bool
		switch prop.Kind {
		case "init":
			redefinition = p.strict && other.init || other.get || other.set
		case "get":
			redefinition = other.init || other.get
		case "set":
			redefinition = other.init || other.set
		}
		if redefinition {
			p.raiseRecoverable(keyPos, "Redefinition of property")
		}
	}
	switch prop.Kind {
	case "init":
		other.init = true
	case "get":
		other.get = true
	case "set":
		other.set = true
	}
}

// propertyKeyString returns the property name a literal key denotes.
func propertyKeyString(lit *ast.Literal) string {
	switch v := lit.Value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return lit.Raw
}

func (p *parser) parseObj(errs *destructuringErrors) *ast.ObjectExpression {
	start := p.startNode()
	n := &ast.ObjectExpression{Properties: []ast.ObjectMember{}}
	hash := &propHash{}
	p.next(false)
	for first := true; !p.eat(token.RightBrace); first = false {
		if !first {
			p.expect(token.Comma)
			if p.ecmaVersion >= 5 && p.afterTrailingComma(token.RightBrace, false) {
				break
			}
		}
		prop := p.parseProperty(errs)
		p.checkPropClash(prop, hash, errs)
		n.Properties = append(n.Properties, prop)
	}
	p.finishNode(n, start)
	return n
}

func (p *parser) parseProperty(errs *destructuringErrors) ast.ObjectMember {
	start := p.startNode()
	if p.ecmaVersion >= 9 && p.eat(token.Ellipsis) {
		n := &ast.SpreadElement{}
		n.Argument = p.parseMaybeAssign(false, errs)
		// A comma after the spread is an error if this turns into a pattern.
		if p.typ == token.Comma && errs != nil && errs.trailingComma < 0 {
			errs.trailingComma = p.start
		}
		p.finishNode(n, start)
		return n
	}

	prop := &ast.Property{}
	isGenerator := false
	keyStart := p.startNode()
	if p.ecmaVersion >= 6 {
		isGenerator = p.eat(token.Multiply)
	}
	containsEsc := p.containsEsc
	prop.Key, prop.Computed = p.parsePropertyName()
	isAsync := false
	if !containsEsc && p.ecmaVersion >= 8 && !isGenerator && p.isAsyncProp(prop) {
		isAsync = true
		isGenerator = p.ecmaVersion >= 9 && p.eat(token.Multiply)
		prop.Key, prop.Computed = p.parsePropertyName()
	}
	p.parsePropertyValue(prop, isGenerator, isAsync, keyStart, errs, containsEsc)
	p.finishNode(prop, start)
	return prop
}

func (p *parser) isAsyncProp(prop *ast.Property) bool {
	id, ok := prop.Key.(*ast.Identifier)
	if !ok || prop.Computed || id.Name != "async" {
		return false
	}
	switch {
	case p.typ == token.Name, p.typ == token.Number, p.typ == token.String, p.typ == token.LeftBracket,
		p.typ.IsKeyword(), p.ecmaVersion >= 9 && p.typ == token.Multiply:
		return !p.hasLineBreak(p.lastTokEnd, p.start)
	}
	return false
}

func (p *parser) parsePropertyValue(prop *ast.Property, isGenerator, isAsync bool, keyStart marker, errs *destructuringErrors, containsEsc bool) {
	if (isGenerator || isAsync) && p.typ == token.Colon {
		p.unexpected()
	}
	id, isIdent := prop.Key.(*ast.Identifier)
	isIdent = isIdent && !prop.Computed

	switch {
	case p.eat(token.Colon):
		prop.Value = p.parseMaybeAssign(false, errs)
		prop.Kind = "init"

	case p.ecmaVersion >= 6 && p.typ == token.LeftParenthesis:
		prop.Method = true
		prop.Value = p.parseMethod(isGenerator, isAsync, false)
		prop.Kind = "init"

	case !containsEsc && p.ecmaVersion >= 5 && isIdent && (id.Name == "get" || id.Name == "set") &&
		p.typ != token.Comma && p.typ != token.RightBrace && p.typ != token.Assign:
		if isGenerator || isAsync {
			p.unexpected()
		}
		prop.Kind = id.Name
		prop.Key, prop.Computed = p.parsePropertyName()
		fn := p.parseMethod(false, false, false)
		prop.Value = fn
		p.checkAccessorParams(prop.Kind, fn)

	case p.ecmaVersion >= 6 && isIdent:
		if isGenerator || isAsync {
			p.unexpected()
		}
		p.checkUnreserved(id)
		if id.Name == "await" && p.awaitIdentPos == 0 {
			p.awaitIdentPos = keyStart.pos
		}
		if p.typ == token.Assign && errs != nil {
			// {a = 1} is only valid once converted to a pattern; until then
			// it is held as an assignment and flagged in errs.
			if errs.shorthandAssign < 0 {
				errs.shorthandAssign = p.start
			}
			p.next(false)
			def := &ast.AssignmentExpression{Operator: token.Assign, Left: copyIdent(id)}
			def.Right = p.parseMaybeAssign(false, nil)
			p.finishNode(def, keyStart)
			prop.Value = def
		} else {
			prop.Value = copyIdent(id)
		}
		prop.Kind = "init"
		prop.Shorthand = true

	default:
		p.unexpected()
	}
}

// checkAccessorParams checks the parameter count of a getter or setter.
func (p *parser) checkAccessorParams(kind string, fn *ast.FunctionExpression) {
	switch {
	case kind == "get" && len(fn.Params) != 0:
		p.raiseRecoverable(int(fn.Start), "getter should have no params")
	case kind == "set" && len(fn.Params) != 1:
		p.raiseRecoverable(int(fn.Start), "setter should have exactly one param")
	case kind == "set":
		if _, rest := fn.Params[0].(*ast.RestElement); rest {
			p.raiseRecoverable(int(fn.Params[0].Idx0()), "Setter cannot use rest params")
		}
	}
}

// parsePropertyName parses a property key and reports whether it is
// computed.
func (p *parser) parsePropertyName() (ast.Expr, bool) {
	if p.ecmaVersion >= 6 && p.eat(token.LeftBracket) {
		key := p.parseMaybeAssign(false, nil)
		p.expect(token.RightBracket)
		return key, true
	}
	if p.typ == token.Number || p.typ == token.String {
		return p.parseLiteral(p.value), false
	}
	return p.parseIdent(!p.opts.reservedNever), false
}

func copyIdent(id *ast.Identifier) *ast.Identifier {
	c := &ast.Identifier{Name: id.Name}
	copySpan(c, id)
	return c
}

// parseExprList parses a comma separated list up to close. Holes are nil
// when allowEmpty is set.
func (p *parser) parseExprList(close token.Token, allowTrailingComma, allowEmpty bool, errs *destructuringErrors) []ast.Expr {
	elts := []ast.Expr{}
	for first := true; !p.eat(close); first = false {
		if !first {
			p.expect(token.Comma)
			if allowTrailingComma && p.afterTrailingComma(close, false) {
				break
			}
		}
		var elt ast.Expr
		switch {
		case allowEmpty && p.typ == token.Comma:
		case p.typ == token.Ellipsis:
			elt = p.parseSpread(errs)
			if errs != nil && p.typ == token.Comma && errs.trailingComma < 0 {
				errs.trailingComma = p.start
			}
		default:
			elt = p.parseMaybeAssign(false, errs)
		}
		elts = append(elts, elt)
	}
	return elts
}

func exprsToNodes(exprs []ast.Expr) []ast.Node {
	out := make([]ast.Node, len(exprs))
	for i, e := range exprs {
		if e != nil {
			out[i] = e
		}
	}
	return out
}

// checkUnreserved rejects identifiers that are reserved in the current
// context.
func (p *parser) checkUnreserved(id *ast.Identifier) {
	start, name := int(id.Start), id.Name
	if p.inGenerator() && name == "yield" {
		p.raiseRecoverable(start, "Cannot use 'yield' as identifier inside a generator")
	}
	if p.inAsync() && name == "await" {
		p.raiseRecoverable(start, "Cannot use 'await' as identifier inside an async function")
	}
	if p.currentThisScope().flags&scopeVar == 0 && name == "arguments" {
		p.raiseRecoverable(start, "Cannot use 'arguments' in class field initializer")
	}
	if p.inClassStaticBlock() && (name == "arguments" || name == "await") {
		p.raise(start, "Cannot use "+name+" in class static initialization block")
	}
	if p.keywords.Has(name) {
		p.raise(start, "Unexpected keyword '"+name+"'")
	}
	if p.ecmaVersion < 6 && strings.IndexByte(p.input[start:id.End], '\\') >= 0 {
		return
	}
	reserved := p.reservedWords
	if p.strict {
		reserved = p.reservedWordsStrict
	}
	if reserved.Has(name) {
		if !p.inAsync() && name == "await" {
			p.raiseRecoverable(start, "Cannot use keyword 'await' outside an async function")
		}
		p.raiseRecoverable(start, "The keyword '"+name+"' is reserved")
	}
}

// parseIdent parses an identifier. liberal accepts keywords, as in
// property names.
func (p *parser) parseIdent(liberal bool) *ast.Identifier {
	start := p.startNode()
	n := &ast.Identifier{}
	switch {
	case p.typ == token.Name:
		n.Name = p.str()
	case p.typ.IsKeyword():
		n.Name = p.typ.String()
		// class and function pushed a context that their body would have
		// popped. A keyword right after a dot never pushed one.
		if (n.Name == "class" || n.Name == "function") &&
			(p.lastTokEnd != p.lastTokStart+1 || p.charAt(p.lastTokStart) != '.') && len(p.context) > 1 {
			p.popContext()
		}
		p.typ = token.Name
	default:
		p.unexpected()
	}
	p.next(liberal)
	p.finishNode(n, start)
	if !liberal {
		p.checkUnreserved(n)
		if n.Name == "await" && p.awaitIdentPos == 0 {
			p.awaitIdentPos = int(n.Start)
		}
	}
	return n
}

func (p *parser) parsePrivateIdent() *ast.PrivateIdentifier {
	start := p.startNode()
	if p.typ != token.PrivateName {
		p.unexpected()
	}
	n := &ast.PrivateIdentifier{Name: p.str()}
	p.next(false)
	p.finishNode(n, start)

	if p.opts.checkPrivate {
		if len(p.privateNameStack) == 0 {
			p.raise(int(n.Start), "Private field '#"+n.Name+"' must be declared in an enclosing class")
		}
		top := p.privateNameStack[len(p.privateNameStack)-1]
		top.used = append(top.used, n)
	}
	return n
}

func (p *parser) parseYield(forInit bool) ast.Expr {
	if p.yieldPos == 0 {
		p.yieldPos = p.start
	}
	start := p.startNode()
	p.next(false)
	n := &ast.YieldExpression{}
	if p.typ != token.Semicolon && !p.canInsertSemicolon() && (p.typ == token.Multiply || p.typ.StartsExpr()) {
		n.Delegate = p.eat(token.Multiply)
		n.Argument = p.parseMaybeAssign(forInit, nil)
	}
	p.finishNode(n, start)
	return n
}

func (p *parser) parseAwait(forInit bool) ast.Expr {
	if p.awaitPos == 0 {
		p.awaitPos = p.start
	}
	start := p.startNode()
	p.next(false)
	n := &ast.AwaitExpression{}
	n.Argument = p.parseMaybeUnary(nil, true, false, forInit)
	p.finishNode(n, start)
	return n
}

func (p *parser) parseSpread(errs *destructuringErrors) *ast.SpreadElement {
	start := p.startNode()
	p.next(false)
	n := &ast.SpreadElement{}
	n.Argument = p.parseMaybeAssign(false, errs)
	p.finishNode(n, start)
	return n
}
