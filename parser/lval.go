package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

// toAssignable converts an expression that turned out to be an assignment
// target into a pattern. errs holds the positions recorded while it was
// parsed as an expression.
func (p *parser) toAssignable(node ast.Node, isBinding bool, errs *destructuringErrors) ast.Pattern {
	if p.ecmaVersion < 6 {
		if pat, ok := node.(ast.Pattern); ok {
			return pat
		}
		p.raise(int(node.Idx0()), "Assigning to rvalue")
	}

	switch n := node.(type) {
	case *ast.Identifier:
		if p.inAsync() && n.Name == "await" {
			p.raise(int(n.Start), "Cannot use 'await' as identifier inside an async function")
		}
		return n

	case *ast.ObjectPattern, *ast.ArrayPattern, *ast.AssignmentPattern, *ast.RestElement:
		return n.(ast.Pattern)

	case *ast.ObjectExpression:
		p.checkPatternErrors(errs, true)
		pat := &ast.ObjectPattern{Properties: make([]ast.PatternMember, 0, len(n.Properties))}
		copySpan(pat, n)
		for _, prop := range n.Properties {
			member := p.toAssignableMember(prop, isBinding)
			if rest, ok := member.(*ast.RestElement); ok {
				switch rest.Argument.(type) {
				case *ast.ArrayPattern, *ast.ObjectPattern:
					p.raise(int(rest.Argument.Idx0()), "Unexpected token")
				}
			}
			pat.Properties = append(pat.Properties, member)
		}
		return pat

	case *ast.ArrayExpression:
		p.checkPatternErrors(errs, true)
		pat := &ast.ArrayPattern{Elements: p.toAssignableList(exprsToNodes(n.Elements), isBinding)}
		copySpan(pat, n)
		return pat

	case *ast.SpreadElement:
		return p.spreadToRest(n, isBinding)

	case *ast.AssignmentExpression:
		if n.Operator != token.Assign {
			p.raise(int(n.Left.Idx1()), "Only '=' operator can be used for specifying default value.")
		}
		pat := &ast.AssignmentPattern{Left: p.toAssignable(n.Left, isBinding, nil), Right: n.Right}
		copySpan(pat, n)
		return pat

	case *ast.ParenthesizedExpression:
		inner, ok := p.toAssignable(n.Expression, isBinding, errs).(ast.Expr)
		if !ok {
			p.raise(int(n.Start), "Assigning to rvalue")
		}
		n.Expression = inner
		return n

	case *ast.ChainExpression:
		p.raiseRecoverable(int(n.Start), "Optional chaining cannot appear in left-hand side")

	case *ast.MemberExpression:
		if !isBinding {
			return n
		}
	}
	p.raise(int(node.Idx0()), "Assigning to rvalue")
	return nil
}

func (p *parser) toAssignableMember(member ast.ObjectMember, isBinding bool) ast.PatternMember {
	switch m := member.(type) {
	case *ast.Property:
		if m.Kind != "init" {
			p.raise(int(m.Key.Idx0()), "Object pattern can't contain getter or setter")
		}
		prop := &ast.AssignmentProperty{
			Key:       m.Key,
			Value:     p.toAssignable(m.Value, isBinding, nil),
			Kind:      m.Kind,
			Method:    m.Method,
			Shorthand: m.Shorthand,
			Computed:  m.Computed,
		}
		copySpan(prop, m)
		return prop
	case *ast.SpreadElement:
		return p.spreadToRest(m, isBinding)
	}
	p.raise(int(member.Idx0()), "Assigning to rvalue")
	return nil
}

func (p *parser) spreadToRest(n *ast.SpreadElement, isBinding bool) *ast.RestElement {
	arg := p.toAssignable(n.Argument, isBinding, nil)
	if _, ok := arg.(*ast.AssignmentPattern); ok {
		p.raise(int(arg.Idx0()), "Rest elements cannot have a default value")
	}
	rest := &ast.RestElement{Argument: arg}
	copySpan(rest, n)
	return rest
}

// toAssignableList converts a list of expressions, such as arrow
// parameters or array elements. Holes stay nil.
func (p *parser) toAssignableList(list []ast.Node, isBinding bool) []ast.Pattern {
	out := make([]ast.Pattern, len(list))
	for i, elt := range list {
		if elt != nil {
			out[i] = p.toAssignable(elt, isBinding, nil)
		}
	}
	if len(out) > 0 && p.ecmaVersion == 6 && isBinding {
		if rest, ok := out[len(out)-1].(*ast.RestElement); ok {
			if _, ok := rest.Argument.(*ast.Identifier); !ok {
				p.unexpectedAt(int(rest.Argument.Idx0()))
			}
		}
	}
	return out
}

func (p *parser) parseRestBinding() *ast.RestElement {
	start := p.startNode()
	p.next(false)

	// ES2015 only allows an identifier after ... in a binding.
	if p.ecmaVersion == 6 && p.typ != token.Name {
		p.unexpected()
	}
	n := &ast.RestElement{Argument: p.parseBindingAtom()}
	p.finishNode(n, start)
	return n
}

// parseBindingAtom parses an identifier or a destructuring pattern.
func (p *parser) parseBindingAtom() ast.Pattern {
	if p.ecmaVersion >= 6 {
		switch p.typ {
		case token.LeftBracket:
			start := p.startNode()
			p.next(false)
			n := &ast.ArrayPattern{Elements: p.parseBindingList(token.RightBracket, true, true)}
			p.finishNode(n, start)
			return n
		case token.LeftBrace:
			return p.parseObjPattern()
		}
	}
	return p.parseIdent(false)
}

// parseBindingList parses binding elements up to close. Holes are nil
// when allowEmpty is set.
func (p *parser) parseBindingList(close token.Token, allowEmpty, allowTrailingComma bool) []ast.Pattern {
	elts := []ast.Pattern{}
	for first := true; !p.eat(close); first = false {
		if !first {
			p.expect(token.Comma)
		}
		switch {
		case allowEmpty && p.typ == token.Comma:
			elts = append(elts, nil)
		case allowTrailingComma && p.afterTrailingComma(close, false):
			return elts
		case p.typ == token.Ellipsis:
			elts = append(elts, p.parseRestBinding())
			if p.typ == token.Comma {
				p.raiseRecoverable(p.start, "Comma is not permitted after the rest element")
			}
			p.expect(close)
			return elts
		default:
			elts = append(elts, p.parseMaybeDefault(p.startNode(), nil))
		}
	}
	return elts
}

// parseMaybeDefault parses an optional `= default` after left, parsing
// left first when it is nil.
func (p *parser) parseMaybeDefault(start marker, left ast.Pattern) ast.Pattern {
	if left == nil {
		left = p.parseBindingAtom()
	}
	if p.ecmaVersion < 6 || !p.eat(token.Assign) {
		return left
	}
	n := &ast.AssignmentPattern{Left: left}
	n.Right = p.parseMaybeAssign(false, nil)
	p.finishNode(n, start)
	return n
}

// parseObjPattern parses an object pattern in a binding position.
func (p *parser) parseObjPattern() *ast.ObjectPattern {
	start := p.startNode()
	n := &ast.ObjectPattern{Properties: []ast.PatternMember{}}
	p.next(false)
	for first := true; !p.eat(token.RightBrace); first = false {
		if !first {
			p.expect(token.Comma)
			if p.ecmaVersion >= 5 && p.afterTrailingComma(token.RightBrace, false) {
				break
			}
		}
		n.Properties = append(n.Properties, p.parsePatternProperty())
	}
	p.finishNode(n, start)
	return n
}

func (p *parser) parsePatternProperty() ast.PatternMember {
	start := p.startNode()
	if p.ecmaVersion >= 9 && p.eat(token.Ellipsis) {
		n := &ast.RestElement{Argument: p.parseIdent(false)}
		if p.typ == token.Comma {
			p.raiseRecoverable(p.start, "Comma is not permitted after the rest element")
		}
		p.finishNode(n, start)
		return n
	}

	prop := &ast.AssignmentProperty{Kind: "init"}
	keyStart := p.startNode()
	prop.Key, prop.Computed = p.parsePropertyName()
	id, isIdent := prop.Key.(*ast.Identifier)
	switch {
	case p.eat(token.Colon):
		prop.Value = p.parseMaybeDefault(p.startNode(), nil)
	case p.ecmaVersion >= 6 && isIdent && !prop.Computed && p.typ != token.LeftParenthesis:
		p.checkUnreserved(id)
		if id.Name == "await" && p.awaitIdentPos == 0 {
			p.awaitIdentPos = keyStart.pos
		}
		prop.Value = p.parseMaybeDefault(keyStart, copyIdent(id))
		prop.Shorthand = true
	default:
		p.unexpected()
	}
	p.finishNode(prop, start)
	return prop
}

// checkLValSimple checks an identifier or member expression used as an
// assignment target or binding. Bindings are declared in the current
// scope unless kind is bindNone or bindOutside.
func (p *parser) checkLValSimple(expr ast.Node, kind bindingKind, clashes map[string]bool) {
	isBind := kind != bindNone
	switch n := expr.(type) {
	case *ast.Identifier:
		if p.strict && p.reservedWordsStrictBind.Has(n.Name) {
			if isBind {
				p.raiseRecoverable(int(n.Start), "Binding "+n.Name+" in strict mode")
			}
			p.raiseRecoverable(int(n.Start), "Assigning to "+n.Name+" in strict mode")
		}
		if !isBind {
			return
		}
		if kind == bindLexical && n.Name == "let" {
			p.raiseRecoverable(int(n.Start), "let is disallowed as a lexically bound name")
		}
		if clashes != nil {
			if clashes[n.Name] {
				p.raiseRecoverable(int(n.Start), "Argument name clash")
			}
			clashes[n.Name] = true
		}
		if kind != bindOutside {
			p.declareName(n.Name, kind, int(n.Start))
		}

	case *ast.ChainExpression:
		p.raiseRecoverable(int(n.Start), "Optional chaining cannot appear in left-hand side")

	case *ast.MemberExpression:
		if isBind {
			p.raiseRecoverable(int(n.Start), "Binding member expression")
		}

	case *ast.ParenthesizedExpression:
		if isBind {
			p.raiseRecoverable(int(n.Start), "Binding parenthesized body")
		}
		p.checkLValSimple(n.Expression, kind, clashes)

	default:
		if isBind {
			p.raise(int(expr.Idx0()), "Binding rvalue")
		}
		p.raise(int(expr.Idx0()), "Assigning to rvalue")
	}
}

// checkLValPattern checks a destructuring target.
func (p *parser) checkLValPattern(expr ast.Node, kind bindingKind, clashes map[string]bool) {
	switch n := expr.(type) {
	case *ast.ObjectPattern:
		for _, prop := range n.Properties {
			p.checkLValInnerPattern(prop, kind, clashes)
		}
	case *ast.ArrayPattern:
		for _, elem := range n.Elements {
			if elem != nil {
				p.checkLValInnerPattern(elem, kind, clashes)
			}
		}
	default:
		p.checkLValSimple(expr, kind, clashes)
	}
}

func (p *parser) checkLValInnerPattern(expr ast.Node, kind bindingKind, clashes map[string]bool) {
	switch n := expr.(type) {
	case *ast.AssignmentProperty:
		p.checkLValInnerPattern(n.Value, kind, clashes)
	case *ast.AssignmentPattern:
		p.checkLValPattern(n.Left, kind, clashes)
	case *ast.RestElement:
		p.checkLValPattern(n.Argument, kind, clashes)
	default:
		p.checkLValPattern(expr, kind, clashes)
	}
}
