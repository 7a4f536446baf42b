package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

// privateNameScope tracks the private names of one class body.
type privateNameScope struct {
	// declared maps a name to "true", or to the accessor kind ("iget",
	// "sset" ...) while only one half of a getter/setter pair is seen.
	declared map[string]string
	used     []*ast.PrivateIdentifier
}

// parseClass parses a class declaration or expression after its start.
// It returns a *ast.ClassDeclaration when isStatement is set.
func (p *parser) parseClass(start marker, isStatement, nullableID bool) ast.Node {
	p.next(false)

	// Class bodies and heritage are always strict.
	oldStrict := p.strict
	p.strict = true

	var id *ast.Identifier
	if p.typ == token.Name {
		id = p.parseIdent(false)
		if isStatement {
			p.checkLValSimple(id, bindLexical, nil)
		}
	} else if isStatement && !nullableID {
		p.unexpected()
	}

	var superClass ast.Expr
	if p.eat(token.Extends) {
		superClass = p.parseExprSubscripts(nil, false)
	}

	declared := p.enterClassBody()
	bodyStart := p.startNode()
	body := &ast.ClassBody{Body: []ast.ClassElement{}}
	hadConstructor := false
	p.expect(token.LeftBrace)
	for p.typ != token.RightBrace {
		element := p.parseClassElement(superClass != nil)
		if element == nil {
			continue
		}
		body.Body = append(body.Body, element)
		if m, ok := element.(*ast.MethodDefinition); ok && m.Kind == "constructor" {
			if hadConstructor {
				p.raiseRecoverable(int(m.Start), "Duplicate constructor in the same class")
			}
			hadConstructor = true
		} else if key, ok := classElementKey(element).(*ast.PrivateIdentifier); ok && isPrivateNameConflicted(declared, element, key.Name) {
			p.raiseRecoverable(int(key.Start), "Identifier '#"+key.Name+"' has already been declared")
		}
	}
	p.strict = oldStrict
	p.next(false)
	p.finishNode(body, bodyStart)
	p.exitClassBody()

	if isStatement {
		n := &ast.ClassDeclaration{ID: id, SuperClass: superClass, Body: body}
		p.finishNode(n, start)
		return n
	}
	n := &ast.ClassExpression{ID: id, SuperClass: superClass, Body: body}
	p.finishNode(n, start)
	return n
}

func classElementKey(e ast.ClassElement) ast.Expr {
	switch e := e.(type) {
	case *ast.MethodDefinition:
		return e.Key
	case *ast.PropertyDefinition:
		return e.Key
	}
	return nil
}

// parseClassElement parses one member of a class body. It returns nil for
// a stray semicolon.
func (p *parser) parseClassElement(constructorAllowsSuper bool) ast.ClassElement {
	if p.eat(token.Semicolon) {
		return nil
	}

	start := p.startNode()
	keyName := ""
	isGenerator, isAsync, isStatic := false, false, false
	kind := "method"

	// Modifiers double as element names: `static() {}`, `async = 1`.
	if p.eatContextual("static") {
		if p.ecmaVersion >= 13 && p.eat(token.LeftBrace) {
			return p.parseClassStaticBlock(start)
		}
		if p.isClassElementNameStart() || p.typ == token.Multiply {
			isStatic = true
		} else {
			keyName = "static"
		}
	}
	if keyName == "" && p.ecmaVersion >= 8 && p.eatContextual("async") {
		if (p.isClassElementNameStart() || p.typ == token.Multiply) && !p.canInsertSemicolon() {
			isAsync = true
		} else {
			keyName = "async"
		}
	}
	if keyName == "" && (p.ecmaVersion >= 9 || !isAsync) && p.eat(token.Multiply) {
		isGenerator = true
	}
	if keyName == "" && !isAsync && !isGenerator {
		lastValue := p.str()
		if p.eatContextual("get") || p.eatContextual("set") {
			if p.isClassElementNameStart() {
				kind = lastValue
			} else {
				keyName = lastValue
			}
		}
	}

	var key ast.Expr
	computed := false
	if keyName != "" {
		id := &ast.Identifier{Name: keyName}
		p.finishNode(id, p.startNodeAt(p.lastTokStart, p.lastTokStartLoc))
		key = id
	} else {
		key, computed = p.parseClassElementName()
	}

	if p.ecmaVersion < 13 || p.typ == token.LeftParenthesis || kind != "method" || isGenerator || isAsync {
		isConstructor := !isStatic && checkKeyName(key, computed, "constructor")
		if isConstructor && kind != "method" {
			p.raise(int(key.Idx0()), "Constructor can't have get/set modifier")
		}
		if isConstructor {
			kind = "constructor"
		}
		m := &ast.MethodDefinition{Static: isStatic, Computed: computed, Key: key, Kind: kind}
		return p.parseClassMethod(start, m, isGenerator, isAsync, isConstructor && constructorAllowsSuper)
	}
	return p.parseClassField(start, &ast.PropertyDefinition{Static: isStatic, Computed: computed, Key: key})
}

func (p *parser) isClassElementNameStart() bool {
	switch p.typ {
	case token.Name, token.PrivateName, token.Number, token.String, token.LeftBracket:
		return true
	}
	return p.typ.IsKeyword()
}

func (p *parser) parseClassElementName() (ast.Expr, bool) {
	if p.typ == token.PrivateName {
		if p.str() == "constructor" {
			p.raise(p.start, "Classes can't have an element named '#constructor'")
		}
		return p.parsePrivateIdent(), false
	}
	return p.parsePropertyName()
}

func (p *parser) parseClassMethod(start marker, m *ast.MethodDefinition, isGenerator, isAsync, allowsDirectSuper bool) *ast.MethodDefinition {
	keyPos := int(m.Key.Idx0())
	if m.Kind == "constructor" {
		if isGenerator {
			p.raise(keyPos, "Constructor can't be a generator")
		}
		if isAsync {
			p.raise(keyPos, "Constructor can't be an async method")
		}
	} else if m.Static && checkKeyName(m.Key, m.Computed, "prototype") {
		p.raise(keyPos, "Classes may not have a static property named prototype")
	}

	m.Value = p.parseMethod(isGenerator, isAsync, allowsDirectSuper)
	if m.Kind == "get" || m.Kind == "set" {
		p.checkAccessorParams(m.Kind, m.Value)
	}
	p.finishNode(m, start)
	return m
}

func (p *parser) parseClassField(start marker, field *ast.PropertyDefinition) *ast.PropertyDefinition {
	if checkKeyName(field.Key, field.Computed, "constructor") {
		p.raise(int(field.Key.Idx0()), "Classes can't have a field named 'constructor'")
	} else if field.Static && checkKeyName(field.Key, field.Computed, "prototype") {
		p.raise(int(field.Key.Idx0()), "Classes can't have a static field named 'prototype'")
	}

	if p.eat(token.Assign) {
		p.enterScope(scopeClassFieldInit | scopeSuper)
		field.Value = p.parseMaybeAssign(false, nil)
		p.exitScope()
	}
	p.semicolon()
	p.finishNode(field, start)
	return field
}

func (p *parser) parseClassStaticBlock(start marker) *ast.StaticBlock {
	n := &ast.StaticBlock{Body: []ast.Stmt{}}
	oldLabels := p.labels
	p.labels = nil
	p.enterScope(scopeClassStaticBlock | scopeSuper)
	for p.typ != token.RightBrace {
		n.Body = append(n.Body, p.parseStatement("", false, nil))
	}
	p.next(false)
	p.exitScope()
	p.labels = oldLabels
	p.finishNode(n, start)
	return n
}

// checkKeyName reports whether a non-computed key spells name.
func checkKeyName(key ast.Expr, computed bool, name string) bool {
	if computed {
		return false
	}
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name == name
	case *ast.Literal:
		s, ok := k.Value.(string)
		return ok && s == name
	}
	return false
}

// isPrivateNameConflicted records a private element name and reports
// whether it was already declared. A getter and setter pair with the same
// staticness may share a name.
func isPrivateNameConflicted(declared map[string]string, element ast.ClassElement, name string) bool {
	curr := declared[name]
	next := "true"
	if m, ok := element.(*ast.MethodDefinition); ok && (m.Kind == "get" || m.Kind == "set") {
		prefix := "i"
		if m.Static {
			prefix = "s"
		}
		next = prefix + m.Kind
	}

	switch {
	case curr == "iget" && next == "iset", curr == "iset" && next == "iget",
		curr == "sget" && next == "sset", curr == "sset" && next == "sget":
		declared[name] = "true"
		return false
	case curr == "":
		declared[name] = next
		return false
	}
	return true
}

func (p *parser) enterClassBody() map[string]string {
	s := &privateNameScope{declared: map[string]string{}}
	p.privateNameStack = append(p.privateNameStack, s)
	return s.declared
}

// exitClassBody resolves the private names used in the class body. Names
// not declared here move to the enclosing class, or are an error at the
// outermost one.
func (p *parser) exitClassBody() {
	s := p.privateNameStack[len(p.privateNameStack)-1]
	p.privateNameStack = p.privateNameStack[:len(p.privateNameStack)-1]
	if !p.opts.checkPrivate {
		return
	}
	var parent *privateNameScope
	if len(p.privateNameStack) > 0 {
		parent = p.privateNameStack[len(p.privateNameStack)-1]
	}
	for _, id := range s.used {
		if _, ok := s.declared[id.Name]; ok {
			continue
		}
		if parent != nil {
			parent.used = append(parent.used, id)
		} else {
			p.raiseRecoverable(int(id.Start), "Private field '#"+id.Name+"' must be declared in an enclosing class")
		}
	}
}
