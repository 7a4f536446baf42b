package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

// parseExport parses an export declaration. exports collects the exported
// names of the module to catch duplicates.
func (p *parser) parseExport(start marker, exports map[string]bool) ast.Stmt {
	p.next(false)
	if p.eat(token.Multiply) {
		return p.parseExportAllDeclaration(start, exports)
	}
	if p.eat(token.Default) {
		p.checkExport(exports, "default", p.lastTokStart)
		n := &ast.ExportDefaultDeclaration{Declaration: p.parseExportDefaultDeclaration()}
		p.finishNode(n, start)
		return n
	}

	if p.shouldParseExportStatement() {
		n := &ast.ExportNamedDeclaration{Specifiers: []*ast.ExportSpecifier{}}
		n.Declaration = p.parseStatement("", false, nil)
		switch d := n.Declaration.(type) {
		case *ast.VariableDeclaration:
			for _, decl := range d.Declarations {
				p.checkPatternExport(exports, decl.ID)
			}
		case *ast.FunctionDeclaration:
			p.checkExport(exports, d.ID.Name, int(d.ID.Start))
		case *ast.ClassDeclaration:
			p.checkExport(exports, d.ID.Name, int(d.ID.Start))
		}
		if p.ecmaVersion >= 16 {
			n.Attributes = []*ast.ImportAttribute{}
		}
		p.finishNode(n, start)
		return n
	}

	n := &ast.ExportNamedDeclaration{}
	n.Specifiers = p.parseExportSpecifiers(exports)
	if p.eatContextual("from") {
		if p.typ != token.String {
			p.unexpected()
		}
		n.Source = p.parseLiteral(p.value)
		if p.ecmaVersion >= 16 {
			n.Attributes = p.parseWithClause()
		}
	} else {
		for _, spec := range n.Specifiers {
			switch local := spec.Local.(type) {
			case *ast.Identifier:
				p.checkUnreserved(local)
				p.checkLocalExport(local.Name, int(local.Start))
			case *ast.Literal:
				p.raise(int(local.Start), "A string literal cannot be used as an exported binding without `from`.")
			}
		}
		if p.ecmaVersion >= 16 {
			n.Attributes = []*ast.ImportAttribute{}
		}
	}
	p.semicolon()
	p.finishNode(n, start)
	return n
}

func (p *parser) parseExportAllDeclaration(start marker, exports map[string]bool) ast.Stmt {
	n := &ast.ExportAllDeclaration{}
	if p.ecmaVersion >= 11 && p.eatContextual("as") {
		n.Exported = p.parseModuleExportName()
		p.checkExport(exports, moduleNameString(n.Exported), p.lastTokStart)
	}
	p.expectContextual("from")
	if p.typ != token.String {
		p.unexpected()
	}
	n.Source = p.parseLiteral(p.value)
	if p.ecmaVersion >= 16 {
		n.Attributes = p.parseWithClause()
	}
	p.semicolon()
	p.finishNode(n, start)
	return n
}

func (p *parser) parseExportDefaultDeclaration() ast.Node {
	if p.typ == token.Function || p.isAsyncFunction() {
		isAsync := p.typ != token.Function
		start := p.startNode()
		p.next(false)
		if isAsync {
			p.next(false)
		}
		return p.parseFunction(start, funcStatement|funcNullableID, isAsync, false)
	}
	if p.typ == token.Class {
		return p.parseClass(p.startNode(), true, true)
	}
	decl := p.parseMaybeAssign(false, nil)
	p.semicolon()
	return decl
}

func (p *parser) shouldParseExportStatement() bool {
	switch p.typ {
	case token.Var, token.Const, token.Class, token.Function:
		return true
	}
	return p.isLet("") || p.isAsyncFunction()
}

func (p *parser) parseExportSpecifiers(exports map[string]bool) []*ast.ExportSpecifier {
	nodes := []*ast.ExportSpecifier{}
	p.expect(token.LeftBrace)
	for first := true; !p.eat(token.RightBrace); first = false {
		if !first {
			p.expect(token.Comma)
			if p.afterTrailingComma(token.RightBrace, false) {
				break
			}
		}
		nodes = append(nodes, p.parseExportSpecifier(exports))
	}
	return nodes
}

func (p *parser) parseExportSpecifier(exports map[string]bool) *ast.ExportSpecifier {
	start := p.startNode()
	n := &ast.ExportSpecifier{Local: p.parseModuleExportName()}
	n.Exported = n.Local
	if p.eatContextual("as") {
		n.Exported = p.parseModuleExportName()
	}
	p.checkExport(exports, moduleNameString(n.Exported), int(n.Exported.Idx0()))
	p.finishNode(n, start)
	return n
}

// parseModuleExportName parses an identifier or, from ES2022 on, a string
// naming an export.
func (p *parser) parseModuleExportName() ast.ModuleName {
	if p.ecmaVersion >= 13 && p.typ == token.String {
		lone := p.loneSurrogate
		lit := p.parseLiteral(p.value)
		if lone {
			p.raise(int(lit.Start), "An export name cannot include a lone surrogate.")
		}
		return lit
	}
	return p.parseIdent(true)
}

func moduleNameString(n ast.ModuleName) string {
	switch n := n.(type) {
	case *ast.Identifier:
		return n.Name
	case *ast.Literal:
		s, _ := n.Value.(string)
		return s
	}
	return ""
}

func (p *parser) checkExport(exports map[string]bool, name string, pos int) {
	if exports == nil {
		return
	}
	if exports[name] {
		p.raiseRecoverable(pos, "Duplicate export '"+name+"'")
	}
	exports[name] = true
}

// checkPatternExport registers every name bound by an exported
// declaration pattern.
func (p *parser) checkPatternExport(exports map[string]bool, pat ast.Node) {
	switch n := pat.(type) {
	case *ast.Identifier:
		p.checkExport(exports, n.Name, int(n.Start))
	case *ast.ObjectPattern:
		for _, prop := range n.Properties {
			p.checkPatternExport(exports, prop)
		}
	case *ast.ArrayPattern:
		for _, elt := range n.Elements {
			if elt != nil {
				p.checkPatternExport(exports, elt)
			}
		}
	case *ast.AssignmentProperty:
		p.checkPatternExport(exports, n.Value)
	case *ast.AssignmentPattern:
		p.checkPatternExport(exports, n.Left)
	case *ast.RestElement:
		p.checkPatternExport(exports, n.Argument)
	}
}

// parseImport parses an import declaration after its start.
func (p *parser) parseImport(start marker) ast.Stmt {
	p.next(false)
	n := &ast.ImportDeclaration{Specifiers: []ast.ImportSpec{}}
	if p.typ != token.String {
		n.Specifiers = p.parseImportSpecifiers()
		p.expectContextual("from")
		if p.typ != token.String {
			p.unexpected()
		}
	}
	n.Source = p.parseLiteral(p.value)
	if p.ecmaVersion >= 16 {
		n.Attributes = p.parseWithClause()
	}
	p.semicolon()
	p.finishNode(n, start)
	return n
}

func (p *parser) parseImportSpecifiers() []ast.ImportSpec {
	nodes := []ast.ImportSpec{}
	if p.typ == token.Name {
		nodes = append(nodes, p.parseImportDefaultSpecifier())
		if !p.eat(token.Comma) {
			return nodes
		}
	}
	if p.typ == token.Multiply {
		return append(nodes, p.parseImportNamespaceSpecifier())
	}
	p.expect(token.LeftBrace)
	for first := true; !p.eat(token.RightBrace); first = false {
		if !first {
			p.expect(token.Comma)
			if p.afterTrailingComma(token.RightBrace, false) {
				break
			}
		}
		nodes = append(nodes, p.parseImportSpecifier())
	}
	return nodes
}

func (p *parser) parseImportSpecifier() *ast.ImportSpecifier {
	start := p.startNode()
	n := &ast.ImportSpecifier{Imported: p.parseModuleExportName()}
	if p.eatContextual("as") {
		n.Local = p.parseIdent(false)
	} else {
		id, ok := n.Imported.(*ast.Identifier)
		if !ok {
			p.raise(int(n.Imported.Idx0()), "Binding rvalue")
		}
		p.checkUnreserved(id)
		n.Local = id
	}
	p.checkLValSimple(n.Local, bindLexical, nil)
	p.finishNode(n, start)
	return n
}

func (p *parser) parseImportDefaultSpecifier() *ast.ImportDefaultSpecifier {
	start := p.startNode()
	n := &ast.ImportDefaultSpecifier{Local: p.parseIdent(false)}
	p.checkLValSimple(n.Local, bindLexical, nil)
	p.finishNode(n, start)
	return n
}

func (p *parser) parseImportNamespaceSpecifier() *ast.ImportNamespaceSpecifier {
	start := p.startNode()
	p.next(false)
	p.expectContextual("as")
	n := &ast.ImportNamespaceSpecifier{Local: p.parseIdent(false)}
	p.checkLValSimple(n.Local, bindLexical, nil)
	p.finishNode(n, start)
	return n
}

// parseWithClause parses the import attributes of a `with { ... }`
// clause. It returns an empty list when there is none.
func (p *parser) parseWithClause() []*ast.ImportAttribute {
	nodes := []*ast.ImportAttribute{}
	if !p.eat(token.With) {
		return nodes
	}
	p.expect(token.LeftBrace)
	seen := map[string]bool{}
	for first := true; !p.eat(token.RightBrace); first = false {
		if !first {
			p.expect(token.Comma)
			if p.afterTrailingComma(token.RightBrace, false) {
				break
			}
		}
		attr := p.parseImportAttribute()
		name := moduleNameString(attr.Key)
		if seen[name] {
			p.raiseRecoverable(int(attr.Key.Idx0()), "Duplicate attribute key '"+name+"'")
		}
		seen[name] = true
		nodes = append(nodes, attr)
	}
	return nodes
}

func (p *parser) parseImportAttribute() *ast.ImportAttribute {
	start := p.startNode()
	n := &ast.ImportAttribute{}
	if p.typ == token.String {
		n.Key = p.parseLiteral(p.value)
	} else {
		n.Key = p.parseIdent(!p.opts.reservedNever)
	}
	p.expect(token.Colon)
	if p.typ != token.String {
		p.unexpected()
	}
	n.Value = p.parseLiteral(p.value)
	p.finishNode(n, start)
	return n
}
