package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/charclass"
	"github.com/t14raptor/go-estree/token"
)

// skipWhiteSpace returns the position after any whitespace and comments
// starting at pos.
func (p *parser) skipWhiteSpace(pos int) int {
	for pos < len(p.input) {
		c := p.input[pos]
		switch {
		case c == ' ' || c >= 9 && c <= 13:
			pos++
		case c == '/' && p.charAt(pos+1) == '/':
			pos += 2
			for pos < len(p.input) && p.input[pos] != '\n' && p.input[pos] != '\r' {
				r, size := utf8.DecodeRuneInString(p.input[pos:])
				if r == 0x2028 || r == 0x2029 {
					break
				}
				pos += size
			}
		case c == '/' && p.charAt(pos+1) == '*':
			end := strings.Index(p.input[pos+2:], "*/")
			if end < 0 {
				return pos
			}
			pos += end + 4
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(p.input[pos:])
			if !charclass.IsWhitespace(r) && !charclass.IsNewLine(r) {
				return pos
			}
			pos += size
		default:
			return pos
		}
	}
	return pos
}

// matchStringLiteral returns the length of the quoted string literal at
// pos and its raw content, or 0.
func (p *parser) matchStringLiteral(pos int) (int, string) {
	quote := p.charAt(pos)
	if quote != '\'' && quote != '"' {
		return 0, ""
	}
	for i := pos + 1; i < len(p.input); i++ {
		switch p.input[i] {
		case '\\':
			i++
		case quote:
			return i + 1 - pos, p.input[pos+1 : i]
		}
	}
	return 0, ""
}

// strictDirective scans the directive prologue starting at start for a
// "use strict" directive without tokenizing it.
func (p *parser) strictDirective(start int) bool {
	if p.ecmaVersion < 5 {
		return false
	}
	for {
		start = p.skipWhiteSpace(start)
		n, content := p.matchStringLiteral(start)
		if n == 0 {
			return false
		}
		if content == "use strict" {
			after := start + n
			end := p.skipWhiteSpace(after)
			next := p.charAt(end)
			if next == ';' || next == '}' || end >= len(p.input) {
				return true
			}
			return p.hasLineBreak(after, end) &&
				!(strings.IndexByte("(`.[+-/*%<>=,?^&", next) >= 0 || next == '!' && p.charAt(end+1) == '=')
		}
		start = p.skipWhiteSpace(start + n)
		if p.charAt(start) == ';' {
			start++
		}
	}
}

func (p *parser) eat(typ token.Token) bool {
	if p.typ == typ {
		p.next(false)
		return true
	}
	return false
}

func (p *parser) expect(typ token.Token) {
	if !p.eat(typ) {
		p.unexpected()
	}
}

// isContextual reports whether the current token is the unescaped name.
func (p *parser) isContextual(name string) bool {
	return p.typ == token.Name && p.value == name && !p.containsEsc
}

func (p *parser) eatContextual(name string) bool {
	if !p.isContextual(name) {
		return false
	}
	p.next(false)
	return true
}

func (p *parser) expectContextual(name string) {
	if !p.eatContextual(name) {
		p.unexpected()
	}
}

// str returns the string value of the current token.
func (p *parser) str() string {
	s, _ := p.value.(string)
	return s
}

func (p *parser) canInsertSemicolon() bool {
	return p.typ == token.Eof || p.typ == token.RightBrace || p.hasLineBreak(p.lastTokEnd, p.start)
}

func (p *parser) insertSemicolon() bool {
	if !p.canInsertSemicolon() {
		return false
	}
	if p.opts.OnInsertedSemicolon != nil {
		p.opts.OnInsertedSemicolon(p.lastTokEnd, p.lastTokEndLoc)
	}
	return true
}

// semicolon consumes a semicolon or applies automatic semicolon insertion.
func (p *parser) semicolon() {
	if !p.eat(token.Semicolon) && !p.insertSemicolon() {
		p.unexpected()
	}
}

// afterTrailingComma handles a closing token following a comma.
func (p *parser) afterTrailingComma(typ token.Token, notNext bool) bool {
	if p.typ != typ {
		return false
	}
	if p.opts.OnTrailingComma != nil {
		p.opts.OnTrailingComma(p.lastTokStart, p.lastTokStartLoc)
	}
	if !notNext {
		p.next(false)
	}
	return true
}

// destructuringErrors records positions of constructs that are errors in
// an expression but fine in a pattern, or the other way round, until it is
// known which one is being parsed. -1 means none.
type destructuringErrors struct {
	shorthandAssign     int
	trailingComma       int
	parenthesizedAssign int
	parenthesizedBind   int
	doubleProto         int
}

func newDestructuringErrors() *destructuringErrors {
	return &destructuringErrors{
		shorthandAssign:     -1,
		trailingComma:       -1,
		parenthesizedAssign: -1,
		parenthesizedBind:   -1,
		doubleProto:         -1,
	}
}

func (p *parser) checkPatternErrors(errs *destructuringErrors, isAssign bool) {
	if errs == nil {
		return
	}
	if errs.trailingComma > -1 {
		p.raiseRecoverable(errs.trailingComma, "Comma is not permitted after the rest element")
	}
	parens := errs.parenthesizedBind
	if isAssign {
		parens = errs.parenthesizedAssign
	}
	if parens > -1 {
		if isAssign {
			p.raiseRecoverable(parens, "Assigning to rvalue")
		}
		p.raiseRecoverable(parens, "Parenthesized pattern")
	}
}

// checkExpressionErrors reports whether errs holds expression errors, or
// raises them when andThrow is set.
func (p *parser) checkExpressionErrors(errs *destructuringErrors, andThrow bool) bool {
	if errs == nil {
		return false
	}
	if !andThrow {
		return errs.shorthandAssign >= 0 || errs.doubleProto >= 0
	}
	if errs.shorthandAssign >= 0 {
		p.raise(errs.shorthandAssign, "Shorthand property assignments are valid only in destructuring patterns")
	}
	if errs.doubleProto >= 0 {
		p.raiseRecoverable(errs.doubleProto, "Redefinition of __proto__ property")
	}
	return false
}

func (p *parser) checkYieldAwaitInDefaultParams() {
	if p.yieldPos != 0 && (p.awaitPos == 0 || p.yieldPos < p.awaitPos) {
		p.raise(p.yieldPos, "Yield expression cannot be a default value")
	}
	if p.awaitPos != 0 {
		p.raise(p.awaitPos, "Await expression cannot be a default value")
	}
}

func isSimpleAssignTarget(expr ast.Node) bool {
	switch n := expr.(type) {
	case *ast.ParenthesizedExpression:
		return isSimpleAssignTarget(n.Expression)
	case *ast.Identifier, *ast.MemberExpression:
		return true
	}
	return false
}
