package parser

import (
	"github.com/t14raptor/go-estree/token"
)

// tokContext is an entry of the context stack the tokenizer uses to tell
// regular expressions from division and blocks from object literals.
type tokContext struct {
	token         string
	isExpr        bool
	preserveSpace bool
	// template contexts read template chunks instead of ordinary tokens.
	template  bool
	generator bool
}

var (
	ctxBraceStat   = &tokContext{token: "{"}
	ctxBraceExpr   = &tokContext{token: "{", isExpr: true}
	ctxBraceTmpl   = &tokContext{token: "${"}
	ctxParenStat   = &tokContext{token: "("}
	ctxParenExpr   = &tokContext{token: "(", isExpr: true}
	ctxQuoteTmpl   = &tokContext{token: "`", isExpr: true, preserveSpace: true, template: true}
	ctxFuncStat    = &tokContext{token: "function"}
	ctxFuncExpr    = &tokContext{token: "function", isExpr: true}
	ctxFuncExprGen = &tokContext{token: "function", isExpr: true, generator: true}
	ctxFuncGen     = &tokContext{token: "function", generator: true}
)

func (p *parser) initialContext() []*tokContext {
	return []*tokContext{ctxBraceStat}
}

func (p *parser) curContext() *tokContext {
	if len(p.context) == 0 {
		return nil
	}
	return p.context[len(p.context)-1]
}

func (p *parser) popContext() *tokContext {
	out := p.context[len(p.context)-1]
	p.context = p.context[:len(p.context)-1]
	return out
}

func (p *parser) braceIsBlock(prev token.Token) bool {
	parent := p.curContext()
	if parent == ctxFuncExpr || parent == ctxFuncStat {
		return true
	}
	if prev == token.Colon && (parent == ctxBraceStat || parent == ctxBraceExpr) {
		return !parent.isExpr
	}
	// The `{` of `return {` or `x\n{` starts a block only on a new line.
	if prev == token.Return || prev == token.Name && p.exprAllowed {
		return p.hasLineBreak(p.lastTokEnd, p.start)
	}
	switch prev {
	case token.Else, token.Semicolon, token.Eof, token.RightParenthesis, token.Arrow:
		return true
	case token.LeftBrace:
		return parent == ctxBraceStat
	case token.Var, token.Const, token.Name:
		return false
	}
	return !p.exprAllowed
}

func (p *parser) inGeneratorContext() bool {
	for i := len(p.context) - 1; i >= 1; i-- {
		if ctx := p.context[i]; ctx.token == "function" {
			return ctx.generator
		}
	}
	return false
}

// overrideContext replaces the innermost context.
func (p *parser) overrideContext(ctx *tokContext) {
	if p.curContext() != ctx {
		p.context[len(p.context)-1] = ctx
	}
}

// updateContext maintains the context stack and exprAllowed after a token
// of type p.typ following one of type prev.
func (p *parser) updateContext(prev token.Token) {
	typ := p.typ
	if typ.IsKeyword() && prev == token.Period {
		p.exprAllowed = false
		return
	}
	switch typ {
	case token.RightParenthesis, token.RightBrace:
		if len(p.context) == 1 {
			p.exprAllowed = true
			return
		}
		out := p.popContext()
		if out == ctxBraceStat && len(p.context) > 1 && p.curContext().token == "function" {
			out = p.popContext()
		}
		p.exprAllowed = !out.isExpr
	case token.LeftBrace:
		if p.braceIsBlock(prev) {
			p.context = append(p.context, ctxBraceStat)
		} else {
			p.context = append(p.context, ctxBraceExpr)
		}
		p.exprAllowed = true
	case token.DollarBrace:
		p.context = append(p.context, ctxBraceTmpl)
		p.exprAllowed = true
	case token.LeftParenthesis:
		if prev == token.If || prev == token.For || prev == token.With || prev == token.While {
			p.context = append(p.context, ctxParenStat)
		} else {
			p.context = append(p.context, ctxParenExpr)
		}
		p.exprAllowed = true
	case token.Increment, token.Decrement:
		// exprAllowed stays unchanged.
	case token.Function, token.Class:
		if prev.BeforeExpr() && prev != token.Else &&
			!(prev == token.Semicolon && p.curContext() != ctxParenStat) &&
			!(prev == token.Return && p.hasLineBreak(p.lastTokEnd, p.start)) &&
			!((prev == token.Colon || prev == token.LeftBrace) && p.curContext() == ctxBraceStat) {
			p.context = append(p.context, ctxFuncExpr)
		} else {
			p.context = append(p.context, ctxFuncStat)
		}
		p.exprAllowed = false
	case token.Colon:
		if len(p.context) > 1 && p.curContext().token == "function" {
			p.popContext()
		}
		p.exprAllowed = true
	case token.Backquote:
		if p.curContext() == ctxQuoteTmpl {
			p.popContext()
		} else {
			p.context = append(p.context, ctxQuoteTmpl)
		}
		p.exprAllowed = false
	case token.Multiply:
		if prev == token.Function {
			switch i := len(p.context) - 1; p.context[i] {
			case ctxFuncExpr:
				p.context[i] = ctxFuncExprGen
			case ctxFuncStat:
				p.context[i] = ctxFuncGen
			}
		}
		p.exprAllowed = true
	case token.Name:
		allowed := false
		if p.ecmaVersion >= 6 && prev != token.Period {
			name, _ := p.value.(string)
			if name == "of" && !p.exprAllowed || name == "yield" && p.inGeneratorContext() {
				allowed = true
			}
		}
		p.exprAllowed = allowed
	default:
		p.exprAllowed = typ.BeforeExpr()
	}
}
