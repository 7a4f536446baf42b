// Package parser implements a parser and tokenizer for ECMAScript source
// text producing an ESTree tree.
//
// Errors are raised deep inside the recursive descent as *SyntaxError
// panics and recovered at the entry points, so a failed parse never
// returns a partial tree.
package parser

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/jsregexp"
	"github.com/t14raptor/go-estree/token"
)

type parser struct {
	opts        resolved
	input       string
	ecmaVersion int
	dialect     *Dialect

	keywords                token.WordSet
	reservedWords           token.WordSet
	reservedWordsStrict     token.WordSet
	reservedWordsStrictBind token.WordSet

	// Tokenizer state.
	pos       int
	lineStart int
	curLine   int

	typ      token.Token
	value    any
	start    int
	end      int
	startLoc ast.Position
	endLoc   ast.Position

	lastTokStart    int
	lastTokEnd      int
	lastTokStartLoc ast.Position
	lastTokEndLoc   ast.Position

	context     []*tokContext
	exprAllowed bool

	containsEsc       bool
	inTemplateElement bool
	loneSurrogate     bool
	regexpState       *jsregexp.Validator

	// Parser state.
	inModule bool
	strict   bool

	potentialArrowAt int
	yieldPos         int
	awaitPos         int
	awaitIdentPos    int

	labels           []label
	undefinedExports map[string]int
	scopeStack       []*scope
	privateNameStack []*privateNameScope
}

func newParser(opts Options, input string, startPos int) *parser {
	r := opts.normalize()
	words := token.WordsFor(r.ecmaVersion, r.module, r.allowReserved)
	p := &parser{
		opts:                    r,
		input:                   input,
		ecmaVersion:             r.ecmaVersion,
		keywords:                words.Keywords,
		reservedWords:           words.Reserved,
		reservedWordsStrict:     words.ReservedStrict,
		reservedWordsStrictBind: words.ReservedStrictBind,
		pos:                     startPos,
		typ:                     token.Eof,
		undefinedExports:        map[string]int{},
		potentialArrowAt:        -1,
		exprAllowed:             true,
	}
	start := GetLineInfo(input, startPos)
	p.curLine = start.Line
	p.lineStart = startPos - start.Column
	p.start, p.end = p.pos, p.pos
	p.startLoc = p.curPosition()
	p.endLoc = p.startLoc
	p.lastTokStart, p.lastTokEnd = p.pos, p.pos
	p.context = p.initialContext()
	p.inModule = r.module
	p.strict = p.inModule || p.strictDirective(p.pos)
	if p.pos == 0 && r.allowHashBang && len(input) >= 2 && input[:2] == "#!" {
		p.skipLineComment(2)
	}
	p.enterScope(scopeTop)
	return p
}

// Parse parses a complete program.
func Parse(src string, opts Options) (*ast.Program, error) {
	return newParser(opts, src, 0).parse()
}

// ParseExpressionAt parses a single expression starting at offset and
// ignores the rest of the input.
func ParseExpressionAt(src string, offset int, opts Options) (ast.Expr, error) {
	if err := checkOffset(src, offset); err != nil {
		return nil, err
	}
	return newParser(opts, src, offset).parseExpressionAt()
}

func (p *parser) parse() (program *ast.Program, err error) {
	defer catch(&err)
	program = p.opts.Program
	var start marker
	if program == nil {
		program = &ast.Program{}
		start = p.startNode()
	} else {
		start = p.markerOf(program)
	}
	p.nextToken()
	p.parseTopLevel(program, start)
	return program, nil
}

func (p *parser) parseExpressionAt() (expr ast.Expr, err error) {
	defer catch(&err)
	p.nextToken()
	return p.parseExpression(false, nil), nil
}

func (p *parser) parseTopLevel(program *ast.Program, start marker) {
	exports := map[string]bool{}
	for p.typ != token.Eof {
		program.Body = append(program.Body, p.parseStatement("", true, exports))
	}
	if p.inModule && len(p.undefinedExports) > 0 {
		names := maps.Keys(p.undefinedExports)
		slices.SortFunc(names, func(a, b string) int {
			return p.undefinedExports[a] - p.undefinedExports[b]
		})
		name := names[0]
		p.raiseRecoverable(p.undefinedExports[name], "Export '"+name+"' is not defined")
	}
	p.adaptDirectivePrologue(program.Body)
	p.next(false)
	program.SourceType = SourceScript
	if p.inModule {
		program.SourceType = SourceModule
	}
	p.finishNode(program, start)
}
