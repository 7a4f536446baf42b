package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/charclass"
	"github.com/t14raptor/go-estree/token"
)

// Token is a lexical token as reported by the Tokenizer and OnToken.
//
// Value holds the decoded string for names, strings and templates, a
// float64 or *big.Int for numbers, a *RegExpValue for regular expressions
// and the operator text for operators.
type Token struct {
	Type  token.Token
	Value any
	Start int
	End   int
	Loc   *ast.SourceLocation
	Range *[2]int
}

// Comment is reported through OnComment.
type Comment struct {
	Block bool
	// Text excludes the comment delimiters.
	Text  string
	Start int
	End   int
	Loc   *ast.SourceLocation
	Range *[2]int
}

// Tokenizer reads tokens without building a tree.
type Tokenizer struct {
	p       *parser
	started bool
}

// Tokenize returns a Tokenizer over src.
func Tokenize(src string, opts Options) *Tokenizer {
	return &Tokenizer{p: newParser(opts, src, 0)}
}

// Next returns the next token. At the end of input it keeps returning a
// token of type token.Eof.
func (t *Tokenizer) Next() (tok Token, err error) {
	defer catch(&err)
	if !t.started {
		t.started = true
		t.p.nextToken()
	} else if t.p.typ != token.Eof {
		t.p.next(false)
	}
	return t.p.currentToken(), nil
}

// All returns every token up to and excluding the end of input.
func (t *Tokenizer) All() ([]Token, error) {
	var out []Token
	for {
		tok, err := t.Next()
		if err != nil {
			return out, err
		}
		if tok.Type == token.Eof {
			return out, nil
		}
		out = append(out, tok)
	}
}

func (p *parser) currentToken() Token {
	t := Token{Type: p.typ, Value: p.value, Start: p.start, End: p.end}
	if p.opts.Locations {
		t.Loc = &ast.SourceLocation{Start: p.startLoc, End: p.endLoc, Source: p.opts.SourceFile}
	}
	if p.opts.Ranges {
		t.Range = &[2]int{p.start, p.end}
	}
	return t
}

// next moves to the following token.
func (p *parser) next(ignoreEscapeInKeyword bool) {
	if !ignoreEscapeInKeyword && p.typ.IsKeyword() && p.containsEsc {
		p.raiseRecoverable(p.start, "Escape sequence in keyword "+p.typ.String())
	}
	if p.opts.OnToken != nil {
		p.opts.OnToken(p.currentToken())
	}
	p.lastTokEnd = p.end
	p.lastTokStart = p.start
	p.lastTokEndLoc = p.endLoc
	p.lastTokStartLoc = p.startLoc
	p.nextToken()
}

func (p *parser) nextToken() {
	ctx := p.curContext()
	if ctx == nil || !ctx.preserveSpace {
		p.skipSpace()
	}
	p.start = p.pos
	if p.opts.Locations {
		p.startLoc = p.curPosition()
	}
	if p.pos >= len(p.input) {
		p.finishToken(token.Eof, nil)
		return
	}
	if ctx != nil && ctx.template {
		p.tryReadTemplateToken()
		return
	}
	p.readToken(p.fullCharCodeAtPos())
}

func (p *parser) readToken(code rune) {
	if charclass.IsIdentifierStart(code, p.ecmaVersion >= 6) || code == '\\' {
		p.readWord()
		return
	}
	p.getTokenFromCode(code)
}

// fullCharCodeAtPos returns the code point at the current position, or -1
// at the end of input.
func (p *parser) fullCharCodeAtPos() rune {
	return p.codePointAt(p.pos)
}

func (p *parser) codePointAt(pos int) rune {
	if pos >= len(p.input) {
		return -1
	}
	if c := p.input[pos]; c < utf8.RuneSelf {
		return rune(c)
	}
	r, _ := utf8.DecodeRuneInString(p.input[pos:])
	return r
}

// charAt returns the byte at pos, or 0 past the end of input.
func (p *parser) charAt(pos int) byte {
	if pos < 0 || pos >= len(p.input) {
		return 0
	}
	return p.input[pos]
}

func (p *parser) hasLineBreak(from, to int) bool {
	i, _ := charclass.NextLineBreak(p.input, from, to)
	return i >= 0
}

func (p *parser) skipBlockComment() {
	var startLoc ast.Position
	if p.opts.OnComment != nil {
		startLoc = p.curPosition()
	}
	start := p.pos
	p.pos += 2
	end := strings.Index(p.input[p.pos:], "*/")
	if end < 0 {
		p.raise(p.pos-2, "Unterminated comment")
	}
	end += p.pos
	p.pos = end + 2
	if p.opts.Locations {
		for pos := start; ; {
			i, n := charclass.NextLineBreak(p.input, pos, p.pos)
			if i < 0 {
				break
			}
			p.curLine++
			pos = i + n
			p.lineStart = pos
		}
	}
	if p.opts.OnComment != nil {
		p.pushComment(true, p.input[start+2:end], start, p.pos, startLoc, p.curPosition())
	}
}

func (p *parser) skipLineComment(startSkip int) {
	start := p.pos
	var startLoc ast.Position
	if p.opts.OnComment != nil {
		startLoc = p.curPosition()
	}
	p.pos += startSkip
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if charclass.IsNewLine(r) {
			break
		}
		p.pos += size
	}
	if p.opts.OnComment != nil {
		p.pushComment(false, p.input[start+startSkip:p.pos], start, p.pos, startLoc, p.curPosition())
	}
}

func (p *parser) pushComment(block bool, text string, start, end int, startLoc, endLoc ast.Position) {
	c := Comment{Block: block, Text: text, Start: start, End: end}
	if p.opts.Locations {
		c.Loc = &ast.SourceLocation{Start: startLoc, End: endLoc, Source: p.opts.SourceFile}
	}
	if p.opts.Ranges {
		c.Range = &[2]int{start, end}
	}
	p.opts.OnComment(c)
}

// skipSpace skips whitespace and comments.
func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		switch ch := p.input[p.pos]; ch {
		case ' ':
			p.pos++
		case '\r', '\n':
			if ch == '\r' && p.charAt(p.pos+1) == '\n' {
				p.pos++
			}
			p.pos++
			p.newLine()
		case '/':
			switch p.charAt(p.pos + 1) {
			case '*':
				p.skipBlockComment()
			case '/':
				p.skipLineComment(2)
			default:
				return
			}
		default:
			if ch > 8 && ch < 14 {
				p.pos++
				continue
			}
			if ch < utf8.RuneSelf {
				return
			}
			r, size := utf8.DecodeRuneInString(p.input[p.pos:])
			switch {
			case r == 0x2028 || r == 0x2029:
				p.pos += size
				p.newLine()
			case charclass.IsWhitespace(r):
				p.pos += size
			default:
				return
			}
		}
	}
}

func (p *parser) newLine() {
	if p.opts.Locations {
		p.curLine++
		p.lineStart = p.pos
	}
}

// finishToken ends the current token at the current position.
func (p *parser) finishToken(typ token.Token, val any) {
	p.end = p.pos
	if p.opts.Locations {
		p.endLoc = p.curPosition()
	}
	prev := p.typ
	p.typ = typ
	p.value = val
	p.updateContext(prev)
}

// finishOp finishes a size byte operator token.
func (p *parser) finishOp(typ token.Token, size int) {
	str := p.input[p.pos : p.pos+size]
	p.pos += size
	p.finishToken(typ, str)
}

var assignOps = map[string]token.Token{
	"+=":   token.AddAssign,
	"-=":   token.SubtractAssign,
	"*=":   token.MultiplyAssign,
	"**=":  token.ExponentAssign,
	"/=":   token.QuotientAssign,
	"%=":   token.RemainderAssign,
	"&=":   token.AndAssign,
	"|=":   token.OrAssign,
	"^=":   token.ExclusiveOrAssign,
	"<<=":  token.ShiftLeftAssign,
	">>=":  token.ShiftRightAssign,
	">>>=": token.UnsignedShiftRightAssign,
	"&&=":  token.LogicalAndAssign,
	"||=":  token.LogicalOrAssign,
	"??=":  token.CoalesceAssign,
}

func (p *parser) finishAssign(size int) {
	p.finishOp(assignOps[p.input[p.pos:p.pos+size]], size)
}

func (p *parser) readTokenDot() {
	next := p.charAt(p.pos + 1)
	if next >= '0' && next <= '9' {
		p.readNumber(true)
		return
	}
	if p.ecmaVersion >= 6 && next == '.' && p.charAt(p.pos+2) == '.' {
		p.pos += 3
		p.finishToken(token.Ellipsis, nil)
		return
	}
	p.pos++
	p.finishToken(token.Period, nil)
}

func (p *parser) readTokenSlash() {
	if p.exprAllowed {
		p.pos++
		p.readRegexp()
		return
	}
	if p.charAt(p.pos+1) == '=' {
		p.finishAssign(2)
		return
	}
	p.finishOp(token.Slash, 1)
}

func (p *parser) readTokenMultModuloExp(code byte) {
	next := p.charAt(p.pos + 1)
	size := 1
	typ := token.Remainder
	if code == '*' {
		typ = token.Multiply
	}
	if p.ecmaVersion >= 7 && code == '*' && next == '*' {
		size++
		typ = token.Exponent
		next = p.charAt(p.pos + 2)
	}
	if next == '=' {
		p.finishAssign(size + 1)
		return
	}
	p.finishOp(typ, size)
}

func (p *parser) readTokenPipeAmp(code byte) {
	next := p.charAt(p.pos + 1)
	if next == code {
		if p.ecmaVersion >= 12 && p.charAt(p.pos+2) == '=' {
			p.finishAssign(3)
			return
		}
		if code == '|' {
			p.finishOp(token.LogicalOr, 2)
		} else {
			p.finishOp(token.LogicalAnd, 2)
		}
		return
	}
	if next == '=' {
		p.finishAssign(2)
		return
	}
	if code == '|' {
		p.finishOp(token.Or, 1)
	} else {
		p.finishOp(token.And, 1)
	}
}

func (p *parser) readTokenCaret() {
	if p.charAt(p.pos+1) == '=' {
		p.finishAssign(2)
		return
	}
	p.finishOp(token.ExclusiveOr, 1)
}

func (p *parser) readTokenPlusMin(code byte) {
	next := p.charAt(p.pos + 1)
	if next == code {
		if next == '-' && !p.inModule && p.charAt(p.pos+2) == '>' &&
			(p.lastTokEnd == 0 || p.hasLineBreak(p.lastTokEnd, p.pos)) {
			// `-->` at the start of a line is a comment.
			p.skipLineComment(3)
			p.skipSpace()
			p.nextToken()
			return
		}
		if code == '+' {
			p.finishOp(token.Increment, 2)
		} else {
			p.finishOp(token.Decrement, 2)
		}
		return
	}
	if next == '=' {
		p.finishAssign(2)
		return
	}
	if code == '+' {
		p.finishOp(token.Plus, 1)
	} else {
		p.finishOp(token.Minus, 1)
	}
}

func (p *parser) readTokenLtGt(code byte) {
	next := p.charAt(p.pos + 1)
	if next == code {
		size := 2
		if code == '>' && p.charAt(p.pos+2) == '>' {
			size = 3
		}
		if p.charAt(p.pos+size) == '=' {
			p.finishAssign(size + 1)
			return
		}
		switch {
		case code == '<':
			p.finishOp(token.ShiftLeft, size)
		case size == 2:
			p.finishOp(token.ShiftRight, size)
		default:
			p.finishOp(token.UnsignedShiftRight, size)
		}
		return
	}
	if next == '!' && code == '<' && !p.inModule && p.charAt(p.pos+2) == '-' && p.charAt(p.pos+3) == '-' {
		// `<!--` starts a comment.
		p.skipLineComment(4)
		p.skipSpace()
		p.nextToken()
		return
	}
	switch {
	case next == '=' && code == '<':
		p.finishOp(token.LessOrEqual, 2)
	case next == '=':
		p.finishOp(token.GreaterOrEqual, 2)
	case code == '<':
		p.finishOp(token.Less, 1)
	default:
		p.finishOp(token.Greater, 1)
	}
}

func (p *parser) readTokenEqExcl(code byte) {
	next := p.charAt(p.pos + 1)
	if next == '=' {
		strict := p.charAt(p.pos+2) == '='
		switch {
		case code == '=' && strict:
			p.finishOp(token.StrictEqual, 3)
		case code == '=':
			p.finishOp(token.Equal, 2)
		case strict:
			p.finishOp(token.StrictNotEqual, 3)
		default:
			p.finishOp(token.NotEqual, 2)
		}
		return
	}
	if code == '=' && next == '>' && p.ecmaVersion >= 6 {
		p.pos += 2
		p.finishToken(token.Arrow, nil)
		return
	}
	if code == '=' {
		p.finishOp(token.Assign, 1)
	} else {
		p.finishOp(token.Not, 1)
	}
}

func (p *parser) readTokenQuestion() {
	if p.ecmaVersion >= 11 {
		next := p.charAt(p.pos + 1)
		if next == '.' {
			if next2 := p.charAt(p.pos + 2); next2 < '0' || next2 > '9' {
				p.finishOp(token.QuestionDot, 2)
				return
			}
		}
		if next == '?' {
			if p.ecmaVersion >= 12 && p.charAt(p.pos+2) == '=' {
				p.finishAssign(3)
				return
			}
			p.finishOp(token.Coalesce, 2)
			return
		}
	}
	p.finishOp(token.QuestionMark, 1)
}

func (p *parser) readTokenNumberSign() {
	code := rune('#')
	if p.ecmaVersion >= 13 {
		p.pos++
		code = p.fullCharCodeAtPos()
		if charclass.IsIdentifierStart(code, true) || code == '\\' {
			p.finishToken(token.PrivateName, p.readWord1())
			return
		}
	}
	p.raisef(p.pos, "Unexpected character '%s'", codePointToString(code))
}

var punctuation = map[byte]token.Token{
	'(': token.LeftParenthesis,
	')': token.RightParenthesis,
	';': token.Semicolon,
	',': token.Comma,
	'[': token.LeftBracket,
	']': token.RightBracket,
	'{': token.LeftBrace,
	'}': token.RightBrace,
	':': token.Colon,
}

func (p *parser) getTokenFromCode(code rune) {
	switch code {
	case '.':
		p.readTokenDot()
		return
	case '(', ')', ';', ',', '[', ']', '{', '}', ':':
		p.pos++
		p.finishToken(punctuation[byte(code)], nil)
		return
	case '`':
		if p.ecmaVersion < 6 {
			break
		}
		p.pos++
		p.finishToken(token.Backquote, nil)
		return
	case '0':
		next := p.charAt(p.pos + 1)
		if next == 'x' || next == 'X' {
			p.readRadixNumber(16)
			return
		}
		if p.ecmaVersion >= 6 {
			if next == 'o' || next == 'O' {
				p.readRadixNumber(8)
				return
			}
			if next == 'b' || next == 'B' {
				p.readRadixNumber(2)
				return
			}
		}
		p.readNumber(false)
		return
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		p.readNumber(false)
		return
	case '"', '\'':
		p.readString(byte(code))
		return
	case '/':
		p.readTokenSlash()
		return
	case '%', '*':
		p.readTokenMultModuloExp(byte(code))
		return
	case '|', '&':
		p.readTokenPipeAmp(byte(code))
		return
	case '^':
		p.readTokenCaret()
		return
	case '+', '-':
		p.readTokenPlusMin(byte(code))
		return
	case '<', '>':
		p.readTokenLtGt(byte(code))
		return
	case '=', '!':
		p.readTokenEqExcl(byte(code))
		return
	case '?':
		p.readTokenQuestion()
		return
	case '~':
		p.finishOp(token.BitwiseNot, 1)
		return
	case '#':
		p.readTokenNumberSign()
		return
	}
	p.raisef(p.pos, "Unexpected character '%s'", codePointToString(code))
}

func codePointToString(code rune) string {
	if code < 0 {
		return ""
	}
	return string(code)
}
