package parser

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/t14raptor/go-estree/charclass"
	"github.com/t14raptor/go-estree/token"
)

// errInvalidTemplateEscape unwinds a template chunk with a bad escape so
// that it can be re-read as an invalid template token.
type errInvalidTemplateEscape struct{}

func (p *parser) readString(quote byte) {
	var out strings.Builder
	p.pos++
	p.loneSurrogate = false
	chunkStart := p.pos
	for {
		if p.pos >= len(p.input) {
			p.raise(p.start, "Unterminated string constant")
		}
		ch := p.input[p.pos]
		if ch == quote {
			break
		}
		switch {
		case ch == '\\':
			out.WriteString(p.input[chunkStart:p.pos])
			out.WriteString(p.readEscapedChar(false))
			chunkStart = p.pos
		case ch == '\n' || ch == '\r':
			p.raise(p.start, "Unterminated string constant")
		case ch < utf8.RuneSelf:
			p.pos++
		default:
			r, size := utf8.DecodeRuneInString(p.input[p.pos:])
			p.pos += size
			if r == 0x2028 || r == 0x2029 {
				if p.ecmaVersion < 10 {
					p.raise(p.start, "Unterminated string constant")
				}
				p.newLine()
			}
		}
	}
	out.WriteString(p.input[chunkStart:p.pos])
	p.pos++
	p.finishToken(token.String, out.String())
}

// tryReadTemplateToken reads a template chunk, falling back to an invalid
// template token when it holds a bad escape.
func (p *parser) tryReadTemplateToken() {
	p.inTemplateElement = true
	defer func() {
		p.inTemplateElement = false
		if r := recover(); r != nil {
			if _, ok := r.(errInvalidTemplateEscape); !ok {
				panic(r)
			}
			p.readInvalidTemplateToken()
		}
	}()
	p.readTmplToken()
}

func (p *parser) invalidStringToken(pos int, msg string) {
	if p.inTemplateElement && p.ecmaVersion >= 9 {
		panic(errInvalidTemplateEscape{})
	}
	p.raise(pos, msg)
}

func (p *parser) readTmplToken() {
	var out strings.Builder
	chunkStart := p.pos
	for {
		if p.pos >= len(p.input) {
			p.raise(p.start, "Unterminated template")
		}
		ch := p.input[p.pos]
		if ch == '`' || ch == '$' && p.charAt(p.pos+1) == '{' {
			if p.pos == p.start && (p.typ == token.Template || p.typ == token.InvalidTemplate) {
				if ch == '$' {
					p.pos += 2
					p.finishToken(token.DollarBrace, nil)
				} else {
					p.pos++
					p.finishToken(token.Backquote, nil)
				}
				return
			}
			out.WriteString(p.input[chunkStart:p.pos])
			p.finishToken(token.Template, out.String())
			return
		}
		switch {
		case ch == '\\':
			out.WriteString(p.input[chunkStart:p.pos])
			out.WriteString(p.readEscapedChar(true))
			chunkStart = p.pos
		case ch == '\r' || ch == '\n':
			out.WriteString(p.input[chunkStart:p.pos])
			p.pos++
			if ch == '\r' && p.charAt(p.pos) == '\n' {
				p.pos++
			}
			out.WriteByte('\n')
			p.newLine()
			chunkStart = p.pos
		case ch < utf8.RuneSelf:
			p.pos++
		default:
			r, size := utf8.DecodeRuneInString(p.input[p.pos:])
			p.pos += size
			if r == 0x2028 || r == 0x2029 {
				p.newLine()
			}
		}
	}
}

// readInvalidTemplateToken skips to the end of a template chunk holding an
// invalid escape. The token value is the raw text.
func (p *parser) readInvalidTemplateToken() {
	for ; p.pos < len(p.input); p.pos++ {
		switch p.input[p.pos] {
		case '\\':
			p.pos++
		case '$':
			if p.charAt(p.pos+1) != '{' {
				break
			}
			fallthrough
		case '`':
			p.finishToken(token.InvalidTemplate, p.input[p.start:p.pos])
			return
		case '\r':
			if p.charAt(p.pos+1) == '\n' {
				p.pos++
			}
			fallthrough
		case '\n':
			p.curLine++
			p.lineStart = p.pos + 1
		case 0xe2:
			if r, size := utf8.DecodeRuneInString(p.input[p.pos:]); r == 0x2028 || r == 0x2029 {
				p.pos += size - 1
				p.curLine++
				p.lineStart = p.pos + 1
			}
		}
	}
	p.raise(p.start, "Unterminated template")
}

// readEscapedChar decodes the escape sequence at the backslash under the
// current position.
func (p *parser) readEscapedChar(inTemplate bool) string {
	p.pos++
	if p.pos >= len(p.input) {
		return ""
	}
	ch, size := rune(p.input[p.pos]), 1
	if ch >= utf8.RuneSelf {
		ch, size = utf8.DecodeRuneInString(p.input[p.pos:])
	}
	p.pos += size
	switch ch {
	case 'n':
		return "\n"
	case 'r':
		return "\r"
	case 'x':
		return string(rune(p.readHexChar(2)))
	case 'u':
		return p.readUnicodeEscape()
	case 't':
		return "\t"
	case 'b':
		return "\b"
	case 'v':
		return "\v"
	case 'f':
		return "\f"
	case '\r', '\n':
		if ch == '\r' && p.charAt(p.pos) == '\n' {
			p.pos++
		}
		p.newLine()
		return ""
	case '8', '9':
		if p.strict {
			p.invalidStringToken(p.pos-1, "Invalid escape sequence")
		}
		if inTemplate {
			p.invalidStringToken(p.pos-1, "Invalid escape sequence in template string")
		}
	}
	if ch >= '0' && ch <= '7' {
		n := 1
		for n < 3 && p.pos-1+n < len(p.input) && p.input[p.pos-1+n] >= '0' && p.input[p.pos-1+n] <= '7' {
			n++
		}
		octalStr := p.input[p.pos-1 : p.pos-1+n]
		octal := parseOctal(octalStr)
		if octal > 255 {
			octalStr = octalStr[:len(octalStr)-1]
			octal = parseOctal(octalStr)
		}
		p.pos += len(octalStr) - 1
		next := p.charAt(p.pos)
		if (octalStr != "0" || next == '8' || next == '9') && (p.strict || inTemplate) {
			msg := "Octal literal in strict mode"
			if inTemplate {
				msg = "Octal literal in template string"
			}
			p.invalidStringToken(p.pos-1-len(octalStr), msg)
		}
		return string(rune(octal))
	}
	if charclass.IsNewLine(ch) {
		// Escaped line terminators are dropped from the value.
		p.newLine()
		return ""
	}
	return string(ch)
}

func parseOctal(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		v = v*8 + int(s[i]-'0')
	}
	return v
}

// readUnicodeEscape decodes a \u escape, joining an escaped surrogate pair
// into one code point.
func (p *parser) readUnicodeEscape() string {
	code := p.readCodePoint()
	if code >= 0xd800 && code <= 0xdbff && strings.HasPrefix(p.input[p.pos:], `\u`) {
		save := p.pos
		p.pos += 2
		if low, ok := p.readInt(16, 4, false); ok && low >= 0xdc00 && low <= 0xdfff {
			return string(utf16.DecodeRune(rune(code), rune(low)))
		}
		p.pos = save
	}
	if code >= 0xd800 && code <= 0xdfff {
		p.loneSurrogate = true
	}
	return codePointToString(rune(code))
}

func (p *parser) readHexChar(length int) int {
	codePos := p.pos
	n, ok := p.readInt(16, length, false)
	if !ok {
		p.invalidStringToken(codePos, "Bad character escape sequence")
	}
	return int(n)
}

// readCodePoint reads the XXXX or {X...} part of a \u escape.
func (p *parser) readCodePoint() int {
	if p.charAt(p.pos) != '{' {
		return p.readHexChar(4)
	}
	if p.ecmaVersion < 6 {
		p.unexpected()
	}
	p.pos++
	codePos := p.pos
	end := strings.IndexByte(p.input[p.pos:], '}')
	if end < 0 {
		p.invalidStringToken(codePos, "Bad character escape sequence")
	}
	n, ok := p.readInt(16, end, false)
	if !ok {
		p.invalidStringToken(codePos, "Bad character escape sequence")
	}
	p.pos++
	if n > 0x10ffff {
		p.invalidStringToken(codePos, "Code point out of bounds")
	}
	return int(n)
}
