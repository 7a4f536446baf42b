package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/go-estree/charclass"
	"github.com/t14raptor/go-estree/token"
)

// readWord1 reads an identifier name, decoding \u escapes. It sets
// containsEsc when an escape was seen.
func (p *parser) readWord1() string {
	p.containsEsc = false
	var word strings.Builder
	first := true
	chunkStart := p.pos
	astral := p.ecmaVersion >= 6
	for p.pos < len(p.input) {
		ch := p.fullCharCodeAtPos()
		switch {
		case charclass.IsIdentifierChar(ch, astral):
			if ch < utf8.RuneSelf {
				p.pos++
			} else {
				_, size := utf8.DecodeRuneInString(p.input[p.pos:])
				p.pos += size
			}
		case ch == '\\':
			p.containsEsc = true
			word.WriteString(p.input[chunkStart:p.pos])
			escStart := p.pos
			p.pos++
			if p.charAt(p.pos) != 'u' {
				p.invalidStringToken(p.pos, "Expecting Unicode escape sequence \\uXXXX")
			}
			p.pos++
			esc := rune(p.readCodePoint())
			valid := charclass.IsIdentifierChar
			if first {
				valid = charclass.IsIdentifierStart
			}
			if !valid(esc, astral) {
				p.invalidStringToken(escStart, "Invalid Unicode escape")
			}
			word.WriteString(codePointToString(esc))
			chunkStart = p.pos
		default:
			return word.String() + p.input[chunkStart:p.pos]
		}
		first = false
	}
	return word.String() + p.input[chunkStart:p.pos]
}

// readWord reads an identifier or keyword token.
func (p *parser) readWord() {
	word := p.readWord1()
	typ := token.Name
	if p.keywords.Has(word) {
		typ, _ = token.Keyword(word)
	}
	p.finishToken(typ, word)
}
