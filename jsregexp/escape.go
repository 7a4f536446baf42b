package jsregexp

import "github.com/t14raptor/go-estree/charclass"

func (v *Validator) eatAtomEscape() bool {
	if v.eatBackReference() ||
		v.eatCharacterClassEscape() != charsetNone ||
		v.eatCharacterEscape() ||
		(v.switchN && v.eatKGroupName()) {
		return true
	}
	if v.switchU {
		if v.current() == 'c' {
			v.raise("Invalid unicode escape")
		}
		v.raise("Invalid escape")
	}
	return false
}

func (v *Validator) eatBackReference() bool {
	start := v.pos
	if v.eatDecimalEscape() {
		n := v.lastIntValue
		if v.switchU {
			if n > v.maxBackReference {
				v.maxBackReference = n
			}
			return true
		}
		if n <= v.numCapturingParens {
			return true
		}
		v.pos = start
	}
	return false
}

func (v *Validator) eatKGroupName() bool {
	if v.eat('k') {
		if v.eatGroupName() {
			v.backReferenceNames = append(v.backReferenceNames, v.lastStringValue)
			return true
		}
		v.raise("Invalid named reference")
	}
	return false
}

func (v *Validator) eatCharacterEscape() bool {
	return v.eatControlEscape() ||
		v.eatCControlLetter() ||
		v.eatZero() ||
		v.eatHexEscapeSequence() ||
		v.eatUnicodeEscapeSequence(false) ||
		(!v.switchU && v.eatLegacyOctalEscapeSequence()) ||
		v.eatIdentityEscape()
}

func (v *Validator) eatCControlLetter() bool {
	start := v.pos
	if v.eat('c') {
		if v.eatControlLetter() {
			return true
		}
		v.pos = start
	}
	return false
}

func (v *Validator) eatZero() bool {
	if v.current() == '0' && !isDecimalDigit(v.lookahead()) {
		v.lastIntValue = 0
		v.advance()
		return true
	}
	return false
}

var controlEscapes = map[int]int{'t': '\t', 'n': '\n', 'v': '\v', 'f': '\f', 'r': '\r'}

func (v *Validator) eatControlEscape() bool {
	if c, ok := controlEscapes[v.current()]; ok {
		v.lastIntValue = c
		v.advance()
		return true
	}
	return false
}

func isControlLetter(ch int) bool {
	return ch >= 'A' && ch <= 'Z' || ch >= 'a' && ch <= 'z'
}

func (v *Validator) eatControlLetter() bool {
	ch := v.current()
	if isControlLetter(ch) {
		v.lastIntValue = ch % 0x20
		v.advance()
		return true
	}
	return false
}

// eatUnicodeEscapeSequence reads the part of \uXXXX, \uXXXX\uXXXX or \u{X}
// after the backslash. Surrogate pairs and braces are only recognized in
// unicode mode or when forceU is set.
func (v *Validator) eatUnicodeEscapeSequence(forceU bool) bool {
	start := v.pos
	switchU := forceU || v.switchU

	if !v.eat('u') {
		return false
	}
	if v.eatFixedHexDigits(4) {
		lead := v.lastIntValue
		if switchU && lead >= 0xd800 && lead <= 0xdbff {
			leadEnd := v.pos
			if v.eat('\\') && v.eat('u') && v.eatFixedHexDigits(4) {
				trail := v.lastIntValue
				if trail >= 0xdc00 && trail <= 0xdfff {
					v.lastIntValue = (lead-0xd800)*0x400 + (trail - 0xdc00) + 0x10000
					return true
				}
			}
			v.pos = leadEnd
			v.lastIntValue = lead
		}
		return true
	}
	if switchU && v.eat('{') && v.eatHexDigits() && v.eat('}') && isValidUnicode(v.lastIntValue) {
		return true
	}
	if switchU {
		v.raise("Invalid unicode escape")
	}
	v.pos = start
	return false
}

func isValidUnicode(ch int) bool {
	return ch >= 0 && ch <= 0x10ffff
}

func (v *Validator) eatIdentityEscape() bool {
	if v.switchU {
		if v.eatSyntaxCharacter() {
			return true
		}
		if v.eat('/') {
			v.lastIntValue = '/'
			return true
		}
		return false
	}

	ch := v.current()
	if ch != 'c' && (!v.switchN || ch != 'k') {
		v.lastIntValue = ch
		v.advance()
		return true
	}
	return false
}

func (v *Validator) eatDecimalEscape() bool {
	v.lastIntValue = 0
	ch := v.current()
	if ch < '1' || ch > '9' {
		return false
	}
	for isDecimalDigit(ch) {
		v.lastIntValue = saturate(10*v.lastIntValue + (ch - '0'))
		v.advance()
		ch = v.current()
	}
	return true
}

func (v *Validator) eatHexEscapeSequence() bool {
	start := v.pos
	if v.eat('x') {
		if v.eatFixedHexDigits(2) {
			return true
		}
		if v.switchU {
			v.raise("Invalid escape")
		}
		v.pos = start
	}
	return false
}

func (v *Validator) eatLegacyOctalEscapeSequence() bool {
	if !v.eatOctalDigit() {
		return false
	}
	n1 := v.lastIntValue
	if v.eatOctalDigit() {
		n2 := v.lastIntValue
		if n1 <= 3 && v.eatOctalDigit() {
			v.lastIntValue = n1*64 + n2*8 + v.lastIntValue
		} else {
			v.lastIntValue = n1*8 + n2
		}
	} else {
		v.lastIntValue = n1
	}
	return true
}

func (v *Validator) eatOctalDigit() bool {
	ch := v.current()
	if isOctalDigit(ch) {
		v.lastIntValue = ch - '0'
		v.advance()
		return true
	}
	v.lastIntValue = 0
	return false
}

func (v *Validator) eatDecimalDigits() bool {
	start := v.pos
	v.lastIntValue = 0
	for ch := v.current(); isDecimalDigit(ch); ch = v.current() {
		v.lastIntValue = saturate(10*v.lastIntValue + (ch - '0'))
		v.advance()
	}
	return v.pos != start
}

func (v *Validator) eatHexDigits() bool {
	start := v.pos
	v.lastIntValue = 0
	for ch := v.current(); isHexDigit(ch); ch = v.current() {
		v.lastIntValue = saturate(16*v.lastIntValue + hexToInt(ch))
		v.advance()
	}
	return v.pos != start
}

func (v *Validator) eatFixedHexDigits(length int) bool {
	start := v.pos
	v.lastIntValue = 0
	for i := 0; i < length; i++ {
		ch := v.current()
		if !isHexDigit(ch) {
			v.pos = start
			return false
		}
		v.lastIntValue = 16*v.lastIntValue + hexToInt(ch)
		v.advance()
	}
	return true
}

// saturate keeps long digit runs from overflowing; anything this large is
// out of range for every use anyway.
func saturate(n int) int {
	const limit = 1 << 40
	if n > limit {
		return limit
	}
	return n
}

// Group names accept \u escapes with braces from ES2020 on, regardless of
// the u flag.
func (v *Validator) eatIdentifierName() bool {
	v.lastStringValue = ""
	if !v.eatIdentifierStart() {
		return false
	}
	v.lastStringValue += string(rune(v.lastIntValue))
	for v.eatIdentifierPart() {
		v.lastStringValue += string(rune(v.lastIntValue))
	}
	return true
}

func (v *Validator) eatIdentifierStart() bool {
	return v.eatIdentifierChar(func(ch int) bool {
		return charclass.IsIdentifierStart(rune(ch), true) || ch == '$' || ch == '_'
	})
}

func (v *Validator) eatIdentifierPart() bool {
	return v.eatIdentifierChar(func(ch int) bool {
		return charclass.IsIdentifierChar(rune(ch), true) || ch == '$' || ch == '_' || ch == 0x200c || ch == 0x200d
	})
}

func (v *Validator) eatIdentifierChar(accept func(int) bool) bool {
	start := v.pos
	forceU := v.ecmaVersion >= 11
	ch := v.currentU(forceU)
	v.advanceU(forceU)

	if ch == '\\' && v.eatUnicodeEscapeSequence(forceU) {
		ch = v.lastIntValue
	}
	if accept(ch) {
		v.lastIntValue = ch
		return true
	}
	v.pos = start
	return false
}

func isDecimalDigit(ch int) bool { return ch >= '0' && ch <= '9' }
func isOctalDigit(ch int) bool   { return ch >= '0' && ch <= '7' }

func isHexDigit(ch int) bool {
	return ch >= '0' && ch <= '9' || ch >= 'A' && ch <= 'F' || ch >= 'a' && ch <= 'f'
}

func hexToInt(ch int) int {
	switch {
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10
	}
	return ch - '0'
}
