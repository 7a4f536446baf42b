package jsregexp

func isCharacterClassEscape(ch int) bool {
	switch ch {
	case 'd', 'D', 's', 'S', 'w', 'W':
		return true
	}
	return false
}

func (v *Validator) eatCharacterClassEscape() charset {
	ch := v.current()
	if isCharacterClassEscape(ch) {
		v.lastIntValue = -1
		v.advance()
		return charsetOk
	}

	if v.switchU && v.ecmaVersion >= 9 && (ch == 'P' || ch == 'p') {
		negate := ch == 'P'
		v.lastIntValue = -1
		v.advance()
		if v.eat('{') {
			if result := v.eatUnicodePropertyValueExpression(); result != charsetNone && v.eat('}') {
				if negate && result == charsetString {
					v.raise("Invalid property name")
				}
				return result
			}
		}
		v.raise("Invalid property name")
	}
	return charsetNone
}

func (v *Validator) eatCharacterClass() bool {
	if !v.eat('[') {
		return false
	}
	negate := v.eat('^')
	result := v.classContents()
	if !v.eat(']') {
		v.raise("Unterminated character class")
	}
	if negate && result == charsetString {
		v.raise("Negated character class may contain strings")
	}
	return true
}

func (v *Validator) classContents() charset {
	if v.current() == ']' {
		return charsetOk
	}
	if v.switchV {
		return v.classSetExpression()
	}
	v.nonEmptyClassRanges()
	return charsetOk
}

func (v *Validator) nonEmptyClassRanges() {
	for v.eatClassAtom() {
		left := v.lastIntValue
		if v.eat('-') && v.eatClassAtom() {
			right := v.lastIntValue
			if v.switchU && (left == -1 || right == -1) {
				v.raise("Invalid character class")
			}
			if left != -1 && right != -1 && left > right {
				v.raise("Range out of order in character class")
			}
		}
	}
}

func (v *Validator) eatClassAtom() bool {
	start := v.pos
	if v.eat('\\') {
		if v.eatClassEscape() {
			return true
		}
		if v.switchU {
			if ch := v.current(); ch == 'c' || isOctalDigit(ch) {
				v.raise("Invalid class escape")
			}
			v.raise("Invalid escape")
		}
		v.pos = start
	}

	ch := v.current()
	if ch != -1 && ch != ']' {
		v.lastIntValue = ch
		v.advance()
		return true
	}
	return false
}

func (v *Validator) eatClassEscape() bool {
	start := v.pos
	if v.eat('b') {
		v.lastIntValue = '\b'
		return true
	}
	if v.switchU && v.eat('-') {
		v.lastIntValue = '-'
		return true
	}
	if !v.switchU && v.eat('c') {
		if v.eatClassControlLetter() {
			return true
		}
		v.pos = start
	}
	return v.eatCharacterClassEscape() != charsetNone || v.eatCharacterEscape()
}

func (v *Validator) eatClassControlLetter() bool {
	ch := v.current()
	if isDecimalDigit(ch) || ch == '_' {
		v.lastIntValue = ch % 0x20
		v.advance()
		return true
	}
	return false
}

// classSetExpression parses the contents of a v-mode class: a union, or a
// chain of && intersections or -- subtractions.
func (v *Validator) classSetExpression() charset {
	result := charsetOk
	switch {
	case v.eatClassSetRange():
	default:
		sub := v.eatClassSetOperand()
		if sub == charsetNone {
			v.raise("Invalid character in character class")
		}
		if sub == charsetString {
			result = charsetString
		}
		start := v.pos
		for v.eatChars('&', '&') {
			if v.current() != '&' {
				if sub = v.eatClassSetOperand(); sub != charsetNone {
					if sub != charsetString {
						result = charsetOk
					}
					continue
				}
			}
			v.raise("Invalid character in character class")
		}
		if start != v.pos {
			return result
		}
		for v.eatChars('-', '-') {
			if v.eatClassSetOperand() != charsetNone {
				continue
			}
			v.raise("Invalid character in character class")
		}
		if start != v.pos {
			return result
		}
	}
	for {
		if v.eatClassSetRange() {
			continue
		}
		sub := v.eatClassSetOperand()
		if sub == charsetNone {
			return result
		}
		if sub == charsetString {
			result = charsetString
		}
	}
}

func (v *Validator) eatClassSetRange() bool {
	start := v.pos
	if v.eatClassSetCharacter() {
		left := v.lastIntValue
		if v.eat('-') && v.eatClassSetCharacter() {
			right := v.lastIntValue
			if left != -1 && right != -1 && left > right {
				v.raise("Range out of order in character class")
			}
			return true
		}
		v.pos = start
	}
	return false
}

func (v *Validator) eatClassSetOperand() charset {
	if v.eatClassSetCharacter() {
		return charsetOk
	}
	if r := v.eatClassStringDisjunction(); r != charsetNone {
		return r
	}
	return v.eatNestedClass()
}

func (v *Validator) eatNestedClass() charset {
	start := v.pos
	if v.eat('[') {
		negate := v.eat('^')
		result := v.classContents()
		if v.eat(']') {
			if negate && result == charsetString {
				v.raise("Negated character class may contain strings")
			}
			return result
		}
		v.pos = start
	}
	if v.eat('\\') {
		if result := v.eatCharacterClassEscape(); result != charsetNone {
			return result
		}
		v.pos = start
	}
	return charsetNone
}

// eatClassStringDisjunction parses `\q{abc|d}`.
func (v *Validator) eatClassStringDisjunction() charset {
	start := v.pos
	if v.eatChars('\\', 'q') {
		if !v.eat('{') {
			v.raise("Invalid escape")
		}
		result := v.classString()
		for v.eat('|') {
			if v.classString() == charsetString {
				result = charsetString
			}
		}
		if v.eat('}') {
			return result
		}
		v.pos = start
	}
	return charsetNone
}

func (v *Validator) classString() charset {
	count := 0
	for v.eatClassSetCharacter() {
		count++
	}
	if count == 1 {
		return charsetOk
	}
	return charsetString
}

func (v *Validator) eatClassSetCharacter() bool {
	start := v.pos
	if v.eat('\\') {
		if v.eatCharacterEscape() || v.eatClassSetReservedPunctuator() {
			return true
		}
		if v.eat('b') {
			v.lastIntValue = '\b'
			return true
		}
		v.pos = start
		return false
	}
	ch := v.current()
	if ch < 0 || ch == v.lookahead() && isClassSetReservedDoublePunctuator(ch) {
		return false
	}
	if isClassSetSyntaxCharacter(ch) {
		return false
	}
	v.advance()
	v.lastIntValue = ch
	return true
}

func isClassSetReservedDoublePunctuator(ch int) bool {
	return ch == '!' || ch >= '#' && ch <= '&' || ch >= '*' && ch <= ',' || ch == '.' ||
		ch >= ':' && ch <= '@' || ch == '^' || ch == '`' || ch == '~'
}

func isClassSetSyntaxCharacter(ch int) bool {
	return ch == '(' || ch == ')' || ch == '-' || ch == '/' || ch >= '[' && ch <= ']' || ch >= '{' && ch <= '}'
}

func isClassSetReservedPunctuator(ch int) bool {
	return ch == '!' || ch == '#' || ch == '%' || ch == '&' || ch == ',' || ch == '-' ||
		ch >= ':' && ch <= '>' || ch == '@' || ch == '`' || ch == '~'
}

func (v *Validator) eatClassSetReservedPunctuator() bool {
	ch := v.current()
	if isClassSetReservedPunctuator(ch) {
		v.lastIntValue = ch
		v.advance()
		return true
	}
	return false
}
