package jsregexp

func (v *Validator) parsePattern() {
	v.pos = 0
	v.lastIntValue = 0
	v.lastStringValue = ""
	v.lastAssertionIsQuantifiable = false
	v.numCapturingParens = 0
	v.maxBackReference = 0
	v.groupNames = map[string][]*BranchID{}
	v.backReferenceNames = v.backReferenceNames[:0]
	v.branchID = nil

	v.disjunction()

	if v.pos != len(v.source) {
		if v.eat(')') {
			v.raise("Unmatched ')'")
		}
		if v.eat(']') || v.eat('}') {
			v.raise("Lone quantifier brackets")
		}
	}
	if v.maxBackReference > v.numCapturingParens {
		v.raise("Invalid escape")
	}
	for _, name := range v.backReferenceNames {
		if _, ok := v.groupNames[name]; !ok {
			v.raise("Invalid named capture referenced")
		}
	}
}

func (v *Validator) disjunction() {
	track := v.ecmaVersion >= 16
	if track {
		v.branchID = newBranchID(v.branchID, nil)
	}
	v.alternative()
	for v.eat('|') {
		if track {
			v.branchID = v.branchID.Sibling()
		}
		v.alternative()
	}
	if track {
		v.branchID = v.branchID.parent
	}

	if v.eatQuantifier(true) {
		v.raise("Nothing to repeat")
	}
	if v.eat('{') {
		v.raise("Lone quantifier brackets")
	}
}

func (v *Validator) alternative() {
	for v.pos < len(v.source) && v.eatTerm() {
	}
}

func (v *Validator) eatTerm() bool {
	if v.eatAssertion() {
		// Only lookaheads may be quantified, and only outside unicode mode.
		if v.lastAssertionIsQuantifiable && v.eatQuantifier(false) && v.switchU {
			v.raise("Invalid quantifier")
		}
		return true
	}
	var ok bool
	if v.switchU {
		ok = v.eatAtom()
	} else {
		ok = v.eatExtendedAtom()
	}
	if ok {
		v.eatQuantifier(false)
		return true
	}
	return false
}

func (v *Validator) eatAssertion() bool {
	start := v.pos
	v.lastAssertionIsQuantifiable = false

	if v.eat('^') || v.eat('$') {
		return true
	}
	if v.eat('\\') {
		if v.eat('B') || v.eat('b') {
			return true
		}
		v.pos = start
	}
	if v.eat('(') && v.eat('?') {
		lookbehind := false
		if v.ecmaVersion >= 9 {
			lookbehind = v.eat('<')
		}
		if v.eat('=') || v.eat('!') {
			v.disjunction()
			if !v.eat(')') {
				v.raise("Unterminated group")
			}
			v.lastAssertionIsQuantifiable = !lookbehind
			return true
		}
	}
	v.pos = start
	return false
}

func (v *Validator) eatQuantifier(noError bool) bool {
	if v.eat('*') || v.eat('+') || v.eat('?') || v.eatBracedQuantifier(noError) {
		v.eat('?')
		return true
	}
	return false
}

func (v *Validator) eatBracedQuantifier(noError bool) bool {
	start := v.pos
	if !v.eat('{') {
		return false
	}
	if v.eatDecimalDigits() {
		lo, hi := v.lastIntValue, -1
		if v.eat(',') && v.eatDecimalDigits() {
			hi = v.lastIntValue
		}
		if v.eat('}') {
			if hi != -1 && hi < lo && !noError {
				v.raise("numbers out of order in {} quantifier")
			}
			return true
		}
	}
	if v.switchU && !noError {
		v.raise("Incomplete quantifier")
	}
	v.pos = start
	return false
}

func (v *Validator) eatAtom() bool {
	return v.eatPatternCharacters() ||
		v.eat('.') ||
		v.eatReverseSolidusAtomEscape() ||
		v.eatCharacterClass() ||
		v.eatUncapturingGroup() ||
		v.eatCapturingGroup()
}

// eatExtendedAtom is the Annex B atom grammar used outside unicode mode.
func (v *Validator) eatExtendedAtom() bool {
	return v.eat('.') ||
		v.eatReverseSolidusAtomEscape() ||
		v.eatCharacterClass() ||
		v.eatUncapturingGroup() ||
		v.eatCapturingGroup() ||
		v.eatInvalidBracedQuantifier() ||
		v.eatExtendedPatternCharacter()
}

func (v *Validator) eatReverseSolidusAtomEscape() bool {
	start := v.pos
	if v.eat('\\') {
		if v.eatAtomEscape() {
			return true
		}
		v.pos = start
	}
	return false
}

func (v *Validator) eatUncapturingGroup() bool {
	start := v.pos
	if !v.eat('(') {
		return false
	}
	if v.eat('?') {
		if v.ecmaVersion >= 16 {
			v.eatModifierGroupPrefix()
		}
		if v.eat(':') {
			v.disjunction()
			if v.eat(')') {
				return true
			}
			v.raise("Unterminated group")
		}
	}
	v.pos = start
	return false
}

// eatModifierGroupPrefix consumes the `ims-ims` part of `(?ims-ims:...)`.
func (v *Validator) eatModifierGroupPrefix() {
	add := v.eatModifiers()
	hasHyphen := v.eat('-')
	if add == "" && !hasHyphen {
		return
	}
	for i := 0; i < len(add); i++ {
		if indexFrom(add, add[i], i+1) {
			v.raise("Duplicate regular expression modifiers")
		}
	}
	if !hasHyphen {
		return
	}
	remove := v.eatModifiers()
	if add == "" && remove == "" && v.current() == ':' {
		v.raise("Invalid regular expression modifiers")
	}
	for i := 0; i < len(remove); i++ {
		if indexFrom(remove, remove[i], i+1) || indexFrom(add, remove[i], 0) {
			v.raise("Duplicate regular expression modifiers")
		}
	}
}

func indexFrom(s string, c byte, from int) bool {
	for i := from; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}
	return false
}

func (v *Validator) eatModifiers() string {
	var mods []byte
	for {
		ch := v.current()
		if ch != 'i' && ch != 'm' && ch != 's' {
			return string(mods)
		}
		mods = append(mods, byte(ch))
		v.advance()
	}
}

func (v *Validator) eatCapturingGroup() bool {
	if !v.eat('(') {
		return false
	}
	if v.ecmaVersion >= 9 {
		v.groupSpecifier()
	} else if v.current() == '?' {
		v.raise("Invalid group")
	}
	v.disjunction()
	if v.eat(')') {
		v.numCapturingParens++
		return true
	}
	v.raise("Unterminated group")
	return false
}

func (v *Validator) eatInvalidBracedQuantifier() bool {
	if v.eatBracedQuantifier(true) {
		v.raise("Nothing to repeat")
	}
	return false
}

func isSyntaxCharacter(ch int) bool {
	return ch == '$' || ch >= '(' && ch <= '+' || ch == '.' || ch == '?' ||
		ch >= '[' && ch <= '^' || ch >= '{' && ch <= '}'
}

func (v *Validator) eatSyntaxCharacter() bool {
	ch := v.current()
	if isSyntaxCharacter(ch) {
		v.lastIntValue = ch
		v.advance()
		return true
	}
	return false
}

func (v *Validator) eatPatternCharacters() bool {
	start := v.pos
	for ch := v.current(); ch != -1 && !isSyntaxCharacter(ch); ch = v.current() {
		v.advance()
	}
	return v.pos != start
}

func (v *Validator) eatExtendedPatternCharacter() bool {
	ch := v.current()
	if ch != -1 && ch != '$' && !(ch >= '(' && ch <= '+') && ch != '.' && ch != '?' && ch != '[' && ch != '^' && ch != '|' {
		v.advance()
		return true
	}
	return false
}

// groupSpecifier handles the optional `?<name>` of a capturing group.
// Repeated names are allowed only in alternatives that exclude each other.
func (v *Validator) groupSpecifier() {
	if !v.eat('?') {
		return
	}
	if !v.eatGroupName() {
		v.raise("Invalid group")
	}
	name := v.lastStringValue
	known, seen := v.groupNames[name]
	if v.ecmaVersion < 16 {
		if seen {
			v.raise("Duplicate capture group name")
		}
		v.groupNames[name] = nil
		return
	}
	for _, alt := range known {
		if !alt.SeparatedFrom(v.branchID) {
			v.raise("Duplicate capture group name")
		}
	}
	v.groupNames[name] = append(known, v.branchID)
}

func (v *Validator) eatGroupName() bool {
	v.lastStringValue = ""
	if v.eat('<') {
		if v.eatIdentifierName() && v.eat('>') {
			return true
		}
		v.raise("Invalid capture group name")
	}
	return false
}
