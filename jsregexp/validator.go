package jsregexp

import (
	"unicode/utf16"
)

// Error is a regular expression syntax error.
type Error struct {
	Pattern string
	Message string
	// InFlags is set for errors in the flags rather than the pattern.
	InFlags bool
}

func (e *Error) Error() string {
	if e.InFlags {
		return e.Message
	}
	return "Invalid regular expression: /" + e.Pattern + "/: " + e.Message
}

// charset results tell whether a class construct may match strings, which
// forbids negating it.
type charset int

const (
	charsetNone charset = iota
	charsetOk
	charsetString
)

// Validator checks regular expression patterns for one language version.
// A Validator may be reused for many patterns but not concurrently.
type Validator struct {
	ecmaVersion int
	props       *propertyData

	source  []uint16
	pattern string

	switchU bool
	switchV bool
	switchN bool

	pos                         int
	lastIntValue                int
	lastStringValue             string
	lastAssertionIsQuantifiable bool
	numCapturingParens          int
	maxBackReference            int
	groupNames                  map[string][]*BranchID
	backReferenceNames          []string
	branchID                    *BranchID
}

// NewValidator returns a Validator for the given language edition (5, 6,
// ... 17).
func NewValidator(ecmaVersion int) *Validator {
	return &Validator{
		ecmaVersion: ecmaVersion,
		props:       propertiesFor(ecmaVersion),
	}
}

// Validate checks flags and then pattern.
func (v *Validator) Validate(pattern, flags string) error {
	f, err := ParseFlags(flags, v.ecmaVersion)
	if err != nil {
		return err
	}
	return v.ValidatePattern(pattern, f)
}

// ValidatePattern checks pattern under already validated flags.
func (v *Validator) ValidatePattern(pattern string, flags Flag) (err error) {
	v.reset(pattern, flags)
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()

	v.parsePattern()
	// A pattern containing a group name is reparsed with named groups
	// enabled, which changes the meaning of \k.
	if !v.switchN && v.ecmaVersion >= 9 && len(v.groupNames) > 0 {
		v.switchN = true
		v.parsePattern()
	}
	return nil
}

func (v *Validator) reset(pattern string, flags Flag) {
	v.pattern = pattern
	v.source = utf16.Encode([]rune(pattern))
	if flags.Has(FlagUnicodeSets) && v.ecmaVersion >= 15 {
		v.switchU, v.switchV, v.switchN = true, true, true
	} else {
		v.switchU = flags.Has(FlagUnicode) && v.ecmaVersion >= 6
		v.switchV = false
		v.switchN = flags.Has(FlagUnicode) && v.ecmaVersion >= 9
	}
}

func (v *Validator) raise(msg string) {
	panic(&Error{Pattern: v.pattern, Message: msg})
}

// at returns the character at i, combining surrogate pairs in unicode mode.
// It returns -1 past the end.
func (v *Validator) at(i int, forceU bool) int {
	s := v.source
	if i >= len(s) {
		return -1
	}
	c := int(s[i])
	if !(forceU || v.switchU) || c <= 0xd7ff || c >= 0xe000 || i+1 >= len(s) {
		return c
	}
	next := int(s[i+1])
	if next >= 0xdc00 && next <= 0xdfff {
		return (c << 10) + next - 0x35fdc00
	}
	return c
}

func (v *Validator) nextIndex(i int, forceU bool) int {
	s := v.source
	if i >= len(s) {
		return len(s)
	}
	c := s[i]
	if !(forceU || v.switchU) || c <= 0xd7ff || c >= 0xe000 || i+1 >= len(s) || s[i+1] < 0xdc00 || s[i+1] > 0xdfff {
		return i + 1
	}
	return i + 2
}

func (v *Validator) current() int            { return v.at(v.pos, false) }
func (v *Validator) currentU(force bool) int { return v.at(v.pos, force) }
func (v *Validator) lookahead() int          { return v.at(v.nextIndex(v.pos, false), false) }
func (v *Validator) advance()                { v.pos = v.nextIndex(v.pos, false) }
func (v *Validator) advanceU(force bool)     { v.pos = v.nextIndex(v.pos, force) }

func (v *Validator) eat(ch int) bool {
	if v.current() == ch {
		v.advance()
		return true
	}
	return false
}

func (v *Validator) eatChars(chs ...int) bool {
	pos := v.pos
	for _, ch := range chs {
		c := v.at(pos, false)
		if c == -1 || c != ch {
			return false
		}
		pos = v.nextIndex(pos, false)
	}
	v.pos = pos
	return true
}
