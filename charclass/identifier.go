// Package charclass classifies code points for the tokenizer: identifier
// start and continuation characters, whitespace and line terminators.
package charclass

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/rangetable"
)

// Lookup tables for ASCII identifier characters.
var asciiStart, asciiContinue [utf8.RuneSelf]bool

var (
	idStart    *unicode.RangeTable
	idContinue *unicode.RangeTable

	astralStart    []span
	astralContinue []span
)

// span is an inclusive code point range above the BMP.
type span struct {
	lo, hi rune
}

func init() {
	for i := 0; i < utf8.RuneSelf; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}

	idStart = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_ID_Start)
	idContinue = rangetable.Merge(idStart, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)

	astralStart = astralSpans(idStart)
	astralContinue = astralSpans(idContinue)
}

func astralSpans(t *unicode.RangeTable) []span {
	var out []span
	for _, r := range t.R32 {
		lo, hi := rune(r.Lo), rune(r.Hi)
		if hi <= 0xffff {
			continue
		}
		if r.Stride == 1 {
			out = append(out, span{lo: max(lo, 0x10000), hi: hi})
			continue
		}
		for c := lo; c <= hi; c += rune(r.Stride) {
			if c > 0xffff {
				out = append(out, span{lo: c, hi: c})
			}
		}
	}
	return out
}

func inAstral(spans []span, cp rune) bool {
	_, found := slices.BinarySearchFunc(spans, cp, func(s span, cp rune) int {
		switch {
		case s.hi < cp:
			return -1
		case s.lo > cp:
			return 1
		}
		return 0
	})
	return found
}

// Pattern_Syntax and Pattern_White_Space code points are never part of an
// identifier even when their general category would allow it.
func patternChar(cp rune) bool {
	return unicode.Is(unicode.Pattern_Syntax, cp) || unicode.Is(unicode.Pattern_White_Space, cp)
}

// IsIdentifierStart reports whether cp may start an identifier. Code points
// above U+FFFF are only accepted when astral is set.
func IsIdentifierStart(cp rune, astral bool) bool {
	if cp < 0 {
		return false
	}
	if cp < utf8.RuneSelf {
		return asciiStart[cp]
	}
	if cp <= 0xffff {
		return cp >= 0xaa && unicode.Is(idStart, cp) && !patternChar(cp)
	}
	if !astral || cp > unicode.MaxRune {
		return false
	}
	return inAstral(astralStart, cp)
}

// IsIdentifierChar reports whether cp may continue an identifier.
func IsIdentifierChar(cp rune, astral bool) bool {
	if cp < 0 {
		return false
	}
	if cp < utf8.RuneSelf {
		return asciiContinue[cp]
	}
	if cp <= 0xffff {
		if cp == 0x200c || cp == 0x200d {
			return true
		}
		return cp >= 0xaa && unicode.Is(idContinue, cp) && !patternChar(cp)
	}
	if !astral || cp > unicode.MaxRune {
		return false
	}
	return inAstral(astralContinue, cp)
}
