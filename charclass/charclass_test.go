package charclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierASCII(t *testing.T) {
	for _, c := range "abcxyzABCXYZ$_" {
		assert.True(t, IsIdentifierStart(c, false), "start %q", c)
		assert.True(t, IsIdentifierChar(c, false), "char %q", c)
	}
	for _, c := range "0123456789" {
		assert.False(t, IsIdentifierStart(c, false), "start %q", c)
		assert.True(t, IsIdentifierChar(c, false), "char %q", c)
	}
	for _, c := range " -+*/\\#@!(){}[];:,.'\"`" {
		assert.False(t, IsIdentifierStart(c, false), "start %q", c)
		assert.False(t, IsIdentifierChar(c, false), "char %q", c)
	}
}

func TestIdentifierBMP(t *testing.T) {
	assert.True(t, IsIdentifierStart('ª', false))
	assert.True(t, IsIdentifierStart('é', false))
	assert.True(t, IsIdentifierStart('π', false))
	assert.True(t, IsIdentifierStart('日', false))
	assert.True(t, IsIdentifierStart('Ⅻ', false), "letter numbers start identifiers")
	assert.False(t, IsIdentifierStart('٣', false), "digits do not start identifiers")
	assert.True(t, IsIdentifierChar('٣', false))
	assert.True(t, IsIdentifierChar(0x0301, false), "combining marks continue identifiers")
	assert.False(t, IsIdentifierStart(0x0301, false))
	assert.True(t, IsIdentifierChar(0x200c, false))
	assert.True(t, IsIdentifierChar(0x200d, false))
	assert.False(t, IsIdentifierStart(0x200c, false))
	assert.False(t, IsIdentifierStart('·', false))
	assert.True(t, IsIdentifierChar('·', false), "U+00B7 is Other_ID_Continue")
	assert.False(t, IsIdentifierStart(0x2e2f, false), "pattern syntax is excluded")
	assert.False(t, IsIdentifierStart(0xa0, false))
}

func TestIdentifierAstral(t *testing.T) {
	// U+10400 DESERET CAPITAL LETTER LONG I
	require.True(t, IsIdentifierStart(0x10400, true))
	assert.False(t, IsIdentifierStart(0x10400, false), "astral needs the astral flag")
	// U+1D7CE MATHEMATICAL BOLD DIGIT ZERO
	assert.False(t, IsIdentifierStart(0x1d7ce, true))
	assert.True(t, IsIdentifierChar(0x1d7ce, true))
	// U+20000 CJK UNIFIED IDEOGRAPH-20000
	assert.True(t, IsIdentifierStart(0x20000, true))
	// U+1F600 GRINNING FACE
	assert.False(t, IsIdentifierStart(0x1f600, true))
	assert.False(t, IsIdentifierChar(0x1f600, true))
	assert.False(t, IsIdentifierChar(0x110000, true))
}

func TestAstralSpansSorted(t *testing.T) {
	for _, spans := range [][]span{astralStart, astralContinue} {
		require.NotEmpty(t, spans)
		for i, s := range spans {
			assert.LessOrEqual(t, s.lo, s.hi)
			assert.Greater(t, s.lo, rune(0xffff))
			if i > 0 {
				assert.Less(t, spans[i-1].hi, s.lo)
			}
		}
	}
}

func TestWhitespace(t *testing.T) {
	for _, c := range []rune{' ', '\t', '\v', '\f', 0xa0, 0xfeff, 0x2003, 0x3000} {
		assert.True(t, IsWhitespace(c), "%U", c)
		assert.False(t, IsNewLine(c), "%U", c)
	}
	for _, c := range []rune{'\n', '\r', 0x2028, 0x2029} {
		assert.True(t, IsNewLine(c), "%U", c)
		assert.False(t, IsWhitespace(c), "%U", c)
	}
}

func TestNextLineBreak(t *testing.T) {
	tests := []struct {
		src      string
		from     int
		pos, len int
	}{
		{"abc", 0, -1, 0},
		{"a\nb", 0, 1, 1},
		{"a\r\nb", 0, 1, 2},
		{"a\rb", 0, 1, 1},
		{"a\u2028b", 0, 1, 3},
		{"a\nb\nc", 2, 3, 1},
	}
	for _, tt := range tests {
		pos, n := NextLineBreak(tt.src, tt.from, len(tt.src))
		assert.Equal(t, tt.pos, pos, "%q", tt.src)
		assert.Equal(t, tt.len, n, "%q", tt.src)
	}
}
