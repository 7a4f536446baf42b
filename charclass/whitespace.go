package charclass

// IsNewLine reports whether cp is an ECMAScript line terminator.
func IsNewLine(cp rune) bool {
	return cp == '\n' || cp == '\r' || cp == 0x2028 || cp == 0x2029
}

// IsWhitespace reports whether cp is whitespace that is not a line terminator.
func IsWhitespace(cp rune) bool {
	switch cp {
	case ' ', '\t', '\v', '\f', 0xa0, 0x1680, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return cp >= 0x2000 && cp <= 0x200a
}

// NextLineBreak returns the offset of the first line terminator in
// src[from:end] and its byte length, which is 2 for "\r\n" and 3 for
// U+2028 and U+2029. It returns -1, 0 when there is none.
func NextLineBreak(src string, from, end int) (int, int) {
	for i := from; i < end; i++ {
		switch src[i] {
		case '\n':
			return i, 1
		case '\r':
			if i+1 < end && src[i+1] == '\n' {
				return i, 2
			}
			return i, 1
		case 0xe2:
			if i+2 < len(src) && src[i+1] == 0x80 && (src[i+2] == 0xa8 || src[i+2] == 0xa9) {
				return i, 3
			}
		}
	}
	return -1, 0
}
