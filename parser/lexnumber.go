package parser

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/t14raptor/go-estree/charclass"
	"github.com/t14raptor/go-estree/token"
)

// readInt reads digits in radix. length < 0 reads as many as there are
// and permits numeric separators from ES2021.
func (p *parser) readInt(radix, length int, maybeLegacyOctal bool) (float64, bool) {
	allowSeparators := p.ecmaVersion >= 12 && length < 0
	legacyOctal := maybeLegacyOctal && p.charAt(p.pos) == '0'
	start := p.pos
	total := 0.0
	var lastCode byte
	for i := 0; length < 0 || i < length; i, p.pos = i+1, p.pos+1 {
		if p.pos >= len(p.input) {
			break
		}
		code := p.input[p.pos]
		if allowSeparators && code == '_' {
			if legacyOctal {
				p.raiseRecoverable(p.pos, "Numeric separator is not allowed in legacy octal numeric literals")
			}
			if lastCode == '_' {
				p.raiseRecoverable(p.pos, "Numeric separator must be exactly one underscore")
			}
			if i == 0 {
				p.raiseRecoverable(p.pos, "Numeric separator is not allowed at the first of digits")
			}
			lastCode = code
			continue
		}
		val := digitVal(code)
		if val >= radix {
			break
		}
		lastCode = code
		total = total*float64(radix) + float64(val)
	}
	if allowSeparators && lastCode == '_' {
		p.raiseRecoverable(p.pos-1, "Numeric separator is not allowed at the last of digits")
	}
	if p.pos == start || length >= 0 && p.pos-start != length {
		return 0, false
	}
	return total, true
}

func digitVal(c byte) int {
	switch {
	case c >= 'a':
		return int(c-'a') + 10
	case c >= 'A':
		return int(c-'A') + 10
	case c >= '0' && c <= '9':
		return int(c - '0')
	}
	return math.MaxInt
}

func (p *parser) readRadixNumber(radix int) {
	start := p.pos
	p.pos += 2
	val, ok := p.readInt(radix, -1, false)
	if !ok {
		p.raisef(p.start+2, "Expected number in radix %d", radix)
	}
	if p.ecmaVersion >= 11 && p.charAt(p.pos) == 'n' {
		n := stringToBigInt(p.input[start:p.pos], 0)
		p.pos++
		p.finishToken(token.Number, n)
		return
	}
	if charclass.IsIdentifierStart(p.fullCharCodeAtPos(), p.ecmaVersion >= 6) {
		p.raise(p.pos, "Identifier directly after number")
	}
	p.finishToken(token.Number, val)
}

func (p *parser) readNumber(startsWithDot bool) {
	start := p.pos
	if !startsWithDot {
		if _, ok := p.readInt(10, -1, true); !ok {
			p.raise(start, "Invalid number")
		}
	}
	octal := p.pos-start >= 2 && p.input[start] == '0'
	if octal && p.strict {
		p.raise(start, "Invalid number")
	}
	next := p.charAt(p.pos)
	if !octal && !startsWithDot && p.ecmaVersion >= 11 && next == 'n' {
		n := stringToBigInt(p.input[start:p.pos], 10)
		p.pos++
		if charclass.IsIdentifierStart(p.fullCharCodeAtPos(), p.ecmaVersion >= 6) {
			p.raise(p.pos, "Identifier directly after number")
		}
		p.finishToken(token.Number, n)
		return
	}
	if octal && strings.ContainsAny(p.input[start:p.pos], "89") {
		octal = false
	}
	if next == '.' && !octal {
		p.pos++
		p.readInt(10, -1, false)
		next = p.charAt(p.pos)
	}
	if (next == 'e' || next == 'E') && !octal {
		p.pos++
		if next = p.charAt(p.pos); next == '+' || next == '-' {
			p.pos++
		}
		if _, ok := p.readInt(10, -1, false); !ok {
			p.raise(start, "Invalid number")
		}
	}
	if charclass.IsIdentifierStart(p.fullCharCodeAtPos(), p.ecmaVersion >= 6) {
		p.raise(p.pos, "Identifier directly after number")
	}
	p.finishToken(token.Number, stringToNumber(p.input[start:p.pos], octal))
}

func stringToNumber(s string, legacyOctal bool) float64 {
	if legacyOctal {
		v := 0.0
		for i := 0; i < len(s); i++ {
			v = v*8 + float64(s[i]-'0')
		}
		return v
	}
	// Out of range literals come back as ±Inf together with an error.
	v, _ := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
	return v
}

// stringToBigInt parses a bigint literal without its suffix. base 0 takes
// the radix from the 0x, 0o or 0b prefix.
func stringToBigInt(s string, base int) *big.Int {
	n, ok := new(big.Int).SetString(strings.ReplaceAll(s, "_", ""), base)
	if !ok {
		return nil
	}
	return n
}
