package parser

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/t14raptor/go-estree/charclass"
	"github.com/t14raptor/go-estree/jsregexp"
	"github.com/t14raptor/go-estree/token"
)

// RegExpValue is the token value of a regular expression literal.
type RegExpValue struct {
	Pattern string
	Flags   string
	// Value is nil when the expression cannot be compiled by the host
	// engine.
	Value *regexp2.Regexp
}

func (p *parser) readRegexp() {
	start := p.pos
	escaped, inClass := false, false
loop:
	for {
		if p.pos >= len(p.input) {
			p.raise(start, "Unterminated regular expression")
		}
		ch, size := rune(p.input[p.pos]), 1
		if ch >= utf8.RuneSelf {
			ch, size = utf8.DecodeRuneInString(p.input[p.pos:])
		}
		if charclass.IsNewLine(ch) {
			p.raise(start, "Unterminated regular expression")
		}
		if !escaped {
			switch {
			case ch == '[':
				inClass = true
			case ch == ']' && inClass:
				inClass = false
			case ch == '/' && !inClass:
				break loop
			}
			escaped = ch == '\\'
		} else {
			escaped = false
		}
		p.pos += size
	}
	pattern := p.input[start:p.pos]
	p.pos++
	flagsStart := p.pos
	flags := p.readWord1()
	if p.containsEsc {
		p.unexpectedAt(flagsStart)
	}

	if p.regexpState == nil {
		p.regexpState = jsregexp.NewValidator(p.ecmaVersion)
	}
	if err := p.regexpState.Validate(pattern, flags); err != nil {
		p.raiseRegExp(start, err)
	}

	p.finishToken(token.RegExp, &RegExpValue{
		Pattern: pattern,
		Flags:   flags,
		Value:   compileRegExp(pattern, flags),
	})
}

func compileRegExp(pattern, flags string) *regexp2.Regexp {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'u', 'v':
			// Unicode mode patterns are left uncompiled.
			return nil
		}
	}
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil
	}
	return re
}
