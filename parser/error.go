package parser

import (
	"errors"
	"fmt"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/jsregexp"
)

// SyntaxError is returned for every rejected input.
type SyntaxError struct {
	Message string
	// Pos is the offset the error is reported at.
	Pos int
	Loc ast.Position
	// RaisedAt is the tokenizer position when the error was raised.
	RaisedAt int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.Message, e.Loc.Line, e.Loc.Column)
}

// checkOffset rejects start offsets outside src. The location is clamped to
// the nearest end of the input.
func checkOffset(src string, offset int) error {
	if offset >= 0 && offset <= len(src) {
		return nil
	}
	at := 0
	if offset > 0 {
		at = len(src)
	}
	return &SyntaxError{
		Message:  fmt.Sprintf("Offset %d out of range", offset),
		Pos:      offset,
		Loc:      GetLineInfo(src, at),
		RaisedAt: offset,
	}
}

// raise aborts the parse with an error at pos.
func (p *parser) raise(pos int, msg string) {
	panic(&SyntaxError{
		Message:  msg,
		Pos:      pos,
		Loc:      GetLineInfo(p.input, pos),
		RaisedAt: p.pos,
	})
}

func (p *parser) raisef(pos int, format string, args ...any) {
	p.raise(pos, fmt.Sprintf(format, args...))
}

// raiseRecoverable reports errors a tolerant host could continue past.
// They abort the parse like any other.
func (p *parser) raiseRecoverable(pos int, msg string) {
	p.raise(pos, msg)
}

func (p *parser) unexpected() {
	p.unexpectedAt(p.start)
}

func (p *parser) unexpectedAt(pos int) {
	p.raise(pos, "Unexpected token")
}

// raiseRegExp reports a regular expression error at the start of its body.
func (p *parser) raiseRegExp(pos int, err error) {
	var re *jsregexp.Error
	if errors.As(err, &re) {
		p.raiseRecoverable(pos, re.Error())
	}
	p.raise(pos, err.Error())
}

// catch turns a raised *SyntaxError back into an error. Other panics are
// propagated.
func catch(err *error) {
	if r := recover(); r != nil {
		se, ok := r.(*SyntaxError)
		if !ok {
			panic(r)
		}
		*err = se
	}
}
