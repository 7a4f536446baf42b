package parser_test

import (
	"strings"
	"testing"

	"github.com/t14raptor/go-estree/parser"
	"github.com/t14raptor/go-estree/token"
)

func tokenTypes(t *testing.T, code string, opts parser.Options) []token.Token {
	t.Helper()
	toks, err := parser.Tokenize(code, opts).All()
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", code, err)
	}
	types := make([]token.Token, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func equalTypes(a, b []token.Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenTypes(t *testing.T) {
	tests := []struct {
		code string
		want []token.Token
	}{
		{"a = /re/g", []token.Token{token.Name, token.Assign, token.RegExp}},
		{"a / b / c", []token.Token{token.Name, token.Slash, token.Name, token.Slash, token.Name}},
		{"a /= 2", []token.Token{token.Name, token.QuotientAssign, token.Number}},
		{"if (a) /re/.test(b)", []token.Token{
			token.If, token.LeftParenthesis, token.Name, token.RightParenthesis,
			token.RegExp, token.Period, token.Name, token.LeftParenthesis, token.Name, token.RightParenthesis,
		}},
		{"`a${b}c`", []token.Token{
			token.Backquote, token.Template, token.DollarBrace, token.Name,
			token.RightBrace, token.Template, token.Backquote,
		}},
		{"x = {}\n/foo/g", []token.Token{
			token.Name, token.Assign, token.LeftBrace, token.RightBrace, token.Slash, token.Name, token.Slash, token.Name,
		}},
		{"a?.b ?? c?.5:1", []token.Token{
			token.Name, token.QuestionDot, token.Name, token.Coalesce,
			token.Name, token.QuestionMark, token.Number, token.Colon, token.Number,
		}},
		{"class A { #x }", []token.Token{
			token.Class, token.Name, token.LeftBrace, token.PrivateName, token.RightBrace,
		}},
	}
	for _, tt := range tests {
		if got := tokenTypes(t, tt.code, parser.Options{}); !equalTypes(got, tt.want) {
			t.Errorf("%q: got = %v; want %v", tt.code, got, tt.want)
		}
	}
}

func TestTokenValues(t *testing.T) {
	toks, err := parser.Tokenize(`foo 'bar' 0b101, /x/i`, parser.Options{}).All()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 5 {
		t.Fatalf("len(toks) = %d; want 5", len(toks))
	}
	if toks[0].Value != "foo" {
		t.Errorf("name value = %v; want foo", toks[0].Value)
	}
	if toks[1].Value != "bar" {
		t.Errorf("string value = %v; want bar", toks[1].Value)
	}
	if toks[2].Value != float64(5) {
		t.Errorf("number value = %v; want 5", toks[2].Value)
	}
	re, ok := toks[4].Value.(*parser.RegExpValue)
	if !ok || re.Pattern != "x" || re.Flags != "i" || re.Value == nil {
		t.Errorf("regexp value = %#v", toks[4].Value)
	}
}

// Closers with nothing left to close must not unwind the base context.
func TestUnbalancedClosers(t *testing.T) {
	for _, code := range []string{
		".function*){}}",
		"x.function*{}}}/a/",
		"a.class:}})",
		"}}}",
	} {
		if _, err := parser.Tokenize(code, parser.Options{}).All(); err != nil {
			t.Errorf("Tokenize(%q): %v", code, err)
		}
		if _, err := parser.Parse(code, parser.Options{}); err == nil {
			t.Errorf("Parse(%q): err = nil; want syntax error", code)
		}
	}

	got := tokenTypes(t, "x.function*{}\n}/a/g", parser.Options{})
	want := []token.Token{
		token.Name, token.Period, token.Function, token.Multiply,
		token.LeftBrace, token.RightBrace, token.RightBrace, token.RegExp,
	}
	if !equalTypes(got, want) {
		t.Errorf("got = %v; want %v", got, want)
	}
}

// The raw text of the tokens plus the skipped whitespace and comments must
// give back the input.
func TestTokensCoverInput(t *testing.T) {
	code := "let x = `t${ y /* c */ }`; // done\nx++ / 2;\r\nf(/[/]/)  'é' "
	var comments []parser.Comment
	toks, err := parser.Tokenize(code, parser.Options{
		OnComment: func(c parser.Comment) { comments = append(comments, c) },
	}).All()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	covered := make([]bool, len(code))
	mark := func(start, end int) {
		for i := start; i < end; i++ {
			covered[i] = true
		}
	}
	last := 0
	for _, tok := range toks {
		if tok.Start < last {
			t.Fatalf("token %v at %d overlaps the previous token ending at %d", tok.Type, tok.Start, last)
		}
		mark(tok.Start, tok.End)
		last = tok.End
	}
	for _, c := range comments {
		mark(c.Start, c.End)
	}

	var gaps strings.Builder
	for i, ok := range covered {
		if !ok {
			gaps.WriteByte(code[i])
		}
	}
	if rest := strings.Trim(gaps.String(), " \t\r\n "); rest != "" {
		t.Errorf("uncovered text %q", rest)
	}
	if len(comments) != 2 {
		t.Errorf("len(comments) = %d; want 2", len(comments))
	}
}

func TestTokenizerError(t *testing.T) {
	tz := parser.Tokenize("a 'b", parser.Options{})
	tok, err := tz.Next()
	if err != nil || tok.Type != token.Name {
		t.Fatalf("first token = %v, %v", tok.Type, err)
	}
	if _, err = tz.Next(); err == nil {
		t.Fatal("Expected error")
	}
	if got, want := err.Error(), "Unterminated string constant (1:2)"; got != want {
		t.Errorf("err = %q; want %q", got, want)
	}
}

func TestTokenLocations(t *testing.T) {
	toks, err := parser.Tokenize("a\n  bc", parser.Options{Locations: true, Ranges: true}).All()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	bc := toks[1]
	if bc.Loc == nil || bc.Loc.Start.Line != 2 || bc.Loc.Start.Column != 2 || bc.Loc.End.Column != 4 {
		t.Errorf("Loc = %+v", bc.Loc)
	}
	if bc.Range == nil || *bc.Range != [2]int{4, 6} {
		t.Errorf("Range = %v; want [4 6]", bc.Range)
	}
}
