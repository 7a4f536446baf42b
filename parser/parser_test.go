package parser_test

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/dlclark/regexp2"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser"
	"github.com/t14raptor/go-estree/token"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mustParse parses code as a script and fails the test on error.
func mustParse(t *testing.T, code string) *ast.Program {
	t.Helper()
	return mustParseWith(t, code, parser.Options{})
}

func mustParseModule(t *testing.T, code string) *ast.Program {
	t.Helper()
	return mustParseWith(t, code, parser.Options{SourceType: parser.SourceModule})
}

func mustParseWith(t *testing.T, code string, opts parser.Options) *ast.Program {
	t.Helper()
	p, err := parser.Parse(code, opts)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

// mustFail parses code and returns the syntax error it must produce.
func mustFail(t *testing.T, code string, opts parser.Options) *parser.SyntaxError {
	t.Helper()
	_, err := parser.Parse(code, opts)
	if err == nil {
		t.Fatalf("Expected error for:\n%s", code)
	}
	var se *parser.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error = %T; want *parser.SyntaxError", err)
	}
	return se
}

// exprOf returns the expression of the i-th top-level expression statement.
func exprOf(t *testing.T, p *ast.Program, i int) ast.Expr {
	t.Helper()
	es, ok := p.Body[i].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("Body[%d] = %T; want *ast.ExpressionStatement", i, p.Body[i])
	}
	return es.Expression
}

// checkSpans verifies that every node lies within its parent and the
// source.
func checkSpans(t *testing.T, code string, n ast.Node) {
	t.Helper()
	if n.Idx0() < 0 || n.Idx1() < n.Idx0() || int(n.Idx1()) > len(code) {
		t.Errorf("%s span [%d, %d) out of bounds", n.Type(), n.Idx0(), n.Idx1())
	}
	for _, c := range ast.Children(n) {
		if c.Idx0() < n.Idx0() || c.Idx1() > n.Idx1() {
			t.Errorf("%s [%d, %d) not inside %s [%d, %d)", c.Type(), c.Idx0(), c.Idx1(), n.Type(), n.Idx0(), n.Idx1())
		}
		checkSpans(t, code, c)
	}
}

// ---------------------------------------------------------------------------
// Spans and locations
// ---------------------------------------------------------------------------

func TestSpansNest(t *testing.T) {
	codes := []string{
		`var a = 1, [b, , ...c] = d, {e, f: {g = 2}, ...h} = i;`,
		"label: for (const [k, v] of map) { if (k) continue label; else break; }",
		"class A extends B { static #x = 1; get y() { return this.#x } static { this.z = new.target } constructor() { super() } }",
		"async function* gen(a = 1, ...rest) { for await (const x of rest) yield* x; await a; }",
		"tag`a${b}c${`nested ${d}`}` + (e, f) + (g => g * 2)(3) ?? h?.[i]?.(j)",
		"switch (x) { case 1: y++; break; default: z--; }\ntry { throw new Error('x') } catch ({ message }) {} finally {}",
		"x = { a, b: 1, [c]: 2, ...d, get e() { return 1 }, set e(v) {}, async *f() {}, 'g'() {} };",
		"(function () { 'use strict'; return typeof void delete a.b; })()\n;/re[/]x/gi.test(s)",
	}
	for _, code := range codes {
		p := mustParse(t, code)
		if p.Start != 0 || int(p.End) != len(code) {
			t.Errorf("Program span = [%d, %d); want [0, %d)", p.Start, p.End, len(code))
		}
		checkSpans(t, code, p)
	}

	mod := "import a, { b as c, 'd e' as f } from 'm' with { type: 'json' };\nexport { c as default, f };\nexport * as ns from 'n';\nexport const g = import.meta.url;"
	checkSpans(t, mod, mustParseModule(t, mod))
}

func TestLineInfoRoundTrip(t *testing.T) {
	code := "a\nbb\r\nccc d\re"
	for i := 0; i <= len(code); i++ {
		if i > 0 && code[i-1] == '\r' && i < len(code) && code[i] == '\n' {
			continue
		}
		pos := parser.GetLineInfo(code, i)
		if got := parser.OffsetOf(code, pos); got != i {
			t.Errorf("OffsetOf(GetLineInfo(%d)) = %d; want %d", i, got, i)
		}
	}

	tests := []struct {
		offset int
		want   ast.Position
	}{
		{0, ast.Position{Line: 1, Column: 0}},
		{2, ast.Position{Line: 2, Column: 0}},
		{7, ast.Position{Line: 3, Column: 1}},
		{12, ast.Position{Line: 4, Column: 0}},
		{13, ast.Position{Line: 4, Column: 1}},
	}
	for _, tt := range tests {
		if got := parser.GetLineInfo(code, tt.offset); got != tt.want {
			t.Errorf("GetLineInfo(%d) = %v; want %v", tt.offset, got, tt.want)
		}
	}
}

func TestLocationsAndRanges(t *testing.T) {
	code := "let a = 1;\nfoo(a);"
	p := mustParseWith(t, code, parser.Options{Locations: true, Ranges: true, SourceFile: "x.js"})
	call := exprOf(t, p, 1).(*ast.CallExpression)
	if call.Loc == nil {
		t.Fatal("Loc not set")
	}
	want := ast.SourceLocation{
		Start:  ast.Position{Line: 2, Column: 0},
		End:    ast.Position{Line: 2, Column: 6},
		Source: "x.js",
	}
	if *call.Loc != want {
		t.Errorf("Loc = %+v; want %+v", *call.Loc, want)
	}
	if call.Range == nil || *call.Range != [2]ast.Idx{11, 17} {
		t.Errorf("Range = %v; want [11 17]", call.Range)
	}

	p = mustParse(t, code)
	if p.Loc != nil || p.Range != nil {
		t.Errorf("Loc/Range set without options")
	}
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

func TestOperatorPrecedence(t *testing.T) {
	p := mustParse(t, "a + b * c ** d ** e")
	bin := exprOf(t, p, 0).(*ast.BinaryExpression)
	if bin.Operator != token.Plus {
		t.Fatalf("Operator = %v; want +", bin.Operator)
	}
	mul := bin.Right.(*ast.BinaryExpression)
	if mul.Operator != token.Multiply {
		t.Fatalf("Operator = %v; want *", mul.Operator)
	}
	exp := mul.Right.(*ast.BinaryExpression)
	if exp.Operator != token.Exponent {
		t.Fatalf("Operator = %v; want **", exp.Operator)
	}
	// ** is right-associative.
	if _, ok := exp.Right.(*ast.BinaryExpression); !ok {
		t.Errorf("d ** e not nested on the right: %T", exp.Right)
	}

	p = mustParse(t, "a || b && c")
	or := exprOf(t, p, 0).(*ast.LogicalExpression)
	if or.Operator != token.LogicalOr {
		t.Errorf("Operator = %v; want ||", or.Operator)
	}
	if _, ok := or.Right.(*ast.LogicalExpression); !ok {
		t.Errorf("b && c not nested on the right: %T", or.Right)
	}
}

func TestCoalesceMixing(t *testing.T) {
	mustParse(t, "(a || b) ?? c")
	mustParse(t, "a ?? (b && c)")
	err := mustFail(t, "a ?? b || c", parser.Options{})
	if !strings.HasPrefix(err.Message, "Logical expressions and coalesce expressions cannot be mixed") {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestAutomaticSemicolonInsertion(t *testing.T) {
	var inserted []int
	p := mustParseWith(t, "a\n++b", parser.Options{OnInsertedSemicolon: func(end int, _ ast.Position) {
		inserted = append(inserted, end)
	}})
	if len(p.Body) != 2 {
		t.Fatalf("len(Body) = %d; want 2", len(p.Body))
	}
	if _, ok := exprOf(t, p, 0).(*ast.Identifier); !ok {
		t.Errorf("Body[0] = %T; want *ast.Identifier", exprOf(t, p, 0))
	}
	upd, ok := exprOf(t, p, 1).(*ast.UpdateExpression)
	if !ok || !upd.Prefix || upd.Operator != token.Increment {
		t.Fatalf("Body[1] = %#v; want prefix ++", exprOf(t, p, 1))
	}
	if len(inserted) != 2 || inserted[0] != 1 || inserted[1] != 5 {
		t.Errorf("inserted = %v; want [1 5]", inserted)
	}

	p = mustParse(t, "return_\n(1)")
	if len(p.Body) != 1 {
		t.Errorf("call across newline split into %d statements", len(p.Body))
	}

	p = mustParseWith(t, "function f() { return\n1 }", parser.Options{})
	ret := p.Body[0].(*ast.FunctionDeclaration).Body.Body[0].(*ast.ReturnStatement)
	if ret.Argument != nil {
		t.Errorf("return argument = %T; want nil", ret.Argument)
	}
}

func TestArrowFunctions(t *testing.T) {
	tests := []struct {
		code       string
		params     int
		async      bool
		expression bool
	}{
		{"x => x", 1, false, true},
		{"(a, b) => a + b", 2, false, true},
		{"() => {}", 0, false, false},
		{"async x => await x", 1, true, true},
		{"async (a, [b], {c}, ...d) => {}", 4, true, false},
		{"(a = 1, {b} = {}) => b", 2, false, true},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		fn, ok := exprOf(t, p, 0).(*ast.ArrowFunctionExpression)
		if !ok {
			t.Errorf("%q: got %T; want *ast.ArrowFunctionExpression", tt.code, exprOf(t, p, 0))
			continue
		}
		if len(fn.Params) != tt.params || fn.Async != tt.async || fn.Expression != tt.expression {
			t.Errorf("%q: got params=%d async=%v expression=%v; want %d %v %v",
				tt.code, len(fn.Params), fn.Async, fn.Expression, tt.params, tt.async, tt.expression)
		}
	}

	// async used as a plain identifier.
	p := mustParse(t, "async(a, b)")
	if _, ok := exprOf(t, p, 0).(*ast.CallExpression); !ok {
		t.Errorf("async(a, b) = %T; want *ast.CallExpression", exprOf(t, p, 0))
	}
}

func TestOptionalChaining(t *testing.T) {
	p := mustParse(t, "a?.b.c(d)")
	chain, ok := exprOf(t, p, 0).(*ast.ChainExpression)
	if !ok {
		t.Fatalf("got %T; want *ast.ChainExpression", exprOf(t, p, 0))
	}
	call := chain.Expression.(*ast.CallExpression)
	if call.Optional {
		t.Errorf("call.Optional = true; want false")
	}
	member := call.Callee.(*ast.MemberExpression).Object.(*ast.MemberExpression)
	if !member.Optional {
		t.Errorf("a?.b Optional = false; want true")
	}

	p = mustParse(t, "a.b")
	if _, ok := exprOf(t, p, 0).(*ast.MemberExpression); !ok {
		t.Errorf("a.b = %T; want *ast.MemberExpression", exprOf(t, p, 0))
	}
}

func TestTemplates(t *testing.T) {
	p := mustParse(t, "`a${b}c\r\nd`")
	tpl := exprOf(t, p, 0).(*ast.TemplateLiteral)
	if len(tpl.Quasis) != 2 || len(tpl.Expressions) != 1 {
		t.Fatalf("quasis=%d expressions=%d; want 2 1", len(tpl.Quasis), len(tpl.Expressions))
	}
	last := tpl.Quasis[1]
	if !last.Tail || last.Value.Raw != "c\nd" || last.Value.Cooked == nil || *last.Value.Cooked != "c\nd" {
		t.Errorf("last quasi = %+v", last.Value)
	}

	p = mustParse(t, "tag`\\unicode and \\u{55}`")
	tagged := exprOf(t, p, 0).(*ast.TaggedTemplateExpression)
	q := tagged.Quasi.Quasis[0]
	if q.Value.Cooked != nil {
		t.Errorf("Cooked = %q; want nil", *q.Value.Cooked)
	}
	if q.Value.Raw != `\unicode and \u{55}` {
		t.Errorf("Raw = %q", q.Value.Raw)
	}

	err := mustFail(t, "`\\unicode`", parser.Options{})
	if err.Message != "Bad escape sequence in untagged template literal" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestLiterals(t *testing.T) {
	p := mustParse(t, `1_000; 0x1F; 10n; "a\x41"; null; true; /a+/gi; /(?<=a)\p{L}/u`)
	tests := []struct {
		i     int
		check func(*ast.Literal) bool
	}{
		{0, func(l *ast.Literal) bool { return l.Value == float64(1000) && l.Raw == "1_000" }},
		{1, func(l *ast.Literal) bool { return l.Value == float64(31) }},
		{2, func(l *ast.Literal) bool {
			b, ok := l.Value.(*big.Int)
			return ok && b.Int64() == 10 && l.Bigint == "10"
		}},
		{3, func(l *ast.Literal) bool { return l.Value == "aA" && l.Raw == `"a\x41"` }},
		{4, func(l *ast.Literal) bool { return l.Value == nil && l.Raw == "null" }},
		{5, func(l *ast.Literal) bool { return l.Value == true }},
		{6, func(l *ast.Literal) bool {
			re, ok := l.Value.(*regexp2.Regexp)
			return ok && re != nil && l.Regex.Pattern == "a+" && l.Regex.Flags == "gi"
		}},
		{7, func(l *ast.Literal) bool { return l.Value == nil && l.Regex.Flags == "u" }},
	}
	for _, tt := range tests {
		lit, ok := exprOf(t, p, tt.i).(*ast.Literal)
		if !ok {
			t.Errorf("Body[%d] = %T; want *ast.Literal", tt.i, exprOf(t, p, tt.i))
			continue
		}
		if !tt.check(lit) {
			t.Errorf("Body[%d] = %#v", tt.i, lit)
		}
	}
}

func TestRegExpErrors(t *testing.T) {
	tests := []struct {
		code string
		want string
		pos  int
	}{
		{"/(?<x>a)(?<x>b)/", "Invalid regular expression: /(?<x>a)(?<x>b)/: Duplicate capture group name", 1},
		{"x = /a/gg", "Duplicate regular expression flag", 5},
		{"/a/x", "Invalid regular expression flag", 1},
		{"/abc", "Unterminated regular expression", 1},
	}
	for _, tt := range tests {
		err := mustFail(t, tt.code, parser.Options{})
		if err.Message != tt.want || err.Pos != tt.pos {
			t.Errorf("%q: got %q at %d; want %q at %d", tt.code, err.Message, err.Pos, tt.want, tt.pos)
		}
	}

	// Alternatives may reuse a group name from ES2025 on.
	mustParse(t, "/(?<x>a)|(?<x>b)/")
}

func TestParseExpressionAt(t *testing.T) {
	code := "ignored; foo(1) + 2 ) rest"
	expr, err := parser.ParseExpressionAt(code, 9, parser.Options{})
	if err != nil {
		t.Fatalf("ParseExpressionAt: %v", err)
	}
	bin, ok := expr.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("got %T; want *ast.BinaryExpression", expr)
	}
	if bin.Start != 9 || bin.End != 19 {
		t.Errorf("span = [%d, %d); want [9, 19)", bin.Start, bin.End)
	}

	for _, offset := range []int{-1, len(code) + 1} {
		_, err := parser.ParseExpressionAt(code, offset, parser.Options{})
		var se *parser.SyntaxError
		if !errors.As(err, &se) {
			t.Fatalf("offset %d: err = %v; want *SyntaxError", offset, err)
		}
		if se.Pos != offset {
			t.Errorf("offset %d: Pos = %d; want %d", offset, se.Pos, offset)
		}
	}
}

func TestPreserveParens(t *testing.T) {
	p := mustParseWith(t, "(a, b); ((c)) = 1", parser.Options{PreserveParens: true})
	paren, ok := exprOf(t, p, 0).(*ast.ParenthesizedExpression)
	if !ok {
		t.Fatalf("got %T; want *ast.ParenthesizedExpression", exprOf(t, p, 0))
	}
	seq := paren.Expression.(*ast.SequenceExpression)
	if seq.Start != 1 || seq.End != 5 {
		t.Errorf("sequence span = [%d, %d); want [1, 5)", seq.Start, seq.End)
	}
	assign := exprOf(t, p, 1).(*ast.AssignmentExpression)
	if _, ok := assign.Left.(*ast.ParenthesizedExpression); !ok {
		t.Errorf("Left = %T; want *ast.ParenthesizedExpression", assign.Left)
	}

	p = mustParse(t, "(a)")
	if _, ok := exprOf(t, p, 0).(*ast.Identifier); !ok {
		t.Errorf("(a) = %T; want *ast.Identifier", exprOf(t, p, 0))
	}
}

// ---------------------------------------------------------------------------
// Patterns
// ---------------------------------------------------------------------------

func TestObjectRestDeclaration(t *testing.T) {
	p := mustParse(t, "const {a, ...rest} = {a: 1, b: 2};")
	decl := p.Body[0].(*ast.VariableDeclaration)
	if decl.Kind != "const" || len(decl.Declarations) != 1 {
		t.Fatalf("decl = %+v", decl)
	}
	pat, ok := decl.Declarations[0].ID.(*ast.ObjectPattern)
	if !ok {
		t.Fatalf("ID = %T; want *ast.ObjectPattern", decl.Declarations[0].ID)
	}
	if len(pat.Properties) != 2 {
		t.Fatalf("len(Properties) = %d; want 2", len(pat.Properties))
	}
	prop := pat.Properties[0].(*ast.AssignmentProperty)
	if !prop.Shorthand || prop.Value.(*ast.Identifier).Name != "a" {
		t.Errorf("Properties[0] = %+v", prop)
	}
	rest := pat.Properties[1].(*ast.RestElement)
	if rest.Argument.(*ast.Identifier).Name != "rest" {
		t.Errorf("rest argument = %+v", rest.Argument)
	}
	obj := decl.Declarations[0].Init.(*ast.ObjectExpression)
	if len(obj.Properties) != 2 {
		t.Errorf("len(init.Properties) = %d; want 2", len(obj.Properties))
	}
}

func TestAssignmentPatterns(t *testing.T) {
	p := mustParse(t, "[a, , b = 1, ...c] = d; ({x, y: [z], w = 2, ...v} = e);")
	arr := exprOf(t, p, 0).(*ast.AssignmentExpression).Left.(*ast.ArrayPattern)
	if len(arr.Elements) != 4 || arr.Elements[1] != nil {
		t.Fatalf("Elements = %#v", arr.Elements)
	}
	if _, ok := arr.Elements[2].(*ast.AssignmentPattern); !ok {
		t.Errorf("Elements[2] = %T; want *ast.AssignmentPattern", arr.Elements[2])
	}
	if _, ok := arr.Elements[3].(*ast.RestElement); !ok {
		t.Errorf("Elements[3] = %T; want *ast.RestElement", arr.Elements[3])
	}

	obj := exprOf(t, p, 1).(*ast.AssignmentExpression).Left.(*ast.ObjectPattern)
	def := obj.Properties[2].(*ast.AssignmentProperty)
	if _, ok := def.Value.(*ast.AssignmentPattern); !ok || !def.Shorthand {
		t.Errorf("w = 2 = %#v", def)
	}
	if _, ok := obj.Properties[1].(*ast.AssignmentProperty).Value.(*ast.ArrayPattern); !ok {
		t.Errorf("y: [z] not converted")
	}

	p = mustParse(t, "a.b = 1; [c.d] = e; for ({f} of g);")
	if len(p.Body) != 3 {
		t.Errorf("len(Body) = %d; want 3", len(p.Body))
	}
}

func TestDestructuringErrors(t *testing.T) {
	tests := []struct {
		code string
		want string
		pos  int
	}{
		{"({a = 1})", "Shorthand property assignments are valid only in destructuring patterns", 4},
		{"[...a, b] = c", "Comma is not permitted after the rest element", 5},
		{"({get a() {}} = b)", "Object pattern can't contain getter or setter", 6},
		{"[a + 1] = b", "Assigning to rvalue", 1},
		{"({a: 1} = b)", "Assigning to rvalue", 5},
		{"([a.b]) => 1", "Assigning to rvalue", 2},
		{"a?.b = 1", "Optional chaining cannot appear in left-hand side", 0},
		{"([a]) = 1", "Assigning to rvalue", 0},
		{"(([a])) => 1", "Parenthesized pattern", 1},
		{"[...a = 1] = b", "Rest elements cannot have a default value", 4},
		{"let {a}", "Complex binding patterns require an initialization value", 7},
		{"[b] += c", "Assigning to rvalue", 0},
		{"({__proto__: a, __proto__: b})", "Redefinition of __proto__ property", 16},
	}
	for _, tt := range tests {
		err := mustFail(t, tt.code, parser.Options{})
		if err.Message != tt.want || err.Pos != tt.pos {
			t.Errorf("%q: got %q at %d; want %q at %d", tt.code, err.Message, err.Pos, tt.want, tt.pos)
		}
	}

	// A duplicate __proto__ is fine once the object becomes a pattern.
	mustParse(t, "({__proto__: a, __proto__: b} = c)")
}

// ---------------------------------------------------------------------------
// Scopes and strict mode
// ---------------------------------------------------------------------------

func TestStrictModeIsRetroactive(t *testing.T) {
	mustParse(t, "function f(a, a) {}")

	err := mustFail(t, `function f(a, a) { "use strict"; }`, parser.Options{})
	if err.Message != "Argument name clash" || err.Pos != 14 {
		t.Errorf("got %q at %d; want %q at %d", err.Message, err.Pos, "Argument name clash", 14)
	}

	err = mustFail(t, `function eval() { "use strict"; }`, parser.Options{})
	if err.Message != "Binding eval in strict mode" {
		t.Errorf("Message = %q", err.Message)
	}

	err = mustFail(t, `function f(a = 1) { "use strict"; }`, parser.Options{})
	if err.Message != "Illegal 'use strict' directive in function with non-simple parameter list" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestDirectives(t *testing.T) {
	p := mustParse(t, `"use strict"; 'other'; ("not"); x`)
	tests := []struct {
		i    int
		want string
		ok   bool
	}{
		{0, "use strict", true},
		{1, "other", true},
		{2, "", false},
		{3, "", false},
	}
	for _, tt := range tests {
		es := p.Body[tt.i].(*ast.ExpressionStatement)
		if (es.Directive != nil) != tt.ok || tt.ok && *es.Directive != tt.want {
			t.Errorf("Body[%d].Directive = %v; want %q", tt.i, es.Directive, tt.want)
		}
	}

	err := mustFail(t, `"use strict"; with (a) {}`, parser.Options{})
	if err.Message != "'with' in strict mode" || err.Pos != 14 {
		t.Errorf("got %q at %d", err.Message, err.Pos)
	}
	mustFail(t, `"use strict"; 010`, parser.Options{})
	mustParse(t, "010")
}

func TestRedeclaration(t *testing.T) {
	tests := []struct {
		code string
		pos  int
	}{
		{"let a; let a;", 11},
		{"let a; var a;", 11},
		{"const a = 1; function a() {}", 22},
		{"class A {} class A {}", 17},
		{"try {} catch (e) { let e; }", 23},
		{"function f(a) { let a; }", 20},
	}
	for _, tt := range tests {
		err := mustFail(t, tt.code, parser.Options{})
		if !strings.HasSuffix(err.Message, "has already been declared") || err.Pos != tt.pos {
			t.Errorf("%q: got %q at %d; want redeclaration at %d", tt.code, err.Message, err.Pos, tt.pos)
		}
	}

	for _, code := range []string{
		"var a; var a;",
		"function a() {} function a() {}",
		"var a; function a() {}",
		"try {} catch (e) { var e; }",
		"let a; { let a; }",
		"function f(a) { var a; }",
	} {
		mustParse(t, code)
	}
}

func TestAwaitAndYield(t *testing.T) {
	mustParse(t, "var await = 1; var yield = 2;")
	mustParse(t, "async function f() { await g(); }")
	mustParse(t, "function* g() { yield; yield 1; yield* h(); }")
	mustParseModule(t, "await x;")

	tests := []struct {
		code string
		want string
	}{
		{"async function f() { var await; }", "Cannot use 'await' as identifier inside an async function"},
		{"function* g() { var yield; }", "Cannot use 'yield' as identifier inside a generator"},
		{"async function f(a = await 1) {}", "Await expression cannot be a default value"},
		{"function* g(a = yield) {}", "Yield expression cannot be a default value"},
	}
	for _, tt := range tests {
		err := mustFail(t, tt.code, parser.Options{})
		if err.Message != tt.want {
			t.Errorf("%q: got %q; want %q", tt.code, err.Message, tt.want)
		}
	}
	mustFail(t, "await x;", parser.Options{})
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

func TestStatementErrors(t *testing.T) {
	tests := []struct {
		code string
		want string
		pos  int
	}{
		{"return 1", "'return' outside of function", 0},
		{"switch (a) { default: default: }", "Multiple default clauses", 22},
		{"throw\na", "Illegal newline after throw", 5},
		{"try {}", "Missing catch or finally clause", 0},
		{"a: a: ;", "Label 'a' is already declared", 3},
		{"break", "Unsyntactic break", 0},
		{"a: { continue a; }", "Unsyntactic continue", 5},
		{"if (a) function* g() {}", "Unexpected token", 15},
		{"a\n=>b", "Unexpected token", 2},
		{"-a ** 2", "Unexpected token", 3},
		{"new a?.()", "Optional chaining cannot appear in the callee of new expressions", 5},
		{"import x from 'y'", "'import' and 'export' may appear only with 'sourceType: module'", 0},
		{"x = @", "Unexpected character '@'", 4},
		{"'abc", "Unterminated string constant", 0},
		{"/* abc", "Unterminated comment", 0},
	}
	for _, tt := range tests {
		err := mustFail(t, tt.code, parser.Options{})
		if err.Message != tt.want || err.Pos != tt.pos {
			t.Errorf("%q: got %q at %d; want %q at %d", tt.code, err.Message, err.Pos, tt.want, tt.pos)
		}
	}
}

func TestSyntaxErrorFormat(t *testing.T) {
	_, err := parser.Parse("a;\nb c", parser.Options{})
	if err == nil {
		t.Fatal("Expected error")
	}
	if got, want := err.Error(), "Unexpected token (2:2)"; got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}
}

func TestLetAsIdentifier(t *testing.T) {
	p := mustParse(t, "let = 1; let\nx = 2;")
	if _, ok := p.Body[0].(*ast.ExpressionStatement); !ok {
		t.Errorf("Body[0] = %T; want *ast.ExpressionStatement", p.Body[0])
	}
	if decl, ok := p.Body[1].(*ast.VariableDeclaration); !ok || decl.Kind != "let" {
		t.Errorf("Body[1] = %#v; want let declaration", p.Body[1])
	}
}

func TestForStatements(t *testing.T) {
	p := mustParse(t, "for (;;) {} for (var i = 0 in o); for (x of y); for (a in b in c);")
	if len(p.Body) != 4 {
		t.Fatalf("len(Body) = %d; want 4", len(p.Body))
	}
	if _, ok := p.Body[1].(*ast.ForInStatement); !ok {
		t.Errorf("Body[1] = %T; want *ast.ForInStatement", p.Body[1])
	}
	if _, ok := p.Body[2].(*ast.ForOfStatement); !ok {
		t.Errorf("Body[2] = %T; want *ast.ForOfStatement", p.Body[2])
	}
	in := p.Body[3].(*ast.ForInStatement)
	if _, ok := in.Right.(*ast.BinaryExpression); !ok {
		t.Errorf("for (a in b in c) right = %T; want *ast.BinaryExpression", in.Right)
	}

	mustFail(t, "for (let i = 0 of x);", parser.Options{})
	mustFail(t, `"use strict"; for (var i = 0 in o);`, parser.Options{})

	p = mustParseModule(t, "for await (const x of xs);")
	if !p.Body[0].(*ast.ForOfStatement).Await {
		t.Errorf("Await = false; want true")
	}
}

// ---------------------------------------------------------------------------
// Classes
// ---------------------------------------------------------------------------

func TestClassElements(t *testing.T) {
	code := `class A extends B {
  static x = 1;
  #y;
  static async *gen() {}
  get #z() { return 1 }
  set #z(v) {}
  static { this.w = 1 }
  'constructor'() { super() }
  static() {}
  async
  get() {}
}`
	p := mustParse(t, code)
	body := p.Body[0].(*ast.ClassDeclaration).Body.Body
	kinds := make([]string, len(body))
	for i, e := range body {
		switch e := e.(type) {
		case *ast.MethodDefinition:
			kinds[i] = e.Kind
		case *ast.PropertyDefinition:
			kinds[i] = "field"
		case *ast.StaticBlock:
			kinds[i] = "static"
		}
	}
	want := []string{"field", "field", "method", "get", "set", "static", "constructor", "method", "field", "method"}
	if strings.Join(kinds, ",") != strings.Join(want, ",") {
		t.Errorf("kinds = %v; want %v", kinds, want)
	}

	tests := []struct {
		code string
		want string
	}{
		{"class A { constructor() {} constructor() {} }", "Duplicate constructor in the same class"},
		{"class A { #x; #x; }", "Identifier '#x' has already been declared"},
		{"class A { m() { this.#y } }", "Private field '#y' must be declared in an enclosing class"},
		{"class A { constructor() { super() } }", "super() call outside constructor of a subclass"},
		{"class A { get constructor() {} }", "Constructor can't have get/set modifier"},
		{"class A { static prototype() {} }", "Classes may not have a static property named prototype"},
		{"class A { constructor = 1 }", "Classes can't have a field named 'constructor'"},
		{"class A { #constructor() {} }", "Classes can't have an element named '#constructor'"},
		{"class A { x = arguments }", "Cannot use 'arguments' in class field initializer"},
		{"class A { m() { delete this.#m } #m }", "Private fields can not be deleted"},
		{"class A { get x(a) {} }", "getter should have no params"},
		{"function f() { super.x }", "'super' keyword outside a method"},
	}
	for _, tt := range tests {
		err := mustFail(t, tt.code, parser.Options{})
		if err.Message != tt.want {
			t.Errorf("%q: got %q; want %q", tt.code, err.Message, tt.want)
		}
	}

	// Private names resolve against enclosing classes and getter/setter pairs.
	mustParse(t, "class A { #x; m() { class B { n() { this.#x } } } }")
	mustParse(t, "class A { m() { return #x in this } #x }")
	mustParseWith(t, "class A { m() { this.#y } }", parser.Options{CheckPrivateFields: parser.Bool(false)})
}

// ---------------------------------------------------------------------------
// Modules
// ---------------------------------------------------------------------------

func TestModules(t *testing.T) {
	code := `import def, * as ns from "a";
import { b, c as d, "e f" as g } from "b" with { type: "json" };
import "side-effect";
export default function () {}
export { b, d as "x y" };
export * from "c";
export * as h from "d";
export const [i, { j }] = [1, {}];
export class K {}
export async function l() {}
`
	p := mustParseModule(t, code)
	if p.SourceType != parser.SourceModule {
		t.Errorf("SourceType = %q", p.SourceType)
	}
	types := make([]string, len(p.Body))
	for i, s := range p.Body {
		types[i] = s.Type()
	}
	want := "ImportDeclaration,ImportDeclaration,ImportDeclaration,ExportDefaultDeclaration,ExportNamedDeclaration," +
		"ExportAllDeclaration,ExportAllDeclaration,ExportNamedDeclaration,ExportNamedDeclaration,ExportNamedDeclaration"
	if got := strings.Join(types, ","); got != want {
		t.Errorf("types = %s; want %s", got, want)
	}

	imp := p.Body[1].(*ast.ImportDeclaration)
	if len(imp.Specifiers) != 3 || len(imp.Attributes) != 1 {
		t.Errorf("specifiers=%d attributes=%d; want 3 1", len(imp.Specifiers), len(imp.Attributes))
	}
	named := imp.Specifiers[2].(*ast.ImportSpecifier)
	if lit, ok := named.Imported.(*ast.Literal); !ok || lit.Value != "e f" || named.Local.Name != "g" {
		t.Errorf("string import = %#v", named)
	}
	def := p.Body[3].(*ast.ExportDefaultDeclaration).Declaration.(*ast.FunctionDeclaration)
	if def.ID != nil {
		t.Errorf("default function ID = %v; want nil", def.ID)
	}
}

func TestModuleErrors(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"export { a };", "Export 'a' is not defined"},
		{"var a; export { a }; export { a };", "Duplicate export 'a'"},
		{"export default 1; export default 2;", "Duplicate export 'default'"},
		{"export { 'a' };", "A string literal cannot be used as an exported binding without `from`."},
		{"import { 'a' } from 'b';", "Binding rvalue"},
		{"import a from 'b'; let a;", "Identifier 'a' has already been declared"},
		{`export { "\uD800" as a } from "b";`, "An export name cannot include a lone surrogate."},
		{"import x from 'y' with { type: 'a', type: 'b' };", "Duplicate attribute key 'type'"},
		{"{ import x from 'y'; }", "'import' and 'export' may only appear at the top level"},
	}
	for _, tt := range tests {
		err := mustFail(t, tt.code, parser.Options{SourceType: parser.SourceModule})
		if err.Message != tt.want {
			t.Errorf("%q: got %q; want %q", tt.code, err.Message, tt.want)
		}
	}

	mustParseModule(t, "export { a }; var a;")
	mustParseModule(t, "export { a as b } from 'c'; export { x as 'y z' } from 'w';")
}

func TestImportExpressions(t *testing.T) {
	p := mustParseModule(t, "import('a'); import('b', { with: {} }); import.meta;")
	if imp := exprOf(t, p, 1).(*ast.ImportExpression); imp.Options == nil {
		t.Errorf("Options = nil")
	}
	meta := exprOf(t, p, 2).(*ast.MetaProperty)
	if meta.Meta.Name != "import" || meta.Property.Name != "meta" {
		t.Errorf("meta = %s.%s", meta.Meta.Name, meta.Property.Name)
	}

	err := mustFail(t, "import.meta", parser.Options{})
	if err.Message != "Cannot use 'import.meta' outside a module" {
		t.Errorf("Message = %q", err.Message)
	}
	mustFail(t, "import('a', {}, c)", parser.Options{})
	mustFail(t, "new import('a')", parser.Options{})
	mustFail(t, "import('a', {})", parser.Options{EcmaVersion: 2024})
}

// ---------------------------------------------------------------------------
// Options
// ---------------------------------------------------------------------------

func TestEcmaVersions(t *testing.T) {
	tests := []struct {
		code    string
		version int
		ok      bool
	}{
		{"let x = 1", 5, false},
		{"var let = 1", 5, true},
		{"() => 1", 5, false},
		{"a ** b", 2016, true},
		{"a ** b", 6, false},
		{"async function f() {}", 2017, true},
		{"a ?? b", 2019, false},
		{"a ?? b", 2020, true},
		{"a ||= b", 2021, true},
		{"class A { #x }", 2021, false},
		{"class A { #x }", 2022, true},
		{"var class = 1", 3, true},
		{"x.class", 3, true},
		{"/a/v", 2023, false},
		{"/a/v", 2024, true},
	}
	for _, tt := range tests {
		_, err := parser.Parse(tt.code, parser.Options{EcmaVersion: tt.version})
		if (err == nil) != tt.ok {
			t.Errorf("%q (ES%d): err = %v; want ok = %v", tt.code, tt.version, err, tt.ok)
		}
	}
}

func TestAllowReservedES3(t *testing.T) {
	opts := parser.Options{EcmaVersion: 3, AllowReserved: parser.AllowReservedNo}
	err := mustFail(t, "var class = 1", opts)
	if err.Message != "The keyword 'class' is reserved" {
		t.Errorf("got = %q; want %q", err.Message, "The keyword 'class' is reserved")
	}
	mustParseWith(t, "x.class", opts)
}

func TestAllowOptions(t *testing.T) {
	mustParseWith(t, "return 1", parser.Options{AllowReturnOutsideFunction: true})
	mustParseWith(t, "function f() {} import x from 'y'", parser.Options{SourceType: parser.SourceModule, AllowImportExportEverywhere: true})
	mustParseWith(t, "super.x", parser.Options{AllowSuperOutsideMethod: true})
	mustParseWith(t, "await x", parser.Options{AllowAwaitOutsideFunction: parser.Bool(true)})
	mustParse(t, "#!/usr/bin/env node\nx")
	mustFail(t, "#!/usr/bin/env node\nx", parser.Options{AllowHashBang: parser.Bool(false)})

	mustFail(t, "x.if", parser.Options{AllowReserved: parser.AllowReservedNever})
	mustParseWith(t, "var enum = 1", parser.Options{EcmaVersion: 3, AllowReserved: parser.AllowReservedYes})
}

func TestCallbacks(t *testing.T) {
	var comments []parser.Comment
	var commas []int
	var tokens []token.Token
	opts := parser.Options{
		OnComment:       func(c parser.Comment) { comments = append(comments, c) },
		OnTrailingComma: func(pos int, _ ast.Position) { commas = append(commas, pos) },
		OnToken:         func(tok parser.Token) { tokens = append(tokens, tok.Type) },
	}
	mustParseWith(t, "/* a */ f(1,) // b\n;[2,]", opts)

	if len(comments) != 2 {
		t.Fatalf("len(comments) = %d; want 2", len(comments))
	}
	if !comments[0].Block || comments[0].Text != " a " || comments[0].Start != 0 || comments[0].End != 7 {
		t.Errorf("comments[0] = %+v", comments[0])
	}
	if comments[1].Block || comments[1].Text != " b" {
		t.Errorf("comments[1] = %+v", comments[1])
	}
	if len(commas) != 2 || commas[0] != 11 || commas[1] != 22 {
		t.Errorf("trailing commas = %v; want [11 22]", commas)
	}
	if len(tokens) == 0 || tokens[len(tokens)-1] != token.Eof {
		t.Errorf("last token = %v; want eof", tokens)
	}
}

func TestProgramOption(t *testing.T) {
	first := mustParse(t, "var a = 1;")
	second := mustParseWith(t, "var b = 2;", parser.Options{Program: first})
	if second != first || len(first.Body) != 2 {
		t.Fatalf("Program not extended: %d statements", len(first.Body))
	}
}

func TestDirectSourceFile(t *testing.T) {
	p := mustParseWith(t, "a", parser.Options{DirectSourceFile: "a.js"})
	if p.SourceFile != "a.js" || exprOf(t, p, 0).NodeSpan().SourceFile != "a.js" {
		t.Errorf("SourceFile not stamped")
	}
}

// ---------------------------------------------------------------------------
// JSON
// ---------------------------------------------------------------------------

func TestMarshalProgram(t *testing.T) {
	p := mustParse(t, "a = /x/g")
	b, err := ast.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"type":"Program","start":0,"end":8,"body":[{"type":"ExpressionStatement","start":0,"end":8,` +
		`"expression":{"type":"AssignmentExpression","start":0,"end":8,"operator":"=",` +
		`"left":{"type":"Identifier","start":0,"end":1,"name":"a"},` +
		`"right":{"type":"Literal","start":4,"end":8,"value":{},"raw":"/x/g","regex":{"pattern":"x","flags":"g"}}}}],` +
		`"sourceType":"script"}`
	if got := string(b); got != want {
		t.Errorf("Marshal =\n%s\nwant\n%s", got, want)
	}
}

func TestMarshalImportAttributes(t *testing.T) {
	code := "import x from 'y'; export {x as z} from 'w'"
	tests := []struct {
		version int
		want    int
	}{
		{2024, 0},
		{2025, 2},
	}
	for _, tt := range tests {
		p := mustParseWith(t, code, parser.Options{EcmaVersion: tt.version, SourceType: parser.SourceModule})
		b, err := ast.Marshal(p)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if got := strings.Count(string(b), `"attributes":[]`); got != tt.want {
			t.Errorf("ES%d: attributes = %d; want %d", tt.version, got, tt.want)
		}
		if tt.want == 0 && strings.Contains(string(b), `"attributes"`) {
			t.Errorf("ES%d: unexpected attributes key in %s", tt.version, b)
		}
	}
}
