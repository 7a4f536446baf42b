package ast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-estree/token"
)

func ident(name string, start Idx) *Identifier {
	return &Identifier{Span: Span{Start: start, End: start + Idx(len(name))}, Name: name}
}

func TestMarshalFieldOrder(t *testing.T) {
	// a + 1
	expr := &BinaryExpression{
		Span:     Span{Start: 0, End: 5},
		Operator: token.Plus,
		Left:     ident("a", 0),
		Right:    &Literal{Span: Span{Start: 4, End: 5}, Value: 1.0, Raw: "1"},
	}
	b, err := Marshal(expr)
	require.NoError(t, err)
	assert.Equal(t,
		`{"type":"BinaryExpression","start":0,"end":5,"operator":"+",`+
			`"left":{"type":"Identifier","start":0,"end":1,"name":"a"},`+
			`"right":{"type":"Literal","start":4,"end":5,"value":1,"raw":"1"}}`,
		string(b))
}

func TestMarshalLocationAndRange(t *testing.T) {
	id := ident("x", 2)
	id.Loc = &SourceLocation{Start: Position{Line: 1, Column: 2}, End: Position{Line: 1, Column: 3}}
	id.Range = &[2]Idx{2, 3}
	b, err := Marshal(id)
	require.NoError(t, err)
	assert.Equal(t,
		`{"type":"Identifier","start":2,"end":3,"loc":{"start":{"line":1,"column":2},"end":{"line":1,"column":3}},"range":[2,3],"name":"x"}`,
		string(b))
}

func TestMarshalNullsAndEmptySlices(t *testing.T) {
	arr := &ArrayExpression{Span: Span{Start: 0, End: 4}, Elements: []Expr{nil, ident("a", 2)}}
	b, err := Marshal(arr)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"elements":[null,{"type":"Identifier"`)

	prog := &Program{Span: Span{Start: 0, End: 0}, SourceType: "script"}
	b, err = Marshal(prog)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"Program","start":0,"end":0,"body":[],"sourceType":"script"}`, string(b))

	imp := &ImportDeclaration{Specifiers: []ImportSpec{}, Source: &Literal{Value: "y", Raw: "'y'"}}
	b, err = Marshal(imp)
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"attributes"`)

	imp.Attributes = []*ImportAttribute{}
	b, err = Marshal(imp)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"attributes":[]`)

	exp := &ExportNamedDeclaration{Specifiers: []*ExportSpecifier{}, Attributes: []*ImportAttribute{}}
	b, err = Marshal(exp)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"attributes":[]`)
}

func TestMarshalLiteralValues(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{nil, "null"},
		{"a<b", `"a<b"`},
		{true, "true"},
		{2.5, "2.5"},
		{1e21, "1e+21"},
		{math.Inf(1), "null"},
	}
	for _, tt := range tests {
		b, err := Marshal(&Literal{Value: tt.value})
		require.NoError(t, err)
		assert.Contains(t, string(b), `"value":`+tt.want+`,`, "%v", tt.value)
	}
}

func TestMarshalTemplateCooked(t *testing.T) {
	cooked := "a"
	el := &TemplateElement{Value: TemplateValue{Raw: "a", Cooked: &cooked}, Tail: true}
	b, err := Marshal(el)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"value":{"raw":"a","cooked":"a"}`)

	el.Value.Cooked = nil
	b, err = Marshal(el)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"cooked":null`)
}

func TestAssignmentPropertyType(t *testing.T) {
	p := &AssignmentProperty{Key: ident("a", 1), Value: ident("a", 1), Kind: "init", Shorthand: true}
	assert.Equal(t, "Property", p.Type())
}

func TestWalk(t *testing.T) {
	// let x = [a, , b]
	decl := &VariableDeclaration{
		Kind: "let",
		Declarations: []*VariableDeclarator{{
			ID:   ident("x", 4),
			Init: &ArrayExpression{Elements: []Expr{ident("a", 9), nil, ident("b", 14)}},
		}},
	}
	var types []string
	Walk(decl, func(n Node) bool {
		types = append(types, n.Type())
		return true
	})
	assert.Equal(t, []string{
		"VariableDeclaration", "VariableDeclarator", "Identifier",
		"ArrayExpression", "Identifier", "Identifier",
	}, types)

	var count int
	Walk(decl, func(n Node) bool {
		count++
		_, isArray := n.(*ArrayExpression)
		return !isArray
	})
	assert.Equal(t, 4, count)
}
