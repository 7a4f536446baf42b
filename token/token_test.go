package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabels(t *testing.T) {
	assert.Equal(t, "+=", AddAssign.String())
	assert.Equal(t, "?.", QuestionDot.String())
	assert.Equal(t, "instanceof", InstanceOf.String())
	assert.Equal(t, "name", Name.String())
	assert.Equal(t, "token(-1)", Token(-1).String())
}

func TestProperties(t *testing.T) {
	assert.True(t, Return.BeforeExpr())
	assert.False(t, RightParenthesis.BeforeExpr())
	assert.True(t, Increment.IsPrefix())
	assert.True(t, Increment.IsPostfix())
	assert.False(t, Not.IsPostfix())
	assert.True(t, Do.IsLoop())
	assert.True(t, CoalesceAssign.IsAssign())
	assert.False(t, Equal.IsAssign())
	assert.True(t, Backquote.StartsExpr())
	assert.True(t, Coalesce.IsLogical())
	assert.False(t, Or.IsLogical())

	assert.Equal(t, 1, LogicalOr.Precedence())
	assert.Equal(t, 1, Coalesce.Precedence())
	assert.Equal(t, 7, In.Precedence())
	assert.Equal(t, 11, Exponent.Precedence())
	assert.Equal(t, 0, Assign.Precedence())
	assert.Greater(t, Multiply.Precedence(), Plus.Precedence())
	assert.Greater(t, Plus.Precedence(), ShiftLeft.Precedence())
}

func TestKeywords(t *testing.T) {
	tok, ok := Keyword("typeof")
	require.True(t, ok)
	assert.Equal(t, Typeof, tok)
	assert.True(t, tok.IsKeyword())

	_, ok = Keyword("let")
	assert.False(t, ok)
	assert.False(t, Name.IsKeyword())

	kws := Keywords()
	assert.Len(t, kws, 35)
	assert.Equal(t, Break, kws[0])
	assert.Equal(t, With, kws[len(kws)-1])
}

func TestWordsFor(t *testing.T) {
	es3 := WordsFor(3, false, false)
	assert.True(t, es3.Reserved.Has("abstract"))
	assert.False(t, es3.Keywords.Has("class"))

	es5 := WordsFor(5, false, false)
	assert.True(t, es5.Reserved.Has("class"))
	assert.False(t, es5.Reserved.Has("await"))

	mod := WordsFor(6, true, false)
	assert.True(t, mod.Keywords.Has("export"))
	assert.True(t, mod.Reserved.Has("await"))
	assert.True(t, mod.ReservedStrict.Has("yield"))
	assert.True(t, mod.ReservedStrictBind.Has("eval"))
	assert.False(t, mod.Reserved.Has("eval"))

	loose := WordsFor(3, false, true)
	assert.Empty(t, loose.Reserved)
	assert.True(t, loose.ReservedStrict.Has("let"))

	assert.True(t, WordsFor(5, true, false).Keywords.Has("import"))
	assert.Same(t, mod, WordsFor(6, true, false))
}
