package jsregexp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const latest = 17

func validate(t *testing.T, version int, pattern, flags string) error {
	t.Helper()
	return NewValidator(version).Validate(pattern, flags)
}

func TestValidPatterns(t *testing.T) {
	tests := []struct {
		pattern string
		flags   string
	}{
		{`abc`, ""},
		{`a|b|c`, ""},
		{`^a*b+c?$`, ""},
		{`a{1,3}b{2}c{4,}`, ""},
		{`(?:a)(b)\1`, ""},
		{`(?=a)(?!b)(?<=c)(?<!d)`, ""},
		{`[a-z\d\s\W]`, ""},
		{`[\b]`, "u"},
		{`\u{1F600}`, "u"},
		{`😀`, "u"},
		{`\p{Script=Greek}\P{L}`, "u"},
		{`\p{RGI_Emoji}`, "v"},
		{`[\p{L}--[a-z]]`, "v"},
		{`[[a-z]&&[aeiou]]`, "v"},
		{`[\q{abc|d}]`, "v"},
		{`(?<year>\d{4})-\k<year>`, ""},
		{`(?<x>a)|(?<x>b)`, ""},
		{`\k`, ""},
		{`]`, ""},
		{`{`, ""},
		{`a{`, ""},
		{`\8`, ""},
		{`(?i:a)(?-m:b)(?s-i:c)`, ""},
		{`[]`, ""},
		{`[^]`, ""},
	}
	for _, tt := range tests {
		assert.NoError(t, validate(t, latest, tt.pattern, tt.flags), "/%s/%s", tt.pattern, tt.flags)
	}
}

func TestInvalidPatterns(t *testing.T) {
	tests := []struct {
		pattern string
		flags   string
		message string
	}{
		{`(?<x>a)(?<x>b)`, "", "Duplicate capture group name"},
		{`(`, "", "Unterminated group"},
		{`a)`, "", "Unmatched ')'"},
		{`*`, "", "Nothing to repeat"},
		{`a{2,1}`, "", "numbers out of order in {} quantifier"},
		{`[b-a]`, "", "Range out of order in character class"},
		{`[a`, "", "Unterminated character class"},
		{`]`, "u", "Lone quantifier brackets"},
		{`{`, "u", "Lone quantifier brackets"},
		{`\k<a>`, "u", "Invalid named capture referenced"},
		{`(?<a>.)\k<b>`, "", "Invalid named capture referenced"},
		{`\1`, "u", "Invalid escape"},
		{`\p{Foo}`, "u", "Invalid property name"},
		{`\p{Script=Foo}`, "u", "Invalid property value"},
		{`\P{RGI_Emoji}`, "v", "Invalid property name"},
		{`[^\q{ab}]`, "v", "Negated character class may contain strings"},
		{`\u{110000}`, "u", "Invalid unicode escape"},
		{`(?<1a>x)`, "", "Invalid capture group name"},
		{`(?=a)*`, "u", "Invalid quantifier"},
		{`(?ii:a)`, "", "Duplicate regular expression modifiers"},
		{`(?i-i:a)`, "", "Duplicate regular expression modifiers"},
		{`(?-:a)`, "", "Invalid regular expression modifiers"},
		{`[a&&&b]`, "v", "Invalid character in character class"},
	}
	for _, tt := range tests {
		err := validate(t, latest, tt.pattern, tt.flags)
		require.Error(t, err, "/%s/%s", tt.pattern, tt.flags)
		var re *Error
		require.True(t, errors.As(err, &re), "%T", err)
		assert.Equal(t, tt.message, re.Message, "/%s/%s", tt.pattern, tt.flags)
		assert.Equal(t, "Invalid regular expression: /"+tt.pattern+"/: "+tt.message, err.Error())
	}
}

func TestDuplicateNamesBeforeES2025(t *testing.T) {
	err := validate(t, 15, `(?<x>a)|(?<x>b)`, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Duplicate capture group name")
}

func TestNamedGroupReparse(t *testing.T) {
	// Without a named group \k is an identity escape; with one it must be
	// a valid reference.
	assert.NoError(t, validate(t, latest, `\k<a>`, ""))
	assert.Error(t, validate(t, latest, `(?<b>.)\k<a>`, ""))
	assert.Error(t, validate(t, latest, `(?<b>.)\k`, ""))
}

func TestVersionGates(t *testing.T) {
	assert.Error(t, validate(t, 8, `(?<=a)`, ""))
	assert.NoError(t, validate(t, 9, `(?<=a)`, ""))
	assert.Error(t, validate(t, 8, `(?<a>b)`, ""))
	assert.Error(t, validate(t, 15, `(?i:a)`, ""))
	assert.NoError(t, validate(t, 16, `(?i:a)`, ""))
}

func TestFlags(t *testing.T) {
	tests := []struct {
		flags   string
		version int
		message string
	}{
		{"gimsuy", 9, ""},
		{"d", 13, ""},
		{"d", 12, "Invalid regular expression flag"},
		{"v", 15, ""},
		{"v", 14, "Invalid regular expression flag"},
		{"uv", 15, "Invalid regular expression flag"},
		{"gg", 15, "Duplicate regular expression flag"},
		{"s", 8, "Invalid regular expression flag"},
		{"x", 15, "Invalid regular expression flag"},
	}
	for _, tt := range tests {
		_, err := ParseFlags(tt.flags, tt.version)
		if tt.message == "" {
			assert.NoError(t, err, "%q@%d", tt.flags, tt.version)
			continue
		}
		require.Error(t, err, "%q@%d", tt.flags, tt.version)
		assert.Equal(t, tt.message, err.Error())
	}

	f, err := ParseFlags("gi", latest)
	require.NoError(t, err)
	assert.True(t, f.Has(FlagGlobal|FlagIgnoreCase))
	assert.False(t, f.Has(FlagMultiline))
}

func TestBranchIDSeparation(t *testing.T) {
	root := newBranchID(nil, nil)
	sibling := root.Sibling()
	nested := newBranchID(root, nil)

	assert.True(t, root.SeparatedFrom(sibling))
	assert.False(t, root.SeparatedFrom(root))
	assert.False(t, nested.SeparatedFrom(root), "a nested disjunction lies inside its parent alternative")
	assert.True(t, nested.SeparatedFrom(sibling))
	assert.Equal(t, root, nested.Parent())
}

func TestValidatorReuse(t *testing.T) {
	v := NewValidator(latest)
	require.Error(t, v.Validate(`(?<x>a)(?<x>b)`, ""))
	require.NoError(t, v.Validate(`(?<x>a)`, ""))
	require.NoError(t, v.Validate(`a`, "u"))
}
