package token

import (
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

const (
	ecma5Keywords = "break case catch continue debugger default do else finally for function if return switch throw try var while with null true false instanceof typeof void delete new in this"

	reserved3          = "abstract boolean byte char class double enum export extends final float goto implements import int interface long native package private protected public short static super synchronized throws transient volatile"
	reserved5          = "class enum extends super const export import"
	reserved6          = "enum"
	reservedStrict     = "implements interface let package private protected public static yield"
	reservedStrictBind = "eval arguments"
)

// WordSet is an immutable set of words.
type WordSet map[string]struct{}

func newWordSet(words string) WordSet {
	s := WordSet{}
	for _, w := range strings.Fields(words) {
		s[w] = struct{}{}
	}
	return s
}

// Has reports whether w is in the set.
func (s WordSet) Has(w string) bool {
	_, ok := s[w]
	return ok
}

// Words holds the keyword and reserved-word sets that apply to one
// combination of language version, source type and allowReserved.
type Words struct {
	Keywords           WordSet
	Reserved           WordSet
	ReservedStrict     WordSet
	ReservedStrictBind WordSet
}

type wordsKey struct {
	ecmaVersion   int
	module        bool
	allowReserved bool
}

var wordsCache *lru.Cache

func init() {
	var err error
	if wordsCache, err = lru.New(32); err != nil {
		panic(err)
	}
}

// WordsFor returns the word sets for the given configuration. Results are
// cached and shared between parses; callers must not modify them.
func WordsFor(ecmaVersion int, module, allowReserved bool) *Words {
	key := wordsKey{ecmaVersion: ecmaVersion, module: module, allowReserved: allowReserved}
	if w, ok := wordsCache.Get(key); ok {
		return w.(*Words)
	}
	w := buildWords(key)
	wordsCache.Add(key, w)
	return w
}

func buildWords(k wordsKey) *Words {
	kw := ecma5Keywords
	switch {
	case k.ecmaVersion >= 6:
		kw += " const class extends export import super"
	case k.module:
		kw += " export import"
	}

	reserved := ""
	if !k.allowReserved {
		switch {
		case k.ecmaVersion >= 6:
			reserved = reserved6
		case k.ecmaVersion == 5:
			reserved = reserved5
		default:
			reserved = reserved3
		}
		if k.module {
			reserved += " await"
		}
	}
	strict := reserved + " " + reservedStrict

	return &Words{
		Keywords:           newWordSet(kw),
		Reserved:           newWordSet(reserved),
		ReservedStrict:     newWordSet(strict),
		ReservedStrictBind: newWordSet(strict + " " + reservedStrictBind),
	}
}
