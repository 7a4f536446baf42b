// Package jsregexp validates the body and flags of ECMAScript regular
// expression literals against the grammar of a given language version.
package jsregexp

import "strings"

// Flag is a set of regular expression flags.
type Flag uint16

const (
	FlagHasIndices Flag = 1 << iota // d
	FlagGlobal                      // g
	FlagIgnoreCase                  // i
	FlagMultiline                   // m
	FlagDotAll                      // s
	FlagUnicode                     // u
	FlagUnicodeSets                 // v
	FlagSticky                      // y
)

var flagChars = map[rune]Flag{
	'd': FlagHasIndices,
	'g': FlagGlobal,
	'i': FlagIgnoreCase,
	'm': FlagMultiline,
	's': FlagDotAll,
	'u': FlagUnicode,
	'v': FlagUnicodeSets,
	'y': FlagSticky,
}

// Has reports whether all of other is set in f.
func (f Flag) Has(other Flag) bool { return f&other == other }

func validFlags(ecmaVersion int) string {
	switch {
	case ecmaVersion >= 15:
		return "dgimsuyv"
	case ecmaVersion >= 13:
		return "dgimsuy"
	case ecmaVersion >= 9:
		return "gimsuy"
	case ecmaVersion >= 6:
		return "gimuy"
	}
	return "gim"
}

// ParseFlags checks a flags string for characters the language version does
// not know, repeated flags and the u/v combination.
func ParseFlags(flags string, ecmaVersion int) (Flag, error) {
	valid := validFlags(ecmaVersion)
	var f Flag
	for _, c := range flags {
		if !strings.ContainsRune(valid, c) {
			return 0, &Error{Message: "Invalid regular expression flag", InFlags: true}
		}
		bit := flagChars[c]
		if f.Has(bit) {
			return 0, &Error{Message: "Duplicate regular expression flag", InFlags: true}
		}
		f |= bit
	}
	if ecmaVersion >= 15 && f.Has(FlagUnicode|FlagUnicodeSets) {
		return 0, &Error{Message: "Invalid regular expression flag", InFlags: true}
	}
	return f, nil
}
