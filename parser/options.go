package parser

import (
	"fmt"

	"github.com/t14raptor/go-estree/ast"
)

// Latest selects the newest supported language version.
const Latest = 0

// maxEcmaVersion is the edition number of ES2026.
const maxEcmaVersion = 17

// Source types.
const (
	SourceScript = "script"
	SourceModule = "module"
)

// AllowReserved controls the use of reserved words as identifiers.
type AllowReserved int

const (
	// AllowReservedDefault allows reserved words only for ecmaVersion 3.
	AllowReservedDefault AllowReserved = iota
	AllowReservedYes
	AllowReservedNo
	// AllowReservedNever additionally forbids keywords as property names.
	AllowReservedNever
)

// UnmarshalYAML accepts a boolean or the string "never".
func (a *AllowReserved) UnmarshalYAML(unmarshal func(any) error) error {
	var b bool
	if err := unmarshal(&b); err == nil {
		if b {
			*a = AllowReservedYes
		} else {
			*a = AllowReservedNo
		}
		return nil
	}
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if s != "never" {
		return fmt.Errorf("invalid allowReserved value %q", s)
	}
	*a = AllowReservedNever
	return nil
}

// Options configures a parse. The zero value parses the latest language
// version as a script.
type Options struct {
	// EcmaVersion is an edition (3, 5, 6 ... 17) or a year (2015 ...
	// 2026). Latest selects the newest.
	EcmaVersion int    `yaml:"ecmaVersion"`
	SourceType  string `yaml:"sourceType"`

	AllowReserved               AllowReserved `yaml:"allowReserved"`
	AllowReturnOutsideFunction  bool          `yaml:"allowReturnOutsideFunction"`
	AllowImportExportEverywhere bool          `yaml:"allowImportExportEverywhere"`
	AllowSuperOutsideMethod     bool          `yaml:"allowSuperOutsideMethod"`

	// AllowAwaitOutsideFunction defaults to allowing top-level await in
	// modules from ES2022 on.
	AllowAwaitOutsideFunction *bool `yaml:"allowAwaitOutsideFunction"`

	// AllowHashBang defaults to true from ES2023 on.
	AllowHashBang *bool `yaml:"allowHashBang"`

	// CheckPrivateFields defaults to true.
	CheckPrivateFields *bool `yaml:"checkPrivateFields"`

	Locations      bool `yaml:"locations"`
	Ranges         bool `yaml:"ranges"`
	PreserveParens bool `yaml:"preserveParens"`

	// Callbacks run synchronously during tokenizing and must not call back
	// into the parser.
	OnToken             func(Token)                            `yaml:"-"`
	OnComment           func(Comment)                          `yaml:"-"`
	OnInsertedSemicolon func(lastTokEnd int, loc ast.Position) `yaml:"-"`
	OnTrailingComma     func(pos int, loc ast.Position)        `yaml:"-"`

	// Program, when set, receives the parsed statements instead of a new
	// node.
	Program *ast.Program `yaml:"-"`

	SourceFile       string `yaml:"sourceFile"`
	DirectSourceFile string `yaml:"directSourceFile"`
}

// Bool returns a pointer to v, for the optional fields of Options.
func Bool(v bool) *bool { return &v }

// resolved holds Options with every default applied.
type resolved struct {
	Options
	ecmaVersion   int
	module        bool
	allowReserved bool
	reservedNever bool
	allowAwait    bool
	allowHashBang bool
	checkPrivate  bool
}

func (o Options) normalize() resolved {
	r := resolved{Options: o}

	v := o.EcmaVersion
	switch {
	case v == Latest:
		v = maxEcmaVersion
	case v >= 2015:
		v -= 2009
	}
	r.ecmaVersion = v
	r.module = o.SourceType == SourceModule

	switch o.AllowReserved {
	case AllowReservedDefault:
		r.allowReserved = v < 5
	case AllowReservedYes:
		r.allowReserved = true
	case AllowReservedNever:
		r.reservedNever = true
	}

	if o.AllowHashBang != nil {
		r.allowHashBang = *o.AllowHashBang
	} else {
		r.allowHashBang = v >= 14
	}
	if o.AllowAwaitOutsideFunction != nil {
		r.allowAwait = *o.AllowAwaitOutsideFunction
	}
	r.checkPrivate = o.CheckPrivateFields == nil || *o.CheckPrivateFields
	return r
}
