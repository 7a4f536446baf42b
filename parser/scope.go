package parser

import (
	"golang.org/x/exp/slices"
)

// scopeFlags describe the kind of a scope.
type scopeFlags uint

const (
	scopeTop scopeFlags = 1 << iota
	scopeFunction
	scopeAsync
	scopeGenerator
	scopeArrow
	scopeSimpleCatch
	scopeSuper
	scopeDirectSuper
	scopeClassStaticBlock
	scopeClassFieldInit

	scopeVar = scopeTop | scopeFunction | scopeClassStaticBlock
)

func functionFlags(async, generator bool) scopeFlags {
	f := scopeFunction
	if async {
		f |= scopeAsync
	}
	if generator {
		f |= scopeGenerator
	}
	return f
}

// bindingKind tells declareName how a name is bound.
type bindingKind int

const (
	// bindNone is an assignment target, not a declaration.
	bindNone bindingKind = iota
	bindVar
	bindLexical
	bindFunction
	bindSimpleCatch
	// bindOutside is a function's own name seen from inside its body.
	bindOutside
)

type scope struct {
	flags     scopeFlags
	vars      []string
	lexical   []string
	functions []string
}

func (p *parser) enterScope(flags scopeFlags) {
	p.scopeStack = append(p.scopeStack, &scope{flags: flags})
}

func (p *parser) exitScope() {
	p.scopeStack = p.scopeStack[:len(p.scopeStack)-1]
}

// treatFunctionsAsVarInScope reports whether function declarations in s
// behave like var declarations.
func (p *parser) treatFunctionsAsVarInScope(s *scope) bool {
	return s.flags&scopeFunction != 0 || !p.inModule && s.flags&scopeTop != 0
}

func (p *parser) treatFunctionsAsVar() bool {
	return p.treatFunctionsAsVarInScope(p.currentScope())
}

// declareName records a binding, raising when it clashes with an existing
// one. var bindings are registered in every scope up to the nearest
// function or top-level scope.
func (p *parser) declareName(name string, kind bindingKind, pos int) {
	redeclared := false
	switch kind {
	case bindLexical:
		s := p.currentScope()
		redeclared = slices.Contains(s.lexical, name) || slices.Contains(s.functions, name) || slices.Contains(s.vars, name)
		s.lexical = append(s.lexical, name)
		if p.inModule && s.flags&scopeTop != 0 {
			delete(p.undefinedExports, name)
		}
	case bindSimpleCatch:
		s := p.currentScope()
		s.lexical = append(s.lexical, name)
	case bindFunction:
		s := p.currentScope()
		if p.treatFunctionsAsVar() {
			redeclared = slices.Contains(s.lexical, name)
		} else {
			redeclared = slices.Contains(s.lexical, name) || slices.Contains(s.vars, name)
		}
		s.functions = append(s.functions, name)
	default:
		for i := len(p.scopeStack) - 1; i >= 0; i-- {
			s := p.scopeStack[i]
			if slices.Contains(s.lexical, name) && !(s.flags&scopeSimpleCatch != 0 && s.lexical[0] == name) ||
				!p.treatFunctionsAsVarInScope(s) && slices.Contains(s.functions, name) {
				redeclared = true
				break
			}
			s.vars = append(s.vars, name)
			if p.inModule && s.flags&scopeTop != 0 {
				delete(p.undefinedExports, name)
			}
			if s.flags&scopeVar != 0 {
				break
			}
		}
	}
	if redeclared {
		p.raiseRecoverable(pos, "Identifier '"+name+"' has already been declared")
	}
}

// checkLocalExport remembers an exported name that is not (yet) declared
// at the top level.
func (p *parser) checkLocalExport(name string, pos int) {
	top := p.scopeStack[0]
	if !slices.Contains(top.lexical, name) && !slices.Contains(top.vars, name) {
		p.undefinedExports[name] = pos
	}
}

func (p *parser) currentScope() *scope {
	return p.scopeStack[len(p.scopeStack)-1]
}

func (p *parser) currentVarScope() *scope {
	for i := len(p.scopeStack) - 1; ; i-- {
		if s := p.scopeStack[i]; s.flags&(scopeVar|scopeClassFieldInit|scopeClassStaticBlock) != 0 {
			return s
		}
	}
}

// currentThisScope is the scope that determines `this`, `super` and
// `new.target`.
func (p *parser) currentThisScope() *scope {
	for i := len(p.scopeStack) - 1; ; i-- {
		s := p.scopeStack[i]
		if s.flags&(scopeVar|scopeClassFieldInit|scopeClassStaticBlock) != 0 && s.flags&scopeArrow == 0 {
			return s
		}
	}
}

func (p *parser) inFunction() bool {
	return p.currentVarScope().flags&scopeFunction != 0
}

func (p *parser) inGenerator() bool {
	return p.currentVarScope().flags&scopeGenerator != 0
}

func (p *parser) inAsync() bool {
	return p.currentVarScope().flags&scopeAsync != 0
}

func (p *parser) canAwait() bool {
	for i := len(p.scopeStack) - 1; i >= 0; i-- {
		flags := p.scopeStack[i].flags
		if flags&(scopeClassStaticBlock|scopeClassFieldInit) != 0 {
			return false
		}
		if flags&scopeFunction != 0 {
			return flags&scopeAsync != 0
		}
	}
	return p.inModule && p.ecmaVersion >= 13 || p.opts.allowAwait
}

func (p *parser) allowSuper() bool {
	return p.currentThisScope().flags&scopeSuper != 0 || p.opts.AllowSuperOutsideMethod
}

func (p *parser) allowDirectSuper() bool {
	return p.currentThisScope().flags&scopeDirectSuper != 0
}

func (p *parser) allowNewDotTarget() bool {
	for i := len(p.scopeStack) - 1; i >= 0; i-- {
		flags := p.scopeStack[i].flags
		if flags&(scopeClassStaticBlock|scopeClassFieldInit) != 0 ||
			flags&scopeFunction != 0 && flags&scopeArrow == 0 {
			return true
		}
	}
	return false
}

func (p *parser) inClassStaticBlock() bool {
	return p.currentVarScope().flags&scopeClassStaticBlock != 0
}
