// Package scope implements the lexical environment chain of the ZEN
// interpreter. A scope carries two namespaces, one for variables and one
// for functions, plus a pointer to its parent. The two namespaces share the
// same identifier space for lookup purposes; the evaluator consults the
// function table first at call sites and the variable table first
// everywhere else.
//
// ZEN has no block scope: a scope is created only for the global
// interpreter and for each function invocation. if/while/for bodies execute
// in the enclosing function scope.
package scope

import "github.com/akaoio/zen/values"

// Scope is one link of the environment chain. Parent is nil for the global
// scope. Variables and Functions map names to bindings local to this scope;
// lookups walk the parent chain, definitions never do.
type Scope struct {
	Variables map[string]values.Value
	Functions map[string]values.Value
	Parent    *Scope
}

// NewScope creates a scope whose parent is the given scope (nil for the
// global scope). When a function is invoked the fresh call scope is
// parented on the function's captured definition scope, which is what makes
// scoping lexical rather than dynamic.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]values.Value),
		Functions: make(map[string]values.Value),
		Parent:    parent,
	}
}

// DefineVariable adds or replaces a variable binding in this scope. It
// never touches parent scopes: redefining a name in a function does not
// leak into the enclosing scope, it updates (or creates) the local entry.
func (s *Scope) DefineVariable(name string, v values.Value) {
	s.Variables[name] = v
}

// LookupVariable walks this scope and each parent, returning the first
// variable binding for name.
func (s *Scope) LookupVariable(name string) (values.Value, bool) {
	if v, ok := s.Variables[name]; ok {
		return v, true
	}
	if s.Parent != nil {
		return s.Parent.LookupVariable(name)
	}
	return nil, false
}

// DefineFunction adds or replaces a function binding in this scope.
func (s *Scope) DefineFunction(name string, fn values.Value) {
	s.Functions[name] = fn
}

// LookupFunction walks this scope and each parent, returning the first
// function binding for name.
func (s *Scope) LookupFunction(name string) (values.Value, bool) {
	if fn, ok := s.Functions[name]; ok {
		return fn, true
	}
	if s.Parent != nil {
		return s.Parent.LookupFunction(name)
	}
	return nil, false
}
