// ==============================================================================================
// FILE: object/environment.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Lexical scope chain for variable storage. Generalizes the
//          teacher's map-plus-outer-link Environment with the GetAt/AssignAt
//          pair the resolver's distance side table requires, and with
//          undefined-variable runtime errors in place of Eloquence's
//          ok-bool lookups (Lox reports those as failures, Eloquence's
//          caller decided what a miss meant).
// ==============================================================================================

package object

import (
	"loxgo/errs"
	"loxgo/token"
)

type Environment struct {
	store map[string]Value
	outer *Environment
}

// NewEnvironment creates a fresh global environment.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Value)}
}

// NewEnclosedEnvironment creates a new local scope linked to an outer scope.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Define binds name in the CURRENT scope, shadowing any outer binding of
// the same name. Unlike Assign, redefining an existing local is legal —
// this is how `var a = a;` at global scope, and function/class
// redeclaration, are allowed.
func (e *Environment) Define(name string, value Value) {
	e.store[name] = value
}

// Get performs a dynamic (undistanced) lookup, walking outward through
// enclosing scopes. Used only for globals, since every local/upvalue
// reference the resolver could resolve goes through GetAt instead.
func (e *Environment) Get(name token.Token) (Value, error) {
	if v, ok := e.store[name.Lexeme]; ok {
		return v, nil
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, errs.NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// Assign mutates an existing binding, walking outward; it is an error to
// assign to a name that was never declared (Lox has no implicit globals).
func (e *Environment) Assign(name token.Token, value Value) error {
	if _, ok := e.store[name.Lexeme]; ok {
		e.store[name.Lexeme] = value
		return nil
	}
	if e.outer != nil {
		return e.outer.Assign(name, value)
	}
	return errs.NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// ancestor walks exactly distance scopes outward, per the resolver's
// precomputed hop count. The resolver and environment chain are always in
// lockstep, so ancestor never runs past the chain's end in practice.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.outer
	}
	return env
}

// GetAt reads a binding the resolver already proved lives exactly distance
// scopes out, bypassing the dynamic walk (and any shadowing ambiguity) Get
// would otherwise face.
func (e *Environment) GetAt(distance int, name string) (Value, error) {
	return e.ancestor(distance).store[name], nil
}

// AssignAt mirrors GetAt for assignment.
func (e *Environment) AssignAt(distance int, name token.Token, value Value) error {
	e.ancestor(distance).store[name.Lexeme] = value
	return nil
}
