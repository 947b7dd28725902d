// ==============================================================================================
// FILE: object/object.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Defines the runtime value system for Lox.
//          It provides the wrapper structs for every value that can flow
//          through evaluation (nil, booleans, numbers, strings) and the
//          composite runtime objects (functions, classes, instances) along
//          with the Callable protocol that lets the evaluator invoke them
//          without object importing evaluator back.
//
//          Grounded on the teacher's object/object.go Object-interface
//          wrapper pattern (Type()/Inspect() per primitive), generalized
//          from Eloquence's Integer/Float/Boolean/String/Null set to Lox's
//          nil/boolean/number/string/callable/instance set, and on
//          lox_function.rs, lox_class.rs, lox_instance.rs from
//          original_source for the Callable/Class/Instance semantics.
// ==============================================================================================

package object

import (
	"fmt"
	"strconv"
	"strings"

	"loxgo/ast"
	"loxgo/errs"
	"loxgo/token"
)

// Type identifies the runtime kind of a Value, mirroring the teacher's
// ObjectType string-constant idiom.
type Type string

const (
	NilType      Type = "NIL"
	BooleanType  Type = "BOOLEAN"
	NumberType   Type = "NUMBER"
	StringType   Type = "STRING"
	FunctionType Type = "FUNCTION"
	NativeType   Type = "NATIVE"
	ClassType    Type = "CLASS"
	InstanceType Type = "INSTANCE"
)

// Value is the base interface every Lox runtime value implements.
type Value interface {
	Type() Type
	// String renders the value the way Lox's stringify() does for `print`
	// and string concatenation, not a debug/Inspect format.
	String() string
}

// ==============================================================================================
// PRIMITIVES
// ==============================================================================================

type Nil struct{}

func (Nil) Type() Type     { return NilType }
func (Nil) String() string { return "nil" }

// NilValue is the single shared nil instance; Lox nil carries no state.
var NilValue = Nil{}

type Boolean struct{ Value bool }

func (b Boolean) Type() Type     { return BooleanType }
func (b Boolean) String() string { return strconv.FormatBool(b.Value) }

var (
	True  = Boolean{Value: true}
	False = Boolean{Value: false}
)

func BoolOf(v bool) Boolean {
	if v {
		return True
	}
	return False
}

type Number struct{ Value float64 }

func (n Number) Type() Type { return NumberType }

// String prints the shortest decimal ('f') form of the number, so integral
// values carry no trailing ".0" ("123", as Lox's stringify() prints them)
// and no value is printed in exponent form; the ".0" suffix trim is a
// guard for that rule.
func (n Number) String() string {
	s := strconv.FormatFloat(n.Value, 'f', -1, 64)
	if strings.HasSuffix(s, ".0") {
		return strings.TrimSuffix(s, ".0")
	}
	return s
}

type String struct{ Value string }

func (s String) Type() Type     { return StringType }
func (s String) String() string { return s.Value }

// ==============================================================================================
// CALLABLE PROTOCOL
// ==============================================================================================

// Interpreter is the narrow slice of evaluator behavior Callables need to
// run their bodies. Defining it here, and having the evaluator satisfy it
// structurally, keeps object free of any import on evaluator.
type Interpreter interface {
	ExecuteBlock(statements []ast.Stmt, env *Environment) error
}

// Callable is anything that can appear on the left of a call expression:
// user functions, native functions, and classes (as their own constructor).
type Callable interface {
	Value
	Call(interp Interpreter, arguments []Value) (Value, error)
	Arity() int
}

// ReturnSignal is how a `return` statement unwinds the Go call stack back
// up to the enclosing Function.Call. It implements error purely so it can
// travel through the same (Value, error)/error return channels as real
// failures, but the evaluator and Function.Call both type-switch for it
// before ever treating it as a reportable error.
type ReturnSignal struct {
	Value Value
}

func (r *ReturnSignal) Error() string { return "return outside of a function call" }

// ==============================================================================================
// FUNCTIONS
// ==============================================================================================

type Function struct {
	Declaration   *ast.Function
	Closure       *Environment
	IsInitializer bool
}

func (f *Function) Type() Type { return FunctionType }
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

func (f *Function) Call(interp Interpreter, arguments []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	err := interp.ExecuteBlock(f.Declaration.Body, env)
	if err != nil {
		if ret, ok := err.(*ReturnSignal); ok {
			if f.IsInitializer {
				return f.Closure.GetAt(0, "this")
			}
			return ret.Value, nil
		}
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this")
	}
	return NilValue, nil
}

// Bind produces a new Function whose closure is a fresh scope enclosing
// the original closure with "this" bound to instance. Every Get on a
// method creates an independent bound copy that still shares the
// instance's fields, matching lox_instance.rs::get.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// ==============================================================================================
// NATIVE FUNCTIONS
// ==============================================================================================

type Native struct {
	Name   string
	Arity_ int
	Fn     func(arguments []Value) (Value, error)
}

func (n *Native) Type() Type     { return NativeType }
func (n *Native) String() string { return fmt.Sprintf("<native fn %s>", n.Name) }
func (n *Native) Arity() int     { return n.Arity_ }
func (n *Native) Call(_ Interpreter, arguments []Value) (Value, error) {
	return n.Fn(arguments)
}

// ==============================================================================================
// CLASSES
// ==============================================================================================

type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) Type() Type     { return ClassType }
func (c *Class) String() string { return c.Name }

// FindMethod walks the superclass chain, own methods taking precedence.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods[name]; ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity reports the class's initializer arity, or zero when it has none.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call instantiates the class, running init (if any) against the new
// instance before returning it.
func (c *Class) Call(interp Interpreter, arguments []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(interp, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// ==============================================================================================
// INSTANCES
// ==============================================================================================

type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

func (i *Instance) Type() Type     { return InstanceType }
func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get resolves a field first, then falls back to a bound method, per
// lox_instance.rs::get. Fields shadow methods of the same name.
func (i *Instance) Get(name token.Token) (Value, error) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if method, ok := i.Class.FindMethod(name.Lexeme); ok {
		return method.Bind(i), nil
	}
	return nil, errs.NewRuntimeError(name, "Undefined property '"+name.Lexeme+"'.")
}

func (i *Instance) Set(name token.Token, value Value) {
	i.Fields[name.Lexeme] = value
}
