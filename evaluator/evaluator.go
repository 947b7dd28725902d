// ==============================================================================================
// FILE: evaluator/evaluator.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: The runtime execution engine. Walks the resolved AST and
//          produces side effects (print) or values (object.Value), threading
//          a single mutable *object.Environment cursor through nested
//          scopes the way the teacher's Eval(node, env) does, generalized
//          from Eloquence's flat type-switch Eval to the visitor-dispatch
//          AST this interpreter uses (ast.Stmt/ast.Expr Accept methods) and
//          from Eloquence's single dynamic environment chain to the
//          resolver's distance-annotated lookups.
// ==============================================================================================

package evaluator

import (
	"fmt"

	"loxgo/ast"
	"loxgo/errs"
	"loxgo/object"
	"loxgo/token"
)

// Evaluator implements ast.StmtVisitor, ast.ExprVisitor and
// object.Interpreter. The three-interface split mirrors the teacher's
// single Eval entry point while letting object.Function.Call invoke back
// into ExecuteBlock without object importing this package.
type Evaluator struct {
	globals *object.Environment
	env     *object.Environment
	locals  ast.Locals

	stdout func(string)
}

// New builds an Evaluator with clock() and friends installed into the
// global scope, per spec.md §4.4's native-function table.
func New(locals ast.Locals, stdout func(string)) *Evaluator {
	globals := object.NewEnvironment()
	for _, b := range object.Builtins {
		globals.Define(b.Name, b.Fn)
	}
	return &Evaluator{globals: globals, env: globals, locals: locals, stdout: stdout}
}

// Interpret runs a full program's statements, stopping at (and returning)
// the first runtime error, per spec.md §4.5's "evaluation halts on the
// first runtime error" rule.
func (e *Evaluator) Interpret(statements []ast.Stmt) *errs.RuntimeError {
	for _, stmt := range statements {
		if err := e.execute(stmt); err != nil {
			return toRuntimeError(err)
		}
	}
	return nil
}

// EvaluateExpression backs the `evaluate` subcommand: a single expression,
// no statement execution.
func (e *Evaluator) EvaluateExpression(expr ast.Expr) (object.Value, *errs.RuntimeError) {
	v, err := e.eval(expr)
	if err != nil {
		return nil, toRuntimeError(err)
	}
	return v, nil
}

func toRuntimeError(err error) *errs.RuntimeError {
	if rte, ok := err.(*errs.RuntimeError); ok {
		return rte
	}
	// A *object.ReturnSignal escaping to top level means the resolver's
	// "can't return from top-level code" check was bypassed somehow; treat
	// it as returning no value rather than crashing the runner.
	return nil
}

func (e *Evaluator) execute(s ast.Stmt) error { return s.Accept(e) }

func (e *Evaluator) eval(ex ast.Expr) (object.Value, error) {
	v, err := ex.Accept(e)
	if err != nil {
		return nil, err
	}
	return v.(object.Value), nil
}

// ExecuteBlock runs statements under env, restoring the prior environment
// cursor on return (including on an error/return-signal unwind). This is
// the method object.Function.Call invokes through the object.Interpreter
// interface.
func (e *Evaluator) ExecuteBlock(statements []ast.Stmt, env *object.Environment) error {
	previous := e.env
	e.env = env
	defer func() { e.env = previous }()

	for _, stmt := range statements {
		if err := e.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// lookupVariable consults the resolver's side table first; a miss means a
// global, resolved dynamically by name.
func (e *Evaluator) lookupVariable(name token.Token, expr ast.Expr) (object.Value, error) {
	if distance, ok := e.locals.Distance(expr); ok {
		return e.env.GetAt(distance, name.Lexeme)
	}
	return e.globals.Get(name)
}

func isTruthy(v object.Value) bool {
	switch t := v.(type) {
	case object.Nil:
		return false
	case object.Boolean:
		return t.Value
	default:
		return true
	}
}

// valuesEqual implements Lox's structural equality, which is IEEE-754 float
// equality for numbers (so NaN != NaN survives) rather than Go's generic
// == on an interface holding two different dynamic types.
func valuesEqual(a, b object.Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case object.Nil:
		return true
	case object.Boolean:
		return av.Value == b.(object.Boolean).Value
	case object.Number:
		return av.Value == b.(object.Number).Value
	case object.String:
		return av.Value == b.(object.String).Value
	default:
		return a == b
	}
}

func toValue(literal any) object.Value {
	switch v := literal.(type) {
	case nil:
		return object.NilValue
	case bool:
		return object.BoolOf(v)
	case float64:
		return object.Number{Value: v}
	case string:
		return object.String{Value: v}
	}
	return object.NilValue
}

func (e *Evaluator) runtimeError(tok token.Token, format string, a ...any) error {
	return errs.NewRuntimeError(tok, fmt.Sprintf(format, a...))
}
