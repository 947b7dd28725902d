// ==============================================================================================
// FILE: resolver/resolver.go
// ==============================================================================================
// PACKAGE: resolver
// PURPOSE: Static scope resolution (spec.md §4.3). Walks the parsed tree
//          once before evaluation, assigning every variable reference its
//          lexical hop-count distance (ast.Locals) and enforcing the
//          semantic rules that don't need runtime values to check: shadowed
//          re-declaration, reading a local in its own initializer,
//          top-level `return`, `this`/`super` misuse, and self-inheriting
//          classes.
//
//          The teacher (Eloquence, a Monkey-style interpreter) has no
//          resolver at all — Monkey only ever has one global-or-enclosed
//          environment chain resolved dynamically at read time. This
//          package is grounded on resolver.rs from original_source instead,
//          generalized with the method/class/this/super machinery spec.md
//          adds on top of that earlier version.
// ==============================================================================================

package resolver

import (
	"loxgo/ast"
	"loxgo/errs"
	"loxgo/token"
)

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnInitializer
	fnMethod
)

type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// Resolver implements both ast.StmtVisitor and ast.ExprVisitor purely for
// their side effects on the side table and the error sink; its Visit
// methods return no useful value.
type Resolver struct {
	sink   *errs.Sink
	locals ast.Locals

	scopes []map[string]bool

	currentFunction functionKind
	currentClass    classKind
}

func New(sink *errs.Sink) *Resolver {
	return &Resolver{sink: sink, locals: ast.NewLocals()}
}

// Resolve walks every top-level statement and returns the populated side
// table for the evaluator to consult.
func (r *Resolver) Resolve(statements []ast.Stmt) ast.Locals {
	r.resolveStmts(statements)
	return r.locals
}

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) { _ = s.Accept(r) }
func (r *Resolver) resolveExpr(e ast.Expr) { _, _ = e.Accept(r) }

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, map[string]bool{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.sink.ReportToken(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal scans scopes top-down (innermost first); on a hit at index i
// the distance is (len-1-i) enclosing hops. No hit means "global" — no
// table entry is recorded.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
}
